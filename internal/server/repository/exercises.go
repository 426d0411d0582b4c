package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/errors"
)

// ExercisesRepository реализует доступ к таблице exercises (PostgreSQL).
type ExercisesRepository struct {
	db *sql.DB
}

// NewExercisesRepository создаёт новый экземпляр ExercisesRepository.
func NewExercisesRepository(db *sql.DB) *ExercisesRepository {
	return &ExercisesRepository{db: db}
}

// Create сохраняет новое упражнение.
//
// Ошибки:
//   - ErrUserNotFound — владелец исчез между проверкой и вставкой
//     (нарушение внешнего ключа);
//   - ErrInternal — прочие ошибки базы данных.
func (r *ExercisesRepository) Create(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO exercises (id, user_id, description, duration, date)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING created_at`,
		e.ID, e.UserID, e.Description, e.Duration, e.Date,
	).Scan(&e.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return models.Exercise{}, serr.ErrUserNotFound
		}
		return models.Exercise{}, fmt.Errorf("%w: create exercise: %v", serr.ErrInternal, err)
	}

	return e, nil
}

// ListByUser возвращает упражнения пользователя.
//
// from и to — включительные границы по полю date; nil-граница опускается.
// limit > 0 ограничивает число записей, limit <= 0 — без ограничения
// (используется populate-чтением после добавления упражнения).
// Порядок: по возрастанию date, при равенстве — порядок вставки.
func (r *ExercisesRepository) ListByUser(ctx context.Context, userID string, from, to *time.Time, limit int) ([]models.Exercise, error) {
	query := `SELECT id, user_id, description, duration, date, created_at FROM exercises WHERE user_id = $1`
	args := []any{userID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date, created_at, id"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list exercises: %v", serr.ErrInternal, err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan exercise: %v", serr.ErrInternal, err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list exercises: %v", serr.ErrInternal, err)
	}

	return exercises, nil
}

// IDsGroupedByUser возвращает идентификаторы всех упражнений,
// сгруппированные по владельцу. Используется списком пользователей:
// поле exercises собирается из таблицы exercises, а не хранится
// плотно на пользователе.
func (r *ExercisesRepository) IDsGroupedByUser(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, id FROM exercises ORDER BY date, created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: group exercises: %v", serr.ErrInternal, err)
	}
	defer rows.Close()

	grouped := make(map[string][]string)
	for rows.Next() {
		var userID, id string
		if err := rows.Scan(&userID, &id); err != nil {
			return nil, fmt.Errorf("%w: scan exercise id: %v", serr.ErrInternal, err)
		}
		grouped[userID] = append(grouped[userID], id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: group exercises: %v", serr.ErrInternal, err)
	}

	return grouped, nil
}
