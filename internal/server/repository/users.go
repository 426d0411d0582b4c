package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/errors"
)

// UsersRepository реализует доступ к таблице users (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
type UsersRepository struct {
	db *sql.DB
}

// NewUsersRepository создаёт новый экземпляр UsersRepository.
func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет нового пользователя.
// Идентификатор генерируется на слое service и передаётся явно.
func (r *UsersRepository) Create(ctx context.Context, id, username string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (id, username)
		 VALUES ($1,$2)
		 RETURNING id, username, created_at`,
		id, username,
	).Scan(&u.ID, &u.Username, &u.CreatedAt)

	if err != nil {
		return models.User{}, fmt.Errorf("%w: create user: %v", serr.ErrInternal, err)
	}

	return u, nil
}

// GetByID возвращает пользователя по идентификатору.
//
// Ошибки:
//   - ErrUserNotFound — пользователя с таким id нет;
//   - ErrInternal — ошибка базы данных.
func (r *UsersRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, created_at FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Username, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%w: get user: %v", serr.ErrInternal, err)
	}

	return u, nil
}

// List возвращает всех пользователей в порядке создания.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, created_at FROM users ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", serr.ErrInternal, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan user: %v", serr.ErrInternal, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list users: %v", serr.ErrInternal, err)
	}

	return users, nil
}

// Ping проверяет доступность базы данных (health-check).
func (r *UsersRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
