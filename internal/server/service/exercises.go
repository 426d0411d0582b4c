package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/idgen"
)

// DefaultLogLimit — сколько записей журнала отдаём, если limit не задан.
const DefaultLogLimit = 10

// Принимаемые форматы дат: YYYY-MM-DD или RFC3339.
var dateFormats = []string{"2006-01-02", time.RFC3339}

// ExercisesService реализует бизнес-логику журнала упражнений.
type ExercisesService struct {
	users     UsersRepo
	exercises ExercisesRepo
}

// NewExercisesService создаёт ExercisesService.
func NewExercisesService(users UsersRepo, exercises ExercisesRepo) *ExercisesService {
	return &ExercisesService{users: users, exercises: exercises}
}

// LogQuery — параметры запроса журнала упражнений.
// Необязательные параметры передаются строками как пришли из query
// и парсятся/валидируются здесь, а не в HTTP-слое.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// Log — результат запроса журнала.
type Log struct {
	User      models.User
	Exercises []models.Exercise
	Count     int
}

// Add добавляет упражнение в журнал пользователя.
//
// Валидация до обращения к хранилищу:
//   - userID и description обязательны и не пустые;
//   - duration обязателен (ноль считается отсутствующим значением,
//     знак не проверяется);
//   - date, если передан, должен парситься (YYYY-MM-DD или RFC3339),
//     иначе берётся текущее время сервера.
//
// Любая ошибка поиска пользователя трактуется как его отсутствие —
// исторический контракт эндпоинта.
//
// Возвращает пользователя с развёрнутым списком его упражнений,
// включая только что созданное: упражнения хранятся строками с user_id,
// populate — это их чтение, поэтому видимость немедленная.
//
// Ошибки:
//   - ErrInvalidInput, ErrUserNotFound, ErrInternal.
func (s *ExercisesService) Add(ctx context.Context, userID, description string, duration int, date string) (models.PopulatedUser, error) {
	userID = strings.TrimSpace(userID)
	description = strings.TrimSpace(description)
	if userID == "" || description == "" || duration == 0 {
		return models.PopulatedUser{}, serr.ErrInvalidInput
	}

	when := time.Now()
	if strings.TrimSpace(date) != "" {
		parsed, err := parseDate(date)
		if err != nil {
			return models.PopulatedUser{}, serr.ErrInvalidInput
		}
		when = parsed
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.PopulatedUser{}, serr.ErrUserNotFound
	}

	exercise := models.Exercise{
		ID:          idgen.New(),
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        when,
	}
	if _, err := s.exercises.Create(ctx, exercise); err != nil {
		return models.PopulatedUser{}, err
	}

	populated, err := s.exercises.ListByUser(ctx, user.ID, nil, nil, 0)
	if err != nil {
		return models.PopulatedUser{}, err
	}

	return models.PopulatedUser{User: user, Exercises: populated}, nil
}

// GetLog возвращает журнал упражнений пользователя.
//
// From/To — включительные границы по полю date, Limit ограничивает число
// записей (по умолчанию DefaultLogLimit). Порядок — по возрастанию date,
// при равенстве — порядок вставки; это часть публичного контракта.
//
// Несуществующий userId (в том числе пустой) — ErrUserNotFound:
// отвечаем 404, а не пустым результатом.
//
// Ошибки:
//   - ErrInvalidInput — непарсящиеся from/to/limit;
//   - ErrUserNotFound, ErrInternal.
func (s *ExercisesService) GetLog(ctx context.Context, q LogQuery) (Log, error) {
	var from, to *time.Time

	if strings.TrimSpace(q.From) != "" {
		parsed, err := parseDate(q.From)
		if err != nil {
			return Log{}, serr.ErrInvalidInput
		}
		from = &parsed
	}
	if strings.TrimSpace(q.To) != "" {
		parsed, err := parseDate(q.To)
		if err != nil {
			return Log{}, serr.ErrInvalidInput
		}
		to = &parsed
	}

	limit := DefaultLogLimit
	if strings.TrimSpace(q.Limit) != "" {
		parsed, err := strconv.Atoi(q.Limit)
		if err != nil || parsed < 1 {
			return Log{}, serr.ErrInvalidInput
		}
		limit = parsed
	}

	user, err := s.users.GetByID(ctx, q.UserID)
	if err != nil {
		return Log{}, err
	}

	exercises, err := s.exercises.ListByUser(ctx, user.ID, from, to, limit)
	if err != nil {
		return Log{}, err
	}

	return Log{User: user, Exercises: exercises, Count: len(exercises)}, nil
}

// parseDate пробует известные форматы дат по очереди.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, serr.ErrInvalidInput
}
