package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/idgen"
)

// UsersService реализует бизнес-логику работы с пользователями.
type UsersService struct {
	users     UsersRepo
	exercises ExercisesRepo
}

// NewUsersService создаёт UsersService.
func NewUsersService(users UsersRepo, exercises ExercisesRepo) *UsersService {
	return &UsersService{users: users, exercises: exercises}
}

// Create создаёт нового пользователя.
//
// Валидация: username обязателен и не пустой (после TrimSpace) —
// до обращения к хранилищу. Идентификатор генерируется явным вызовом
// idgen в момент создания, а не дефолтом схемы.
//
// Ошибки:
//   - ErrUsernameRequired — пустой username;
//   - ErrInternal — ошибка хранилища.
func (s *UsersService) Create(ctx context.Context, username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, serr.ErrUsernameRequired
	}

	return s.users.Create(ctx, idgen.New(), username)
}

// List возвращает всех пользователей в порядке создания вместе
// с идентификаторами их упражнений. У пользователя без упражнений
// список идентификаторов пустой.
func (s *UsersService) List(ctx context.Context) ([]models.UserListItem, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped, err := s.exercises.IDsGroupedByUser(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, models.UserListItem{
			User:        u,
			ExerciseIDs: grouped[u.ID],
		})
	}
	return items, nil
}
