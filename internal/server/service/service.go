// Package service содержит бизнес-логику трекера упражнений.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"time"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users     UsersRepo
	Exercises ExercisesRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Users     *UsersService
	Exercises *ExercisesService
	Health    *HealthService
}

// NewServices собирает все сервисы приложения.
func NewServices(repos Repositories) *Services {
	return &Services{
		Users:     NewUsersService(repos.Users, repos.Exercises),
		Exercises: NewExercisesService(repos.Users, repos.Exercises),
		Health:    NewHealthService(repos.Users),
	}
}

// UsersRepo — репозиторий пользователей.
type UsersRepo interface {
	Create(ctx context.Context, id, username string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Ping(ctx context.Context) error
}

// ExercisesRepo — репозиторий упражнений.
type ExercisesRepo interface {
	Create(ctx context.Context, e models.Exercise) (models.Exercise, error)
	ListByUser(ctx context.Context, userID string, from, to *time.Time, limit int) ([]models.Exercise, error)
	IDsGroupedByUser(ctx context.Context) (map[string][]string, error)
}

// HealthService проверяет доступность зависимостей сервера.
type HealthService struct {
	users UsersRepo
}

// NewHealthService создаёт HealthService.
func NewHealthService(users UsersRepo) *HealthService {
	return &HealthService{users: users}
}

// Check пингует базу данных.
func (s *HealthService) Check(ctx context.Context) error {
	return s.users.Ping(ctx)
}
