package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("abc123", "fred").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "created_at"}).
				AddRow("abc123", "fred", now),
		)

	got, err := repo.Create(context.Background(), "abc123", "fred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "abc123" || got.Username != "fred" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "abc123", "fred")

	if !errors.Is(err, serr.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Поиск по id
func TestUsersRepository_GetByID_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	now := time.Now()

	mock.ExpectQuery(`SELECT id, username, created_at FROM users`).
		WithArgs("abc123").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "created_at"}).
				AddRow("abc123", "fred", now),
		)

	got, err := repo.GetByID(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "abc123" || got.Username != "fred" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

// Не найден по id
func TestUsersRepository_GetByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, username, created_at FROM users`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")

	if !errors.Is(err, serr.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// Ошибка сервера при поиске по id
func TestUsersRepository_GetByID_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, username, created_at FROM users`).
		WithArgs("abc123").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByID(context.Background(), "abc123")

	if !errors.Is(err, serr.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Список в порядке создания
func TestUsersRepository_List_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	now := time.Now()

	mock.ExpectQuery(`SELECT id, username, created_at FROM users ORDER BY created_at, id`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "created_at"}).
				AddRow("a1", "fred", now).
				AddRow("b2", "barney", now.Add(time.Second)),
		)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
	if got[0].ID != "a1" || got[1].ID != "b2" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

// Пустой список — не ошибка
func TestUsersRepository_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, username, created_at FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at"}))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no users, got %d", len(got))
	}
}

// Ping прокидывается в базу
func TestUsersRepository_Ping(t *testing.T) {
	db, mock, _ := sqlmock.New(sqlmock.MonitorPingsOption(true))
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectPing()

	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
