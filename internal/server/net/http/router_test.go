package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/api"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/config"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/models"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/logger"
)

func newTestRouter(t *testing.T) (http.Handler, *svcmocks.MockUsersRepo, *svcmocks.MockExercisesRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	usersRepo := svcmocks.NewMockUsersRepo(ctrl)
	exercisesRepo := svcmocks.NewMockExercisesRepo(ctrl)

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	svc := service.NewServices(service.Repositories{
		Users:     usersRepo,
		Exercises: exercisesRepo,
	})
	h := api.NewHandler(svc, logger.NewHTTPLogger())

	return NewRouter(h, cfg), usersRepo, exercisesRepo
}

func TestRouter_CreateUser_OK(t *testing.T) {
	router, usersRepo, _ := newTestRouter(t)

	usersRepo.
		EXPECT().
		Create(gomock.Any(), gomock.Any(), "fred").
		DoAndReturn(func(ctx context.Context, id, username string) (models.User, error) {
			if id == "" {
				t.Fatalf("expected generated id, got empty")
			}
			return models.User{ID: id, Username: username}, nil
		})

	body, _ := json.Marshal(map[string]string{"username": "fred"})

	req := httptest.NewRequest(http.MethodPost, "/api/exercise/new-user", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Fatalf("expected non-empty _id")
	}
	if resp.Username != "fred" {
		t.Fatalf("expected username %q, got %q", "fred", resp.Username)
	}
}

func TestRouter_GetLog_OK(t *testing.T) {
	router, usersRepo, exercisesRepo := newTestRouter(t)

	usersRepo.
		EXPECT().
		GetByID(gomock.Any(), "u1").
		Return(models.User{ID: "u1", Username: "fred"}, nil)

	exercisesRepo.
		EXPECT().
		ListByUser(gomock.Any(), "u1", nil, nil, 10).
		Return([]models.Exercise{{ID: "ex1", UserID: "u1", Description: "running", Duration: 30}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/exercise/log?userId=u1", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("expected count 1, got %d", resp.Count)
	}
}

// Запрос мимо всех маршрутов уходит в нормализатор: 404 плоским текстом.
func TestRouter_UnknownRoute_NotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Fatalf("expected plain text content type, got %q", got)
	}
	if rec.Body.String() != "not found" {
		t.Fatalf("expected body %q, got %q", "not found", rec.Body.String())
	}
}

// Неверный метод на известном маршруте отвечает так же, как неизвестный маршрут.
func TestRouter_WrongMethod_NotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/exercise/users", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
	if rec.Body.String() != "not found" {
		t.Fatalf("expected body %q, got %q", "not found", rec.Body.String())
	}
}

func TestRouter_Healthz(t *testing.T) {
	router, usersRepo, _ := newTestRouter(t)

	usersRepo.
		EXPECT().
		Ping(gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("expected status %q, got %q", "ok", resp.Status)
	}
}
