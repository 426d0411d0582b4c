// HTTP-хендлеры добавления упражнения и запроса журнала
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/models"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/errors"
)

// AddExerciseRequest описывает тело запроса добавления упражнения.
// Duration принимается и числом (JSON), и строкой (HTML-форма).
type AddExerciseRequest struct {
	UserID      string      `json:"userId"`
	Description string      `json:"description"`
	Duration    json.Number `json:"duration"`
	Date        string      `json:"date,omitempty"`
}

// ExerciseResponse описывает упражнение в ответах API.
type ExerciseResponse struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
}

// PopulatedUserResponse — пользователь с развёрнутым списком упражнений.
type PopulatedUserResponse struct {
	ID        string             `json:"_id"`
	Username  string             `json:"username"`
	Exercises []ExerciseResponse `json:"exercises"`
}

// AddExerciseResponse — ответ добавления упражнения.
type AddExerciseResponse struct {
	User PopulatedUserResponse `json:"user"`
}

// LogResponse — ответ запроса журнала упражнений.
type LogResponse struct {
	ID        string             `json:"_id"`
	Username  string             `json:"username"`
	Exercises []ExerciseResponse `json:"exercises"`
	Count     int                `json:"count"`
}

// AddExercise добавляет упражнение в журнал пользователя.
//
// Тело принимается в JSON или как HTML-форма.
//
// Ответы:
//   - 200 OK: {user} — владелец с развёрнутым списком упражнений,
//     включая только что созданное;
//   - 400 Bad Request: отсутствующие/пустые userId, description, duration
//     или непарсящиеся duration/date;
//   - 404 Not Found: пользователь с таким userId не найден;
//   - 500 Internal Server Error: ошибка хранилища.
//
// @Summary      Add exercise
// @Description  Logs an exercise against a user. Date defaults to the
// @Description  current server time when omitted.
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        request body api.AddExerciseRequest true "Add exercise request"
// @Success      200 {object} api.AddExerciseResponse
// @Failure      400 {object} api.ErrorResponse "Invalid input"
// @Failure      404 {object} api.ErrorResponse "User not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /api/exercise/add [post]
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	var req AddExerciseRequest
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
			return
		}
	} else {
		req.UserID = r.PostFormValue("userId")
		req.Description = r.PostFormValue("description")
		req.Duration = json.Number(r.PostFormValue("duration"))
		req.Date = r.PostFormValue("date")
	}

	duration := 0
	if req.Duration != "" {
		parsed, err := strconv.Atoi(req.Duration.String())
		if err != nil {
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
			return
		}
		duration = parsed
	}

	populated, err := h.Svc.Exercises.Add(r.Context(), req.UserID, req.Description, duration, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrUserNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrUserNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"add exercise failed",
				"error", err,
				"user_id", req.UserID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, AddExerciseResponse{
		User: PopulatedUserResponse{
			ID:        populated.User.ID,
			Username:  populated.User.Username,
			Exercises: toExerciseResponses(populated.Exercises),
		},
	})
}

// GetLog возвращает журнал упражнений пользователя.
//
// Query-параметры: userId, from?, to? (включительные границы по дате,
// YYYY-MM-DD или RFC3339), limit? (по умолчанию 10).
//
// Ответы:
//   - 200 OK: {_id, username, exercises, count}, упражнения по
//     возрастанию даты;
//   - 400 Bad Request: непарсящиеся from/to/limit;
//   - 404 Not Found: пользователь с таким userId не найден;
//   - 500 Internal Server Error: ошибка хранилища.
//
// @Summary      Query exercise log
// @Description  Returns a user's exercises filtered by an inclusive date
// @Description  range, at most limit entries (default 10), ordered by date.
// @Tags         exercises
// @Produce      json
// @Param        userId query string true  "User id"
// @Param        from   query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param        to     query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param        limit  query int    false "Max entries to return" default(10)
// @Success      200 {object} api.LogResponse
// @Failure      400 {object} api.ErrorResponse "Invalid input"
// @Failure      404 {object} api.ErrorResponse "User not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /api/exercise/log [get]
func (h *Handler) GetLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	log, err := h.Svc.Exercises.GetLog(r.Context(), service.LogQuery{
		UserID: query.Get("userId"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	})
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrUserNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrUserNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"get log failed",
				"error", err,
				"user_id", query.Get("userId"),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, LogResponse{
		ID:        log.User.ID,
		Username:  log.User.Username,
		Exercises: toExerciseResponses(log.Exercises),
		Count:     log.Count,
	})
}

// toExerciseResponses переводит доменные упражнения в ответ API.
// Пустой список сериализуется как [], не null.
func toExerciseResponses(exercises []models.Exercise) []ExerciseResponse {
	resp := make([]ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		resp = append(resp, ExerciseResponse{
			ID:          e.ID,
			UserID:      e.UserID,
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}
	return resp
}
