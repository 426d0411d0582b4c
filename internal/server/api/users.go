// HTTP-хендлеры списка пользователей и создания пользователя
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/errors"
)

// CreateUserRequest описывает тело запроса создания пользователя.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// UserResponse описывает пользователя в ответах API.
// Ключ _id сохранён историческим контрактом сервиса.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// UserListItemResponse — элемент ответа списка пользователей.
// Exercises — идентификаторы упражнений пользователя.
type UserListItemResponse struct {
	ID        string   `json:"_id"`
	Username  string   `json:"username"`
	Exercises []string `json:"exercises"`
}

// ListUsers возвращает всех пользователей.
//
// Ответы:
//   - 200 OK: массив {_id, username, exercises} в порядке создания;
//   - 500 Internal Server Error: ошибка хранилища.
//
// @Summary      List users
// @Description  Returns every user with the ids of their logged exercises,
// @Description  ordered by creation time.
// @Tags         users
// @Produce      json
// @Success      200 {array} api.UserListItemResponse
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /api/exercise/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list users failed", "error", err)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	resp := make([]UserListItemResponse, 0, len(items))
	for _, it := range items {
		exercises := it.ExerciseIDs
		if exercises == nil {
			// пользователь без упражнений — пустой массив, не null
			exercises = []string{}
		}
		resp = append(resp, UserListItemResponse{
			ID:        it.User.ID,
			Username:  it.User.Username,
			Exercises: exercises,
		})
	}

	WriteJSON(w, http.StatusOK, resp)
}

// CreateUser создаёт нового пользователя.
//
// Тело принимается в JSON или как HTML-форма.
//
// Ответы:
//   - 200 OK: {_id, username};
//   - 400 Bad Request: пустой или отсутствующий username (хранилище не трогаем);
//   - 500 Internal Server Error: ошибка хранилища.
//
// @Summary      Create user
// @Description  Creates a new user with a generated short id.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body api.CreateUserRequest true "Create user request"
// @Success      200 {object} api.UserResponse
// @Failure      400 {object} api.ErrorResponse "Username is required"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /api/exercise/new-user [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
			return
		}
	} else {
		req.Username = r.PostFormValue("username")
	}

	user, err := h.Svc.Users.Create(r.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUsernameRequired):
			WriteError(w, http.StatusBadRequest, serr.ErrUsernameRequired)
		default:
			h.Log.Logger.Sugar().Errorw("create user failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, UserResponse{ID: user.ID, Username: user.Username})
}
