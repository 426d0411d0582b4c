// Терминальная нормализация ошибок.
//
// Любая ошибка, не обработанная хендлерами явно — запрос мимо всех
// маршрутов или ошибка валидации с пофилдовыми сообщениями, —
// превращается в plain-text ответ с кодом.
package api

import (
	"errors"
	"io"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/errors"
)

// Normalize возвращает HTTP-статус и текст сообщения для произвольной ошибки.
//
// Правила:
//   - ValidationError — 400 и сообщение первого поля (порядок объявления);
//   - StatusError — явный статус (0 трактуется как 500) и сообщение;
//   - прочие ошибки — 500 и их сообщение;
//   - пустое сообщение — "Internal Server Error".
func Normalize(err error) (int, string) {
	var vErr *serr.ValidationError
	if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
		return http.StatusBadRequest, vErr.Fields[0].Message
	}

	status := http.StatusInternalServerError
	message := ""

	var sErr *serr.StatusError
	switch {
	case errors.As(err, &sErr):
		if sErr.Status != 0 {
			status = sErr.Status
		}
		message = sErr.Message
	case err != nil:
		message = err.Error()
	}

	if message == "" {
		message = "Internal Server Error"
	}
	return status, message
}

// WriteNormalized пишет нормализованную ошибку плоским текстом.
func WriteNormalized(w http.ResponseWriter, err error) {
	status, message := Normalize(err)
	w.Header().Set(ContentType, TextContentType)
	w.WriteHeader(status)
	io.WriteString(w, message)
}

// NotFound обрабатывает запросы, не совпавшие ни с одним маршрутом:
// они превращаются в ошибку со статусом 404 и сообщением "not found"
// и уходят в нормализатор.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteNormalized(w, &serr.StatusError{
		Status:  http.StatusNotFound,
		Message: serr.ErrNotFound.Error(),
	})
}
