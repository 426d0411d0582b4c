// Package api реализует HTTP-слой трекера упражнений.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - терминальную нормализацию ошибок (404 fallback, ошибки валидации
//     с пофилдовыми сообщениями) в plain-text ответы.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/service"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/logger"
)

// Каждый хендлер отвечает ровно один раз и в JSON.
// Вынес Content-Type для удобства.
const (
	JsonContentType string = "application/json"
	TextContentType string = "text/plain; charset=utf-8"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc *service.Services
	Log *logger.HTTPLogger
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger) *Handler {
	return &Handler{
		Svc: svc,
		Log: log,
	}
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Вспомогательная функция вывода ошибки в JSON
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}

// WriteJSON сериализует успешный ответ с указанным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// isJSON сообщает, пришло ли тело запроса в JSON.
// Иначе тело трактуется как HTML-форма (application/x-www-form-urlencoded) —
// сервис принимает оба формата.
func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(ContentType), JsonContentType)
}
