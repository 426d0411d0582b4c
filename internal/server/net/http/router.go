// Package http реализует маршрутизацию HTTP-слоя трекера упражнений.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - подключение middleware (CORS, логирование, rate limit, метрики);
//   - раздачу статики (лендинг);
//   - терминальный 404 fallback через нормализатор ошибок.
package http

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/api"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/config"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - CORS (открыт для всех — исторический контракт) и логирование;
//   - опциональный rate limit по IP (security.rate_limit);
//   - /metrics (prometheus) и /swagger;
//   - четыре маршрута API под префиксом /api/exercise;
//   - /healthz и статику лендинга на /;
//   - всё остальное уходит в нормализатор ошибок как 404 "not found".
func NewRouter(h *api.Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// cors открыт для всех, как в исходном сервисе
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	if cfg.Security.RateLimit.Enabled {
		r.Use(httprate.LimitByIP(cfg.Security.RateLimit.Requests, cfg.Security.RateLimit.Window))
	}

	if cfg.Observability.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware())
		r.Handle(cfg.Observability.Metrics.Path, promhttp.Handler())
	}

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// маршруты API
	r.Route("/api/exercise", func(r chi.Router) {
		r.Get("/users", h.ListUsers)      // все пользователи
		r.Post("/new-user", h.CreateUser) // создание пользователя
		r.Post("/add", h.AddExercise)     // добавление упражнения
		r.Get("/log", h.GetLog)           // журнал с фильтрами
	})

	r.Get("/healthz", h.Healthz)

	// лендинг и статика
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.Static.Dir, "index.html"))
	})
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(cfg.Static.Dir))))

	// всё остальное — в нормализатор ошибок
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}
