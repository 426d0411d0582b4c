// @title           Exercise Tracker API
// @version         1.0
// @description     Minimal exercise tracking REST service.
// @description     Create users, log exercises and query an exercise log.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
// @schemes http
//
// Package main содержит точку входа сервера трекера упражнений.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - открытие подключения к базе данных, миграции и управление
//     жизненным циклом подключения (закрывается при остановке);
//   - создание репозиториев, сервисов и HTTP-обработчиков;
//   - настройку и запуск HTTP-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется
// с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/api"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/config"
	h "github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/repository"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/server/service"
	"github.com/IvanChernomyrdin/go-exercise-tracker/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-exercise-tracker/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}

	// подключаем базу данных: соединение принадлежит main,
	// репозитории получают его явно
	db, err := config.OpenDB(cfg)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	// создаём репы
	usersRepo := repository.NewUsersRepository(db)
	exercisesRepo := repository.NewExercisesRepository(db)
	// складываем в репозиторий
	repos := service.Repositories{
		Users:     usersRepo,
		Exercises: exercisesRepo,
	}
	// создаём сервис
	svc := service.NewServices(repos)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger)
	// создаём роутер
	router := h.NewRouter(handler, cfg)
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
