// Открытие подключения к PostgreSQL и запуск миграций.
//
// Глобального состояния нет: подключение создаётся один раз в main,
// передаётся в репозитории явно и закрывается при остановке сервера.
package config

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenDB открывает подключение к базе данных по cfg.DB.DSN, настраивает
// пул соединений, проверяет доступность базы (Ping) и применяет миграции
// (golang-migrate), если они включены в конфиге.
//
// Возвращённый *sql.DB принадлежит вызывающей стороне — она обязана
// закрыть его при завершении работы.
func OpenDB(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if cfg.Migrations.Enabled {
		if err := runMigrations(db, cfg.Migrations.Path); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

// runMigrations применяет миграции из каталога path.
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func runMigrations(db *sql.DB, path string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrations: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
