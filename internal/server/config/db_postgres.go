// Package config содержит инициализацию подключения к базе данных сервера
// и доступ к экземпляру *sql.DB.
//
// Пакет выполняет:
//   - открытие соединения с PostgreSQL (через драйвер pgx);
//   - проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
package config

import (
	"database/sql"

	"github.com/Aditya-Angaj/plantcare/internal/shared/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenDB открывает подключение к базе данных по настройкам из конфига,
// проверяет его доступность и применяет миграции.
//
// Экземпляр *sql.DB возвращается наружу и передаётся в репозитории
// явно (dependency injection), глобального состояния пакет не держит.
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func OpenDB(cfg *Config) (*sql.DB, error) {
	customLog := logger.NewHTTPLogger().Logger.Sugar()

	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		customLog.Errorf("error to connect db: %v", err)
		return nil, err
	}

	// пул соединений из конфига
	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}
	if cfg.DB.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.DB.ConnMaxIdleTime)
	}

	if err = db.Ping(); err != nil {
		customLog.Errorf("error check db connection: %v", err)
		db.Close()
		return nil, err
	}

	if cfg.Migrations.Enabled {
		if err := runMigrations(db, cfg.Migrations.Path); err != nil {
			db.Close()
			return nil, err
		}
		customLog.Info("migrations applied successfully")
	}

	return db, nil
}

// runMigrations применяет миграции из каталога path (file://...).
func runMigrations(db *sql.DB, path string) error {
	customLog := logger.NewHTTPLogger().Logger.Sugar()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		customLog.Errorf("error creating migration driver: %v", err)
		return err
	}

	if path == "" {
		path = "file://migrations/postgres"
	}

	m, err := migrate.NewWithDatabaseInstance(path, "postgres", driver)
	if err != nil {
		customLog.Errorf("error creating migrations: %v", err)
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		customLog.Errorf("error applying migrations: %v", err)
		return err
	}
	return nil
}
