package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SurfShopService/internal/config"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
)

// loadConfig читает конфигурацию и поднимает логгер
func loadConfig(path string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Configuration loaded from %s", path)
	return cfg, log, nil
}

// openDB подключается к базе и проверяет соединение
func openDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
