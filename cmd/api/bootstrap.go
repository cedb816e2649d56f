package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"epidash-service/internal/config"
	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/logger"
)

func bootstrap(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log.With("app", cfg.App.Name, "version", cfg.App.Version), nil
}

func openDB(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// mockRange is validated by config.Load.
func mockRange(cfg *config.Config) (domain.Date, domain.Date) {
	return domain.MustParseDate(cfg.Mock.StartDate), domain.MustParseDate(cfg.Mock.EndDate)
}
