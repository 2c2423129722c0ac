package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/printshop-dashboard/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	applicationName  = "printshop-dashboard"
	databasePingWait = 5 * time.Second
)

// poolConfig разбирает URI базы и подписывает соединения именем сервиса
func poolConfig(databaseURI string) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(databaseURI)
	if err != nil {
		return nil, fmt.Errorf("invalid database URI: %w", err)
	}
	if _, ok := cfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		cfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	return cfg, nil
}

// initDatabase открывает пул, проверяет соединение и применяет схему панели
func initDatabase(ctx context.Context, databaseURI string, logger *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(databaseURI)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, databasePingWait)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.ConnConfig.Host, err)
	}
	logger.Info("database is reachable",
		zap.String("host", cfg.ConnConfig.Host),
		zap.String("database", cfg.ConnConfig.Database),
		zap.Int32("max_conns", cfg.MaxConns),
	)

	if err := postgres.RunMigrations(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply dashboard schema: %w", err)
	}

	return pool, nil
}
