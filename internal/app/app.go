package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/printshop-dashboard/internal/config"
	"github.com/avc/printshop-dashboard/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config    *config.Config
	logger    *zap.Logger
	db        *pgxpool.Pool
	rdb       *redis.Client
	ratesPool *worker.RatesPool
	server    *http.Server
}

// NewApp создает новое приложение из аргументов командной строки
func NewApp(args []string) (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load(args)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}

	// Redis необязателен
	rdb, err := initRedis(ctx, cfg.RedisURL, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	// Инициализация зависимостей
	deps := initDependencies(cfg, dbPool, dbPool, rdb, prometheus.DefaultRegisterer, logger)

	// Настройка роутера
	router := setupRouter(deps, cfg.CORSAllowedOrigins, prometheus.DefaultGatherer, logger)

	return &App{
		config:    cfg,
		logger:    logger,
		db:        dbPool,
		rdb:       rdb,
		ratesPool: deps.ratesPool,
		server:    createServer(cfg.RunAddress, router),
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск обновления курсов
	if a.ratesPool != nil {
		a.ratesPool.Start(ctx)
		a.logger.Info("rates pool started")
	}

	// Запуск HTTP сервера и ожидание сигнала завершения
	err := a.runServer(ctx)

	// Graceful shutdown
	a.shutdown(cancel)

	return err
}
