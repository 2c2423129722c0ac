package app

import (
	"context"

	"github.com/avc/printshop-dashboard/internal/cache"
	"github.com/avc/printshop-dashboard/internal/config"
	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/handlers"
	"github.com/avc/printshop-dashboard/internal/metrics"
	"github.com/avc/printshop-dashboard/internal/repository/postgres"
	"github.com/avc/printshop-dashboard/internal/service"
	"github.com/avc/printshop-dashboard/internal/utils/jwt"
	"github.com/avc/printshop-dashboard/internal/utils/password"
	"github.com/avc/printshop-dashboard/internal/worker"
	"github.com/bsm/redislock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user    domain.UserRepository
	shop    domain.ShopRepository
	product domain.ProductRepository
	order   domain.OrderRepository
	rate    domain.ExchangeRateRepository
}

// services содержит все сервисы приложения
type services struct {
	auth    domain.AuthService
	shop    domain.ShopService
	product domain.ProductService
	order   domain.OrderService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	shops    *handlers.ShopsHandler
	products *handlers.ProductsHandler
	orders   *handlers.OrdersHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	metrics    *metrics.Metrics
	ratesPool  *worker.RatesPool // nil, если сервис курсов не настроен
}

// initDependencies создает все зависимости приложения. rdb может быть nil.
func initDependencies(
	cfg *config.Config,
	db postgres.DBTX,
	dbPinger handlers.Pinger,
	rdb *redis.Client,
	reg prometheus.Registerer,
	logger *zap.Logger,
) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		user:    postgres.NewUserRepository(db),
		shop:    postgres.NewShopRepository(db),
		product: postgres.NewProductRepository(db),
		order:   postgres.NewOrderRepository(db),
		rate:    postgres.NewExchangeRateRepository(db),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost, cfg.MinPasswordLength)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)
	orderCache := cache.NewOrderCache(rdb, cfg.CacheTTL)
	m := metrics.New(reg)

	// Создание сервисов
	svcs := &services{
		auth:    service.NewAuthService(repos.user, passwordHasher, jwtManager, cfg.RegistrationEnabled),
		shop:    service.NewShopService(repos.shop, orderCache, logger),
		product: service.NewProductService(repos.product),
		order:   service.NewOrderService(repos.order, repos.rate, orderCache, logger),
	}

	var cachePinger handlers.Pinger
	if rdb != nil {
		cachePinger = handlers.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, m, logger),
		shops:    handlers.NewShopsHandler(svcs.shop, m, logger),
		products: handlers.NewProductsHandler(svcs.product, m, logger),
		orders:   handlers.NewOrdersHandler(svcs.order, m, logger),
		health:   handlers.NewHealthHandler(dbPinger, cachePinger, logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		metrics:    m,
		ratesPool:  initRatesPool(cfg, repos.rate, rdb, logger),
	}
}

// initRatesPool создает пул обновления курсов или nil, если адрес сервиса курсов не задан
func initRatesPool(
	cfg *config.Config,
	rateRepo domain.ExchangeRateRepository,
	rdb *redis.Client,
	logger *zap.Logger,
) *worker.RatesPool {
	if cfg.RatesAPIAddress == "" {
		logger.Info("rates service is not configured, exchange rates refresh disabled")
		return nil
	}

	var locker *redislock.Client
	if rdb != nil {
		locker = redislock.New(rdb)
	}

	poolConfig := worker.Config{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		Base:         service.BaseCurrency,
		Quotes:       cfg.RatesQuotes,
		ScanInterval: cfg.RatesRefreshInterval,
	}
	return worker.NewRatesPool(poolConfig, service.NewRatesClient(cfg.RatesAPIAddress), rateRepo, locker, logger)
}
