package app

import (
	"net/http"

	"github.com/avc/printshop-dashboard/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, allowedOrigins []string, gatherer prometheus.Gatherer, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, deps, allowedOrigins, logger)

	// Маршруты
	setupRoutes(r, deps, gatherer)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, deps *dependencies, allowedOrigins []string, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(deps.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Authorization", "Content-Disposition", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, gatherer prometheus.Gatherer) {
	h := deps.handlers

	// Health check и метрики
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Публичные эндпоинты
	r.Post("/api/user/register", h.auth.Register)
	r.Post("/api/user/login", h.auth.Login)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))

		r.Route("/api/shops", func(r chi.Router) {
			r.Post("/", h.shops.CreateShop)
			r.Get("/", h.shops.ListShops)

			r.Route("/{shopID}", func(r chi.Router) {
				r.Get("/", h.shops.GetShop)
				r.Put("/", h.shops.UpdateShop)
				r.Delete("/", h.shops.DeleteShop)
				r.Get("/summary", h.orders.ShopSummary)

				r.Post("/products", h.products.CreateProduct)
				r.Get("/products", h.products.ListProducts)
				r.Get("/products/search", h.products.SearchProducts)
			})
		})

		r.Route("/api/products/{productID}", func(r chi.Router) {
			r.Get("/", h.products.GetProduct)
			r.Put("/", h.products.UpdateProduct)
			r.Delete("/", h.products.DeleteProduct)
		})

		r.Route("/api/orders", func(r chi.Router) {
			r.Post("/", h.orders.CreateOrder)
			r.Get("/", h.orders.ListOrders)
			r.Get("/export", h.orders.ExportOrders)

			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", h.orders.GetOrder)
				r.Put("/", h.orders.UpdateOrder)
				r.Delete("/", h.orders.DeleteOrder)
				r.Patch("/status", h.orders.UpdateOrderStatus)
			})
		})

		r.Post("/api/rollup/preview", h.orders.PreviewRollup)
	})
}
