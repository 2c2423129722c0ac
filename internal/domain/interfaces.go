package domain

import (
	"context"
	"time"

	"github.com/avc/printshop-dashboard/internal/rollup"
	"github.com/shopspring/decimal"
)

// UserRepository определяет методы для работы с операторами
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// ShopRepository определяет методы для работы с магазинами
type ShopRepository interface {
	CreateShop(ctx context.Context, shop *Shop) (*Shop, error)
	GetShop(ctx context.Context, id int64) (*Shop, error)
	ListShops(ctx context.Context) ([]*Shop, error)
	UpdateShop(ctx context.Context, shop *Shop) (*Shop, error)
	DeleteShop(ctx context.Context, id int64) error
}

// ProductRepository определяет методы для работы с товарами
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context, shopID int64) ([]*Product, error)
	SearchProducts(ctx context.Context, shopID int64, query string, limit int) ([]*Product, error)
	UpdateProduct(ctx context.Context, product *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	UpdateOrder(ctx context.Context, order *Order) (*Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status OrderStatus) error
	DeleteOrder(ctx context.Context, id int64) error
}

// ExchangeRateRepository определяет методы для работы с курсами обмена
type ExchangeRateRepository interface {
	SaveRate(ctx context.Context, base, quote string, rate decimal.Decimal) error
	GetLatestRate(ctx context.Context, base, quote string) (*ExchangeRate, error)
}

// OrderCache кеш сохраненных заказов.
// Итоги заказов в кеш не попадают, они всегда пересчитываются.
type OrderCache interface {
	GetOrder(ctx context.Context, id int64) (*Order, error)
	SetOrder(ctx context.Context, order *Order) error
	GetShopOrders(ctx context.Context, shopID int64) ([]*Order, error)
	SetShopOrders(ctx context.Context, shopID int64, orders []*Order) error
	InvalidateOrder(ctx context.Context, orderID, shopID int64) error
	InvalidateShop(ctx context.Context, shopID int64) error
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

// ShopService определяет методы работы с магазинами
type ShopService interface {
	CreateShop(ctx context.Context, shop *Shop) (*Shop, error)
	GetShop(ctx context.Context, id int64) (*Shop, error)
	ListShops(ctx context.Context) ([]*Shop, error)
	UpdateShop(ctx context.Context, shop *Shop) (*Shop, error)
	DeleteShop(ctx context.Context, id int64) error
}

// ProductService определяет методы работы с товарами
type ProductService interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context, shopID int64) ([]*Product, error)
	SearchProducts(ctx context.Context, shopID int64, query string, limit int) ([]*Product, error)
	UpdateProduct(ctx context.Context, product *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderService определяет методы работы с заказами
type OrderService interface {
	CreateOrder(ctx context.Context, order *Order) (*OrderView, error)
	GetOrder(ctx context.Context, id int64) (*OrderView, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*OrderView, error)
	UpdateOrder(ctx context.Context, order *Order) (*OrderView, error)
	UpdateOrderStatus(ctx context.Context, id int64, status OrderStatus) error
	DeleteOrder(ctx context.Context, id int64) error
	PreviewRollup(ctx context.Context, financials rollup.OrderFinancials, useLatestRate bool) (*rollup.Result, error)
	ShopSummary(ctx context.Context, shopID int64, from, to *time.Time) (*ShopSummary, error)
}

// RatesClient определяет методы взаимодействия с сервисом курсов
type RatesClient interface {
	GetRate(ctx context.Context, base, quote string) (*RateResponse, error)
}
