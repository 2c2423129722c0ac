package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationClosed = errors.New("registration is closed")
)

// Ошибки магазинов и товаров
var (
	ErrShopExists      = errors.New("shop already exists")
	ErrShopNotFound    = errors.New("shop not found")
	ErrProductExists   = errors.New("product with this sku already exists")
	ErrProductNotFound = errors.New("product not found")
)

// Ошибки заказов
var (
	ErrOrderExists   = errors.New("order already exists")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrCorruptOrder  = errors.New("stored order has invalid financials")
)

// Ошибки курсов и кеша
var (
	ErrRateNotFound = errors.New("exchange rate not found")
	ErrCacheMiss    = errors.New("cache miss")
)
