package domain

import (
	"time"

	"github.com/avc/printshop-dashboard/internal/rollup"
	"github.com/shopspring/decimal"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// Valid проверяет, что статус известен
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// User представляет оператора панели
type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Shop представляет магазин на площадке
type Shop struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product представляет товар магазина
type Product struct {
	ID        int64           `json:"id"`
	ShopID    int64           `json:"shop_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	PriceUsd  decimal.Decimal `json:"price_usd"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderItem представляет позицию заказа
type OrderItem struct {
	ID           int64           `json:"id"`
	ProductID    *int64          `json:"product_id,omitempty"`
	Name         string          `json:"name"`
	UnitPriceUsd decimal.Decimal `json:"unit_price_usd"`
	Quantity     int             `json:"quantity"`
}

// LineTotal стоимость позиции в USD
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPriceUsd.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order представляет заказ магазина.
// Хранятся только USD-поля и курсы, все производные суммы пересчитываются при чтении.
type Order struct {
	ID               int64              `json:"id"`
	ShopID           int64              `json:"shop_id"`
	Number           string             `json:"number"`
	CustomerName     string             `json:"customer_name"`
	Status           OrderStatus        `json:"status"`
	Items            []OrderItem        `json:"items"`
	DiscountRatePct  decimal.Decimal    `json:"discount_rate_pct"`
	BuyerPaidUsd     decimal.Decimal    `json:"buyer_paid_usd"`
	OrderEarningsUsd decimal.Decimal    `json:"order_earnings_usd"`
	ExchangeRate     decimal.Decimal    `json:"exchange_rate"`
	FeeLines         []rollup.FeeLine   `json:"fee_lines"`
	BonusLines       []rollup.BonusLine `json:"bonus_lines"`
	Note             string             `json:"note"`
	OrderedAt        time.Time          `json:"ordered_at"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// ItemTotalUsd сумма позиций заказа
func (o *Order) ItemTotalUsd() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Financials восстанавливает входные данные расчета из сохраненных полей заказа
func (o *Order) Financials() rollup.OrderFinancials {
	return rollup.OrderFinancials{
		ItemTotalUsd:          o.ItemTotalUsd(),
		DiscountRatePct:       o.DiscountRatePct,
		BuyerPaidUsd:          o.BuyerPaidUsd,
		OrderEarningsUsd:      o.OrderEarningsUsd,
		ExchangeRateVndPerUsd: o.ExchangeRate,
		FeeLines:              o.FeeLines,
		BonusLines:            o.BonusLines,
	}
}

// OrderView заказ вместе с рассчитанными итогами
type OrderView struct {
	*Order
	ItemTotal decimal.Decimal `json:"item_total_usd"`
	Rollup    *rollup.Result  `json:"rollup"`
}

// OrderFilter параметры выборки заказов
type OrderFilter struct {
	ShopID *int64
	Status *OrderStatus
	From   *time.Time
	To     *time.Time
}

// ShopSummary итоги магазина за период
type ShopSummary struct {
	ShopID int64      `json:"shop_id"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
	rollup.Totals
}

// ExchangeRate сохраненный курс обмена
type ExchangeRate struct {
	ID        int64           `json:"-"`
	Base      string          `json:"base"`
	Quote     string          `json:"quote"`
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// RateResponse представляет ответ от сервиса курсов
type RateResponse struct {
	Base  string          `json:"base"`
	Quote string          `json:"quote"`
	Rate  decimal.Decimal `json:"rate"`
}
