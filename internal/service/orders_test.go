package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/printshop-dashboard/internal/domain"
	domainmocks "github.com/avc/printshop-dashboard/internal/domain/mocks"
	"github.com/avc/printshop-dashboard/internal/rollup"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type orderServiceDeps struct {
	orders *domainmocks.OrderRepositoryMock
	rates  *domainmocks.ExchangeRateRepositoryMock
	cache  *domainmocks.OrderCacheMock
}

func newTestOrderService(t *testing.T) (*OrderService, orderServiceDeps) {
	deps := orderServiceDeps{
		orders: domainmocks.NewOrderRepositoryMock(t),
		rates:  domainmocks.NewExchangeRateRepositoryMock(t),
		cache:  domainmocks.NewOrderCacheMock(t),
	}
	svc := NewOrderService(deps.orders, deps.rates, deps.cache, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC) }
	return svc, deps
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// dashboardOrder заказ из примера панели: 100 USD, скидка 10%, доставка 5, бонус 2
func dashboardOrder() *domain.Order {
	return &domain.Order{
		ShopID:           1,
		Number:           "ETSY-1001",
		Items:            []domain.OrderItem{{Name: "A3 print", UnitPriceUsd: dec("50"), Quantity: 2}},
		DiscountRatePct:  dec("10"),
		BuyerPaidUsd:     dec("90"),
		OrderEarningsUsd: dec("85"),
		ExchangeRate:     dec("25000"),
		FeeLines:         []rollup.FeeLine{{Kind: rollup.FeeKindShipping, AmountUsd: dec("5")}},
		BonusLines:       []rollup.BonusLine{{Kind: rollup.BonusKindOther, AmountUsd: dec("2")}},
	}
}

func persisted(o *domain.Order, id int64) *domain.Order {
	cp := *o
	cp.ID = id
	return &cp
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		order := dashboardOrder()

		deps.orders.EXPECT().CreateOrder(mock.Anything, order).
			RunAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				return persisted(o, 42), nil
			}).Once()
		deps.cache.EXPECT().InvalidateOrder(mock.Anything, int64(42), int64(1)).Return(nil).Once()

		v, err := svc.CreateOrder(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, v.Status)
		assert.Equal(t, svc.now().UTC(), v.OrderedAt)
		assert.True(t, v.ItemTotal.Equal(dec("100")))
		assert.True(t, v.Rollup.SubtotalUsd.Equal(dec("90")))
		assert.True(t, v.Rollup.ProfitUsd.Equal(dec("82")))
		assert.True(t, v.Rollup.ProfitVnd.Equal(dec("2050000")))
	})

	t.Run("Invalid financials are not persisted", func(t *testing.T) {
		svc, _ := newTestOrderService(t)
		order := dashboardOrder()
		order.DiscountRatePct = dec("-1")

		_, err := svc.CreateOrder(ctx, order)

		var vErr *rollup.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "discountRatePct", vErr.Field)
	})

	t.Run("Missing rate is filled from latest stored rate", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		order := dashboardOrder()
		order.ExchangeRate = decimal.Zero

		deps.rates.EXPECT().GetLatestRate(mock.Anything, "USD", "VND").
			Return(&domain.ExchangeRate{Base: "USD", Quote: "VND", Rate: dec("24000")}, nil).Once()
		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				return persisted(o, 43), nil
			}).Once()
		deps.cache.EXPECT().InvalidateOrder(mock.Anything, int64(43), int64(1)).Return(nil).Once()

		v, err := svc.CreateOrder(ctx, order)
		require.NoError(t, err)
		assert.True(t, v.ExchangeRate.Equal(dec("24000")))
		assert.True(t, v.Rollup.OrderEarningsVnd.Equal(dec("2040000")))
	})

	t.Run("No rate known", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		order := dashboardOrder()
		order.ExchangeRate = decimal.Zero

		deps.rates.EXPECT().GetLatestRate(mock.Anything, "USD", "VND").Return(nil, domain.ErrRateNotFound).Once()

		_, err := svc.CreateOrder(ctx, order)

		var vErr *rollup.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "exchangeRateVndPerUsd", vErr.Field)
	})

	t.Run("Bad item", func(t *testing.T) {
		svc, _ := newTestOrderService(t)
		order := dashboardOrder()
		order.Items[0].Quantity = 0

		_, err := svc.CreateOrder(ctx, order)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Unknown status", func(t *testing.T) {
		svc, _ := newTestOrderService(t)
		order := dashboardOrder()
		order.Status = "lost"

		_, err := svc.CreateOrder(ctx, order)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("Duplicate number", func(t *testing.T) {
		svc, deps := newTestOrderService(t)

		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, domain.ErrOrderExists).Once()

		_, err := svc.CreateOrder(ctx, dashboardOrder())
		assert.ErrorIs(t, err, domain.ErrOrderExists)
	})

	t.Run("Cache failure does not fail the write", func(t *testing.T) {
		svc, deps := newTestOrderService(t)

		deps.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				return persisted(o, 44), nil
			}).Once()
		deps.cache.EXPECT().InvalidateOrder(mock.Anything, int64(44), int64(1)).Return(errors.New("redis down")).Once()

		_, err := svc.CreateOrder(ctx, dashboardOrder())
		assert.NoError(t, err)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache hit", func(t *testing.T) {
		svc, deps := newTestOrderService(t)

		deps.cache.EXPECT().GetOrder(mock.Anything, int64(42)).Return(persisted(dashboardOrder(), 42), nil).Once()

		v, err := svc.GetOrder(ctx, 42)
		require.NoError(t, err)
		assert.True(t, v.Rollup.TotalFeesVnd.Equal(dec("125000")))
	})

	t.Run("Cache miss loads from repository", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		stored := persisted(dashboardOrder(), 42)

		deps.cache.EXPECT().GetOrder(mock.Anything, int64(42)).Return(nil, domain.ErrCacheMiss).Once()
		deps.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(stored, nil).Once()
		deps.cache.EXPECT().SetOrder(mock.Anything, stored).Return(nil).Once()

		v, err := svc.GetOrder(ctx, 42)
		require.NoError(t, err)
		assert.True(t, v.Rollup.DiscountAmountUsd.Equal(dec("10")))
	})

	t.Run("Not found", func(t *testing.T) {
		svc, deps := newTestOrderService(t)

		deps.cache.EXPECT().GetOrder(mock.Anything, int64(404)).Return(nil, domain.ErrCacheMiss).Once()
		deps.orders.EXPECT().GetOrder(mock.Anything, int64(404)).Return(nil, domain.ErrOrderNotFound).Once()

		_, err := svc.GetOrder(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Stored order with invalid financials", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		broken := persisted(dashboardOrder(), 7)
		broken.ExchangeRate = dec("0.0000")

		deps.cache.EXPECT().GetOrder(mock.Anything, int64(7)).Return(nil, domain.ErrCacheMiss).Once()
		deps.orders.EXPECT().GetOrder(mock.Anything, int64(7)).Return(broken, nil).Once()
		deps.cache.EXPECT().SetOrder(mock.Anything, broken).Return(nil).Once()

		_, err := svc.GetOrder(ctx, 7)
		require.ErrorIs(t, err, domain.ErrCorruptOrder)

		var vErr *rollup.ValidationError
		assert.False(t, errors.As(err, &vErr))
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()
	shopID := int64(1)

	t.Run("Whole shop list is cached", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		orders := []*domain.Order{persisted(dashboardOrder(), 1), persisted(dashboardOrder(), 2)}

		deps.cache.EXPECT().GetShopOrders(mock.Anything, shopID).Return(nil, domain.ErrCacheMiss).Once()
		deps.orders.EXPECT().ListOrders(mock.Anything, domain.OrderFilter{ShopID: &shopID}).Return(orders, nil).Once()
		deps.cache.EXPECT().SetShopOrders(mock.Anything, shopID, orders).Return(nil).Once()

		views, err := svc.ListOrders(ctx, domain.OrderFilter{ShopID: &shopID})
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.True(t, views[1].Rollup.ProfitUsd.Equal(dec("82")))
	})

	t.Run("Order with invalid stored financials is skipped", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		tiny := persisted(dashboardOrder(), 1)
		tiny.ExchangeRate = dec("0.00001")
		broken := persisted(dashboardOrder(), 2)
		broken.ExchangeRate = dec("0.0000")
		orders := []*domain.Order{tiny, broken}

		deps.cache.EXPECT().GetShopOrders(mock.Anything, shopID).Return(nil, domain.ErrCacheMiss).Once()
		deps.orders.EXPECT().ListOrders(mock.Anything, domain.OrderFilter{ShopID: &shopID}).Return(orders, nil).Once()
		deps.cache.EXPECT().SetShopOrders(mock.Anything, shopID, orders).Return(nil).Once()

		views, err := svc.ListOrders(ctx, domain.OrderFilter{ShopID: &shopID})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, int64(1), views[0].ID)
		// 85 USD * 0.00001
		assert.True(t, views[0].Rollup.OrderEarningsVnd.Equal(dec("0.00085")))
	})

	t.Run("Filtered list bypasses cache", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		status := domain.OrderStatusShipped
		filter := domain.OrderFilter{ShopID: &shopID, Status: &status}

		deps.orders.EXPECT().ListOrders(mock.Anything, filter).Return([]*domain.Order{}, nil).Once()

		views, err := svc.ListOrders(ctx, filter)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("Unknown status filter", func(t *testing.T) {
		svc, _ := newTestOrderService(t)
		status := domain.OrderStatus("lost")

		_, err := svc.ListOrders(ctx, domain.OrderFilter{Status: &status})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Keeps shop and frozen rate", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		existing := persisted(dashboardOrder(), 42)
		existing.Status = domain.OrderStatusShipped

		change := dashboardOrder()
		change.ID = 42
		change.ShopID = 99
		change.ExchangeRate = decimal.Zero
		change.OrderEarningsUsd = dec("80")

		deps.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(existing, nil).Once()
		deps.orders.EXPECT().UpdateOrder(mock.Anything, change).
			RunAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				cp := *o
				return &cp, nil
			}).Once()
		deps.cache.EXPECT().InvalidateOrder(mock.Anything, int64(42), int64(1)).Return(nil).Once()

		v, err := svc.UpdateOrder(ctx, change)
		require.NoError(t, err)
		assert.Equal(t, int64(1), v.ShopID)
		assert.Equal(t, domain.OrderStatusShipped, v.Status)
		assert.True(t, v.ExchangeRate.Equal(dec("25000")))
		assert.True(t, v.Rollup.ProfitUsd.Equal(dec("77")))
	})

	t.Run("Not found", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		change := dashboardOrder()
		change.ID = 404

		deps.orders.EXPECT().GetOrder(mock.Anything, int64(404)).Return(nil, domain.ErrOrderNotFound).Once()

		_, err := svc.UpdateOrder(ctx, change)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Invalid fee line", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		change := dashboardOrder()
		change.ID = 42
		change.FeeLines[0].AmountUsd = dec("-5")

		deps.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(persisted(dashboardOrder(), 42), nil).Once()

		_, err := svc.UpdateOrder(ctx, change)

		var vErr *rollup.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "feeLines[0].amountUsd", vErr.Field)
	})
}

func TestOrderService_StatusAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Status updated", func(t *testing.T) {
		svc, deps := newTestOrderService(t)

		deps.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(persisted(dashboardOrder(), 42), nil).Once()
		deps.orders.EXPECT().UpdateOrderStatus(mock.Anything, int64(42), domain.OrderStatusCompleted).Return(nil).Once()
		deps.cache.EXPECT().InvalidateOrder(mock.Anything, int64(42), int64(1)).Return(nil).Once()

		assert.NoError(t, svc.UpdateOrderStatus(ctx, 42, domain.OrderStatusCompleted))
	})

	t.Run("Unknown status", func(t *testing.T) {
		svc, _ := newTestOrderService(t)

		assert.ErrorIs(t, svc.UpdateOrderStatus(ctx, 42, "lost"), domain.ErrInvalidStatus)
	})

	t.Run("Delete", func(t *testing.T) {
		svc, deps := newTestOrderService(t)

		deps.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(persisted(dashboardOrder(), 42), nil).Once()
		deps.orders.EXPECT().DeleteOrder(mock.Anything, int64(42)).Return(nil).Once()
		deps.cache.EXPECT().InvalidateOrder(mock.Anything, int64(42), int64(1)).Return(nil).Once()

		assert.NoError(t, svc.DeleteOrder(ctx, 42))
	})

	t.Run("Delete database error", func(t *testing.T) {
		svc, deps := newTestOrderService(t)

		deps.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(persisted(dashboardOrder(), 42), nil).Once()
		deps.orders.EXPECT().DeleteOrder(mock.Anything, int64(42)).Return(errors.New("db error")).Once()

		err := svc.DeleteOrder(ctx, 42)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderService_PreviewRollup(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses given rate", func(t *testing.T) {
		svc, _ := newTestOrderService(t)

		res, err := svc.PreviewRollup(ctx, dashboardOrder().Financials(), false)
		require.NoError(t, err)
		assert.True(t, res.TotalBonusVnd.Equal(dec("50000")))
	})

	t.Run("Explicit zero rate is rejected", func(t *testing.T) {
		svc, _ := newTestOrderService(t)
		f := dashboardOrder().Financials()
		f.ExchangeRateVndPerUsd = decimal.Zero

		_, err := svc.PreviewRollup(ctx, f, false)

		var vErr *rollup.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "exchangeRateVndPerUsd", vErr.Field)
	})

	t.Run("Fills missing rate", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		f := dashboardOrder().Financials()
		f.ExchangeRateVndPerUsd = decimal.Zero

		deps.rates.EXPECT().GetLatestRate(mock.Anything, "USD", "VND").
			Return(&domain.ExchangeRate{Rate: dec("20000")}, nil).Once()

		res, err := svc.PreviewRollup(ctx, f, true)
		require.NoError(t, err)
		assert.True(t, res.OrderEarningsVnd.Equal(dec("1700000")))
	})

	t.Run("Missing rate and none stored", func(t *testing.T) {
		svc, deps := newTestOrderService(t)

		f := dashboardOrder().Financials()
		f.ExchangeRateVndPerUsd = decimal.Zero

		deps.rates.EXPECT().GetLatestRate(mock.Anything, "USD", "VND").Return(nil, domain.ErrRateNotFound).Once()

		_, err := svc.PreviewRollup(ctx, f, true)

		var vErr *rollup.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "exchangeRateVndPerUsd", vErr.Field)
	})

	t.Run("Rate lookup error", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		f := dashboardOrder().Financials()

		deps.rates.EXPECT().GetLatestRate(mock.Anything, "USD", "VND").Return(nil, errors.New("db error")).Once()

		_, err := svc.PreviewRollup(ctx, f, true)
		assert.Error(t, err)
	})
}

func TestOrderService_ShopSummary(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Cancelled orders are skipped", func(t *testing.T) {
		svc, deps := newTestOrderService(t)
		shopID := int64(1)
		cancelled := persisted(dashboardOrder(), 3)
		cancelled.Status = domain.OrderStatusCancelled
		orders := []*domain.Order{persisted(dashboardOrder(), 1), persisted(dashboardOrder(), 2), cancelled}

		deps.orders.EXPECT().ListOrders(mock.Anything, domain.OrderFilter{ShopID: &shopID, From: &from, To: &to}).
			Return(orders, nil).Once()

		summary, err := svc.ShopSummary(ctx, 1, &from, &to)
		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.ShopID)
		assert.Equal(t, 2, summary.Orders)
		assert.True(t, summary.ProfitUsd.Equal(dec("164")))
		assert.True(t, summary.ProfitVnd.Equal(dec("4100000")))
	})

	t.Run("Inverted period", func(t *testing.T) {
		svc, _ := newTestOrderService(t)

		_, err := svc.ShopSummary(ctx, 1, &to, &from)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
