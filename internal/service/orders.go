package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/rollup"
	"go.uber.org/zap"
)

// Валюты основного курса заказа
const (
	BaseCurrency  = "USD"
	QuoteCurrency = "VND"
)

// OrderService реализует domain.OrderService.
// Итоги каждого заказа пересчитываются при каждом чтении из сохраненных USD-полей.
type OrderService struct {
	orderRepo domain.OrderRepository
	rateRepo  domain.ExchangeRateRepository
	cache     domain.OrderCache
	logger    *zap.Logger
	now       func() time.Time
}

// NewOrderService создает новый OrderService
func NewOrderService(
	orderRepo domain.OrderRepository,
	rateRepo domain.ExchangeRateRepository,
	cache domain.OrderCache,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		rateRepo:  rateRepo,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateOrder проверяет и сохраняет заказ.
// Заказ с некорректными финансовыми данными не сохраняется.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.OrderView, error) {
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	if order.OrderedAt.IsZero() {
		order.OrderedAt = s.now().UTC()
	}
	if err := normalizeOrder(order); err != nil {
		return nil, err
	}
	if order.ShopID <= 0 {
		return nil, invalidInput("shop id is required")
	}

	if order.ExchangeRate.IsZero() {
		rate, err := s.latestRate(ctx)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			order.ExchangeRate = rate.Rate
		}
	}

	if _, err := rollup.Compute(order.Financials()); err != nil {
		return nil, err
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to create order %q: %w", order.Number, err)
	}

	s.invalidate(ctx, created.ID, created.ShopID)
	return view(created)
}

// GetOrder возвращает заказ с итогами
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.OrderView, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return view(order)
}

// ListOrders возвращает заказы по фильтру с итогами
func (s *OrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.OrderView, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	orders, err := s.loadOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.OrderView, 0, len(orders))
	for _, order := range orders {
		v, err := view(order)
		if err != nil {
			// Один испорченный заказ не должен скрывать остальные
			s.logger.Error("skipping order with invalid stored financials",
				zap.Int64("order_id", order.ID),
				zap.Int64("shop_id", order.ShopID),
				zap.Error(err),
			)
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

// UpdateOrder заменяет данные заказа. Магазин заказа не меняется.
func (s *OrderService) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.OrderView, error) {
	existing, err := s.fetchOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	order.ShopID = existing.ShopID
	if order.Status == "" {
		order.Status = existing.Status
	}
	if order.OrderedAt.IsZero() {
		order.OrderedAt = existing.OrderedAt
	}
	// Курс фиксируется при создании заказа
	if order.ExchangeRate.IsZero() {
		order.ExchangeRate = existing.ExchangeRate
	}
	if err := normalizeOrder(order); err != nil {
		return nil, err
	}

	if _, err := rollup.Compute(order.Financials()); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.UpdateOrder(ctx, order)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to update order %d: %w", order.ID, err)
	}

	s.invalidate(ctx, updated.ID, updated.ShopID)
	return view(updated)
}

// UpdateOrderStatus меняет статус заказа
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	existing, err := s.fetchOrder(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		if passthrough(err) {
			return err
		}
		return fmt.Errorf("order service: failed to update status of order %d: %w", id, err)
	}

	s.invalidate(ctx, id, existing.ShopID)
	return nil
}

// DeleteOrder удаляет заказ
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	existing, err := s.fetchOrder(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.DeleteOrder(ctx, id); err != nil {
		if passthrough(err) {
			return err
		}
		return fmt.Errorf("order service: failed to delete order %d: %w", id, err)
	}

	s.invalidate(ctx, id, existing.ShopID)
	return nil
}

// PreviewRollup считает итоги без сохранения. При useLatestRate курс берется из последнего
// сохраненного, иначе переданный курс проверяется как есть.
func (s *OrderService) PreviewRollup(ctx context.Context, f rollup.OrderFinancials, useLatestRate bool) (*rollup.Result, error) {
	if useLatestRate {
		rate, err := s.latestRate(ctx)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			f.ExchangeRateVndPerUsd = rate.Rate
		}
	}
	return rollup.Compute(f)
}

// ShopSummary суммирует итоги заказов магазина за период.
// Отмененные заказы не учитываются.
func (s *OrderService) ShopSummary(ctx context.Context, shopID int64, from, to *time.Time) (*domain.ShopSummary, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, invalidInput("period start is after its end")
	}

	views, err := s.ListOrders(ctx, domain.OrderFilter{ShopID: &shopID, From: from, To: to})
	if err != nil {
		return nil, err
	}

	return &domain.ShopSummary{
		ShopID: shopID,
		From:   from,
		To:     to,
		Totals: Totals(views),
	}, nil
}

// Totals суммирует итоги заказов, пропуская отмененные
func Totals(views []*domain.OrderView) rollup.Totals {
	results := make([]*rollup.Result, 0, len(views))
	for _, v := range views {
		if v.Status == domain.OrderStatusCancelled {
			continue
		}
		results = append(results, v.Rollup)
	}
	return rollup.Aggregate(results)
}

// loadOrder читает заказ из кеша, при промахе из базы
func (s *OrderService) loadOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.cache.GetOrder(ctx, id)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("failed to read order from cache", zap.Int64("order_id", id), zap.Error(err))
	}

	order, err = s.fetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetOrder(ctx, order); err != nil {
		s.logger.Warn("failed to cache order", zap.Int64("order_id", id), zap.Error(err))
	}
	return order, nil
}

// loadOrders кеширует только полный список заказов одного магазина
func (s *OrderService) loadOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	cacheable := filter.ShopID != nil && filter.Status == nil && filter.From == nil && filter.To == nil
	if cacheable {
		orders, err := s.cache.GetShopOrders(ctx, *filter.ShopID)
		if err == nil {
			return orders, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("failed to read shop orders from cache", zap.Int64("shop_id", *filter.ShopID), zap.Error(err))
		}
	}

	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders: %w", err)
	}

	if cacheable {
		if err := s.cache.SetShopOrders(ctx, *filter.ShopID, orders); err != nil {
			s.logger.Warn("failed to cache shop orders", zap.Int64("shop_id", *filter.ShopID), zap.Error(err))
		}
	}
	return orders, nil
}

func (s *OrderService) fetchOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %d: %w", id, err)
	}
	return order, nil
}

// latestRate возвращает nil, если курс еще не загружен
func (s *OrderService) latestRate(ctx context.Context) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.GetLatestRate(ctx, BaseCurrency, QuoteCurrency)
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("order service: failed to get latest %s/%s rate: %w", BaseCurrency, QuoteCurrency, err)
	}
	return rate, nil
}

func (s *OrderService) invalidate(ctx context.Context, orderID, shopID int64) {
	if err := s.cache.InvalidateOrder(ctx, orderID, shopID); err != nil {
		s.logger.Warn("failed to invalidate order cache",
			zap.Int64("order_id", orderID),
			zap.Int64("shop_id", shopID),
			zap.Error(err),
		)
	}
}

// view пересчитывает итоги сохраненного заказа
func view(order *domain.Order) (*domain.OrderView, error) {
	res, err := rollup.Compute(order.Financials())
	if err != nil {
		return nil, fmt.Errorf("order service: order %d: %w: %v", order.ID, domain.ErrCorruptOrder, err)
	}
	return &domain.OrderView{
		Order:     order,
		ItemTotal: order.ItemTotalUsd(),
		Rollup:    res,
	}, nil
}

func normalizeOrder(order *domain.Order) error {
	order.Number = strings.TrimSpace(order.Number)
	order.CustomerName = strings.TrimSpace(order.CustomerName)

	if order.Number == "" {
		return invalidInput("order number is required")
	}
	if !order.Status.Valid() {
		return domain.ErrInvalidStatus
	}
	for i, item := range order.Items {
		if strings.TrimSpace(item.Name) == "" {
			return invalidInput("items[%d]: name is required", i)
		}
		if item.Quantity <= 0 {
			return invalidInput("items[%d]: quantity must be positive", i)
		}
		if item.UnitPriceUsd.IsNegative() {
			return invalidInput("items[%d]: unit price must not be negative", i)
		}
	}
	return nil
}
