package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc/printshop-dashboard/internal/domain"
	"go.uber.org/zap"
)

// ShopService реализует domain.ShopService
type ShopService struct {
	shopRepo   domain.ShopRepository
	orderCache domain.OrderCache
	logger     *zap.Logger
}

// NewShopService создает новый ShopService
func NewShopService(shopRepo domain.ShopRepository, orderCache domain.OrderCache, logger *zap.Logger) *ShopService {
	return &ShopService{
		shopRepo:   shopRepo,
		orderCache: orderCache,
		logger:     logger,
	}
}

// CreateShop создает магазин
func (s *ShopService) CreateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	if err := normalizeShop(shop); err != nil {
		return nil, err
	}

	created, err := s.shopRepo.CreateShop(ctx, shop)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("shop service: failed to create shop %q: %w", shop.Name, err)
	}
	return created, nil
}

// GetShop получает магазин
func (s *ShopService) GetShop(ctx context.Context, id int64) (*domain.Shop, error) {
	shop, err := s.shopRepo.GetShop(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("shop service: failed to get shop %d: %w", id, err)
	}
	return shop, nil
}

// ListShops возвращает все магазины
func (s *ShopService) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	shops, err := s.shopRepo.ListShops(ctx)
	if err != nil {
		return nil, fmt.Errorf("shop service: failed to list shops: %w", err)
	}
	return shops, nil
}

// UpdateShop обновляет магазин
func (s *ShopService) UpdateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	if err := normalizeShop(shop); err != nil {
		return nil, err
	}

	updated, err := s.shopRepo.UpdateShop(ctx, shop)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("shop service: failed to update shop %d: %w", shop.ID, err)
	}
	return updated, nil
}

// DeleteShop удаляет магазин. Заказы магазина удаляются каскадно, поэтому их снимки
// тоже сбрасываются из кеша.
func (s *ShopService) DeleteShop(ctx context.Context, id int64) error {
	if err := s.shopRepo.DeleteShop(ctx, id); err != nil {
		if passthrough(err) {
			return err
		}
		return fmt.Errorf("shop service: failed to delete shop %d: %w", id, err)
	}

	if err := s.orderCache.InvalidateShop(ctx, id); err != nil {
		s.logger.Warn("failed to invalidate shop orders cache", zap.Int64("shop_id", id), zap.Error(err))
	}
	return nil
}

func normalizeShop(shop *domain.Shop) error {
	shop.Name = strings.TrimSpace(shop.Name)
	shop.Platform = strings.ToLower(strings.TrimSpace(shop.Platform))

	if shop.Name == "" {
		return invalidInput("shop name is required")
	}
	if shop.Platform == "" {
		return invalidInput("shop platform is required")
	}
	return nil
}
