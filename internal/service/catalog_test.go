package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/printshop-dashboard/internal/domain"
	domainmocks "github.com/avc/printshop-dashboard/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestShopService_CreateShop(t *testing.T) {
	mockRepo := domainmocks.NewShopRepositoryMock(t)
	svc := NewShopService(mockRepo, domainmocks.NewOrderCacheMock(t), zap.NewNop())
	ctx := context.Background()

	t.Run("Normalizes input", func(t *testing.T) {
		mockRepo.EXPECT().CreateShop(mock.Anything, &domain.Shop{Name: "Paper Fox", Platform: "etsy"}).
			Return(&domain.Shop{ID: 1, Name: "Paper Fox", Platform: "etsy"}, nil).Once()

		shop, err := svc.CreateShop(ctx, &domain.Shop{Name: " Paper Fox ", Platform: "Etsy"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), shop.ID)
	})

	t.Run("Missing name", func(t *testing.T) {
		_, err := svc.CreateShop(ctx, &domain.Shop{Platform: "etsy"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Missing platform", func(t *testing.T) {
		_, err := svc.CreateShop(ctx, &domain.Shop{Name: "Paper Fox"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockRepo.EXPECT().CreateShop(mock.Anything, mock.Anything).Return(nil, domain.ErrShopExists).Once()

		_, err := svc.CreateShop(ctx, &domain.Shop{Name: "Paper Fox", Platform: "etsy"})
		assert.ErrorIs(t, err, domain.ErrShopExists)
	})
}

func TestShopService_ReadAndDelete(t *testing.T) {
	mockRepo := domainmocks.NewShopRepositoryMock(t)
	mockCache := domainmocks.NewOrderCacheMock(t)
	svc := NewShopService(mockRepo, mockCache, zap.NewNop())
	ctx := context.Background()

	t.Run("Get not found", func(t *testing.T) {
		mockRepo.EXPECT().GetShop(mock.Anything, int64(9)).Return(nil, domain.ErrShopNotFound).Once()

		_, err := svc.GetShop(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrShopNotFound)
	})

	t.Run("List database error", func(t *testing.T) {
		mockRepo.EXPECT().ListShops(mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.ListShops(ctx)
		assert.Error(t, err)
	})

	t.Run("Delete drops cached orders of the shop", func(t *testing.T) {
		mockRepo.EXPECT().DeleteShop(mock.Anything, int64(1)).Return(nil).Once()
		mockCache.EXPECT().InvalidateShop(mock.Anything, int64(1)).Return(nil).Once()

		assert.NoError(t, svc.DeleteShop(ctx, 1))
	})

	t.Run("Delete survives cache failure", func(t *testing.T) {
		mockRepo.EXPECT().DeleteShop(mock.Anything, int64(2)).Return(nil).Once()
		mockCache.EXPECT().InvalidateShop(mock.Anything, int64(2)).Return(errors.New("redis down")).Once()

		assert.NoError(t, svc.DeleteShop(ctx, 2))
	})

	t.Run("Delete not found keeps cache", func(t *testing.T) {
		mockRepo.EXPECT().DeleteShop(mock.Anything, int64(3)).Return(domain.ErrShopNotFound).Once()

		assert.ErrorIs(t, svc.DeleteShop(ctx, 3), domain.ErrShopNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		mockRepo.EXPECT().UpdateShop(mock.Anything, &domain.Shop{ID: 1, Name: "Ink Lab", Platform: "shopee"}).
			Return(&domain.Shop{ID: 1, Name: "Ink Lab", Platform: "shopee"}, nil).Once()

		shop, err := svc.UpdateShop(ctx, &domain.Shop{ID: 1, Name: "Ink Lab", Platform: "SHOPEE "})
		require.NoError(t, err)
		assert.Equal(t, "shopee", shop.Platform)
	})
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := domainmocks.NewProductRepositoryMock(t)
	svc := NewProductService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.SKU == "PRT-A3" && p.Name == "A3 print"
		})).Return(&domain.Product{ID: 5, ShopID: 1, Name: "A3 print", SKU: "PRT-A3"}, nil).Once()

		p, err := svc.CreateProduct(ctx, &domain.Product{ShopID: 1, Name: "A3 print ", SKU: "prt-a3", PriceUsd: decimal.NewFromInt(20)})
		require.NoError(t, err)
		assert.Equal(t, int64(5), p.ID)
	})

	t.Run("Negative price", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, &domain.Product{ShopID: 1, Name: "x", SKU: "X", PriceUsd: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("No shop", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, &domain.Product{Name: "x", SKU: "X"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Unknown shop", func(t *testing.T) {
		mockRepo.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(nil, domain.ErrShopNotFound).Once()

		_, err := svc.CreateProduct(ctx, &domain.Product{ShopID: 7, Name: "x", SKU: "X"})
		assert.ErrorIs(t, err, domain.ErrShopNotFound)
	})
}

func TestProductService_SearchProducts(t *testing.T) {
	mockRepo := domainmocks.NewProductRepositoryMock(t)
	svc := NewProductService(mockRepo)
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "Default limit", limit: 0, wantLimit: DefaultSearchLimit},
		{name: "Negative limit", limit: -3, wantLimit: DefaultSearchLimit},
		{name: "Clamped limit", limit: 500, wantLimit: MaxSearchLimit},
		{name: "Explicit limit", limit: 5, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().SearchProducts(mock.Anything, int64(1), "poster", tt.wantLimit).
				Return([]*domain.Product{{ID: 1, Name: "Poster"}}, nil).Once()

			products, err := svc.SearchProducts(ctx, 1, " poster ", tt.limit)
			require.NoError(t, err)
			assert.Len(t, products, 1)
		})
	}

	t.Run("Empty query", func(t *testing.T) {
		_, err := svc.SearchProducts(ctx, 1, "   ", 10)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
