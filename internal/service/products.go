package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc/printshop-dashboard/internal/domain"
)

// Ограничения поиска товаров
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// ProductService реализует domain.ProductService
type ProductService struct {
	productRepo domain.ProductRepository
}

// NewProductService создает новый ProductService
func NewProductService(productRepo domain.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProduct создает товар
func (s *ProductService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p.ShopID <= 0 {
		return nil, invalidInput("shop id is required")
	}
	if err := normalizeProduct(p); err != nil {
		return nil, err
	}

	created, err := s.productRepo.CreateProduct(ctx, p)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("product service: failed to create product %q: %w", p.SKU, err)
	}
	return created, nil
}

// GetProduct получает товар
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("product service: failed to get product %d: %w", id, err)
	}
	return p, nil
}

// ListProducts возвращает товары магазина
func (s *ProductService) ListProducts(ctx context.Context, shopID int64) ([]*domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("product service: failed to list products of shop %d: %w", shopID, err)
	}
	return products, nil
}

// SearchProducts подбирает товары для автодополнения в форме заказа
func (s *ProductService) SearchProducts(ctx context.Context, shopID int64, query string, limit int) ([]*domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidInput("search query is required")
	}

	switch {
	case limit <= 0:
		limit = DefaultSearchLimit
	case limit > MaxSearchLimit:
		limit = MaxSearchLimit
	}

	products, err := s.productRepo.SearchProducts(ctx, shopID, query, limit)
	if err != nil {
		return nil, fmt.Errorf("product service: failed to search products of shop %d: %w", shopID, err)
	}
	return products, nil
}

// UpdateProduct обновляет товар
func (s *ProductService) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := normalizeProduct(p); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.UpdateProduct(ctx, p)
	if err != nil {
		if passthrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("product service: failed to update product %d: %w", p.ID, err)
	}
	return updated, nil
}

// DeleteProduct удаляет товар
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if passthrough(err) {
			return err
		}
		return fmt.Errorf("product service: failed to delete product %d: %w", id, err)
	}
	return nil
}

func normalizeProduct(p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))

	if p.Name == "" {
		return invalidInput("product name is required")
	}
	if p.SKU == "" {
		return invalidInput("product sku is required")
	}
	if p.PriceUsd.IsNegative() {
		return invalidInput("product price must not be negative")
	}
	return nil
}
