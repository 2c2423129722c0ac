package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/jackc/pgx/v5"
)

const shopColumns = `id, name, platform, created_at, updated_at`

// ShopRepository реализует domain.ShopRepository
type ShopRepository struct {
	db DBTX
}

// NewShopRepository создает новый ShopRepository
func NewShopRepository(db DBTX) *ShopRepository {
	return &ShopRepository{db: db}
}

// CreateShop создает магазин
func (r *ShopRepository) CreateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	created, err := scanShop(r.db.QueryRow(ctx,
		`INSERT INTO shops (name, platform)
		 VALUES ($1, $2)
		 RETURNING `+shopColumns,
		shop.Name, shop.Platform,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrShopExists
		}
		return nil, fmt.Errorf("repository: failed to create shop %q: %w", shop.Name, err)
	}

	return created, nil
}

// GetShop получает магазин по ID
func (r *ShopRepository) GetShop(ctx context.Context, id int64) (*domain.Shop, error) {
	shop, err := scanShop(r.db.QueryRow(ctx,
		`SELECT `+shopColumns+` FROM shops WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("repository: failed to get shop %d: %w", id, err)
	}

	return shop, nil
}

// ListShops возвращает все магазины по имени
func (r *ShopRepository) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	rows, err := r.db.Query(ctx, `SELECT `+shopColumns+` FROM shops ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list shops: %w", err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan shop: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating shops: %w", err)
	}

	return shops, nil
}

// UpdateShop обновляет название и площадку магазина
func (r *ShopRepository) UpdateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	updated, err := scanShop(r.db.QueryRow(ctx,
		`UPDATE shops
		 SET name = $1, platform = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING `+shopColumns,
		shop.Name, shop.Platform, shop.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShopNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrShopExists
		}
		return nil, fmt.Errorf("repository: failed to update shop %d: %w", shop.ID, err)
	}

	return updated, nil
}

// DeleteShop удаляет магазин вместе с его товарами и заказами
func (r *ShopRepository) DeleteShop(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete shop %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrShopNotFound
	}

	return nil
}

func scanShop(row pgx.Row) (*domain.Shop, error) {
	shop := &domain.Shop{}
	if err := row.Scan(&shop.ID, &shop.Name, &shop.Platform, &shop.CreatedAt, &shop.UpdatedAt); err != nil {
		return nil, err
	}
	return shop, nil
}
