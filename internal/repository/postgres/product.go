package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, shop_id, name, sku, price_usd, created_at, updated_at`

// ProductRepository реализует domain.ProductRepository
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// CreateProduct создает товар магазина
func (r *ProductRepository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created, err := scanProduct(r.db.QueryRow(ctx,
		`INSERT INTO products (shop_id, name, sku, price_usd)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+productColumns,
		p.ShopID, p.Name, p.SKU, p.PriceUsd,
	))
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return nil, domain.ErrShopNotFound
		case isUniqueViolation(err):
			return nil, domain.ErrProductExists
		}
		return nil, fmt.Errorf("repository: failed to create product %q: %w", p.SKU, err)
	}

	return created, nil
}

// GetProduct получает товар по ID
func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %d: %w", id, err)
	}

	return p, nil
}

// ListProducts возвращает товары магазина
func (r *ProductRepository) ListProducts(ctx context.Context, shopID int64) ([]*domain.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE shop_id = $1 ORDER BY name`,
		shopID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list products for shop %d: %w", shopID, err)
	}

	return collectProducts(rows)
}

// SearchProducts ищет товары магазина по подстроке в названии или артикуле.
// Совпадения с начала названия идут первыми.
func (r *ProductRepository) SearchProducts(ctx context.Context, shopID int64, query string, limit int) ([]*domain.Product, error) {
	pattern := "%" + escapeLike(query) + "%"
	prefix := escapeLike(query) + "%"

	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		 FROM products
		 WHERE shop_id = $1 AND (name ILIKE $2 OR sku ILIKE $2)
		 ORDER BY (name ILIKE $3) DESC, name
		 LIMIT $4`,
		shopID, pattern, prefix, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to search products for shop %d: %w", shopID, err)
	}

	return collectProducts(rows)
}

// UpdateProduct обновляет товар
func (r *ProductRepository) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	updated, err := scanProduct(r.db.QueryRow(ctx,
		`UPDATE products
		 SET name = $1, sku = $2, price_usd = $3, updated_at = NOW()
		 WHERE id = $4
		 RETURNING `+productColumns,
		p.Name, p.SKU, p.PriceUsd, p.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrProductExists
		}
		return nil, fmt.Errorf("repository: failed to update product %d: %w", p.ID, err)
	}

	return updated, nil
}

// DeleteProduct удаляет товар. Позиции заказов сохраняют название и цену.
func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func collectProducts(rows pgx.Rows) ([]*domain.Product, error) {
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}

	return products, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(&p.ID, &p.ShopID, &p.Name, &p.SKU, &p.PriceUsd, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
