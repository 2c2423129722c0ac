package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/rollup"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, shop_id, number, customer_name, status, discount_rate_pct, buyer_paid_usd,
	order_earnings_usd, exchange_rate, fee_lines, bonus_lines, note, ordered_at, created_at, updated_at`

// OrderRepository реализует domain.OrderRepository.
// Сохраняются только USD-поля и курсы, производные суммы не хранятся.
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder создает заказ вместе с позициями в одной транзакции
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	feeLines, bonusLines, err := marshalLines(order)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to encode lines of order %q: %w", order.Number, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for order %q: %w", order.Number, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	created, err := scanOrder(tx.QueryRow(ctx,
		`INSERT INTO orders (shop_id, number, customer_name, status, discount_rate_pct, buyer_paid_usd,
			order_earnings_usd, exchange_rate, fee_lines, bonus_lines, note, ordered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+orderColumns,
		order.ShopID, order.Number, order.CustomerName, string(order.Status), order.DiscountRatePct,
		order.BuyerPaidUsd, order.OrderEarningsUsd, order.ExchangeRate, feeLines, bonusLines,
		order.Note, order.OrderedAt,
	))
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, domain.ErrOrderExists
		case isForeignKeyViolation(err):
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("repository: failed to create order %q: %w", order.Number, err)
	}

	created.Items, err = insertItems(ctx, tx, created.ID, order.Items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit order %q: %w", order.Number, err)
	}

	return created, nil
}

// GetOrder получает заказ с позициями
func (r *OrderRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	items, err := r.loadItems(ctx, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]

	return order, nil
}

// ListOrders возвращает заказы по фильтру, новые первыми
func (r *OrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	where, args := filterClause(filter)

	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders`+where+` ORDER BY ordered_at DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		order.Items = items[order.ID]
	}

	return orders, nil
}

// UpdateOrder заменяет поля и позиции заказа в одной транзакции
func (r *OrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	feeLines, bonusLines, err := marshalLines(order)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to encode lines of order %d: %w", order.ID, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for order %d: %w", order.ID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	updated, err := scanOrder(tx.QueryRow(ctx,
		`UPDATE orders
		 SET number = $1, customer_name = $2, status = $3, discount_rate_pct = $4, buyer_paid_usd = $5,
			order_earnings_usd = $6, exchange_rate = $7, fee_lines = $8, bonus_lines = $9, note = $10,
			ordered_at = $11, updated_at = NOW()
		 WHERE id = $12
		 RETURNING `+orderColumns,
		order.Number, order.CustomerName, string(order.Status), order.DiscountRatePct, order.BuyerPaidUsd,
		order.OrderEarningsUsd, order.ExchangeRate, feeLines, bonusLines, order.Note,
		order.OrderedAt, order.ID,
	))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, domain.ErrOrderNotFound
		case isUniqueViolation(err):
			return nil, domain.ErrOrderExists
		}
		return nil, fmt.Errorf("repository: failed to update order %d: %w", order.ID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return nil, fmt.Errorf("repository: failed to clear items of order %d: %w", order.ID, err)
	}

	updated.Items, err = insertItems(ctx, tx, updated.ID, order.Items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit order %d: %w", order.ID, err)
	}

	return updated, nil
}

// UpdateOrderStatus обновляет статус заказа
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update order %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

// DeleteOrder удаляет заказ, позиции удаляются каскадно
func (r *OrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete order %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

// loadItems загружает позиции нескольких заказов одним запросом
func (r *OrderRepository) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, product_id, name, unit_price_usd, quantity
		 FROM order_items
		 WHERE order_id = ANY($1)
		 ORDER BY order_id, id`,
		orderIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load order items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			item    domain.OrderItem
			orderID int64
		)
		err := rows.Scan(&item.ID, &orderID, &item.ProductID, &item.Name, &item.UnitPriceUsd, &item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		items[orderID] = append(items[orderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return items, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []domain.OrderItem) ([]domain.OrderItem, error) {
	saved := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		err := tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, name, unit_price_usd, quantity)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			orderID, item.ProductID, item.Name, item.UnitPriceUsd, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return nil, domain.ErrProductNotFound
			}
			return nil, fmt.Errorf("repository: failed to insert item %q of order %d: %w", item.Name, orderID, err)
		}
		saved = append(saved, item)
	}
	return saved, nil
}

// filterClause собирает условие WHERE и аргументы по фильтру
func filterClause(filter domain.OrderFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.ShopID != nil {
		add("shop_id = $%d", *filter.ShopID)
	}
	if filter.Status != nil {
		add("status = $%d", string(*filter.Status))
	}
	if filter.From != nil {
		add("ordered_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("ordered_at < $%d", *filter.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func marshalLines(order *domain.Order) ([]byte, []byte, error) {
	fees := order.FeeLines
	if fees == nil {
		fees = []rollup.FeeLine{}
	}
	bonuses := order.BonusLines
	if bonuses == nil {
		bonuses = []rollup.BonusLine{}
	}

	feeJSON, err := json.Marshal(fees)
	if err != nil {
		return nil, nil, err
	}
	bonusJSON, err := json.Marshal(bonuses)
	if err != nil {
		return nil, nil, err
	}
	return feeJSON, bonusJSON, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order              domain.Order
		status             string
		feeJSON, bonusJSON []byte
	)
	err := row.Scan(
		&order.ID, &order.ShopID, &order.Number, &order.CustomerName, &status,
		&order.DiscountRatePct, &order.BuyerPaidUsd, &order.OrderEarningsUsd, &order.ExchangeRate,
		&feeJSON, &bonusJSON, &order.Note, &order.OrderedAt, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)

	if err := json.Unmarshal(feeJSON, &order.FeeLines); err != nil {
		return nil, fmt.Errorf("decode fee lines: %w", err)
	}
	if err := json.Unmarshal(bonusJSON, &order.BonusLines); err != nil {
		return nil, fmt.Errorf("decode bonus lines: %w", err)
	}
	return &order, nil
}
