// Package cache хранит снимки сохраненных заказов в Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL время жизни снимка по умолчанию
const DefaultTTL = 5 * time.Minute

// OrderKey ключ снимка заказа
func OrderKey(id int64) string {
	return fmt.Sprintf("order:%d", id)
}

// ShopOrdersKey ключ списка заказов магазина
func ShopOrdersKey(shopID int64) string {
	return fmt.Sprintf("shop:%d:orders", shopID)
}

// ShopOrderIDsKey множество ID заказов магазина, снимки которых лежат в кеше
func ShopOrderIDsKey(shopID int64) string {
	return fmt.Sprintf("shop:%d:order_ids", shopID)
}

// OrderCache реализует domain.OrderCache поверх Redis.
// При nil клиенте кеш ничего не хранит и всегда возвращает domain.ErrCacheMiss.
type OrderCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewOrderCache создает новый OrderCache
func NewOrderCache(rdb *redis.Client, ttl time.Duration) *OrderCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &OrderCache{rdb: rdb, ttl: ttl}
}

// GetOrder возвращает снимок заказа
func (c *OrderCache) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, OrderKey(id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SetOrder сохраняет снимок заказа и запоминает его в множестве магазина
func (c *OrderCache) SetOrder(ctx context.Context, order *domain.Order) error {
	if c.rdb == nil {
		return nil
	}

	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("cache: failed to encode order %d: %w", order.ID, err)
	}

	idsKey := ShopOrderIDsKey(order.ShopID)
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, OrderKey(order.ID), raw, c.ttl)
		pipe.SAdd(ctx, idsKey, order.ID)
		pipe.Expire(ctx, idsKey, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache: failed to set order %d: %w", order.ID, err)
	}
	return nil
}

// GetShopOrders возвращает снимок списка заказов магазина
func (c *OrderCache) GetShopOrders(ctx context.Context, shopID int64) ([]*domain.Order, error) {
	var orders []*domain.Order
	if err := c.get(ctx, ShopOrdersKey(shopID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SetShopOrders сохраняет снимок списка заказов магазина
func (c *OrderCache) SetShopOrders(ctx context.Context, shopID int64, orders []*domain.Order) error {
	return c.set(ctx, ShopOrdersKey(shopID), orders)
}

// InvalidateOrder удаляет снимок заказа и список его магазина
func (c *OrderCache) InvalidateOrder(ctx context.Context, orderID, shopID int64) error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, OrderKey(orderID), ShopOrdersKey(shopID)).Err(); err != nil {
		return fmt.Errorf("cache: failed to invalidate order %d: %w", orderID, err)
	}
	return nil
}

// InvalidateShop удаляет все снимки заказов магазина и его список
func (c *OrderCache) InvalidateShop(ctx context.Context, shopID int64) error {
	if c.rdb == nil {
		return nil
	}

	idsKey := ShopOrderIDsKey(shopID)
	ids, err := c.rdb.SMembers(ctx, idsKey).Result()
	if err != nil {
		return fmt.Errorf("cache: failed to read orders of shop %d: %w", shopID, err)
	}

	keys := make([]string, 0, len(ids)+2)
	keys = append(keys, ShopOrdersKey(shopID), idsKey)
	for _, id := range ids {
		keys = append(keys, "order:"+id)
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: failed to invalidate shop %d: %w", shopID, err)
	}
	return nil
}

func (c *OrderCache) get(ctx context.Context, key string, dest any) error {
	if c.rdb == nil {
		return domain.ErrCacheMiss
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ErrCacheMiss
		}
		return fmt.Errorf("cache: failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("cache: failed to decode %s: %w", key, err)
	}
	return nil
}

func (c *OrderCache) set(ctx context.Context, key string, value any) error {
	if c.rdb == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: failed to encode %s: %w", key, err)
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set %s: %w", key, err)
	}
	return nil
}
