package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ExchangeRateRepository хранит историю курсов обмена
type ExchangeRateRepository struct {
	db DBTX
}

// NewExchangeRateRepository создает новый ExchangeRateRepository
func NewExchangeRateRepository(db DBTX) *ExchangeRateRepository {
	return &ExchangeRateRepository{db: db}
}

// SaveRate добавляет новое значение курса. Старые значения остаются в истории.
func (r *ExchangeRateRepository) SaveRate(ctx context.Context, base, quote string, rate decimal.Decimal) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO exchange_rates (base, quote, rate) VALUES ($1, $2, $3)`,
		base, quote, rate,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to save rate %s/%s: %w", base, quote, err)
	}

	return nil
}

// GetLatestRate возвращает последний сохраненный курс пары
func (r *ExchangeRateRepository) GetLatestRate(ctx context.Context, base, quote string) (*domain.ExchangeRate, error) {
	rate := &domain.ExchangeRate{}

	err := r.db.QueryRow(ctx,
		`SELECT id, base, quote, rate, fetched_at
		 FROM exchange_rates
		 WHERE base = $1 AND quote = $2
		 ORDER BY fetched_at DESC
		 LIMIT 1`,
		base, quote,
	).Scan(&rate.ID, &rate.Base, &rate.Quote, &rate.Rate, &rate.FetchedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRateNotFound
		}
		return nil, fmt.Errorf("repository: failed to get rate %s/%s: %w", base, quote, err)
	}

	return rate, nil
}
