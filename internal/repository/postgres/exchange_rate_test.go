package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRateRepository_SaveRate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExchangeRateRepository(mock)
	ctx := context.Background()
	rate := decimal.NewFromInt(25400)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO exchange_rates`).
			WithArgs("USD", "VND", rate).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.SaveRate(ctx, "USD", "VND", rate))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO exchange_rates`).
			WithArgs("USD", "VND", rate).
			WillReturnError(errors.New("database error"))

		err := repo.SaveRate(ctx, "USD", "VND", rate)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "USD/VND")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExchangeRateRepository_GetLatestRate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExchangeRateRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		fetchedAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		rows := pgxmock.NewRows([]string{"id", "base", "quote", "rate", "fetched_at"}).
			AddRow(int64(3), "USD", "VND", decimal.RequireFromString("25012.5"), fetchedAt)

		mock.ExpectQuery(`FROM exchange_rates WHERE base = \$1 AND quote = \$2 ORDER BY fetched_at DESC`).
			WithArgs("USD", "VND").
			WillReturnRows(rows)

		got, err := repo.GetLatestRate(ctx, "USD", "VND")
		require.NoError(t, err)
		assert.Equal(t, "VND", got.Quote)
		assert.True(t, got.Rate.Equal(decimal.RequireFromString("25012.5")))
		assert.Equal(t, fetchedAt, got.FetchedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No rate stored", func(t *testing.T) {
		mock.ExpectQuery(`FROM exchange_rates`).
			WithArgs("USD", "EUR").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetLatestRate(ctx, "USD", "EUR")
		assert.ErrorIs(t, err, domain.ErrRateNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
