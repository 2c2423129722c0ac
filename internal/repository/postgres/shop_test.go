package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shopRows(shops ...*domain.Shop) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "name", "platform", "created_at", "updated_at"})
	for _, s := range shops {
		rows.AddRow(s.ID, s.Name, s.Platform, s.CreatedAt, s.UpdatedAt)
	}
	return rows
}

func TestShopRepository_CreateShop(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO shops`).
			WithArgs("Paper Fox", "etsy").
			WillReturnRows(shopRows(&domain.Shop{ID: 1, Name: "Paper Fox", Platform: "etsy", CreatedAt: now, UpdatedAt: now}))

		shop, err := repo.CreateShop(ctx, &domain.Shop{Name: "Paper Fox", Platform: "etsy"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), shop.ID)
		assert.Equal(t, "etsy", shop.Platform)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate name", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO shops`).
			WithArgs("Paper Fox", "etsy").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		shop, err := repo.CreateShop(ctx, &domain.Shop{Name: "Paper Fox", Platform: "etsy"})
		assert.ErrorIs(t, err, domain.ErrShopExists)
		assert.Nil(t, shop)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShopRepository_GetAndList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Get success", func(t *testing.T) {
		mock.ExpectQuery(`FROM shops WHERE id`).
			WithArgs(int64(2)).
			WillReturnRows(shopRows(&domain.Shop{ID: 2, Name: "Ink Lab", Platform: "shopee", CreatedAt: now, UpdatedAt: now}))

		shop, err := repo.GetShop(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Ink Lab", shop.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM shops WHERE id`).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetShop(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrShopNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("List ordered by name", func(t *testing.T) {
		mock.ExpectQuery(`FROM shops ORDER BY name`).
			WillReturnRows(shopRows(
				&domain.Shop{ID: 2, Name: "Ink Lab", Platform: "shopee", CreatedAt: now, UpdatedAt: now},
				&domain.Shop{ID: 1, Name: "Paper Fox", Platform: "etsy", CreatedAt: now, UpdatedAt: now},
			))

		shops, err := repo.ListShops(ctx)
		require.NoError(t, err)
		require.Len(t, shops, 2)
		assert.Equal(t, "Ink Lab", shops[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("List empty", func(t *testing.T) {
		mock.ExpectQuery(`FROM shops ORDER BY name`).WillReturnRows(shopRows())

		shops, err := repo.ListShops(ctx)
		require.NoError(t, err)
		assert.NotNil(t, shops)
		assert.Empty(t, shops)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShopRepository_UpdateAndDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Update success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE shops SET name`).
			WithArgs("Paper Fox Studio", "etsy", int64(1)).
			WillReturnRows(shopRows(&domain.Shop{ID: 1, Name: "Paper Fox Studio", Platform: "etsy", CreatedAt: now, UpdatedAt: now}))

		shop, err := repo.UpdateShop(ctx, &domain.Shop{ID: 1, Name: "Paper Fox Studio", Platform: "etsy"})
		require.NoError(t, err)
		assert.Equal(t, "Paper Fox Studio", shop.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update not found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE shops SET name`).
			WithArgs("x", "etsy", int64(9)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.UpdateShop(ctx, &domain.Shop{ID: 9, Name: "x", Platform: "etsy"})
		assert.ErrorIs(t, err, domain.ErrShopNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM shops`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteShop(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM shops`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteShop(ctx, 1), domain.ErrShopNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete database error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM shops`).
			WithArgs(int64(1)).
			WillReturnError(errors.New("database error"))

		err := repo.DeleteShop(ctx, 1)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrShopNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
