package persistence

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/inventory"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := testCtx()

	t.Run("creates a product in a category", func(t *testing.T) {
		category := seedCategory(t, db, "Electronics")

		product := &catalog.Product{
			Name:          "Keyboard",
			Price:         decimal.NewFromFloat(49.90),
			StockQuantity: 10,
			CategoryID:    &category.ID,
		}
		require.NoError(t, repo.Create(ctx, product))
		assert.NotZero(t, product.ID)
	})

	t.Run("creates a product without a category", func(t *testing.T) {
		product := &catalog.Product{
			Name:          "Mystery Box",
			Price:         decimal.NewFromFloat(9.99),
			StockQuantity: 1,
		}
		require.NoError(t, repo.Create(ctx, product))
	})

	t.Run("rejects a dangling category reference", func(t *testing.T) {
		product := &catalog.Product{
			Name:          "Orphan",
			Price:         decimal.NewFromFloat(1.00),
			StockQuantity: 1,
			CategoryID:    ptr(uint(99999)),
		}
		err := repo.Create(ctx, product)
		assert.ErrorIs(t, err, shared.ErrInvalidReference)
	})
}

func TestGormProductRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := testCtx()

	product := seedProduct(t, db, nil)

	t.Run("moves the product into an existing category", func(t *testing.T) {
		category := seedCategory(t, db, "Accessories")

		updated, err := repo.Update(ctx, product.ID, map[string]any{"category_id": category.ID})
		require.NoError(t, err)
		require.NotNil(t, updated.CategoryID)
		assert.Equal(t, category.ID, *updated.CategoryID)
	})

	t.Run("rejects a dangling category reference", func(t *testing.T) {
		_, err := repo.Update(ctx, product.ID, map[string]any{"category_id": uint(99999)})
		assert.ErrorIs(t, err, shared.ErrInvalidReference)
	})

	t.Run("updates stock and price together", func(t *testing.T) {
		updated, err := repo.Update(ctx, product.ID, map[string]any{
			"stock_quantity": 42,
			"price":          decimal.NewFromFloat(24.50),
		})
		require.NoError(t, err)
		assert.Equal(t, 42, updated.StockQuantity)
		assert.True(t, updated.Price.Equal(decimal.NewFromFloat(24.50)))
	})
}

func TestGormProductRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := testCtx()

	customer := seedCustomer(t, db, "buyer@example.com")
	supplier := seedSupplier(t, db, "Acme")
	product := seedProduct(t, db, nil)
	order := seedOrder(t, db, &customer.ID)

	item := &trade.OrderItem{
		OrderID:   &order.ID,
		ProductID: &product.ID,
		Quantity:  1,
		ItemPrice: decimal.NewFromFloat(19.99),
	}
	require.NoError(t, db.Create(item).Error)

	review := &catalog.Review{
		CustomerID: &customer.ID,
		ProductID:  &product.ID,
		Rating:     4,
		ReviewDate: time.Now(),
	}
	require.NoError(t, db.Create(review).Error)

	movement := &inventory.Transaction{
		ProductID:       &product.ID,
		SupplierID:      &supplier.ID,
		TransactionType: inventory.TransactionTypeRestock,
		Quantity:        50,
		TransactionDate: time.Now(),
	}
	require.NoError(t, db.Create(movement).Error)

	require.NoError(t, repo.Delete(ctx, product.ID))

	assert.ErrorIs(t, findErr(db, &catalog.Product{}, "product_id", product.ID), shared.ErrNotFound)
	assert.ErrorIs(t, findErr(db, &trade.OrderItem{}, "order_item_id", item.ID), shared.ErrNotFound)
	assert.ErrorIs(t, findErr(db, &catalog.Review{}, "review_id", review.ID), shared.ErrNotFound)
	assert.ErrorIs(t, findErr(db, &inventory.Transaction{}, "transaction_id", movement.ID), shared.ErrNotFound)

	// The order and its customer are untouched
	assert.NoError(t, findErr(db, &trade.Order{}, "order_id", order.ID))
}
