package persistence

import (
	"testing"
	"time"

	"github.com/shop/backend/internal/domain/inventory"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTransactionRepository(db)
	ctx := testCtx()

	supplier := seedSupplier(t, db, "Northwind")
	product := seedProduct(t, db, nil)

	t.Run("records a restock from a supplier", func(t *testing.T) {
		movement := &inventory.Transaction{
			ProductID:       &product.ID,
			SupplierID:      &supplier.ID,
			TransactionType: inventory.TransactionTypeRestock,
			Quantity:        200,
			TransactionDate: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, movement))
		assert.NotZero(t, movement.ID)
	})

	t.Run("records a sale without a supplier", func(t *testing.T) {
		movement := &inventory.Transaction{
			ProductID:       &product.ID,
			TransactionType: inventory.TransactionTypeSale,
			Quantity:        3,
			TransactionDate: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, movement))
	})

	t.Run("rejects a dangling supplier reference", func(t *testing.T) {
		movement := &inventory.Transaction{
			ProductID:       &product.ID,
			SupplierID:      ptr(uint(99999)),
			TransactionType: inventory.TransactionTypeRestock,
			Quantity:        10,
			TransactionDate: time.Now(),
		}
		assert.ErrorIs(t, repo.Create(ctx, movement), shared.ErrInvalidReference)
	})

	t.Run("rejects a dangling product reference", func(t *testing.T) {
		movement := &inventory.Transaction{
			ProductID:       ptr(uint(99999)),
			TransactionType: inventory.TransactionTypeSale,
			Quantity:        1,
			TransactionDate: time.Now(),
		}
		assert.ErrorIs(t, repo.Create(ctx, movement), shared.ErrInvalidReference)
	})
}

func TestGormSupplierRepository_DeleteDetachesTransactions(t *testing.T) {
	db := setupTestDB(t)
	supplierRepo := NewGormSupplierRepository(db)
	transactionRepo := NewGormTransactionRepository(db)
	ctx := testCtx()

	supplier := seedSupplier(t, db, "Departing Supplier")
	product := seedProduct(t, db, nil)

	movement := &inventory.Transaction{
		ProductID:       &product.ID,
		SupplierID:      &supplier.ID,
		TransactionType: inventory.TransactionTypeRestock,
		Quantity:        25,
		TransactionDate: time.Now(),
	}
	require.NoError(t, transactionRepo.Create(ctx, movement))

	require.NoError(t, supplierRepo.Delete(ctx, supplier.ID))

	surviving, err := transactionRepo.FindByID(ctx, movement.ID)
	require.NoError(t, err)
	assert.Nil(t, surviving.SupplierID)

	_, err = supplierRepo.FindByID(ctx, supplier.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
