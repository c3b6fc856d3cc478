package persistence

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/partner"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCustomerRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := testCtx()

	t.Run("creates a customer", func(t *testing.T) {
		customer := &partner.Customer{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Phone:   "555-0101",
			Address: "12 Analytical Lane",
		}
		require.NoError(t, repo.Create(ctx, customer))
		assert.NotZero(t, customer.ID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		duplicate := &partner.Customer{
			Name:    "Someone Else",
			Email:   "ada@example.com",
			Phone:   "555-0102",
			Address: "34 Other Road",
		}
		err := repo.Create(ctx, duplicate)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestGormCustomerRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := testCtx()

	customer := seedCustomer(t, db, "grace@example.com")

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		updated, err := repo.Update(ctx, customer.ID, map[string]any{"phone": "555-0199"})
		require.NoError(t, err)
		assert.Equal(t, "555-0199", updated.Phone)
		assert.Equal(t, "grace@example.com", updated.Email)
	})

	t.Run("update missing customer returns not found", func(t *testing.T) {
		_, err := repo.Update(ctx, 99999, map[string]any{"phone": "555-0000"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCustomerRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := testCtx()

	customer := seedCustomer(t, db, "cascade@example.com")
	product := seedProduct(t, db, nil)
	order := seedOrder(t, db, &customer.ID)

	item := &trade.OrderItem{
		OrderID:   &order.ID,
		ProductID: &product.ID,
		Quantity:  2,
		ItemPrice: decimal.NewFromFloat(19.99),
		Status:    "pending",
	}
	require.NoError(t, db.Create(item).Error)

	payment := &trade.Payment{
		OrderID:       &order.ID,
		PaymentMethod: trade.PaymentMethodPayPal,
		PaymentDate:   time.Now(),
		AmountPaid:    decimal.NewFromFloat(39.98),
	}
	require.NoError(t, db.Create(payment).Error)

	shipment := &trade.Shipment{
		OrderID:        &order.ID,
		ShipmentDate:   time.Now(),
		Carrier:        "DHL",
		TrackingNumber: "DHL-0001",
	}
	require.NoError(t, db.Create(shipment).Error)

	review := &catalog.Review{
		CustomerID: &customer.ID,
		ProductID:  &product.ID,
		Rating:     5,
		ReviewText: "great",
		ReviewDate: time.Now(),
	}
	require.NoError(t, db.Create(review).Error)

	// Another customer's data must survive the delete
	other := seedCustomer(t, db, "bystander@example.com")
	otherOrder := seedOrder(t, db, &other.ID)

	require.NoError(t, repo.Delete(ctx, customer.ID))

	assert.ErrorIs(t, findErr(db, &partner.Customer{}, "customer_id", customer.ID), shared.ErrNotFound)
	assert.ErrorIs(t, findErr(db, &trade.Order{}, "order_id", order.ID), shared.ErrNotFound)
	assert.ErrorIs(t, findErr(db, &trade.OrderItem{}, "order_item_id", item.ID), shared.ErrNotFound)
	assert.ErrorIs(t, findErr(db, &trade.Payment{}, "payment_id", payment.ID), shared.ErrNotFound)
	assert.ErrorIs(t, findErr(db, &trade.Shipment{}, "shipment_id", shipment.ID), shared.ErrNotFound)
	assert.ErrorIs(t, findErr(db, &catalog.Review{}, "review_id", review.ID), shared.ErrNotFound)

	assert.NoError(t, findErr(db, &trade.Order{}, "order_id", otherOrder.ID))
	// The ordered product itself is untouched
	assert.NoError(t, findErr(db, &catalog.Product{}, "product_id", product.ID))
}
