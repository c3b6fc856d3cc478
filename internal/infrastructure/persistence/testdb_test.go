package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/inventory"
	"github.com/shop/backend/internal/domain/partner"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// Referential integrity and delete propagation are handled by the
// repositories themselves, so the tests exercise exactly the production
// code paths.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Category{},
		&partner.Supplier{},
		&partner.Customer{},
		&catalog.Product{},
		&trade.Order{},
		&trade.OrderItem{},
		&trade.Payment{},
		&trade.Shipment{},
		&catalog.Review{},
		&inventory.Transaction{},
	)
	require.NoError(t, err)

	return db
}

func ptr[T any](v T) *T { return &v }

func seedCategory(t *testing.T, db *gorm.DB, name string) *catalog.Category {
	t.Helper()
	category := &catalog.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *partner.Supplier {
	t.Helper()
	supplier := &partner.Supplier{Name: name, ContactInfo: name + "@suppliers.test"}
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *partner.Customer {
	t.Helper()
	customer := &partner.Customer{
		Name:    "Test Customer",
		Email:   email,
		Phone:   "555-0100",
		Address: "1 Test Street",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID *uint) *catalog.Product {
	t.Helper()
	product := &catalog.Product{
		Name:          fmt.Sprintf("Product %d", time.Now().UnixNano()),
		Price:         decimal.NewFromFloat(19.99),
		StockQuantity: 100,
		CategoryID:    categoryID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedOrder(t *testing.T, db *gorm.DB, customerID *uint) *trade.Order {
	t.Helper()
	order := &trade.Order{
		CustomerID:  customerID,
		OrderDate:   time.Now(),
		TotalAmount: decimal.NewFromFloat(59.97),
		Status:      trade.OrderStatusProcessing,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}

func testCtx() context.Context {
	return context.Background()
}

// findErr looks up a single row by primary key and maps GORM errors the way
// the repositories do.
func findErr(db *gorm.DB, model any, pkColumn string, id uint) error {
	return translateError(db.First(model, pkColumn+" = ?", id).Error)
}
