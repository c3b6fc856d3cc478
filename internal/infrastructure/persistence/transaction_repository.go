package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormTransactionRepository implements inventory.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create persists a new inventory transaction after verifying its product
// and supplier references
func (r *GormTransactionRepository) Create(ctx context.Context, transaction *inventory.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if transaction.ProductID != nil {
			if err := ensureReference(tx, "products", *transaction.ProductID); err != nil {
				return err
			}
		}
		if transaction.SupplierID != nil {
			if err := ensureReference(tx, "suppliers", *transaction.SupplierID); err != nil {
				return err
			}
		}
		return translateError(tx.Create(transaction).Error)
	})
}

// FindByID finds an inventory transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uint) (*inventory.Transaction, error) {
	var transaction inventory.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, "transaction_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &transaction, nil
}

// FindAll returns all inventory transactions
func (r *GormTransactionRepository) FindAll(ctx context.Context) ([]inventory.Transaction, error) {
	transactions := make([]inventory.Transaction, 0)
	if err := r.db.WithContext(ctx).Order("transaction_id").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// Update applies the given fields and returns the updated transaction
func (r *GormTransactionRepository) Update(ctx context.Context, id uint, fields map[string]any) (*inventory.Transaction, error) {
	var transaction inventory.Transaction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if productID, ok := referencedID(fields, "product_id"); ok {
			if err := ensureReference(tx, "products", productID); err != nil {
				return err
			}
		}
		if supplierID, ok := referencedID(fields, "supplier_id"); ok {
			if err := ensureReference(tx, "suppliers", supplierID); err != nil {
				return err
			}
		}
		if err := updateFields(tx, &inventory.Transaction{}, "transaction_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&transaction, "transaction_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Delete removes an inventory transaction
func (r *GormTransactionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, inventory.Transaction{}.TableName(), id)
	})
}
