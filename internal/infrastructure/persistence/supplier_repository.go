package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Create persists a new supplier
func (r *GormSupplierRepository) Create(ctx context.Context, supplier *partner.Supplier) error {
	return translateError(r.db.WithContext(ctx).Create(supplier).Error)
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uint) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "supplier_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &supplier, nil
}

// FindAll returns all suppliers
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]partner.Supplier, error) {
	suppliers := make([]partner.Supplier, 0)
	if err := r.db.WithContext(ctx).Order("supplier_id").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Update applies the given fields and returns the updated supplier
func (r *GormSupplierRepository) Update(ctx context.Context, id uint, fields map[string]any) (*partner.Supplier, error) {
	var supplier partner.Supplier
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateFields(tx, &partner.Supplier{}, "supplier_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&supplier, "supplier_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Delete removes a supplier; inventory transactions sourced from it keep
// their rows with a cleared supplier reference
func (r *GormSupplierRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, partner.Supplier{}.TableName(), id)
	})
}
