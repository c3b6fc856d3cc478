package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create persists a new product after verifying its category reference
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if product.CategoryID != nil {
			if err := ensureReference(tx, "categories", *product.CategoryID); err != nil {
				return err
			}
		}
		return translateError(tx.Create(product).Error)
	})
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "product_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// FindAll returns all products
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	products := make([]catalog.Product, 0)
	if err := r.db.WithContext(ctx).Order("product_id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update applies the given fields and returns the updated product
func (r *GormProductRepository) Update(ctx context.Context, id uint, fields map[string]any) (*catalog.Product, error) {
	var product catalog.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if categoryID, ok := referencedID(fields, "category_id"); ok {
			if err := ensureReference(tx, "categories", categoryID); err != nil {
				return err
			}
		}
		if err := updateFields(tx, &catalog.Product{}, "product_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&product, "product_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product together with its order items, reviews and
// inventory transactions
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, catalog.Product{}.TableName(), id)
	})
}
