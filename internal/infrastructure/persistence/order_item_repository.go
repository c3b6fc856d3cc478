package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormOrderItemRepository implements trade.OrderItemRepository using GORM
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository creates a new GormOrderItemRepository
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// Create persists a new order item after verifying its order and product references
func (r *GormOrderItemRepository) Create(ctx context.Context, item *trade.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.OrderID != nil {
			if err := ensureReference(tx, "orders", *item.OrderID); err != nil {
				return err
			}
		}
		if item.ProductID != nil {
			if err := ensureReference(tx, "products", *item.ProductID); err != nil {
				return err
			}
		}
		return translateError(tx.Create(item).Error)
	})
}

// FindByID finds an order item by its ID
func (r *GormOrderItemRepository) FindByID(ctx context.Context, id uint) (*trade.OrderItem, error) {
	var item trade.OrderItem
	if err := r.db.WithContext(ctx).First(&item, "order_item_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

// FindAll returns all order items
func (r *GormOrderItemRepository) FindAll(ctx context.Context) ([]trade.OrderItem, error) {
	items := make([]trade.OrderItem, 0)
	if err := r.db.WithContext(ctx).Order("order_item_id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies the given fields and returns the updated order item
func (r *GormOrderItemRepository) Update(ctx context.Context, id uint, fields map[string]any) (*trade.OrderItem, error) {
	var item trade.OrderItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if orderID, ok := referencedID(fields, "order_id"); ok {
			if err := ensureReference(tx, "orders", orderID); err != nil {
				return err
			}
		}
		if productID, ok := referencedID(fields, "product_id"); ok {
			if err := ensureReference(tx, "products", productID); err != nil {
				return err
			}
		}
		if err := updateFields(tx, &trade.OrderItem{}, "order_item_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&item, "order_item_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an order item
func (r *GormOrderItemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, trade.OrderItem{}.TableName(), id)
	})
}
