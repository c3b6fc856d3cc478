package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists a new order after verifying its customer reference
func (r *GormOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.CustomerID != nil {
			if err := ensureReference(tx, "customers", *order.CustomerID); err != nil {
				return err
			}
		}
		return translateError(tx.Create(order).Error)
	})
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).First(&order, "order_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &order, nil
}

// FindAll returns all orders
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	orders := make([]trade.Order, 0)
	if err := r.db.WithContext(ctx).Order("order_id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Update applies the given fields and returns the updated order
func (r *GormOrderRepository) Update(ctx context.Context, id uint, fields map[string]any) (*trade.Order, error) {
	var order trade.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if customerID, ok := referencedID(fields, "customer_id"); ok {
			if err := ensureReference(tx, "customers", customerID); err != nil {
				return err
			}
		}
		if err := updateFields(tx, &trade.Order{}, "order_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&order, "order_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes an order together with its items, payments and shipments
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, trade.Order{}.TableName(), id)
	})
}
