package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormShipmentRepository implements trade.ShipmentRepository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Create persists a new shipment after verifying its order reference
func (r *GormShipmentRepository) Create(ctx context.Context, shipment *trade.Shipment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if shipment.OrderID != nil {
			if err := ensureReference(tx, "orders", *shipment.OrderID); err != nil {
				return err
			}
		}
		return translateError(tx.Create(shipment).Error)
	})
}

// FindByID finds a shipment by its ID
func (r *GormShipmentRepository) FindByID(ctx context.Context, id uint) (*trade.Shipment, error) {
	var shipment trade.Shipment
	if err := r.db.WithContext(ctx).First(&shipment, "shipment_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &shipment, nil
}

// FindAll returns all shipments
func (r *GormShipmentRepository) FindAll(ctx context.Context) ([]trade.Shipment, error) {
	shipments := make([]trade.Shipment, 0)
	if err := r.db.WithContext(ctx).Order("shipment_id").Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

// Update applies the given fields and returns the updated shipment
func (r *GormShipmentRepository) Update(ctx context.Context, id uint, fields map[string]any) (*trade.Shipment, error) {
	var shipment trade.Shipment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if orderID, ok := referencedID(fields, "order_id"); ok {
			if err := ensureReference(tx, "orders", orderID); err != nil {
				return err
			}
		}
		if err := updateFields(tx, &trade.Shipment{}, "shipment_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&shipment, "shipment_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

// Delete removes a shipment
func (r *GormShipmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, trade.Shipment{}.TableName(), id)
	})
}
