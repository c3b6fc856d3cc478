package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormPaymentRepository implements trade.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Create persists a new payment after verifying its order reference
func (r *GormPaymentRepository) Create(ctx context.Context, payment *trade.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if payment.OrderID != nil {
			if err := ensureReference(tx, "orders", *payment.OrderID); err != nil {
				return err
			}
		}
		return translateError(tx.Create(payment).Error)
	})
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uint) (*trade.Payment, error) {
	var payment trade.Payment
	if err := r.db.WithContext(ctx).First(&payment, "payment_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &payment, nil
}

// FindAll returns all payments
func (r *GormPaymentRepository) FindAll(ctx context.Context) ([]trade.Payment, error) {
	payments := make([]trade.Payment, 0)
	if err := r.db.WithContext(ctx).Order("payment_id").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Update applies the given fields and returns the updated payment
func (r *GormPaymentRepository) Update(ctx context.Context, id uint, fields map[string]any) (*trade.Payment, error) {
	var payment trade.Payment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if orderID, ok := referencedID(fields, "order_id"); ok {
			if err := ensureReference(tx, "orders", orderID); err != nil {
				return err
			}
		}
		if err := updateFields(tx, &trade.Payment{}, "payment_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&payment, "payment_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Delete removes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, trade.Payment{}.TableName(), id)
	})
}
