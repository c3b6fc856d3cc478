package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create persists a new customer. A duplicate email surfaces as
// shared.ErrAlreadyExists via the unique index on the email column.
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	return translateError(r.db.WithContext(ctx).Create(customer).Error)
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).First(&customer, "customer_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

// FindAll returns all customers
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	customers := make([]partner.Customer, 0)
	if err := r.db.WithContext(ctx).Order("customer_id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Update applies the given fields and returns the updated customer
func (r *GormCustomerRepository) Update(ctx context.Context, id uint, fields map[string]any) (*partner.Customer, error) {
	var customer partner.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateFields(tx, &partner.Customer{}, "customer_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&customer, "customer_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete removes a customer together with their orders, the orders'
// items, payments and shipments, and the customer's reviews
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, partner.Customer{}.TableName(), id)
	})
}
