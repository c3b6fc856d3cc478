package partner

import "context"

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*Customer, error)
	Delete(ctx context.Context, id uint) error
}
