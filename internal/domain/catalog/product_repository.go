package catalog

import "context"

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*Product, error)
	Delete(ctx context.Context, id uint) error
}
