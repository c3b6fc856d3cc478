package partner

import "context"

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	FindByID(ctx context.Context, id uint) (*Supplier, error)
	FindAll(ctx context.Context) ([]Supplier, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*Supplier, error)
	Delete(ctx context.Context, id uint) error
}
