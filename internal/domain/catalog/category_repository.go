package catalog

import "context"

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*Category, error)
	Delete(ctx context.Context, id uint) error
}
