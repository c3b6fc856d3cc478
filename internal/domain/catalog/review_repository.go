package catalog

import "context"

// ReviewRepository defines persistence operations for reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	FindByID(ctx context.Context, id uint) (*Review, error)
	FindAll(ctx context.Context) ([]Review, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*Review, error)
	Delete(ctx context.Context, id uint) error
}
