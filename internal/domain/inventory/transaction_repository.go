package inventory

import "context"

// TransactionRepository defines persistence operations for inventory transactions
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	FindByID(ctx context.Context, id uint) (*Transaction, error)
	FindAll(ctx context.Context) ([]Transaction, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*Transaction, error)
	Delete(ctx context.Context, id uint) error
}
