package trade

import "context"

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*Order, error)
	Delete(ctx context.Context, id uint) error
}

// OrderItemRepository defines persistence operations for order items
type OrderItemRepository interface {
	Create(ctx context.Context, item *OrderItem) error
	FindByID(ctx context.Context, id uint) (*OrderItem, error)
	FindAll(ctx context.Context) ([]OrderItem, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*OrderItem, error)
	Delete(ctx context.Context, id uint) error
}

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id uint) (*Payment, error)
	FindAll(ctx context.Context) ([]Payment, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*Payment, error)
	Delete(ctx context.Context, id uint) error
}

// ShipmentRepository defines persistence operations for shipments
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *Shipment) error
	FindByID(ctx context.Context, id uint) (*Shipment, error)
	FindAll(ctx context.Context) ([]Shipment, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*Shipment, error)
	Delete(ctx context.Context, id uint) error
}
