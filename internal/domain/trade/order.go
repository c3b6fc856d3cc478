package trade

import (
	"time"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment status of an order.
// Transitions are not guarded: an update may set any status at any time.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// Order represents a customer order. Removing the customer removes the
// order and, transitively, its items, payments and shipments.
type Order struct {
	ID          uint            `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	CustomerID  *uint           `gorm:"column:customer_id" json:"customer_id"`
	OrderDate   time.Time       `gorm:"column:order_date;not null" json:"order_date"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`
	Status      OrderStatus     `gorm:"column:status;type:varchar(50)" json:"status"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order with required fields
func NewOrder(customerID *uint, orderDate time.Time, totalAmount decimal.Decimal, status OrderStatus) (*Order, error) {
	if orderDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Order date is required")
	}
	// Status is optional on creation
	if status != "" {
		if err := ValidateOrderStatus(status); err != nil {
			return nil, err
		}
	}
	return &Order{
		CustomerID:  customerID,
		OrderDate:   orderDate,
		TotalAmount: totalAmount,
		Status:      status,
	}, nil
}

// ValidateOrderStatus checks enum membership
func ValidateOrderStatus(s OrderStatus) error {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Order status must be Processing, Shipped or Delivered")
	}
}
