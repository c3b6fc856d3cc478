package trade

import (
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderItem represents a single line of an order. It is removed when either
// its order or its product is removed. Status is free-form and independent
// of Order.Status; no synchronization rule exists between the two.
type OrderItem struct {
	ID        uint            `gorm:"column:order_item_id;primaryKey;autoIncrement" json:"order_item_id"`
	OrderID   *uint           `gorm:"column:order_id" json:"order_id"`
	ProductID *uint           `gorm:"column:product_id" json:"product_id"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	ItemPrice decimal.Decimal `gorm:"column:item_price;type:decimal(10,2);not null" json:"item_price"`
	Status    string          `gorm:"column:status" json:"status"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order item with required fields
func NewOrderItem(orderID, productID *uint, quantity int, itemPrice decimal.Decimal, status string) (*OrderItem, error) {
	if quantity == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Order item quantity is required")
	}
	return &OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		ItemPrice: itemPrice,
		Status:    status,
	}, nil
}
