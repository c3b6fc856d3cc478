package catalog

import (
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable product. CategoryID is cleared (not the
// product deleted) when the referenced category is removed.
type Product struct {
	ID            uint            `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name          string          `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Price         decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	StockQuantity int             `gorm:"column:stock_quantity;not null" json:"stock_quantity"`
	CategoryID    *uint           `gorm:"column:category_id" json:"category_id"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with required fields
func NewProduct(name string, price decimal.Decimal, stockQuantity int, categoryID *uint) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	return &Product{
		Name:          name,
		Price:         price,
		StockQuantity: stockQuantity,
		CategoryID:    categoryID,
	}, nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 100 characters")
	}
	return nil
}
