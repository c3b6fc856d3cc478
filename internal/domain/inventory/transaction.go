package inventory

import (
	"time"

	"github.com/shop/backend/internal/domain/shared"
)

// TransactionType classifies a stock movement
type TransactionType string

const (
	TransactionTypeRestock TransactionType = "restock"
	TransactionTypeSale    TransactionType = "sale"
)

// Transaction represents a stock movement for a product. Removing the
// product removes the transaction; removing the supplier only clears the
// supplier reference.
type Transaction struct {
	ID              uint            `gorm:"column:transaction_id;primaryKey;autoIncrement" json:"transaction_id"`
	ProductID       *uint           `gorm:"column:product_id" json:"product_id"`
	SupplierID      *uint           `gorm:"column:supplier_id" json:"supplier_id"`
	TransactionType TransactionType `gorm:"column:transaction_type;type:varchar(10);not null" json:"transaction_type"`
	Quantity        int             `gorm:"column:quantity;not null" json:"quantity"`
	TransactionDate time.Time       `gorm:"column:transaction_date;not null" json:"transaction_date"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "inventory_transactions"
}

// NewTransaction creates a new inventory transaction with required fields
func NewTransaction(productID, supplierID *uint, txType TransactionType, quantity int, txDate time.Time) (*Transaction, error) {
	if err := ValidateTransactionType(txType); err != nil {
		return nil, err
	}
	if quantity == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Transaction quantity is required")
	}
	if txDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Transaction date is required")
	}
	return &Transaction{
		ProductID:       productID,
		SupplierID:      supplierID,
		TransactionType: txType,
		Quantity:        quantity,
		TransactionDate: txDate,
	}, nil
}

// ValidateTransactionType checks enum membership
func ValidateTransactionType(t TransactionType) error {
	switch t {
	case TransactionTypeRestock, TransactionTypeSale:
		return nil
	default:
		return shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be restock or sale")
	}
}
