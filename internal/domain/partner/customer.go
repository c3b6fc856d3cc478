package partner

import (
	"github.com/shop/backend/internal/domain/shared"
)

// Customer represents a customer account. Email is unique across all
// customers; the database enforces the constraint and a duplicate surfaces
// as a validation error to the caller.
type Customer struct {
	ID      uint   `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	Name    string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email   string `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	Phone   string `gorm:"column:phone;type:varchar(15);not null" json:"phone"`
	Address string `gorm:"column:address;type:varchar(255);not null" json:"address"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 100 characters")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Customer email cannot be empty")
	}
	if len(email) > 100 {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Customer email cannot exceed 100 characters")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Customer phone cannot be empty")
	}
	if len(phone) > 15 {
		return nil, shared.NewDomainError("INVALID_PHONE", "Customer phone cannot exceed 15 characters")
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Customer address cannot be empty")
	}
	if len(address) > 255 {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Customer address cannot exceed 255 characters")
	}

	return &Customer{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}, nil
}
