package partner

import (
	"github.com/shop/backend/internal/domain/shared"
)

// Supplier represents a goods supplier
type Supplier struct {
	ID          uint   `gorm:"column:supplier_id;primaryKey;autoIncrement" json:"supplier_id"`
	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	ContactInfo string `gorm:"column:contact_info;type:varchar(255);not null" json:"contact_info"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(name, contactInfo string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 100 characters")
	}
	if contactInfo == "" {
		return nil, shared.NewDomainError("INVALID_CONTACT_INFO", "Supplier contact info cannot be empty")
	}
	if len(contactInfo) > 255 {
		return nil, shared.NewDomainError("INVALID_CONTACT_INFO", "Supplier contact info cannot exceed 255 characters")
	}

	return &Supplier{
		Name:        name,
		ContactInfo: contactInfo,
	}, nil
}
