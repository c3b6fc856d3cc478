package trade

import (
	"time"

	"github.com/shop/backend/internal/domain/shared"
)

// Shipment represents the dispatch of an order. Removing the order removes
// the shipment.
type Shipment struct {
	ID             uint      `gorm:"column:shipment_id;primaryKey;autoIncrement" json:"shipment_id"`
	OrderID        *uint     `gorm:"column:order_id" json:"order_id"`
	ShipmentDate   time.Time `gorm:"column:shipment_date;not null" json:"shipment_date"`
	Carrier        string    `gorm:"column:carrier;type:varchar(100);not null" json:"carrier"`
	TrackingNumber string    `gorm:"column:tracking_number;type:varchar(100);not null" json:"tracking_number"`
}

// TableName returns the table name for GORM
func (Shipment) TableName() string {
	return "shipments"
}

// NewShipment creates a new shipment with required fields
func NewShipment(orderID *uint, shipmentDate time.Time, carrier, trackingNumber string) (*Shipment, error) {
	if shipmentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Shipment date is required")
	}
	if carrier == "" {
		return nil, shared.NewDomainError("INVALID_CARRIER", "Carrier cannot be empty")
	}
	if len(carrier) > 100 {
		return nil, shared.NewDomainError("INVALID_CARRIER", "Carrier cannot exceed 100 characters")
	}
	if trackingNumber == "" {
		return nil, shared.NewDomainError("INVALID_TRACKING_NUMBER", "Tracking number cannot be empty")
	}
	if len(trackingNumber) > 100 {
		return nil, shared.NewDomainError("INVALID_TRACKING_NUMBER", "Tracking number cannot exceed 100 characters")
	}
	return &Shipment{
		OrderID:        orderID,
		ShipmentDate:   shipmentDate,
		Carrier:        carrier,
		TrackingNumber: trackingNumber,
	}, nil
}
