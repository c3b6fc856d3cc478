package trade

import (
	"time"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodPayPal       PaymentMethod = "PayPal"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
)

// Payment represents a payment against an order. Removing the order
// removes the payment.
type Payment struct {
	ID            uint            `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id"`
	OrderID       *uint           `gorm:"column:order_id" json:"order_id"`
	PaymentMethod PaymentMethod   `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentDate   time.Time       `gorm:"column:payment_date;not null" json:"payment_date"`
	AmountPaid    decimal.Decimal `gorm:"column:amount_paid;type:decimal(10,2);not null" json:"amount_paid"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a new payment with required fields
func NewPayment(orderID *uint, method PaymentMethod, paymentDate time.Time, amountPaid decimal.Decimal) (*Payment, error) {
	if err := ValidatePaymentMethod(method); err != nil {
		return nil, err
	}
	if paymentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}
	return &Payment{
		OrderID:       orderID,
		PaymentMethod: method,
		PaymentDate:   paymentDate,
		AmountPaid:    amountPaid,
	}, nil
}

// ValidatePaymentMethod checks enum membership
func ValidatePaymentMethod(m PaymentMethod) error {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodPayPal, PaymentMethodBankTransfer:
		return nil
	default:
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be Credit Card, PayPal or Bank Transfer")
	}
}
