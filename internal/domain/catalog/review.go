package catalog

import (
	"time"

	"github.com/shop/backend/internal/domain/shared"
)

// Rating bounds for product reviews
const (
	MinRating = 1
	MaxRating = 5
)

// Review represents a customer's review of a product. Removing either the
// customer or the product removes the review.
type Review struct {
	ID         uint      `gorm:"column:review_id;primaryKey;autoIncrement" json:"review_id"`
	CustomerID *uint     `gorm:"column:customer_id" json:"customer_id"`
	ProductID  *uint     `gorm:"column:product_id" json:"product_id"`
	Rating     int       `gorm:"column:rating;not null" json:"rating"`
	ReviewText string    `gorm:"column:review_text;type:text" json:"review_text"`
	ReviewDate time.Time `gorm:"column:review_date;not null" json:"review_date"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a new review with required fields
func NewReview(customerID, productID *uint, rating int, reviewText string, reviewDate time.Time) (*Review, error) {
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	if reviewDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Review date is required")
	}
	return &Review{
		CustomerID: customerID,
		ProductID:  productID,
		Rating:     rating,
		ReviewText: reviewText,
		ReviewDate: reviewDate,
	}, nil
}

// ValidateRating checks that a rating is within [MinRating, MaxRating]
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	return nil
}
