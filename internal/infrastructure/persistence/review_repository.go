package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormReviewRepository implements catalog.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create persists a new review after verifying its customer and product references
func (r *GormReviewRepository) Create(ctx context.Context, review *catalog.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if review.CustomerID != nil {
			if err := ensureReference(tx, "customers", *review.CustomerID); err != nil {
				return err
			}
		}
		if review.ProductID != nil {
			if err := ensureReference(tx, "products", *review.ProductID); err != nil {
				return err
			}
		}
		return translateError(tx.Create(review).Error)
	})
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uint) (*catalog.Review, error) {
	var review catalog.Review
	if err := r.db.WithContext(ctx).First(&review, "review_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

// FindAll returns all reviews
func (r *GormReviewRepository) FindAll(ctx context.Context) ([]catalog.Review, error) {
	reviews := make([]catalog.Review, 0)
	if err := r.db.WithContext(ctx).Order("review_id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update applies the given fields and returns the updated review
func (r *GormReviewRepository) Update(ctx context.Context, id uint, fields map[string]any) (*catalog.Review, error) {
	var review catalog.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if customerID, ok := referencedID(fields, "customer_id"); ok {
			if err := ensureReference(tx, "customers", customerID); err != nil {
				return err
			}
		}
		if productID, ok := referencedID(fields, "product_id"); ok {
			if err := ensureReference(tx, "products", productID); err != nil {
				return err
			}
		}
		if err := updateFields(tx, &catalog.Review{}, "review_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&review, "review_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, catalog.Review{}.TableName(), id)
	})
}
