package persistence

import (
	"context"

	"github.com/shop/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create persists a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	return translateError(r.db.WithContext(ctx).Create(category).Error)
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "category_id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// FindAll returns all categories
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	categories := make([]catalog.Category, 0)
	if err := r.db.WithContext(ctx).Order("category_id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Update applies the given fields and returns the updated category
func (r *GormCategoryRepository) Update(ctx context.Context, id uint, fields map[string]any) (*catalog.Category, error) {
	var category catalog.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateFields(tx, &catalog.Category{}, "category_id", id, fields); err != nil {
			return err
		}
		return translateError(tx.First(&category, "category_id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category; dependent products keep their rows with a
// cleared category reference
func (r *GormCategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteWithRules(tx, catalog.Category{}.TableName(), id)
	})
}
