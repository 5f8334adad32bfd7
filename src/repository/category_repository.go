package repository

import (
	"context"
	"fmt"

	"exceptionlogger/src/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FirstOrCreate returns the id of category, registering it when new.
func (r *CategoryRepository) FirstOrCreate(ctx context.Context, category string) (int64, error) {
	row := model.ExceptionCategory{}
	if err := r.db.WithContext(ctx).
		Where(&model.ExceptionCategory{Category: category}).
		FirstOrCreate(&row).Error; err != nil {
		return 0, fmt.Errorf("resolve exception category %q: %w", category, err)
	}
	return row.ID, nil
}
