package repository

import (
	"context"
	"fmt"

	"exceptionlogger/src/apperror"
	"exceptionlogger/src/model"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ExceptionRepository reads and writes ApplicationException rows.
type ExceptionRepository struct {
	db *gorm.DB
}

// NewExceptionRepository binds the repository to a connection, session or transaction.
func NewExceptionRepository(db *gorm.DB) *ExceptionRepository {
	return &ExceptionRepository{db: db}
}

// FindByCategoryAndApplication returns every exception of applicationID whose
// category name matches exactly. The result is never nil.
func (r *ExceptionRepository) FindByCategoryAndApplication(
	ctx context.Context,
	category string,
	applicationID int64,
) ([]model.ExceptionRecord, error) {

	// An unknown category name makes the subquery NULL and matches no rows.
	categoryID := r.db.Model(&model.ExceptionCategory{}).
		Select("id").
		Where("category = ?", category)

	records := make([]model.ExceptionRecord, 0)
	if err := r.db.WithContext(ctx).
		Model(&model.ExceptionRecord{}).
		Select(model.ExceptionRecordColumns).
		Where("category_id = (?)", categoryID).
		Where("application_id = ?", applicationID).
		Scan(&records).Error; err != nil {
		return nil, apperror.Database(err)
	}
	if records == nil {
		records = []model.ExceptionRecord{}
	}

	logger.WithFields(map[string]interface{}{
		"category":       category,
		"application_id": applicationID,
		"count":          len(records),
	}).Debug("Loaded application exceptions")

	return records, nil
}

// Create persists a new exception row.
func (r *ExceptionRepository) Create(ctx context.Context, record *model.ExceptionRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert application exception: %w", err)
	}
	return nil
}
