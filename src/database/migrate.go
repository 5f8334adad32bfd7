package database

import (
	"fmt"

	"exceptionlogger/src/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AutoMigrate creates the exception log tables when they are missing.
// Production schemas are managed outside this service; this is for
// development databases and tests.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.ApplicationTypeMaster{},
		&model.ApplicationMaster{},
		&model.ExceptionCategory{},
		&model.ExceptionRecord{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("[database] migrations completed")
	return nil
}
