// Package exceptionlog persists application exception reports.
//
// Callers only see LogException; how the report is stored (which tables,
// inside which transaction) is owned entirely by this package.
package exceptionlog

import (
	"context"
	"fmt"
	"time"

	"exceptionlogger/src/model"
	"exceptionlogger/src/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Entry holds the nine fields of one reported exception.
// Nil optional fields are stored as NULL.
type Entry struct {
	ApplicationName  string
	ApplicationType  string
	Category         string
	Message          string
	StackTrace       string
	ExceptionDetails *string
	ExpObject        *string
	ExpProcess       *string
	InnerException   *string
}

// Logger stores entries in the exception tables.
type Logger struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLogger(db *gorm.DB) *Logger {
	return &Logger{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// LogException records entry. Unknown application types, applications and
// categories are registered on first use. All writes share one transaction.
func (l *Logger) LogException(ctx context.Context, entry Entry) error {
	log := logrus.WithFields(map[string]interface{}{
		"application_name": entry.ApplicationName,
		"application_type": entry.ApplicationType,
		"category":         entry.Category,
	})
	log.WithField("message", entry.Message).Warn("Application exception captured")

	now := l.now()
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		apps := repository.NewApplicationRepository(tx)

		typeID, err := apps.FirstOrCreateType(ctx, entry.ApplicationType)
		if err != nil {
			return err
		}

		app, err := apps.FirstOrCreate(ctx, entry.ApplicationName, typeID, now)
		if err != nil {
			return err
		}

		categoryID, err := repository.NewCategoryRepository(tx).FirstOrCreate(ctx, entry.Category)
		if err != nil {
			return err
		}

		record := &model.ExceptionRecord{
			ExceptionDetails: entry.ExceptionDetails,
			Message:          entry.Message,
			ExpObject:        entry.ExpObject,
			ExpProcess:       entry.ExpProcess,
			ApplicationID:    app.ID,
			CategoryID:       categoryID,
			CreatedDatetime:  now,
			InnerException:   entry.InnerException,
			StackTrace:       entry.StackTrace,
		}
		return repository.NewExceptionRepository(tx).Create(ctx, record)
	})
	if err != nil {
		log.WithError(err).Error("Failed to persist application exception")
		return fmt.Errorf("log exception: %w", err)
	}

	return nil
}
