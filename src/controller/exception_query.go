package controller

import (
	"context"

	"exceptionlogger/src/database"
	"exceptionlogger/src/model"
	"exceptionlogger/src/repository"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ExceptionQuery answers the read endpoints. Each call holds exactly one
// database connection for its whole duration.
type ExceptionQuery struct {
	connector database.Connector
}

func NewExceptionQuery(connector database.Connector) *ExceptionQuery {
	return &ExceptionQuery{connector: connector}
}

// ListExceptions returns the exceptions of applicationID filed under category.
// An unknown category or application yields an empty list.
func (q *ExceptionQuery) ListExceptions(ctx context.Context, category string, applicationID int64) ([]model.ExceptionRecord, error) {
	var records []model.ExceptionRecord
	err := q.connector.WithConnection(ctx, func(conn *gorm.DB) error {
		var err error
		records, err = repository.NewExceptionRepository(conn).FindByCategoryAndApplication(ctx, category, applicationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ApplicationDetails loads the application and then, in a second query, the
// description of its type. A type id without description resolves to
// model.UnknownApplicationType.
func (q *ExceptionQuery) ApplicationDetails(ctx context.Context, applicationID int64) (*model.ApplicationDetails, error) {
	var details model.ApplicationDetails
	err := q.connector.WithConnection(ctx, func(conn *gorm.DB) error {
		apps := repository.NewApplicationRepository(conn)

		app, err := apps.FindByID(ctx, applicationID)
		if err != nil {
			return err
		}

		description, found, err := apps.FindTypeDescription(ctx, app.AppTypeID)
		if err != nil {
			return err
		}
		if !found {
			logger.WithFields(map[string]interface{}{
				"app_id":      app.ID,
				"app_type_id": app.AppTypeID,
			}).Warn("Application type has no description")
			description = model.UnknownApplicationType
		}

		details = app.ToDetails(description)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}
