package handler

import (
	"context"
	"net/http"

	"exceptionlogger/src/apperror"
	"exceptionlogger/src/exceptionlog"
	"exceptionlogger/src/model"
	"exceptionlogger/src/response"
	"exceptionlogger/src/validation"

	logger "github.com/sirupsen/logrus"
)

const ExceptionLoggedMessage = "Exception logged successfully."

type exceptionLogger interface {
	LogException(ctx context.Context, entry exceptionlog.Entry) error
}

type exceptionLister interface {
	ListExceptions(ctx context.Context, category string, applicationID int64) ([]model.ExceptionRecord, error)
}

type applicationFinder interface {
	ApplicationDetails(ctx context.Context, applicationID int64) (*model.ApplicationDetails, error)
}

// SaveApplicationExceptionHandler validates an ExceptionReport and hands it to the
// exception logger. Invalid payloads are rejected before the logger is called.
func SaveApplicationExceptionHandler(exceptions exceptionLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var report model.ExceptionReport
		if err := validation.DecodeJSONBody(r, &report); err != nil {
			response.WriteError(w, r, err)
			return
		}

		if err := exceptions.LogException(r.Context(), entryFromReport(report)); err != nil {
			response.WriteError(w, r, apperror.Internal(err))
			return
		}

		logger.WithFields(map[string]interface{}{
			"application_name": report.ApplicationName,
			"category":         report.Category,
		}).Info("Application exception logged")

		response.WriteMessage(w, ExceptionLoggedMessage)
	}
}

// GetApplicationExceptionsHandler lists exceptions by category name (?type=) and
// application id (?application_id=).
func GetApplicationExceptionsHandler(exceptions exceptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := validation.RequiredQuery(r, "type")
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		applicationID, err := validation.RequiredQueryInt64(r, "application_id")
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		records, err := exceptions.ListExceptions(r.Context(), category, applicationID)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		response.WriteData(w, records)
	}
}

// GetApplicationDetailsHandler returns the registry entry of ?app_id=.
func GetApplicationDetailsHandler(applications applicationFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applicationID, err := validation.RequiredQueryInt64(r, "app_id")
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		details, err := applications.ApplicationDetails(r.Context(), applicationID)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		response.WriteData(w, details)
	}
}

func entryFromReport(report model.ExceptionReport) exceptionlog.Entry {
	return exceptionlog.Entry{
		ApplicationName:  report.ApplicationName,
		ApplicationType:  report.ApplicationType,
		Category:         report.Category,
		Message:          report.Message,
		StackTrace:       report.StackTrace,
		ExceptionDetails: report.ExceptionDetails,
		ExpObject:        report.ExpObject,
		ExpProcess:       report.ExpProcess,
		InnerException:   report.InnerException,
	}
}
