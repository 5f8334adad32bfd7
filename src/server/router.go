package server

import (
	"context"
	"net/http"

	"exceptionlogger/src/exceptionlog"
	"exceptionlogger/src/handler"
	"exceptionlogger/src/metrics"
	"exceptionlogger/src/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	logger "github.com/sirupsen/logrus"
)

type ExceptionLogger interface {
	LogException(ctx context.Context, entry exceptionlog.Entry) error
}

type ExceptionQueries interface {
	ListExceptions(ctx context.Context, category string, applicationID int64) ([]model.ExceptionRecord, error)
	ApplicationDetails(ctx context.Context, applicationID int64) (*model.ApplicationDetails, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the collaborators the router dispatches to.
type Dependencies struct {
	Exceptions ExceptionLogger
	Queries    ExceptionQueries
	DB         Pinger
	// Registry serves /metrics; nil disables instrumentation.
	Registry *prometheus.Registry
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// === Global Middleware ===
	// Recoverer sits inside logging and metrics so panics are still counted.
	r.Use(RequestID, Logging)
	if deps.Registry != nil {
		r.Use(metrics.NewHTTPMetrics(deps.Registry).Middleware)
	}
	r.Use(Recoverer, middleware.StripSlashes)

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	// Public routes
	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if deps.DB != nil {
			if err := deps.DB.Ping(r.Context()); err != nil {
				logger.WithError(err).Error("healthcheck: database unreachable")
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.WithError(err).Error(" \"/healthcheck error")
		}
	})

	r.Post("/save-application-exception", handler.SaveApplicationExceptionHandler(deps.Exceptions))
	r.Get("/get-application-exceptions", handler.GetApplicationExceptionsHandler(deps.Queries))
	r.Get("/get-application-details", handler.GetApplicationDetailsHandler(deps.Queries))

	return r
}
