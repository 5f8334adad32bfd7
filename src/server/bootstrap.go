package server

import (
	"context"
	"fmt"

	"exceptionlogger/src/controller"
	"exceptionlogger/src/database"
	"exceptionlogger/src/exceptionlog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	logger "github.com/sirupsen/logrus"
)

// Run reads the configuration once, connects to the database, wires the
// handlers and serves until the process is signalled.
func Run() error {
	config := GetConfig()
	SetupLogger(config)

	dbConfig := database.GetConfig()
	db, err := database.Open(context.Background(), dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.WithError(err).Error("error closing database")
		}
	}()

	connector := database.NewConnector(db)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := NewRouter(Dependencies{
		Exceptions: exceptionlog.NewLogger(db),
		Queries:    controller.NewExceptionQuery(connector),
		DB:         connector,
		Registry:   registry,
	})

	return StartServer(config, router)
}
