package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"exceptionlogger/src/client"
	"exceptionlogger/src/database"
	"exceptionlogger/src/model"
	"exceptionlogger/src/server"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var Version string

func main() {
	if err := loadDotEnv(); err != nil {
		logrus.WithError(err).Warn("could not load .env file")
	}

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDotEnv reads .env files into the environment. A missing file is not an error.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "exceptionlogger"
	app.Usage = "The exception log service command line interface"
	app.Version = Version

	app.Commands = []cli.Command{
		serveCMD,
		migrateCMD,
		sendCMD,
		appCMD,
	}
	return app
}

var (
	serveCMD = cli.Command{
		Name:        "serve",
		Usage:       "run the HTTP API",
		Action:      serveAction,
		Description: `Serve the exception log HTTP API`,
	}
	migrateCMD = cli.Command{
		Name:        "migrate",
		Usage:       "create the exception log tables",
		Action:      migrateAction,
		Description: `Create or update the four exception log tables in the configured database`,
	}
	sendCMD = cli.Command{
		Name:  "send",
		Usage: "report an exception to the API",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "application-name", Required: true},
			cli.StringFlag{Name: "application-type", Required: true},
			cli.StringFlag{Name: "category", Required: true},
			cli.StringFlag{Name: "message", Required: true},
			cli.StringFlag{Name: "stack-trace", Required: true},
			cli.StringFlag{Name: "exception-details"},
			cli.StringFlag{Name: "exp-object"},
			cli.StringFlag{Name: "exp-process"},
			cli.StringFlag{Name: "inner-exception"},
		},
		Action:      sendAction,
		Description: `Post an exception report to EXCEPTION_API_URL`,
	}
	appCMD = cli.Command{
		Name:  "app",
		Usage: "show the details of a registered application",
		Flags: []cli.Flag{
			cli.Int64Flag{Name: "app-id", Required: true},
		},
		Action:      appAction,
		Description: `Fetch application details from EXCEPTION_API_URL`,
	}
)

func serveAction(_ *cli.Context) error {
	logrus.WithField("cmd", "serve").Info("Starting exception log API")
	return server.Run()
}

func migrateAction(_ *cli.Context) error {
	log := logrus.WithField("cmd", "migrate")

	db, err := database.Open(context.Background(), database.GetConfig())
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Error("Migration failed")
		return err
	}
	log.Info("Migration finished")
	return nil
}

func sendAction(c *cli.Context) error {
	api := client.New(client.GetConfig())
	message, err := api.SaveException(context.Background(), reportFromFlags(c))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.App.Writer, message)
	return nil
}

func appAction(c *cli.Context) error {
	api := client.New(client.GetConfig())
	details, err := api.GetApplicationDetails(context.Background(), c.Int64("app-id"))
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, details)
}

func reportFromFlags(c *cli.Context) model.ExceptionReport {
	optional := func(name string) *string {
		if !c.IsSet(name) {
			return nil
		}
		v := c.String(name)
		return &v
	}
	return model.ExceptionReport{
		ApplicationName:  c.String("application-name"),
		ApplicationType:  c.String("application-type"),
		Category:         c.String("category"),
		Message:          c.String("message"),
		StackTrace:       c.String("stack-trace"),
		ExceptionDetails: optional("exception-details"),
		ExpObject:        optional("exp-object"),
		ExpProcess:       optional("exp-process"),
		InnerException:   optional("inner-exception"),
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
