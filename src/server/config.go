package server

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8000"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`  // debug | info | warn | error
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"text"` // text | json
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}
