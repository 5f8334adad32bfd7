package database

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver   string `envconfig:"DB_DRIVER" default:"mysql"` // mysql | postgres | sqlite
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT"`
	Name     string `envconfig:"DB_NAME"` // file path when Driver is sqlite
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	// Extra driver parameters, e.g. DB_PARAMS="charset:utf8mb4,tls:skip-verify"
	Params       map[string]string `envconfig:"DB_PARAMS"`
	GormLogLevel int               `envconfig:"GORM_LOG_LEVEL" default:"2"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}

func (c Config) port() int {
	if c.Port > 0 {
		return c.Port
	}
	if c.Driver == DriverPostgres {
		return 5432
	}
	return 3306
}
