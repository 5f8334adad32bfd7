package database

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the driver connection string from the configuration.
func (c Config) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL, "":
		mc := mysqldriver.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.port()))
		mc.DBName = c.Name
		mc.ParseTime = true
		mc.Loc = time.UTC
		if len(c.Params) > 0 {
			mc.Params = c.Params
		}
		return mc.FormatDSN(), nil
	case DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			c.Host,
			c.User,
			c.Password,
			c.Name,
			c.port(),
			c.SSLMode,
		)
		keys := make([]string, 0, len(c.Params))
		for k := range c.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dsn += fmt.Sprintf(" %s=%s", k, c.Params[k])
		}
		return dsn, nil
	case DriverSQLite:
		if c.Name == "" {
			return "", fmt.Errorf("DB_NAME is required for the sqlite driver")
		}
		return c.Name, nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

func (c Config) dialector() (gorm.Dialector, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(c.Driver) {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return mysql.Open(dsn), nil
	}
}

// Open connects to the configured database and verifies it is reachable.
// It should be called once at application startup.
func Open(ctx context.Context, config Config) (*gorm.DB, error) {
	dialector, err := config.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.LogLevel(config.GormLogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithFields(map[string]interface{}{
		"driver": config.Driver,
		"host":   config.Host,
		"dbName": config.Name,
	}).Info("[database] connection established")

	return db, nil
}

// Close releases every pooled connection of db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
