package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	t.Run("mysql", func(t *testing.T) {
		cfg := Config{Driver: DriverMySQL, User: "logger", Password: "s3cr:t@", Host: "db.internal", Name: "exceptions"}

		dsn, err := cfg.DSN()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(dsn, "logger:s3cr:t@@tcp(db.internal:3306)/exceptions?"), dsn)
		assert.Contains(t, dsn, "parseTime=true")
	})

	t.Run("mysql with explicit port", func(t *testing.T) {
		cfg := Config{Driver: DriverMySQL, User: "u", Password: "p", Host: "10.0.0.5", Port: 3307, Name: "logs"}

		dsn, err := cfg.DSN()
		require.NoError(t, err)
		assert.Contains(t, dsn, "tcp(10.0.0.5:3307)/logs")
	})

	t.Run("postgres", func(t *testing.T) {
		cfg := Config{
			Driver:   DriverPostgres,
			User:     "u",
			Password: "p",
			Host:     "localhost",
			Name:     "logs",
			SSLMode:  "disable",
			Params:   map[string]string{"TimeZone": "UTC", "application_name": "exceptionlogger"},
		}

		dsn, err := cfg.DSN()
		require.NoError(t, err)
		assert.Equal(t, "host=localhost user=u password=p dbname=logs port=5432 sslmode=disable TimeZone=UTC application_name=exceptionlogger", dsn)
	})

	t.Run("sqlite requires a name", func(t *testing.T) {
		_, err := Config{Driver: DriverSQLite}.DSN()
		require.Error(t, err)
	})

	t.Run("unsupported driver", func(t *testing.T) {
		_, err := Config{Driver: "oracle"}.DSN()
		require.Error(t, err)
	})
}

func TestGetConfigReadsEnvironment(t *testing.T) {
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "mysql")
	t.Setenv("DB_NAME", "exceptions")

	cfg := GetConfig()

	assert.Equal(t, DriverMySQL, cfg.Driver)
	assert.Equal(t, "svc", cfg.User)
	assert.Equal(t, "pw", cfg.Password)
	assert.Equal(t, "mysql", cfg.Host)
	assert.Equal(t, "exceptions", cfg.Name)
	assert.Equal(t, 3306, cfg.port())
}
