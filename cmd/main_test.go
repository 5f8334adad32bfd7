package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"exceptionlogger/src/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("EXCEPTION_API_URL", srv.URL)
	t.Setenv("EXCEPTION_API_TIMEOUT", "2s")
}

func TestSendCommand(t *testing.T) {
	var received map[string]interface{}
	newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","message":"Exception logged successfully."}`))
	})

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	err := app.Run([]string{"exceptionlogger", "send",
		"--application-name", "billing",
		"--application-type", "Web API",
		"--category", "NullPointer",
		"--message", "boom",
		"--stack-trace", "trace",
		"--exp-object", "",
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Exception logged successfully.")
	assert.Equal(t, "billing", received["application_name"])
	assert.Equal(t, "", received["exp_object"])
	_, present := received["inner_exception"]
	assert.False(t, present)
}

func TestAppCommand(t *testing.T) {
	newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("app_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":{"application_name":"billing","application_type":"Web API","created_date":"2023-01-01T00:00:00Z","updated_date":null,"user_id":null}}`))
	})

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	require.NoError(t, app.Run([]string{"exceptionlogger", "app", "--app-id", "5"}))

	var details model.ApplicationDetails
	require.NoError(t, json.Unmarshal(out.Bytes(), &details))
	assert.Equal(t, "billing", details.ApplicationName)
	assert.Equal(t, "Web API", details.ApplicationType)
	assert.Nil(t, details.UserID)
}

func TestAppCommandNotFound(t *testing.T) {
	newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Application not found"}`))
	})

	app := newApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"exceptionlogger", "app", "--app-id", "99"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Application not found")
}

func TestMigrateCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "exceptions.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", dbPath)

	app := newApp()
	app.Writer = &bytes.Buffer{}
	require.NoError(t, app.Run([]string{"exceptionlogger", "migrate"}))

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, table := range []interface{}{
		&model.ApplicationTypeMaster{},
		&model.ApplicationMaster{},
		&model.ExceptionCategory{},
		&model.ExceptionRecord{},
	} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestMigrateCommandUnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	app := newApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run([]string{"exceptionlogger", "migrate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		require.NoError(t, loadDotEnv(filepath.Join(dir, "absent.env")))
	})

	t.Run("values are exported", func(t *testing.T) {
		t.Setenv("EXCEPTION_API_TIMEOUT", "")
		require.NoError(t, os.Unsetenv("EXCEPTION_API_TIMEOUT"))
		path := filepath.Join(dir, "app.env")
		require.NoError(t, os.WriteFile(path, []byte("EXCEPTION_API_TIMEOUT=7s\n"), 0o600))

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "7s", os.Getenv("EXCEPTION_API_TIMEOUT"))
	})

	t.Run("unreadable file is reported", func(t *testing.T) {
		require.Error(t, loadDotEnv(dir))
	})
}
