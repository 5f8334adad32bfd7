package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"exceptionlogger/src/database"
	"exceptionlogger/src/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		sqlDB.Close()
		t.Fatalf("failed to open gorm DB with sqlmock: %v", err)
	}

	return gdb, mock
}

func ptrString(val string) *string {
	return &val
}

func ptrInt64(val int64) *int64 {
	return &val
}

func seedCategory(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	row := model.ExceptionCategory{Category: name}
	require.NoError(t, db.Create(&row).Error)
	return row.ID
}

func seedException(t *testing.T, db *gorm.DB, record model.ExceptionRecord) model.ExceptionRecord {
	t.Helper()
	if record.CreatedDatetime.IsZero() {
		record.CreatedDatetime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	require.NoError(t, db.Create(&record).Error)
	return record
}
