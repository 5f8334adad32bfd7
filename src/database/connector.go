package database

import (
	"context"

	"exceptionlogger/src/apperror"

	"gorm.io/gorm"
)

// Connector hands out one database connection for the duration of fn.
// The connection is released when fn returns, fails or panics.
type Connector interface {
	WithConnection(ctx context.Context, fn func(conn *gorm.DB) error) error
}

// GormConnector pins a dedicated *sql.Conn from the gorm pool per call via gorm.DB.Connection.
type GormConnector struct {
	db *gorm.DB
}

func NewConnector(db *gorm.DB) *GormConnector {
	return &GormConnector{db: db}
}

func (c *GormConnector) WithConnection(ctx context.Context, fn func(conn *gorm.DB) error) error {
	acquired := false
	err := c.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		acquired = true
		// NewDB keeps the pinned pool but gives every statement in fn a clean slate.
		return fn(tx.Session(&gorm.Session{NewDB: true}))
	})
	if err != nil && !acquired {
		return apperror.Database(err)
	}
	return err
}

// Ping verifies the database is reachable.
func (c *GormConnector) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
