package infra

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jrandrade/datastore-gateway/config"
)

// MySQLClient holds the relational pool. The pool is capped at
// cfg.MySQL.PoolSize open connections (default 10) with an unbounded wait
// queue: under sustained overload requests queue indefinitely rather than
// failing fast. That is a documented limitation, not a bug to patch with a
// timeout here.
type MySQLClient struct {
	DB *gorm.DB
}

// InitMySQLClient opens the pool. The connection itself is lazy; the version
// handshake is skipped so a down database does not fail boot. Callers emit
// the one-time startup diagnostic via Ping.
func InitMySQLClient(cfg *config.EnvConfig) (*MySQLClient, error) {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       cfg.MySQL.DSN(),
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MySQL client: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access MySQL connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MySQL.PoolSize)
	sqlDB.SetMaxIdleConns(cfg.MySQL.PoolSize)

	return &MySQLClient{DB: db}, nil
}

// Ping acquires a connection from the pool and checks it.
func (m *MySQLClient) Ping(ctx context.Context) error {
	sqlDB, err := m.DB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// TestConnection runs SELECT 1 through the pool and returns the result,
// serving the relational health probe.
func (m *MySQLClient) TestConnection(ctx context.Context) (int, error) {
	var test int
	if err := m.DB.WithContext(ctx).Raw("SELECT 1 AS test").Scan(&test).Error; err != nil {
		return 0, err
	}
	return test, nil
}

// Close releases the pool at shutdown.
func (m *MySQLClient) Close() error {
	sqlDB, err := m.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
