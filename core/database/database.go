package database

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	drv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSNConfig returns the driver configuration for the registry mirror.
// Timeouts fall back to 30 seconds.
func DSNConfig(cfg Config) *drv.Config {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	dsn := drv.NewConfig()
	dsn.User = cfg.User
	dsn.Passwd = cfg.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	dsn.DBName = cfg.Name
	dsn.Timeout = timeout
	dsn.ReadTimeout = timeout
	dsn.WriteTimeout = timeout
	dsn.ParseTime = true
	dsn.Loc = time.UTC
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn
}

// Connect opens a read-only session against the MySQL mirror of the asset registry
// and verifies it with a ping.
func Connect(cfg Config) (*gorm.DB, error) {
	dsn := DSNConfig(cfg)

	db, err := gorm.Open(mysql.New(mysql.Config{DSNConfig: dsn, DSN: dsn.FormatDSN()}), &gorm.Config{
		// Failures surface through returned errors
		Logger: logger.Discard,
		// Only SELECTs are issued
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dsn.Addr, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// A run issues a handful of sequential reads
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), dsn.Timeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", dsn.Addr, err)
	}

	return db, nil
}
