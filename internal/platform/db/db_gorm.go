// Package db はGORMによるデータベース接続の確立とマイグレーションを提供します。
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wealth_backend/internal/platform/db/migrations"
	"wealth_backend/internal/platform/env"
)

const (
	// DriverPostgres is the production driver.
	DriverPostgres = "postgres"
	// DriverSQLite is used for local development and tests.
	DriverSQLite = "sqlite"

	retryInterval = 3 * time.Second
)

// Config holds database connection settings.
type Config struct {
	Driver string

	// URL takes precedence over the discrete fields below (DATABASE_URL).
	URL          string
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	SSLMode      string
	InstanceName string // Cloud SQL instance, connected through its unix socket

	SQLitePath string

	MaxOpenConns   int
	ConnectTimeout time.Duration
	RunMigrations  bool
}

// Opener opens a gorm connection for a DSN. It is a seam for tests.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		Driver:         env.String("DB_DRIVER", DriverPostgres),
		URL:            env.String("DATABASE_URL", ""),
		User:           env.String("DB_USER", "postgres"),
		Password:       env.String("DB_PASSWORD", ""),
		Name:           env.String("DB_NAME", "wealth"),
		Host:           env.String("DB_HOST", "localhost"),
		Port:           env.String("DB_PORT", "5432"),
		SSLMode:        env.String("DB_SSLMODE", "disable"),
		InstanceName:   env.String("INSTANCE_CONNECTION_NAME", ""),
		SQLitePath:     env.String("SQLITE_PATH", "./wealth.db"),
		MaxOpenConns:   env.Int("DB_MAX_OPEN_CONNS", 5),
		ConnectTimeout: env.Duration("DB_CONNECT_TIMEOUT", 60*time.Second),
		RunMigrations:  env.Bool("RUN_MIGRATIONS", false),
	}
}

// BuildDSN は設定からドライバーに応じたDSN文字列を生成します。
// Postgresでは InstanceName が設定されていれば Cloud SQL の Unix ソケットを優先します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on", cfg.SQLitePath)
	}
	if cfg.URL != "" {
		return cfg.URL
	}

	host := cfg.Host
	port := cfg.Port
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// ConnectWithRetry は接続に成功するか timeout を超えるまで opener を繰り返し呼び出します。
// ctx がキャンセルされた場合は待機を打ち切ります。
func ConnectWithRetry(ctx context.Context, dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("db connect aborted: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}
}

// NewOpener returns the Opener for the configured driver.
func NewOpener(driver string) Opener {
	gcfg := &gorm.Config{
		// 一意制約違反などを gorm.ErrDuplicatedKey に変換
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         logger.Default.LogMode(logger.Warn),
	}
	if driver == DriverSQLite {
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gcfg) }
	}
	return func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gcfg) }
}

// Open connects, sizes the pool and optionally applies migrations.
// The returned handle is owned by the caller and must be closed at shutdown.
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	if cfg.Driver != DriverPostgres && cfg.Driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	gdb, err := ConnectWithRetry(ctx, BuildDSN(cfg), cfg.ConnectTimeout, NewOpener(cfg.Driver))
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.RunMigrations {
		applied, err := migrations.Up(ctx, sqlDB, cfg.Driver)
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		slog.Info("database migrations applied", "driver", cfg.Driver, "count", applied)
	}

	slog.Info("database connection established", "driver", cfg.Driver)
	return gdb, nil
}
