// Package db はGORMによるデータベース接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	companyadapters "equity_backend/internal/feature/companies/adapters"
	equityadapters "equity_backend/internal/feature/equities/adapters"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// DriverMySQL はデフォルトのドライバーです。
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// DefaultSQLitePath はsqliteドライバーでPathが未設定の場合のファイルです。
	DefaultSQLitePath = "equity.db"

	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Config はデータベース接続設定です。
type Config struct {
	Driver        string `yaml:"driver"` // mysql | postgres | sqlite
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	Name          string `yaml:"name"`
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	InstanceName  string `yaml:"instance_connection_name"` // Cloud SQL（設定時はUnixソケット接続）
	Path          string `yaml:"path"`                     // sqliteのファイルパス
	RunMigrations bool   `yaml:"run_migrations"`
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	var cfg Config
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv は設定済みの環境変数で値を上書きします。
func (c *Config) ApplyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Driver, "DB_DRIVER")
	set(&c.User, "DB_USER")
	set(&c.Password, "DB_PASSWORD")
	set(&c.Name, "DB_NAME")
	set(&c.Host, "DB_HOST")
	set(&c.Port, "DB_PORT")
	set(&c.InstanceName, "INSTANCE_CONNECTION_NAME")
	set(&c.Path, "DB_PATH")
	if v := os.Getenv("RUN_MIGRATIONS"); v != "" {
		c.RunMigrations = v == "true"
	}
}

// BuildDSN はドライバーに応じた接続文字列を生成します。
// mysqlとpostgresでは InstanceName が設定されていればCloud SQLのUnixソケットを優先します。
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case DriverPostgres:
		host, port := cfg.Host, cfg.Port
		if cfg.InstanceName != "" {
			host, port = "/cloudsql/"+cfg.InstanceName, ""
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable", host, cfg.User, cfg.Password, cfg.Name)
		if port != "" {
			dsn += " port=" + port
		}
		return dsn
	case DriverSQLite:
		if cfg.Path == "" {
			return DefaultSQLitePath
		}
		return cfg.Path
	default:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	}
}

// Opener はDSNからDB接続を開く関数です。
type Opener func(dsn string) (*gorm.DB, error)

// NewOpener はドライバーに応じたOpenerを返します。
// 一意制約違反を gorm.ErrDuplicatedKey として扱えるよう TranslateError を有効にします。
func NewOpener(driver string) Opener {
	gcfg := &gorm.Config{TranslateError: true}
	return func(dsn string) (*gorm.DB, error) {
		switch driver {
		case DriverPostgres:
			return gorm.Open(postgres.Open(dsn), gcfg)
		case DriverSQLite:
			return gorm.Open(sqlite.Open(dsn), gcfg)
		default:
			return gorm.Open(gmysql.Open(dsn), gcfg)
		}
	}
}

// ConnectWithRetry は timeout に達するまで一定間隔で接続を再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// Open は設定に従って接続し、RunMigrations が有効ならマイグレーションを実行します。
func Open(cfg Config) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), connectTimeout, NewOpener(cfg.Driver))
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		// sqliteは単一接続で書き込みを直列化
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}

// Migrate はアプリケーションのテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&companyadapters.CompanyModel{},
		&equityadapters.EquityModel{},
		&companyadapters.SymbolBatchModel{},
	)
}
