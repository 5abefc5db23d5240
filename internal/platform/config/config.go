// Package config はYAMLファイルと環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"equity_backend/internal/feature/scoring/adapters/azureml"
	"equity_backend/internal/platform/db"
	"equity_backend/internal/platform/externalapi/iex"
	appredis "equity_backend/internal/platform/redis"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath は CONFIG_FILE 未設定時の設定ファイルです。
	DefaultPath = "config.yaml"

	defaultAddr          = ":8080"
	defaultRateLimit     = 8
	defaultRateInterval  = time.Minute
	defaultCacheHour     = 18
	defaultCacheTimezone = "America/New_York"
	defaultBatchTTL      = 15 * time.Minute
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database db.Config       `yaml:"database"`
	Redis    appredis.Config `yaml:"redis"`
	IEX      iex.Config      `yaml:"iex"`
	AzureML  azureml.Config  `yaml:"azureml"`
	Refresh  struct {
		Cron          string        `yaml:"cron"`           // 空の場合は定期更新しない
		RateLimit     int           `yaml:"rate_limit"`     // RateInterval あたりのチャート取得数
		RateInterval  time.Duration `yaml:"rate_interval"`
		CacheHour     int           `yaml:"cache_hour"`     // チャートキャッシュが失効する時刻（0-23）
		CacheTimezone string        `yaml:"cache_timezone"`
	} `yaml:"refresh"`
	Symbols struct {
		BatchTTL time.Duration `yaml:"batch_ttl"`
	} `yaml:"symbols"`
}

// PathFromEnv は CONFIG_FILE か DefaultPath を返します。
func PathFromEnv() string {
	if v := os.Getenv("CONFIG_FILE"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies environment variable overrides and defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	// 0時を有効な値として扱うため、未指定を負値で表す
	cfg.Refresh.CacheHour = -1

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Database.ApplyEnv()
	cfg.Redis.ApplyEnv()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("IEX_BASE_URL"); v != "" {
		c.IEX.BaseURL = v
	}
	if v := os.Getenv("IEX_TOKEN"); v != "" {
		c.IEX.Token = v
	}
	if v := os.Getenv("AZUREML_ENDPOINT"); v != "" {
		c.AzureML.Endpoint = v
	}
	if v := os.Getenv("AZUREML_API_KEY"); v != "" {
		c.AzureML.APIKey = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		c.Refresh.Cron = v
	}
	if v := os.Getenv("REFRESH_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse REFRESH_RATE_LIMIT: %w", err)
		}
		c.Refresh.RateLimit = n
	}
	if v := os.Getenv("SYMBOL_BATCH_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SYMBOL_BATCH_TTL: %w", err)
		}
		c.Symbols.BatchTTL = d
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Database.Driver == "" {
		c.Database.Driver = db.DriverMySQL
	}
	if c.IEX.BaseURL == "" {
		c.IEX.BaseURL = iex.DefaultBaseURL
	}
	if c.Refresh.RateLimit == 0 {
		c.Refresh.RateLimit = defaultRateLimit
	}
	if c.Refresh.RateInterval == 0 {
		c.Refresh.RateInterval = defaultRateInterval
	}
	if c.Refresh.CacheHour < 0 || c.Refresh.CacheHour > 23 {
		c.Refresh.CacheHour = defaultCacheHour
	}
	if c.Refresh.CacheTimezone == "" {
		c.Refresh.CacheTimezone = defaultCacheTimezone
	}
	if c.Symbols.BatchTTL == 0 {
		c.Symbols.BatchTTL = defaultBatchTTL
	}
}

// CacheLocation はキャッシュ失効時刻のタイムゾーンを返します。不明な場合はUTCです。
func (c *Config) CacheLocation() *time.Location {
	loc, err := time.LoadLocation(c.Refresh.CacheTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
