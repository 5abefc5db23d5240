// Package redis はRedisクライアントの生成を提供します。
package redis

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured はRedisのホストが設定されていない場合に返されます。
var ErrNotConfigured = errors.New("redis host not configured")

// Config はRedis接続設定です。
type Config struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ApplyEnv は設定済みの環境変数で値を上書きします。
func (c *Config) ApplyEnv() {
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Password = v
	}
}

// Addr は host:port 形式のアドレスを返します。ポート未設定時は6379です。
func (c Config) Addr() string {
	port := c.Port
	if port == "" {
		port = "6379"
	}
	return net.JoinHostPort(c.Host, port)
}

// NewRedisClient は接続確認済みのクライアントを返します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}
	addr := cfg.Addr()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
