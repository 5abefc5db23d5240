// Package iex はIEX Trading形式の株価データAPIのクライアントを提供します。
package iex

import "time"

const (
	// DefaultBaseURL はIEX Trading APIのデフォルトのベースURLです。
	DefaultBaseURL = "https://api.iextrading.com/1.0"
	// DefaultTimeout はHTTPリクエストのデフォルトタイムアウトです。
	DefaultTimeout = 10 * time.Second
)

// Config はIEX APIクライアントの設定を保持します。
type Config struct {
	BaseURL string        `yaml:"base_url"` // APIのベースURL（例: "https://api.iextrading.com/1.0"）
	Token   string        `yaml:"token"`    // 任意のAPIトークン（空の場合はクエリに付与しない）
	Timeout time.Duration `yaml:"timeout"`  // HTTPリクエストタイムアウト
}

// WithDefaults は未設定の項目をデフォルト値で補ったConfigを返します。
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
