// Package azureml はAzure ML request/response形式のスコアリングサービスのクライアントを提供します。
package azureml

import "time"

const (
	// DefaultTimeout はスコアリング呼び出しのデフォルトタイムアウトです。
	DefaultTimeout = 30 * time.Second
	// InputName はリクエストの入力テーブル名です。
	InputName = "input1"
)

// Config はスコアリングクライアントの設定を保持します。
type Config struct {
	Endpoint string        `yaml:"endpoint"` // スコアリングエンドポイントの完全なURL
	APIKey   string        `yaml:"api_key"`  // Bearer認証に使うAPIキー
	Timeout  time.Duration `yaml:"timeout"`  // HTTPリクエストタイムアウト
}

// WithDefaults は未設定の項目をデフォルト値で補ったConfigを返します。
func (c Config) WithDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
