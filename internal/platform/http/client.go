// Package http は外部REST API呼び出し用のHTTPクライアントアダプターを提供します。
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"
)

// StatusError は2xx以外のレスポンスを表します。
// ステータスコードとレスポンスヘッダーを保持し、呼び出し元が失敗内容を表示できるようにします。
type StatusError struct {
	StatusCode int
	Header     http.Header
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d", e.StatusCode)
}

// FormatHeader はヘッダーを "Name: value" 形式の行に整形します（キー順）。
func (e *StatusError) FormatHeader() string {
	keys := make([]string, 0, len(e.Header))
	for k := range e.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, strings.Join(e.Header[k], ", "))
	}
	return b.String()
}

// Client はURLを毎回完全な形で受け取るステートレスなHTTPクライアントです。
// ベースアドレスなどの可変状態は持ちません。
type Client struct {
	hc *http.Client
}

// NewHTTPClient は外部API向けの *http.Client を返します。timeout はリクエスト全体の上限です。
// http.DefaultClient はタイムアウトを持たないため使用しません。
func NewHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         dialer.DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
		},
	}
}

// NewClient は指定された *http.Client をラップした Client を生成します。
func NewClient(hc *http.Client) *Client {
	return &Client{hc: hc}
}

// Get はGETリクエストを送信し、2xxの場合はレスポンスボディを文字列で返します。
func (c *Client) Get(ctx context.Context, url string, header http.Header) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return c.do(req)
}

// PostJSON はbodyをJSONにエンコードしてPOSTし、2xxの場合はレスポンスボディを文字列で返します。
func (c *Client) PostJSON(ctx context.Context, url string, body any, header http.Header) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", req.Method, req.URL.Redacted(), err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &StatusError{
			StatusCode: res.StatusCode,
			Header:     res.Header.Clone(),
			Body:       string(b),
		}
	}
	return string(b), nil
}
