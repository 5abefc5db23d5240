// Package ratelimiter は外部API呼び出しの頻度を制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Limiter は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter は interval あたり limit 回までの呼び出しを許可します。
// 上限に達した場合は次のトークンが補充されるまで待機します。
type RateLimiter struct {
	limiter *rate.Limiter
	limit   int
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit が0以下の場合は制限しません。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 || interval <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	every := rate.Every(interval / time.Duration(limit))
	return &RateLimiter{limiter: rate.NewLimiter(every, limit), limit: limit}
}

// Wait は呼び出し可能になるまで待機します。ctx がキャンセルされた場合はそのエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	r := rl.limiter.Reserve()
	if !r.OK() {
		return rl.limiter.Wait(ctx)
	}
	delay := r.Delay()
	if delay == 0 {
		return nil
	}

	slog.Info("rate limit reached, waiting", "limit", rl.limit, "delay", delay)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
