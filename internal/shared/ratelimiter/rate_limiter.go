// Package ratelimiter は外部API呼び出しの頻度を制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Limiter は呼び出し頻度を制限するインターフェースです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter は interval あたり limit 回までの呼び出しを許可するトークンバケットです。
type RateLimiter struct {
	name    string
	limiter *rate.Limiter
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterを生成します。
// limit が0以下の場合は制限なしになります。
func NewRateLimiter(name string, limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 || interval <= 0 {
		return &RateLimiter{name: name, limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	every := interval / time.Duration(limit)
	return &RateLimiter{
		name:    name,
		limiter: rate.NewLimiter(rate.Every(every), limit),
	}
}

// Wait はトークンが得られるまで待機します。
// ctx がキャンセルされた場合、またはデッドラインまでに取得できない場合はエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limiter.Allow() {
		return nil
	}
	slog.Debug("rate limit reached, waiting", "limiter", rl.name)
	return rl.limiter.Wait(ctx)
}
