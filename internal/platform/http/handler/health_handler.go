// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// 依存サービスは確認せず、プロセスが応答できることだけを返します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Check は依存サービス1つの疎通確認です。
type Check struct {
	Name string
	// Optional な依存が落ちていても degraded として200を返します。
	Optional bool
	Ping     func(ctx context.Context) error
}

// Ready は /readyz 用のハンドラーを返します。
// 必須の依存が1つでも失敗すれば503を返します。
func Ready(timeout time.Duration, checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		status := "ok"
		code := http.StatusOK
		results := make(map[string]string, len(checks))
		for _, chk := range checks {
			if err := chk.Ping(ctx); err != nil {
				slog.WarnContext(ctx, "readiness check failed", "dependency", chk.Name, "error", err)
				results[chk.Name] = "down"
				if chk.Optional {
					if code == http.StatusOK {
						status = "degraded"
					}
					continue
				}
				status = "down"
				code = http.StatusServiceUnavailable
				continue
			}
			results[chk.Name] = "up"
		}
		c.JSON(code, gin.H{"status": status, "checks": results})
	}
}
