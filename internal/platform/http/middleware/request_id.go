// Package middleware はプラットフォーム共通のGinミドルウェアを提供します。
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rivalradar_backend/internal/platform/logging"
)

// HeaderRequestID はリクエストIDを運ぶHTTPヘッダーです。
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLength を超える受信IDは破棄して再採番します。
const maxRequestIDLength = 128

// RequestID はリクエストごとにIDを採番し、レスポンスヘッダーとリクエストコンテキストに設定します。
// クライアントが X-Request-ID を送ってきた場合はそれを引き継ぎます。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Set(logging.KeyRequestID, id)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
