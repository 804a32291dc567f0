// Package http は外部API呼び出し用のHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// Option はNewHTTPClientの追加設定です。
type Option func(*options)

type options struct {
	userAgent string
}

// WithUserAgent はUser-Agentヘッダーが未設定のリクエストに ua を付与します。
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// NewHTTPClient はGemini APIやCLIのバックエンド呼び出しに使うHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: HTTP_PROXY などの環境変数に従う
//   - TCP接続タイムアウトは5秒、TLSハンドシェイクも5秒
//   - アイドル接続は最大100本、90秒で破棄
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// http.DefaultClientにはタイムアウトがないため使用しないこと。
func NewHTTPClient(timeout time.Duration, opts ...Option) *http.Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var rt http.RoundTripper = &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	if o.userAgent != "" {
		rt = &userAgentTransport{next: rt, userAgent: o.userAgent}
	}
	return &http.Client{Timeout: timeout, Transport: rt}
}

type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	// RoundTripper は元のリクエストを変更してはならない
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(clone)
}
