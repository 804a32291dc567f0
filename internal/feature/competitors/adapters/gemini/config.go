// Package gemini はGoogle Gemini APIを使用した競合分析・企業調査クライアントを提供します。
package gemini

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// DefaultRequestsPerMinute は1分あたりの最大リクエスト数のデフォルト値です。
	DefaultRequestsPerMinute = 30
	// DefaultTimeout は1リクエストあたりのタイムアウトです。
	DefaultTimeout = 60 * time.Second
)

// Config はGeminiクライアントの設定を保持します。
// APIKey と BaseURL が空の場合、SDKが GOOGLE_* 環境変数から解決します。
type Config struct {
	Model             string        // 使用するモデル名
	RequestsPerMinute int           // 1分あたりの最大リクエスト数（0以下で無制限）
	Timeout           time.Duration // HTTPリクエストタイムアウト
	APIKey            string        // Gemini APIキー（Vertex AI利用時は空）
	BaseURL           string        // APIのベースURL（テスト用）
}

// LoadConfig は環境変数からGeminiの設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		Model:             os.Getenv("GEMINI_MODEL"),
		RequestsPerMinute: DefaultRequestsPerMinute,
		Timeout:           DefaultTimeout,
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if v, err := strconv.Atoi(os.Getenv("GEMINI_REQUESTS_PER_MINUTE")); err == nil {
		cfg.RequestsPerMinute = v
	}
	return cfg
}
