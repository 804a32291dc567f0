package usecase

import (
	"os"
	"strconv"
	"strings"

	"rivalradar_backend/internal/feature/comparison/derive"
)

// DefaultDashboardSuggestions は /dashboard で表示する提案機能の最大数です。
const DefaultDashboardSuggestions = 5

// Config はビューモデル生成の設定を保持します。
type Config struct {
	Shares          derive.ShareOptions
	Categories      []string // nil の場合は derive.DefaultCategories
	SuggestionLimit int      // ダッシュボードの提案機能の上限
}

// LoadConfig は環境変数から比較ビューの設定を読み込みます。
// 未設定または不正な値は derive の既定値になります。0 はそのまま使われます。
func LoadConfig() Config {
	cfg := Config{SuggestionLimit: DefaultDashboardSuggestions}
	if v, err := strconv.Atoi(os.Getenv("COMPARISON_DISPLAY_CAP")); err == nil {
		cfg.Shares.DisplayCap = &v
	}
	if v, err := strconv.ParseFloat(os.Getenv("COMPARISON_REMAINDER_FLOOR"), 64); err == nil {
		cfg.Shares.RemainderFloor = &v
	}
	if v, err := strconv.Atoi(os.Getenv("COMPARISON_SUGGESTION_LIMIT")); err == nil && v >= 0 {
		cfg.SuggestionLimit = v
	}
	cfg.Categories = splitList(os.Getenv("COMPARISON_CATEGORIES"))
	return cfg
}

// CategoryList は有効な評価カテゴリを返します。
func (c Config) CategoryList() []string {
	if c.Categories == nil {
		return derive.DefaultCategories
	}
	return c.Categories
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
