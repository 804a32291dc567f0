package usecase

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameLength は企業名の最大文字数（rune数）です。
	MaxNameLength = 200
	// MaxMarketPositionLength は市場ポジションの最大文字数です。
	MaxMarketPositionLength = 100
	// MaxResearchNameLength はAI調査に渡す企業名の最大文字数です。
	MaxResearchNameLength = 100
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
)

// validCompanyName はAI調査に許可される企業名の文字パターンです（英数字・日本語・スペース・中黒など）。
var validCompanyName = regexp.MustCompile(`^[\p{L}\p{N}\s・\-\.&,]+$`)

// CompetitorInput は企業の作成・更新の入力です。
type CompetitorInput struct {
	Name           string
	Description    string
	Website        string
	Features       []string
	MarketPosition string
	IsPrimary      bool
}

// normalize はフィールドを整形し、検証します。
func (in CompetitorInput) normalize() (CompetitorInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Website = strings.TrimSpace(in.Website)
	in.MarketPosition = strings.TrimSpace(in.MarketPosition)

	if in.Name == "" {
		return in, fmt.Errorf("%w: name is required", ErrInvalidCompetitor)
	}
	if utf8.RuneCountInString(in.Name) > MaxNameLength {
		return in, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCompetitor, MaxNameLength)
	}
	if utf8.RuneCountInString(in.MarketPosition) > MaxMarketPositionLength {
		return in, fmt.Errorf("%w: market position exceeds %d characters", ErrInvalidCompetitor, MaxMarketPositionLength)
	}
	if in.Website != "" && !isWebURL(in.Website) {
		return in, fmt.Errorf("%w: website must be an http(s) URL", ErrInvalidCompetitor)
	}
	in.Features = dropEmpty(in.Features)
	return in, nil
}

// dropEmpty は空文字列の要素だけを取り除きます。
// 機能名は完全一致で比較されるため、空白や大文字小文字、重複はそのまま保持します。
func dropEmpty(features []string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// cleanList はAIが返した文章リストの前後の空白を除去し、空要素と重複を取り除きます（順序は保持）。
func cleanList(features []string) []string {
	out := make([]string, 0, len(features))
	seen := make(map[string]struct{}, len(features))
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func isWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validateResearchName はAI調査に渡す企業名を検証します。
func validateResearchName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: company name is required", ErrInvalidCompanyName)
	}
	if utf8.RuneCountInString(name) > MaxResearchNameLength {
		return "", fmt.Errorf("%w: exceeds maximum length of %d characters", ErrInvalidCompanyName, MaxResearchNameLength)
	}
	if !validCompanyName.MatchString(name) {
		return "", fmt.Errorf("%w: contains invalid characters", ErrInvalidCompanyName)
	}
	return name, nil
}
