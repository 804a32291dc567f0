// Package dto はcomparisonフィーチャーのレスポンスDTOを定義します。
// CLIでもYAML出力に使うため、json と yaml の両方のタグを持ちます。
package dto

import (
	"rivalradar_backend/internal/feature/comparison/derive"
	"rivalradar_backend/internal/feature/comparison/domain/entity"
)

// CompanyRes は比較対象の企業です。
type CompanyRes struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description,omitempty"`
	Website        string   `json:"website" yaml:"website,omitempty"`
	Features       []string `json:"features" yaml:"features"`
	MarketPosition string   `json:"market_position" yaml:"market_position,omitempty"`
	MarketShare    float64  `json:"market_share" yaml:"market_share"`
	IsPrimary      bool     `json:"is_primary" yaml:"is_primary"`
}

// ComparisonRowRes は機能比較表の1行です。
type ComparisonRowRes struct {
	Feature     string          `json:"feature" yaml:"feature"`
	YourCompany bool            `json:"your_company" yaml:"your_company"`
	Competitors map[string]bool `json:"competitors" yaml:"competitors"`
}

// SharePointRes は市場シェア系列の1要素です。
type SharePointRes struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// SeriesPointRes はカテゴリ別スコア系列の1要素です。
type SeriesPointRes struct {
	Category    string  `json:"category" yaml:"category"`
	YourCompany float64 `json:"your_company" yaml:"your_company"`
	Competitors float64 `json:"competitors" yaml:"competitors"`
}

// ViewModelRes は比較ダッシュボードのレスポンスです。
// 主企業が未登録の場合は Status 以外が空になります。
type ViewModelRes struct {
	Status            string             `json:"status" yaml:"status"`
	Primary           *CompanyRes        `json:"primary" yaml:"primary,omitempty"`
	Competitors       []CompanyRes       `json:"competitors" yaml:"competitors"`
	ComparisonRows    []ComparisonRowRes `json:"comparison_rows" yaml:"comparison_rows"`
	SuggestedFeatures []string           `json:"suggested_features" yaml:"suggested_features"`
	ShareSeries       []SharePointRes    `json:"share_series" yaml:"share_series"`
	CategorySeries    []SeriesPointRes   `json:"category_series" yaml:"category_series"`
}

func companyRes(c entity.Company) CompanyRes {
	features := c.Features
	if features == nil {
		features = []string{}
	}
	return CompanyRes{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Website:        c.Website,
		Features:       features,
		MarketPosition: c.MarketPosition,
		MarketShare:    c.MarketShare,
		IsPrimary:      c.IsPrimary,
	}
}

// NewSeriesRes はカテゴリ別スコア系列をレスポンスに変換します。
func NewSeriesRes(points []entity.SeriesPoint) []SeriesPointRes {
	out := make([]SeriesPointRes, 0, len(points))
	for _, p := range points {
		out = append(out, SeriesPointRes{Category: p.Category, YourCompany: p.PrimaryValue, Competitors: p.CompetitorValue})
	}
	return out
}

// NewViewModelRes はビューモデルをレスポンスに変換します。
func NewViewModelRes(vm derive.ViewModel) ViewModelRes {
	res := ViewModelRes{
		Status:            string(vm.Status),
		Competitors:       make([]CompanyRes, 0, len(vm.Competitors)),
		ComparisonRows:    make([]ComparisonRowRes, 0, len(vm.ComparisonRows)),
		SuggestedFeatures: make([]string, 0, len(vm.SuggestedFeatures)),
		ShareSeries:       make([]SharePointRes, 0, len(vm.ShareSeries)),
		CategorySeries:    NewSeriesRes(vm.CategorySeries),
	}
	if vm.Status == derive.StatusReady {
		p := companyRes(vm.Primary)
		res.Primary = &p
	}
	for _, c := range vm.Competitors {
		res.Competitors = append(res.Competitors, companyRes(c))
	}
	for _, r := range vm.ComparisonRows {
		res.ComparisonRows = append(res.ComparisonRows, ComparisonRowRes{
			Feature:     r.Feature,
			YourCompany: r.PrimaryHas,
			Competitors: r.CompetitorHas,
		})
	}
	res.SuggestedFeatures = append(res.SuggestedFeatures, vm.SuggestedFeatures...)
	for _, s := range vm.ShareSeries {
		res.ShareSeries = append(res.ShareSeries, SharePointRes{Name: s.Name, Value: s.Value})
	}
	return res
}
