// Package dto はcompetitorsフィーチャーのリクエスト・レスポンスDTOを定義します。
package dto

import (
	"time"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
)

// CompetitorReq は企業の作成・更新リクエストです。
type CompetitorReq struct {
	Name           string   `json:"name" binding:"required,max=200"`
	Description    string   `json:"description"`
	Website        string   `json:"website" binding:"omitempty,url"`
	Features       []string `json:"features"`
	MarketPosition string   `json:"market_position" binding:"max=100"`
	IsPrimary      bool     `json:"is_primary"`
}

// CompetitorRes は企業のレスポンスです。
type CompetitorRes struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Website        string     `json:"website"`
	Features       []string   `json:"features"`
	MarketPosition string     `json:"market_position"`
	IsPrimary      bool       `json:"is_primary"`
	LastAnalyzed   *time.Time `json:"last_analyzed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewCompetitorRes はエンティティをレスポンスに変換します。
func NewCompetitorRes(c entity.Competitor) CompetitorRes {
	features := c.Features
	if features == nil {
		features = []string{}
	}
	return CompetitorRes{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Website:        c.Website,
		Features:       features,
		MarketPosition: c.MarketPosition,
		IsPrimary:      c.IsPrimary,
		LastAnalyzed:   c.LastAnalyzed,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// NewCompetitorList はエンティティのスライスをレスポンスに変換します。
func NewCompetitorList(list []entity.Competitor) []CompetitorRes {
	out := make([]CompetitorRes, 0, len(list))
	for _, c := range list {
		out = append(out, NewCompetitorRes(c))
	}
	return out
}

// FetchFromAIReq はAI企業調査のリクエストです。
type FetchFromAIReq struct {
	CompanyName string `json:"company_name" binding:"required"`
}
