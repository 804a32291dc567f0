package dto

import "rivalradar_backend/internal/feature/competitors/domain/entity"

// IdentificationRes は検出されたロゴと一致した企業のレスポンスです。
type IdentificationRes struct {
	Name       string         `json:"name"`       // 検出された企業名
	Confidence float32        `json:"confidence"` // 信頼度スコア（0.0 ~ 1.0）
	Competitor *CompetitorRes `json:"competitor"` // 一致した登録企業（なければnull）
}

// NewIdentificationList はエンティティのスライスをレスポンスに変換します。
func NewIdentificationList(list []entity.Identification) []IdentificationRes {
	out := make([]IdentificationRes, 0, len(list))
	for _, id := range list {
		res := IdentificationRes{Name: id.Logo.Name, Confidence: id.Logo.Confidence}
		if id.Competitor != nil {
			c := NewCompetitorRes(*id.Competitor)
			res.Competitor = &c
		}
		out = append(out, res)
	}
	return out
}
