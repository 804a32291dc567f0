package dto

import (
	"time"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
)

// AnalysisRes は競合分析のレスポンスです。
type AnalysisRes struct {
	ID             uint               `json:"id"`
	Competitor     uint               `json:"competitor"`
	CompetitorName string             `json:"competitor_name"`
	AnalysisDate   time.Time          `json:"analysis_date"`
	Strengths      []string           `json:"strengths"`
	Weaknesses     []string           `json:"weaknesses"`
	Opportunities  []string           `json:"opportunities"`
	Threats        []string           `json:"threats"`
	MarketShare    *float64           `json:"market_share"`
	SentimentScore *float64           `json:"sentiment_score"`
	Metrics        map[string]float64 `json:"metrics"`
	AIInsights     string             `json:"ai_insights"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// NewAnalysisRes はエンティティをレスポンスに変換します。
func NewAnalysisRes(a entity.Analysis) AnalysisRes {
	metrics := a.Metrics
	if metrics == nil {
		metrics = map[string]float64{}
	}
	return AnalysisRes{
		ID:             a.ID,
		Competitor:     a.CompetitorID,
		CompetitorName: a.CompetitorName,
		AnalysisDate:   a.AnalysisDate,
		Strengths:      nonNil(a.Strengths),
		Weaknesses:     nonNil(a.Weaknesses),
		Opportunities:  nonNil(a.Opportunities),
		Threats:        nonNil(a.Threats),
		MarketShare:    a.MarketShare,
		SentimentScore: a.SentimentScore,
		Metrics:        metrics,
		AIInsights:     a.AIInsights,
	}
}

// RecentAnalysisRes は市場概要に含まれる分析の要約です。
type RecentAnalysisRes struct {
	CompetitorName string    `json:"competitor_name"`
	AnalysisDate   time.Time `json:"analysis_date"`
	MarketShare    *float64  `json:"market_share"`
	SentimentScore *float64  `json:"sentiment_score"`
}

// MarketOverviewRes は市場概要のレスポンスです。
type MarketOverviewRes struct {
	TotalCompetitors int                 `json:"total_competitors"`
	MarketPositions  []string            `json:"market_positions"`
	RecentAnalyses   []RecentAnalysisRes `json:"recent_analyses"`
}

// NewMarketOverviewRes はエンティティをレスポンスに変換します。
func NewMarketOverviewRes(o entity.MarketOverview) MarketOverviewRes {
	recent := make([]RecentAnalysisRes, 0, len(o.RecentAnalyses))
	for _, a := range o.RecentAnalyses {
		recent = append(recent, RecentAnalysisRes{
			CompetitorName: a.CompetitorName,
			AnalysisDate:   a.AnalysisDate,
			MarketShare:    a.MarketShare,
			SentimentScore: a.SentimentScore,
		})
	}
	return MarketOverviewRes{
		TotalCompetitors: o.TotalCompetitors,
		MarketPositions:  nonNil(o.MarketPositions),
		RecentAnalyses:   recent,
	}
}
