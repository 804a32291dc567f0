package adapters

import (
	"time"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
)

// CompetitorModel is the GORM model for the competitors table.
// The partial unique index allows at most one primary company per owner.
type CompetitorModel struct {
	ID             uint     `gorm:"primaryKey"`
	OwnerID        uint     `gorm:"not null;index;uniqueIndex:idx_competitors_owner_primary,where:is_primary = true"`
	Name           string   `gorm:"size:200;not null"`
	Description    string   `gorm:"type:text"`
	Website        string   `gorm:"size:2048"`
	Features       []string `gorm:"type:text;serializer:json"`
	MarketPosition string   `gorm:"size:100"`
	IsPrimary      bool     `gorm:"not null;default:false"`
	LastAnalyzed   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time `gorm:"index"`
}

// TableName returns the table name for GORM.
func (CompetitorModel) TableName() string {
	return "competitors"
}

func (m *CompetitorModel) toEntity() entity.Competitor {
	return entity.Competitor{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		Name:           m.Name,
		Description:    m.Description,
		Website:        m.Website,
		Features:       m.Features,
		MarketPosition: m.MarketPosition,
		IsPrimary:      m.IsPrimary,
		LastAnalyzed:   m.LastAnalyzed,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func competitorModelFromEntity(c *entity.Competitor) *CompetitorModel {
	return &CompetitorModel{
		ID:             c.ID,
		OwnerID:        c.OwnerID,
		Name:           c.Name,
		Description:    c.Description,
		Website:        c.Website,
		Features:       c.Features,
		MarketPosition: c.MarketPosition,
		IsPrimary:      c.IsPrimary,
		LastAnalyzed:   c.LastAnalyzed,
	}
}

// AnalysisModel is the GORM model for the competitor_analyses table.
type AnalysisModel struct {
	ID             uint            `gorm:"primaryKey"`
	CompetitorID   uint            `gorm:"not null;index"`
	Competitor     CompetitorModel `gorm:"constraint:OnDelete:CASCADE"`
	OwnerID        uint            `gorm:"not null;index"`
	AnalysisDate   time.Time       `gorm:"not null;index"`
	Strengths      []string        `gorm:"type:text;serializer:json"`
	Weaknesses     []string        `gorm:"type:text;serializer:json"`
	Opportunities  []string        `gorm:"type:text;serializer:json"`
	Threats        []string        `gorm:"type:text;serializer:json"`
	MarketShare    *float64
	SentimentScore *float64
	Metrics        map[string]float64 `gorm:"type:text;serializer:json"`
	AIInsights     string             `gorm:"type:text"`
}

// TableName returns the table name for GORM.
func (AnalysisModel) TableName() string {
	return "competitor_analyses"
}

func (m *AnalysisModel) toEntity() entity.Analysis {
	return entity.Analysis{
		ID:             m.ID,
		CompetitorID:   m.CompetitorID,
		CompetitorName: m.Competitor.Name,
		OwnerID:        m.OwnerID,
		AnalysisDate:   m.AnalysisDate,
		Strengths:      m.Strengths,
		Weaknesses:     m.Weaknesses,
		Opportunities:  m.Opportunities,
		Threats:        m.Threats,
		MarketShare:    m.MarketShare,
		SentimentScore: m.SentimentScore,
		Metrics:        m.Metrics,
		AIInsights:     m.AIInsights,
	}
}

func analysisModelFromEntity(a *entity.Analysis) *AnalysisModel {
	return &AnalysisModel{
		ID:             a.ID,
		CompetitorID:   a.CompetitorID,
		OwnerID:        a.OwnerID,
		AnalysisDate:   a.AnalysisDate,
		Strengths:      a.Strengths,
		Weaknesses:     a.Weaknesses,
		Opportunities:  a.Opportunities,
		Threats:        a.Threats,
		MarketShare:    a.MarketShare,
		SentimentScore: a.SentimentScore,
		Metrics:        a.Metrics,
		AIInsights:     a.AIInsights,
	}
}
