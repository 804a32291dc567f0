package entity

import "time"

// Analysis is one stored AI assessment of a competitor.
type Analysis struct {
	ID             uint
	CompetitorID   uint
	CompetitorName string
	OwnerID        uint
	AnalysisDate   time.Time
	Strengths      []string
	Weaknesses     []string
	Opportunities  []string
	Threats        []string
	MarketShare    *float64           // percent, 0..100
	SentimentScore *float64           // 0..1
	Metrics        map[string]float64 // category scores, 0..100
	AIInsights     string
}

// AnalysisResult is what the AI returns for an analysis prompt.
type AnalysisResult struct {
	Strengths      []string
	Weaknesses     []string
	Opportunities  []string
	Threats        []string
	MarketShare    *float64
	SentimentScore *float64
	Metrics        map[string]float64
	Summary        string
}

// CompanyProfile is what the AI returns when researching a company by name.
type CompanyProfile struct {
	Name           string
	Description    string
	Website        string
	Features       []string
	MarketPosition string
}
