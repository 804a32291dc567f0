// Package entity はcompetitorsフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Competitor is a company tracked by a user. Exactly one of a user's
// companies may be flagged IsPrimary (the user's own company).
type Competitor struct {
	ID             uint
	OwnerID        uint // created_by
	Name           string
	Description    string
	Website        string
	Features       []string
	MarketPosition string
	IsPrimary      bool
	LastAnalyzed   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MarketOverview summarises a user's tracked companies.
type MarketOverview struct {
	TotalCompetitors int
	MarketPositions  []string   // distinct, in first-seen order
	RecentAnalyses   []Analysis // newest first
}
