// Package entity defines the domain models for the comparison feature.
package entity

import "time"

// Company is one record of the comparison input: either the user's own company
// (IsPrimary) or one of its competitors.
type Company struct {
	ID             string             // Opaque identifier, unique within a collection
	Name           string             // Display key, also the dedup key for competitors
	Description    string             // Free-text description
	Website        string             // Company website URI
	Features       []string           // Feature labels; duplicates allowed, treated as a set
	MarketPosition string             // Free-text market category
	MarketShare    float64            // Latest analysed market share (0 when unknown)
	Metrics        map[string]float64 // Category scores from the latest analysis
	CreatedAt      time.Time          // Creation time
	UpdatedAt      time.Time          // Last update time
	IsPrimary      bool               // True for the user's own company
}
