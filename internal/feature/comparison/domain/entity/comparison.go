package entity

// ComparisonRow is one feature's presence across the primary company and every competitor.
type ComparisonRow struct {
	Feature       string          // Feature label, unique per table
	PrimaryHas    bool            // Whether the primary company offers the feature
	CompetitorHas map[string]bool // Competitor name -> whether it offers the feature
}

// SeriesPoint pairs a primary score with the competitor average for one category.
type SeriesPoint struct {
	Category        string
	PrimaryValue    float64
	CompetitorValue float64
}

// SharePoint is one slice of a market-share series.
type SharePoint struct {
	Name  string
	Value float64
}
