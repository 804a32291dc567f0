package derive

import (
	"maps"
	"slices"

	"rivalradar_backend/internal/feature/comparison/domain"
	"rivalradar_backend/internal/feature/comparison/domain/entity"
)

// Status tags a ViewModel with the rendering path the caller should take.
type Status string

const (
	// StatusReady means every field of the ViewModel is populated.
	StatusReady Status = "ready"
	// StatusMissingPrimary means no primary company exists; nothing else is populated.
	StatusMissingPrimary Status = "missing_primary_entity"
	// StatusInvalid means the input violated an invariant; nothing else is populated.
	StatusInvalid Status = "invalid"
)

// DefaultCategories are the scoring categories used when Config.Categories is nil.
var DefaultCategories = []string{
	"Feature Coverage",
	"Market Share",
	"Innovation",
	"Pricing",
	"Customer Satisfaction",
}

// Config parameterizes Build.
type Config struct {
	Shares          ShareOptions
	Categories      []string  // nil selects DefaultCategories
	Score           ScoreFunc // nil scores every category as 0
	SuggestionLimit int       // 0 keeps every suggested feature
}

// ViewModel is everything a comparison dashboard renders.
type ViewModel struct {
	Status            Status
	Primary           entity.Company
	Competitors       []entity.Company
	ComparisonRows    []entity.ComparisonRow
	SuggestedFeatures []string
	ShareSeries       []entity.SharePoint
	CategorySeries    []entity.SeriesPoint
}

// Partition splits a collection into the primary company and its competitors,
// keeping the competitors in input order. primary is nil when none is flagged.
// The returned companies are deep copies and share no memory with companies.
func Partition(companies []entity.Company) (primary *entity.Company, competitors []entity.Company, err error) {
	competitors = make([]entity.Company, 0, len(companies))
	for i := range companies {
		if !companies[i].IsPrimary {
			competitors = append(competitors, cloneCompany(companies[i]))
			continue
		}
		if primary != nil {
			return nil, nil, domain.ErrMultiplePrimaryEntities
		}
		p := cloneCompany(companies[i])
		primary = &p
	}
	return primary, competitors, nil
}

func cloneCompany(c entity.Company) entity.Company {
	c.Features = slices.Clone(c.Features)
	c.Metrics = maps.Clone(c.Metrics)
	return c
}

// Build derives the full dashboard view-model from one snapshot of companies.
//
// Without a primary company it returns a ViewModel carrying only
// StatusMissingPrimary, together with domain.ErrMissingPrimaryEntity. Any other
// failure returns a ViewModel carrying only StatusInvalid and the error.
// A partially populated ViewModel is never returned.
func Build(companies []entity.Company, cfg Config) (ViewModel, error) {
	primary, competitors, err := Partition(companies)
	if err != nil {
		return ViewModel{Status: StatusInvalid}, err
	}
	if primary == nil {
		return ViewModel{Status: StatusMissingPrimary}, domain.ErrMissingPrimaryEntity
	}

	features, err := ReconcileFeatures(primary, competitors)
	if err != nil {
		return ViewModel{Status: StatusInvalid}, err
	}
	rows, err := BuildComparisonTable(features.All, *primary, competitors)
	if err != nil {
		return ViewModel{Status: StatusInvalid}, err
	}

	suggested := features.Suggested
	if cfg.SuggestionLimit > 0 && len(suggested) > cfg.SuggestionLimit {
		suggested = suggested[:cfg.SuggestionLimit]
	}

	shares := make([]entity.SharePoint, 0, len(competitors))
	for _, c := range competitors {
		shares = append(shares, entity.SharePoint{Name: c.Name, Value: c.MarketShare})
	}

	categories := cfg.Categories
	if categories == nil {
		categories = DefaultCategories
	}

	return ViewModel{
		Status:            StatusReady,
		Primary:           *primary,
		Competitors:       competitors,
		ComparisonRows:    rows,
		SuggestedFeatures: suggested,
		ShareSeries:       NormalizeShares(entity.SharePoint{Name: primary.Name, Value: primary.MarketShare}, shares, cfg.Shares),
		CategorySeries:    BuildCategorySeries(categories, *primary, competitors, cfg.Score),
	}, nil
}
