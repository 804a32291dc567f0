package derive

import "rivalradar_backend/internal/feature/comparison/domain/entity"

// Category names understood by MetricScorer.
const (
	CategoryFeatureCoverage      = "Feature Coverage"
	CategoryMarketShare          = "Market Share"
	CategoryInnovation           = "Innovation"
	CategoryPricing              = "Pricing"
	CategoryCustomerSatisfaction = "Customer Satisfaction"
)

// MetricScorer returns a ScoreFunc backed by recorded company data.
//
// Feature Coverage is the share of all distinct features in the collection that
// a company offers, in percent. Market Share is the company's MarketShare. Every
// other category is read from Company.Metrics and scores 0 when absent.
func MetricScorer(companies []entity.Company) ScoreFunc {
	universe := newOrderedSet(0)
	for _, c := range companies {
		universe.add(c.Features...)
	}
	total := float64(len(universe.order))

	return func(category string, c entity.Company) float64 {
		switch category {
		case CategoryFeatureCoverage:
			if total == 0 {
				return 0
			}
			return float64(len(setOf(c.Features))) / total * 100
		case CategoryMarketShare:
			return c.MarketShare
		default:
			return c.Metrics[category]
		}
	}
}
