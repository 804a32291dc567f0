package derive

import (
	"rivalradar_backend/internal/feature/comparison/domain/entity"
)

const (
	// DefaultDisplayCap is how many competitors a share series plots individually.
	DefaultDisplayCap = 6
	// DefaultRemainderFloor is the value shown for "Others" when the remainder is not positive.
	DefaultRemainderFloor = 5
	// DefaultOthersLabel names the remainder bucket.
	DefaultOthersLabel = "Others"
)

// ShareOptions controls market-share normalization. Unset fields select the
// defaults; an explicit 0 is honoured for both DisplayCap and RemainderFloor.
type ShareOptions struct {
	DisplayCap     *int     // Competitors plotted individually; negative counts as 0
	RemainderFloor *float64 // Value used for "Others" when 100 - plotted <= 0
	OthersLabel    string   // Name of the remainder bucket
}

// shareSettings is ShareOptions with every default applied.
type shareSettings struct {
	displayCap     int
	remainderFloor float64
	othersLabel    string
}

func (o ShareOptions) resolve() shareSettings {
	s := shareSettings{
		displayCap:     DefaultDisplayCap,
		remainderFloor: DefaultRemainderFloor,
		othersLabel:    DefaultOthersLabel,
	}
	if o.DisplayCap != nil {
		s.displayCap = max(*o.DisplayCap, 0)
	}
	if o.RemainderFloor != nil {
		s.remainderFloor = *o.RemainderFloor
	}
	if o.OthersLabel != "" {
		s.othersLabel = o.OthersLabel
	}
	return s
}

// NormalizeShares builds a pie-chart series from the primary company's share and
// its competitors' shares.
//
// The first DisplayCap competitors are plotted as given. When more competitors
// exist, an "Others" entry carries 100 minus everything plotted. If that
// remainder is zero or negative it is shown as RemainderFloor instead: this is
// a display-smoothing rule, and the series then sums to more than 100.
func NormalizeShares(primary entity.SharePoint, competitors []entity.SharePoint, opts ShareOptions) []entity.SharePoint {
	set := opts.resolve()

	shown := competitors
	overflow := len(competitors) > set.displayCap
	if overflow {
		shown = competitors[:set.displayCap]
	}

	out := make([]entity.SharePoint, 0, len(shown)+2)
	out = append(out, primary)
	total := primary.Value
	for _, c := range shown {
		out = append(out, c)
		total += c.Value
	}

	if overflow {
		remainder := 100 - total
		if remainder <= 0 {
			remainder = set.remainderFloor
		}
		out = append(out, entity.SharePoint{Name: set.othersLabel, Value: remainder})
	}
	return out
}

// ScoreFunc scores one company for one category. Implementations must be
// deterministic for the view-model to be reproducible.
type ScoreFunc func(category string, c entity.Company) float64

// BuildCategorySeries returns one point per category, pairing the primary
// company's score with the mean score of its competitors (0 with no competitors).
// A nil score function scores everything as 0.
func BuildCategorySeries(categories []string, primary entity.Company, competitors []entity.Company, score ScoreFunc) []entity.SeriesPoint {
	if score == nil {
		score = func(string, entity.Company) float64 { return 0 }
	}

	out := make([]entity.SeriesPoint, 0, len(categories))
	for _, category := range categories {
		var competitorValue float64
		if len(competitors) > 0 {
			var sum float64
			for _, c := range competitors {
				sum += score(category, c)
			}
			competitorValue = sum / float64(len(competitors))
		}
		out = append(out, entity.SeriesPoint{
			Category:        category,
			PrimaryValue:    score(category, primary),
			CompetitorValue: competitorValue,
		})
	}
	return out
}
