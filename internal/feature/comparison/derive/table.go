package derive

import (
	"rivalradar_backend/internal/feature/comparison/domain"
	"rivalradar_backend/internal/feature/comparison/domain/entity"
)

// BuildComparisonTable returns one row per feature in all, in the same order,
// marking which of the primary company and the competitors offer it.
//
// Competitor names key each row's CompetitorHas map, so two competitors sharing
// a name yield a *domain.DuplicateNameError instead of one silently replacing the other.
func BuildComparisonTable(all []string, primary entity.Company, competitors []entity.Company) ([]entity.ComparisonRow, error) {
	sets := make(map[string]map[string]struct{}, len(competitors))
	for _, c := range competitors {
		if _, dup := sets[c.Name]; dup {
			return nil, &domain.DuplicateNameError{Name: c.Name}
		}
		sets[c.Name] = setOf(c.Features)
	}
	own := setOf(primary.Features)

	rows := make([]entity.ComparisonRow, 0, len(all))
	for _, feature := range all {
		has := make(map[string]bool, len(competitors))
		for name, set := range sets {
			_, ok := set[feature]
			has[name] = ok
		}
		_, primaryHas := own[feature]
		rows = append(rows, entity.ComparisonRow{
			Feature:       feature,
			PrimaryHas:    primaryHas,
			CompetitorHas: has,
		})
	}
	return rows, nil
}
