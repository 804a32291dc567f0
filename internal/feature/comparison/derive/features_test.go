package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivalradar_backend/internal/feature/comparison/domain"
	"rivalradar_backend/internal/feature/comparison/domain/entity"
)

func TestReconcileFeatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		primary       *entity.Company
		competitors   []entity.Company
		wantAll       []string
		wantSuggested []string
		wantErr       error
	}{
		{
			name:    "first-seen order across primary and competitors",
			primary: &entity.Company{Name: "Acme", Features: []string{"A", "B"}},
			competitors: []entity.Company{
				{Name: "X", Features: []string{"B", "C"}},
				{Name: "Y", Features: []string{"C", "D"}},
			},
			wantAll:       []string{"A", "B", "C", "D"},
			wantSuggested: []string{"C", "D"},
		},
		{
			name:          "no competitors",
			primary:       &entity.Company{Name: "Acme", Features: []string{"A", "B", "A"}},
			wantAll:       []string{"A", "B"},
			wantSuggested: []string{},
		},
		{
			name:    "duplicates within one list collapse",
			primary: &entity.Company{Name: "Acme", Features: []string{"A"}},
			competitors: []entity.Company{
				{Name: "X", Features: []string{"C", "C", "A", "C"}},
			},
			wantAll:       []string{"A", "C"},
			wantSuggested: []string{"C"},
		},
		{
			name:    "matching is case and whitespace sensitive",
			primary: &entity.Company{Name: "Acme", Features: []string{"SSO"}},
			competitors: []entity.Company{
				{Name: "X", Features: []string{"sso", "SSO ", "SSO"}},
			},
			wantAll:       []string{"SSO", "sso", "SSO "},
			wantSuggested: []string{"sso", "SSO "},
		},
		{
			name:    "primary without features",
			primary: &entity.Company{Name: "Acme"},
			competitors: []entity.Company{
				{Name: "X", Features: []string{"A"}},
			},
			wantAll:       []string{"A"},
			wantSuggested: []string{"A"},
		},
		{
			name:    "missing primary",
			primary: nil,
			competitors: []entity.Company{
				{Name: "X", Features: []string{"A"}},
			},
			wantErr: domain.ErrMissingPrimaryEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReconcileFeatures(tt.primary, tt.competitors)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got.All)
				assert.Empty(t, got.Suggested)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAll, got.All)
			assert.Equal(t, tt.wantSuggested, got.Suggested)
		})
	}
}

// TestReconcileFeatures_SetLaws checks the union and difference laws on a
// handful of hand-picked collections.
func TestReconcileFeatures_SetLaws(t *testing.T) {
	t.Parallel()

	collections := []struct {
		primary     []string
		competitors [][]string
	}{
		{[]string{"a", "b"}, [][]string{{"b", "c"}, {"c", "d"}}},
		{[]string{}, [][]string{{"x"}, {"y", "x"}}},
		{[]string{"a", "b", "c"}, [][]string{{"a"}, {"b"}, {"c"}}},
		{[]string{"a"}, nil},
		{[]string{"a", "a"}, [][]string{{}, {"z", "a", "z"}}},
	}

	for _, c := range collections {
		primary := &entity.Company{Name: "P", Features: c.primary}
		competitors := make([]entity.Company, 0, len(c.competitors))
		union := setOf(c.primary)
		competitorUnion := map[string]struct{}{}
		for i, fs := range c.competitors {
			competitors = append(competitors, entity.Company{Name: string(rune('A' + i)), Features: fs})
			for _, f := range fs {
				union[f] = struct{}{}
				competitorUnion[f] = struct{}{}
			}
		}

		got, err := ReconcileFeatures(primary, competitors)
		require.NoError(t, err)

		// All == A ∪ B1 ∪ ... ∪ Bn as a set.
		assert.Len(t, got.All, len(union))
		for _, f := range got.All {
			assert.Contains(t, union, f)
		}

		// Suggested ⊆ (B1 ∪ ... ∪ Bn) \ A.
		own := setOf(c.primary)
		for _, f := range got.Suggested {
			assert.Contains(t, competitorUnion, f)
			assert.NotContains(t, own, f)
		}
		// and every competitor-only feature is suggested.
		suggested := setOf(got.Suggested)
		for f := range competitorUnion {
			if _, mine := own[f]; !mine {
				assert.Contains(t, suggested, f)
			}
		}
	}
}

func TestReconcileFeatures_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	primary := &entity.Company{Name: "Acme", Features: []string{"B", "A", "B"}}
	competitors := []entity.Company{{Name: "X", Features: []string{"C", "A"}}}

	_, err := ReconcileFeatures(primary, competitors)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A", "B"}, primary.Features)
	assert.Equal(t, []string{"C", "A"}, competitors[0].Features)
}
