package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivalradar_backend/internal/feature/comparison/derive"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("COMPARISON_DISPLAY_CAP", "")
	t.Setenv("COMPARISON_REMAINDER_FLOOR", "")
	t.Setenv("COMPARISON_SUGGESTION_LIMIT", "")
	t.Setenv("COMPARISON_CATEGORIES", "")

	cfg := LoadConfig()
	assert.Equal(t, Config{SuggestionLimit: DefaultDashboardSuggestions}, cfg)
	assert.Equal(t, derive.DefaultCategories, cfg.CategoryList())

	t.Setenv("COMPARISON_DISPLAY_CAP", "4")
	t.Setenv("COMPARISON_REMAINDER_FLOOR", "2.5")
	t.Setenv("COMPARISON_SUGGESTION_LIMIT", "0")
	t.Setenv("COMPARISON_CATEGORIES", " Pricing, ,Market Share ")

	cfg = LoadConfig()
	require.NotNil(t, cfg.Shares.DisplayCap)
	require.NotNil(t, cfg.Shares.RemainderFloor)
	assert.Equal(t, 4, *cfg.Shares.DisplayCap)
	assert.Equal(t, 2.5, *cfg.Shares.RemainderFloor)
	assert.Equal(t, 0, cfg.SuggestionLimit)
	assert.Equal(t, []string{"Pricing", "Market Share"}, cfg.CategoryList())

	t.Setenv("COMPARISON_SUGGESTION_LIMIT", "-3")
	assert.Equal(t, DefaultDashboardSuggestions, LoadConfig().SuggestionLimit)

	t.Setenv("COMPARISON_REMAINDER_FLOOR", "0")
	cfg = LoadConfig()
	require.NotNil(t, cfg.Shares.RemainderFloor)
	assert.Zero(t, *cfg.Shares.RemainderFloor)
}
