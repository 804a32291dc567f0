package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rivalradar_backend/internal/feature/comparison/derive"
	"rivalradar_backend/internal/feature/comparison/domain"
	"rivalradar_backend/internal/feature/comparison/domain/entity"
	comparisondto "rivalradar_backend/internal/feature/comparison/transport/http/dto"
	competitorsdto "rivalradar_backend/internal/feature/competitors/transport/http/dto"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		output      string
		suggestions int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compute the feature comparison locally from your company list",
		Long: `Compare fetches your companies and builds the comparison view on this machine.

The list endpoint carries no analyses, so market share and AI metric
categories score 0; only Feature Coverage reflects real data.

Example:
  rivalctl compare
  rivalctl compare --suggestions 3 --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			if suggestions < 0 {
				return fmt.Errorf("--suggestions must be >= 0, got %d", suggestions)
			}
			ctx, cancel := withTimeout(cmd, a)
			defer cancel()

			list, err := a.api().ListCompetitors(ctx)
			if err != nil {
				return err
			}
			vm, err := compare(list, suggestions)
			if err != nil {
				return err
			}
			return writeViewModel(cmd.OutOrStdout(), output, comparisondto.NewViewModelRes(vm))
		},
	}
	addOutputFlag(cmd, &output)
	cmd.Flags().IntVar(&suggestions, "suggestions", 0, "maximum suggested features (0 for all)")
	return cmd
}

// compare builds the view-model from the list endpoint's records.
// A missing primary company is reported through the status, not as an error.
func compare(list []competitorsdto.CompetitorRes, suggestions int) (derive.ViewModel, error) {
	companies := make([]entity.Company, 0, len(list))
	for _, c := range list {
		companies = append(companies, entity.Company{
			ID:             strconv.FormatUint(uint64(c.ID), 10),
			Name:           c.Name,
			Description:    c.Description,
			Website:        c.Website,
			Features:       c.Features,
			MarketPosition: c.MarketPosition,
			CreatedAt:      c.CreatedAt,
			UpdatedAt:      c.UpdatedAt,
			IsPrimary:      c.IsPrimary,
		})
	}

	vm, err := derive.Build(companies, derive.Config{
		Score:           derive.MetricScorer(companies),
		SuggestionLimit: suggestions,
	})
	if err != nil && !errors.Is(err, domain.ErrMissingPrimaryEntity) {
		return vm, fmt.Errorf("cannot compare: %w", err)
	}
	return vm, nil
}
