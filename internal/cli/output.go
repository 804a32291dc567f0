package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	comparisondto "rivalradar_backend/internal/feature/comparison/transport/http/dto"
	competitorsdto "rivalradar_backend/internal/feature/competitors/transport/http/dto"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

func withTimeout(cmd *cobra.Command, a *app) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if d := a.v.GetDuration(keyTimeout); d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", OutputTable, "output format (table, json, yaml)")
}

func validateOutput(format string) error {
	switch format {
	case OutputTable, OutputJSON, OutputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
}

// encode writes v as JSON or YAML. It reports false for the table format.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func writeCompetitors(w io.Writer, format string, list []competitorsdto.CompetitorRes) error {
	if done, err := encode(w, format, list); done {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRIMARY\tPOSITION\tFEATURES")
	for _, c := range list {
		primary := ""
		if c.IsPrimary {
			primary = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", c.ID, c.Name, primary, c.MarketPosition, len(c.Features))
	}
	return tw.Flush()
}

func writeViewModel(w io.Writer, format string, vm comparisondto.ViewModelRes) error {
	if done, err := encode(w, format, vm); done {
		return err
	}

	fmt.Fprintf(w, "Status: %s\n", vm.Status)
	if vm.Primary == nil {
		return nil
	}
	fmt.Fprintf(w, "Your company: %s\n\n", vm.Primary.Name)

	names := make([]string, 0, len(vm.Competitors))
	for _, c := range vm.Competitors {
		names = append(names, c.Name)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "FEATURE\tYOU\t%s\n", strings.Join(names, "\t"))
	for _, r := range vm.ComparisonRows {
		cells := make([]string, 0, len(names))
		for _, n := range names {
			cells = append(cells, mark(r.Competitors[n]))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Feature, mark(r.YourCompany), strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(vm.SuggestedFeatures) > 0 {
		fmt.Fprintf(w, "\nSuggested features: %s\n", strings.Join(vm.SuggestedFeatures, ", "))
	}

	fmt.Fprintln(w, "\nMarket share:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range vm.ShareSeries {
		fmt.Fprintf(tw, "  %s\t%s\n", s.Name, formatScore(s.Value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nCategory scores:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  CATEGORY\tYOU\tCOMPETITORS")
	for _, p := range vm.CategorySeries {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.Category, formatScore(p.YourCompany), formatScore(p.Competitors))
	}
	return tw.Flush()
}

func mark(has bool) string {
	if has {
		return "x"
	}
	return "-"
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
