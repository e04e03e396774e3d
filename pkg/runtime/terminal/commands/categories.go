package commands

import (
	"fmt"
	"math"

	"github.com/de-tools/health-guide/pkg/services/metrics"
	"github.com/spf13/cobra"
)

func NewCategoriesCmd(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List BMI categories and sleep recommendations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "BMI categories:")
			for _, c := range metrics.BMICategories() {
				upper := fmt.Sprintf("%.1f", c.Max)
				if math.IsInf(c.Max, 1) {
					upper = "∞"
				}
				fmt.Fprintf(out, "  %-14s [%.1f, %s)\n", c.Name, c.Min, upper)
			}

			fmt.Fprintln(out, "Recommended sleep:")
			for _, r := range metrics.SleepRanges() {
				fmt.Fprintf(out, "  %-14s %g-%g hours\n", r.AgeGroup, r.MinHours, r.MaxHours)
			}
			return nil
		},
	}
}
