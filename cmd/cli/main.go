package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pulseboard/adapters/excel"
	"pulseboard/adapters/synthetic"
	"pulseboard/domain/survey"
	"pulseboard/internal/analysis"
)

var (
	flagRows      int
	flagSeed      int64
	flagEducation string
	flagGender    string
	flagJSON      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pulseboard-cli",
		Short: "Run the survey pipeline once and print the results",
	}

	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 300, "number of respondents to generate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 42, "generator seed (<=0 for system entropy)")
	rootCmd.PersistentFlags().StringVar(&flagEducation, "education", survey.Wildcard, "education filter (high_school, undergraduate, graduate, all)")
	rootCmd.PersistentFlags().StringVar(&flagGender, "gender", survey.Wildcard, "gender filter (male, female, all)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON instead of a table")

	rootCmd.AddCommand(
		newSummaryCmd(),
		newDemographicsCmd(),
		newCorrelationCmd(),
		newPlatformsCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// filteredTable runs generation plus filtering for the current flags
func filteredTable(ctx context.Context) (survey.Table, error) {
	gen := synthetic.New(synthetic.Config{Rows: flagRows, Seed: flagSeed})
	table, err := gen.Generate(ctx)
	if err != nil {
		return survey.Table{}, err
	}
	return survey.Filter(table, survey.Predicate{
		survey.FieldEducation: flagEducation,
		survey.FieldGender:    flagGender,
	}), nil
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the four headline metrics for the filtered table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := filteredTable(cmd.Context())
			if err != nil {
				return err
			}
			s := analysis.Summarize(table)
			if flagJSON {
				return printJSON(s)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "respondents\t%d\n", s.Respondents)
			fmt.Fprintf(w, "avg usage (h/day)\t%s\n", fmtMean(s.AvgUsage))
			fmt.Fprintf(w, "avg sleep (h/night)\t%s\n", fmtMean(s.AvgSleep))
			fmt.Fprintf(w, "avg mental health\t%s\n", fmtMean(s.AvgHealth))
			return w.Flush()
		},
	}
}

func newDemographicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demographics",
		Short: "Print mean daily usage per (education, gender) group",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := filteredTable(cmd.Context())
			if err != nil {
				return err
			}
			groups := analysis.GroupedUsageMean(table)
			if flagJSON {
				return printJSON(groups)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "education\tgender\tavg usage\trespondents")
			for _, g := range groups {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", g.Education, g.Gender, g.AvgUsageHours, g.Respondents)
			}
			return w.Flush()
		},
	}
}

func newCorrelationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correlation",
		Short: "Print the pairwise correlation matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := filteredTable(cmd.Context())
			if err != nil {
				return err
			}
			m := analysis.Correlation(table)
			if flagJSON {
				return printJSON(struct {
					Columns []string     `json:"columns"`
					Values  [][]*float64 `json:"values"`
				}{m.Columns, m.Cells()})
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprint(w, "\t")
			for _, c := range m.Columns {
				fmt.Fprintf(w, "%s\t", c)
			}
			fmt.Fprintln(w)
			for i, row := range m.Values {
				fmt.Fprintf(w, "%s\t", m.Columns[i])
				for _, v := range row {
					if math.IsNaN(v) {
						fmt.Fprint(w, "n/a\t")
					} else {
						fmt.Fprintf(w, "%.3f\t", v)
					}
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
}

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "Print platforms ranked by mean daily usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := filteredTable(cmd.Context())
			if err != nil {
				return err
			}
			ranking := analysis.PlatformRanking(table)
			if flagJSON {
				return printJSON(ranking)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "rank\tplatform\tavg usage\trespondents")
			for i, p := range ranking {
				fmt.Fprintf(w, "%d\t%s\t%.1f\t%d\n", i+1, p.Platform, p.AvgUsageHours, p.Respondents)
			}
			return w.Flush()
		},
	}
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered table to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := filteredTable(cmd.Context())
			if err != nil {
				return err
			}
			data, err := excel.NewExporter().Export(table)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Printf("wrote %d rows to %s\n", table.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "survey.xlsx", "output file path")
	return cmd
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fmtMean(v *float64) string {
	if v == nil {
		return "no data"
	}
	return fmt.Sprintf("%.1f", *v)
}
