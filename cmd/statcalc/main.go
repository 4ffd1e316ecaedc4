package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"statcalc/adapters/dataio"
	"statcalc/app"
	"statcalc/domain/stats"
	"statcalc/internal/analysis"
	"statcalc/internal/config"
	"statcalc/ports"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	rootCmd := &cobra.Command{
		Use:   "statcalc",
		Short: "Independent two-sample t-test and Pearson correlation calculator",
	}

	rootCmd.AddCommand(
		newTTestCmd(),
		newCorrelationCmd(),
		newAnalyzeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadPair resolves the two input samples from either --input or the two
// positional comma-separated number lists.
func loadPair(inputFile string, args []string) (stats.Sample, stats.Sample, error) {
	if inputFile != "" {
		var source ports.SampleSource = dataio.NewDataReader(inputFile, nil)
		return source.Load()
	}
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("expected two comma-separated samples or --input FILE")
	}
	a, err := dataio.ParseInline(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := dataio.ParseInline(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func newTTestCmd() *cobra.Command {
	var alpha float64
	var inputFile string

	cmd := &cobra.Command{
		Use:   "ttest [sample-a] [sample-b]",
		Short: "Independent two-sample t-test with an equal-variance pre-check",
		Long: `Run Levene's test for equality of variances, then an independent two-sample
t-test using the pooled or Welch formula depending on the decision.

Example: statcalc ttest "2,4,4,4,5,5,7,9" "1,2,3,4,5,6,7,8" --alpha 0.05`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := loadPair(inputFile, args)
			if err != nil {
				return err
			}

			decision, err := analysis.TestEqualVariances(a, b, alpha)
			if err != nil {
				return err
			}
			result, err := analysis.ComputeTTest(a, b, decision.EqualVariances)
			if err != nil {
				return err
			}

			if result.SizeImbalance {
				fmt.Println("Warning: sample sizes differ by more than 10%, results may be less reliable")
			}
			fmt.Printf("Levene statistic: %.4f (p=%.4f, equal variances: %v)\n",
				decision.Statistic, decision.PValue, decision.EqualVariances)
			fmt.Printf("T Statistic: %.4f\n", result.TStatistic)
			fmt.Printf("Degrees of Freedom: %.2f\n", result.DegreesOfFreedom)
			fmt.Printf("Variance of Sample A: %.4f\n", result.VarianceA)
			fmt.Printf("Variance of Sample B: %.4f\n", result.VarianceB)
			fmt.Printf("P Value (two-sided): %.4f\n", result.PValue)
			return nil
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", defaultAlpha(), "significance threshold for the equal-variance decision")
	cmd.Flags().StringVar(&inputFile, "input", "", "CSV or Excel file with the two samples in columns")
	return cmd
}

func newCorrelationCmd() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "correlation [sample-x] [sample-y]",
		Short: "Pearson's correlation coefficient between two equal-length samples",
		Long: `Compute Pearson's correlation coefficient.

Example: statcalc correlation "1,2,3,4,5" "2,4,6,8,10"`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := loadPair(inputFile, args)
			if err != nil {
				return err
			}

			result, err := analysis.ComputePearsonR(x, y)
			if err != nil {
				return err
			}

			fmt.Printf("The Correlation Coefficient (r) is: %.4f\n", result.R)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "CSV or Excel file with the two samples in columns")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var alpha float64
	var inputFile string

	cmd := &cobra.Command{
		Use:   "analyze [sample-a] [sample-b]",
		Short: "Run both analyses and print the combined record as JSON",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := loadPair(inputFile, args)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			service := app.NewAnalysisService(cfg)

			result, err := service.AnalyzePair(context.Background(), app.AnalyzeRequest{
				SampleA: a,
				SampleB: b,
				Alpha:   alpha,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", 0, "override the configured significance threshold")
	cmd.Flags().StringVar(&inputFile, "input", "", "CSV or Excel file with the two samples in columns")
	return cmd
}

func defaultAlpha() float64 {
	if cfg, err := config.Load(); err == nil {
		return cfg.Analysis.Alpha
	}
	return config.DefaultAlpha
}
