// Package cli defines the cobra command tree for the ROI tool.
package cli

import (
	"github.com/spf13/cobra"

	"airbnb-roi/internal/config"
	"airbnb-roi/internal/valuation"
)

var (
	flagFormat string
	flagData   string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roi",
		Short:         "Estimate short-term rental returns",
		Long:          "Predict nightly rates for short-term rentals, project revenue and property value, and browse the market via CLI or web dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagData, "data", "", "listings CSV path (default: $ROI_DATASET or clean_airbnb_dc.csv)")

	root.AddCommand(
		newServeCmd(),
		newEstimateCmd(),
		newMarketCmd(),
		newVersionCmd(),
	)

	return root
}

// newEngine builds a valuation engine from config, honoring --data.
func newEngine() *valuation.Engine {
	cfg := config.Load()
	path := flagData
	if path == "" {
		path = cfg.DatasetPath
	}
	return valuation.NewEngine(valuation.Options{
		DatasetPath: path,
		Trees:       cfg.Trees,
		Seed:        cfg.Seed,
		Occupancy:   cfg.Occupancy,
	})
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
