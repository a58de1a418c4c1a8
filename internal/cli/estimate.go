package cli

import (
	"github.com/spf13/cobra"

	"airbnb-roi/internal/client"
	"airbnb-roi/internal/valuation"
)

func newEstimateCmd() *cobra.Command {
	in := valuation.DefaultInput()
	var serverURL string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate returns for one property",
		Long:  "Predict the nightly rate for a property configuration and project monthly revenue and property value.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runEstimate(in, serverURL)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().IntVar(&in.Bedrooms, "bedrooms", in.Bedrooms, "number of bedrooms (1-6)")
	cmd.Flags().IntVar(&in.Guests, "guests", in.Guests, "guest capacity (1-12)")
	cmd.Flags().Float64Var(&in.DistanceMiles, "distance", in.DistanceMiles, "distance to the mall in miles (0.1-10.0)")
	cmd.Flags().IntVar(&in.Reviews, "reviews", in.Reviews, "estimated review count")
	cmd.Flags().StringVar(&serverURL, "server", "", "estimate against a running server instead of the local dataset")

	return cmd
}

// runEstimate evaluates locally by default, or against a remote server
// when --server is set.
func runEstimate(in valuation.Input, serverURL string) (*valuation.Report, error) {
	if serverURL != "" {
		return client.New(serverURL).Estimate(in)
	}
	return newEngine().Estimate(in)
}
