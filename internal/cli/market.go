package cli

import (
	"github.com/spf13/cobra"

	"airbnb-roi/internal/client"
	"airbnb-roi/internal/market"
)

func newMarketCmd() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "market",
		Short: "Show the market summary",
		Long:  "Print descriptive statistics for the loaded listing dataset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := runMarket(serverURL)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), summary)
			}
			return printMarket(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "query a running server instead of the local dataset")

	return cmd
}

func runMarket(serverURL string) (market.Summary, error) {
	if serverURL != "" {
		summary, err := client.New(serverURL).Market()
		if err != nil {
			return market.Summary{}, err
		}
		return *summary, nil
	}
	return newEngine().Market()
}
