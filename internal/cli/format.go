package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"airbnb-roi/internal/market"
	"airbnb-roi/internal/valuation"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printReport prints an estimate report in text format.
func printReport(w io.Writer, r *valuation.Report) {
	fmt.Fprintf(w, "Estimate for %d bd / %d guests, %.1f mi from the mall, ~%d reviews\n",
		r.Input.Bedrooms, r.Input.Guests, r.Input.DistanceMiles, r.Input.Reviews)
	fmt.Fprintf(w, "  Nightly rate:     $%s\n", formatMoney(r.Projection.NightlyRate))
	fmt.Fprintf(w, "  Monthly revenue:  $%s  (%.0f%% occupancy)\n",
		formatMoney(r.Projection.MonthlyRevenue), r.Projection.Occupancy*100)
	fmt.Fprintf(w, "  Property value:   $%s\n", formatMoney(r.Projection.PropertyValue))
	fmt.Fprintf(w, "\n%s\n  %s\n", r.Recommendation.Title, r.Recommendation.Text)
	fmt.Fprintf(w, "\nModel trained on %d listings.\n", r.TrainedOn)
}

// printMarket prints the market summary as a formatted table.
func printMarket(w io.Writer, s market.Summary) error {
	fmt.Fprintf(w, "Market: %d listings, $%s avg/night ($%s-$%s)\n\n",
		s.TotalListings, formatMoney(s.AveragePrice), formatMoney(s.MinPrice), formatMoney(s.MaxPrice))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "BEDROOMS\tAVG RATE\tLISTINGS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, bp := range s.PriceByBedrooms {
		if _, err := fmt.Fprintf(tw, "%d\t$%s\t%d\n", bp.Bedrooms, formatMoney(bp.AveragePrice), bp.Listings); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	if len(s.ByNeighbourhood) > 0 {
		fmt.Fprintln(w, "\nTop neighbourhoods:")
		top := s.ByNeighbourhood
		if len(top) > 5 {
			top = top[:5]
		}
		for _, nc := range top {
			fmt.Fprintf(w, "  %-30s %d\n", truncate(nc.Neighbourhood, 28), nc.Listings)
		}
	}

	return nil
}

// formatMoney formats a dollar amount with commas and cents.
func formatMoney(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	dot := strings.Index(s, ".")
	whole, cents := s[:dot], s[dot:]

	if len(whole) <= 3 {
		return whole + cents
	}
	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)
	return strings.Join(parts, ",") + cents
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
