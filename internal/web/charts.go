package web

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// handleBedroomsChart renders the average-rate-by-bedrooms bar chart as a
// standalone page embedded by the dashboard in an iframe.
func (s *Server) handleBedroomsChart(w http.ResponseWriter, r *http.Request) {
	summary, err := s.engine.Market()
	if err != nil {
		http.Error(w, "Error loading market data: "+err.Error(), statusFor(err))
		return
	}

	var labels []string
	var data []opts.BarData
	for _, bp := range summary.PriceByBedrooms {
		labels = append(labels, fmt.Sprintf("%d bd", bp.Bedrooms))
		data = append(data, opts.BarData{Value: bp.AveragePrice})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Average nightly rate by bedrooms"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "380px"}),
	)
	bar.SetXAxis(labels).AddSeries("avg nightly rate ($)", data)

	if err := bar.Render(w); err != nil {
		http.Error(w, "Error rendering chart: "+err.Error(), http.StatusInternalServerError)
	}
}

// handleMapChart renders the listing map (longitude/latitude scatter) as a
// standalone page embedded by the dashboard in an iframe.
func (s *Server) handleMapChart(w http.ResponseWriter, r *http.Request) {
	listings, err := s.engine.Listings()
	if err != nil {
		http.Error(w, "Error loading listings: "+err.Error(), statusFor(err))
		return
	}

	var data []opts.ScatterData
	for _, l := range listings {
		if l.Latitude == 0 && l.Longitude == 0 {
			continue
		}
		data = append(data, opts.ScatterData{
			Value:      []interface{}{l.Longitude, l.Latitude},
			SymbolSize: 6,
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Active listings"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "380px"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "longitude"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "latitude"}),
	)
	scatter.AddSeries("listings", data)

	if err := scatter.Render(w); err != nil {
		http.Error(w, "Error rendering chart: "+err.Error(), http.StatusInternalServerError)
	}
}
