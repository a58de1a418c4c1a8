package web

import (
	"net/http"
	"strconv"

	"airbnb-roi/internal/market"
	"airbnb-roi/internal/valuation"
)

type dashboardData struct {
	Form      valuation.Input
	FormError string
	Report    *valuation.Report
	Summary   market.Summary

	MinBedrooms int
	MaxBedrooms int
	MinGuests   int
	MaxGuests   int
	MinDistance float64
	MaxDistance float64
}

// handleDashboard renders the dashboard. With no query parameters it shows
// the default configuration; the form submits back here via GET.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := dashboardData{
		MinBedrooms: valuation.MinBedrooms,
		MaxBedrooms: valuation.MaxBedrooms,
		MinGuests:   valuation.MinGuests,
		MaxGuests:   valuation.MaxGuests,
		MinDistance: valuation.MinDistance,
		MaxDistance: valuation.MaxDistance,
	}

	in, err := inputFromQuery(r)
	data.Form = in
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		data.FormError = err.Error()
		s.render(w, "dashboard.html", data)
		return
	}

	report, err := s.engine.Estimate(in)
	if err != nil {
		w.WriteHeader(statusFor(err))
		data.FormError = err.Error()
		s.render(w, "dashboard.html", data)
		return
	}
	data.Report = report

	summary, err := s.engine.Market()
	if err != nil {
		http.Error(w, "Error loading market data: "+err.Error(), http.StatusInternalServerError)
		return
	}
	data.Summary = summary

	s.render(w, "dashboard.html", data)
}

// inputFromQuery builds an Input from query parameters, falling back to
// the defaults for absent ones.
func inputFromQuery(r *http.Request) (valuation.Input, error) {
	in := valuation.DefaultInput()
	q := r.URL.Query()

	var err error
	if in.Bedrooms, err = intParam(q.Get("bedrooms"), in.Bedrooms); err != nil {
		return in, err
	}
	if in.Guests, err = intParam(q.Get("guests"), in.Guests); err != nil {
		return in, err
	}
	if in.DistanceMiles, err = floatParam(q.Get("distance"), in.DistanceMiles); err != nil {
		return in, err
	}
	if in.Reviews, err = intParam(q.Get("reviews"), in.Reviews); err != nil {
		return in, err
	}
	return in, nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func floatParam(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}
