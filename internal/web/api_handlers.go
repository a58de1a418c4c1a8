package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"airbnb-roi/internal/dataset"
	"airbnb-roi/internal/valuation"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// statusFor maps pipeline errors to HTTP status codes. Bad form values are
// the caller's fault; a missing or broken dataset is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, valuation.ErrInputOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, dataset.ErrDatasetNotFound), errors.Is(err, dataset.ErrMissingColumn):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleAPIEstimate serves GET (query params) and POST (JSON body)
// estimate requests.
func (s *Server) handleAPIEstimate(w http.ResponseWriter, r *http.Request) {
	var in valuation.Input

	switch r.Method {
	case http.MethodGet:
		var err error
		if in, err = inputFromQuery(r); err != nil {
			apiError(w, "invalid query parameter: "+err.Error(), http.StatusBadRequest)
			return
		}
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			apiError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := s.engine.Estimate(in)
	if err != nil {
		apiError(w, err.Error(), statusFor(err))
		return
	}

	apiJSON(w, report, http.StatusOK)
}

// handleAPIMarket serves the market summary.
func (s *Server) handleAPIMarket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := s.engine.Market()
	if err != nil {
		apiError(w, err.Error(), statusFor(err))
		return
	}

	apiJSON(w, summary, http.StatusOK)
}
