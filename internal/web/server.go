// Package web provides the HTTP server and handlers for the ROI dashboard.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"airbnb-roi/internal/logging"
	"airbnb-roi/internal/valuation"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the dashboard HTTP server.
type Server struct {
	engine    *valuation.Engine
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates the dashboard server over a valuation engine.
func NewServer(engine *valuation.Engine) (*Server, error) {
	funcMap := template.FuncMap{
		"money":      tmplMoney,
		"moneyWhole": tmplMoneyWhole,
		"percent":    tmplPercent,
		"comma":      tmplComma,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		engine:    engine,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/", s.handleDashboard)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/charts/bedrooms", s.handleBedroomsChart)
	s.mux.HandleFunc("/charts/map", s.handleMapChart)
	s.mux.HandleFunc("/api/estimate", s.handleAPIEstimate)
	s.mux.HandleFunc("/api/market", s.handleAPIMarket)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting dashboard on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// render executes a template, falling back to a 500 on failure.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
	}
}

// Template helper functions

// tmplMoney formats a dollar amount with commas and cents: $2,925.00.
func tmplMoney(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	dot := strings.Index(s, ".")
	return "$" + withCommas(s[:dot]) + s[dot:]
}

// tmplMoneyWhole formats a dollar amount with commas, no cents: $526,500.
func tmplMoneyWhole(f float64) string {
	return "$" + withCommas(fmt.Sprintf("%.0f", f))
}

// tmplPercent formats a ratio as a whole percentage: 65%.
func tmplPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// tmplComma formats an integer with thousands separators.
func tmplComma(n int) string {
	return withCommas(fmt.Sprintf("%d", n))
}

// withCommas inserts thousands separators into a plain digit string.
func withCommas(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
