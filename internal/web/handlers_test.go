package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"airbnb-roi/internal/valuation"
)

const testCSV = `neighbourhood_cleansed,latitude,longitude,bedrooms,accommodates,dist_to_mall,number_of_reviews,price
Shaw,38.912,-77.021,1,2,0.5,10,100
Georgetown,38.909,-77.065,2,4,2.0,50,200
Capitol Hill,38.889,-76.996,3,6,5.0,100,300
`

func testServer(t *testing.T) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	engine := valuation.NewEngine(valuation.Options{DatasetPath: path, Trees: 20, Seed: 42})
	s, err := NewServer(engine)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestDashboard(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Predicted Nightly Rate",
		"Est. Monthly Revenue",
		"Est. Property Value",
		"trained on 3",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboardWithParams(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/?bedrooms=3&guests=6&distance=0.5&reviews=100")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// 0.5 miles is inside the prime zone.
	if !strings.Contains(rec.Body.String(), "Prime Location Strategy") {
		t.Error("expected prime location advice at 0.5 miles")
	}
}

func TestDashboardBadParam(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/?bedrooms=lots")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unparsable param", rec.Code)
	}

	rec = get(t, s, "/?bedrooms=99")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for out-of-range param", rec.Code)
	}
}

func TestDashboardUnknownPath(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDashboardMissingDataset(t *testing.T) {
	engine := valuation.NewEngine(valuation.Options{
		DatasetPath: filepath.Join(t.TempDir(), "nope.csv"),
		Seed:        42,
	})
	s, err := NewServer(engine)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	rec := get(t, s, "/")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when dataset missing", rec.Code)
	}
}

func TestChartsRender(t *testing.T) {
	s := testServer(t)

	for _, path := range []string{"/charts/bedrooms", "/charts/map"} {
		rec := get(t, s, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200", path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), "echarts") {
			t.Errorf("%s does not look like an echarts page", path)
		}
	}
}

func TestStaticServed(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/static/style.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "metric-value") {
		t.Error("stylesheet content missing")
	}
}

func TestMoneyFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{150, "$150.00"},
		{2925, "$2,925.00"},
		{1234567.89, "$1,234,567.89"},
	}
	for _, tt := range tests {
		if got := tmplMoney(tt.in); got != tt.want {
			t.Errorf("tmplMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := tmplMoneyWhole(526500.4); got != "$526,500" {
		t.Errorf("tmplMoneyWhole = %q, want $526,500", got)
	}
	if got := tmplPercent(0.65); got != "65%" {
		t.Errorf("tmplPercent = %q, want 65%%", got)
	}
	if got := tmplComma(3521); got != "3,521" {
		t.Errorf("tmplComma = %q, want 3,521", got)
	}
}
