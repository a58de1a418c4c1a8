package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
)

var (
	// ErrDatasetNotFound means the dataset file does not exist at the given path.
	ErrDatasetNotFound = errors.New("dataset file not found")

	// ErrMissingColumn means a required column is absent from the header.
	ErrMissingColumn = errors.New("missing required column")
)

// requiredColumns are the columns the valuation pipeline depends on.
// Column names are a fixed contract with the cleaned export.
var requiredColumns = []string{"bedrooms", "accommodates", "dist_to_mall", "number_of_reviews", "price"}

// Load reads the full listing dataset from a CSV file.
//
// The whole file is materialized in memory; there is no streaming path.
// Rows with unparsable required numerics are skipped rather than failing
// the load, since a single dirty row must not poison the model fit.
func Load(path string) ([]Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("closing dataset file", "error", cerr)
		}
	}()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	optional := func(name string) int {
		if i, ok := cols[name]; ok {
			return i
		}
		return -1
	}
	latIdx := optional("latitude")
	lonIdx := optional("longitude")
	hoodIdx := optional("neighbourhood_cleansed")

	// Rows with the wrong field count or bad numerics are skipped, not fatal.
	r.FieldsPerRecord = -1

	var listings []Listing
	skipped := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset rows: %w", err)
		}
		if len(rec) < len(header) {
			skipped++
			continue
		}
		l, ok := parseRow(rec, cols, latIdx, lonIdx, hoodIdx)
		if !ok {
			skipped++
			continue
		}
		listings = append(listings, l)
	}

	if skipped > 0 {
		slog.Warn("skipped malformed dataset rows", "skipped", skipped, "loaded", len(listings))
	}

	return listings, nil
}

// parseRow converts one CSV record into a Listing. Returns false when any
// required field fails to parse.
func parseRow(rec []string, cols map[string]int, latIdx, lonIdx, hoodIdx int) (Listing, bool) {
	var l Listing

	bedrooms, err := strconv.ParseFloat(rec[cols["bedrooms"]], 64)
	if err != nil {
		return l, false
	}
	accommodates, err := strconv.ParseFloat(rec[cols["accommodates"]], 64)
	if err != nil {
		return l, false
	}
	dist, err := strconv.ParseFloat(rec[cols["dist_to_mall"]], 64)
	if err != nil {
		return l, false
	}
	reviews, err := strconv.ParseFloat(rec[cols["number_of_reviews"]], 64)
	if err != nil {
		return l, false
	}
	price, err := strconv.ParseFloat(rec[cols["price"]], 64)
	if err != nil {
		return l, false
	}

	l.Bedrooms = int(bedrooms)
	l.Accommodates = int(accommodates)
	l.DistToMall = dist
	l.NumberOfReviews = int(reviews)
	l.Price = price

	if latIdx >= 0 && latIdx < len(rec) {
		l.Latitude, _ = strconv.ParseFloat(rec[latIdx], 64)
	}
	if lonIdx >= 0 && lonIdx < len(rec) {
		l.Longitude, _ = strconv.ParseFloat(rec[lonIdx], 64)
	}
	if hoodIdx >= 0 && hoodIdx < len(rec) {
		l.Neighbourhood = rec[hoodIdx]
	}

	return l, true
}
