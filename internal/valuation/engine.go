// Package valuation wires the pipeline together: load the dataset, fit the
// price model once, and serve estimates against the cached fit.
package valuation

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"airbnb-roi/internal/advisor"
	"airbnb-roi/internal/dataset"
	"airbnb-roi/internal/finance"
	"airbnb-roi/internal/market"
	"airbnb-roi/internal/model"
)

// Options configures an Engine.
type Options struct {
	DatasetPath string
	Trees       int
	Seed        int64
	Occupancy   float64
}

// Report is the full result of one estimate.
type Report struct {
	Input          Input                  `json:"input"`
	Projection     finance.Projection     `json:"projection"`
	Recommendation advisor.Recommendation `json:"recommendation"`
	TrainedOn      int                    `json:"trained_on"`
}

// snapshot is one immutable load-and-fit of the dataset. Readers get a
// snapshot pointer and never see partial state.
type snapshot struct {
	listings []dataset.Listing
	forest   *model.Forest
	summary  market.Summary
	modTime  time.Time
}

// Engine memoizes the loaded dataset and fitted model. The first access
// (or any access after the source file's mtime changes, or after
// Invalidate) reloads and refits under a single-writer lock; all other
// accesses are lock-free reads of the current snapshot.
type Engine struct {
	opts Options

	mu   sync.Mutex // serializes reloads
	snap atomic.Pointer[snapshot]
}

// NewEngine creates an engine. Nothing is loaded until the first access;
// call Ready at startup to fail fast on a missing or malformed dataset.
func NewEngine(opts Options) *Engine {
	if opts.Trees <= 0 {
		opts.Trees = model.DefaultTrees
	}
	if opts.Occupancy <= 0 {
		opts.Occupancy = finance.DefaultOccupancy
	}
	return &Engine{opts: opts}
}

// Ready loads and fits if needed, returning any load or fit error.
func (e *Engine) Ready() error {
	_, err := e.current()
	return err
}

// Invalidate drops the cached snapshot so the next access reloads.
func (e *Engine) Invalidate() {
	e.snap.Store(nil)
}

// Estimate validates the input, predicts a nightly rate, projects the
// financials, and attaches the strategy recommendation.
func (e *Engine) Estimate(in Input) (*Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	snap, err := e.current()
	if err != nil {
		return nil, err
	}

	features := dataset.Vector(in.Bedrooms, in.Guests, in.DistanceMiles, in.Reviews)
	rate, err := snap.forest.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("predicting nightly rate: %w", err)
	}

	projection, err := finance.Project(rate, e.opts.Occupancy)
	if err != nil {
		return nil, err
	}

	return &Report{
		Input:          in,
		Projection:     projection,
		Recommendation: advisor.Recommend(in.DistanceMiles),
		TrainedOn:      len(snap.listings),
	}, nil
}

// Market returns the descriptive summary of the loaded dataset.
func (e *Engine) Market() (market.Summary, error) {
	snap, err := e.current()
	if err != nil {
		return market.Summary{}, err
	}
	return snap.summary, nil
}

// Listings returns the loaded dataset, shared read-only.
func (e *Engine) Listings() ([]dataset.Listing, error) {
	snap, err := e.current()
	if err != nil {
		return nil, err
	}
	return snap.listings, nil
}

// current returns the live snapshot, reloading when there is none or when
// the source file changed on disk.
func (e *Engine) current() (*snapshot, error) {
	if snap := e.snap.Load(); snap != nil && !e.stale(snap) {
		return snap, nil
	}
	return e.reload()
}

// stale reports whether the dataset file's mtime moved past the snapshot.
// A stat failure keeps the last good snapshot rather than dropping data.
func (e *Engine) stale(s *snapshot) bool {
	info, err := os.Stat(e.opts.DatasetPath)
	if err != nil {
		return false
	}
	return !info.ModTime().Equal(s.modTime)
}

func (e *Engine) reload() (*snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Another goroutine may have reloaded while we waited.
	if snap := e.snap.Load(); snap != nil && !e.stale(snap) {
		return snap, nil
	}

	start := time.Now()
	listings, err := dataset.Load(e.opts.DatasetPath)
	if err != nil {
		return nil, err
	}

	x, y := dataset.Features(listings)
	forest := model.New(e.opts.Trees, e.opts.Seed)
	if err := forest.Fit(x, y); err != nil {
		return nil, fmt.Errorf("fitting price model: %w", err)
	}

	var modTime time.Time
	if info, err := os.Stat(e.opts.DatasetPath); err == nil {
		modTime = info.ModTime()
	}

	snap := &snapshot{
		listings: listings,
		forest:   forest,
		summary:  market.Summarize(listings),
		modTime:  modTime,
	}
	e.snap.Store(snap)

	slog.Info("model fitted",
		"listings", len(listings),
		"trees", forest.Trees(),
		"seed", e.opts.Seed,
		"duration", time.Since(start).String(),
	)

	return snap, nil
}
