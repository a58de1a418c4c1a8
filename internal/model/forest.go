// Package model implements the nightly-price estimator: a bootstrap-
// aggregated ensemble of regression trees fit once per dataset version.
package model

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultTrees is the ensemble size.
	DefaultTrees = 50

	// DefaultSeed pins the bootstrap sampling so fits are reproducible.
	DefaultSeed = 42
)

var (
	// ErrInsufficientData means the training matrix is empty or misaligned
	// with its targets.
	ErrInsufficientData = errors.New("insufficient training data")

	// ErrNotFitted means Predict was called before Fit.
	ErrNotFitted = errors.New("model has not been fitted")
)

// Forest predicts a nightly price from a fixed-order feature vector.
//
// Fit is called exactly once per dataset version; Predict never mutates
// state, so a fitted Forest is safe for concurrent readers.
type Forest struct {
	numTrees int
	seed     int64

	trees []*node
	dims  int
}

// New creates an unfitted forest. Non-positive trees falls back to
// DefaultTrees.
func New(trees int, seed int64) *Forest {
	if trees <= 0 {
		trees = DefaultTrees
	}
	return &Forest{numTrees: trees, seed: seed}
}

// Fit trains the ensemble on aligned predictors and targets. Each tree is
// grown on a bootstrap sample drawn from a generator seeded at fit time,
// so the same data, seed, and tree count always produce the same model.
func (f *Forest) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("%w: %d rows, %d targets", ErrInsufficientData, len(x), len(y))
	}

	dims := len(x[0])
	if dims == 0 {
		return fmt.Errorf("%w: empty feature vectors", ErrInsufficientData)
	}
	for i := range x {
		if len(x[i]) != dims {
			return fmt.Errorf("%w: row %d has %d features, want %d", ErrInsufficientData, i, len(x[i]), dims)
		}
	}

	rng := rand.New(rand.NewSource(f.seed))
	n := len(x)
	trees := make([]*node, f.numTrees)
	for t := range trees {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		trees[t] = buildNode(x, y, sample)
	}

	f.trees = trees
	f.dims = dims
	return nil
}

// Predict estimates the nightly price for one feature vector. The vector
// must match the training layout; out-of-range values are extrapolated
// silently rather than rejected.
func (f *Forest) Predict(features []float64) (float64, error) {
	if len(f.trees) == 0 {
		return 0, ErrNotFitted
	}
	if len(features) != f.dims {
		return 0, fmt.Errorf("feature vector has %d values, want %d", len(features), f.dims)
	}

	votes := make([]float64, len(f.trees))
	for i, t := range f.trees {
		votes[i] = t.predict(features)
	}
	return floats.Sum(votes) / float64(len(votes)), nil
}

// Trees reports the ensemble size.
func (f *Forest) Trees() int {
	return f.numTrees
}
