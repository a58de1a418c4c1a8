// Package finance derives revenue and valuation figures from a predicted
// nightly price.
package finance

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultOccupancy is the conservative occupancy assumption.
	DefaultOccupancy = 0.65

	nightsPerMonth = 30
	monthsPerYear  = 12

	// capYears is the cap-rate proxy: value = annual revenue x capYears.
	capYears = 15
)

// ErrInvalidPrediction means the predicted price is negative or non-finite
// and must not be formatted as a dollar figure.
var ErrInvalidPrediction = errors.New("invalid predicted price")

// Projection is the derived financial picture for one prediction.
type Projection struct {
	NightlyRate    float64 `json:"nightly_rate"`
	Occupancy      float64 `json:"occupancy"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	PropertyValue  float64 `json:"property_value"`
}

// Project computes monthly revenue and implied property value from a
// predicted nightly price. Occupancy must be in (0, 1]; a non-positive
// value falls back to DefaultOccupancy.
func Project(nightlyRate, occupancy float64) (Projection, error) {
	if math.IsNaN(nightlyRate) || math.IsInf(nightlyRate, 0) || nightlyRate < 0 {
		return Projection{}, fmt.Errorf("%w: %v", ErrInvalidPrediction, nightlyRate)
	}
	if occupancy <= 0 {
		occupancy = DefaultOccupancy
	}
	if occupancy > 1 {
		return Projection{}, fmt.Errorf("occupancy %v out of range (0, 1]", occupancy)
	}

	monthly := nightlyRate * nightsPerMonth * occupancy
	return Projection{
		NightlyRate:    nightlyRate,
		Occupancy:      occupancy,
		MonthlyRevenue: monthly,
		PropertyValue:  monthly * monthsPerYear * capYears,
	}, nil
}
