package valuation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInputOutOfRange means a form value is outside the supported range.
var ErrInputOutOfRange = errors.New("input out of range")

// Input bounds mirror the dashboard controls.
const (
	MinBedrooms = 1
	MaxBedrooms = 6
	MinGuests   = 1
	MaxGuests   = 12
	MinDistance = 0.1
	MaxDistance = 10.0
)

// Input is one property configuration to estimate.
type Input struct {
	Bedrooms      int     `json:"bedrooms"`
	Guests        int     `json:"guests"`
	DistanceMiles float64 `json:"distance_miles"`
	Reviews       int     `json:"reviews"`
}

// DefaultInput is the configuration the dashboard shows before the user
// touches anything.
func DefaultInput() Input {
	return Input{Bedrooms: 2, Guests: 4, DistanceMiles: 1.5, Reviews: 50}
}

// Validate checks every field against the dashboard ranges. Out-of-range
// values are rejected here rather than fed to the model, which would
// silently extrapolate them.
func (in Input) Validate() error {
	if in.Bedrooms < MinBedrooms || in.Bedrooms > MaxBedrooms {
		return fmt.Errorf("%w: bedrooms %d not in [%d, %d]", ErrInputOutOfRange, in.Bedrooms, MinBedrooms, MaxBedrooms)
	}
	if in.Guests < MinGuests || in.Guests > MaxGuests {
		return fmt.Errorf("%w: guests %d not in [%d, %d]", ErrInputOutOfRange, in.Guests, MinGuests, MaxGuests)
	}
	if math.IsNaN(in.DistanceMiles) || in.DistanceMiles < MinDistance || in.DistanceMiles > MaxDistance {
		return fmt.Errorf("%w: distance %v not in [%v, %v]", ErrInputOutOfRange, in.DistanceMiles, MinDistance, MaxDistance)
	}
	if in.Reviews < 0 {
		return fmt.Errorf("%w: reviews %d negative", ErrInputOutOfRange, in.Reviews)
	}
	return nil
}
