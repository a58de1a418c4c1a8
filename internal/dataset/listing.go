// Package dataset loads the listings table and projects model features.
package dataset

// Listing is one row of the market dataset.
type Listing struct {
	Bedrooms        int     `json:"bedrooms"`
	Accommodates    int     `json:"accommodates"`
	DistToMall      float64 `json:"dist_to_mall"`
	NumberOfReviews int     `json:"number_of_reviews"`
	Price           float64 `json:"price"`

	// Passthrough attributes used only by the dashboard.
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	Neighbourhood string  `json:"neighbourhood,omitempty"`
}
