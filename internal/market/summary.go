// Package market computes descriptive statistics over the listing dataset
// for the dashboard charts and the market CLI command.
package market

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"airbnb-roi/internal/dataset"
)

// NeighbourhoodCount is the listing count for one neighbourhood.
type NeighbourhoodCount struct {
	Neighbourhood string `json:"neighbourhood"`
	Listings      int    `json:"listings"`
}

// BedroomPrice is the average nightly rate for one bedroom count.
type BedroomPrice struct {
	Bedrooms     int     `json:"bedrooms"`
	AveragePrice float64 `json:"average_price"`
	Listings     int     `json:"listings"`
}

// Summary is the descriptive market picture shown alongside predictions.
type Summary struct {
	TotalListings int     `json:"total_listings"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
	AveragePrice  float64 `json:"average_price"`

	// ByNeighbourhood is sorted by listing count, descending.
	ByNeighbourhood []NeighbourhoodCount `json:"by_neighbourhood"`

	// PriceByBedrooms is sorted by bedroom count, ascending.
	PriceByBedrooms []BedroomPrice `json:"price_by_bedrooms"`
}

// Summarize builds the market summary from the loaded dataset.
func Summarize(listings []dataset.Listing) Summary {
	s := Summary{TotalListings: len(listings)}
	if len(listings) == 0 {
		return s
	}

	prices := make([]float64, len(listings))
	hoods := make(map[string]int)
	bedroomPrices := make(map[int][]float64)

	s.MinPrice = listings[0].Price
	s.MaxPrice = listings[0].Price
	for i, l := range listings {
		prices[i] = l.Price
		if l.Price < s.MinPrice {
			s.MinPrice = l.Price
		}
		if l.Price > s.MaxPrice {
			s.MaxPrice = l.Price
		}
		if l.Neighbourhood != "" {
			hoods[l.Neighbourhood]++
		}
		bedroomPrices[l.Bedrooms] = append(bedroomPrices[l.Bedrooms], l.Price)
	}
	s.AveragePrice = stat.Mean(prices, nil)

	for hood, count := range hoods {
		s.ByNeighbourhood = append(s.ByNeighbourhood, NeighbourhoodCount{Neighbourhood: hood, Listings: count})
	}
	sort.Slice(s.ByNeighbourhood, func(i, j int) bool {
		a, b := s.ByNeighbourhood[i], s.ByNeighbourhood[j]
		if a.Listings != b.Listings {
			return a.Listings > b.Listings
		}
		return a.Neighbourhood < b.Neighbourhood
	})

	for bedrooms, ps := range bedroomPrices {
		s.PriceByBedrooms = append(s.PriceByBedrooms, BedroomPrice{
			Bedrooms:     bedrooms,
			AveragePrice: stat.Mean(ps, nil),
			Listings:     len(ps),
		})
	}
	sort.Slice(s.PriceByBedrooms, func(i, j int) bool {
		return s.PriceByBedrooms[i].Bedrooms < s.PriceByBedrooms[j].Bedrooms
	})

	return s
}
