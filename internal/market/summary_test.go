package market

import (
	"math"
	"testing"

	"airbnb-roi/internal/dataset"
)

func testListings() []dataset.Listing {
	return []dataset.Listing{
		{Bedrooms: 1, Price: 100, Neighbourhood: "Shaw"},
		{Bedrooms: 1, Price: 120, Neighbourhood: "Shaw"},
		{Bedrooms: 2, Price: 200, Neighbourhood: "Georgetown"},
		{Bedrooms: 3, Price: 320, Neighbourhood: "Shaw"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testListings())

	if s.TotalListings != 4 {
		t.Errorf("total = %d, want 4", s.TotalListings)
	}
	if s.MinPrice != 100 {
		t.Errorf("min = %v, want 100", s.MinPrice)
	}
	if s.MaxPrice != 320 {
		t.Errorf("max = %v, want 320", s.MaxPrice)
	}
	if math.Abs(s.AveragePrice-185) > 1e-9 {
		t.Errorf("avg = %v, want 185", s.AveragePrice)
	}
}

func TestSummarizeByNeighbourhood(t *testing.T) {
	s := Summarize(testListings())

	if len(s.ByNeighbourhood) != 2 {
		t.Fatalf("got %d neighbourhoods, want 2", len(s.ByNeighbourhood))
	}
	if s.ByNeighbourhood[0].Neighbourhood != "Shaw" || s.ByNeighbourhood[0].Listings != 3 {
		t.Errorf("top neighbourhood = %+v, want Shaw with 3", s.ByNeighbourhood[0])
	}
	if s.ByNeighbourhood[1].Neighbourhood != "Georgetown" || s.ByNeighbourhood[1].Listings != 1 {
		t.Errorf("second neighbourhood = %+v, want Georgetown with 1", s.ByNeighbourhood[1])
	}
}

func TestSummarizePriceByBedrooms(t *testing.T) {
	s := Summarize(testListings())

	if len(s.PriceByBedrooms) != 3 {
		t.Fatalf("got %d bedroom buckets, want 3", len(s.PriceByBedrooms))
	}

	one := s.PriceByBedrooms[0]
	if one.Bedrooms != 1 || one.Listings != 2 || math.Abs(one.AveragePrice-110) > 1e-9 {
		t.Errorf("1-bedroom bucket = %+v, want avg 110 over 2 listings", one)
	}
	if s.PriceByBedrooms[2].Bedrooms != 3 {
		t.Errorf("buckets not sorted by bedrooms: %+v", s.PriceByBedrooms)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalListings != 0 {
		t.Errorf("total = %d, want 0", s.TotalListings)
	}
	if s.MinPrice != 0 || s.MaxPrice != 0 || s.AveragePrice != 0 {
		t.Errorf("empty summary has nonzero prices: %+v", s)
	}
	if len(s.ByNeighbourhood) != 0 || len(s.PriceByBedrooms) != 0 {
		t.Errorf("empty summary has buckets: %+v", s)
	}
}

func TestSummarizeSkipsBlankNeighbourhood(t *testing.T) {
	s := Summarize([]dataset.Listing{{Bedrooms: 1, Price: 90}})
	if len(s.ByNeighbourhood) != 0 {
		t.Errorf("blank neighbourhood should not be counted: %+v", s.ByNeighbourhood)
	}
}
