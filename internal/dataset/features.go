package dataset

// FeatureColumns is the fixed predictor order. Training and inference must
// both use this order or predictions are meaningless.
var FeatureColumns = []string{"bedrooms", "accommodates", "dist_to_mall", "number_of_reviews"}

// Features projects the dataset to aligned predictor rows and targets.
// X rows follow FeatureColumns order; y holds the nightly price.
func Features(listings []Listing) (x [][]float64, y []float64) {
	x = make([][]float64, len(listings))
	y = make([]float64, len(listings))
	for i, l := range listings {
		x[i] = Vector(l.Bedrooms, l.Accommodates, l.DistToMall, l.NumberOfReviews)
		y[i] = l.Price
	}
	return x, y
}

// Vector builds one feature vector in FeatureColumns order.
func Vector(bedrooms, accommodates int, distToMall float64, reviews int) []float64 {
	return []float64{float64(bedrooms), float64(accommodates), distToMall, float64(reviews)}
}
