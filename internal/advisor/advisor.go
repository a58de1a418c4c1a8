// Package advisor maps a property's distance to the tourist core onto a
// pricing strategy recommendation.
package advisor

// Tag identifies one of the three strategy recommendations.
type Tag string

const (
	TagPrimeLocation  Tag = "prime_location"
	TagVolumeStrategy Tag = "volume_strategy"
	TagBalanced       Tag = "balanced"
)

// Thresholds in miles. Both boundary values fall to Balanced.
const (
	primeWithin = 1.0
	volumeAfter = 4.0
)

// Advise returns the strategy tag for a distance to the mall, in miles.
// Total over all real inputs.
func Advise(distanceMiles float64) Tag {
	switch {
	case distanceMiles < primeWithin:
		return TagPrimeLocation
	case distanceMiles > volumeAfter:
		return TagVolumeStrategy
	default:
		return TagBalanced
	}
}

// Recommendation is the display content for one strategy tag.
type Recommendation struct {
	Tag   Tag    `json:"tag"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// recommendations is the single source of the advisory copy. The texts are
// content, not logic, so they live in one table instead of inline branches.
var recommendations = map[Tag]Recommendation{
	TagPrimeLocation: {
		Tag:   TagPrimeLocation,
		Title: "Prime Location Strategy",
		Text: "You are in the 'Golden Zone' (active tourist hub). Focus on luxury " +
			"amenities (concierge, high-end toiletries) to justify a premium price. " +
			"Competitors here charge 30% more.",
	},
	TagVolumeStrategy: {
		Tag:   TagVolumeStrategy,
		Title: "Volume Strategy",
		Text: "You are far from tourist hubs. You must compete on price. Consider " +
			"marketing to long-term remote workers rather than weekend tourists.",
	},
	TagBalanced: {
		Tag:   TagBalanced,
		Title: "Balanced Strategy",
		Text: "Good location. To maximize revenue, focus on family-friendly " +
			"amenities (cribs, high chairs) as you are in the residential sweet spot.",
	},
}

// Lookup returns the recommendation content for a tag. Unknown tags fall
// back to the balanced recommendation so the function stays total.
func Lookup(t Tag) Recommendation {
	if r, ok := recommendations[t]; ok {
		return r
	}
	return recommendations[TagBalanced]
}

// Recommend combines Advise and Lookup for one distance.
func Recommend(distanceMiles float64) Recommendation {
	return Lookup(Advise(distanceMiles))
}
