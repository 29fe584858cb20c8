package engine

import (
	"math"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
)

// confidenceScore grades how much comparable data backs a valuation, on a
// 0-100 scale. The breakpoints are fixed.
func confidenceScore(tier1, tier2, tier3, sources, spread, regions int, active bool) int {
	score := math.Min(float64(tier1)/12*30, 30)
	score += math.Min(float64(tier2)/8*15, 15)
	score += math.Min(float64(tier3)/6*15, 15)
	score += math.Min(float64(sources)/3*15, 15)

	switch {
	case spread <= 10:
		score += 20
	case spread <= 15:
		score += 15
	case spread <= 20:
		score += 10
	case spread <= 30:
		score += 5
	default:
		score += 2
	}

	score += math.Min(float64(regions*5), 10)
	if active {
		score += 5
	}
	return int(math.Round(math.Max(0, math.Min(score, 100))))
}

func distinctSources(listings ...[]dal.Listing) int {
	seen := make(map[string]struct{})
	for _, set := range listings {
		for _, l := range set {
			seen[l.Source.ID] = struct{}{}
		}
	}
	return len(seen)
}
