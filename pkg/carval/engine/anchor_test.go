package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
)

func listing(price int, match float64, dealer bool) dal.Listing {
	return dal.Listing{
		Source:     dal.Source{ID: "autotrader", Weight: 1.0},
		Price:      price,
		MatchScore: match,
		IsDealer:   dealer,
	}
}

func TestWeightedMedian(t *testing.T) {
	tests := []struct {
		name     string
		listings []dal.Listing
		want     int
	}{
		{
			name:     "Empty",
			listings: nil,
			want:     0,
		},
		{
			name:     "EqualWeights",
			listings: []dal.Listing{listing(30000, 1, false), listing(10000, 1, false), listing(20000, 1, false)},
			want:     20000,
		},
		{
			name:     "HeavyTop",
			listings: []dal.Listing{listing(10000, 1, false), listing(20000, 1, false), listing(30000, 5, false)},
			want:     30000,
		},
		{
			name:     "DealerDiscount",
			listings: []dal.Listing{listing(10000, 1, false), listing(20000, 1, true), listing(30000, 1, true)},
			want:     20000,
		},
		{
			name:     "ZeroWeights",
			listings: []dal.Listing{listing(10000, 0, false), listing(20000, 0, false), listing(30000, 0, false)},
			want:     20000,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, weightedMedian(tc.listings))
		})
	}
}

func TestListingWeight(t *testing.T) {
	l := dal.Listing{Source: dal.Source{Weight: 0.9}, MatchScore: 0.5, IsDealer: true}
	assert.InDelta(t, 0.5*0.9*0.92, listingWeight(l), 1e-12)

	l.Source.Weight = 0
	l.IsDealer = false
	assert.InDelta(t, 0.5, listingWeight(l), 1e-12)
}

func TestPriceSpread(t *testing.T) {
	var tier1 []dal.Listing
	for p := 10000; p <= 17000; p += 1000 {
		tier1 = append(tier1, dal.Listing{Price: p})
	}

	assert.Equal(t, 31, priceSpread(tier1, 13000))
	assert.Zero(t, priceSpread(tier1, 0))
	assert.Zero(t, priceSpread(nil, 13000))
}

func TestSummarizeTier(t *testing.T) {
	got := summarizeTier([]dal.Listing{{Price: 10000}, {Price: 15000}})
	assert.Equal(t, dal.TierSummary{Count: 2, AvgPrice: 12500}, got)
	assert.Equal(t, dal.TierSummary{}, summarizeTier(nil))
}

func TestAverageMileageSkipsZero(t *testing.T) {
	got := averageMileage([]dal.Listing{{Mileage: 10000}, {Mileage: 0}, {Mileage: 20000}})
	assert.Equal(t, 15000, got)
	assert.Zero(t, averageMileage(nil))
}

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name                         string
		tier1, tier2, tier3, sources int
		spread, regions              int
		active                       bool
		want                         int
	}{
		{name: "Capped", tier1: 12, tier2: 8, tier3: 6, sources: 3, spread: 5, regions: 2, active: true, want: 100},
		{name: "Nothing", spread: 50, want: 2},
		{name: "TypicalExactMatch", tier1: 6, sources: 3, spread: 12, regions: 1, active: true, want: 55},
		{name: "ModerateSpread", tier1: 12, sources: 5, spread: 25, regions: 1, active: false, want: 55},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := confidenceScore(tc.tier1, tc.tier2, tc.tier3, tc.sources, tc.spread, tc.regions, tc.active)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDistinctSources(t *testing.T) {
	a := []dal.Listing{{Source: dal.Source{ID: "a"}}, {Source: dal.Source{ID: "b"}}}
	b := []dal.Listing{{Source: dal.Source{ID: "a"}}, {Source: dal.Source{ID: "c"}}}
	assert.Equal(t, 3, distinctSources(a, b))
	assert.Zero(t, distinctSources())
}
