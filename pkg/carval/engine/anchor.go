package engine

import (
	"math"
	"sort"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
)

const dealerWeight = 0.92

// listingWeight is matchScore × source weight, discounted for dealers.
func listingWeight(l dal.Listing) float64 {
	w := l.MatchScore
	if l.Source.Weight > 0 {
		w *= l.Source.Weight
	}
	if l.IsDealer {
		w *= dealerWeight
	}
	return w
}

// weightedMedian returns the price at which the cumulative listing weight,
// walked in ascending price order, first reaches half the total. An empty
// set yields 0.
func weightedMedian(listings []dal.Listing) int {
	if len(listings) == 0 {
		return 0
	}

	type weighted struct {
		price  int
		weight float64
	}
	ws := make([]weighted, len(listings))
	var total float64
	for i, l := range listings {
		ws[i] = weighted{price: l.Price, weight: listingWeight(l)}
		total += ws[i].weight
	}
	sort.SliceStable(ws, func(i, j int) bool { return ws[i].price < ws[j].price })

	if total <= 0 {
		return ws[len(ws)/2].price
	}
	var cum float64
	for _, w := range ws {
		cum += w.weight
		if cum >= total/2 {
			return w.price
		}
	}
	return ws[len(ws)-1].price
}

// priceSpread is the interquartile range of tier-1 prices as a whole
// percentage of the anchor.
func priceSpread(tier1 []dal.Listing, anchor int) int {
	if anchor <= 0 || len(tier1) == 0 {
		return 0
	}
	prices := make([]int, len(tier1))
	for i, l := range tier1 {
		prices[i] = l.Price
	}
	sort.Ints(prices)

	p25 := prices[int(float64(len(prices))*0.25)]
	p75 := prices[int(float64(len(prices))*0.75)]
	return int(math.Round(float64(p75-p25) / float64(anchor) * 100))
}

func summarizeTier(listings []dal.Listing) dal.TierSummary {
	if len(listings) == 0 {
		return dal.TierSummary{}
	}
	var sum int
	for _, l := range listings {
		sum += l.Price
	}
	return dal.TierSummary{
		Count:    len(listings),
		AvgPrice: int(math.Round(float64(sum) / float64(len(listings)))),
	}
}

// averageMileage is the mean positive mileage of the listings.
func averageMileage(listings []dal.Listing) int {
	var sum, n int
	for _, l := range listings {
		if l.Mileage > 0 {
			sum += l.Mileage
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
