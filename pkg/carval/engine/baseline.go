package engine

import (
	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

const maxSegmentComparables = 5

// resolveBaseline walks the fallback chain: the model's own baseline, then a
// prestige-corrected average of its segment siblings, then the generic
// default. The returned info is nil only for an exact baseline.
func resolveBaseline(t *reference.Tables, brand, model string) (reference.ModelBaseline, *dal.FallbackInfo) {
	if b, ok := t.Baseline(brand, model); ok {
		return b, nil
	}
	if b, info, ok := segmentBaseline(t, brand, model); ok {
		return b, info
	}
	return t.Generic, &dal.FallbackInfo{Method: dal.FallbackGenericDefault}
}

// segmentBaseline averages the new prices of up to five segment siblings
// with known baselines and rescales by own prestige over their average
// prestige. Siblings without a baseline are skipped.
func segmentBaseline(t *reference.Tables, brand, model string) (reference.ModelBaseline, *dal.FallbackInfo, bool) {
	seg, self, ok := t.SegmentOf(brand, model)
	if !ok {
		return reference.ModelBaseline{}, nil, false
	}

	var comps []dal.Comparable
	for _, m := range seg.Models {
		if m == self {
			continue
		}
		b, known := t.BaselineByKey(m.Key())
		if !known {
			continue
		}
		comps = append(comps, dal.Comparable{
			Brand:        m.Brand,
			Model:        m.Model,
			BaseNewPrice: b.BaseNewPrice,
			Prestige:     t.BrandPrestige(m.Brand),
		})
		if len(comps) == maxSegmentComparables {
			break
		}
	}
	if len(comps) == 0 {
		return reference.ModelBaseline{}, nil, false
	}

	var sumPrice, sumPrestige float64
	for _, c := range comps {
		sumPrice += float64(c.BaseNewPrice)
		sumPrestige += c.Prestige
	}
	n := float64(len(comps))
	avgPrice := numeric.RoundInt(sumPrice / n)
	avgPrestige := sumPrestige / n
	own := t.BrandPrestige(brand)
	ratio := own / avgPrestige

	b := t.Generic
	b.BaseNewPrice = numeric.RoundInt(float64(avgPrice) * ratio)
	b.Segment = seg.ID

	return b, &dal.FallbackInfo{
		Method:        dal.FallbackSegmentComparable,
		SegmentLabel:  seg.Label,
		Comparables:   comps,
		AvgNewPrice:   avgPrice,
		OwnPrestige:   own,
		AvgPrestige:   numeric.RoundPlaces(avgPrestige, 4),
		PrestigeRatio: numeric.RoundPlaces(ratio, 4),
	}, true
}
