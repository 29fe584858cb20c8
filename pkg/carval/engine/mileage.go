package engine

import (
	"math"
	"sort"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
)

const (
	minEmpiricalListings = 12
	empiricalThreshold   = 40
	normalLow            = 0.85
	normalHigh           = 1.15
)

// mileageBands are the fixed ratio-of-expected-mileage bands.
var mileageBands = [][2]float64{
	{0, 0.5}, {0.5, 0.7}, {0.7, 0.85}, {0.85, 1.0}, {1.0, 1.15},
	{1.15, 1.3}, {1.3, 1.6}, {1.6, 2.0}, {2.0, 99},
}

func theoretical() dal.MileageAnalysis {
	return dal.MileageAnalysis{Method: dal.MethodTheoretical}
}

// trimmedMean averages prices, dropping the lowest and highest when there
// are at least five.
func trimmedMean(prices []int) float64 {
	sorted := append([]int(nil), prices...)
	sort.Ints(sorted)
	if len(sorted) >= 5 {
		sorted = sorted[1 : len(sorted)-1]
	}
	var sum int
	for _, p := range sorted {
		sum += p
	}
	return float64(sum) / float64(len(sorted))
}

func midpoint(b dal.MileageBucket) float64 {
	return (b.Min + b.Max) / 2
}

// analyzeMileage measures how asking prices move with mileage across the
// listings and reads off the factor for a vehicle at vehicleMileage.
// expected is the typical mileage for the vehicle's age and fuel.
func analyzeMileage(listings []dal.Listing, vehicleMileage, expected float64) dal.MileageAnalysis {
	if len(listings) < minEmpiricalListings || expected <= 0 {
		return theoretical()
	}

	ratio := func(l dal.Listing) float64 { return float64(l.Mileage) / expected }

	// reference price from listings near the expected mileage
	var normal, all []int
	for _, l := range listings {
		all = append(all, l.Price)
		if r := ratio(l); r >= normalLow && r < normalHigh {
			normal = append(normal, l.Price)
		}
	}
	var ref float64
	if len(normal) >= 3 {
		ref = math.Round(trimmedMean(normal))
	} else {
		var sum int
		for _, p := range all {
			sum += p
		}
		ref = math.Round(float64(sum) / float64(len(all)))
	}
	if ref <= 0 {
		return theoretical()
	}

	var buckets []dal.MileageBucket
	for _, band := range mileageBands {
		var prices []int
		var milSum int
		for _, l := range listings {
			if r := ratio(l); r >= band[0] && r < band[1] {
				prices = append(prices, l.Price)
				milSum += l.Mileage
			}
		}
		if len(prices) == 0 {
			continue
		}
		avg := math.Round(trimmedMean(prices))
		buckets = append(buckets, dal.MileageBucket{
			Min:       band[0],
			Max:       band[1],
			Count:     len(prices),
			AvgPrice:  int(avg),
			AvgMil:    numeric.RoundInt(float64(milSum) / float64(len(prices))),
			Effect:    int(avg - ref),
			EffectPct: numeric.RoundPlaces((avg-ref)/ref*100, 1),
			Factor:    numeric.RoundPlaces(avg/ref, 3),
		})
	}

	vRatio := vehicleMileage / expected
	factor := bucketFactor(buckets, vRatio)
	reg := regress(listings)

	covered := 0
	for _, b := range buckets {
		if b.Count >= 2 {
			covered++
		}
	}
	conf := numeric.RoundInt(
		math.Min(float64(len(normal))/5, 1)*30 +
			math.Min(float64(len(listings))/30, 1)*30 +
			float64(covered)/float64(len(mileageBands))*20 +
			math.Min(reg.RSquared/0.3, 1)*20)

	method := dal.MethodHybrid
	if conf >= empiricalThreshold {
		method = dal.MethodEmpirical
	}
	return dal.MileageAnalysis{
		Method:         method,
		Factor:         &factor,
		ReferencePrice: int(ref),
		VehicleRatio:   numeric.RoundPlaces(vRatio, 2),
		Buckets:        buckets,
		Regression:     &reg,
		Confidence:     conf,
		TotalListings:  len(listings),
		NormalListings: len(normal),
	}
}

// bucketFactor reads the factor of the bucket holding vRatio, or of the
// nearest filled bucket when none holds it, then interpolates between the
// midpoints of consecutive filled buckets that straddle vRatio.
func bucketFactor(buckets []dal.MileageBucket, vRatio float64) float64 {
	if len(buckets) == 0 {
		return 1.0
	}

	factor := math.NaN()
	for _, b := range buckets {
		if vRatio >= b.Min && vRatio < b.Max {
			factor = b.Factor
			break
		}
	}
	if math.IsNaN(factor) {
		nearest := buckets[0]
		for _, b := range buckets[1:] {
			if math.Abs(midpoint(b)-vRatio) < math.Abs(midpoint(nearest)-vRatio) {
				nearest = b
			}
		}
		factor = nearest.Factor
	}

	for i := 0; i+1 < len(buckets); i++ {
		c, nx := buckets[i], buckets[i+1]
		lo, hi := midpoint(c), midpoint(nx)
		if vRatio >= lo && vRatio < hi && c.AvgMil > 0 && nx.AvgMil > 0 {
			t := (vRatio - lo) / (hi - lo)
			factor = numeric.RoundPlaces(c.Factor+t*(nx.Factor-c.Factor), 3)
		}
	}
	return factor
}

// regress fits price = a + b·mileage by ordinary least squares. R² is the
// standard 1 - SSres/SStot and is 0 when prices do not vary.
func regress(listings []dal.Listing) dal.Regression {
	n := float64(len(listings))
	var sx, sy float64
	for _, l := range listings {
		sx += float64(l.Mileage)
		sy += float64(l.Price)
	}
	mx, my := sx/n, sy/n

	var sxx, sxy, sst float64
	for _, l := range listings {
		dx, dy := float64(l.Mileage)-mx, float64(l.Price)-my
		sxx += dx * dx
		sxy += dx * dy
		sst += dy * dy
	}
	var slope float64
	if sxx > 0 {
		slope = sxy / sxx
	}
	intercept := my - slope*mx

	var ssr float64
	for _, l := range listings {
		e := float64(l.Price) - (intercept + slope*float64(l.Mileage))
		ssr += e * e
	}
	var r2 float64
	if sst > 0 {
		r2 = math.Max(0, math.Min(1, 1-ssr/sst))
	}

	return dal.Regression{
		Slope:       numeric.RoundPlaces(slope, 4),
		PerTenK:     math.Round(slope * 10000),
		RSquared:    numeric.RoundPlaces(r2, 3),
		Observation: len(listings),
	}
}
