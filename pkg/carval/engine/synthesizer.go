package engine

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

const (
	tier1PriceVariance = 0.12
	tier2Discount      = 0.92
	tier3Discount      = 0.9
	tier2Threshold     = 8
	tier3Threshold     = 12
	maxTier3Models     = 3
	nationalRegion     = "National"
)

// subject is everything the synthesizer and ledger derive from a vehicle
// once per call.
type subject struct {
	vehicle  dal.Vehicle
	market   string
	regionID string
	region   reference.Region
	fuelKey  string
	age      int // whole years, >= 0
	mileage  int // odometer reading
	baseline reference.ModelBaseline
}

// curveAge caps age at the end of the 0-10 year curves.
func (s subject) curveAge() float64 {
	return float64(min(s.age, 10))
}

// synthesizer produces comparable listings. It is a pure function of its
// inputs and the state of rng.
type synthesizer struct {
	tables   *reference.Tables
	rng      *rand.Rand
	tier1Min int
	tier1Max int
}

func (s *synthesizer) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *synthesizer) listingURL(src dal.Source) string {
	return fmt.Sprintf("https://%s/listings/%d", src.URL, 10000000+s.rng.IntN(89999999))
}

// typicalMileage is what a car of this age and fuel has usually covered.
// Tier-1 prices and mileages use it instead of the odometer so that the
// anchor stays fixed and only the mileage step reacts to the odometer.
func (s *synthesizer) typicalMileage(sub subject) float64 {
	return float64(s.tables.AnnualMileageFor(sub.fuelKey) * max(sub.age, 1))
}

// provincePrice is the expected asking price in the vehicle's region:
// newPrice × sqrt(ageFactor × mileageFactor) × regional fuel coefficient.
func (s *synthesizer) provincePrice(sub subject) float64 {
	ageFactor := numeric.Lookup(s.tables.AgeCurve, sub.curveAge(), 0.3)
	milFactor := numeric.Lookup(s.tables.MileageCurve, s.typicalMileage(sub)/10000, 0.52)
	return math.Round(float64(sub.baseline.BaseNewPrice) * math.Sqrt(ageFactor*milFactor) * sub.region.FuelCoeff(sub.fuelKey))
}

// tier1 emits exact model/year listings from every source of the market.
func (s *synthesizer) tier1(sub subject) []dal.Listing {
	base := s.provincePrice(sub)
	typical := s.typicalMileage(sub)

	var out []dal.Listing
	for _, src := range s.tables.SourcesFor(sub.market) {
		count := s.tier1Min + s.rng.IntN(s.tier1Max-s.tier1Min+1)
		for range count {
			priceMod := 1 + s.uniform(-1, 1)*tier1PriceVariance
			mileageMod := s.uniform(0.8, 1.2)
			out = append(out, dal.Listing{
				Source:     src,
				Tier:       dal.TierExact,
				MatchScore: s.uniform(0.85, 1.0),
				Price:      int(numeric.RoundTo(base*priceMod, 1000)),
				Mileage:    numeric.RoundInt(typical * mileageMod),
				Year:       sub.vehicle.Year,
				Brand:      sub.vehicle.Brand,
				Model:      sub.vehicle.Model,
				IsDealer:   s.rng.Float64() > 0.4,
				Region:     sub.region.Name,
				DaysListed: s.rng.IntN(45) + 1,
				URL:        s.listingURL(src),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

// tier2 widens the search to model-years within two of the vehicle's. It
// only runs when tier 1 came back thin.
func (s *synthesizer) tier2(sub subject, tier1Count int) ([]dal.Listing, *dal.EquipmentAnalysis) {
	if tier1Count >= tier2Threshold {
		return nil, nil
	}
	sources := s.tables.SourcesFor(sub.market)
	if len(sources) > 2 {
		sources = sources[:2]
	}
	annual := float64(sub.baseline.AvgMileage)
	if annual <= 0 {
		annual = float64(s.tables.AnnualMileageFor(sub.fuelKey))
	}

	var out []dal.Listing
	for diff := -2; diff <= 2; diff++ {
		if diff == 0 {
			continue
		}
		year := sub.vehicle.Year + diff
		age := max(sub.age-diff, 0)
		ageFactor := numeric.Lookup(s.tables.AgeCurve, float64(min(age, 10)), 0.3)
		price := math.Round(float64(sub.baseline.BaseNewPrice) * ageFactor * tier2Discount)

		for _, src := range sources {
			count := s.rng.IntN(3) + 1
			for range count {
				out = append(out, dal.Listing{
					Source:     src,
					Tier:       dal.TierNear,
					MatchScore: s.uniform(0.65, 0.75),
					Price:      int(numeric.RoundTo(price*s.uniform(0.9, 1.1), 1000)),
					Mileage:    numeric.RoundInt(annual * float64(age) * s.uniform(0.8, 1.2)),
					Year:       year,
					Brand:      sub.vehicle.Brand,
					Model:      sub.vehicle.Model,
					IsDealer:   s.rng.Float64() > 0.5,
					Region:     nationalRegion,
					DaysListed: s.rng.IntN(60) + 5,
					URL:        s.listingURL(src),
				})
			}
		}
	}

	return out, &dal.EquipmentAnalysis{
		PackageEffect: map[string]string{"AWD vs FWD": "+5-8% in asking price"},
		CommonEquip:   []string{"Navigation", "Parking Sensors", "Leather Upholstery", "LED Headlights"},
		EquipPremium:  0.06,
	}
}

// tier3 substitutes cross-brand models from the vehicle's segment, priced
// through the ratio of brand prestige. It only runs when tiers 1 and 2
// together came back thin.
func (s *synthesizer) tier3(sub subject, combinedCount int) []dal.Listing {
	if combinedCount >= tier3Threshold {
		return nil
	}
	seg, _, ok := s.tables.SegmentOf(sub.vehicle.Brand, sub.vehicle.Model)
	if !ok {
		return nil
	}
	sources := s.tables.SourcesFor(sub.market)
	if len(sources) == 0 {
		return nil
	}
	src := sources[0]

	own := s.tables.BrandPrestige(sub.vehicle.Brand)
	ageFactor := numeric.Lookup(s.tables.AgeCurve, sub.curveAge(), 0.3)
	annual := float64(sub.baseline.AvgMileage)
	if annual <= 0 {
		annual = float64(s.tables.AnnualMileageFor(sub.fuelKey))
	}

	var out []dal.Listing
	used := 0
	for _, comp := range seg.Models {
		if used == maxTier3Models {
			break
		}
		if strings.EqualFold(comp.Brand, sub.vehicle.Brand) {
			continue
		}
		used++

		compPrestige := s.tables.BrandPrestige(comp.Brand)
		newPrice := sub.baseline.BaseNewPrice
		if b, known := s.tables.BaselineByKey(comp.Key()); known {
			newPrice = b.BaseNewPrice
		}
		adj := own / compPrestige
		price := math.Round(float64(newPrice) * ageFactor * tier3Discount * adj)

		for range 2 {
			out = append(out, dal.Listing{
				Source:      src,
				Tier:        dal.TierSegment,
				MatchScore:  s.uniform(0.45, 0.55),
				Price:       int(numeric.RoundTo(price*s.uniform(0.925, 1.075), 1000)),
				Mileage:     numeric.RoundInt(annual * float64(sub.age) * s.uniform(0.8, 1.2)),
				Year:        sub.vehicle.Year,
				Brand:       comp.Brand,
				Model:       comp.Model,
				IsDealer:    s.rng.Float64() > 0.5,
				Region:      nationalRegion,
				DaysListed:  s.rng.IntN(45) + 3,
				URL:         s.listingURL(src),
				PrestigeAdj: numeric.RoundPlaces(adj, 4),
			})
		}
	}
	return out
}

// synthesize runs the three tiers in order.
func (s *synthesizer) synthesize(sub subject) (dal.ListingSet, *dal.EquipmentAnalysis) {
	var set dal.ListingSet
	set.Tier1 = s.tier1(sub)
	tier2, equip := s.tier2(sub, len(set.Tier1))
	set.Tier2 = tier2
	set.Tier3 = s.tier3(sub, len(set.Tier1)+len(set.Tier2))
	return set, equip
}
