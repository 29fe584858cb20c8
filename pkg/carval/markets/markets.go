// Package markets compares the vehicle's value across US regions and
// across national markets, including the preliminary cost of moving it
// between countries.
package markets

import (
	"sort"
	"strings"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

// Valuer is the part of the engine the market views need.
type Valuer interface {
	Valuate(v dal.Vehicle) dal.ValuationResult
	Tables() *reference.Tables
}

const (
	defaultTargetFactor = 0.9
	defaultTargetVAT    = 0.2
	modelConfidence     = 65
	genericConfidence   = 40
)

// home is the valuation at the vehicle's own market, computed once per
// call and shared by every foreign market considered.
type home struct {
	tables  *reference.Tables
	vehicle dal.Vehicle
	country string
	gross   int
	nvv     int
	isEV    bool
}

func newHome(e Valuer, v dal.Vehicle) home {
	t := e.Tables()
	country := strings.ToUpper(v.Market())
	gross := e.Valuate(v).TotalValue
	vat, _ := t.VATRate(country)
	return home{
		tables:  t,
		vehicle: v,
		country: country,
		gross:   gross,
		nvv:     netOf(gross, vat),
		isEV:    numeric.IsElectric(v.Fuel),
	}
}

func netOf(gross int, vat float64) int {
	return numeric.RoundInt(float64(gross) / (1 + vat))
}

// targetVAT is the VAT of a destination, 20% when unknown.
func targetVAT(t *reference.Tables, country string) float64 {
	if r, ok := t.VATRate(country); ok {
		return r
	}
	return defaultTargetVAT
}

func percentOf(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return numeric.RoundInt(float64(part) / float64(whole) * 100)
}

// foreignMarkets lists the configured markets other than the home one.
func foreignMarkets(t *reference.Tables, homeCountry string) []string {
	out := make([]string, 0, len(t.Markets))
	for _, m := range t.Markets {
		if m != homeCountry {
			out = append(out, m)
		}
	}
	return out
}

// Regional values the vehicle in every US region by applying each region's
// fuel coefficient to the valuation total.
func Regional(e Valuer, v dal.Vehicle) dal.RegionalResult {
	t := e.Tables()
	base := e.Valuate(v).TotalValue
	fuelKey := numeric.FuelKey(v.Fuel)
	homeID, _ := t.Region(v.Region())

	order := append([]string(nil), t.RegionOrder...)
	listed := make(map[string]bool, len(order))
	for _, id := range order {
		listed[id] = true
	}
	var rest []string
	for id := range t.Regions {
		if !listed[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	res := dal.RegionalResult{
		HomeRegion: homeID,
		HomeValue:  base,
		Regions:    make(map[string]dal.RegionValue, len(order)),
	}
	for _, id := range order {
		r, ok := t.Regions[id]
		if !ok {
			continue
		}
		coeff := r.FuelCoeff(fuelKey)
		value := int(numeric.RoundTo(float64(base)*coeff, 1000))
		res.Regions[id] = dal.RegionValue{
			Name:        r.Name,
			Short:       r.Short,
			Lat:         r.Lat,
			Lng:         r.Lng,
			Color:       r.Color,
			Country:     r.Country,
			Value:       value,
			Coeff:       coeff,
			IsHome:      id == homeID,
			Diff:        value - base,
			DiffPercent: numeric.RoundInt((coeff - 1) * 100),
		}
		res.Order = append(res.Order, id)
	}
	return res
}

// NetValue strips the home country's VAT from the valuation total. Countries
// without a VAT entry, the US among them, net to the gross value.
func NetValue(e Valuer, v dal.Vehicle) dal.NetValueResult {
	t := e.Tables()
	gross := e.Valuate(v).TotalValue
	vat, _ := t.VATRate(v.Market())
	nvv := netOf(gross, vat)
	return dal.NetValueResult{
		NetValue:   nvv,
		GrossValue: gross,
		VATRate:    vat,
		VATAmount:  gross - nvv,
	}
}
