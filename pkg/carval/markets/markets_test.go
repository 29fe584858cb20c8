package markets

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/engine"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

// fixedValuer values every vehicle at the same total.
type fixedValuer struct {
	tables *reference.Tables
	total  int
}

func (f fixedValuer) Valuate(dal.Vehicle) dal.ValuationResult {
	return dal.ValuationResult{TotalValue: f.total}
}

func (f fixedValuer) Tables() *reference.Tables { return f.tables }

func fixed(total int) fixedValuer {
	return fixedValuer{tables: reference.Default(), total: total}
}

func teslaY() dal.Vehicle {
	return dal.Vehicle{Brand: "Tesla", Model: "Model Y", Year: 2023, Fuel: "Electric", RegRegion: "westcoast", RegCountry: "US"}
}

func TestRegional(t *testing.T) {
	res := Regional(fixed(40000), teslaY())

	assert.Equal(t, "westcoast", res.HomeRegion)
	assert.Equal(t, 40000, res.HomeValue)
	assert.Equal(t, []string{"northeast", "southeast", "midwest", "southwest", "westcoast"}, res.Order)

	tests := []struct {
		id      string
		value   int
		percent int
		home    bool
	}{
		{id: "northeast", value: 43000, percent: 8},
		{id: "southeast", value: 38000, percent: -4},
		{id: "midwest", value: 38000, percent: -6},
		{id: "southwest", value: 37000, percent: -7},
		{id: "westcoast", value: 45000, percent: 12, home: true},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			r, ok := res.Regions[tc.id]
			require.True(t, ok)
			assert.Equal(t, tc.value, r.Value)
			assert.Equal(t, tc.value-40000, r.Diff)
			assert.Equal(t, tc.percent, r.DiffPercent)
			assert.Equal(t, tc.home, r.IsHome)
			assert.Equal(t, "US", r.Country)
		})
	}
}

func TestRegionalUnknownRegionDefaultsHome(t *testing.T) {
	v := teslaY()
	v.RegRegion = "atlantis"
	res := Regional(fixed(40000), v)

	assert.Equal(t, "westcoast", res.HomeRegion)
	assert.True(t, res.Regions["westcoast"].IsHome)
}

func TestNetValue(t *testing.T) {
	tests := []struct {
		name    string
		country string
		want    dal.NetValueResult
	}{
		{name: "NoVAT", country: "US", want: dal.NetValueResult{NetValue: 40000, GrossValue: 40000}},
		{name: "Sweden", country: "SE", want: dal.NetValueResult{NetValue: 32000, GrossValue: 40000, VATRate: 0.25, VATAmount: 8000}},
		{name: "Unknown", country: "XX", want: dal.NetValueResult{NetValue: 40000, GrossValue: 40000}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := teslaY()
			v.RegCountry = tc.country
			assert.Equal(t, tc.want, NetValue(fixed(40000), v))
		})
	}
}

func TestExportFees(t *testing.T) {
	tables := reference.Default()

	de := ExportFees(tables, "de")
	assert.Equal(t, "DE", de.Country)
	assert.Equal(t, 295, de.Total)
	assert.True(t, de.IsPreliminary)
	assert.Equal(t, "Abmeldung + Ausfuhrkennzeichen", de.Desc)

	unknown := ExportFees(tables, "XX")
	assert.Equal(t, "XX", unknown.Country)
	assert.Equal(t, 600, unknown.Total)
}

func TestImportFees(t *testing.T) {
	tables := reference.Default()
	tests := []struct {
		name    string
		country string
		ev      bool
		regTax  int
		vat     int
		bonus   int
		total   int
	}{
		{name: "DenmarkEVReducedRate", country: "DK", ev: true, regTax: 10200, vat: 7500, total: 20400},
		{name: "DenmarkCombustion", country: "DK", regTax: 25500, vat: 7500, total: 35700},
		{name: "NetherlandsEVExempt", country: "NL", ev: true, vat: 6300, total: 6920},
		{name: "NetherlandsCombustion", country: "NL", regTax: 12600, vat: 6300, total: 19520},
		{name: "GermanyEVBonus", country: "DE", ev: true, vat: 5700, bonus: 50400, total: -44290},
		{name: "GermanyCombustion", country: "DE", vat: 5700, total: 6110},
		{name: "UnitedStates", country: "US", total: 1050},
		{name: "UnknownUsesUS", country: "XX", ev: true, total: 1050},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ImportFees(tables, tc.country, 30000, tc.ev)
			assert.Equal(t, tc.regTax, got.RegTax)
			assert.Equal(t, tc.vat, got.ImportVAT)
			assert.Equal(t, tc.bonus, got.EVBonus)
			assert.Equal(t, tc.total, got.Total)
			assert.Equal(t, got.BaseFees+got.RegTax+got.ImportVAT-got.EVBonus, got.Total)
			assert.True(t, got.IsPreliminary)
		})
	}
}

func TestSpeculativeModelSpecific(t *testing.T) {
	got := Speculative(fixed(40000), teslaY(), "no")

	assert.Equal(t, "NO", got.TargetMarket)
	assert.Equal(t, 40000, got.HomeNVV)
	assert.Equal(t, 1.14, got.ModelFactor)
	assert.Equal(t, 0.25, got.TargetVAT)
	assert.Equal(t, 57000, got.SpeculativeGross)
	assert.Equal(t, 17000, got.Diff)
	assert.Equal(t, 600, got.ExportFees.Total)
	assert.Equal(t, 17100, got.ImportFees.Total)
	assert.Equal(t, 17700, got.TotalFees)
	assert.Equal(t, -700, got.NetDiff)
	assert.True(t, got.IsModelSpecific)
	assert.Equal(t, 65, got.Confidence)
}

func TestSpeculativeGenericFactor(t *testing.T) {
	v := dal.Vehicle{Brand: "Acme", Model: "Roadster", Fuel: "Gas"}
	got := Speculative(fixed(40000), v, "DE")

	assert.False(t, got.IsModelSpecific)
	assert.Equal(t, 40, got.Confidence)
	assert.Equal(t, 0.9, got.ModelFactor)
	assert.Equal(t, 43000, got.SpeculativeGross)
}

func TestSpeculativeUnknownTargetVAT(t *testing.T) {
	v := teslaY()
	v.RegCountry = "SE"
	got := Speculative(fixed(40000), v, "US")

	// US carries no VAT entry, so the 20% default applies.
	assert.Equal(t, 0.2, got.TargetVAT)
	assert.Equal(t, 32000, got.HomeNVV)
}

func TestBestSellMarket(t *testing.T) {
	res := BestSellMarket(fixed(40000), teslaY())

	assert.Equal(t, "US", res.HomeMarket)
	assert.Equal(t, 40000, res.HomeValue)
	assert.Equal(t, dal.Disclaimer, res.Disclaimer)
	require.Len(t, res.Results, 12)
	require.NotNil(t, res.BestMarket)
	assert.Equal(t, res.Results[0], *res.BestMarket)

	assert.True(t, sort.SliceIsSorted(res.Results, func(i, j int) bool {
		return res.Results[i].NetVsHome > res.Results[j].NetVsHome
	}))
	var opportunities int
	for _, r := range res.Results {
		assert.NotEqual(t, "US", r.Country)
		assert.Equal(t, r.NetVsHome > 0, r.IsOpportunity)
		assert.Equal(t, r.ExportFees+r.ImportFees, r.TotalFees)
		if r.IsOpportunity {
			opportunities++
		}
	}
	assert.Len(t, res.Opportunities, opportunities)
}

func TestBestBuyMarket(t *testing.T) {
	res := BestBuyMarket(fixed(40000), teslaY())

	require.Len(t, res.Results, 12)
	require.NotNil(t, res.BestBuy)
	assert.Equal(t, res.Results[0], *res.BestBuy)
	assert.True(t, sort.SliceIsSorted(res.Results, func(i, j int) bool {
		return res.Results[i].Savings > res.Results[j].Savings
	}))
	for _, r := range res.Results {
		assert.Equal(t, r.ForeignNVV+r.ExportFees+r.ImportFees, r.TotalCost)
		assert.Equal(t, 40000-r.TotalCost, r.Savings)
		assert.Equal(t, r.Savings > 0, r.IsOpportunity)
	}
}

func TestBestMarketsWithNoForeignMarkets(t *testing.T) {
	f := fixed(40000)
	f.tables.Markets = []string{"US"}

	sell := BestSellMarket(f, teslaY())
	assert.Empty(t, sell.Results)
	assert.Nil(t, sell.BestMarket)
	assert.NotNil(t, sell.Opportunities)

	buy := BestBuyMarket(f, teslaY())
	assert.Empty(t, buy.Results)
	assert.Nil(t, buy.BestBuy)
}

func TestCompareFeesMatchBestMarkets(t *testing.T) {
	vehicles := map[string]dal.Vehicle{
		"ElectricUS":   teslaY(),
		"CombustionSE": {Brand: "BMW", Model: "X3", Year: 2021, Fuel: "Gas", RegCountry: "SE"},
		"UnknownModel": {Brand: "Acme", Model: "Roadster", Year: 2019, Fuel: "Diesel"},
	}
	for name, v := range vehicles {
		t.Run(name, func(t *testing.T) {
			e := fixed(52000)
			sell := BestSellMarket(e, v)
			for _, r := range sell.Results {
				c := Compare(e, v, sell.HomeMarket, r.Country)
				assert.Equal(t, r.TotalFees, c.TotalFees, r.Country)
				assert.Equal(t, r.NetVsHome, c.NetDiff, r.Country)
				assert.Equal(t, r.SpeculativeValue, c.To.Value, r.Country)
			}

			buy := BestBuyMarket(e, v)
			for _, r := range buy.Results {
				c := Compare(e, v, r.Country, buy.HomeMarket)
				assert.Equal(t, r.ExportFees+r.ImportFees, c.TotalFees, r.Country)
				assert.Equal(t, r.ForeignNVV, c.From.NVV, r.Country)
				assert.Equal(t, r.ForeignPrice, c.From.Value, r.Country)
			}
		})
	}
}

func TestCompareDefaultsToHome(t *testing.T) {
	c := Compare(fixed(40000), teslaY(), "", "de")

	assert.Equal(t, "US", c.From.Market)
	assert.Equal(t, 40000, c.From.Value)
	assert.Equal(t, "DE", c.To.Market)
	assert.Zero(t, c.To.NVV)
	assert.Equal(t, dal.Disclaimer, c.Disclaimer)
	assert.Equal(t, c.To.Value-c.From.Value-c.TotalFees, c.NetDiff)
}

func TestMarketsAgainstEngine(t *testing.T) {
	e := engine.New(reference.Default(), engine.WithSeed(5), engine.WithReferenceYear(2026))
	v := teslaY()
	total := e.Valuate(v).TotalValue

	assert.Equal(t, total, NetValue(e, v).GrossValue)
	assert.Equal(t, total, Regional(e, v).HomeValue)
	assert.Equal(t, total, BestSellMarket(e, v).HomeValue)
}
