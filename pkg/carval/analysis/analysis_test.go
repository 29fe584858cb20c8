package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/engine"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

const testYear = 2026

// stubValuer returns fixed valuations keyed by brand.
type stubValuer struct {
	tables  *reference.Tables
	results map[string]dal.ValuationResult
	seen    []dal.Vehicle
}

func newStub(results map[string]dal.ValuationResult) *stubValuer {
	return &stubValuer{tables: reference.Default(), results: results}
}

func (s *stubValuer) Valuate(v dal.Vehicle) dal.ValuationResult {
	s.seen = append(s.seen, v)
	return s.results[v.Brand]
}

func (s *stubValuer) Tables() *reference.Tables { return s.tables }

func (s *stubValuer) ReferenceYear() int { return testYear }

func TestMonthlyRate(t *testing.T) {
	tables := reference.Default()
	tests := []struct {
		name string
		age  int
		fuel string
		want float64
	}{
		{name: "NewDiesel", age: 0, fuel: "diesel", want: 0.019},
		{name: "ThreeYearGas", age: 3, fuel: "gas", want: 0.007},
		{name: "ThreeYearBEV", age: 3, fuel: "bev", want: 0.006},
		{name: "ThreeYearHybrid", age: 3, fuel: "hybrid", want: 0.0065},
		{name: "ThreeYearPHEV", age: 3, fuel: "phev", want: 0.007},
		{name: "FlooredOldBEV", age: 12, fuel: "bev", want: 0.002},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, monthlyRate(tables, tc.age, tc.fuel), 1e-9)
		})
	}
}

func TestTimeline(t *testing.T) {
	stub := newStub(map[string]dal.ValuationResult{"Honda": {TotalValue: 30000}})
	res := Timeline(stub, dal.Vehicle{Brand: "Honda", Model: "Civic", Year: 2023, Fuel: "Gas"})

	require.Len(t, res.Months, 7)
	wantValues := []int{30700, 30400, 30200, 30000, 29800, 29600, 29300}
	wantLabels := []string{"3 mo ago", "2 mo ago", "1 mo ago", "Today", "+1 mo", "+2 mo", "+3 mo"}
	for i, m := range res.Months {
		assert.Equal(t, i-3, m.Month)
		assert.Equal(t, wantValues[i], m.Value, m.Label)
		assert.Equal(t, wantLabels[i], m.Label)
		assert.Equal(t, m.Value-30000, m.Change)
		assert.Equal(t, i > 3, m.IsProjection)
		assert.Equal(t, i == 3, m.IsCurrent)
	}
	assert.Equal(t, 2.3, res.Months[0].ChangePercent)

	assert.Equal(t, 30000, res.CurrentValue)
	assert.Equal(t, 30700, res.ThreeMonthsAgo)
	assert.Equal(t, -700, res.Trend)
	assert.Equal(t, -2.3, res.TrendPercent)
	assert.Equal(t, 210, res.DepreciationPerMonth)
	assert.Equal(t, 2520, res.DepreciationPerYear)
	assert.Equal(t, 0.007, res.MonthlyDepRate)
	assert.Zero(t, res.FuelAdj)
	assert.Equal(t, 29300, res.Projection3m)
}

func TestTimelineZeroValue(t *testing.T) {
	stub := newStub(map[string]dal.ValuationResult{})
	res := Timeline(stub, dal.Vehicle{Brand: "Nobody", Year: 2020, Fuel: "Electric"})

	assert.Zero(t, res.CurrentValue)
	assert.Zero(t, res.TrendPercent)
	assert.Equal(t, -0.001, res.FuelAdj)
	for _, m := range res.Months {
		assert.Zero(t, m.Value)
		assert.Zero(t, m.ChangePercent)
	}
}

func TestTCO(t *testing.T) {
	stub := newStub(map[string]dal.ValuationResult{"Honda": {TotalValue: 30000}})

	tests := []struct {
		name    string
		vehicle dal.Vehicle
		want    dal.CostBreakdown
		perMile float64
		annual  int
	}{
		{
			name:    "Defaults",
			vehicle: dal.Vehicle{Brand: "Honda", Year: 2023, Fuel: "Gas", Mileage: "36,000", AnnualTax: 1200},
			want:    dal.CostBreakdown{Depreciation: 210, Insurance: 180, Tax: 100, Service: 85, Tires: 35, Fuel: 140, Total: 750},
			perMile: 0.14,
			annual:  12000,
		},
		{
			name: "RecordedCosts",
			vehicle: dal.Vehicle{Brand: "Honda", Year: 2023, Fuel: "Gas", Mileage: "36000",
				InsurancePerMonth: 210.6, ActualFuelCost: 95.4},
			want:    dal.CostBreakdown{Depreciation: 210, Insurance: 211, Service: 85, Tires: 35, Fuel: 95, Total: 636},
			perMile: 0.14,
			annual:  12000,
		},
		{
			name:    "Electric",
			vehicle: dal.Vehicle{Brand: "Honda", Year: 2023, Fuel: "Electric", Mileage: "30000"},
			want:    dal.CostBreakdown{Depreciation: 180, Insurance: 180, Service: 50, Tires: 35, Fuel: 33, Total: 478},
			perMile: 0.04,
			annual:  10000,
		},
		{
			name:    "BrandNewNoValuation",
			vehicle: dal.Vehicle{Brand: "Unknown", Year: testYear, Fuel: "Hybrid", Mileage: "6000"},
			want:    dal.CostBreakdown{Depreciation: 525, Insurance: 180, Service: 65, Tires: 35, Fuel: 40, Total: 845},
			perMile: 0.08,
			annual:  6000,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := TCO(stub, tc.vehicle)
			assert.Equal(t, tc.want, res.Monthly)
			assert.Equal(t, tc.want.Scale(12), res.Annual)
			assert.Equal(t, tc.perMile, res.FuelCostPerMile)
			assert.Equal(t, tc.annual, res.AnnualMileage)
		})
	}
}

func TestDepreciation(t *testing.T) {
	stub := newStub(map[string]dal.ValuationResult{"Honda": {TotalValue: 26000, BaseNewPrice: 40000}})
	res := Depreciation(stub, dal.Vehicle{Brand: "Honda", Year: 2023})

	require.Len(t, res.Curve, 11)
	assert.Equal(t, dal.CurvePoint{Year: 0, Value: 40000, Factor: 100}, res.Curve[0])
	assert.Equal(t, 35000, res.Curve[1].Value)
	assert.Equal(t, 87, res.Curve[1].Factor)
	assert.Equal(t, 5000, res.Curve[1].TotalLoss)
	assert.Equal(t, 13, res.Curve[1].LossPercent)
	assert.Equal(t, 32000, res.Curve[2].Value)
	assert.Equal(t, 31000, res.Curve[3].Value)

	assert.Equal(t, 3, res.CurrentAge)
	assert.Equal(t, 26000, res.CurrentValue)
	assert.Equal(t, 40000, res.NewPrice)
	assert.Equal(t, 14000, res.TotalLoss)
	assert.Equal(t, 35, res.TotalLossPercent)
	assert.Equal(t, 1000, res.DepPerYear)
	assert.Equal(t, 83, res.DepPerMonth)

	require.Len(t, res.YearlyRates, 11)
	assert.Equal(t, dal.YearlyRate{Year: 0}, res.YearlyRates[0])
	assert.Equal(t, dal.YearlyRate{Year: 1, Loss: 5000, LossPerMonth: 417}, res.YearlyRates[1])
}

func TestDepreciationBeyondCurve(t *testing.T) {
	stub := newStub(map[string]dal.ValuationResult{"Honda": {TotalValue: 5000, BaseNewPrice: 20000}})
	res := Depreciation(stub, dal.Vehicle{Brand: "Honda", Year: 2008})

	assert.Equal(t, 18, res.CurrentAge)
	assert.Equal(t, res.Curve[9].Value-res.Curve[10].Value, res.DepPerYear)
	assert.Equal(t, 75, res.TotalLossPercent)
}

func TestDepreciationWithoutNewPrice(t *testing.T) {
	res := Depreciation(newStub(nil), dal.Vehicle{Brand: "Nobody", Year: 2020})
	assert.Zero(t, res.TotalLossPercent)
	for _, p := range res.Curve {
		assert.Zero(t, p.Value)
	}
}

func TestSwap(t *testing.T) {
	stub := newStub(map[string]dal.ValuationResult{
		"Honda": {TotalValue: 20000},
		"Tesla": {TotalValue: 40000},
		"Volvo": {TotalValue: 38000},
		"Kia":   {TotalValue: 35000},
	})
	subject := dal.Vehicle{Brand: "Honda", Model: "Civic", Year: 2020, Fuel: "Gas", Mileage: "72000",
		InsurancePerMonth: 400, AnnualTax: 2400, ActualFuelCost: 300, RegRegion: "midwest"}

	got := Swap(stub, subject)
	require.Len(t, got, 3)

	breakEven := func(n int) *int { return &n }
	want := []dal.SwapAlternative{
		{Brand: "Tesla", Model: "Model Y", Year: 2024, Fuel: "Electric", Value: 40000, CurrentValue: 20000,
			PriceDiff: 20000, MonthlyTCO: 586, CurrentMonthlyTCO: 1100, MonthlyDiff: -514,
			SavingsPerYear: 6168, BreakEvenMonths: breakEven(39)},
		{Brand: "Volvo", Model: "XC40 Recharge", Year: 2024, Fuel: "Electric", Value: 38000, CurrentValue: 20000,
			PriceDiff: 18000, MonthlyTCO: 570, CurrentMonthlyTCO: 1100, MonthlyDiff: -530,
			SavingsPerYear: 6360, BreakEvenMonths: breakEven(34)},
		{Brand: "Kia", Model: "EV6", Year: 2024, Fuel: "Electric", Value: 35000, CurrentValue: 20000,
			PriceDiff: 15000, MonthlyTCO: 546, CurrentMonthlyTCO: 1100, MonthlyDiff: -554,
			SavingsPerYear: 6648, BreakEvenMonths: breakEven(28)},
	}
	assert.Equal(t, want, got)

	for _, v := range stub.seen[1:] {
		assert.Equal(t, "midwest", v.RegRegion)
		assert.Equal(t, "US", v.RegCountry)
	}
}

func TestSwapWithoutBreakEven(t *testing.T) {
	stub := newStub(map[string]dal.ValuationResult{
		"Porsche": {TotalValue: 90000},
		"Tesla":   {TotalValue: 40000},
		"Volvo":   {TotalValue: 38000},
		"Kia":     {TotalValue: 35000},
	})
	got := Swap(stub, dal.Vehicle{Brand: "Porsche", Model: "Cayenne", Year: 2022, Fuel: "Gas", Mileage: "40000"})

	for _, s := range got {
		assert.Negative(t, s.PriceDiff)
		assert.Nil(t, s.BreakEvenMonths)
		if s.MonthlyDiff < 0 {
			assert.Equal(t, -s.MonthlyDiff*12, s.SavingsPerYear)
		} else {
			assert.Zero(t, s.SavingsPerYear)
		}
	}
}

func TestAnalysesAgainstEngine(t *testing.T) {
	e := engine.New(reference.Default(), engine.WithSeed(11), engine.WithReferenceYear(testYear))
	v := dal.Vehicle{Brand: "Tesla", Model: "Model Y", Year: 2023, Fuel: "Electric", Mileage: "18200",
		DriveVariant: "AWD", MotorVariant: "Long Range", BaseMotor: "Standard"}
	total := e.Valuate(v).TotalValue

	tl := Timeline(e, v)
	assert.Equal(t, total, tl.CurrentValue)
	assert.Greater(t, tl.ThreeMonthsAgo, tl.Projection3m)

	dep := Depreciation(e, v)
	assert.Equal(t, 44990, dep.NewPrice)
	assert.Equal(t, total, dep.CurrentValue)

	swaps := Swap(e, v)
	require.Len(t, swaps, 3)
	for _, s := range swaps {
		assert.Equal(t, total, s.CurrentValue)
		assert.Equal(t, testYear-2, s.Year)
	}
}
