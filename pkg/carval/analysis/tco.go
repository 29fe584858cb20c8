package analysis

import (
	"math"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
)

const (
	defaultInsurance     = 180
	tireReserve          = 35
	fallbackCurrentValue = 30000
)

// fuelCostPerMile is a flat energy price per mile by drivetrain.
var fuelCostPerMile = map[string]float64{
	numeric.FuelBEV:    0.04,
	numeric.FuelPHEV:   0.06,
	numeric.FuelHybrid: 0.08,
	numeric.FuelDiesel: 0.12,
	numeric.FuelGas:    0.14,
}

func serviceCost(fuelKey string) int {
	switch fuelKey {
	case numeric.FuelBEV:
		return 50
	case numeric.FuelHybrid:
		return 65
	default:
		return 85
	}
}

// TCO estimates the monthly and annual cost of keeping the vehicle.
func TCO(e Valuer, v dal.Vehicle) dal.TCOResult {
	return tco(e, v, e.Valuate(v).TotalValue)
}

func tco(e Valuer, v dal.Vehicle, current int) dal.TCOResult {
	fuelKey := numeric.FuelKey(v.Fuel)
	a := age(e, v)
	perMile := fuelCostPerMile[fuelKey]
	annualMileage := float64(numeric.ParseMileage(v.Mileage)) / float64(max(a, 1))

	insurance := defaultInsurance
	if v.InsurancePerMonth > 0 {
		insurance = numeric.RoundInt(v.InsurancePerMonth)
	}
	fuel := numeric.RoundInt(perMile * annualMileage / 12)
	if v.ActualFuelCost > 0 {
		fuel = numeric.RoundInt(v.ActualFuelCost)
	}
	if current <= 0 {
		current = fallbackCurrentValue
	}

	m := dal.CostBreakdown{
		Depreciation: numeric.RoundInt(float64(current) * monthlyRate(e.Tables(), a, fuelKey)),
		Insurance:    insurance,
		Tax:          numeric.RoundInt(math.Round(v.AnnualTax) / 12),
		Service:      serviceCost(fuelKey),
		Tires:        tireReserve,
		Fuel:         fuel,
	}
	m.Total = m.Depreciation + m.Insurance + m.Tax + m.Service + m.Tires + m.Fuel

	return dal.TCOResult{
		Monthly:         m,
		Annual:          m.Scale(12),
		FuelCostPerMile: perMile,
		AnnualMileage:   numeric.RoundInt(annualMileage),
	}
}
