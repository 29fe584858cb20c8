// Package analysis derives time and cost views from a valuation: the value
// timeline, total cost of ownership, the depreciation curve and swap
// comparisons against alternative vehicles.
package analysis

import (
	"math"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

// Valuer is the part of the engine the analyses need.
type Valuer interface {
	Valuate(v dal.Vehicle) dal.ValuationResult
	Tables() *reference.Tables
	ReferenceYear() int
}

const (
	defaultMonthlyRate = 0.004
	minMonthlyRate     = 0.002
)

// fuelRateOffset nudges the monthly depreciation rate by drivetrain.
func fuelRateOffset(fuelKey string) float64 {
	switch fuelKey {
	case numeric.FuelBEV:
		return -0.001
	case numeric.FuelHybrid:
		return -0.0005
	case numeric.FuelDiesel:
		return 0.001
	}
	return 0
}

// monthlyRate is the share of value lost per month at the given age.
func monthlyRate(t *reference.Tables, age int, fuelKey string) float64 {
	base := numeric.Lookup(t.MonthlyDepreciation, float64(age*12), defaultMonthlyRate)
	return numeric.RoundPlaces(math.Max(minMonthlyRate, base+fuelRateOffset(fuelKey)), 5)
}

func age(e Valuer, v dal.Vehicle) int {
	return max(e.ReferenceYear()-v.Year, 0)
}
