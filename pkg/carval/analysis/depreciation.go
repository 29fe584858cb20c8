package analysis

import (
	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

const curveYears = 10

// Depreciation builds the value curve over the first ten years from the
// baseline new price, compounding the monthly rate month by month.
func Depreciation(e Valuer, v dal.Vehicle) dal.DepreciationResult {
	val := e.Valuate(v)
	a := age(e, v)
	newPrice := val.BaseNewPrice
	curve := depreciationCurve(e.Tables(), newPrice)

	idx := min(a, curveYears)
	prev := curve[max(idx-1, 0)].Value
	depPerYear := prev - curve[idx].Value

	rates := make([]dal.YearlyRate, len(curve))
	for i, p := range curve {
		rates[i].Year = p.Year
		if i > 0 {
			loss := curve[i-1].Value - p.Value
			rates[i].Loss = loss
			rates[i].LossPerMonth = numeric.RoundInt(float64(loss) / 12)
		}
	}

	var lossPct int
	if newPrice > 0 {
		lossPct = numeric.RoundInt((1 - float64(val.TotalValue)/float64(newPrice)) * 100)
	}

	return dal.DepreciationResult{
		Curve:            curve,
		CurrentAge:       a,
		CurrentValue:     val.TotalValue,
		NewPrice:         newPrice,
		TotalLoss:        newPrice - val.TotalValue,
		TotalLossPercent: lossPct,
		DepPerYear:       depPerYear,
		DepPerMonth:      numeric.RoundInt(float64(depPerYear) / 12),
		YearlyRates:      rates,
	}
}

func depreciationCurve(t *reference.Tables, newPrice int) []dal.CurvePoint {
	curve := make([]dal.CurvePoint, 0, curveYears+1)
	for yr := 0; yr <= curveYears; yr++ {
		months := yr * 12
		rate := numeric.Lookup(t.MonthlyDepreciation, float64(months), minMonthlyRate)
		factor := 1.0
		for range months {
			factor *= 1 - rate
		}
		value := int(numeric.RoundTo(float64(newPrice)*factor, 1000))
		curve = append(curve, dal.CurvePoint{
			Year:        yr,
			Value:       value,
			Factor:      numeric.RoundInt(factor * 100),
			TotalLoss:   newPrice - value,
			LossPercent: numeric.RoundInt((1 - factor) * 100),
		})
	}
	return curve
}
