package analysis

import (
	"math"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
)

// alternatives are the fixed comparison vehicles, two model-years old and
// registered where the subject is.
func alternatives(refYear int, region string) []dal.Vehicle {
	year := refYear - 2
	return []dal.Vehicle{
		{
			Brand: "Tesla", Model: "Model Y", Year: year, Fuel: "Electric", Body: "SUV", Horsepower: 299,
			Mileage: "800", RegRegion: region, RegCountry: "US",
			MotorVariant: "Long Range", BaseMotor: "Standard", FuelType: "BEV", BaseFuel: "BEV",
			DriveVariant: "AWD", TransVariant: "auto", BaseTrans: "auto",
			TrimLevel: "Long Range", BaseTrim: "Standard", PaintType: "metallic",
			ExtraEquipment: []string{"Autopilot"},
		},
		{
			Brand: "Volvo", Model: "XC40 Recharge", Year: year, Fuel: "Electric", Body: "SUV", Horsepower: 231,
			Mileage: "600", RegRegion: region, RegCountry: "US",
			MotorVariant: "Recharge", BaseMotor: "B4", FuelType: "BEV", BaseFuel: "gas",
			DriveVariant: "FWD", TransVariant: "auto", BaseTrans: "auto",
			TrimLevel: "Plus", BaseTrim: "Core", PaintType: "metallic",
		},
		{
			Brand: "Kia", Model: "EV6", Year: year, Fuel: "Electric", Body: "SUV", Horsepower: 325,
			Mileage: "500", RegRegion: region, RegCountry: "US",
			MotorVariant: "Long Range", BaseMotor: "Standard", FuelType: "BEV", BaseFuel: "BEV",
			DriveVariant: "RWD", TransVariant: "auto", BaseTrans: "auto",
			TrimLevel: "GT-Line", BaseTrim: "Standard", PaintType: "metallic",
		},
	}
}

// Swap compares the vehicle with each alternative on price and monthly
// running cost. BreakEvenMonths is set only when the alternative costs more
// to buy and less to run.
func Swap(e Valuer, v dal.Vehicle) []dal.SwapAlternative {
	current := e.Valuate(v).TotalValue
	currentTCO := tco(e, v, current).Monthly.Total

	alts := alternatives(e.ReferenceYear(), v.Region())
	out := make([]dal.SwapAlternative, 0, len(alts))
	for _, alt := range alts {
		value := e.Valuate(alt).TotalValue
		altTCO := tco(e, alt, value).Monthly.Total

		priceDiff := value - current
		monthlyDiff := altTCO - currentTCO
		s := dal.SwapAlternative{
			Brand:             alt.Brand,
			Model:             alt.Model,
			Year:              alt.Year,
			Fuel:              alt.Fuel,
			Value:             value,
			CurrentValue:      current,
			PriceDiff:         priceDiff,
			MonthlyTCO:        altTCO,
			CurrentMonthlyTCO: currentTCO,
			MonthlyDiff:       monthlyDiff,
		}
		if monthlyDiff < 0 {
			s.SavingsPerYear = -monthlyDiff * 12
			if priceDiff > 0 {
				months := int(math.Ceil(float64(priceDiff) / float64(-monthlyDiff)))
				s.BreakEvenMonths = &months
			}
		}
		out = append(out, s)
	}
	return out
}
