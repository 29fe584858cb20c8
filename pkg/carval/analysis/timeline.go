package analysis

import (
	"fmt"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
)

const (
	seasonNoise    = 0.0003
	timelineMonths = 3
)

// Timeline values the vehicle today and walks the monthly rate three months
// back and three months forward.
func Timeline(e Valuer, v dal.Vehicle) dal.TimelineResult {
	return timeline(e, v, e.Valuate(v).TotalValue)
}

func timeline(e Valuer, v dal.Vehicle, current int) dal.TimelineResult {
	fuelKey := numeric.FuelKey(v.Fuel)
	rate := monthlyRate(e.Tables(), age(e, v), fuelKey)

	months := make([]dal.TimelineMonth, 0, 2*timelineMonths+1)
	for i := -timelineMonths; i <= timelineMonths; i++ {
		value := current
		label := "Today"
		switch {
		case i < 0:
			n := float64(-i)
			value = int(numeric.RoundTo(float64(current)*(1+rate*n+seasonNoise*n), 100))
			label = fmt.Sprintf("%d mo ago", -i)
		case i > 0:
			n := float64(i)
			value = int(numeric.RoundTo(float64(current)*(1-rate*n-seasonNoise*n), 100))
			label = fmt.Sprintf("+%d mo", i)
		}
		months = append(months, dal.TimelineMonth{
			Month:         i,
			Label:         label,
			Value:         value,
			Change:        value - current,
			ChangePercent: numeric.Percent(float64(value-current), float64(current), 1),
			IsProjection:  i > 0,
			IsCurrent:     i == 0,
		})
	}

	threeAgo := months[0].Value
	if threeAgo == 0 {
		threeAgo = current
	}
	trend := current - threeAgo
	perMonth := numeric.RoundInt(float64(current) * rate)

	return dal.TimelineResult{
		Months:               months,
		CurrentValue:         current,
		ThreeMonthsAgo:       threeAgo,
		Trend:                trend,
		TrendPercent:         numeric.Percent(float64(trend), float64(threeAgo), 1),
		DepreciationPerMonth: perMonth,
		DepreciationPerYear:  perMonth * 12,
		MonthlyDepRate:       rate,
		FuelAdj:              fuelRateOffset(fuelKey),
		Projection3m:         months[len(months)-1].Value,
	}
}
