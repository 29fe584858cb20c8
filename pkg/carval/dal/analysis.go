package dal

// TimelineMonth is one point of the value timeline, relative to today.
type TimelineMonth struct {
	Month         int     `json:"month"`
	Label         string  `json:"label"`
	Value         int     `json:"value"`
	Change        int     `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	IsProjection  bool    `json:"isProjection"`
	IsCurrent     bool    `json:"isCurrent"`
}

// TimelineResult is the trailing and projected value over three months
// either side of today.
type TimelineResult struct {
	Months               []TimelineMonth `json:"months"`
	CurrentValue         int             `json:"currentValue"`
	ThreeMonthsAgo       int             `json:"threeMonthsAgo"`
	Trend                int             `json:"trend"`
	TrendPercent         float64         `json:"trendPercent"`
	DepreciationPerMonth int             `json:"depreciationPerMonth"`
	DepreciationPerYear  int             `json:"depreciationPerYear"`
	MonthlyDepRate       float64         `json:"monthlyDepRate"`
	FuelAdj              float64         `json:"fuelAdj"`
	Projection3m         int             `json:"projection3m"`
}

// CostBreakdown splits running costs into buckets.
type CostBreakdown struct {
	Depreciation int `json:"depreciation"`
	Insurance    int `json:"insurance"`
	Tax          int `json:"tax"`
	Service      int `json:"service"`
	Tires        int `json:"tires"`
	Fuel         int `json:"fuel"`
	Total        int `json:"total"`
}

// Scale multiplies every bucket by n.
func (c CostBreakdown) Scale(n int) CostBreakdown {
	return CostBreakdown{
		Depreciation: c.Depreciation * n,
		Insurance:    c.Insurance * n,
		Tax:          c.Tax * n,
		Service:      c.Service * n,
		Tires:        c.Tires * n,
		Fuel:         c.Fuel * n,
		Total:        c.Total * n,
	}
}

// TCOResult is the total cost of ownership, monthly and annual.
type TCOResult struct {
	Monthly         CostBreakdown `json:"monthly"`
	Annual          CostBreakdown `json:"annual"`
	FuelCostPerMile float64       `json:"fuelCostPerMile"`
	AnnualMileage   int           `json:"annualMileage"`
}

// CurvePoint is the value of the vehicle at a whole year of age.
type CurvePoint struct {
	Year        int `json:"year"`
	Value       int `json:"value"`
	Factor      int `json:"factor"`
	TotalLoss   int `json:"totalLoss"`
	LossPercent int `json:"lossPercent"`
}

// YearlyRate is the value lost during one year of age.
type YearlyRate struct {
	Year         int `json:"year"`
	Loss         int `json:"loss"`
	LossPerMonth int `json:"lossPerMonth"`
}

// DepreciationResult is the full 0–10 year depreciation curve.
type DepreciationResult struct {
	Curve            []CurvePoint `json:"curve"`
	CurrentAge       int          `json:"currentAge"`
	CurrentValue     int          `json:"currentValue"`
	NewPrice         int          `json:"newPrice"`
	TotalLoss        int          `json:"totalLoss"`
	TotalLossPercent int          `json:"totalLossPercent"`
	DepPerYear       int          `json:"depPerYear"`
	DepPerMonth      int          `json:"depPerMonth"`
	YearlyRates      []YearlyRate `json:"yearlyRates"`
}

// SwapAlternative compares the subject against one alternative vehicle.
type SwapAlternative struct {
	Brand             string `json:"brand"`
	Model             string `json:"model"`
	Year              int    `json:"year"`
	Fuel              string `json:"fuel"`
	Value             int    `json:"value"`
	CurrentValue      int    `json:"currentValue"`
	PriceDiff         int    `json:"priceDiff"`
	MonthlyTCO        int    `json:"monthlyTCO"`
	CurrentMonthlyTCO int    `json:"currentMonthlyTCO"`
	MonthlyDiff       int    `json:"monthlyDiff"`
	SavingsPerYear    int    `json:"savingsPerYear"`
	BreakEvenMonths   *int   `json:"breakEvenMonths"`
}
