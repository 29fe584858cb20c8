package dal

// StepType tags a ledger row.
type StepType string

const (
	StepBase   StepType = "base"
	StepAdjust StepType = "adjust"
	StepResult StepType = "result"
)

// ValuationStep is one row of the 12-step adjustment ledger.
type ValuationStep struct {
	Nr    int      `json:"nr"`
	Label string   `json:"label"`
	Desc  *string  `json:"desc"`
	Value int      `json:"value"`
	Type  StepType `json:"type"`
}

// MileageMethod names the strategy used for the mileage step.
type MileageMethod string

const (
	MethodEmpirical   MileageMethod = "empirical"
	MethodHybrid      MileageMethod = "hybrid"
	MethodTheoretical MileageMethod = "theoretical"
)

// MileageBucket is the price statistic for one band of the
// mileage-to-expected ratio.
type MileageBucket struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Count     int     `json:"count"`
	AvgPrice  int     `json:"avgPrice"`
	AvgMil    int     `json:"avgMil"`
	Effect    int     `json:"effect"`
	EffectPct float64 `json:"effectPct"`
	Factor    float64 `json:"factor"`
}

// Regression holds the OLS fit of price on mileage.
type Regression struct {
	Slope       float64 `json:"slope"`
	PerTenK     float64 `json:"per10kMiles"`
	RSquared    float64 `json:"rSquared"`
	Observation int     `json:"n"`
}

// MileageAnalysis explains how the mileage step was derived.
type MileageAnalysis struct {
	Method         MileageMethod   `json:"method"`
	Factor         *float64        `json:"factor"`
	ReferencePrice int             `json:"referencePrice,omitempty"`
	VehicleRatio   float64         `json:"vehicleRatio,omitempty"`
	Buckets        []MileageBucket `json:"buckets,omitempty"`
	Regression     *Regression     `json:"regression,omitempty"`
	Confidence     int             `json:"confidence"`
	TotalListings  int             `json:"totalListings,omitempty"`
	NormalListings int             `json:"normalListings,omitempty"`
}

// TierSummary is the count and mean asking price of one listing tier.
type TierSummary struct {
	Count    int `json:"count"`
	AvgPrice int `json:"avgPrice"`
}

// TierBreakdown groups the per-tier summaries.
type TierBreakdown struct {
	Tier1 TierSummary `json:"tier1"`
	Tier2 TierSummary `json:"tier2"`
	Tier3 TierSummary `json:"tier3"`
}

// ListingSet holds the synthesized comparables behind a valuation.
type ListingSet struct {
	Tier1 []Listing `json:"tier1"`
	Tier2 []Listing `json:"tier2"`
	Tier3 []Listing `json:"tier3"`
}

// All returns every listing, tier 1 first.
func (s ListingSet) All() []Listing {
	all := make([]Listing, 0, len(s.Tier1)+len(s.Tier2)+len(s.Tier3))
	all = append(all, s.Tier1...)
	all = append(all, s.Tier2...)
	return append(all, s.Tier3...)
}

// FallbackMethod records which branch of the baseline chain supplied the
// model baseline.
type FallbackMethod string

const (
	FallbackNone              FallbackMethod = ""
	FallbackSegmentComparable FallbackMethod = "segment_comparable"
	FallbackGenericDefault    FallbackMethod = "generic_default"
	FallbackBaselineAnchor    FallbackMethod = "baseline_anchor"
)

// Comparable is a segment sibling used to synthesize a missing baseline.
type Comparable struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	BaseNewPrice int     `json:"baseNewPrice"`
	Prestige     float64 `json:"prestige"`
}

// FallbackInfo documents an approximate baseline.
type FallbackInfo struct {
	Method        FallbackMethod `json:"method"`
	SegmentLabel  string         `json:"segLabel,omitempty"`
	Comparables   []Comparable   `json:"comparables,omitempty"`
	AvgNewPrice   int            `json:"avgNewPrice,omitempty"`
	OwnPrestige   float64        `json:"ownPrestige,omitempty"`
	AvgPrestige   float64        `json:"avgPrestige,omitempty"`
	PrestigeRatio float64        `json:"prestigeRatio,omitempty"`
	AnchorSource  string         `json:"anchorSource,omitempty"`
}

// EquipmentAnalysis is the package note produced when adjacent-year
// listings were searched.
type EquipmentAnalysis struct {
	PackageEffect map[string]string `json:"packageEffect"`
	CommonEquip   []string          `json:"commonEquip"`
	EquipPremium  float64           `json:"equipPremium"`
}

// ValuationResult is the output aggregate of one valuation call.
type ValuationResult struct {
	MarketAnchor     int                `json:"marketAnchor"`
	Tier1Count       int                `json:"tier1Count"`
	Tier2Count       int                `json:"tier2Count"`
	Tier3Count       int                `json:"tier3Count"`
	TotalListings    int                `json:"totalListings"`
	AvgMarketMileage int                `json:"avgMarketMileage"`
	Spread           int                `json:"spread"`
	EquipAnalysis    *EquipmentAnalysis `json:"equipAnalysis"`
	Mileage          MileageAnalysis    `json:"empAnalysis"`
	Steps            []ValuationStep    `json:"steps"`
	TotalValue       int                `json:"totalValue"`
	UsedFallback     bool               `json:"usedFallback"`
	Fallback         *FallbackInfo      `json:"fallbackData"`
	Confidence       int                `json:"confidence"`
	BaseNewPrice     int                `json:"baseNewPrice"`
	SurvivalFactor   float64            `json:"survivalFactor"`
	TierBreakdown    TierBreakdown      `json:"tierBreakdown"`
	Listings         ListingSet         `json:"listings"`
}

// Step returns the ledger row with the given number.
func (r ValuationResult) Step(nr int) (ValuationStep, bool) {
	for _, s := range r.Steps {
		if s.Nr == nr {
			return s, true
		}
	}
	return ValuationStep{}, false
}
