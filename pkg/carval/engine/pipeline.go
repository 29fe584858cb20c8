package engine

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

const (
	defaultExtraEquipValue   = 4000
	defaultMissingEquipValue = 3000
	minSurvivalFactor        = 0.3
	hybridEmpiricalWeight    = 0.7
	activeRegions            = 1
)

func (e *Engine) newSubject(t *reference.Tables, v dal.Vehicle) (subject, *dal.FallbackInfo) {
	regionID, region := t.Region(v.Region())
	baseline, fallback := resolveBaseline(t, v.Brand, v.Model)
	return subject{
		vehicle:  v,
		market:   strings.ToUpper(v.Market()),
		regionID: regionID,
		region:   region,
		fuelKey:  numeric.FuelKey(v.Fuel),
		age:      e.Age(v.Year),
		mileage:  numeric.ParseMileage(v.Mileage),
		baseline: baseline,
	}, fallback
}

// SurvivalFactor shrinks option premiums with age, never below 30%.
func SurvivalFactor(t *reference.Tables, age int) float64 {
	ageFactor := numeric.Lookup(t.AgeCurve, float64(min(max(age, 0), 10)), minSurvivalFactor)
	return math.Max(minSurvivalFactor, math.Sqrt(ageFactor))
}

// Valuate prices v. It never fails: unknown models fall back to segment or
// generic baselines and thin listing sets downgrade the mileage method.
func (e *Engine) Valuate(v dal.Vehicle) dal.ValuationResult {
	t := e.tables.Tables()
	sub, fallback := e.newSubject(t, v)
	log := e.logger.With(zap.String("brand", v.Brand), zap.String("model", v.Model), zap.Int("year", v.Year))

	syn := &synthesizer{tables: t, rng: e.newRand(), tier1Min: e.tier1Min, tier1Max: e.tier1Max}
	set, equip := syn.synthesize(sub)
	all := set.All()

	anchor := weightedMedian(all)
	if anchor == 0 {
		log.Warn("no comparable listings, anchoring on baseline price")
		anchor = int(numeric.RoundTo(syn.provincePrice(sub), 1000))
		if fallback == nil {
			fallback = &dal.FallbackInfo{Method: dal.FallbackBaselineAnchor}
		}
		fallback.AnchorSource = "baseline province price"
	}
	if fallback != nil {
		log.Info("valuation used fallback baseline",
			zap.String("method", string(fallback.Method)),
			zap.Int("base_new_price", sub.baseline.BaseNewPrice))
	}

	spread := priceSpread(set.Tier1, anchor)
	avgMarketMileage := averageMileage(set.Tier1)

	expected := float64(sub.age * t.AnnualMileageFor(sub.fuelKey))
	analysis := analyzeMileage(set.Tier1, float64(sub.mileage), expected)
	log.Debug("mileage analysis", zap.String("method", string(analysis.Method)), zap.Int("confidence", analysis.Confidence))

	survival := SurvivalFactor(t, sub.age)
	steps := e.ledger(t, sub, anchor, avgMarketMileage, expected, analysis, survival, len(set.Tier1))

	total := steps[len(steps)-1].Value
	confidence := confidenceScore(len(set.Tier1), len(set.Tier2), len(set.Tier3),
		distinctSources(set.Tier1, set.Tier2, set.Tier3), spread, activeRegions, e.active)

	return dal.ValuationResult{
		MarketAnchor:     anchor,
		Tier1Count:       len(set.Tier1),
		Tier2Count:       len(set.Tier2),
		Tier3Count:       len(set.Tier3),
		TotalListings:    len(all),
		AvgMarketMileage: avgMarketMileage,
		Spread:           spread,
		EquipAnalysis:    equip,
		Mileage:          analysis,
		Steps:            steps,
		TotalValue:       total,
		UsedFallback:     fallback != nil,
		Fallback:         fallback,
		Confidence:       confidence,
		BaseNewPrice:     sub.baseline.BaseNewPrice,
		SurvivalFactor:   numeric.RoundPlaces(survival, 4),
		TierBreakdown: dal.TierBreakdown{
			Tier1: summarizeTier(set.Tier1),
			Tier2: summarizeTier(set.Tier2),
			Tier3: summarizeTier(set.Tier3),
		},
		Listings: set,
	}
}

// mileageAdjustment converts the analysis into a signed dollar value.
func mileageAdjustment(t *reference.Tables, sub subject, anchor, avgMarketMileage int, a dal.MileageAnalysis) int {
	perTenK := numeric.Lookup(t.MileageAdjPer10k, float64(min(sub.age, 10)), 200)
	theory := -math.Round(float64(sub.mileage-avgMarketMileage) / 10000 * perTenK)

	switch {
	case a.Method == dal.MethodEmpirical && a.Factor != nil:
		return numeric.RoundInt(float64(anchor) * (*a.Factor - 1))
	case a.Method == dal.MethodHybrid && a.Factor != nil:
		empirical := math.Round(float64(anchor) * (*a.Factor - 1))
		return numeric.RoundInt(empirical*hybridEmpiricalWeight + theory*(1-hybridEmpiricalWeight))
	default:
		return int(theory)
	}
}

func optionDelta(table map[string]int, variant, base string) int {
	return reference.Option(table, variant) - reference.Option(table, base)
}

func equipmentTotal(t *reference.Tables, items []string, def int) int {
	var sum int
	for _, item := range items {
		sum += t.EquipmentValue(item, def)
	}
	return sum
}

func conditionPenalty(t *reference.Tables, devs []dal.Deviation) float64 {
	var p float64
	for _, d := range devs {
		p += t.ConditionPenalty[strings.ToLower(string(d.Severity))]
	}
	return p
}

func describe(format string, args ...any) *string {
	s := fmt.Sprintf(format, args...)
	return &s
}

func differs(variant, base string) bool {
	return variant != "" && !strings.EqualFold(variant, base)
}

// ledger builds the twelve ledger rows. Row 12 is the anchor plus rows
// 2-11, rounded to the nearest thousand.
func (e *Engine) ledger(t *reference.Tables, sub subject, anchor, avgMarketMileage int, expected float64,
	a dal.MileageAnalysis, survival float64, tier1Count int) []dal.ValuationStep {
	v := sub.vehicle
	b := sub.baseline
	scaled := func(delta int) int { return numeric.RoundInt(float64(delta) * survival) }
	equipRes := numeric.Lookup(t.EquipmentResidual, float64(sub.age), 0.12)

	steps := make([]dal.ValuationStep, 0, 12)
	add := func(label string, desc *string, value int, typ dal.StepType) {
		steps = append(steps, dal.ValuationStep{Nr: len(steps) + 1, Label: label, Desc: desc, Value: value, Type: typ})
	}

	add("Market Anchor", describe("Weighted median of %d listings, %s %s %d, %s",
		tier1Count, v.Brand, v.Model, v.Year, sub.region.Name), anchor, dal.StepBase)

	var mileageDesc *string
	switch a.Method {
	case dal.MethodEmpirical:
		mileageDesc = describe("Empirical: %d listings, ratio %.2f", a.TotalListings, a.VehicleRatio)
	case dal.MethodHybrid:
		mileageDesc = describe("Hybrid: %d listings, ratio %.2f, blended with per-age table", a.TotalListings, a.VehicleRatio)
	default:
		mileageDesc = describe("Mileage %d vs market average %d mi (expected %d)", sub.mileage, avgMarketMileage, int(expected))
	}
	add("Mileage", mileageDesc, mileageAdjustment(t, sub, anchor, avgMarketMileage, a), dal.StepAdjust)

	var d *string
	if differs(v.MotorVariant, v.BaseMotor) {
		d = describe("%s vs %s", v.MotorVariant, v.BaseMotor)
	}
	add("Engine Variant", d, scaled(optionDelta(b.Motors, v.MotorVariant, v.BaseMotor)), dal.StepAdjust)

	d = nil
	if differs(v.FuelType, v.BaseFuel) {
		d = describe("%s vs %s", v.FuelType, v.BaseFuel)
	}
	add("Fuel", d, scaled(optionDelta(b.Fuels, v.FuelType, v.BaseFuel)), dal.StepAdjust)

	d = nil
	if differs(v.DriveVariant, "FWD") {
		d = describe("%s", v.DriveVariant)
	}
	add("Drivetrain", d, scaled(reference.Option(b.Drives, v.DriveVariant)), dal.StepAdjust)

	d = nil
	if differs(v.TransVariant, v.BaseTrans) {
		d = describe("%s vs %s", v.TransVariant, v.BaseTrans)
	}
	add("Transmission", d, scaled(optionDelta(b.Trans, v.TransVariant, v.BaseTrans)), dal.StepAdjust)

	d = nil
	if differs(v.TrimLevel, v.BaseTrim) {
		d = describe("%s vs %s", v.TrimLevel, v.BaseTrim)
	}
	add("Trim Level", d, scaled(optionDelta(b.Trims, v.TrimLevel, v.BaseTrim)), dal.StepAdjust)

	d = nil
	if differs(v.PaintType, "solid") {
		d = describe("%s", v.PaintType)
	}
	add("Paint", d, reference.Option(b.Paint, v.PaintType), dal.StepAdjust)

	d = nil
	if n := len(v.ExtraEquipment); n > 0 {
		d = describe("%d extras (%d%% residual)", n, numeric.RoundInt(equipRes*100))
	}
	extra := equipmentTotal(t, v.ExtraEquipment, defaultExtraEquipValue)
	add("Extra Equipment", d, numeric.RoundInt(float64(extra)*equipRes), dal.StepAdjust)

	d = nil
	if n := len(v.MissingEquipment); n > 0 {
		d = describe("%d missing", n)
	}
	missing := equipmentTotal(t, v.MissingEquipment, defaultMissingEquipValue)
	add("Missing Equipment", d, -numeric.RoundInt(float64(missing)*equipRes), dal.StepAdjust)

	penalty := conditionPenalty(t, v.Deviations)
	if len(v.Deviations) > 0 {
		d = describe("%d deviations, %.0f%% of anchor", len(v.Deviations), penalty*100)
	} else {
		d = describe("No deviations reported")
	}
	add("Condition Assessment", d, numeric.RoundInt(float64(anchor)*penalty), dal.StepAdjust)

	sum := anchor
	for _, s := range steps[1:] {
		sum += s.Value
	}
	add("Market Value", describe("Market anchor + all adjustments"), int(numeric.RoundTo(float64(sum), 1000)), dal.StepResult)
	return steps
}
