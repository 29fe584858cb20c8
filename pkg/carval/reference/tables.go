// Package reference holds the static curves and lookup tables the valuation
// engine reads. A Tables value is immutable once built; edits produce a new
// value that replaces the old one wholesale.
package reference

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
)

// DefaultMarket is used when a country has no source list or fee schedule.
const DefaultMarket = "US"

// DefaultRegion is used when a registration region is unknown.
const DefaultRegion = "westcoast"

// ModelBaseline is the new-vehicle reference for one model. Option tables
// map an option name to its price delta over the model's base configuration.
type ModelBaseline struct {
	BaseNewPrice int            `mapstructure:"base_new_price"`
	Segment      string         `mapstructure:"segment"`
	Motors       map[string]int `mapstructure:"motors"`
	Fuels        map[string]int `mapstructure:"fuels"`
	Drives       map[string]int `mapstructure:"drives"`
	Trans        map[string]int `mapstructure:"trans"`
	Trims        map[string]int `mapstructure:"trims"`
	Paint        map[string]int `mapstructure:"paint"`
	AvgMileage   int            `mapstructure:"avg_mileage"`
}

// Option reads an option delta, case-insensitively. Unknown options cost 0.
func Option(table map[string]int, name string) int {
	return table[strings.ToLower(strings.TrimSpace(name))]
}

// SegmentModel is one member of a market segment.
type SegmentModel struct {
	Brand string `mapstructure:"brand"`
	Model string `mapstructure:"model"`
}

// Key is the canonical baseline key of the model.
func (m SegmentModel) Key() string {
	return ModelKey(m.Brand, m.Model)
}

// Segment groups cross-brand models that compete for the same buyers.
type Segment struct {
	ID     string         `mapstructure:"id"`
	Label  string         `mapstructure:"label"`
	Models []SegmentModel `mapstructure:"models"`
}

// Region is a US sales region with per-fuel price coefficients.
type Region struct {
	Name    string             `mapstructure:"name"`
	Short   string             `mapstructure:"short"`
	Lat     float64            `mapstructure:"lat"`
	Lng     float64            `mapstructure:"lng"`
	Color   string             `mapstructure:"color"`
	Country string             `mapstructure:"country"`
	Coeff   map[string]float64 `mapstructure:"coeff"`
}

// FuelCoeff returns the region's coefficient for a canonical fuel key.
func (r Region) FuelCoeff(fuelKey string) float64 {
	if c, ok := r.Coeff[fuelKey]; ok && c > 0 {
		return c
	}
	return 1.0
}

// ExportSchedule is the flat cost of taking a vehicle out of a country.
type ExportSchedule struct {
	DeReg      int    `mapstructure:"de_reg"`
	ExportCert int    `mapstructure:"export_cert"`
	Plates     int    `mapstructure:"plates"`
	Admin      int    `mapstructure:"admin"`
	Desc       string `mapstructure:"desc"`
}

// ImportSchedule is the cost of registering an imported vehicle.
// EVBonusRate, when set, scales the registration tax for electric vehicles
// instead of exempting them.
type ImportSchedule struct {
	Inspection    int     `mapstructure:"inspection"`
	RegCert       int     `mapstructure:"reg_cert"`
	Plates        int     `mapstructure:"plates"`
	Admin         int     `mapstructure:"admin"`
	RegTaxRate    float64 `mapstructure:"reg_tax_rate"`
	EVExempt      bool    `mapstructure:"ev_exempt"`
	EVBonus       int     `mapstructure:"ev_bonus"`
	EVBonusRate   float64 `mapstructure:"ev_bonus_rate"`
	ImportVATRate float64 `mapstructure:"import_vat_rate"`
	Desc          string  `mapstructure:"desc"`
}

// Tables is the full reference data set. Curve tables are sparse and read
// with a nearest-floor-key lookup.
type Tables struct {
	AgeCurve            map[int]float64 `mapstructure:"age_curve"`
	MileageCurve        map[int]float64 `mapstructure:"mileage_curve"`
	MileageAdjPer10k    map[int]float64 `mapstructure:"mileage_adj_per_10k"`
	MonthlyDepreciation map[int]float64 `mapstructure:"monthly_depreciation"`
	EquipmentResidual   map[int]float64 `mapstructure:"equipment_residual"`

	ConditionPenalty map[string]float64 `mapstructure:"condition_penalty"`
	AnnualMileage    map[string]int     `mapstructure:"annual_mileage"`
	EquipmentValues  map[string]int     `mapstructure:"equipment_values"`
	Prestige         map[string]float64 `mapstructure:"prestige"`

	Baselines map[string]ModelBaseline `mapstructure:"baselines"`
	Generic   ModelBaseline            `mapstructure:"generic"`
	Segments  []Segment                `mapstructure:"segments"`

	Sources     map[string][]dal.Source `mapstructure:"sources"`
	Regions     map[string]Region       `mapstructure:"regions"`
	RegionOrder []string                `mapstructure:"region_order"`

	VAT           map[string]float64            `mapstructure:"vat"`
	MarketFactors map[string]map[string]float64 `mapstructure:"market_factors"`
	ExportFees    map[string]ExportSchedule     `mapstructure:"export_fees"`
	ImportFees    map[string]ImportSchedule     `mapstructure:"import_fees"`
	Markets       []string                      `mapstructure:"markets"`
}

// Tables lets a *Tables act as its own Provider.
func (t *Tables) Tables() *Tables { return t }

// Provider hands out the current table set. Callers read it once per
// operation so a concurrent swap never mixes two versions.
type Provider interface {
	Tables() *Tables
}

// ModelKey is the canonical (brand, model) lookup key.
func ModelKey(brand, model string) string {
	return strings.ToLower(strings.TrimSpace(brand) + " " + strings.TrimSpace(model))
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// matchModelKey resolves brand/model against the keys of a model-keyed
// table: exact key, then brand plus the first word of the model, then the
// longest table key contained in the full name.
func matchModelKey(keys []string, brand, model string) (string, bool) {
	full := ModelKey(brand, model)
	short := ModelKey(brand, firstWord(model))

	for _, k := range keys {
		if k == full {
			return k, true
		}
	}
	for _, k := range keys {
		if k == short {
			return k, true
		}
	}

	sorted := append([]string(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	for _, k := range sorted {
		if strings.Contains(full, k) {
			return k, true
		}
	}
	return "", false
}

// Baseline looks up the model baseline for brand/model.
func (t *Tables) Baseline(brand, model string) (ModelBaseline, bool) {
	keys := make([]string, 0, len(t.Baselines))
	for k := range t.Baselines {
		keys = append(keys, k)
	}
	k, ok := matchModelKey(keys, brand, model)
	if !ok {
		return ModelBaseline{}, false
	}
	return t.Baselines[k], true
}

// BaselineByKey looks up a baseline by its canonical key only.
func (t *Tables) BaselineByKey(key string) (ModelBaseline, bool) {
	b, ok := t.Baselines[strings.ToLower(key)]
	return b, ok
}

// MarketFactor returns the per-country cross-market factors for a model.
func (t *Tables) MarketFactor(brand, model string) (map[string]float64, bool) {
	keys := make([]string, 0, len(t.MarketFactors))
	for k := range t.MarketFactors {
		keys = append(keys, k)
	}
	k, ok := matchModelKey(keys, brand, model)
	if !ok {
		return nil, false
	}
	return t.MarketFactors[k], true
}

// BrandPrestige returns the brand's prestige multiplier, 1.0 when unknown.
func (t *Tables) BrandPrestige(brand string) float64 {
	if p, ok := t.Prestige[strings.ToLower(strings.TrimSpace(brand))]; ok && p > 0 {
		return p
	}
	return 1.0
}

// SegmentOf returns the first segment listing brand/model as a member. A
// member matches when the brand is equal and the model name contains the
// member's model name.
func (t *Tables) SegmentOf(brand, model string) (Segment, SegmentModel, bool) {
	b := strings.ToLower(strings.TrimSpace(brand))
	m := strings.ToLower(model)
	for _, seg := range t.Segments {
		for _, sm := range seg.Models {
			if strings.ToLower(sm.Brand) == b && strings.Contains(m, strings.ToLower(sm.Model)) {
				return seg, sm, true
			}
		}
	}
	return Segment{}, SegmentModel{}, false
}

// Region returns the named region, or the default region.
func (t *Tables) Region(id string) (string, Region) {
	id = strings.ToLower(strings.TrimSpace(id))
	if r, ok := t.Regions[id]; ok {
		return id, r
	}
	return DefaultRegion, t.Regions[DefaultRegion]
}

// SourcesFor returns the data sources of a market, or the default market's.
func (t *Tables) SourcesFor(market string) []dal.Source {
	if s, ok := t.Sources[strings.ToUpper(market)]; ok && len(s) > 0 {
		return s
	}
	return t.Sources[DefaultMarket]
}

// VATRate returns the VAT rate of a country and whether it is known.
func (t *Tables) VATRate(country string) (float64, bool) {
	r, ok := t.VAT[strings.ToUpper(strings.TrimSpace(country))]
	return r, ok
}

// Export returns the export schedule of a country, or the default market's.
func (t *Tables) Export(country string) ExportSchedule {
	if s, ok := t.ExportFees[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return s
	}
	return t.ExportFees[DefaultMarket]
}

// Import returns the import schedule of a country, or the default market's.
func (t *Tables) Import(country string) ImportSchedule {
	if s, ok := t.ImportFees[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return s
	}
	return t.ImportFees[DefaultMarket]
}

// EquipmentValue prices one equipment item, falling back to def.
func (t *Tables) EquipmentValue(item string, def int) int {
	if v, ok := t.EquipmentValues[strings.ToLower(strings.TrimSpace(item))]; ok {
		return v
	}
	return def
}

// AnnualMileageFor returns the expected yearly distance for a fuel key.
func (t *Tables) AnnualMileageFor(fuelKey string) int {
	if m, ok := t.AnnualMileage[fuelKey]; ok && m > 0 {
		return m
	}
	return 12000
}

// Validate reports tables that would make the engine misbehave.
func (t *Tables) Validate() error {
	var errs []error
	if len(t.AgeCurve) == 0 {
		errs = append(errs, errors.New("age_curve is empty"))
	}
	if len(t.MileageCurve) == 0 {
		errs = append(errs, errors.New("mileage_curve is empty"))
	}
	if len(t.MonthlyDepreciation) == 0 {
		errs = append(errs, errors.New("monthly_depreciation is empty"))
	}
	if len(t.Sources[DefaultMarket]) == 0 {
		errs = append(errs, fmt.Errorf("no sources for default market %s", DefaultMarket))
	}
	for market, sources := range t.Sources {
		for _, s := range sources {
			if s.Weight <= 0 {
				errs = append(errs, fmt.Errorf("source %s/%s has non-positive weight", market, s.ID))
			}
		}
	}
	if _, ok := t.Regions[DefaultRegion]; !ok {
		errs = append(errs, fmt.Errorf("default region %s missing", DefaultRegion))
	}
	if _, ok := t.ExportFees[DefaultMarket]; !ok {
		errs = append(errs, fmt.Errorf("export fees for %s missing", DefaultMarket))
	}
	if _, ok := t.ImportFees[DefaultMarket]; !ok {
		errs = append(errs, fmt.Errorf("import fees for %s missing", DefaultMarket))
	}
	if t.Generic.BaseNewPrice <= 0 {
		errs = append(errs, errors.New("generic baseline needs a positive base_new_price"))
	}
	for key, b := range t.Baselines {
		if b.BaseNewPrice <= 0 {
			errs = append(errs, fmt.Errorf("baseline %q needs a positive base_new_price", key))
		}
	}
	return errors.Join(errs...)
}

// normalize canonicalizes every key: model, equipment, option and fuel keys
// to lower case, country codes to upper case.
func (t *Tables) normalize() {
	t.ConditionPenalty = lowerKeys(t.ConditionPenalty)
	t.AnnualMileage = lowerKeys(t.AnnualMileage)
	t.EquipmentValues = lowerKeys(t.EquipmentValues)
	t.Prestige = lowerKeys(t.Prestige)

	baselines := make(map[string]ModelBaseline, len(t.Baselines))
	for k, b := range t.Baselines {
		baselines[strings.ToLower(k)] = b.normalized()
	}
	t.Baselines = baselines
	t.Generic = t.Generic.normalized()

	regions := make(map[string]Region, len(t.Regions))
	for k, r := range t.Regions {
		r.Coeff = lowerKeys(r.Coeff)
		r.Country = strings.ToUpper(r.Country)
		regions[strings.ToLower(k)] = r
	}
	t.Regions = regions
	for i, id := range t.RegionOrder {
		t.RegionOrder[i] = strings.ToLower(id)
	}

	t.Sources = upperKeys(t.Sources)
	t.VAT = upperKeys(t.VAT)
	t.ExportFees = upperKeys(t.ExportFees)
	t.ImportFees = upperKeys(t.ImportFees)
	for i, m := range t.Markets {
		t.Markets[i] = strings.ToUpper(m)
	}

	factors := make(map[string]map[string]float64, len(t.MarketFactors))
	for k, f := range t.MarketFactors {
		factors[strings.ToLower(k)] = upperKeys(f)
	}
	t.MarketFactors = factors
}

func (b ModelBaseline) normalized() ModelBaseline {
	b.Segment = strings.ToLower(b.Segment)
	b.Motors = lowerKeys(b.Motors)
	b.Fuels = lowerKeys(b.Fuels)
	b.Drives = lowerKeys(b.Drives)
	b.Trans = lowerKeys(b.Trans)
	b.Trims = lowerKeys(b.Trims)
	b.Paint = lowerKeys(b.Paint)
	return b
}

func lowerKeys[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

func upperKeys[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[strings.ToUpper(k)] = v
	}
	return out
}
