// Package numeric holds the small lookup and parsing helpers shared by the
// valuation engine and its analyses.
package numeric

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canonical fuel keys used by every fuel-indexed reference table.
const (
	FuelGas    = "gas"
	FuelDiesel = "diesel"
	FuelHybrid = "hybrid"
	FuelPHEV   = "phev"
	FuelBEV    = "bev"
)

// NearestKey returns the largest key of curve that is <= target. When no key
// qualifies it returns 0.
func NearestKey(curve map[int]float64, target float64) int {
	keys := make([]int, 0, len(curve))
	for k := range curve {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	best := 0
	for _, k := range keys {
		if float64(k) <= target {
			best = k
		}
	}
	return best
}

// Lookup reads curve at the nearest floor key of target, returning def when
// the table has no usable entry.
func Lookup(curve map[int]float64, target float64, def float64) float64 {
	if v, ok := curve[NearestKey(curve, target)]; ok {
		return v
	}
	return def
}

// ParseMileage turns an odometer string such as "18,200" or "18 200" into a
// number. Anything unparseable reads as zero.
func ParseMileage(s string) int {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '\t', '\u00a0', '_':
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return 0
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FuelKey canonicalizes a free-form fuel label.
func FuelKey(fuel string) string {
	switch strings.ToLower(strings.TrimSpace(fuel)) {
	case "electric", "bev", "battery-electric", "ev":
		return FuelBEV
	case "phev", "plug-in-hybrid", "plugin-hybrid", "plug-in hybrid":
		return FuelPHEV
	case "hybrid", "hev":
		return FuelHybrid
	case "diesel":
		return FuelDiesel
	default:
		return FuelGas
	}
}

// IsElectric reports whether fuel is a battery-electric label.
func IsElectric(fuel string) bool {
	return FuelKey(fuel) == FuelBEV
}

// RoundTo rounds x to the nearest multiple of unit.
func RoundTo(x, unit float64) float64 {
	if unit == 0 {
		return math.Round(x)
	}
	return math.Round(x/unit) * unit
}

// RoundInt rounds x to the nearest integer.
func RoundInt(x float64) int {
	return int(math.Round(x))
}

// RoundPlaces rounds x to the given number of decimal places.
func RoundPlaces(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// Percent returns part/whole*100 rounded to decimals places, or zero when
// whole is zero.
func Percent(part, whole float64, places int) float64 {
	if whole == 0 {
		return 0
	}
	return RoundPlaces(part/whole*100, places)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
