// Package engine turns a vehicle description into a market valuation: it
// synthesizes tiered comparable listings, reduces them to a weighted-median
// anchor, and walks a fixed 12-step adjustment ledger from the anchor to the
// final value.
//
// An Engine is safe for concurrent use. Each call draws its own random
// source and reads one snapshot of the reference tables.
package engine

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

const (
	defaultTier1Min = 3
	defaultTier1Max = 10
)

// Engine values vehicles against a set of reference tables.
type Engine struct {
	tables   reference.Provider
	logger   *zap.Logger
	newRand  func() *rand.Rand
	refYear  int
	tier1Min int
	tier1Max int
	active   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed makes every call draw from a PCG source seeded with seed, so
// identical inputs produce identical listings and results.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.newRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
	}
}

// WithRandFactory installs a custom source of per-call random generators.
func WithRandFactory(f func() *rand.Rand) Option {
	return func(e *Engine) {
		if f != nil {
			e.newRand = f
		}
	}
}

// WithReferenceYear fixes the calendar year vehicle age is measured from.
func WithReferenceYear(year int) Option {
	return func(e *Engine) {
		if year > 0 {
			e.refYear = year
		}
	}
}

// WithTier1Range bounds how many exact-match listings each source yields.
func WithTier1Range(lo, hi int) Option {
	return func(e *Engine) {
		if lo < 0 || hi < lo {
			return
		}
		e.tier1Min, e.tier1Max = lo, hi
	}
}

// WithActiveSearch marks results as coming from a live search, which earns
// the confidence bonus.
func WithActiveSearch(active bool) Option {
	return func(e *Engine) { e.active = active }
}

// New returns an Engine reading tables from p. A nil provider uses the
// built-in defaults.
func New(p reference.Provider, opts ...Option) *Engine {
	if p == nil {
		p = reference.Default()
	}
	e := &Engine{
		tables:   p,
		logger:   zap.NewNop(),
		refYear:  time.Now().Year(),
		tier1Min: defaultTier1Min,
		tier1Max: defaultTier1Max,
		active:   true,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tables returns the reference tables currently in effect.
func (e *Engine) Tables() *reference.Tables {
	return e.tables.Tables()
}

// ReferenceYear is the year vehicle age is measured from.
func (e *Engine) ReferenceYear() int {
	return e.refYear
}

// Age returns the vehicle age in whole years, never negative.
func (e *Engine) Age(modelYear int) int {
	if age := e.refYear - modelYear; age > 0 {
		return age
	}
	return 0
}
