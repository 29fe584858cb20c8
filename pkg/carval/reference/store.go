package reference

import (
	"fmt"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Load reads a YAML or JSON table file and lays it over the built-in
// defaults. Map entries in the file replace the matching default entries;
// list-valued tables (segments, markets, region order) replace the default
// list when present.
func Load(path string) (*Tables, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reference: failed to read tables file %q: %w", path, err)
	}
	t, err := fromViper(v)
	if err != nil {
		return nil, fmt.Errorf("reference: %q: %w", path, err)
	}
	return t, nil
}

func fromViper(v *viper.Viper) (*Tables, error) {
	var override Tables
	if err := v.Unmarshal(&override); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tables: %w", err)
	}
	override.normalize()

	t := Default()
	t.merge(&override)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tables: %w", err)
	}
	return t, nil
}

func (t *Tables) merge(o *Tables) {
	mergeMap(t.AgeCurve, o.AgeCurve)
	mergeMap(t.MileageCurve, o.MileageCurve)
	mergeMap(t.MileageAdjPer10k, o.MileageAdjPer10k)
	mergeMap(t.MonthlyDepreciation, o.MonthlyDepreciation)
	mergeMap(t.EquipmentResidual, o.EquipmentResidual)
	mergeMap(t.ConditionPenalty, o.ConditionPenalty)
	mergeMap(t.AnnualMileage, o.AnnualMileage)
	mergeMap(t.EquipmentValues, o.EquipmentValues)
	mergeMap(t.Prestige, o.Prestige)
	mergeMap(t.Baselines, o.Baselines)
	mergeMap(t.Sources, o.Sources)
	mergeMap(t.Regions, o.Regions)
	mergeMap(t.VAT, o.VAT)
	mergeMap(t.MarketFactors, o.MarketFactors)
	mergeMap(t.ExportFees, o.ExportFees)
	mergeMap(t.ImportFees, o.ImportFees)

	if o.Generic.BaseNewPrice > 0 {
		t.Generic = o.Generic
	}
	if len(o.Segments) > 0 {
		t.Segments = o.Segments
	}
	if len(o.RegionOrder) > 0 {
		t.RegionOrder = o.RegionOrder
	}
	if len(o.Markets) > 0 {
		t.Markets = o.Markets
	}
}

func mergeMap[K comparable, V any](dst, src map[K]V) {
	for k, v := range src {
		dst[k] = v
	}
}

// Store publishes the current table set to concurrent readers. Writers
// replace the whole set; readers never observe a partial update.
type Store struct {
	current atomic.Pointer[Tables]
	logger  *zap.Logger
}

// NewStore returns a store serving initial. A nil initial serves Default().
func NewStore(initial *Tables, logger *zap.Logger) *Store {
	if initial == nil {
		initial = Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{logger: logger}
	s.current.Store(initial)
	return s
}

// Tables returns the table set in effect.
func (s *Store) Tables() *Tables {
	return s.current.Load()
}

// Replace swaps in a new table set.
func (s *Store) Replace(t *Tables) {
	s.current.Store(t)
}

// Watch reloads the table file whenever it changes on disk. A file that
// fails to parse or validate is logged and the previous tables stay in
// effect. onReload, when non-nil, is told the outcome of every reload.
func (s *Store) Watch(path string, onReload func(error)) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reference: failed to read tables file %q: %w", path, err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		t, err := fromViper(v)
		if err != nil {
			s.logger.Warn("reference tables reload rejected",
				zap.String("file", e.Name), zap.Error(err))
		} else {
			s.Replace(t)
			s.logger.Info("reference tables reloaded",
				zap.String("file", e.Name), zap.String("op", e.Op.String()))
		}
		if onReload != nil {
			onReload(err)
		}
	})
	v.WatchConfig()
	return nil
}
