// Package config loads the carval service configuration from a YAML file,
// a .env file and CARVAL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/nekruzvatanshoev/carval/pkg/carval/logging"
)

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	Log     logging.Config `mapstructure:"log"`
	Redis   RedisConfig    `mapstructure:"redis"`
	Engine  EngineConfig   `mapstructure:"engine"`
	Tracing TracingConfig  `mapstructure:"tracing"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig configures the valuation snapshot store. An empty Addr
// disables snapshots.
type RedisConfig struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	TTL       time.Duration `mapstructure:"ttl"`
	KeyPrefix string        `mapstructure:"key_prefix"`
}

// Enabled reports whether a snapshot store should be connected.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// EngineConfig tunes the valuation engine.
type EngineConfig struct {
	// Seed fixes the listing synthesizer when non-zero.
	Seed uint64 `mapstructure:"seed"`
	// ReferenceYear is the year vehicle age is measured from; 0 means the
	// current year.
	ReferenceYear int `mapstructure:"reference_year"`
	// TablesFile overrides the built-in reference tables.
	TablesFile   string `mapstructure:"tables_file"`
	WatchTables  bool   `mapstructure:"watch_tables"`
	Tier1Min     int    `mapstructure:"tier1_min_per_source"`
	Tier1Max     int    `mapstructure:"tier1_max_per_source"`
	ActiveSearch bool   `mapstructure:"active_search"`
	BatchWorkers int    `mapstructure:"batch_workers"`
}

// TracingConfig configures OTLP trace export. An empty Endpoint keeps
// tracing in-process.
type TracingConfig struct {
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("log.format %q is not json or console", c.Log.Format))
	}
	if c.Redis.TTL < 0 {
		errs = append(errs, errors.New("redis.ttl must not be negative"))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, errors.New("redis.db must not be negative"))
	}
	if c.Engine.ReferenceYear < 0 {
		errs = append(errs, errors.New("engine.reference_year must not be negative"))
	}
	if c.Engine.Tier1Min < 0 || c.Engine.Tier1Max < c.Engine.Tier1Min {
		errs = append(errs, fmt.Errorf("engine tier-1 range [%d, %d] is invalid", c.Engine.Tier1Min, c.Engine.Tier1Max))
	}
	if c.Engine.BatchWorkers < 1 {
		errs = append(errs, errors.New("engine.batch_workers must be at least 1"))
	}
	if c.Engine.WatchTables && c.Engine.TablesFile == "" {
		errs = append(errs, errors.New("engine.watch_tables needs engine.tables_file"))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio %v is outside [0, 1]", c.Tracing.SampleRatio))
	}
	return errors.Join(errs...)
}
