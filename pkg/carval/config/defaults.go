package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultServerAddr      = ":8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultRedisTTL       = 24 * time.Hour
	DefaultRedisKeyPrefix = "carval:valuation:"

	DefaultTier1Min     = 3
	DefaultTier1Max     = 10
	DefaultBatchWorkers = 4

	DefaultServiceName = "carval"
	DefaultSampleRatio = 1.0
)

// setDefaults registers every default with v so that environment variables
// for those keys are seen by Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", DefaultRedisTTL)
	v.SetDefault("redis.key_prefix", DefaultRedisKeyPrefix)

	v.SetDefault("engine.seed", 0)
	v.SetDefault("engine.reference_year", 0)
	v.SetDefault("engine.tables_file", "")
	v.SetDefault("engine.watch_tables", false)
	v.SetDefault("engine.tier1_min_per_source", DefaultTier1Min)
	v.SetDefault("engine.tier1_max_per_source", DefaultTier1Max)
	v.SetDefault("engine.active_search", true)
	v.SetDefault("engine.batch_workers", DefaultBatchWorkers)

	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.insecure", false)
	v.SetDefault("tracing.service_name", DefaultServiceName)
	v.SetDefault("tracing.sample_ratio", DefaultSampleRatio)
}

// ApplyDefaults fills zero-valued fields of a programmatically built Config.
func ApplyDefaults(c *Config) {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Redis.TTL == 0 {
		c.Redis.TTL = DefaultRedisTTL
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if c.Engine.Tier1Min == 0 && c.Engine.Tier1Max == 0 {
		c.Engine.Tier1Min, c.Engine.Tier1Max = DefaultTier1Min, DefaultTier1Max
	}
	if c.Engine.BatchWorkers == 0 {
		c.Engine.BatchWorkers = DefaultBatchWorkers
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = DefaultServiceName
	}
}
