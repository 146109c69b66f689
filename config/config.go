// Package config loads solver-wide tuning knobs (default strategy, queue
// cutoff, ring-cache size, fingerprint table sizing) via spf13/viper, the
// teacher's declared configuration dependency.
package config

import (
	"strings"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/domino14/floodit/solve"
)

// Config holds the knobs a CLI or batch driver needs to construct a solve
// call without hard-coding constants.
type Config struct {
	DefaultStrategy    solve.StrategyID
	DefaultQueueCutoff int
	RingCacheCapacity  int
	FingerprintInitCap int
	MemoryFraction     float64
	DatasetWorkers     int
}

// Defaults returns the built-in defaults, before any file/env/flag overlay
// is applied.
func Defaults() *Config {
	return &Config{
		DefaultStrategy:    solve.AStarIAFF,
		DefaultQueueCutoff: 0, // 0 means unbounded; search.Options.normalize maps it
		RingCacheCapacity:  10000,
		FingerprintInitCap: 1 << 16,
		MemoryFraction:     0.1,
		DatasetWorkers:     4,
	}
}

// Load reads floodsolve configuration from (in ascending priority) a config
// file, FLOODSOLVE_-prefixed environment variables, and any flags already
// bound into v by the caller, layered over Defaults().
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	d := Defaults()
	v.SetDefault("default_strategy", string(d.DefaultStrategy))
	v.SetDefault("default_queue_cutoff", d.DefaultQueueCutoff)
	v.SetDefault("ring_cache_capacity", d.RingCacheCapacity)
	v.SetDefault("fingerprint_init_cap", d.FingerprintInitCap)
	v.SetDefault("memory_fraction", d.MemoryFraction)
	v.SetDefault("dataset_workers", d.DatasetWorkers)

	v.SetConfigName("floodsolve")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/floodsolve")

	v.SetEnvPrefix("floodsolve")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	c := &Config{
		DefaultStrategy:    solve.StrategyID(v.GetString("default_strategy")),
		DefaultQueueCutoff: v.GetInt("default_queue_cutoff"),
		RingCacheCapacity:  v.GetInt("ring_cache_capacity"),
		FingerprintInitCap: v.GetInt("fingerprint_init_cap"),
		MemoryFraction:     v.GetFloat64("memory_fraction"),
		DatasetWorkers:     v.GetInt("dataset_workers"),
	}

	if _, err := solve.StrategyByID(c.DefaultStrategy); err != nil {
		return nil, err
	}

	log.Debug().
		Str("default-strategy", string(c.DefaultStrategy)).
		Int("ring-cache-capacity", c.RingCacheCapacity).
		Float64("memory-fraction", c.MemoryFraction).
		Msg("loaded floodsolve config")

	return c, nil
}

// FingerprintCapacityForMemory sizes the fingerprint table's initial
// capacity from a fraction of total system memory, mirroring how the
// teacher's transposition table sizes itself off github.com/pbnjay/memory.
func (c *Config) FingerprintCapacityForMemory(keyWords int) int {
	entrySize := 8*keyWords + 2 // key words plus the uint16 g-cost lane
	total := memory.TotalMemory()
	desired := int(c.MemoryFraction * float64(total) / float64(entrySize))
	if desired < c.FingerprintInitCap {
		return c.FingerprintInitCap
	}
	return desired
}
