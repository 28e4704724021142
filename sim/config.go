package sim

import (
	"fmt"
	"time"
)

// Regime selects which unit kind a run uses.
type Regime string

const (
	RegimeCoherent   Regime = "coherent"
	RegimeIncoherent Regime = "incoherent"
)

// CoreConfig groups driver parameters for one run.
type CoreConfig struct {
	Units      int           // number of execution units (one goroutine each)
	OpsPerUnit int           // fixed-length op sequence per unit
	ReadRatio  float64       // probability an op is a read (0..1)
	ValueMax   int64         // write values drawn uniformly from [0, ValueMax)
	OpDelay    time.Duration // optional pause between ops (0 = none)
}

// CacheConfig groups per-unit cache parameters.
type CacheConfig struct {
	LineCapacity int // coherent line-table bound (0 = DefaultLineCapacity)
}

// StoreConfig fixes the shared key namespace and its initial values.
type StoreConfig struct {
	Initial map[Key]Value
}

// Config is everything a Simulator needs for one run.
type Config struct {
	Seed   int64
	Regime Regime
	Core   CoreConfig
	Cache  CacheConfig
	Store  StoreConfig
}

// NewCoreConfig creates a CoreConfig from individual parameters.
func NewCoreConfig(units, opsPerUnit int, readRatio float64, valueMax int64, opDelay time.Duration) CoreConfig {
	return CoreConfig{
		Units:      units,
		OpsPerUnit: opsPerUnit,
		ReadRatio:  readRatio,
		ValueMax:   valueMax,
		OpDelay:    opDelay,
	}
}

// NewCacheConfig creates a CacheConfig from individual parameters.
func NewCacheConfig(lineCapacity int) CacheConfig {
	return CacheConfig{LineCapacity: lineCapacity}
}

// NewStoreConfig creates a StoreConfig over the given initial values.
func NewStoreConfig(initial map[Key]Value) StoreConfig {
	return StoreConfig{Initial: initial}
}

// Validate rejects configurations no run could execute.
func (c Config) Validate() error {
	switch c.Regime {
	case RegimeCoherent, RegimeIncoherent:
	default:
		return fmt.Errorf("config: unknown regime %q", c.Regime)
	}
	if c.Core.Units <= 0 {
		return fmt.Errorf("config: units must be positive, got %d", c.Core.Units)
	}
	if c.Core.OpsPerUnit < 0 {
		return fmt.Errorf("config: ops per unit must be non-negative, got %d", c.Core.OpsPerUnit)
	}
	if c.Core.ReadRatio < 0 || c.Core.ReadRatio > 1 {
		return fmt.Errorf("config: read ratio must be within [0, 1], got %v", c.Core.ReadRatio)
	}
	if c.Core.ValueMax <= 0 {
		return fmt.Errorf("config: value max must be positive, got %d", c.Core.ValueMax)
	}
	if c.Cache.LineCapacity < 0 {
		return fmt.Errorf("config: line capacity must be non-negative, got %d", c.Cache.LineCapacity)
	}
	if len(c.Store.Initial) == 0 {
		return fmt.Errorf("config: store must be initialized with at least one key")
	}
	return nil
}
