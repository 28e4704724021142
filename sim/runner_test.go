package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runnerConfig(regime Regime) Config {
	return Config{
		Seed:   42,
		Regime: regime,
		Core:   NewCoreConfig(4, 50, 0.5, 100, 0),
		Store:  NewStoreConfig(map[Key]Value{"x": 0}),
	}
}

func TestSimulatorRun_Coherent(t *testing.T) {
	metrics, err := NewSimulator(runnerConfig(RegimeCoherent)).Run()
	require.NoError(t, err)

	require.Len(t, metrics.Units, 4)
	for _, r := range metrics.Units {
		assert.True(t, r.Counters.MessagesApplicable)
		// Every miss paid one message; writes add two each on top.
		assert.GreaterOrEqual(t, r.Counters.CoherenceMessages, r.Counters.Misses)
	}
}

func TestSimulatorRun_Incoherent(t *testing.T) {
	metrics, err := NewSimulator(runnerConfig(RegimeIncoherent)).Run()
	require.NoError(t, err)

	assert.Equal(t, RegimeIncoherent, metrics.Regime)
	for _, r := range metrics.Units {
		assert.False(t, r.Counters.MessagesApplicable)
		assert.Equal(t, uint64(0), r.Counters.CoherenceMessages)
	}
}

func TestSimulatorRun_CounterConservationAcrossRun(t *testing.T) {
	// GIVEN the workload a seed deterministically generates
	cfg := runnerConfig(RegimeCoherent)
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	var wantReads uint64
	for i := 0; i < cfg.Core.Units; i++ {
		ops := GenerateOps(rng.ForSubsystem(SubsystemUnit(i)), []Key{"x"},
			cfg.Core.OpsPerUnit, cfg.Core.ReadRatio, cfg.Core.ValueMax)
		for _, op := range ops {
			if op.Kind == OpRead {
				wantReads++
			}
		}
	}

	// WHEN the run completes
	metrics, err := NewSimulator(cfg).Run()
	require.NoError(t, err)

	// THEN hits + misses across units equals the reads issued
	assert.Equal(t, wantReads, metrics.TotalHits+metrics.TotalMisses)
}

func TestSimulatorRun_SameSeedSameMetrics(t *testing.T) {
	// Two fresh runs with one seed must agree: nothing persists between
	// runs and unit streams do not depend on goroutine scheduling.
	cfg := runnerConfig(RegimeIncoherent)
	m1, err := NewSimulator(cfg).Run()
	require.NoError(t, err)
	m2, err := NewSimulator(cfg).Run()
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

func TestSimulatorRun_SingleUnitFullyDeterministic(t *testing.T) {
	// With one unit there is no cross-unit interleaving at all, so even
	// the coherent regime's counters are an exact replay.
	cfg := runnerConfig(RegimeCoherent)
	cfg.Core.Units = 1
	m1, err := NewSimulator(cfg).Run()
	require.NoError(t, err)
	m2, err := NewSimulator(cfg).Run()
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

func TestSimulatorRun_InvalidConfig(t *testing.T) {
	cfg := runnerConfig(RegimeCoherent)
	cfg.Core.Units = 0
	_, err := NewSimulator(cfg).Run()
	assert.Error(t, err)
}

func TestSimulatorRun_ManyKeys(t *testing.T) {
	cfg := runnerConfig(RegimeCoherent)
	cfg.Store = NewStoreConfig(map[Key]Value{"a": 1, "b": 2, "c": 3})
	metrics, err := NewSimulator(cfg).Run()
	require.NoError(t, err)
	assert.Equal(t, RegimeCoherent, metrics.Regime)
}
