package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarioConfig(t *testing.T) {
	path := writeScenarioFile(t, `
version: "1"
scenarios:
  demo:
    mode: coherent
    units: 8
    ops_per_unit: 100
    read_ratio: 0.9
    value_max: 50
    keys: [a, b]
    line_capacity: 2
    op_delay_ms: 5
`)

	cfg, err := loadScenarioConfig(path)
	require.NoError(t, err)

	sc, ok := cfg.Scenarios["demo"]
	require.True(t, ok)
	assert.Equal(t, "coherent", sc.Mode)
	assert.Equal(t, 8, sc.Units)
	assert.Equal(t, 100, sc.OpsPerUnit)
	assert.Equal(t, 0.9, sc.ReadRatio)
	assert.Equal(t, int64(50), sc.ValueMax)
	assert.Equal(t, []string{"a", "b"}, sc.Keys)
	assert.Equal(t, 2, sc.LineCapacity)
	assert.Equal(t, 5, sc.OpDelayMS)
}

func TestLoadScenarioConfig_StrictFields(t *testing.T) {
	// Typos must cause errors instead of silent defaults
	path := writeScenarioFile(t, `
version: "1"
scenarios:
  demo:
    unitz: 8
`)

	_, err := loadScenarioConfig(path)
	assert.Error(t, err)
}

func TestLoadScenarioConfig_MissingFile(t *testing.T) {
	_, err := loadScenarioConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyScenario_OverlaysOnlySetFields(t *testing.T) {
	// Snapshot and restore the flag globals this test mutates
	origUnits, origOps, origMode := units, opsPerUnit, mode
	origKeys, origDelay := keys, opDelay
	t.Cleanup(func() {
		units, opsPerUnit, mode = origUnits, origOps, origMode
		keys, opDelay = origKeys, origDelay
	})

	units, opsPerUnit, mode = 4, 20, "compare"
	keys, opDelay = []string{"x"}, 0

	path := writeScenarioFile(t, `
version: "1"
scenarios:
  partial:
    units: 16
    op_delay_ms: 2
`)
	applyScenario("partial", path)

	assert.Equal(t, 16, units)
	assert.Equal(t, 2*time.Millisecond, opDelay)
	// Unset fields keep their flag values
	assert.Equal(t, 20, opsPerUnit)
	assert.Equal(t, "compare", mode)
	assert.Equal(t, []string{"x"}, keys)
}

func TestShippedScenarioFileParses(t *testing.T) {
	cfg, err := loadScenarioConfig("../scenarios.yaml")
	require.NoError(t, err)
	assert.Contains(t, cfg.Scenarios, "reference")
}
