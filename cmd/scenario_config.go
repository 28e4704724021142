package cmd

import (
	"bytes"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scenario describes a preset run configuration in scenarios.yaml. Zero
// fields leave the corresponding flag value untouched.
type Scenario struct {
	Mode         string   `yaml:"mode"`
	Units        int      `yaml:"units"`
	OpsPerUnit   int      `yaml:"ops_per_unit"`
	ReadRatio    float64  `yaml:"read_ratio"`
	ValueMax     int64    `yaml:"value_max"`
	Keys         []string `yaml:"keys"`
	LineCapacity int      `yaml:"line_capacity"`
	OpDelayMS    int      `yaml:"op_delay_ms"`
}

// ScenarioConfig represents the full scenarios.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioConfig struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// loadScenarioConfig parses a scenario file into a ScenarioConfig struct.
// Uses strict field checking so typos cause errors instead of silent defaults.
func loadScenarioConfig(path string) (ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return ScenarioConfig{}, err
	}
	return cfg, nil
}

// applyScenario overlays the named preset onto the flag values.
func applyScenario(name, path string) {
	cfg, err := loadScenarioConfig(path)
	if err != nil {
		logrus.Fatalf("Failed to load scenario file %s: %v", path, err)
	}
	sc, ok := cfg.Scenarios[name]
	if !ok {
		logrus.Fatalf("Scenario %q not found in %s", name, path)
	}

	if sc.Mode != "" {
		mode = sc.Mode
	}
	if sc.Units != 0 {
		units = sc.Units
	}
	if sc.OpsPerUnit != 0 {
		opsPerUnit = sc.OpsPerUnit
	}
	if sc.ReadRatio != 0 {
		readRatio = sc.ReadRatio
	}
	if sc.ValueMax != 0 {
		valueMax = sc.ValueMax
	}
	if len(sc.Keys) != 0 {
		keys = sc.Keys
	}
	if sc.LineCapacity != 0 {
		lineCapacity = sc.LineCapacity
	}
	if sc.OpDelayMS != 0 {
		opDelay = time.Duration(sc.OpDelayMS) * time.Millisecond
	}
}
