package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/coherence-sim/coherence-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed         int64         // Seed for random op generation
	logLevel     string        // Log verbosity level
	mode         string        // Regime: coherent, incoherent, or compare
	units        int           // Number of execution units
	opsPerUnit   int           // Operations issued per unit
	readRatio    float64       // Probability an op is a read
	valueMax     int64         // Exclusive upper bound for write values
	keys         []string      // Shared key namespace
	lineCapacity int           // Coherent line-table capacity (0 = default)
	opDelay      time.Duration // Optional pause between ops

	// CLI flags for scenario presets
	scenario     string // Preset name in the scenario file
	scenarioFile string // Path to the scenario YAML
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "coherence-sim",
	Short: "Behavioral simulator for cache coherence over one shared store",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the coherence simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if scenario != "" {
			applyScenario(scenario, scenarioFile)
		}

		if len(keys) == 0 {
			logrus.Fatalf("No keys configured. Exiting simulation.")
		}

		var regimes []sim.Regime
		switch mode {
		case "coherent":
			regimes = []sim.Regime{sim.RegimeCoherent}
		case "incoherent":
			regimes = []sim.Regime{sim.RegimeIncoherent}
		case "compare":
			regimes = []sim.Regime{sim.RegimeCoherent, sim.RegimeIncoherent}
		default:
			logrus.Fatalf("Unknown mode %q (want coherent, incoherent, or compare)", mode)
		}

		logrus.Infof("Starting simulation with %d units, %d ops/unit, read ratio %.2f, keys %v",
			units, opsPerUnit, readRatio, keys)

		for _, regime := range regimes {
			cfg := buildConfig(regime)
			startTime := time.Now()

			s := sim.NewSimulator(cfg)
			metrics, err := s.Run()
			if err != nil {
				logrus.Fatalf("%s run failed: %v", regime, err)
			}
			metrics.Print(time.Since(startTime))
		}

		logrus.Info("Simulation complete.")
	},
}

// buildConfig assembles a run config from the flag values. Every key starts
// at zero, matching the reference scenario's initial store.
func buildConfig(regime sim.Regime) sim.Config {
	initial := make(map[sim.Key]sim.Value, len(keys))
	for _, k := range keys {
		initial[sim.Key(k)] = 0
	}
	return sim.Config{
		Seed:   seed,
		Regime: regime,
		Core:   sim.NewCoreConfig(units, opsPerUnit, readRatio, valueMax, opDelay),
		Cache:  sim.NewCacheConfig(lineCapacity),
		Store:  sim.NewStoreConfig(initial),
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random op generation")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&mode, "mode", "compare", "Regime to run (coherent, incoherent, compare)")

	// Run shape
	runCmd.Flags().IntVar(&units, "units", 4, "Number of execution units")
	runCmd.Flags().IntVar(&opsPerUnit, "ops", 20, "Operations issued per unit")
	runCmd.Flags().Float64Var(&readRatio, "read-ratio", 0.5, "Probability an op is a read")
	runCmd.Flags().Int64Var(&valueMax, "value-max", 100, "Exclusive upper bound for write values")
	runCmd.Flags().StringSliceVar(&keys, "keys", []string{"x"}, "Comma-separated shared key namespace")
	runCmd.Flags().IntVar(&lineCapacity, "line-capacity", 0, "Coherent line-table capacity (0 = default)")
	runCmd.Flags().DurationVar(&opDelay, "op-delay", 0, "Pause between ops (e.g. 1ms)")

	// Scenario presets
	runCmd.Flags().StringVar(&scenario, "scenario", "", "Preset name from the scenario file")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "Path to the scenario YAML")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
