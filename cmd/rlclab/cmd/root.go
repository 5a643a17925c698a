// Package cmd implements the rlclab command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/edp1096/rlc-lab/internal/config"
	"github.com/edp1096/rlc-lab/pkg/circuit"
	"github.com/edp1096/rlc-lab/pkg/util"
)

var (
	cfg *config.Config

	// Element flags are strings so values like "4.7k" or "100u" parse
	// through util.ParseValue. Empty means "use the configured default".
	circuitType string
	resistance  string
	inductance  string
	capacitance string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "rlclab",
	Short: "RLC circuit analysis and simulation",
	Long: `rlclab analyzes series and parallel RLC circuits: damping
classification, transfer functions, time-domain simulation, frequency
sweeps and bandwidth measurement, with optional PNG figures.

Element flags accept SPICE-style suffixes:
  rlclab analyze -t series -R 10 -L 1m -C 100u
  rlclab sim --source sin --freq 50 --plot step.png
  rlclab bode -R 4.7k
  rlclab compare
  rlclab verify`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps failures to exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initRuntime)

	rootCmd.PersistentFlags().StringVarP(&circuitType, "type", "t", "", "circuit topology: series or parallel")
	rootCmd.PersistentFlags().StringVarP(&resistance, "resistance", "R", "", "resistance in Ohm, SI suffixes accepted")
	rootCmd.PersistentFlags().StringVarP(&inductance, "inductance", "L", "", "inductance in H, SI suffixes accepted")
	rootCmd.PersistentFlags().StringVarP(&capacitance, "capacitance", "C", "", "capacitance in F, SI suffixes accepted")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

// initRuntime loads the layered configuration and points the event log at
// stderr so stdout carries only results.
func initRuntime() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	lv, err := zerolog.ParseLevel(level)
	if err != nil {
		lv = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lv)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// buildCircuit resolves topology and element values, flags first and
// configured defaults second.
func buildCircuit() (circuit.Circuit, error) {
	topo := cfg.Circuit.Topology
	if circuitType != "" {
		topo = circuitType
	}

	r, err := flagOrDefault(resistance, cfg.Circuit.Resistance)
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("invalid resistance: %w", err)
	}
	l, err := flagOrDefault(inductance, cfg.Circuit.Inductance)
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("invalid inductance: %w", err)
	}
	c, err := flagOrDefault(capacitance, cfg.Circuit.Capacitance)
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("invalid capacitance: %w", err)
	}

	ckt, err := circuit.New(topo, r, l, c)
	if err != nil {
		return circuit.Circuit{}, err
	}

	log.Debug().
		Str("topology", ckt.Topology().String()).
		Float64("resistance", r).
		Float64("inductance", l).
		Float64("capacitance", c).
		Msg("circuit built")
	return ckt, nil
}

func flagOrDefault(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return util.ParseValue(s)
}

func circuitTitle(ckt circuit.Circuit, response string) string {
	name := "Series"
	if ckt.Topology() == circuit.Parallel {
		name = "Parallel"
	}
	return fmt.Sprintf("%s RLC Circuit - %s Response", name, response)
}
