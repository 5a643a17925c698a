// Package config loads runtime settings from defaults, an optional
// rlclab.yaml file and RLCLAB_-prefixed environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/edp1096/rlc-lab/internal/consts"
	"github.com/edp1096/rlc-lab/pkg/analysis"
)

// Config holds every runtime knob. Command flags may still override
// individual fields at the CLI layer.
type Config struct {
	Circuit CircuitConfig
	Source  SourceConfig
	Sim     SimConfig
	Log     LogConfig
}

// CircuitConfig selects the topology and element values.
type CircuitConfig struct {
	Topology    string
	Resistance  float64
	Inductance  float64
	Capacitance float64
}

// SourceConfig describes the sinusoidal drive.
type SourceConfig struct {
	FrequencyHz float64
	Amplitude   float64
}

// SimConfig controls simulation grids and the bandwidth search.
type SimConfig struct {
	Duration    float64
	Points      int
	ToleranceDB float64
}

// LogConfig controls the stderr event log.
type LogConfig struct {
	Level string
}

// Load reads defaults, then rlclab.yaml when present, then environment
// variables. A missing config file is not an error; a malformed one is.
func Load() (*Config, error) {
	viper.SetDefault("circuit.type", consts.DefaultTopology)
	viper.SetDefault("circuit.resistance", consts.DefaultResistance)
	viper.SetDefault("circuit.inductance", consts.DefaultInductance)
	viper.SetDefault("circuit.capacitance", consts.DefaultCapacitance)
	viper.SetDefault("source.frequency", consts.DefaultSourceFrequency)
	viper.SetDefault("source.amplitude", consts.DefaultSourceAmplitude)
	viper.SetDefault("sim.duration", consts.DefaultDuration)
	viper.SetDefault("sim.points", consts.DefaultPoints)
	viper.SetDefault("sim.tolerance_db", analysis.DefaultToleranceDB)
	viper.SetDefault("log.level", "info")

	viper.SetConfigName("rlclab")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "rlclab"))
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.SetEnvPrefix("RLCLAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.Circuit.Topology = viper.GetString("circuit.type")
	cfg.Circuit.Resistance = viper.GetFloat64("circuit.resistance")
	cfg.Circuit.Inductance = viper.GetFloat64("circuit.inductance")
	cfg.Circuit.Capacitance = viper.GetFloat64("circuit.capacitance")
	cfg.Source.FrequencyHz = viper.GetFloat64("source.frequency")
	cfg.Source.Amplitude = viper.GetFloat64("source.amplitude")
	cfg.Sim.Duration = viper.GetFloat64("sim.duration")
	cfg.Sim.Points = viper.GetInt("sim.points")
	cfg.Sim.ToleranceDB = viper.GetFloat64("sim.tolerance_db")
	cfg.Log.Level = viper.GetString("log.level")

	return cfg, nil
}
