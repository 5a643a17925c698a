package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/rlc-lab/internal/consts"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, consts.DefaultTopology, cfg.Circuit.Topology)
	assert.Equal(t, consts.DefaultResistance, cfg.Circuit.Resistance)
	assert.Equal(t, consts.DefaultInductance, cfg.Circuit.Inductance)
	assert.Equal(t, consts.DefaultCapacitance, cfg.Circuit.Capacitance)
	assert.Equal(t, consts.DefaultSourceFrequency, cfg.Source.FrequencyHz)
	assert.Equal(t, consts.DefaultSourceAmplitude, cfg.Source.Amplitude)
	assert.Equal(t, consts.DefaultDuration, cfg.Sim.Duration)
	assert.Equal(t, consts.DefaultPoints, cfg.Sim.Points)
	assert.Equal(t, -3.0, cfg.Sim.ToleranceDB)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RLCLAB_CIRCUIT_TYPE", "parallel")
	t.Setenv("RLCLAB_CIRCUIT_RESISTANCE", "47")
	t.Setenv("RLCLAB_SIM_POINTS", "2500")
	t.Setenv("RLCLAB_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "parallel", cfg.Circuit.Topology)
	assert.Equal(t, 47.0, cfg.Circuit.Resistance)
	assert.Equal(t, 2500, cfg.Sim.Points)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched knobs keep their defaults.
	assert.Equal(t, consts.DefaultInductance, cfg.Circuit.Inductance)
}
