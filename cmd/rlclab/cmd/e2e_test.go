package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/circuit"
)

// execute runs the root command with args against a clean flag state and a
// home directory without a config file, returning the combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	resetFlags(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}

func TestAnalyzeTextOutput(t *testing.T) {
	out, err := execute(t, "analyze")
	require.NoError(t, err)

	require.Contains(t, out, "Circuit Analysis")
	require.Contains(t, out, "R: 10.000 Ohm")
	require.Contains(t, out, "Natural Frequency: 503.292 Hz (3162.278 rad/s)")
	require.Contains(t, out, "Damping Factor (zeta): 1.5811")
	require.Contains(t, out, "Overdamped: No oscillation, slow return to equilibrium")
	// The low-pass default has a single -3 dB crossing, so no band is found.
	require.Contains(t, out, "Band edges not resolved within the search grid")
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := execute(t, "analyze", "--json")
	require.NoError(t, err)

	var rec analysis.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	require.Equal(t, "series", rec.CircuitType)
	require.Equal(t, "Overdamped", rec.DampingType)
	require.InDelta(t, 1.5811388300841895, rec.DampingFactor, 1e-12)
	require.InDelta(t, 503.2921210448703, rec.NaturalFrequencyHz, 1e-9)
	require.NotNil(t, rec.Overdamped)
	require.Nil(t, rec.Underdamped)
	require.Nil(t, rec.Critical)
}

func TestSimPrintsSampleTable(t *testing.T) {
	out, err := execute(t, "sim", "--duration", "0.05", "--points", "501", "--rows", "8")
	require.NoError(t, err)

	require.Contains(t, out, "time (s)")
	require.Contains(t, out, "Peak voltage:")
	require.Contains(t, out, "Final voltage:")
	require.Contains(t, out, "Final current:")
}

func TestSimWritesPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "step.png")
	_, err := execute(t, "sim", "--duration", "0.05", "--points", "301", "--plot", path)
	require.NoError(t, err)
	require.FileExists(t, path)
}

func TestSimRejectsUnknownSource(t *testing.T) {
	_, err := execute(t, "sim", "--source", "ramp")
	require.Error(t, err)
	require.ErrorContains(t, err, "source must be 'step' or 'sin'")
}

func TestBodeResolvesParallelBand(t *testing.T) {
	out, err := execute(t, "bode", "-t", "parallel")
	require.NoError(t, err)

	require.Contains(t, out, "frequency")
	require.Contains(t, out, "Peak:")
	require.Contains(t, out, "Bandwidth:")
	require.Contains(t, out, "Measured Q:")
}

func TestCompareSpansDampingRegimes(t *testing.T) {
	out, err := execute(t, "compare", "--duration", "0.05")
	require.NoError(t, err)

	require.Contains(t, out, "zeta")
	require.Contains(t, out, "Underdamped")
	require.Contains(t, out, "Overdamped")
}

func TestVerifyAgreesOnDefaultCircuit(t *testing.T) {
	out, err := execute(t, "verify")
	require.NoError(t, err)
	require.Contains(t, out, "OK")
}

func TestVerifyDisagreementIsNotAParameterError(t *testing.T) {
	// Three samples leave the trapezoidal deviation far above tolerance.
	out, err := execute(t, "verify", "--points", "3")
	require.Error(t, err)
	require.NotErrorIs(t, err, circuit.ErrInvalidParameter)
	require.ErrorContains(t, err, "disagree")
	require.Contains(t, out, "Transient: max deviation")
}

func TestRejectsBadTopology(t *testing.T) {
	_, err := execute(t, "analyze", "-t", "ring")
	require.Error(t, err)
	require.ErrorContains(t, err, "circuit type must be 'series' or 'parallel'")
}
