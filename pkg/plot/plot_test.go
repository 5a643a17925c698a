package plot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/circuit"
)

func decodePNG(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestTimeResponseWritesPNG(t *testing.T) {
	// Underdamped, so the envelope branch renders too.
	ckt, err := circuit.NewSeries(10, 1e-2, 1e-4)
	require.NoError(t, err)
	ts, err := analysis.StepResponse(ckt, 0.05, 501)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "step.png")
	require.NoError(t, TimeResponse(path, ckt, ts, "Series RLC Circuit - Step Response"))

	w, h := decodePNG(t, path)
	assert.Positive(t, w)
	assert.Positive(t, h)
}

func TestTimeResponseBadPath(t *testing.T) {
	ckt, err := circuit.NewSeries(10, 1e-3, 1e-4)
	require.NoError(t, err)
	ts, err := analysis.StepResponse(ckt, 0.01, 101)
	require.NoError(t, err)

	err = TimeResponse(filepath.Join(t.TempDir(), "missing", "step.png"), ckt, ts, "t")
	assert.Error(t, err)
}

func TestBodeWritesPNG(t *testing.T) {
	ckt, err := circuit.NewParallel(10, 1e-3, 1e-4)
	require.NoError(t, err)
	resp := analysis.BodeSweep(ckt)
	bw := analysis.FindBandwidth(ckt, analysis.DefaultToleranceDB)
	require.True(t, bw.Resolved)

	path := filepath.Join(t.TempDir(), "bode.png")
	require.NoError(t, Bode(path, ckt, resp, bw))

	w, h := decodePNG(t, path)
	assert.Positive(t, w)
	assert.Positive(t, h)
}

func TestBodeUnresolvedBandwidth(t *testing.T) {
	// A low-pass response has a single 3 dB crossing, so the band stays
	// unresolved and no band markers are drawn.
	ckt, err := circuit.NewSeries(10, 1e-3, 1e-4)
	require.NoError(t, err)
	resp := analysis.BodeSweep(ckt)
	bw := analysis.FindBandwidth(ckt, analysis.DefaultToleranceDB)
	require.False(t, bw.Resolved)

	path := filepath.Join(t.TempDir(), "bode.png")
	require.NoError(t, Bode(path, ckt, resp, bw))

	w, h := decodePNG(t, path)
	assert.Positive(t, w)
	assert.Positive(t, h)
}

func TestDampingComparisonWritesPNG(t *testing.T) {
	curves := make([]ComparisonCurve, 0, 3)
	for _, r := range []float64{1, 10, 100} {
		ckt, err := circuit.NewSeries(r, 1e-3, 1e-4)
		require.NoError(t, err)
		ts, err := analysis.StepResponse(ckt, 0.05, 301)
		require.NoError(t, err)
		curves = append(curves, ComparisonCurve{Circuit: ckt, Response: ts})
	}

	path := filepath.Join(t.TempDir(), "compare.png")
	require.NoError(t, DampingComparison(path, curves))

	w, h := decodePNG(t, path)
	assert.Positive(t, w)
	assert.Positive(t, h)
}

func TestDampingComparisonRejectsEmpty(t *testing.T) {
	err := DampingComparison(filepath.Join(t.TempDir(), "compare.png"), nil)
	assert.ErrorIs(t, err, circuit.ErrInvalidParameter)
}
