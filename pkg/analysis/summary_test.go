package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/rlc-lab/pkg/circuit"
)

func TestSummarizeOverdamped(t *testing.T) {
	ckt, err := circuit.NewSeries(10, 1e-3, 1e-4)
	require.NoError(t, err)

	rec := Summarize(ckt)
	assert.Equal(t, "series", rec.CircuitType)
	assert.Equal(t, 10.0, rec.Resistance)
	assert.Equal(t, 1e-3, rec.Inductance)
	assert.Equal(t, 1e-4, rec.Capacitance)
	assert.InEpsilon(t, 3162.277660168379, rec.NaturalFrequencyRad, 1e-12)
	assert.InEpsilon(t, 503.2921210448703, rec.NaturalFrequencyHz, 1e-12)
	assert.InEpsilon(t, 1.5811388300841895, rec.DampingFactor, 1e-12)
	assert.InEpsilon(t, 0.31622776601683794, rec.QFactor, 1e-12)
	assert.Equal(t, "Overdamped", rec.DampingType)

	require.NotNil(t, rec.Overdamped)
	assert.Nil(t, rec.Underdamped)
	assert.Nil(t, rec.Critical)

	assert.InEpsilon(t, -8872.983346207415, rec.Overdamped.Pole1, 1e-12)
	assert.InEpsilon(t, -1127.016653792583, rec.Overdamped.Pole2, 1e-12)
	assert.InEpsilon(t, 0.00011270166537925834, rec.Overdamped.TimeConstant1, 1e-12)
	assert.InEpsilon(t, 0.0008872983346207418, rec.Overdamped.TimeConstant2, 1e-12)
	assert.Less(t, rec.Overdamped.TimeConstant1, rec.Overdamped.TimeConstant2)

	require.NotNil(t, rec.Settling)
	assert.InEpsilon(t, 8e-4, rec.Settling.TwoPercent, 1e-12)
	assert.InEpsilon(t, 6e-4, rec.Settling.FivePercent, 1e-12)
}

func TestSummarizeUnderdamped(t *testing.T) {
	ckt, err := circuit.NewParallel(10, 1e-3, 1e-4)
	require.NoError(t, err)

	rec := Summarize(ckt)
	assert.Equal(t, "parallel", rec.CircuitType)
	assert.InEpsilon(t, 0.15811388300841897, rec.DampingFactor, 1e-12)
	assert.Equal(t, "Underdamped", rec.DampingType)

	require.NotNil(t, rec.Underdamped)
	assert.Nil(t, rec.Overdamped)
	assert.Nil(t, rec.Critical)

	assert.InEpsilon(t, 3122.498999199199, rec.Underdamped.DampedFrequencyRad, 1e-12)
	assert.InEpsilon(t, 496.9611505220486, rec.Underdamped.DampedFrequencyHz, 1e-12)
	assert.InEpsilon(t, 0.002, rec.Underdamped.EnvelopeTimeConstant, 1e-12)
	assert.InEpsilon(t, 0.002012229726507833, rec.Underdamped.PeriodDamped, 1e-12)

	require.NotNil(t, rec.Settling)
	assert.InEpsilon(t, 0.008, rec.Settling.TwoPercent, 1e-12)
}

func TestSummarizeCriticallyDamped(t *testing.T) {
	l, c := 1e-3, 1e-4
	ckt, err := circuit.NewSeries(2*math.Sqrt(l/c), l, c)
	require.NoError(t, err)

	rec := Summarize(ckt)
	assert.Equal(t, 1.0, rec.DampingFactor)
	assert.Equal(t, "Critically Damped", rec.DampingType)

	require.NotNil(t, rec.Critical)
	assert.Nil(t, rec.Underdamped)
	assert.Nil(t, rec.Overdamped)
	assert.Equal(t, -ckt.Omega0(), rec.Critical.RepeatedPole)
	assert.InEpsilon(t, 1/ckt.Omega0(), rec.Critical.TimeConstant, 1e-15)
}

func TestExplainOverdampedSeries(t *testing.T) {
	ckt, err := circuit.NewSeries(10, 1e-3, 1e-4)
	require.NoError(t, err)

	lines := Explain(ckt)
	require.NotEmpty(t, lines)
	text := strings.Join(lines, "\n")

	assert.Equal(t, "Circuit Type: Series RLC Circuit", lines[0])
	assert.Contains(t, text, "Natural Frequency: 503.292 Hz (3162.278 rad/s)")
	assert.Contains(t, text, "Damping Factor (zeta): 1.5811")
	assert.Contains(t, text, "Quality Factor (Q): 0.316")
	assert.Contains(t, text, "Damping Type: Overdamped")
	assert.Contains(t, text, "Overdamped: No oscillation, slow return to equilibrium")
	assert.Contains(t, text, "Fast Time Constant: 0.0001 seconds")
	assert.Contains(t, text, "Slow Time Constant: 0.0009 seconds")
	assert.Contains(t, text, "Settling Time (2%): 0.0008 seconds")
	assert.Contains(t, text, "Settling Time (5%): 0.0006 seconds")
	assert.Contains(t, text, "Series Configuration: Same current through all components")
	assert.Contains(t, text, "minimum impedance")

	// Q commentary only applies to the oscillatory regime, even though
	// this circuit's Q is below 0.5.
	assert.NotContains(t, text, "Low Q Factor")
	assert.NotContains(t, text, "High Q Factor")
}

func TestExplainUnderdampedParallel(t *testing.T) {
	ckt, err := circuit.NewParallel(10, 1e-3, 1e-4)
	require.NoError(t, err)

	text := strings.Join(Explain(ckt), "\n")
	assert.Contains(t, text, "Circuit Type: Parallel RLC Circuit")
	assert.Contains(t, text, "Underdamped: Circuit oscillates with decreasing amplitude")
	assert.Contains(t, text, "Damped Frequency: 496.961 Hz")
	assert.Contains(t, text, "Oscillation Period: 0.0020 seconds")
	assert.Contains(t, text, "Envelope Time Constant: 0.0020 seconds")
	assert.Contains(t, text, "Parallel Configuration: Same voltage across all components")
	assert.Contains(t, text, "maximum impedance")

	// Q = 3.16 sits between the high-Q and low-Q thresholds.
	assert.NotContains(t, text, "High Q Factor")
	assert.NotContains(t, text, "Low Q Factor")
}

func TestExplainQCommentary(t *testing.T) {
	l, c := 1e-3, 1e-4

	sharp, err := circuit.NewSeries(math.Sqrt(l/c)/30, l, c)
	require.NoError(t, err)
	assert.Contains(t, strings.Join(Explain(sharp), "\n"),
		"High Q Factor: Sharp resonance, low energy loss")

	// Q = 1/(2*zeta) stays above 0.5 whenever zeta < 1, so an oscillatory
	// circuit can never trip the low-Q note.
	damped, err := circuit.NewSeries(1.6*math.Sqrt(l/c), l, c)
	require.NoError(t, err)
	assert.Equal(t, circuit.Underdamped, damped.DampingType())
	assert.NotContains(t, strings.Join(Explain(damped), "\n"), "Low Q Factor")
}

func TestExplainCriticallyDamped(t *testing.T) {
	l, c := 1e-3, 1e-4
	ckt, err := circuit.NewSeries(2*math.Sqrt(l/c), l, c)
	require.NoError(t, err)

	text := strings.Join(Explain(ckt), "\n")
	assert.Contains(t, text, "Critically Damped: Fastest approach to equilibrium without overshoot")
	assert.Contains(t, text, "Optimal balance between speed and stability")
}
