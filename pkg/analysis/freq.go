package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/rlc-lab/pkg/circuit"
)

const bodePoints = 1000

// FrequencyResponse holds H(j*omega) samples over a frequency grid. All
// slices share the length and order of the input frequencies.
type FrequencyResponse struct {
	FrequenciesHz  []float64
	FrequenciesRad []float64
	MagnitudeDB    []float64
	Magnitude      []float64
	PhaseDeg       []float64
	PhaseRad       []float64
}

// Response evaluates the circuit's transfer function at each frequency
// given in Hz.
func Response(ckt circuit.Circuit, freqsHz []float64) FrequencyResponse {
	tf := ckt.Transfer()
	n := len(freqsHz)
	resp := FrequencyResponse{
		FrequenciesHz:  freqsHz,
		FrequenciesRad: make([]float64, n),
		MagnitudeDB:    make([]float64, n),
		Magnitude:      make([]float64, n),
		PhaseDeg:       make([]float64, n),
		PhaseRad:       make([]float64, n),
	}
	for i, f := range freqsHz {
		omega := 2 * math.Pi * f
		h := tf.EvalAt(omega)

		resp.FrequenciesRad[i] = omega
		resp.Magnitude[i] = cmplx.Abs(h)
		resp.MagnitudeDB[i] = 20 * math.Log10(resp.Magnitude[i])
		resp.PhaseRad[i] = cmplx.Phase(h)
		resp.PhaseDeg[i] = resp.PhaseRad[i] * 180 / math.Pi
	}
	return resp
}

// BodeSweep samples three decades either side of the natural frequency on a
// logarithmic grid.
func BodeSweep(ckt circuit.Circuit) FrequencyResponse {
	freqs := floats.LogSpan(make([]float64, bodePoints), ckt.F0()/1000, ckt.F0()*1000)
	return Response(ckt, freqs)
}
