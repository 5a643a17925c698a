package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/rlc-lab/pkg/circuit"
)

// DefaultToleranceDB is the band-edge level relative to the response peak.
const DefaultToleranceDB = -3.0

const bandwidthPoints = 10000

// BandwidthResult describes the band around the response peak where the
// magnitude stays above peak+tolerance. LowerHz, UpperHz, BandwidthHz and
// QMeasured are meaningful only when Resolved is true.
type BandwidthResult struct {
	PeakFrequencyHz   float64
	PeakMagnitudeDB   float64
	TargetMagnitudeDB float64

	Resolved    bool
	LowerHz     float64
	UpperHz     float64
	BandwidthHz float64
	QMeasured   float64
}

// FindBandwidth sweeps two decades either side of the natural frequency and
// locates where the magnitude crosses peak+toleranceDB. Sweeps with fewer
// than two crossings (band edges outside the swept range, or a low-pass
// response that never comes back up) leave the result unresolved rather
// than failing.
func FindBandwidth(ckt circuit.Circuit, toleranceDB float64) BandwidthResult {
	freqs := floats.LogSpan(make([]float64, bandwidthPoints), ckt.F0()/100, ckt.F0()*100)
	resp := Response(ckt, freqs)

	peak := floats.MaxIdx(resp.MagnitudeDB)
	out := BandwidthResult{
		PeakFrequencyHz:   freqs[peak],
		PeakMagnitudeDB:   resp.MagnitudeDB[peak],
		TargetMagnitudeDB: resp.MagnitudeDB[peak] + toleranceDB,
	}

	// A crossing is a sign change of (magnitude - target) between adjacent
	// samples, recorded at the left sample. No interpolation; the grid is
	// dense enough that the edge lands within one grid step.
	var crossings []int
	prev := math.Signbit(resp.MagnitudeDB[0] - out.TargetMagnitudeDB)
	for i := 1; i < len(freqs); i++ {
		cur := math.Signbit(resp.MagnitudeDB[i] - out.TargetMagnitudeDB)
		if cur != prev {
			crossings = append(crossings, i-1)
		}
		prev = cur
	}

	if len(crossings) < 2 {
		return out
	}
	out.Resolved = true
	out.LowerHz = freqs[crossings[0]]
	out.UpperHz = freqs[crossings[len(crossings)-1]]
	out.BandwidthHz = out.UpperHz - out.LowerHz
	out.QMeasured = out.PeakFrequencyHz / out.BandwidthHz
	return out
}
