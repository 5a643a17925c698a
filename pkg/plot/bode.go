package plot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/circuit"
)

// Bode renders stacked magnitude and phase panels on logarithmic frequency
// axes with a resonance marker at f0. Band-edge markers are added when the
// bandwidth search resolved both crossings.
func Bode(path string, ckt circuit.Circuit, resp analysis.FrequencyResponse, bw analysis.BandwidthResult) error {
	title := fmt.Sprintf("%s RLC Circuit - Frequency Response", topologyTitle(ckt.Topology()))

	mag := newPanel(title, "", "Magnitude (dB)")
	mag.X.Scale = plot.LogScale{}
	mag.X.Tick.Marker = plot.LogTicks{Prec: -1}

	magLine, err := newLine(resp.FrequenciesHz, resp.MagnitudeDB, 0, false)
	if err != nil {
		return err
	}
	mag.Add(magLine)
	mag.Legend.Add("Magnitude Response", magLine)
	mag.Legend.Top = true

	magMin := floats.Min(resp.MagnitudeDB)
	magMax := floats.Max(resp.MagnitudeDB)
	f0Mark, err := markerLine(ckt.F0(), magMin, magMax, 1)
	if err != nil {
		return err
	}
	mag.Add(f0Mark)
	mag.Legend.Add(fmt.Sprintf("f0 = %.3f Hz", ckt.F0()), f0Mark)

	if bw.Resolved {
		lower, err := markerLine(bw.LowerHz, magMin, magMax, 2)
		if err != nil {
			return err
		}
		upper, err := markerLine(bw.UpperHz, magMin, magMax, 2)
		if err != nil {
			return err
		}
		mag.Add(lower, upper)
		mag.Legend.Add(fmt.Sprintf("%.1f dB band", bw.TargetMagnitudeDB-bw.PeakMagnitudeDB), lower)
	}

	ph := newPanel("Phase Response", "Frequency (Hz)", "Phase (degrees)")
	ph.X.Scale = plot.LogScale{}
	ph.X.Tick.Marker = plot.LogTicks{Prec: -1}

	phLine, err := newLine(resp.FrequenciesHz, resp.PhaseDeg, 1, false)
	if err != nil {
		return err
	}
	ph.Add(phLine)

	phMark, err := markerLine(ckt.F0(), floats.Min(resp.PhaseDeg), floats.Max(resp.PhaseDeg), 1)
	if err != nil {
		return err
	}
	ph.Add(phMark)
	ph.Legend.Add(fmt.Sprintf("f0 = %.3f Hz", ckt.F0()), phMark)
	ph.Legend.Top = true

	return writeTiled(path, 10*vg.Inch, 8*vg.Inch, [][]*plot.Plot{{mag}, {ph}})
}
