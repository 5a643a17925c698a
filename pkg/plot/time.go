package plot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/circuit"
	"github.com/edp1096/rlc-lab/pkg/util"
)

// TimeResponse renders the time-domain figure: voltage and current traces,
// the V-I trajectory and a parameter box. Underdamped circuits get decay
// envelope curves on the voltage panel.
func TimeResponse(path string, ckt circuit.Circuit, ts analysis.TimeSeries, title string) error {
	vp := newPanel(title, "Time (seconds)", "Voltage (V)")
	voltage, err := newLine(ts.Time, ts.Voltage, 0, false)
	if err != nil {
		return err
	}
	vp.Add(voltage)
	vp.Legend.Add("Voltage Response", voltage)
	vp.Legend.Top = true

	if ckt.DampingFactor() < 1 {
		if err := addEnvelope(vp, ckt, ts); err != nil {
			return err
		}
	}

	cp := newPanel("Current vs Time", "Time (seconds)", "Current (A)")
	current, err := newLine(ts.Time, ts.Current, 1, false)
	if err != nil {
		return err
	}
	cp.Add(current)
	cp.Legend.Add("Current Response", current)
	cp.Legend.Top = true

	pp := newPanel("Phase Plot (V vs I)", "Voltage (V)", "Current (A)")
	trace, err := newLine(ts.Voltage, ts.Current, 2, false)
	if err != nil {
		return err
	}
	pp.Add(trace)

	params, err := textPanel("Circuit Parameters", paramLines(ckt))
	if err != nil {
		return err
	}

	return writeTiled(path, 12*vg.Inch, 9*vg.Inch, [][]*plot.Plot{{vp, pp}, {cp, params}})
}

// addEnvelope overlays +/- peak*exp(-t/tau) decay bounds on the panel.
func addEnvelope(p *plot.Plot, ckt circuit.Circuit, ts analysis.TimeSeries) error {
	tau := 1 / (ckt.DampingFactor() * ckt.Omega0())
	peak := floats.Norm(ts.Voltage, math.Inf(1))

	upper := make([]float64, len(ts.Time))
	lower := make([]float64, len(ts.Time))
	for i, tm := range ts.Time {
		upper[i] = peak * math.Exp(-tm/tau)
		lower[i] = -upper[i]
	}

	up, err := newLine(ts.Time, upper, 1, true)
	if err != nil {
		return err
	}
	down, err := newLine(ts.Time, lower, 1, true)
	if err != nil {
		return err
	}
	p.Add(up, down)
	p.Legend.Add("Envelope", up)
	return nil
}

func paramLines(ckt circuit.Circuit) []string {
	p := ckt.Params()
	return []string{
		"R = " + util.FormatValueFactor(p.Resistance, "Ohm"),
		"L = " + util.FormatValueFactor(p.Inductance, "H"),
		"C = " + util.FormatValueFactor(p.Capacitance, "F"),
		fmt.Sprintf("f0 = %.3f Hz", ckt.F0()),
		fmt.Sprintf("zeta = %.4f", ckt.DampingFactor()),
		fmt.Sprintf("Q = %.3f", ckt.QFactor()),
		"Type: " + ckt.DampingType().String(),
	}
}
