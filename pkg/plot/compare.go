package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/circuit"
	"github.com/edp1096/rlc-lab/pkg/util"
)

// ComparisonCurve pairs a circuit with its simulated step response.
type ComparisonCurve struct {
	Circuit  circuit.Circuit
	Response analysis.TimeSeries
}

// DampingComparison renders overlaid step responses for circuits that share
// L and C but differ in damping, with a per-curve summary panel.
func DampingComparison(path string, curves []ComparisonCurve) error {
	if len(curves) == 0 {
		return fmt.Errorf("no curves to plot: %w", circuit.ErrInvalidParameter)
	}

	vp := newPanel("Effect of Damping Factor on Step Response", "Time (seconds)", "Voltage (V)")
	cp := newPanel("Current Response", "Time (seconds)", "Current (A)")
	pp := newPanel("Phase Plot (V vs I)", "Voltage (V)", "Current (A)")

	rows := make([]string, 0, len(curves)+1)
	rows = append(rows, "R Ohm / zeta / damping type")

	for i, cv := range curves {
		zeta := cv.Circuit.DampingFactor()
		label := fmt.Sprintf("R=%s, zeta=%.3f (%s)",
			util.FormatValueFactor(cv.Circuit.Params().Resistance, "Ohm"), zeta, cv.Circuit.DampingType())

		voltage, err := newLine(cv.Response.Time, cv.Response.Voltage, i, false)
		if err != nil {
			return err
		}
		vp.Add(voltage)
		vp.Legend.Add(label, voltage)

		current, err := newLine(cv.Response.Time, cv.Response.Current, i, false)
		if err != nil {
			return err
		}
		cp.Add(current)
		cp.Legend.Add(label, current)

		trace, err := newLine(cv.Response.Voltage, cv.Response.Current, i, false)
		if err != nil {
			return err
		}
		pp.Add(trace)

		rows = append(rows, fmt.Sprintf("%s / %.3f / %s",
			util.FormatValueFactor(cv.Circuit.Params().Resistance, "Ohm"), zeta, cv.Circuit.DampingType()))
	}

	vp.Legend.Top = true
	cp.Legend.Top = true

	summary, err := textPanel("Damping Summary", rows)
	if err != nil {
		return err
	}

	return writeTiled(path, 12*vg.Inch, 9*vg.Inch, [][]*plot.Plot{{vp, cp}, {pp, summary}})
}
