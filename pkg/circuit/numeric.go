package circuit

import "gonum.org/v1/gonum/floats"

// gradient is the finite-difference derivative of v sampled with uniform
// spacing dt. Interior points use the centered difference, the endpoints a
// one-sided one.
func gradient(v []float64, dt float64) []float64 {
	g := make([]float64, len(v))
	if len(v) < 2 {
		return g
	}
	n := len(v)
	g[0] = (v[1] - v[0]) / dt
	for i := 1; i < n-1; i++ {
		g[i] = (v[i+1] - v[i-1]) / (2 * dt)
	}
	g[n-1] = (v[n-1] - v[n-2]) / dt
	return g
}

// seriesCurrent is the loop current through the capacitor, i = C * dv/dt.
func seriesCurrent(p Parameters, dt float64, v []float64) []float64 {
	if len(v) < 2 {
		return make([]float64, len(v))
	}
	cur := gradient(v, dt)
	floats.Scale(p.Capacitance, cur)
	return cur
}

// parallelCurrent sums the three branch currents: v/R through the resistor,
// C*dv/dt through the capacitor, and the running rectangular integral of v
// over L through the inductor.
func parallelCurrent(p Parameters, dt float64, v []float64) []float64 {
	if len(v) < 2 {
		return make([]float64, len(v))
	}
	dv := gradient(v, dt)
	integral := floats.CumSum(make([]float64, len(v)), v)
	cur := make([]float64, len(v))
	for i := range v {
		cur[i] = v[i]/p.Resistance + p.Capacitance*dv[i] + integral[i]*dt/p.Inductance
	}
	return cur
}
