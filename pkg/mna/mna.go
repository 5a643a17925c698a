// Package mna simulates the RLC network directly, stamping a modified
// nodal analysis system and solving it with sparse LU factorization.
// It provides an independent check on the transfer-function results.
package mna

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/rlc-lab/pkg/circuit"
	"github.com/edp1096/rlc-lab/pkg/matrix"
)

// The simulated network is the single source-driven loop
//
//	(1) --R-- (2) --L-- (3) --C-- ground
//
// with the ideal source between node 1 and ground. Series analyses read
// the capacitor voltage at node 3. Parallel analyses read the resistor
// drop between nodes 1 and 2, the band-pass divider output.
const (
	nodeDrive = 1
	nodeRL    = 2
	nodeLC    = 3
	branchV   = 4
	branchL   = 5
	sysSize   = 5
)

// StepResponse holds the simulated output voltage on a uniform time grid.
type StepResponse struct {
	Time    []float64
	Voltage []float64
}

func output(topo circuit.Topology, v1, v2, v3 float64) float64 {
	if topo == circuit.Parallel {
		return v1 - v2
	}
	return v3
}

// TransientStep simulates the unit step response over duration seconds
// sampled at points instants. Reactive elements use trapezoidal companion
// models, so the matrix is stamped once and only the companion sources
// change between steps.
func TransientStep(ckt circuit.Circuit, duration float64, points int) (StepResponse, error) {
	if !(duration > 0) {
		return StepResponse{}, fmt.Errorf("duration must be positive, got %g: %w", duration, circuit.ErrInvalidParameter)
	}
	if points < 1 {
		return StepResponse{}, fmt.Errorf("need at least 1 point, got %d: %w", points, circuit.ErrInvalidParameter)
	}

	// A single sample sees only the rest state at t = 0, before any
	// companion step runs.
	if points == 1 {
		return StepResponse{Time: []float64{0}, Voltage: []float64{0}}, nil
	}

	p := ckt.Params()
	dt := duration / float64(points-1)
	geqC := 2 * p.Capacitance / dt
	reqL := 2 * p.Inductance / dt

	sys, err := matrix.NewSystem(sysSize, false)
	if err != nil {
		return StepResponse{}, err
	}
	defer sys.Destroy()

	g := 1 / p.Resistance
	sys.Add(nodeDrive, nodeDrive, g)
	sys.Add(nodeDrive, nodeRL, -g)
	sys.Add(nodeRL, nodeDrive, -g)
	sys.Add(nodeRL, nodeRL, g)

	sys.Add(nodeLC, nodeLC, geqC)

	sys.Add(nodeRL, branchL, 1)
	sys.Add(nodeLC, branchL, -1)
	sys.Add(branchL, nodeRL, 1)
	sys.Add(branchL, nodeLC, -1)
	sys.Add(branchL, branchL, -reqL)

	sys.Add(nodeDrive, branchV, 1)
	sys.Add(branchV, nodeDrive, 1)

	time := make([]float64, points)
	floats.Span(time, 0, duration)
	v := make([]float64, points)

	// State entering the first step: the source has just risen, no
	// current flows yet and the full unit volt sits across the inductor.
	vC, iC := 0.0, 0.0
	iL, vL := 0.0, 1.0

	for k := 1; k < points; k++ {
		ieqC := geqC*vC + iC
		veqL := reqL*iL + vL

		sys.ClearRHS()
		sys.AddRHS(nodeLC, ieqC)
		sys.AddRHS(branchV, 1)
		sys.AddRHS(branchL, -veqL)

		if err := sys.Solve(); err != nil {
			return StepResponse{}, fmt.Errorf("transient step %d: %w", k, err)
		}

		v1 := sys.At(nodeDrive)
		v2 := sys.At(nodeRL)
		v3 := sys.At(nodeLC)

		iC = geqC*v3 - ieqC
		vC = v3
		iL = sys.At(branchL)
		vL = v2 - v3

		v[k] = output(ckt.Topology(), v1, v2, v3)
	}

	return StepResponse{Time: time, Voltage: v}, nil
}

// ACSweep solves the phasor network at each frequency and returns the
// complex output for a unit source, one entry per frequency. A zero
// frequency is valid and yields the DC operating point.
func ACSweep(ckt circuit.Circuit, freqsHz []float64) ([]complex128, error) {
	p := ckt.Params()
	g := 1 / p.Resistance

	sys, err := matrix.NewSystem(sysSize, true)
	if err != nil {
		return nil, err
	}
	defer sys.Destroy()

	h := make([]complex128, len(freqsHz))
	for i, f := range freqsHz {
		omega := 2 * math.Pi * f

		sys.Clear()

		sys.AddComplex(nodeDrive, nodeDrive, g, 0)
		sys.AddComplex(nodeDrive, nodeRL, -g, 0)
		sys.AddComplex(nodeRL, nodeDrive, -g, 0)
		sys.AddComplex(nodeRL, nodeRL, g, 0)

		sys.AddComplex(nodeLC, nodeLC, 0, omega*p.Capacitance)

		sys.AddComplex(nodeRL, branchL, 1, 0)
		sys.AddComplex(nodeLC, branchL, -1, 0)
		sys.AddComplex(branchL, nodeRL, 1, 0)
		sys.AddComplex(branchL, nodeLC, -1, 0)
		sys.AddComplex(branchL, branchL, 0, -omega*p.Inductance)

		sys.AddComplex(nodeDrive, branchV, 1, 0)
		sys.AddComplex(branchV, nodeDrive, 1, 0)
		sys.AddComplexRHS(branchV, 1, 0)

		if err := sys.Solve(); err != nil {
			return nil, fmt.Errorf("ac solve at %g Hz: %w", f, err)
		}

		if ckt.Topology() == circuit.Parallel {
			h[i] = sys.ComplexAt(nodeDrive) - sys.ComplexAt(nodeRL)
		} else {
			h[i] = sys.ComplexAt(nodeLC)
		}
	}

	return h, nil
}
