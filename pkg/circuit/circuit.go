package circuit

import (
	"fmt"
	"math"
	"strings"
)

// Topology selects the circuit variant.
type Topology int

const (
	Series Topology = iota
	Parallel
)

func (t Topology) String() string {
	switch t {
	case Series:
		return "series"
	case Parallel:
		return "parallel"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// ParseTopology maps a tag to a Topology. Tags are case-insensitive.
func ParseTopology(tag string) (Topology, error) {
	switch strings.ToLower(tag) {
	case "series":
		return Series, nil
	case "parallel":
		return Parallel, nil
	default:
		return 0, fmt.Errorf("circuit type must be 'series' or 'parallel', got %q: %w", tag, ErrInvalidCircuitType)
	}
}

// DampingType classifies the natural response of the circuit.
type DampingType int

const (
	Underdamped DampingType = iota
	CriticallyDamped
	Overdamped
)

func (d DampingType) String() string {
	switch d {
	case Underdamped:
		return "Underdamped"
	case CriticallyDamped:
		return "Critically Damped"
	case Overdamped:
		return "Overdamped"
	default:
		return fmt.Sprintf("damping(%d)", int(d))
	}
}

// Parameters holds the element values. All three are strictly positive.
type Parameters struct {
	Resistance  float64 // Ohm
	Inductance  float64 // H
	Capacitance float64 // F
}

// Circuit is an immutable second-order RLC network. The natural frequency is
// fixed at construction and never recomputed.
type Circuit struct {
	topology Topology
	params   Parameters
	omega0   float64 // rad/s
	f0       float64 // Hz
}

// behavior is the per-topology rule set: how to build the transfer function,
// how to compute the damping factor, and how to derive the element current
// from a simulated voltage sequence.
type behavior struct {
	transfer func(p Parameters) TransferFunction
	damping  func(p Parameters) float64
	current  func(p Parameters, dt float64, v []float64) []float64
}

var behaviors = [...]behavior{
	Series:   {transfer: seriesTransfer, damping: seriesDamping, current: seriesCurrent},
	Parallel: {transfer: parallelTransfer, damping: parallelDamping, current: parallelCurrent},
}

// New builds a circuit from a topology tag and element values.
func New(topology string, r, l, c float64) (Circuit, error) {
	top, err := ParseTopology(topology)
	if err != nil {
		return Circuit{}, err
	}
	return newCircuit(top, r, l, c)
}

func NewSeries(r, l, c float64) (Circuit, error) {
	return newCircuit(Series, r, l, c)
}

func NewParallel(r, l, c float64) (Circuit, error) {
	return newCircuit(Parallel, r, l, c)
}

func newCircuit(top Topology, r, l, c float64) (Circuit, error) {
	if !(r > 0) || !(l > 0) || !(c > 0) {
		return Circuit{}, fmt.Errorf("all circuit parameters (R, L, C) must be positive, got R=%g L=%g C=%g: %w",
			r, l, c, ErrInvalidParameter)
	}
	omega0 := 1 / math.Sqrt(l*c)
	return Circuit{
		topology: top,
		params:   Parameters{Resistance: r, Inductance: l, Capacitance: c},
		omega0:   omega0,
		f0:       omega0 / (2 * math.Pi),
	}, nil
}

func (c Circuit) Topology() Topology { return c.topology }
func (c Circuit) Params() Parameters { return c.params }

// Omega0 is the natural frequency in rad/s.
func (c Circuit) Omega0() float64 { return c.omega0 }

// F0 is the natural frequency in Hz.
func (c Circuit) F0() float64 { return c.f0 }

// DampingFactor returns zeta for the variant. R, L, C > 0 keeps it finite
// and positive.
func (c Circuit) DampingFactor() float64 {
	return behaviors[c.topology].damping(c.params)
}

// QFactor is 1/(2*zeta).
func (c Circuit) QFactor() float64 {
	return 1 / (2 * c.DampingFactor())
}

// DampingType classifies zeta. Critical damping requires zeta == 1 exactly;
// the boundary is not widened with a tolerance.
func (c Circuit) DampingType() DampingType {
	zeta := c.DampingFactor()
	switch {
	case zeta < 1:
		return Underdamped
	case zeta == 1:
		return CriticallyDamped
	default:
		return Overdamped
	}
}

// Transfer derives the variant's transfer function. Circuits are cheap value
// objects, so this is rebuilt per call rather than cached.
func (c Circuit) Transfer() TransferFunction {
	return behaviors[c.topology].transfer(c.params)
}

// CurrentFromVoltage applies the variant's current rule to a voltage
// sequence sampled with uniform spacing dt. Sequences shorter than two
// samples yield a zero current sequence of the same length.
func (c Circuit) CurrentFromVoltage(dt float64, v []float64) []float64 {
	return behaviors[c.topology].current(c.params, dt, v)
}

func seriesDamping(p Parameters) float64 {
	return p.Resistance / (2 * math.Sqrt(p.Inductance/p.Capacitance))
}

func parallelDamping(p Parameters) float64 {
	return 1 / (2 * p.Resistance * math.Sqrt(p.Capacitance/p.Inductance))
}
