package analysis

import (
	"fmt"
	"math"

	"github.com/edp1096/rlc-lab/pkg/circuit"
)

// Record is the structured analysis summary. Exactly one of the regime
// details is set, matching DampingType.
type Record struct {
	CircuitType string  `json:"circuit_type"`
	Resistance  float64 `json:"resistance"`
	Inductance  float64 `json:"inductance"`
	Capacitance float64 `json:"capacitance"`

	NaturalFrequencyRad float64 `json:"natural_frequency_rad"`
	NaturalFrequencyHz  float64 `json:"natural_frequency_hz"`
	DampingFactor       float64 `json:"damping_factor"`
	QFactor             float64 `json:"q_factor"`
	DampingType         string  `json:"damping_type"`

	Underdamped *UnderdampedDetail `json:"underdamped,omitempty"`
	Overdamped  *OverdampedDetail  `json:"overdamped,omitempty"`
	Critical    *CriticalDetail    `json:"critically_damped,omitempty"`
	Settling    *SettlingTimes     `json:"settling,omitempty"`
}

// UnderdampedDetail describes the oscillatory regime.
type UnderdampedDetail struct {
	DampedFrequencyRad   float64 `json:"damped_frequency_rad"`
	DampedFrequencyHz    float64 `json:"damped_frequency_hz"`
	EnvelopeTimeConstant float64 `json:"envelope_time_constant"`
	PeriodDamped         float64 `json:"period_damped"`
}

// OverdampedDetail holds the two real poles. Pole1 is the fast pole
// (farther from the origin), so TimeConstant1 < TimeConstant2.
type OverdampedDetail struct {
	Pole1         float64 `json:"pole_1"`
	Pole2         float64 `json:"pole_2"`
	TimeConstant1 float64 `json:"time_constant_1"`
	TimeConstant2 float64 `json:"time_constant_2"`
}

// CriticalDetail holds the repeated pole at -omega0.
type CriticalDetail struct {
	RepeatedPole float64 `json:"repeated_pole"`
	TimeConstant float64 `json:"time_constant"`
}

// SettlingTimes are the 2% and 5% step-response settling estimates.
type SettlingTimes struct {
	TwoPercent  float64 `json:"settling_time_2_percent"`
	FivePercent float64 `json:"settling_time_5_percent"`
}

// Summarize computes the derived quantities of the circuit.
func Summarize(ckt circuit.Circuit) Record {
	p := ckt.Params()
	zeta := ckt.DampingFactor()
	omega0 := ckt.Omega0()

	rec := Record{
		CircuitType:         ckt.Topology().String(),
		Resistance:          p.Resistance,
		Inductance:          p.Inductance,
		Capacitance:         p.Capacitance,
		NaturalFrequencyRad: omega0,
		NaturalFrequencyHz:  ckt.F0(),
		DampingFactor:       zeta,
		QFactor:             ckt.QFactor(),
		DampingType:         ckt.DampingType().String(),
	}

	switch {
	case zeta < 1:
		omegaD := omega0 * math.Sqrt(1-zeta*zeta)
		rec.Underdamped = &UnderdampedDetail{
			DampedFrequencyRad:   omegaD,
			DampedFrequencyHz:    omegaD / (2 * math.Pi),
			EnvelopeTimeConstant: 1 / (zeta * omega0),
			PeriodDamped:         2 * math.Pi / omegaD,
		}
	case zeta > 1:
		root := math.Sqrt(zeta*zeta - 1)
		s1 := -omega0 * (zeta + root)
		s2 := -omega0 * (zeta - root)
		rec.Overdamped = &OverdampedDetail{
			Pole1:         s1,
			Pole2:         s2,
			TimeConstant1: -1 / s1,
			TimeConstant2: -1 / s2,
		}
	default:
		rec.Critical = &CriticalDetail{
			RepeatedPole: -omega0,
			TimeConstant: 1 / omega0,
		}
	}

	if zeta > 0 {
		rec.Settling = &SettlingTimes{
			TwoPercent:  4 / (zeta * omega0),
			FivePercent: 3 / (zeta * omega0),
		}
	}
	return rec
}

// Explain renders the summary as ordered commentary lines for display.
func Explain(ckt circuit.Circuit) []string {
	rec := Summarize(ckt)

	lines := []string{
		fmt.Sprintf("Circuit Type: %s RLC Circuit", topologyTitle(ckt.Topology())),
		fmt.Sprintf("Natural Frequency: %.3f Hz (%.3f rad/s)", rec.NaturalFrequencyHz, rec.NaturalFrequencyRad),
		fmt.Sprintf("Damping Factor (zeta): %.4f", rec.DampingFactor),
		fmt.Sprintf("Quality Factor (Q): %.3f", rec.QFactor),
		fmt.Sprintf("Damping Type: %s", rec.DampingType),
	}

	switch {
	case rec.Underdamped != nil:
		lines = append(lines,
			"Underdamped: Circuit oscillates with decreasing amplitude",
			fmt.Sprintf("   Damped Frequency: %.3f Hz", rec.Underdamped.DampedFrequencyHz),
			fmt.Sprintf("   Oscillation Period: %.4f seconds", rec.Underdamped.PeriodDamped),
			fmt.Sprintf("   Envelope Time Constant: %.4f seconds", rec.Underdamped.EnvelopeTimeConstant),
		)
		if rec.QFactor > 10 {
			lines = append(lines, "High Q Factor: Sharp resonance, low energy loss")
		} else if rec.QFactor < 0.5 {
			lines = append(lines, "Low Q Factor: Broad resonance, high energy loss")
		}
	case rec.Overdamped != nil:
		lines = append(lines,
			"Overdamped: No oscillation, slow return to equilibrium",
			fmt.Sprintf("   Fast Time Constant: %.4f seconds", rec.Overdamped.TimeConstant1),
			fmt.Sprintf("   Slow Time Constant: %.4f seconds", rec.Overdamped.TimeConstant2),
			"   Response is the sum of two exponential decays",
		)
	default:
		lines = append(lines,
			"Critically Damped: Fastest approach to equilibrium without overshoot",
			fmt.Sprintf("   Time Constant: %.4f seconds", rec.Critical.TimeConstant),
			"   Optimal balance between speed and stability",
		)
	}

	if rec.Settling != nil {
		lines = append(lines,
			fmt.Sprintf("Settling Time (2%%): %.4f seconds", rec.Settling.TwoPercent),
			fmt.Sprintf("Settling Time (5%%): %.4f seconds", rec.Settling.FivePercent),
		)
	}

	if ckt.Topology() == circuit.Series {
		lines = append(lines,
			"Series Configuration: Same current through all components",
			"   Voltage divides across R, L, and C",
			"   At resonance: X_L = X_C, minimum impedance",
		)
	} else {
		lines = append(lines,
			"Parallel Configuration: Same voltage across all components",
			"   Current divides through R, L, and C branches",
			"   At resonance: X_L = X_C, maximum impedance",
		)
	}
	return lines
}

func topologyTitle(t circuit.Topology) string {
	if t == circuit.Series {
		return "Series"
	}
	return "Parallel"
}
