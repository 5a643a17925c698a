package circuit

import (
	"fmt"
	"math"
	"math/cmplx"
)

// TransferFunction is a rational function in s. Coefficients are ordered
// highest power first, the same order the state-space conversion consumes.
type TransferFunction struct {
	Num []float64
	Den []float64
}

// seriesTransfer is the capacitor-voltage response of the RLC loop,
//
//	H(s) = 1 / (L*C*s^2 + R*C*s + 1)
func seriesTransfer(p Parameters) TransferFunction {
	return TransferFunction{
		Num: []float64{1},
		Den: []float64{p.Inductance * p.Capacitance, p.Resistance * p.Capacitance, 1},
	}
}

// parallelTransfer is the resistor-voltage response of the same loop,
//
//	H(s) = R*C*s / (L*C*s^2 + R*C*s + 1)
//
// a band-pass with unit gain at the natural frequency.
func parallelTransfer(p Parameters) TransferFunction {
	return TransferFunction{
		Num: []float64{p.Resistance * p.Capacitance, 0},
		Den: []float64{p.Inductance * p.Capacitance, p.Resistance * p.Capacitance, 1},
	}
}

// EvalAt evaluates H(j*omega).
func (tf TransferFunction) EvalAt(omega float64) complex128 {
	s := complex(0, omega)
	return polyEval(tf.Num, s) / polyEval(tf.Den, s)
}

// MagnitudeDB is 20*log10|H(j*omega)|.
func (tf TransferFunction) MagnitudeDB(omega float64) float64 {
	return 20 * math.Log10(cmplx.Abs(tf.EvalAt(omega)))
}

// PhaseDegrees is the argument of H(j*omega) in degrees.
func (tf TransferFunction) PhaseDegrees(omega float64) float64 {
	return cmplx.Phase(tf.EvalAt(omega)) * 180 / math.Pi
}

func polyEval(coeffs []float64, s complex128) complex128 {
	var acc complex128
	for _, c := range coeffs {
		acc = acc*s + complex(c, 0)
	}
	return acc
}

// StateSpace converts the transfer function to controllable canonical form.
// The numerator order must not exceed the denominator order, and the leading
// denominator coefficient must be nonzero.
func (tf TransferFunction) StateSpace() (a [][]float64, b, c []float64, d float64, err error) {
	if len(tf.Den) == 0 || tf.Den[0] == 0 {
		return nil, nil, nil, 0, fmt.Errorf("transfer function denominator has no leading coefficient: %w", ErrInvalidParameter)
	}
	if len(tf.Num) > len(tf.Den) {
		return nil, nil, nil, 0, fmt.Errorf("transfer function is improper (numerator order %d > denominator order %d): %w",
			len(tf.Num)-1, len(tf.Den)-1, ErrInvalidParameter)
	}

	n := len(tf.Den) - 1 // state dimension

	// Normalize to a monic denominator and left-pad the numerator to the
	// same length.
	den := make([]float64, n)
	for i := 0; i < n; i++ {
		den[i] = tf.Den[i+1] / tf.Den[0]
	}
	num := make([]float64, len(tf.Den))
	copy(num[len(tf.Den)-len(tf.Num):], tf.Num)
	for i := range num {
		num[i] /= tf.Den[0]
	}

	d = num[0]
	if n == 0 {
		return [][]float64{}, []float64{}, []float64{}, d, nil
	}

	a = make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		a[0][j] = -den[j]
	}
	for i := 1; i < n; i++ {
		a[i][i-1] = 1
	}

	b = make([]float64, n)
	b[0] = 1

	c = make([]float64, n)
	for i := 0; i < n; i++ {
		c[i] = num[i+1] - num[0]*den[i]
	}
	return a, b, c, d, nil
}
