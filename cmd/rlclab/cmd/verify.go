package cmd

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/circuit"
	"github.com/edp1096/rlc-lab/pkg/mna"
)

var (
	verifyDuration string
	verifyPoints   int
)

// Acceptance thresholds for the closed-form vs. stamped-matrix cross-check.
// The transient bound is absolute on a unit-step response; trapezoidal
// error at the default grid sits two orders of magnitude below it.
const (
	verifyTransientTol = 1e-2
	verifyACTol        = 1e-6
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check analytic results against a stamped simulation",
	Long: `Simulate the circuit twice, once from the closed-form state-space
model and once by stamping the network into a modified nodal analysis
matrix, and report the worst disagreement in both the time and the
frequency domain. A disagreement beyond tolerance fails the command.

Lightly damped circuits ring many cycles inside the verification window,
so raise --points if the transient check fails on a high-Q circuit.

Examples:
  rlclab verify
  rlclab verify -t parallel -R 100
  rlclab verify --duration 50m --points 20001`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyDuration, "duration", "", "simulation window in seconds, default derives from the settling time")
	verifyCmd.Flags().IntVar(&verifyPoints, "points", 5001, "number of transient samples")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ckt, err := buildCircuit()
	if err != nil {
		return err
	}

	duration, err := flagOrDefault(verifyDuration, autoDuration(ckt))
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}

	want, err := analysis.StepResponse(ckt, duration, verifyPoints)
	if err != nil {
		return err
	}
	got, err := mna.TransientStep(ckt, duration, verifyPoints)
	if err != nil {
		return err
	}
	var maxTranDev float64
	for i := range want.Voltage {
		if dev := math.Abs(got.Voltage[i] - want.Voltage[i]); dev > maxTranDev {
			maxTranDev = dev
		}
	}

	freqs := floats.LogSpan(make([]float64, 201), ckt.F0()/100, ckt.F0()*100)
	h, err := mna.ACSweep(ckt, freqs)
	if err != nil {
		return err
	}
	tf := ckt.Transfer()
	var maxACDev float64
	for i, f := range freqs {
		if dev := cmplx.Abs(h[i] - tf.EvalAt(2*math.Pi*f)); dev > maxACDev {
			maxACDev = dev
		}
	}

	log.Info().
		Float64("transient_dev", maxTranDev).
		Float64("ac_dev", maxACDev).
		Msg("cross-check finished")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Cross-check, %s circuit over %.6f s, %d samples\n", ckt.Topology(), duration, verifyPoints)
	fmt.Fprintf(out, "  Transient: max deviation %.3e V (tolerance %.0e)\n", maxTranDev, verifyTransientTol)
	fmt.Fprintf(out, "  AC sweep:  max deviation %.3e over %d frequencies (tolerance %.0e)\n",
		maxACDev, len(freqs), verifyACTol)

	// A disagreement on valid input is not a parameter error; callers
	// matching ErrInvalidParameter must not see it.
	if maxTranDev > verifyTransientTol {
		return fmt.Errorf("transient responses disagree by %.3e V", maxTranDev)
	}
	if maxACDev > verifyACTol {
		return fmt.Errorf("frequency responses disagree by %.3e", maxACDev)
	}
	fmt.Fprintln(out, "  OK")
	return nil
}

// autoDuration is twice the 2% settling window, enough for every damping
// regime to flatten out.
func autoDuration(ckt circuit.Circuit) float64 {
	return 8 / (ckt.DampingFactor() * ckt.Omega0())
}
