package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/edp1096/rlc-lab/internal/consts"
	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/circuit"
	"github.com/edp1096/rlc-lab/pkg/plot"
	"github.com/edp1096/rlc-lab/pkg/util"
)

var (
	compareDuration string
	comparePlot     string
)

// Resistance multipliers swept around the base value. The spread reaches
// from well underdamped to well overdamped for typical element values.
var compareMultipliers = []float64{0.1, 1.0 / 3.0, 1.0, 3.0, 10.0}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare damping across resistance values",
	Long: `Step-simulate the circuit at five resistance values around the base
resistance, print how the damping factor and response type change, and
optionally render the side-by-side comparison figure.

Examples:
  rlclab compare
  rlclab compare -R 31.6 --plot damping.png
  rlclab compare -t parallel --duration 0.5`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareDuration, "duration", "", "simulation window in seconds")
	compareCmd.Flags().StringVar(&comparePlot, "plot", "", "write the comparison figure to this PNG path")
}

func runCompare(cmd *cobra.Command, args []string) error {
	base, err := buildCircuit()
	if err != nil {
		return err
	}

	duration, err := flagOrDefault(compareDuration, consts.CompareDuration)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}

	p := base.Params()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Damping comparison, %s circuit, L = %s, C = %s\n",
		base.Topology(), util.FormatValueFactor(p.Inductance, "H"), util.FormatValueFactor(p.Capacitance, "F"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%14s %10s %10s  %s\n", "R", "zeta", "Q", "type")

	curves := make([]plot.ComparisonCurve, 0, len(compareMultipliers))
	for _, m := range compareMultipliers {
		ckt, err := circuit.New(base.Topology().String(), p.Resistance*m, p.Inductance, p.Capacitance)
		if err != nil {
			return err
		}
		ts, err := analysis.StepResponse(ckt, duration, cfg.Sim.Points)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%14s %10.4f %10.3f  %s\n",
			util.FormatValueFactor(ckt.Params().Resistance, "Ohm"),
			ckt.DampingFactor(), ckt.QFactor(), ckt.DampingType())
		curves = append(curves, plot.ComparisonCurve{Circuit: ckt, Response: ts})
	}

	log.Info().
		Int("variants", len(curves)).
		Float64("duration", duration).
		Msg("damping comparison finished")

	if comparePlot != "" {
		if err := plot.DampingComparison(comparePlot, curves); err != nil {
			return err
		}
		log.Info().Str("path", comparePlot).Msg("wrote comparison figure")
	}
	return nil
}
