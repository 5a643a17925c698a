package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/util"
)

var (
	analyzeJSON        bool
	analyzeToleranceDB float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize damping, resonance and bandwidth",
	Long: `Classify the damping regime, report the natural frequency, Q
factor and regime-specific time constants, then search for the -3 dB
bandwidth around the magnitude peak.

Examples:
  rlclab analyze
  rlclab analyze -t parallel -R 100 -L 10m -C 1u
  rlclab analyze --json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the summary record as JSON")
	analyzeCmd.Flags().Float64Var(&analyzeToleranceDB, "tolerance-db", analysis.DefaultToleranceDB,
		"band edge level in dB relative to the peak")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ckt, err := buildCircuit()
	if err != nil {
		return err
	}

	tol := cfg.Sim.ToleranceDB
	if cmd.Flags().Changed("tolerance-db") {
		tol = analyzeToleranceDB
	}

	log.Info().
		Str("topology", ckt.Topology().String()).
		Float64("tolerance_db", tol).
		Msg("analyzing circuit")

	out := cmd.OutOrStdout()

	if analyzeJSON {
		data, err := json.MarshalIndent(analysis.Summarize(ckt), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	p := ckt.Params()
	fmt.Fprintln(out, "Circuit Analysis")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "R: %s\n", util.FormatValueFactor(p.Resistance, "Ohm"))
	fmt.Fprintf(out, "L: %s\n", util.FormatValueFactor(p.Inductance, "H"))
	fmt.Fprintf(out, "C: %s\n", util.FormatValueFactor(p.Capacitance, "F"))
	fmt.Fprintln(out)

	for _, line := range analysis.Explain(ckt) {
		fmt.Fprintln(out, line)
	}

	bw := analysis.FindBandwidth(ckt, tol)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Bandwidth")
	fmt.Fprintln(out, "=========")
	fmt.Fprintf(out, "Peak: %.3f dB at %s\n", bw.PeakMagnitudeDB, util.FormatFrequency(bw.PeakFrequencyHz))
	if bw.Resolved {
		fmt.Fprintf(out, "Band: %s to %s at %.1f dB\n",
			util.FormatFrequency(bw.LowerHz), util.FormatFrequency(bw.UpperHz), tol)
		fmt.Fprintf(out, "Bandwidth: %s\n", util.FormatFrequency(bw.BandwidthHz))
		fmt.Fprintf(out, "Measured Q: %.3f\n", bw.QMeasured)
	} else {
		fmt.Fprintln(out, "Band edges not resolved within the search grid")
	}
	return nil
}
