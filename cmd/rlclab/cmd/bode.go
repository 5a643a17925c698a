package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/plot"
	"github.com/edp1096/rlc-lab/pkg/util"
)

var (
	bodeRows        int
	bodePlot        string
	bodeToleranceDB float64
)

var bodeCmd = &cobra.Command{
	Use:   "bode",
	Short: "Sweep the frequency response",
	Long: `Sweep the transfer function over three decades either side of the
natural frequency, print a downsampled magnitude/phase table and the
measured bandwidth, and optionally render the Bode figure.

Examples:
  rlclab bode
  rlclab bode -t parallel -R 100 --rows 30
  rlclab bode --plot bode.png --tolerance-db -6`,
	RunE: runBode,
}

func init() {
	rootCmd.AddCommand(bodeCmd)

	bodeCmd.Flags().IntVar(&bodeRows, "rows", 20, "rows in the sweep table")
	bodeCmd.Flags().StringVar(&bodePlot, "plot", "", "write the Bode figure to this PNG path")
	bodeCmd.Flags().Float64Var(&bodeToleranceDB, "tolerance-db", analysis.DefaultToleranceDB,
		"band edge level relative to the peak, in dB")
}

func runBode(cmd *cobra.Command, args []string) error {
	ckt, err := buildCircuit()
	if err != nil {
		return err
	}

	tol := cfg.Sim.ToleranceDB
	if cmd.Flags().Changed("tolerance-db") {
		tol = bodeToleranceDB
	}

	resp := analysis.BodeSweep(ckt)
	bw := analysis.FindBandwidth(ckt, tol)

	log.Info().
		Int("points", len(resp.FrequenciesHz)).
		Float64("tolerance_db", tol).
		Msg("frequency sweep finished")

	out := cmd.OutOrStdout()
	n := len(resp.FrequenciesHz)
	step := 1
	if bodeRows > 1 && n > bodeRows {
		step = (n - 1) / (bodeRows - 1)
	}
	fmt.Fprintf(out, "%11s %10s %8s\n", "frequency", "mag (dB)", "phase")
	for i := 0; i < n; i += step {
		fmt.Fprintf(out, "%11s %10.3f %s\n",
			util.FormatFrequency(resp.FrequenciesHz[i]), resp.MagnitudeDB[i], util.FormatPhase(resp.PhaseDeg[i]))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Peak: %.3f dB at %s\n", bw.PeakMagnitudeDB, util.FormatFrequency(bw.PeakFrequencyHz))
	if bw.Resolved {
		fmt.Fprintf(out, "Band: %s to %s at %.1f dB\n",
			util.FormatFrequency(bw.LowerHz), util.FormatFrequency(bw.UpperHz), bw.TargetMagnitudeDB)
		fmt.Fprintf(out, "Bandwidth: %s\n", util.FormatFrequency(bw.BandwidthHz))
		fmt.Fprintf(out, "Measured Q: %.3f\n", bw.QMeasured)
	} else {
		fmt.Fprintln(out, "Band edges not resolved within the search grid")
	}

	if bodePlot != "" {
		if err := plot.Bode(bodePlot, ckt, resp, bw); err != nil {
			return err
		}
		log.Info().Str("path", bodePlot).Msg("wrote Bode figure")
	}
	return nil
}
