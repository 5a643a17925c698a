package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/edp1096/rlc-lab/pkg/analysis"
	"github.com/edp1096/rlc-lab/pkg/circuit"
	"github.com/edp1096/rlc-lab/pkg/plot"
	"github.com/edp1096/rlc-lab/pkg/util"
)

var (
	simSource   string
	simFreq     string
	simAmp      string
	simDuration string
	simPoints   int
	simRows     int
	simFull     bool
	simPlot     string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate the step or sinusoidal response",
	Long: `Simulate the circuit output over time for a unit step (default)
or a sinusoidal drive, print a downsampled sample table with peak and
final values, and optionally render the time-response figure.

Examples:
  rlclab sim
  rlclab sim --duration 10m --points 2000 --rows 15
  rlclab sim --source sin --freq 50 --amp 2 --plot step.png`,
	RunE: runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)

	simCmd.Flags().StringVar(&simSource, "source", "step", "drive signal: step or sin")
	simCmd.Flags().StringVar(&simFreq, "freq", "", "sinusoid frequency in Hz")
	simCmd.Flags().StringVar(&simAmp, "amp", "", "sinusoid amplitude in V")
	simCmd.Flags().StringVar(&simDuration, "duration", "", "simulation window in seconds")
	simCmd.Flags().IntVar(&simPoints, "points", 0, "number of samples, 0 means configured default")
	simCmd.Flags().IntVar(&simRows, "rows", 10, "rows in the sample table")
	simCmd.Flags().BoolVar(&simFull, "full", false, "print every sample")
	simCmd.Flags().StringVar(&simPlot, "plot", "", "write the time-response figure to this PNG path")
}

func runSim(cmd *cobra.Command, args []string) error {
	ckt, err := buildCircuit()
	if err != nil {
		return err
	}

	duration, err := flagOrDefault(simDuration, cfg.Sim.Duration)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	points := cfg.Sim.Points
	if simPoints > 0 {
		points = simPoints
	}

	var ts analysis.TimeSeries
	var title string
	switch simSource {
	case "step":
		ts, err = analysis.StepResponse(ckt, duration, points)
		title = circuitTitle(ckt, "Step")
	case "sin":
		var freq, amp float64
		freq, err = flagOrDefault(simFreq, cfg.Source.FrequencyHz)
		if err != nil {
			return fmt.Errorf("invalid frequency: %w", err)
		}
		amp, err = flagOrDefault(simAmp, cfg.Source.Amplitude)
		if err != nil {
			return fmt.Errorf("invalid amplitude: %w", err)
		}
		ts, err = analysis.SinusoidalResponse(ckt, freq, amp, duration, points)
		title = circuitTitle(ckt, "Sinusoidal")
	default:
		return fmt.Errorf("source must be 'step' or 'sin', got %q: %w", simSource, circuit.ErrInvalidParameter)
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("source", simSource).
		Float64("duration", duration).
		Int("points", points).
		Msg("simulation finished")

	out := cmd.OutOrStdout()
	printSeries(out, ts, simRows, simFull)

	peak := 0
	for i, v := range ts.Voltage {
		if math.Abs(v) > math.Abs(ts.Voltage[peak]) {
			peak = i
		}
	}
	last := len(ts.Voltage) - 1
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Peak voltage:  %s at %.6f s\n", util.FormatValueFactor(ts.Voltage[peak], "V"), ts.Time[peak])
	fmt.Fprintf(out, "Final voltage: %s\n", util.FormatValueFactor(ts.Voltage[last], "V"))
	fmt.Fprintf(out, "Final current: %s\n", util.FormatValueFactor(ts.Current[last], "A"))

	if simPlot != "" {
		if err := plot.TimeResponse(simPlot, ckt, ts, title); err != nil {
			return err
		}
		log.Info().Str("path", simPlot).Msg("wrote time-response figure")
	}
	return nil
}

// printSeries writes an evenly thinned time/voltage/current table.
func printSeries(out io.Writer, ts analysis.TimeSeries, rows int, full bool) {
	n := len(ts.Time)
	step := 1
	if !full && rows > 1 && n > rows {
		step = (n - 1) / (rows - 1)
	}

	fmt.Fprintf(out, "%12s %9s %9s\n", "time (s)", "V", "A")
	for i := 0; i < n; i += step {
		fmt.Fprintf(out, "%12.6f %s %s\n",
			ts.Time[i], util.FormatMagnitude(ts.Voltage[i]), util.FormatMagnitude(ts.Current[i]))
	}
}
