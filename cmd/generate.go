package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/signal-workbench/internal/app"
	"github.com/RyanBlaney/signal-workbench/pkg/signal"
	"github.com/RyanBlaney/signal-workbench/pkg/storage"
)

var (
	// Generate command flags
	genType       string
	genFrequency  float64
	genAmplitude  float64
	genPhase      float64
	genOffset     float64
	genSampleRate float64
	genDuration   float64
	genDutyCycle  float64
	genRiseTime   float64
	genNoiseLevel float64
	genChirpStart float64
	genChirpEnd   float64
	genSavePath   string
	genStats      bool
	genFFT        bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "Generate a single waveform",
	Long: `Generate a single parametric waveform and print its descriptive
statistics, optionally exporting it as a two-column CSV.

Examples:
  # 1 kHz sine for one second at 44.1 kHz
  signal-workbench generate --type sine --frequency 1000

  # 30% duty cycle square wave exported to CSV
  signal-workbench generate --type square --duty-cycle 0.3 --save wave.csv

  # Chirp sweep with FFT summary
  signal-workbench generate --type chirp --chirp-start 100 --chirp-end 8000 --fft`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genType, "type", "t", "sine",
		"signal type (sine, cosine, square, sawtooth, triangle, noise, chirp, pulse, complex)")
	generateCmd.Flags().Float64VarP(&genFrequency, "frequency", "f", 1000.0, "frequency in Hz")
	generateCmd.Flags().Float64VarP(&genAmplitude, "amplitude", "a", 1.0, "amplitude in volts")
	generateCmd.Flags().Float64Var(&genPhase, "phase", 0.0, "phase in radians")
	generateCmd.Flags().Float64Var(&genOffset, "offset", 0.0, "DC offset in volts")
	generateCmd.Flags().Float64VarP(&genSampleRate, "sample-rate", "r", 44100.0, "sample rate in Hz")
	generateCmd.Flags().Float64VarP(&genDuration, "duration", "d", 1.0, "duration in seconds")
	generateCmd.Flags().Float64Var(&genDutyCycle, "duty-cycle", 0.5, "duty cycle for square/pulse (0-1)")
	generateCmd.Flags().Float64Var(&genRiseTime, "rise-time", 0.01, "rise time for pulse in seconds")
	generateCmd.Flags().Float64Var(&genNoiseLevel, "noise-level", 0.1, "noise level for noise signals")
	generateCmd.Flags().Float64Var(&genChirpStart, "chirp-start", 100.0, "chirp start frequency in Hz")
	generateCmd.Flags().Float64Var(&genChirpEnd, "chirp-end", 10000.0, "chirp end frequency in Hz")
	generateCmd.Flags().StringVar(&genSavePath, "save", "", "save the signal as CSV to this path")
	generateCmd.Flags().BoolVar(&genStats, "stats", true, "include waveform statistics")
	generateCmd.Flags().BoolVar(&genFFT, "fft", false, "include dominant frequency from FFT")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := &app.Context{
		OutputFormat: viper.GetString("output_format"),
		Verbose:      viper.GetBool("verbose"),
	}

	workbench, err := app.NewWorkbench(ctx)
	if err != nil {
		return err
	}

	params, err := generateParams(cmd, workbench)
	if err != nil {
		return err
	}

	timeGrid, samples, err := workbench.Generator().Generate(params)
	if err != nil {
		return err
	}

	result := map[string]any{
		"parameters": params,
		"samples":    len(samples),
	}

	if genStats {
		stats, err := workbench.Analyzer().ComputeStatistics(samples)
		if err != nil {
			return err
		}
		result["statistics"] = stats
	}

	if genFFT {
		freqs, mags, err := workbench.Analyzer().ComputeFFT(samples, params.SampleRate)
		if err != nil {
			return err
		}
		result["dominant_frequency"] = workbench.Analyzer().DominantFrequency(freqs, mags)
	}

	if genSavePath != "" {
		if err := storage.SaveSignalCSV(genSavePath, timeGrid, samples); err != nil {
			return err
		}
		result["saved_to"] = genSavePath
	}

	return workbench.Output(result)
}

// generateParams merges configured defaults with explicitly set flags
func generateParams(cmd *cobra.Command, workbench *app.Workbench) (signal.Parameters, error) {
	sigType, err := signal.ParseType(genType)
	if err != nil {
		return signal.Parameters{}, err
	}

	gen := workbench.Config().Generator
	params := signal.DefaultParameters()
	params.Type = sigType
	params.Frequency = gen.Frequency
	params.Amplitude = gen.Amplitude
	params.SampleRate = gen.SampleRate
	params.Duration = gen.Duration
	params.DutyCycle = gen.DutyCycle

	flags := cmd.Flags()
	if flags.Changed("frequency") {
		params.Frequency = genFrequency
	}
	if flags.Changed("amplitude") {
		params.Amplitude = genAmplitude
	}
	if flags.Changed("sample-rate") {
		params.SampleRate = genSampleRate
	}
	if flags.Changed("duration") {
		params.Duration = genDuration
	}
	if flags.Changed("duty-cycle") {
		params.DutyCycle = genDutyCycle
	}
	params.Phase = genPhase
	params.Offset = genOffset
	params.RiseTime = genRiseTime
	params.NoiseLevel = genNoiseLevel
	params.ChirpStartFreq = genChirpStart
	params.ChirpEndFreq = genChirpEnd

	if err := params.Validate(); err != nil {
		return signal.Parameters{}, fmt.Errorf("invalid generation request: %w", err)
	}
	return params, nil
}
