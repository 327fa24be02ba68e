package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/signal-workbench/internal/app"
	"github.com/RyanBlaney/signal-workbench/pkg/storage"
)

var (
	// Analyze command flags
	analyzeStrobe     bool
	analyzeSampleRate float64
	analyzeThreshold  float64
	analyzeWindow     string
	analyzePSD        bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <path>",
	Short: "Run spectral analysis on a saved signal or strobe",
	Long: `Load a previously saved signal CSV (or strobe base name with
--strobe) and report waveform statistics, the dominant frequency, and the
spectral peaks above the detection threshold.

Examples:
  # Analyze an exported signal
  signal-workbench analyze wave.csv --sample-rate 44100

  # Analyze a saved strobe (reads <base>.raw and <base>.json)
  signal-workbench analyze --strobe capture01 --threshold 50`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeStrobe, "strobe", false,
		"treat the path as a strobe base name")
	analyzeCmd.Flags().Float64VarP(&analyzeSampleRate, "sample-rate", "r", 44100.0,
		"sample rate of a CSV signal in Hz (strobes carry their own)")
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "threshold", 0.1,
		"spectral peak detection threshold")
	analyzeCmd.Flags().StringVar(&analyzeWindow, "window", "",
		"analysis window (none, hann, hamming, blackman)")
	analyzeCmd.Flags().BoolVar(&analyzePSD, "psd", false,
		"report power spectral density instead of magnitudes")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := &app.Context{
		OutputFormat: viper.GetString("output_format"),
		Verbose:      viper.GetBool("verbose"),
	}

	workbench, err := app.NewWorkbench(ctx)
	if err != nil {
		return err
	}

	var samples []float64
	sampleRate := analyzeSampleRate
	result := map[string]any{"source": args[0]}

	if analyzeStrobe {
		data, meta, err := storage.LoadStrobe(args[0])
		if err != nil {
			return err
		}
		samples = make([]float64, len(data))
		for i, c := range data {
			samples[i] = real(c)
		}
		sampleRate = meta.SampleRate
		result["strobe_id"] = meta.StrobeID
		result["num_rays"] = meta.NumRays
	} else {
		_, loaded, err := storage.LoadSignalCSV(args[0])
		if err != nil {
			return err
		}
		samples = loaded
	}

	if len(samples) == 0 {
		return fmt.Errorf("nothing to analyze: %s is empty", args[0])
	}

	analyzer := workbench.Analyzer()

	window := analyzeWindow
	if window == "" {
		window = workbench.Config().Analysis.WindowFunction
	}

	threshold := analyzeThreshold
	if !cmd.Flags().Changed("threshold") {
		threshold = workbench.Config().Analysis.PeakThreshold
	}

	stats, err := analyzer.ComputeStatistics(samples)
	if err != nil {
		return err
	}
	result["statistics"] = stats

	freqs, mags, err := analyzer.ComputeWindowedFFT(samples, sampleRate, window)
	if err != nil {
		return err
	}
	result["dominant_frequency"] = analyzer.DominantFrequency(freqs, mags)

	spectrum := mags
	if analyzePSD {
		_, psd, err := analyzer.ComputeSpectralDensity(samples, sampleRate)
		if err != nil {
			return err
		}
		spectrum = psd
		result["spectrum_kind"] = "psd"
	} else {
		result["spectrum_kind"] = "magnitude"
	}

	peakIdx := analyzer.FindPeaks(spectrum, threshold)
	peakFreqs := make([]float64, len(peakIdx))
	for i, idx := range peakIdx {
		peakFreqs[i] = freqs[idx]
	}
	result["peak_count"] = len(peakIdx)
	result["peak_frequencies"] = peakFreqs

	return workbench.Output(result)
}
