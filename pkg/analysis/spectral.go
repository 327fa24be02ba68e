package analysis

import (
	"fmt"
	"math/cmplx"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/RyanBlaney/sonido-sonar/algorithms/windowing"
	"github.com/mjibson/go-dsp/fft"
)

// SpectralAnalyzer provides FFT, power spectral density, peak detection and
// summary statistics over real-valued signal arrays. It holds no state
// between calls; every method is a pure function of its inputs.
type SpectralAnalyzer struct {
	logger logging.Logger
}

// NewSpectralAnalyzer creates a spectral analyzer
func NewSpectralAnalyzer() *SpectralAnalyzer {
	return &SpectralAnalyzer{
		logger: logging.WithFields(logging.Fields{
			"component": "spectral_analyzer",
		}),
	}
}

// ComputeFFT computes the discrete Fourier transform of the signal and
// returns the non-negative-frequency half: len(signal)/2 bins with
// freqs[k] = k*sampleRate/len(signal) and the corresponding magnitudes.
func (sa *SpectralAnalyzer) ComputeFFT(signal []float64, sampleRate float64) (freqs, magnitudes []float64, err error) {
	if len(signal) == 0 {
		return nil, nil, fmt.Errorf("empty signal")
	}
	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}

	spectrum := fft.FFTReal(signal)

	bins := len(signal) / 2
	freqs = make([]float64, bins)
	magnitudes = make([]float64, bins)
	resolution := sampleRate / float64(len(signal))

	for k := 0; k < bins; k++ {
		freqs[k] = float64(k) * resolution
		magnitudes[k] = cmplx.Abs(spectrum[k])
	}

	return freqs, magnitudes, nil
}

// ComputeSpectralDensity computes the power spectral density over the same
// frequency axis as ComputeFFT: psd[k] = |FFT[k]|^2 / len(signal).
func (sa *SpectralAnalyzer) ComputeSpectralDensity(signal []float64, sampleRate float64) (freqs, psd []float64, err error) {
	freqs, magnitudes, err := sa.ComputeFFT(signal, sampleRate)
	if err != nil {
		return nil, nil, err
	}

	n := float64(len(signal))
	psd = make([]float64, len(magnitudes))
	for i, mag := range magnitudes {
		psd[i] = mag * mag / n
	}
	return freqs, psd, nil
}

// ComputeWindowedFFT applies an analysis window before the transform.
// Supported windows: hann, hamming, blackman; "none" or the empty string
// skip windowing.
func (sa *SpectralAnalyzer) ComputeWindowedFFT(signal []float64, sampleRate float64, window string) (freqs, magnitudes []float64, err error) {
	windowed, err := applyWindow(signal, window)
	if err != nil {
		return nil, nil, err
	}
	return sa.ComputeFFT(windowed, sampleRate)
}

func applyWindow(signal []float64, window string) ([]float64, error) {
	switch window {
	case "", "none", "rectangular":
		return signal, nil
	case "hann":
		return windowing.NewHann(len(signal), true).Apply(signal), nil
	case "hamming":
		return windowing.NewHamming(len(signal), true).Apply(signal), nil
	case "blackman":
		return windowing.NewBlackman(len(signal), true).Apply(signal), nil
	default:
		return nil, fmt.Errorf("unknown window function: %q", window)
	}
}
