package analysis

// FindPeaks returns the indices of strict interior local maxima above the
// threshold: signal[i] > signal[i-1], signal[i] > signal[i+1] and
// signal[i] > threshold. No minimum-distance suppression is applied, so
// adjacent near-equal maxima each qualify on their own.
func (sa *SpectralAnalyzer) FindPeaks(signal []float64, threshold float64) []int {
	peaks := []int{}
	for i := 1; i < len(signal)-1; i++ {
		if signal[i] > signal[i-1] && signal[i] > signal[i+1] && signal[i] > threshold {
			peaks = append(peaks, i)
		}
	}
	return peaks
}

// DominantFrequency returns the frequency of the largest magnitude bin.
// Both slices must come from the same ComputeFFT call.
func (sa *SpectralAnalyzer) DominantFrequency(freqs, magnitudes []float64) float64 {
	if len(freqs) == 0 || len(freqs) != len(magnitudes) {
		return 0
	}
	best := 0
	for i := 1; i < len(magnitudes); i++ {
		if magnitudes[i] > magnitudes[best] {
			best = i
		}
	}
	return freqs[best]
}
