package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPeaks(t *testing.T) {
	sa := NewSpectralAnalyzer()

	peaks := sa.FindPeaks([]float64{0, 1, 0, 2, 0}, 0.5)
	assert.Equal(t, []int{1, 3}, peaks)
}

func TestFindPeaksThresholdFilters(t *testing.T) {
	sa := NewSpectralAnalyzer()

	peaks := sa.FindPeaks([]float64{0, 1, 0, 2, 0}, 1.5)
	assert.Equal(t, []int{3}, peaks)

	peaks = sa.FindPeaks([]float64{0, 1, 0, 2, 0}, 5)
	assert.Empty(t, peaks)
}

func TestFindPeaksEndpointsExcluded(t *testing.T) {
	sa := NewSpectralAnalyzer()

	// Boundary samples never count, even when they are the largest values
	peaks := sa.FindPeaks([]float64{10, 1, 2, 1, 10}, 0)
	assert.Equal(t, []int{2}, peaks)
}

func TestFindPeaksPlateauIsNotAPeak(t *testing.T) {
	sa := NewSpectralAnalyzer()

	// Strict inequality on both sides: flat tops do not qualify
	peaks := sa.FindPeaks([]float64{0, 2, 2, 0}, 0.5)
	assert.Empty(t, peaks)
}

func TestFindPeaksShortSignals(t *testing.T) {
	sa := NewSpectralAnalyzer()

	assert.Empty(t, sa.FindPeaks(nil, 0))
	assert.Empty(t, sa.FindPeaks([]float64{1}, 0))
	assert.Empty(t, sa.FindPeaks([]float64{1, 2}, 0))
}

func TestDominantFrequency(t *testing.T) {
	sa := NewSpectralAnalyzer()

	freqs := []float64{0, 10, 20, 30}
	mags := []float64{0.1, 0.5, 3.0, 0.2}
	assert.Equal(t, 20.0, sa.DominantFrequency(freqs, mags))

	assert.Equal(t, 0.0, sa.DominantFrequency(nil, nil))
	assert.Equal(t, 0.0, sa.DominantFrequency(freqs, mags[:2]))
}
