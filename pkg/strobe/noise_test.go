package strobe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseGaussianWhiteLevel(t *testing.T) {
	ns := NewNoiseSourceSeeded(11)

	out := ns.Generate(20000, NoiseGaussianWhite, 0.2)
	require.Len(t, out, 20000)

	var sum, sumSq float64
	for _, v := range out {
		sum += v
		sumSq += v * v
	}
	n := float64(len(out))
	mean := sum / n
	std := math.Sqrt(sumSq/n - mean*mean)

	assert.InDelta(t, 0.0, mean, 0.01)
	assert.InDelta(t, 0.2, std, 0.01)
}

func TestNoiseUniformBounds(t *testing.T) {
	ns := NewNoiseSourceSeeded(11)

	out := ns.Generate(5000, NoiseUniform, 0.5)
	for _, v := range out {
		assert.LessOrEqual(t, math.Abs(v), 0.5)
	}
}

func TestNoiseColoredIsSmoother(t *testing.T) {
	white := NewNoiseSourceSeeded(3).Generate(20000, NoiseGaussianWhite, 1.0)
	colored := NewNoiseSourceSeeded(3).Generate(20000, NoiseGaussianColored, 1.0)
	require.Len(t, colored, 20000)

	// Lowpassed noise has smaller sample-to-sample differences
	diffEnergy := func(sig []float64) float64 {
		e := 0.0
		for i := 1; i < len(sig); i++ {
			d := sig[i] - sig[i-1]
			e += d * d
		}
		return e
	}
	assert.Less(t, diffEnergy(colored), diffEnergy(white))
}

func TestNoisePinkBrownFallBackToGaussian(t *testing.T) {
	pink := NewNoiseSourceSeeded(9).Generate(1000, NoisePink, 0.3)
	brown := NewNoiseSourceSeeded(9).Generate(1000, NoiseBrown, 0.3)
	white := NewNoiseSourceSeeded(9).Generate(1000, NoiseGaussianWhite, 0.3)

	assert.Equal(t, white, pink)
	assert.Equal(t, white, brown)
}

func TestNoiseSeededReproducibility(t *testing.T) {
	a := NewNoiseSourceSeeded(42).Generate(256, NoiseGaussianWhite, 1.0)
	b := NewNoiseSourceSeeded(42).Generate(256, NoiseGaussianWhite, 1.0)
	assert.Equal(t, a, b)
}
