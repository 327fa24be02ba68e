package strobe

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseSource draws additive noise arrays for ray composition.
// The zero value draws from the process-wide random source; use
// NewNoiseSourceSeeded for reproducible output.
type NoiseSource struct {
	src rand.Source
}

// NewNoiseSource creates a noise source backed by the shared random source
func NewNoiseSource() *NoiseSource {
	return &NoiseSource{}
}

// NewNoiseSourceSeeded creates a deterministic noise source
func NewNoiseSourceSeeded(seed uint64) *NoiseSource {
	return &NoiseSource{src: rand.NewPCG(seed, seed)}
}

// Generate produces a noise array of the requested length scaled by level.
// Callers with level == 0 should skip the call entirely. The pink and brown
// variants are not implemented and fall back to gaussian white.
func (ns *NoiseSource) Generate(length int, noiseType NoiseType, level float64) []float64 {
	switch noiseType {
	case NoiseUniform:
		dist := distuv.Uniform{Min: -1, Max: 1, Src: ns.src}
		out := make([]float64, length)
		for i := range out {
			out[i] = level * dist.Rand()
		}
		return out

	case NoiseGaussianColored:
		// White noise through a length-5 moving average, a crude lowpass
		white := ns.gaussian(length, 1.0)
		colored := smooth5(white)
		for i := range colored {
			colored[i] *= level
		}
		return colored

	case NoiseGaussianWhite, NoisePink, NoiseBrown:
		return ns.gaussian(length, level)

	default:
		return ns.gaussian(length, level)
	}
}

func (ns *NoiseSource) gaussian(length int, level float64) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: ns.src}
	out := make([]float64, length)
	for i := range out {
		out[i] = level * dist.Rand()
	}
	return out
}

// smooth5 applies a centered 5-point box filter with same-length output
func smooth5(sig []float64) []float64 {
	const window = 5
	out := make([]float64, len(sig))
	for i := range sig {
		lo := i - window/2
		hi := lo + window
		if lo < 0 {
			lo = 0
		}
		if hi > len(sig) {
			hi = len(sig)
		}
		sum := 0.0
		for j := lo; j < hi; j++ {
			sum += sig[j]
		}
		out[i] = sum / window
	}
	return out
}
