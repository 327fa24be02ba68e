package strobe

import (
	"math"
)

// Demo strobe layout: 3 rays of 1024 points at 100 kHz, each a sine pair
// with fixed sample periods. The values are a fixed fixture, so they are
// spelled out literally.
const (
	testStrobeID         = "test_3_rays"
	testStrobeLength     = 3072
	testStrobeRays       = 3
	testStrobePointsRay  = 1024
	testStrobeSampleRate = 100000.0
)

// TestStrobeParameters returns the canonical 3-ray demo strobe: sine sums
// with base periods of 300, 250 and 200 samples, one harmonic each at 200,
// 150 and 100-sample periods, and light gaussian white noise.
func TestStrobeParameters() Parameters {
	params := NewParameters(testStrobeID, testStrobeLength, testStrobeRays, testStrobePointsRay, testStrobeSampleRate)

	basePeriods := []float64{300, 250, 200}
	harmonicPeriods := []float64{200, 150, 100}
	harmonicPhasesDeg := []float64{30, 40, 50}

	for i := range params.Rays {
		ray := DefaultRayParameters(i)
		ray.SignalType = "sine"
		ray.Frequency = testStrobeSampleRate / basePeriods[i]
		ray.Amplitude = 1.0
		ray.Phase = 0.0
		ray.Harmonics = []Harmonic{{
			Amplitude: 0.7,
			Frequency: testStrobeSampleRate / harmonicPeriods[i],
			Phase:     harmonicPhasesDeg[i] * math.Pi / 180,
		}}
		ray.NoiseLevel = 0.2
		ray.NoiseType = NoiseGaussianWhite
		params.Rays[i] = ray
	}

	return params
}

// AssembleTestStrobe generates the canonical demo strobe with this assembler
func (a *Assembler) AssembleTestStrobe() ([]complex128, *Metadata, error) {
	return a.Assemble(TestStrobeParameters())
}
