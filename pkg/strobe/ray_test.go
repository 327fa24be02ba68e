package strobe

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompositor() *Compositor {
	return NewCompositor(NewNoiseSourceSeeded(1))
}

func TestBuildRaySineMatchesClosedForm(t *testing.T) {
	c := newTestCompositor()

	params := DefaultRayParameters(0)
	params.Frequency = 1000.0
	params.Amplitude = 1.0
	params.Phase = math.Pi / 6
	params.NoiseLevel = 0

	samples, err := c.BuildRay(params, 256, 100000.0)
	require.NoError(t, err)
	require.Len(t, samples, 256)

	for i, s := range samples {
		ti := float64(i) / 100000.0
		want := math.Sin(2*math.Pi*1000.0*ti + math.Pi/6)
		assert.InDelta(t, want, real(s), 1e-9)
		assert.Zero(t, imag(s))
	}
}

func TestBuildRayZeroPoints(t *testing.T) {
	c := newTestCompositor()

	samples, err := c.BuildRay(DefaultRayParameters(0), 0, 100000.0)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestBuildRayRejectsBadInputs(t *testing.T) {
	c := newTestCompositor()

	_, err := c.BuildRay(DefaultRayParameters(0), -1, 100000.0)
	assert.Error(t, err)

	_, err = c.BuildRay(DefaultRayParameters(0), 64, 0)
	assert.Error(t, err)

	params := DefaultRayParameters(0)
	params.Frequency = -5
	_, err = c.BuildRay(params, 64, 100000.0)
	assert.Error(t, err)
}

func TestBuildRayUnknownTypeFallsBackToSine(t *testing.T) {
	c := newTestCompositor()

	params := DefaultRayParameters(0)
	params.SignalType = "wavelet"
	params.NoiseLevel = 0

	got, err := c.BuildRay(params, 128, 100000.0)
	require.NoError(t, err)

	params.SignalType = "sine"
	want, err := c.BuildRay(params, 128, 100000.0)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestBuildRayQuadratureCarriesImaginaryPart(t *testing.T) {
	c := newTestCompositor()

	params := DefaultRayParameters(0)
	params.SignalType = "quadrature"
	params.Frequency = 500.0
	params.Amplitude = 1.0
	params.QuadraturePhase = math.Pi / 2
	params.NoiseLevel = 0

	samples, err := c.BuildRay(params, 512, 100000.0)
	require.NoError(t, err)

	// I = cos, Q = sin shifted by pi/2 = cos, so |z| is the amplitude
	hasImag := false
	for i, s := range samples {
		if imag(s) != 0 {
			hasImag = true
		}
		ti := float64(i) / 100000.0
		wantRe := math.Cos(2 * math.Pi * 500.0 * ti)
		assert.InDelta(t, wantRe, real(s), 1e-9)
		assert.InDelta(t, 1.0, cmplx.Abs(s), 1e-9)
	}
	assert.True(t, hasImag)
}

func TestBuildRayHarmonicsAndOffsetStayReal(t *testing.T) {
	c := newTestCompositor()

	params := DefaultRayParameters(0)
	params.SignalType = "quadrature"
	params.Frequency = 500.0
	params.Offset = 0.25
	params.NoiseLevel = 0.1
	params.Harmonics = []Harmonic{{Amplitude: 0.5, Frequency: 1500.0, Phase: 0}}

	base, err := c.BuildRay(params, 256, 100000.0)
	require.NoError(t, err)

	// Only the quadrature carrier contributes Q; stripping the additions must
	// leave the imaginary part unchanged
	bare := params
	bare.Offset = 0
	bare.NoiseLevel = 0
	bare.Harmonics = nil
	ref, err := newTestCompositor().BuildRay(bare, 256, 100000.0)
	require.NoError(t, err)

	for i := range base {
		assert.InDelta(t, imag(ref[i]), imag(base[i]), 1e-9)
	}
}

func TestBuildRayHarmonicSum(t *testing.T) {
	c := newTestCompositor()

	params := DefaultRayParameters(0)
	params.Frequency = 1000.0
	params.Amplitude = 1.0
	params.NoiseLevel = 0
	params.Harmonics = []Harmonic{
		{Amplitude: 0.7, Frequency: 2000.0, Phase: math.Pi / 4},
		{Amplitude: 0.3, Frequency: 3000.0, Phase: 0},
	}

	samples, err := c.BuildRay(params, 200, 100000.0)
	require.NoError(t, err)

	for i, s := range samples {
		ti := float64(i) / 100000.0
		want := math.Sin(2*math.Pi*1000.0*ti) +
			0.7*math.Sin(2*math.Pi*2000.0*ti+math.Pi/4) +
			0.3*math.Sin(2*math.Pi*3000.0*ti)
		assert.InDelta(t, want, real(s), 1e-9)
	}
}

func TestBuildRaySquareUsesPulseWidthAsDuty(t *testing.T) {
	c := newTestCompositor()

	params := DefaultRayParameters(0)
	params.SignalType = "square"
	params.Frequency = 1000.0 // 100-sample period at 100 kHz
	params.PulseWidth = 0.3
	params.NoiseLevel = 0

	samples, err := c.BuildRay(params, 100, 100000.0)
	require.NoError(t, err)

	high := 0
	for _, s := range samples {
		if real(s) > 0 {
			high++
		}
	}
	assert.InDelta(t, 30, high, 1)
}

func TestModulateAMEnvelope(t *testing.T) {
	params := DefaultRayParameters(0)
	params.SignalType = "modulated"
	params.ModulationType = ModulationAM
	params.Frequency = 1000.0
	params.Amplitude = 1.0
	params.ModulationFrequency = 100.0
	params.ModulationDepth = 0.5

	n := 1000
	tGrid := make([]float64, n)
	for i := range tGrid {
		tGrid[i] = float64(i) / 100000.0
	}

	out := Modulate(tGrid, params)
	require.Len(t, out, n)

	// Envelope stays within A*(1 +/- depth)
	for _, v := range out {
		assert.LessOrEqual(t, math.Abs(v), 1.5+1e-9)
	}

	// And actually reaches beyond the unmodulated amplitude somewhere
	maxAbs := 0.0
	for _, v := range out {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	assert.Greater(t, maxAbs, 1.1)
}

func TestModulateFMKeepsAmplitude(t *testing.T) {
	params := DefaultRayParameters(0)
	params.ModulationType = ModulationFM
	params.Frequency = 1000.0
	params.Amplitude = 2.0
	params.ModulationFrequency = 50.0
	params.ModulationDepth = 5.0

	tGrid := make([]float64, 2000)
	for i := range tGrid {
		tGrid[i] = float64(i) / 100000.0
	}

	out := Modulate(tGrid, params)
	for _, v := range out {
		assert.LessOrEqual(t, math.Abs(v), 2.0+1e-9)
	}
}
