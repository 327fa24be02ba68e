package strobe

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
)

// Compositor builds single rays: base waveform, harmonics, noise and DC
// offset, cast to complex128 at the end. Only the quadrature type carries a
// genuine imaginary part; harmonics, noise and the offset stay purely real
// even then, which is the documented behavior, not an oversight.
type Compositor struct {
	noise  *NoiseSource
	logger logging.Logger
}

// NewCompositor creates a ray compositor with its own noise source
func NewCompositor(noise *NoiseSource) *Compositor {
	if noise == nil {
		noise = NewNoiseSource()
	}
	return &Compositor{
		noise: noise,
		logger: logging.WithFields(logging.Fields{
			"component": "ray_compositor",
		}),
	}
}

// BuildRay generates the samples for one ray. points == 0 yields an empty
// slice without error. An unrecognized signal type falls back to a plain
// sine; this fallback exists only at the ray level, the top-level signal
// generator rejects unknown types instead.
func (c *Compositor) BuildRay(params RayParameters, points int, sampleRate float64) ([]complex128, error) {
	if points < 0 {
		return nil, fmt.Errorf("ray %d: negative point count %d", params.RayID, points)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("ray %d: sample rate must be positive, got %g", params.RayID, sampleRate)
	}
	if params.Frequency <= 0 {
		return nil, fmt.Errorf("ray %d: frequency must be positive, got %g", params.RayID, params.Frequency)
	}
	if points == 0 {
		return []complex128{}, nil
	}

	duration := float64(points) / sampleRate
	t := make([]float64, points)
	step := duration / float64(points)
	for i := range t {
		t[i] = float64(i) * step
	}

	var re []float64
	var im []float64

	switch params.SignalType {
	case "sine":
		re = sineWave(t, params.Amplitude, params.Frequency, params.Phase)
	case "cosine":
		re = make([]float64, points)
		for i, ti := range t {
			re[i] = params.Amplitude * math.Cos(2*math.Pi*params.Frequency*ti+params.Phase)
		}
	case "square":
		re = c.squareWave(t, params)
	case "sawtooth":
		re = c.sawtoothWave(t, params)
	case "triangle":
		re = c.triangleWave(t, params)
	case "quadrature":
		re, im = c.quadratureSignal(t, params)
	case "modulated":
		re = Modulate(t, params)
	case "pulse":
		re = c.pulseSignal(t, params)
	default:
		c.logger.Warn("unrecognized ray signal type, using sine", logging.Fields{
			"ray_id":      params.RayID,
			"signal_type": params.SignalType,
		})
		re = sineWave(t, params.Amplitude, params.Frequency, params.Phase)
	}

	for _, h := range params.Harmonics {
		for i, ti := range t {
			re[i] += h.Amplitude * math.Sin(2*math.Pi*h.Frequency*ti+h.Phase)
		}
	}

	if params.NoiseLevel > 0 {
		noise := c.noise.Generate(points, params.NoiseType, params.NoiseLevel)
		for i := range re {
			re[i] += noise[i]
		}
	}

	for i := range re {
		re[i] += params.Offset
	}

	out := make([]complex128, points)
	if im != nil {
		for i := range out {
			out[i] = complex(re[i], im[i])
		}
	} else {
		for i := range out {
			out[i] = complex(re[i], 0)
		}
	}
	return out, nil
}

func sineWave(t []float64, amplitude, frequency, phase float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = amplitude * math.Sin(2*math.Pi*frequency*ti+phase)
	}
	return out
}

// squareWave uses the ray's pulse width as the duty cycle
func (c *Compositor) squareWave(t []float64, p RayParameters) []float64 {
	period := 1.0 / p.Frequency
	out := make([]float64, len(t))
	for i, ti := range t {
		tau := foldPhase(ti, p.Phase, p.Frequency, period)
		if tau < p.PulseWidth*period {
			out[i] = p.Amplitude
		} else {
			out[i] = -p.Amplitude
		}
	}
	return out
}

func (c *Compositor) sawtoothWave(t []float64, p RayParameters) []float64 {
	period := 1.0 / p.Frequency
	out := make([]float64, len(t))
	for i, ti := range t {
		tau := foldPhase(ti, p.Phase, p.Frequency, period)
		out[i] = p.Amplitude * (2*tau/period - 1)
	}
	return out
}

func (c *Compositor) triangleWave(t []float64, p RayParameters) []float64 {
	period := 1.0 / p.Frequency
	half := period / 2
	out := make([]float64, len(t))
	for i, ti := range t {
		tau := foldPhase(ti, p.Phase, p.Frequency, period)
		if tau < half {
			out[i] = p.Amplitude * (2*tau/half - 1)
		} else {
			out[i] = p.Amplitude * (3 - 2*tau/half)
		}
	}
	return out
}

// quadratureSignal produces I + jQ with Q shifted by the quadrature phase
func (c *Compositor) quadratureSignal(t []float64, p RayParameters) (re, im []float64) {
	re = make([]float64, len(t))
	im = make([]float64, len(t))
	for i, ti := range t {
		re[i] = p.Amplitude * math.Cos(2*math.Pi*p.Frequency*ti+p.Phase)
		im[i] = p.Amplitude * math.Sin(2*math.Pi*p.Frequency*ti+p.Phase+p.QuadraturePhase)
	}
	return re, im
}

func (c *Compositor) pulseSignal(t []float64, p RayParameters) []float64 {
	period := 1.0 / p.Frequency
	width := p.PulseWidth * period
	out := make([]float64, len(t))
	for i, ti := range t {
		tau := foldPhase(ti, p.Phase, p.Frequency, period)
		switch {
		case tau >= width:
			out[i] = 0
		case p.RiseTime > 0 && tau < p.RiseTime:
			out[i] = p.Amplitude * tau / p.RiseTime
		default:
			out[i] = p.Amplitude
		}
	}
	return out
}

// foldPhase maps absolute time onto [0, period) shifted by the phase offset
func foldPhase(t, phase, frequency, period float64) float64 {
	tau := math.Mod(t+phase/(2*math.Pi*frequency), period)
	if tau < 0 {
		tau += period
	}
	return tau
}
