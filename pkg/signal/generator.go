package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator synthesizes waveform arrays from validated Parameters.
// Instances are cheap; every call is independent. The generator keeps a
// convenience copy of the last generated signal for Info() and CSV export,
// scoped to the instance and never required by callers.
type Generator struct {
	logger logging.Logger
	src    rand.Source

	lastTime   []float64
	lastSignal []float64
}

// NewGenerator creates a generator drawing noise from the shared source
func NewGenerator() *Generator {
	return &Generator{
		logger: logging.WithFields(logging.Fields{
			"component": "signal_generator",
		}),
	}
}

// NewGeneratorSeeded creates a generator with a deterministic noise source
func NewGeneratorSeeded(seed uint64) *Generator {
	g := NewGenerator()
	g.src = rand.NewPCG(seed, seed)
	return g
}

// Generate synthesizes a signal from params and returns the time grid and
// sample array. The DC offset is applied after the per-type synthesis.
func (g *Generator) Generate(params Parameters) (timeGrid, samples []float64, err error) {
	if err := params.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid signal parameters: %w", err)
	}

	n := params.NumSamples()
	timeGrid = linspace(0, params.Duration, n)

	switch params.Type {
	case TypeSine:
		samples = g.generateSine(timeGrid, params)
	case TypeCosine:
		samples = g.generateCosine(timeGrid, params)
	case TypeSquare:
		samples = g.generateSquare(timeGrid, params)
	case TypeSawtooth:
		samples = g.generateSawtooth(timeGrid, params)
	case TypeTriangle:
		samples = g.generateTriangle(timeGrid, params)
	case TypeNoise:
		samples = g.generateNoise(n, params)
	case TypeChirp:
		samples = g.generateChirp(timeGrid, params)
	case TypePulse:
		samples = g.generatePulse(timeGrid, params)
	case TypeComplex:
		samples = g.generateComplex(timeGrid, params)
	default:
		return nil, nil, fmt.Errorf("unknown signal type: %q", params.Type)
	}

	floats.AddConst(params.Offset, samples)

	g.lastTime = timeGrid
	g.lastSignal = samples

	g.logger.Debug("generated signal", logging.Fields{
		"signal_type": string(params.Type),
		"frequency":   params.Frequency,
		"amplitude":   params.Amplitude,
		"samples":     len(samples),
	})

	return timeGrid, samples, nil
}

func (g *Generator) generateSine(t []float64, p Parameters) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = p.Amplitude * math.Sin(2*math.Pi*p.Frequency*ti+p.Phase)
	}
	return out
}

func (g *Generator) generateCosine(t []float64, p Parameters) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = p.Amplitude * math.Cos(2*math.Pi*p.Frequency*ti+p.Phase)
	}
	return out
}

func (g *Generator) generateSquare(t []float64, p Parameters) []float64 {
	period := 1.0 / p.Frequency
	out := make([]float64, len(t))
	for i, ti := range t {
		tau := foldPhase(ti, p.Phase, p.Frequency, period)
		if tau < p.DutyCycle*period {
			out[i] = p.Amplitude
		} else {
			out[i] = -p.Amplitude
		}
	}
	return out
}

func (g *Generator) generateSawtooth(t []float64, p Parameters) []float64 {
	period := 1.0 / p.Frequency
	out := make([]float64, len(t))
	for i, ti := range t {
		tau := foldPhase(ti, p.Phase, p.Frequency, period)
		out[i] = p.Amplitude * (2*tau/period - 1)
	}
	return out
}

func (g *Generator) generateTriangle(t []float64, p Parameters) []float64 {
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

func (g *Generator) generateNoise(n int, p Parameters) []float64 {
	out := make([]float64, n)
	if p.NoiseLevel <= 0 {
		return out
	}
	dist := distuv.Normal{Mu: 0, Sigma: p.NoiseLevel, Src: g.src}
	for i := range out {
		out[i] = p.Amplitude * dist.Rand()
	}
	return out
}

func (g *Generator) generateChirp(t []float64, p Parameters) []float64 {
	// Linear sweep; instantaneous phase accumulates sample by sample
	out := make([]float64, len(t))
	phase := 0.0
	for i, ti := range t {
		freq := p.ChirpStartFreq + (p.ChirpEndFreq-p.ChirpStartFreq)*ti/p.Duration
		phase += 2 * math.Pi * freq / p.SampleRate
		out[i] = p.Amplitude * math.Sin(phase+p.Phase)
	}
	return out
}

func (g *Generator) generatePulse(t []float64, p Parameters) []float64 {
	period := 1.0 / p.Frequency
	width := p.DutyCycle * period
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

// harmonicRatios are the partials summed for the "complex" waveform
var harmonicRatios = []float64{1, 2, 3, 5}

func (g *Generator) generateComplex(t []float64, p Parameters) []float64 {
	out := make([]float64, len(t))
	partial := make([]float64, len(t))
	for _, h := range harmonicRatios {
		freq := p.Frequency * h
		amp := p.Amplitude / h
		for i, ti := range t {
			partial[i] = amp * math.Sin(2*math.Pi*freq*ti+p.Phase)
		}
		floats.Add(out, partial)
	}
	return out
}

// AddNoise adds gaussian noise on top of an existing signal array
func (g *Generator) AddNoise(sig []float64, noiseLevel float64) []float64 {
	out := make([]float64, len(sig))
	copy(out, sig)
	if noiseLevel <= 0 {
		return out
	}
	dist := distuv.Normal{Mu: 0, Sigma: noiseLevel, Src: g.src}
	for i := range out {
		out[i] += dist.Rand()
	}
	return out
}

// ApplyFilter runs a simple filter over the signal. Only "lowpass"
// (moving average) is implemented; other types return the input unchanged
// with a warning.
func (g *Generator) ApplyFilter(sig []float64, filterType string, cutoffFreq, sampleRate float64) []float64 {
	if filterType != "lowpass" {
		g.logger.Warn("filter type not implemented", logging.Fields{
			"filter_type": filterType,
		})
		return sig
	}

	window := int(float64(len(sig)) * cutoffFreq / (sampleRate / 2))
	if window < 3 {
		window = 3
	}
	return movingAverage(sig, window)
}

// Info reports descriptive statistics of the last generated signal
func (g *Generator) Info() (*Info, error) {
	if g.lastSignal == nil {
		return nil, fmt.Errorf("no signal generated")
	}

	duration := 0.0
	if len(g.lastTime) > 0 {
		duration = g.lastTime[len(g.lastTime)-1]
	}

	maxVal := floats.Max(g.lastSignal)
	minVal := floats.Min(g.lastSignal)
	sumSq := 0.0
	for _, v := range g.lastSignal {
		sumSq += v * v
	}

	return &Info{
		Samples:    len(g.lastSignal),
		Duration:   duration,
		MaxValue:   maxVal,
		MinValue:   minVal,
		RMSValue:   math.Sqrt(sumSq / float64(len(g.lastSignal))),
		PeakToPeak: maxVal - minVal,
	}, nil
}

// Last returns the cached time grid and signal from the most recent Generate
func (g *Generator) Last() (timeGrid, samples []float64) {
	return g.lastTime, g.lastSignal
}

// foldPhase maps absolute time onto [0, period) shifted by the phase offset
func foldPhase(t, phase, frequency, period float64) float64 {
	tau := math.Mod(t+phase/(2*math.Pi*frequency), period)
	if tau < 0 {
		tau += period
	}
	return tau
}

// linspace mirrors numpy's endpoint=false behavior over [start, stop)
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	step := (stop - start) / float64(n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// movingAverage computes a centered moving average with edge shrinking,
// matching a "same"-mode box convolution
func movingAverage(sig []float64, window int) []float64 {
	out := make([]float64, len(sig))
	if window <= 0 {
		copy(out, sig)
		return out
	}
	half := window / 2
	for i := range sig {
		lo := i - half
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
		out[i] = sum / float64(window)
	}
	return out
}
