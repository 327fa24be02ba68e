package strobe

import (
	"math"
)

// Modulate synthesizes a modulated carrier over the time grid. The carrier
// is recomputed internally rather than taken as an array: FM and PM perturb
// the phase before the sine is evaluated, so a pre-built carrier would be
// useless for them.
//
// FM here scales the phase by the modulation depth directly rather than by a
// true frequency deviation; it behaves as a phase-integrated approximation.
// Depth values above 1 are accepted as over-modulation.
func Modulate(t []float64, p RayParameters) []float64 {
	out := make([]float64, len(t))

	switch p.ModulationType {
	case ModulationAM:
		for i, ti := range t {
			carrier := p.Amplitude * math.Sin(2*math.Pi*p.Frequency*ti+p.Phase)
			out[i] = carrier * (1 + p.ModulationDepth*math.Sin(2*math.Pi*p.ModulationFrequency*ti))
		}

	case ModulationFM:
		for i, ti := range t {
			modPhase := 2 * math.Pi * p.ModulationDepth * math.Sin(2*math.Pi*p.ModulationFrequency*ti)
			out[i] = p.Amplitude * math.Sin(2*math.Pi*p.Frequency*ti+modPhase+p.Phase)
		}

	case ModulationPM:
		for i, ti := range t {
			modPhase := p.ModulationDepth * math.Sin(2*math.Pi*p.ModulationFrequency*ti)
			out[i] = p.Amplitude * math.Sin(2*math.Pi*p.Frequency*ti+p.Phase+modPhase)
		}

	default:
		// Unmodulated carrier
		for i, ti := range t {
			out[i] = p.Amplitude * math.Sin(2*math.Pi*p.Frequency*ti+p.Phase)
		}
	}

	return out
}
