package strobe

import (
	"fmt"
	"math"
)

// NoiseType identifies an additive noise model for a ray
type NoiseType string

const (
	NoiseGaussianWhite   NoiseType = "gaussian_white"
	NoiseGaussianColored NoiseType = "gaussian_colored"
	NoiseUniform         NoiseType = "uniform"
	NoisePink            NoiseType = "pink"
	NoiseBrown           NoiseType = "brown"
)

// ModulationType identifies the modulation scheme of a modulated ray
type ModulationType string

const (
	ModulationAM ModulationType = "am"
	ModulationFM ModulationType = "fm"
	ModulationPM ModulationType = "pm"
)

// Harmonic is one overtone added on top of a ray's base waveform
type Harmonic struct {
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Phase     float64 `json:"phase" yaml:"phase"`
}

// RayParameters describes one independently parameterized waveform segment
// inside a strobe. SignalType accepts sine, cosine, square, sawtooth,
// triangle, quadrature, modulated and pulse; anything else falls back to a
// plain sine during composition.
type RayParameters struct {
	RayID      int     `json:"ray_id" yaml:"ray_id"`
	SignalType string  `json:"signal_type" yaml:"signal_type"`
	Frequency  float64 `json:"frequency" yaml:"frequency"`
	Amplitude  float64 `json:"amplitude" yaml:"amplitude"`
	Phase      float64 `json:"phase" yaml:"phase"`
	Offset     float64 `json:"offset" yaml:"offset"`

	// Quadrature signal
	QuadraturePhase float64 `json:"quadrature_phase" yaml:"quadrature_phase"`

	// Modulated signal
	ModulationType      ModulationType `json:"modulation_type" yaml:"modulation_type"`
	ModulationFrequency float64        `json:"modulation_frequency" yaml:"modulation_frequency"`
	ModulationDepth     float64        `json:"modulation_depth" yaml:"modulation_depth"`

	// Pulse signal
	PulseWidth float64 `json:"pulse_width" yaml:"pulse_width"` // fraction of period
	RiseTime   float64 `json:"rise_time" yaml:"rise_time"`

	Harmonics  []Harmonic `json:"harmonics" yaml:"harmonics"`
	NoiseLevel float64    `json:"noise_level" yaml:"noise_level"` // 0 disables noise
	NoiseType  NoiseType  `json:"noise_type" yaml:"noise_type"`
}

// DefaultRayParameters returns a ray with the conventional defaults
func DefaultRayParameters(rayID int) RayParameters {
	return RayParameters{
		RayID:               rayID,
		SignalType:          "sine",
		Frequency:           1000.0,
		Amplitude:           1.0,
		QuadraturePhase:     math.Pi / 2,
		ModulationType:      ModulationAM,
		ModulationFrequency: 100.0,
		ModulationDepth:     0.5,
		PulseWidth:          0.1,
		RiseTime:            0.01,
		NoiseType:           NoiseGaussianWhite,
	}
}

// Parameters describes a full multi-ray strobe capture
type Parameters struct {
	StrobeID     string          `json:"strobe_id" yaml:"strobe_id"`
	TotalLength  int             `json:"total_length" yaml:"total_length"`
	NumRays      int             `json:"num_rays" yaml:"num_rays"`
	PointsPerRay int             `json:"points_per_ray" yaml:"points_per_ray"`
	SampleRate   float64         `json:"sample_rate" yaml:"sample_rate"`
	Rays         []RayParameters `json:"ray_parameters" yaml:"ray_parameters"`
}

// NewParameters builds strobe parameters with default rays filled in by
// position, matching the convention that ray IDs are assigned sequentially.
func NewParameters(strobeID string, totalLength, numRays, pointsPerRay int, sampleRate float64) Parameters {
	rays := make([]RayParameters, numRays)
	for i := range rays {
		rays[i] = DefaultRayParameters(i)
	}
	return Parameters{
		StrobeID:     strobeID,
		TotalLength:  totalLength,
		NumRays:      numRays,
		PointsPerRay: pointsPerRay,
		SampleRate:   sampleRate,
		Rays:         rays,
	}
}

// Validate checks the structural invariants of a strobe request. Rays that
// will not fit in the buffer are not an error here; placement drops them.
func (p Parameters) Validate() error {
	if p.TotalLength <= 0 {
		return fmt.Errorf("total length must be positive, got %d", p.TotalLength)
	}
	if p.NumRays < 1 {
		return fmt.Errorf("strobe needs at least one ray, got %d", p.NumRays)
	}
	if p.PointsPerRay < 0 {
		return fmt.Errorf("points per ray must be non-negative, got %d", p.PointsPerRay)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %g", p.SampleRate)
	}
	if len(p.Rays) != p.NumRays {
		return fmt.Errorf("ray parameter count %d does not match num_rays %d", len(p.Rays), p.NumRays)
	}
	return nil
}

// RayDescriptor records where a ray was assigned inside the strobe buffer
// and the parameters it was generated from. A descriptor is recorded even
// for rays the placement policy dropped; StartIndex/EndIndex describe the
// assigned window, not whether it was written.
type RayDescriptor struct {
	RayID      int     `json:"ray_id"`
	SignalType string  `json:"signal_type"`
	Frequency  float64 `json:"frequency"`
	Amplitude  float64 `json:"amplitude"`
	Phase      float64 `json:"phase"`
	StartIndex int     `json:"start_index"`
	EndIndex   int     `json:"end_index"`
	DataLength int     `json:"data_length"`
}

// Metadata is the descriptive half of a generated strobe buffer
type Metadata struct {
	StrobeID     string          `json:"strobe_id"`
	TotalLength  int             `json:"total_length"`
	NumRays      int             `json:"num_rays"`
	PointsPerRay int             `json:"points_per_ray"`
	SampleRate   float64         `json:"sample_rate"`
	Rays         []RayDescriptor `json:"rays"`
}
