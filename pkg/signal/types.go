package signal

import (
	"fmt"
)

// Type identifies a waveform family
type Type string

const (
	TypeSine     Type = "sine"
	TypeCosine   Type = "cosine"
	TypeSquare   Type = "square"
	TypeSawtooth Type = "sawtooth"
	TypeTriangle Type = "triangle"
	TypeNoise    Type = "noise"
	TypeChirp    Type = "chirp"
	TypePulse    Type = "pulse"
	TypeComplex  Type = "complex"
)

// Types lists every supported waveform type
var Types = []Type{
	TypeSine, TypeCosine, TypeSquare, TypeSawtooth, TypeTriangle,
	TypeNoise, TypeChirp, TypePulse, TypeComplex,
}

// ParseType converts a string tag into a waveform Type
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown signal type: %q", s)
}

// Parameters describes one waveform generation request.
// Values are immutable once validated; construct a fresh value to change them.
type Parameters struct {
	Frequency  float64 `json:"frequency" mapstructure:"frequency"`     // Hz
	Amplitude  float64 `json:"amplitude" mapstructure:"amplitude"`     // Volts
	Phase      float64 `json:"phase" mapstructure:"phase"`             // radians
	Offset     float64 `json:"offset" mapstructure:"offset"`           // DC offset, Volts
	SampleRate float64 `json:"sample_rate" mapstructure:"sample_rate"` // samples per second
	Duration   float64 `json:"duration" mapstructure:"duration"`       // seconds
	Type       Type    `json:"signal_type" mapstructure:"signal_type"`

	// Type-specific parameters
	DutyCycle      float64 `json:"duty_cycle" mapstructure:"duty_cycle"`             // square/pulse
	RiseTime       float64 `json:"rise_time" mapstructure:"rise_time"`               // pulse, seconds
	NoiseLevel     float64 `json:"noise_level" mapstructure:"noise_level"`           // noise
	ChirpStartFreq float64 `json:"chirp_start_freq" mapstructure:"chirp_start_freq"` // chirp, Hz
	ChirpEndFreq   float64 `json:"chirp_end_freq" mapstructure:"chirp_end_freq"`     // chirp, Hz
}

// DefaultParameters returns generation parameters matching the generator defaults
func DefaultParameters() Parameters {
	return Parameters{
		Frequency:      1000.0,
		Amplitude:      1.0,
		Phase:          0.0,
		Offset:         0.0,
		SampleRate:     44100.0,
		Duration:       1.0,
		Type:           TypeSine,
		DutyCycle:      0.5,
		RiseTime:       0.01,
		NoiseLevel:     0.1,
		ChirpStartFreq: 100.0,
		ChirpEndFreq:   10000.0,
	}
}

// Validate checks the parameter invariants. Generation refuses invalid
// parameters up front rather than producing a garbage array later.
func (p Parameters) Validate() error {
	if p.Frequency <= 0 {
		return fmt.Errorf("frequency must be positive, got %g", p.Frequency)
	}
	if p.Amplitude <= 0 {
		return fmt.Errorf("amplitude must be positive, got %g", p.Amplitude)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %g", p.SampleRate)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", p.Duration)
	}
	if p.DutyCycle < 0 || p.DutyCycle > 1 {
		return fmt.Errorf("duty cycle must be between 0 and 1, got %g", p.DutyCycle)
	}
	return nil
}

// NumSamples returns the length of the array Generate will produce
func (p Parameters) NumSamples() int {
	return int(p.Duration * p.SampleRate)
}

// Info summarizes the last generated signal
type Info struct {
	Samples    int     `json:"samples"`
	Duration   float64 `json:"duration"`
	MaxValue   float64 `json:"max_value"`
	MinValue   float64 `json:"min_value"`
	RMSValue   float64 `json:"rms_value"`
	PeakToPeak float64 `json:"peak_to_peak"`
}
