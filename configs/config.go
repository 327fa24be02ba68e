package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`
	DataDir      string `mapstructure:"data_dir"`

	// Single-signal generator defaults
	Generator GeneratorConfig `mapstructure:"generator"`

	// Strobe assembly defaults
	Strobe StrobeConfig `mapstructure:"strobe"`

	// Spectral analysis settings
	Analysis AnalysisConfig `mapstructure:"analysis"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// GeneratorConfig contains waveform generation defaults
type GeneratorConfig struct {
	SampleRate float64 `mapstructure:"sample_rate"`
	Duration   float64 `mapstructure:"duration"`
	Amplitude  float64 `mapstructure:"amplitude"`
	Frequency  float64 `mapstructure:"frequency"`
	DutyCycle  float64 `mapstructure:"duty_cycle"`
	Seed       uint64  `mapstructure:"seed"` // 0 = non-deterministic
}

// StrobeConfig contains strobe layout defaults
type StrobeConfig struct {
	TotalLength  int     `mapstructure:"total_length"`
	NumRays      int     `mapstructure:"num_rays"`
	PointsPerRay int     `mapstructure:"points_per_ray"`
	SampleRate   float64 `mapstructure:"sample_rate"`
}

// AnalysisConfig contains spectral analysis settings
type AnalysisConfig struct {
	PeakThreshold  float64 `mapstructure:"peak_threshold"`
	WindowFunction string  `mapstructure:"window_function"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision       int  `mapstructure:"precision"`
	IncludeMetadata bool `mapstructure:"include_metadata"`
	Timestamps      bool `mapstructure:"timestamps"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Generator.SampleRate <= 0 {
		return fmt.Errorf("generator sample rate must be positive")
	}

	if config.Generator.Duration <= 0 {
		return fmt.Errorf("generator duration must be positive")
	}

	if config.Generator.DutyCycle < 0 || config.Generator.DutyCycle > 1 {
		return fmt.Errorf("generator duty cycle must be between 0 and 1")
	}

	if config.Strobe.TotalLength <= 0 {
		return fmt.Errorf("strobe total length must be positive")
	}

	if config.Strobe.NumRays < 1 {
		return fmt.Errorf("strobe needs at least one ray")
	}

	if config.Analysis.PeakThreshold < 0 {
		return fmt.Errorf("peak threshold cannot be negative")
	}

	return nil
}
