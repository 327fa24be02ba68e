package configs

import (
	"github.com/spf13/viper"
)

// SetDefaults sets default configuration values for all components
func SetDefaults(v *viper.Viper) {
	// Generator defaults match the conventional single-signal request
	if !v.IsSet("generator.sample_rate") {
		v.Set("generator.sample_rate", 44100.0)
	}
	if !v.IsSet("generator.duration") {
		v.Set("generator.duration", 1.0)
	}
	if !v.IsSet("generator.amplitude") {
		v.Set("generator.amplitude", 1.0)
	}
	if !v.IsSet("generator.frequency") {
		v.Set("generator.frequency", 1000.0)
	}
	if !v.IsSet("generator.duty_cycle") {
		v.Set("generator.duty_cycle", 0.5)
	}
	if !v.IsSet("generator.seed") {
		v.Set("generator.seed", 0)
	}

	// Strobe defaults match the 3-ray demo layout
	if !v.IsSet("strobe.total_length") {
		v.Set("strobe.total_length", 3072)
	}
	if !v.IsSet("strobe.num_rays") {
		v.Set("strobe.num_rays", 3)
	}
	if !v.IsSet("strobe.points_per_ray") {
		v.Set("strobe.points_per_ray", 1024)
	}
	if !v.IsSet("strobe.sample_rate") {
		v.Set("strobe.sample_rate", 100000.0)
	}

	// Analysis defaults
	if !v.IsSet("analysis.peak_threshold") {
		v.Set("analysis.peak_threshold", 0.1)
	}
	if !v.IsSet("analysis.window_function") {
		v.Set("analysis.window_function", "none")
	}

	// Output defaults
	if !v.IsSet("output.precision") {
		v.Set("output.precision", 3)
	}
	if !v.IsSet("output.include_metadata") {
		v.Set("output.include_metadata", true)
	}
	if !v.IsSet("output.timestamps") {
		v.Set("output.timestamps", true)
	}
}
