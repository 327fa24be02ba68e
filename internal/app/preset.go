package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/signal-workbench/pkg/strobe"
)

// LoadStrobePreset loads strobe parameters from a YAML or JSON file.
// Unknown extensions try YAML first, then JSON.
func LoadStrobePreset(filePath string) (*strobe.Parameters, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("preset file does not exist: %s", filePath)
	}

	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		return loadPresetFromYAML(filePath)
	case ".json":
		return loadPresetFromJSON(filePath)
	default:
		if params, err := loadPresetFromYAML(filePath); err == nil {
			return params, nil
		}
		return loadPresetFromJSON(filePath)
	}
}

func loadPresetFromYAML(filePath string) (*strobe.Parameters, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML preset file: %w", err)
	}

	var params strobe.Parameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML preset: %w", err)
	}

	applyPresetDefaults(&params)
	return &params, nil
}

func loadPresetFromJSON(filePath string) (*strobe.Parameters, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON preset file: %w", err)
	}

	var params strobe.Parameters
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse JSON preset: %w", err)
	}

	applyPresetDefaults(&params)
	return &params, nil
}

// applyPresetDefaults fills fields a hand-written preset usually omits
func applyPresetDefaults(params *strobe.Parameters) {
	if params.NumRays == 0 {
		params.NumRays = len(params.Rays)
	}
	for i := range params.Rays {
		ray := &params.Rays[i]
		if ray.SignalType == "" {
			ray.SignalType = "sine"
		}
		if ray.NoiseType == "" {
			ray.NoiseType = strobe.NoiseGaussianWhite
		}
		if ray.QuadraturePhase == 0 {
			ray.QuadraturePhase = strobe.DefaultRayParameters(i).QuadraturePhase
		}
	}
}
