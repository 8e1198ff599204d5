package renderer

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileConfig holds render overrides read from a JSON file. Zero or absent
// fields leave the scene defaults untouched.
type FileConfig struct {
	Scene           string `json:"scene,omitempty"`
	Width           int    `json:"width,omitempty"`
	SamplesPerPixel int    `json:"samplesPerPixel,omitempty"`
	MaxDepth        int    `json:"maxDepth,omitempty"`
	Seed            *int64 `json:"seed,omitempty"` // Pointer so that seed 0 can be requested
	NumWorkers      int    `json:"numWorkers,omitempty"`
	Output          string `json:"output,omitempty"`
}

// LoadFileConfig reads and validates a JSON render configuration
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Width < 0 {
		return nil, fmt.Errorf("invalid width %d in %s", cfg.Width, path)
	}
	if cfg.SamplesPerPixel < 0 {
		return nil, fmt.Errorf("invalid samplesPerPixel %d in %s", cfg.SamplesPerPixel, path)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid maxDepth %d in %s", cfg.MaxDepth, path)
	}
	if cfg.NumWorkers < 0 {
		return nil, fmt.Errorf("invalid numWorkers %d in %s", cfg.NumWorkers, path)
	}

	return &cfg, nil
}
