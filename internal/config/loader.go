package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Invoker configuration.
// Search order: customPath -> ~/.invoker/configs/invoker.yaml -> ./configs/invoker.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. Only a failing customPath is reported as an error; the
// other locations are optional and skipped when missing or malformed.
func Load(customPath string) (InvokerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("invoker.yaml"), filepath.Join("configs", "invoker.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg InvokerConfig
	if err := yaml.Unmarshal(defaultInvokerYAML, &cfg); err != nil {
		return DefaultInvokerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads a YAML file over the default configuration.
func loadFile(path string) (InvokerConfig, error) {
	cfg := DefaultInvokerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg InvokerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invoker", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *InvokerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.DriftPerSecond = 0
		cfg.Difficulty.CompletionDelta = 0
		cfg.Difficulty.OverCollectionBase = 0
		cfg.Difficulty.OverCollectionScale = 0
		return
	}

	cfg.Difficulty.Initial = clampF(InitialLevelForPreset(preset), cfg.Difficulty.Min, cfg.Difficulty.Max)

	// Hard also narrows the hit window, easy widens it
	switch preset {
	case DifficultyEasy:
		cfg.HitWindow *= 1.25
	case DifficultyHard:
		cfg.HitWindow *= 0.8
	}
}
