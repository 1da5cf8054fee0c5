package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const starcatchFile = "starcatch.yaml"

// LoadStarcatch loads Star Catcher configuration.
// Search order: customPath -> ~/.starcatch/configs/starcatch.yaml -> ./configs/starcatch.yaml -> embedded default
func LoadStarcatch(customPath string) (StarcatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StarcatchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseStarcatch(data)
		if err != nil {
			return StarcatchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(starcatchFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseStarcatch(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", starcatchFile)); err == nil {
		if cfg, err := parseStarcatch(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseStarcatch(defaultStarcatchYAML)
	if err != nil {
		return DefaultStarcatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseStarcatch decodes YAML over the hardcoded defaults, so files may
// override only the keys they care about.
func parseStarcatch(data []byte) (StarcatchConfig, error) {
	cfg := DefaultStarcatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcatch", "configs", filename)
}

// ApplyStarcatchPreset modifies the config based on a difficulty preset.
func ApplyStarcatchPreset(cfg *StarcatchConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Bombs.SpeedX = 150
	case DifficultyHard:
		cfg.Bombs.SpeedX = 250
	}
}
