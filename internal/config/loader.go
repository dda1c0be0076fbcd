package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "sokoban.yaml"

// LoadSokoban loads the game configuration.
// Search order: customPath -> ~/.sokoban/configs/sokoban.yaml -> ./configs/sokoban.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadSokoban(customPath string) (SokobanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SokobanConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SokobanConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSokobanYAML)
	if err != nil {
		return DefaultSokobanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (SokobanConfig, error) {
	cfg := DefaultSokobanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SokobanConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SokobanConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", "configs", filename)
}

// DataDir returns ~/.sokoban/<name>, or a relative .sokoban/<name> if home
// is unavailable. Used for saved boards.
func DataDir(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".sokoban", name)
	}
	return filepath.Join(home, ".sokoban", name)
}
