// Package config provides YAML-based configuration loading for the sokoban
// front end: where levels come from, gameplay tuning and display options.
package config

import (
	"errors"
	"fmt"
)

// Theme names accepted by DisplayConfig.Theme.
const (
	ThemeUnicode = "unicode"
	ThemeASCII   = "ascii"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// SokobanConfig contains all configuration for the game.
type SokobanConfig struct {
	Levels   LevelsConfig   `yaml:"levels"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
}

// LevelsConfig selects the level pack.
type LevelsConfig struct {
	Dir   string `yaml:"dir"`   // Directory of .lvl files; empty uses the built-in pack
	Start int    `yaml:"start"` // 1-based level to start from; 0 opens the selector
}

// GameplayConfig tunes history and level progression.
type GameplayConfig struct {
	HistoryLimit        int  `yaml:"history_limit"` // Max undo snapshots per level, 0 = unbounded
	AutoAdvance         bool `yaml:"auto_advance"`
	AdvanceDelaySeconds int  `yaml:"advance_delay_seconds"`
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	Theme    string `yaml:"theme"`
	ShowHelp bool   `yaml:"show_help"`
}

// Validate checks that every field holds a usable value.
func (c SokobanConfig) Validate() error {
	if c.Levels.Start < 0 {
		return fmt.Errorf("%w: levels.start must be >= 0, got %d", ErrInvalidConfig, c.Levels.Start)
	}
	if c.Gameplay.HistoryLimit < 0 {
		return fmt.Errorf("%w: gameplay.history_limit must be >= 0, got %d", ErrInvalidConfig, c.Gameplay.HistoryLimit)
	}
	if c.Gameplay.AdvanceDelaySeconds < 0 {
		return fmt.Errorf("%w: gameplay.advance_delay_seconds must be >= 0, got %d", ErrInvalidConfig, c.Gameplay.AdvanceDelaySeconds)
	}
	switch c.Display.Theme {
	case ThemeUnicode, ThemeASCII:
	default:
		return fmt.Errorf("%w: unknown display.theme %q", ErrInvalidConfig, c.Display.Theme)
	}
	return nil
}
