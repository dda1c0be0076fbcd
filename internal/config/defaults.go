package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultSokobanConfig returns the default configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Levels: LevelsConfig{
			Dir:   "",
			Start: 0,
		},
		Gameplay: GameplayConfig{
			HistoryLimit:        1000,
			AutoAdvance:         true,
			AdvanceDelaySeconds: 5,
		},
		Display: DisplayConfig{
			Theme:    ThemeUnicode,
			ShowHelp: true,
		},
	}
}
