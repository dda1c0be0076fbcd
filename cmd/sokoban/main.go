// sokoban plays sokoban level packs in the terminal.
//
// Usage:
//
//	sokoban play [level]     - Play, starting at a level ID or 1-based index
//	sokoban list             - List the levels of the pack
//	sokoban check <file>     - Parse a level file and replay moves on it
//
// Global flags:
//
//	--config <path>     - Path to a sokoban.yaml config
//	--levels <dir>      - Directory of .lvl files (default: built-in pack)
//	--fps <rate>        - Set tick rate (default: 60)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

var (
	// Global flags
	flagConfig   string
	flagLevels   string
	flagFPS      int
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push crates onto storage in your terminal",
	Long: `Sokoban is a terminal puzzle game: push every crate onto a storage
location. Crates can be pushed but never pulled.

Available commands:
  play     - Play the pack, optionally starting at a level
  list     - Show the levels of the pack
  check    - Validate a level file and replay moves on it

Examples:
  sokoban play
  sokoban play corner
  sokoban play 3 --levels ./my-levels
  sokoban list
  sokoban check ./levels/01.lvl --moves "RRUL" --round-trip`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of .lvl files (overrides levels.dir)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
		Level:           level,
	})
	return nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.SokobanConfig, error) {
	cfg, err := config.LoadSokoban(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	return cfg, nil
}

// loadPack loads the configured level directory, or the built-in pack.
func loadPack(cfg config.SokobanConfig) (*levels.Pack, error) {
	loader := levels.Builtin()
	if cfg.Levels.Dir != "" {
		loader = levels.NewLoader(cfg.Levels.Dir)
	}
	loader.Logger = logger

	pack, err := loader.LoadPack()
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	logger.Debug("pack loaded", "name", pack.Name, "levels", pack.Len())
	return pack, nil
}
