package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var (
	flagTheme  string
	flagNoHelp bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the level pack",
	Long: `Start playing. Without a level the level selector opens first;
a level is a level ID or a 1-based index into the pack.

Controls:
  Arrows/WASD  - Move
  U/Z          - Undo
  Y            - Redo
  R            - Restart the level
  Enter        - Next level (after a level is complete)
  P            - Pause
  Ctrl+S       - Save the board to ~/.sokoban/saves
  Esc          - Back to the level selector
  Q/Ctrl+C     - Quit

Examples:
  sokoban play
  sokoban play corner
  sokoban play 4 --theme ascii`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Board theme: unicode, ascii")
	playCmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the key help footer")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagTheme != "" {
		cfg.Display.Theme = flagTheme
	}
	if flagNoHelp {
		cfg.Display.ShowHelp = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pack, err := loadPack(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := cfg.Levels.Start
	if len(args) == 1 {
		lvl, findErr := pack.Find(args[0])
		if findErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", findErr)
			fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
			os.Exit(1)
		}
		start = lvl.Index
	}

	width, height := 80, 24 // Defaults
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = flagFPS

	theme, _ := sokoban.ThemeByName(cfg.Display.Theme)
	uiOpts := tui.Options{
		ShowHelp: cfg.Display.ShowHelp,
		SaveDir:  config.DataDir("saves"),
		Logger:   logger,
	}

	cursor := max(start, 1)
	for {
		if start == 0 {
			selection, selErr := tui.RunLevelSelector(pack, rc, cursor)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			if selection == nil {
				return
			}
			start = selection.Level
		}

		sokoban.Configure(sokoban.Options{
			Pack:         pack,
			Start:        start,
			HistoryLimit: cfg.Gameplay.HistoryLimit,
			AutoAdvance:  cfg.Gameplay.AutoAdvance,
			AdvanceDelay: cfg.Gameplay.AdvanceDelaySeconds,
			Theme:        theme,
		})
		game, createErr := registry.Create(sokoban.ID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
			os.Exit(1)
		}

		logger.Debug("starting", "level", start)
		back, runErr := tui.Run(game, rc, uiOpts)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if !back {
			return
		}

		cursor = start
		if g, ok := game.(*sokoban.Game); ok && g.Level().Index > 0 {
			cursor = g.Level().Index
		}
		start = 0
	}
}
