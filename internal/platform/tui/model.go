package tui

import (
	"encoding"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// statusTTL is how long a footer status message stays visible.
const statusTTL = 3 * time.Second

// Options configures the game model.
type Options struct {
	ShowHelp bool
	SaveDir  string // Directory for ctrl+s board exports; empty disables saving
	Logger   *log.Logger
}

// levelIdentifier is implemented by games that can name the current level.
type levelIdentifier interface {
	LevelID() string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	statusAt   time.Time
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := Model{
		game:       game,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(DefaultGameKeyMap()),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	game.Reset(m.gameConfig())
	m.gameState = game.State()
	return m
}

// footerHeight is the number of rows the help footer takes.
func (m Model) footerHeight() int {
	if !m.opts.ShowHelp {
		return 0
	}
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.Keys().FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// gameHeight is the number of rows left for the game once the footer is drawn.
func (m Model) gameHeight(h int) int {
	return max(h-m.footerHeight(), 1)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight(cfg.ScreenH)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Save):
		m.saveBoard()
		return m, nil
	case key.Matches(msg, keys.Help) && m.opts.ShowHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// relayout resizes the game area after the terminal or the footer changed.
func (m *Model) relayout() {
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.status != "" && time.Since(m.statusAt) > statusTTL {
		m.status = ""
	}
	return m, tickCmd(m.config.TickRate)
}

// saveBoard writes the current board in the level text format to SaveDir.
func (m *Model) saveBoard() {
	path, err := m.exportBoard(time.Now())
	if err != nil {
		m.opts.Logger.Warn("save board", "err", err)
		m.setStatus("Save failed: " + err.Error())
		return
	}
	m.opts.Logger.Info("board saved", "path", path)
	m.setStatus("Saved " + path)
}

func (m *Model) exportBoard(now time.Time) (string, error) {
	if m.opts.SaveDir == "" {
		return "", fmt.Errorf("no save directory configured")
	}
	tm, ok := m.game.(encoding.TextMarshaler)
	if !ok {
		return "", fmt.Errorf("%s cannot export its board", m.game.ID())
	}
	data, err := tm.MarshalText()
	if err != nil {
		return "", err
	}

	name := m.game.ID()
	if li, ok := m.game.(levelIdentifier); ok && li.LevelID() != "" {
		name = li.LevelID()
	}
	if err := os.MkdirAll(m.opts.SaveDir, 0o755); err != nil {
		return "", fmt.Errorf("create save dir: %w", err)
	}
	path := filepath.Join(m.opts.SaveDir, fmt.Sprintf("%s_%s.lvl", name, now.Format("20060102_150405")))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write board: %w", err)
	}
	return path, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if !m.opts.ShowHelp {
		return out
	}

	footer := m.help.View(m.keys.Keys())
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return out + "\n" + footer
}

// WantsBack reports whether the player left the game for the level selector.
func (m Model) WantsBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for the game. It returns true when the
// player asked to go back to the level selector rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (bool, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.WantsBack(), nil
}
