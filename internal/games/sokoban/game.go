// Package sokoban plays a level pack on the platform: it turns input frames
// into moves, tracks the clock and level progression, and draws the board.
package sokoban

import (
	"github.com/vovakirdan/tui-sokoban/internal/core"
	sokocore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "sokoban"

// Options configures a game.
type Options struct {
	Pack         *levels.Pack
	Start        int // 1-based level to start from; 0 starts at the first level
	HistoryLimit int // Undo snapshots per level, 0 = unbounded
	AutoAdvance  bool
	AdvanceDelay int // Seconds the level-complete screen stays up
	Theme        Theme
}

// DefaultOptions plays the built-in pack with the default settings.
func DefaultOptions() Options {
	return Options{
		HistoryLimit: 1000,
		AutoAdvance:  true,
		AdvanceDelay: 5,
		Theme:        UnicodeTheme(),
	}
}

// Package-level options used by the registry factory.
var configured = DefaultOptions()

// Configure sets the options for games created through the registry.
func Configure(opts Options) {
	configured = opts
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game for a sokoban level pack.
type Game struct {
	opts  Options
	pack  *levels.Pack
	state *sokocore.State
	level levels.Level

	levelIndex int // 0-indexed
	tick       uint64
	tickRate   int

	levelTicks int // Ticks spent on the current attempt
	clearTicks int // Ticks since the level was cleared
	timeToBeat int // levelTicks at the moment the level was cleared
	best       map[string]int
	movesDone  int // Moves spent on levels already cleared

	// Screen dimensions
	screenW int
	screenH int

	cleared  bool
	won      bool
	paused   bool
	tooSmall bool
	noLevels bool
}

// New creates a game with the options set by Configure.
func New() *Game {
	return NewWithOptions(configured)
}

// NewWithOptions creates a game with explicit options.
// A nil pack falls back to the built-in levels.
func NewWithOptions(opts Options) *Game {
	if opts.Theme.Name == "" {
		opts.Theme = UnicodeTheme()
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sokoban"
}

// Reset starts the pack over from the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.movesDone = 0
	g.won = false
	g.paused = false
	if g.best == nil {
		g.best = make(map[string]int) // Kept across restarts of the pack
	}

	if g.pack == nil {
		g.pack = g.opts.Pack
		if g.pack == nil {
			pack, err := levels.Builtin().LoadPack()
			if err == nil {
				g.pack = pack
			}
		}
	}
	g.noLevels = g.pack == nil || g.pack.Len() == 0

	g.levelIndex = 0
	if start := g.opts.Start; start > 0 && !g.noLevels && start <= g.pack.Len() {
		g.levelIndex = start - 1
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	if !g.noLevels {
		g.loadLevel(g.levelIndex)
	}
}

// Resize adapts the layout to a new screen size without touching game progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// SelectLevel jumps to a level by 1-based index. Out-of-range indexes are ignored.
func (g *Game) SelectLevel(n int) {
	if g.noLevels || n < 1 || n > g.pack.Len() {
		return
	}
	g.won = false
	g.loadLevel(n - 1)
}

// loadLevel starts a fresh attempt at the level with the given index.
func (g *Game) loadLevel(index int) {
	g.levelIndex = index
	g.level = g.pack.Levels[index]
	g.state = g.level.NewState(sokocore.WithHistoryLimit(g.opts.HistoryLimit))
	g.cleared = false
	g.clearTicks = 0
	g.levelTicks = 0
	g.timeToBeat = 0
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the current level.
func (g *Game) checkScreenSize() {
	minW, minH := minScreenW, minScreenH
	if g.state != nil {
		h, w := g.state.Dimensions()
		minW = core.Max(minW, w*cellWidth+2)
		minH = core.Max(minH, h+hudHeight+2)
	}
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.noLevels || g.won {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.cleared {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.cleared {
		g.stepCleared(in)
		return core.StepResult{State: g.State()}
	}

	g.levelTicks++

	result := core.StepResult{}
	for _, action := range in.Order {
		g.apply(action)
		if g.state.IsWon() {
			g.clearLevel()
			result.Cleared = true
			break
		}
	}

	result.State = g.State()
	return result
}

// apply performs one in-level action.
func (g *Game) apply(action core.Action) {
	switch action {
	case core.ActionUp:
		g.state.Move(sokocore.DirUp)
	case core.ActionDown:
		g.state.Move(sokocore.DirDown)
	case core.ActionLeft:
		g.state.Move(sokocore.DirLeft)
	case core.ActionRight:
		g.state.Move(sokocore.DirRight)
	case core.ActionUndo:
		g.state.Undo()
	case core.ActionRedo:
		g.state.Redo()
	case core.ActionRestart:
		g.state.Reset()
		g.levelTicks = 0
	}
}

// clearLevel records the win and starts the advance countdown.
func (g *Game) clearLevel() {
	g.cleared = true
	g.clearTicks = 0
	g.timeToBeat = g.levelTicks
	if best, ok := g.best[g.level.ID]; !ok || g.levelTicks < best {
		g.best[g.level.ID] = g.levelTicks
	}
}

// stepCleared handles input while the level-complete screen is shown.
func (g *Game) stepCleared(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		g.loadLevel(g.levelIndex)
		return
	case in.Has(core.ActionPrev):
		if g.levelIndex > 0 {
			g.movesDone += g.state.MoveCount()
			g.loadLevel(g.levelIndex - 1)
		}
		return
	case in.Has(core.ActionNext), in.Has(core.ActionConfirm):
		g.advanceLevel()
		return
	}

	g.clearTicks++
	if g.opts.AutoAdvance && g.clearTicks >= g.advanceTicks() {
		g.advanceLevel()
	}
}

// advanceTicks is the length of the level-complete countdown in ticks.
func (g *Game) advanceTicks() int {
	return g.opts.AdvanceDelay * g.tickRate
}

// advanceLevel moves to the next level, or ends the game after the last one.
func (g *Game) advanceLevel() {
	g.movesDone += g.state.MoveCount()

	if g.levelIndex >= g.pack.Len()-1 {
		// Completed all levels
		g.cleared = false
		g.won = true
		return
	}

	g.loadLevel(g.levelIndex + 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.TotalMoves(),
		GameOver: g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.cleared,
	}
}

// TotalMoves returns the moves spent on cleared levels plus the current attempt.
func (g *Game) TotalMoves() int {
	if g.state == nil || g.won {
		return g.movesDone
	}
	return g.movesDone + g.state.MoveCount()
}

// Board returns the live board state, or nil when no level is loaded.
func (g *Game) Board() *sokocore.State {
	return g.state
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Pack returns the level pack, or nil before Reset.
func (g *Game) Pack() *levels.Pack {
	return g.pack
}

// MarshalText exports the current board in the level text format.
func (g *Game) MarshalText() ([]byte, error) {
	if g.state == nil {
		return nil, ErrNoLevel
	}
	return g.state.MarshalText()
}

// LevelID returns the identifier of the level being played, or "" before Reset.
func (g *Game) LevelID() string {
	if g.state == nil {
		return ""
	}
	return g.level.ID
}
