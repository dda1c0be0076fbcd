package sokoban

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	sokocore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// oneMove is solved by a single push to the right.
const oneMove = "1 3\n@Aa"

// twoMoves needs two pushes to the right.
const twoMoves = "3 6\n######\n#@A.a#\n######"

func testPack(t *testing.T, texts ...string) *levels.Pack {
	t.Helper()
	pack := &levels.Pack{Name: "Test"}
	for i, text := range texts {
		data, err := sokocore.Parse(text)
		if err != nil {
			t.Fatalf("Parse(level %d) failed: %v", i+1, err)
		}
		id := fmt.Sprintf("t%d", i+1)
		pack.Levels = append(pack.Levels, levels.Level{ID: id, Name: id, Index: i + 1, Data: data})
	}
	return pack
}

func newTestGame(t *testing.T, opts Options, texts ...string) *Game {
	t.Helper()
	opts.Pack = testPack(t, texts...)
	g := NewWithOptions(opts)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestClearLevel(t *testing.T) {
	g := newTestGame(t, Options{AutoAdvance: true, AdvanceDelay: 1}, oneMove, oneMove)

	result := g.Step(frame(core.ActionRight))

	if !result.Cleared {
		t.Error("Step() should report the level as cleared")
	}
	snap := g.Snapshot()
	if snap.Status != StatusCleared {
		t.Errorf("Status = %s, expected %s", snap.Status, StatusCleared)
	}
	if snap.TimeToBeat != 1 {
		t.Errorf("TimeToBeat = %d, expected 1", snap.TimeToBeat)
	}
	if !result.State.Paused {
		t.Error("State().Paused should be true while the level-complete screen is up")
	}
	if result.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", result.State.Score)
	}
}

func TestAutoAdvance(t *testing.T) {
	g := newTestGame(t, Options{AutoAdvance: true, AdvanceDelay: 1}, oneMove, oneMove)
	g.Step(frame(core.ActionRight))

	// One second at 10 ticks per second
	for i := 0; i < 9; i++ {
		g.Step(frame())
	}
	if g.Snapshot().Status != StatusCleared {
		t.Fatalf("advanced too early, status %s", g.Snapshot().Status)
	}

	g.Step(frame())

	snap := g.Snapshot()
	if snap.Level != 2 || snap.Status != StatusPlaying {
		t.Errorf("after countdown Level = %d status %s, expected 2 playing", snap.Level, snap.Status)
	}
	if snap.Moves != 0 || snap.TotalMoves != 1 {
		t.Errorf("Moves = %d, TotalMoves = %d, expected 0 and 1", snap.Moves, snap.TotalMoves)
	}
}

func TestManualAdvance(t *testing.T) {
	g := newTestGame(t, Options{AutoAdvance: false, AdvanceDelay: 1}, oneMove, oneMove)
	g.Step(frame(core.ActionRight))

	for i := 0; i < 100; i++ {
		g.Step(frame())
	}
	if g.Snapshot().Status != StatusCleared {
		t.Fatalf("Status = %s, expected to wait on the level-complete screen", g.Snapshot().Status)
	}

	// Moves are ignored while the level is cleared
	g.Step(frame(core.ActionLeft))
	if g.Board().MoveCount() != 1 {
		t.Errorf("MoveCount() = %d, expected 1", g.Board().MoveCount())
	}

	g.Step(frame(core.ActionConfirm))
	if g.Snapshot().Level != 2 {
		t.Errorf("Level = %d, expected 2", g.Snapshot().Level)
	}
}

func TestNextAndPrevAfterClear(t *testing.T) {
	g := newTestGame(t, Options{}, oneMove, oneMove, oneMove)

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionNext))
	if g.Snapshot().Level != 2 {
		t.Fatalf("Level = %d, expected 2", g.Snapshot().Level)
	}

	// Next is ignored while playing
	g.Step(frame(core.ActionNext))
	if g.Snapshot().Level != 2 {
		t.Fatalf("Next while playing changed level to %d", g.Snapshot().Level)
	}

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionPrev))
	snap := g.Snapshot()
	if snap.Level != 1 || snap.Status != StatusPlaying {
		t.Errorf("after Prev Level = %d status %s, expected 1 playing", snap.Level, snap.Status)
	}
}

func TestWinAfterLastLevel(t *testing.T) {
	g := newTestGame(t, Options{AutoAdvance: true, AdvanceDelay: 0}, oneMove, oneMove)

	g.Step(frame(core.ActionRight))
	g.Step(frame())
	g.Step(frame(core.ActionRight))
	result := g.Step(frame())

	if !result.State.GameOver || !result.State.Won {
		t.Errorf("State() = %+v, expected game over and won", result.State)
	}
	if result.State.Score != 2 {
		t.Errorf("Score = %d, expected 2", result.State.Score)
	}
	if g.Snapshot().Status != StatusWon {
		t.Errorf("Status = %s, expected %s", g.Snapshot().Status, StatusWon)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10})
	snap := g.Snapshot()
	if snap.Level != 1 || snap.Status != StatusPlaying || snap.TotalMoves != 0 {
		t.Errorf("after Reset snapshot = %+v, expected a fresh game", snap)
	}
}

func TestRestartWhileCleared(t *testing.T) {
	g := newTestGame(t, Options{AutoAdvance: true, AdvanceDelay: 5}, oneMove, oneMove)
	g.Step(frame(core.ActionRight))

	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	if snap.Level != 1 || snap.Status != StatusPlaying || snap.Moves != 0 {
		t.Errorf("snapshot = %+v, expected level 1 replayed from the start", snap)
	}
}

func TestUndoRedoRestartActions(t *testing.T) {
	g := newTestGame(t, Options{}, twoMoves)

	g.Step(frame(core.ActionRight))
	if g.Board().MoveCount() != 1 {
		t.Fatalf("MoveCount() = %d, expected 1", g.Board().MoveCount())
	}

	g.Step(frame(core.ActionUndo))
	if g.Board().MoveCount() != 0 {
		t.Errorf("after undo MoveCount() = %d, expected 0", g.Board().MoveCount())
	}

	g.Step(frame(core.ActionRedo))
	if g.Board().MoveCount() != 1 {
		t.Errorf("after redo MoveCount() = %d, expected 1", g.Board().MoveCount())
	}

	g.Step(frame(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Moves != 0 || snap.LevelTicks != 0 {
		t.Errorf("after restart Moves = %d LevelTicks = %d, expected 0 and 0", snap.Moves, snap.LevelTicks)
	}
}

func TestActionsReplayInOrder(t *testing.T) {
	g := newTestGame(t, Options{}, twoMoves, oneMove)

	// Undo then right then right: only the final order solves the level
	result := g.Step(frame(core.ActionUndo, core.ActionRight, core.ActionRight, core.ActionLeft))

	if !result.Cleared {
		t.Fatal("two pushes in one frame should clear the level")
	}
	// The trailing Left is dropped once the level is cleared
	if g.Board().MoveCount() != 2 {
		t.Errorf("MoveCount() = %d, expected 2", g.Board().MoveCount())
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, Options{}, twoMoves)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("State().Paused = false after pause")
	}
	ticks := g.Snapshot().LevelTicks

	g.Step(frame(core.ActionRight))
	g.Step(frame())
	if g.Board().MoveCount() != 0 {
		t.Error("moves should be ignored while paused")
	}
	if g.Snapshot().LevelTicks != ticks {
		t.Error("level clock should stop while paused")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionRight))
	if g.Board().MoveCount() != 1 {
		t.Errorf("MoveCount() = %d, expected 1 after unpausing", g.Board().MoveCount())
	}
}

func TestScreenTooSmall(t *testing.T) {
	opts := Options{Pack: testPack(t, twoMoves)}
	g := NewWithOptions(opts)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 10})

	if g.Snapshot().Status != StatusTooSmall {
		t.Fatalf("Status = %s, expected %s", g.Snapshot().Status, StatusTooSmall)
	}
	g.Step(frame(core.ActionRight))
	if g.Board().MoveCount() != 0 {
		t.Error("moves should be ignored while the window is too small")
	}

	g.Resize(80, 24)
	g.Step(frame(core.ActionRight))
	if g.Board().MoveCount() != 1 {
		t.Errorf("MoveCount() = %d, expected 1 after resize", g.Board().MoveCount())
	}

	// Resizing keeps progress
	g.Resize(100, 30)
	if g.Board().MoveCount() != 1 {
		t.Error("Resize() should not restart the level")
	}
}

func TestStartLevelAndSelect(t *testing.T) {
	g := newTestGame(t, Options{Start: 2}, oneMove, twoMoves, oneMove)
	if g.Snapshot().Level != 2 || g.Level().ID != "t2" {
		t.Fatalf("Level = %d (%s), expected 2 (t2)", g.Snapshot().Level, g.Level().ID)
	}

	g.SelectLevel(3)
	if g.Snapshot().Level != 3 {
		t.Errorf("SelectLevel(3) gave level %d", g.Snapshot().Level)
	}

	g.SelectLevel(9)
	if g.Snapshot().Level != 3 {
		t.Error("SelectLevel() out of range should be ignored")
	}

	g = newTestGame(t, Options{Start: 7}, oneMove)
	if g.Snapshot().Level != 1 {
		t.Errorf("out of range Start should begin at level 1, got %d", g.Snapshot().Level)
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, Options{Theme: ASCIITheme()}, twoMoves)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(screen.Row(0), "SOKOBAN") || !strings.Contains(screen.Row(0), "Level 1/1") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(out, "##@v[]  ..##") {
		t.Errorf("board not rendered as expected:\n%s", out)
	}

	g.Step(frame(core.ActionRight))
	g.Render(screen)
	if !strings.Contains(screen.String(), "##  @>[]..##") {
		t.Errorf("player glyph should follow facing:\n%s", screen.String())
	}
	if !strings.Contains(screen.Row(1), "Moves: 1") {
		t.Errorf("stats row = %q, expected Moves: 1", screen.Row(1))
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, Options{AutoAdvance: true, AdvanceDelay: 3}, oneMove, oneMove)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionRight))
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"LEVEL COMPLETE!", "Time to beat: 0:00", "Next level in: 3s"} {
		if !strings.Contains(out, want) {
			t.Errorf("cleared overlay missing %q:\n%s", want, out)
		}
	}

	g.Step(frame(core.ActionNext))
	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderPlayerColors(t *testing.T) {
	g := newTestGame(t, Options{}, "1 5\n@a.A.")
	screen := core.NewScreen(40, 12)
	theme := UnicodeTheme()

	g.Step(frame(core.ActionRight))
	g.Render(screen)

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			if c.Rune == '■' && c.Color == theme.PlayerOnStorage {
				found = true
			}
		}
	}
	if !found {
		t.Error("player on storage should use the storage color")
	}
}

func TestNoLevels(t *testing.T) {
	g := NewWithOptions(Options{Pack: &levels.Pack{Name: "Empty"}})
	g.Reset(core.DefaultConfig())

	if g.Snapshot().Status != StatusNoLevels {
		t.Errorf("Status = %s, expected %s", g.Snapshot().Status, StatusNoLevels)
	}
	g.Step(frame(core.ActionRight))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "No levels found") {
		t.Error("expected the no-levels message")
	}

	if _, err := g.MarshalText(); !errors.Is(err, ErrNoLevel) {
		t.Errorf("MarshalText() error = %v, expected ErrNoLevel", err)
	}
}

func TestMarshalText(t *testing.T) {
	g := newTestGame(t, Options{}, twoMoves)
	g.Step(frame(core.ActionRight))

	data, err := g.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	expected := "3 6\n######\n#.@Aa#\n######\n"
	if string(data) != expected {
		t.Errorf("MarshalText() = %q, expected %q", data, expected)
	}
}

func TestDefaultOptionsUseBuiltinPack(t *testing.T) {
	g := NewWithOptions(DefaultOptions())
	g.Reset(core.DefaultConfig())

	if g.Pack() == nil || g.Pack().Len() != 6 {
		t.Fatal("default game should load the six built-in levels")
	}
	if g.Level().ID != "first-push" {
		t.Errorf("Level().ID = %q, expected first-push", g.Level().ID)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q is not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Sokoban" {
		t.Errorf("Title() = %q, expected Sokoban", g.Title())
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"unicode", "ascii"} {
		theme, ok := ThemeByName(name)
		if !ok || theme.Name != name {
			t.Errorf("ThemeByName(%q) = %q, %v", name, theme.Name, ok)
		}
		for _, tile := range sokocore.Tiles() {
			if tile == sokocore.TilePlayer {
				continue
			}
			if _, ok := theme.Tiles[tile]; !ok {
				t.Errorf("%s theme has no glyph for %v", name, tile)
			}
		}
	}
	if _, ok := ThemeByName("neon"); ok {
		t.Error("ThemeByName(neon) should fail")
	}
}

func TestBestTimeSurvivesPackRestart(t *testing.T) {
	g := newTestGame(t, Options{AdvanceDelay: 1}, oneMove)
	g.Step(core.InputFrame{})
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionConfirm))
	if !g.State().GameOver {
		t.Fatal("single-level pack should be won")
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10})
	if g.State().GameOver {
		t.Error("Reset() should start the pack over")
	}
	if best, ok := g.best["t1"]; !ok || best != 2 {
		t.Errorf("best[t1] = %d, %v, expected 2, true", best, ok)
	}
}
