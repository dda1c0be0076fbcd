package sokoban

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	sokocore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

const (
	hudHeight  = 3 // Title line, stats line, separator
	minScreenW = 40
	minScreenH = 12
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.noLevels || g.pack == nil {
		g.renderMessage(dst, "No levels found", "Check the levels directory")
		return
	}

	if g.tooSmall {
		g.renderMessage(dst, "Window too small", "Please resize terminal")
		return
	}

	g.renderHUD(dst)
	frame := g.renderBoard(dst)
	g.renderOverlays(dst, frame)
}

// renderMessage shows a two-line message in the middle of the screen.
func (g *Game) renderMessage(dst *core.Screen, title, hint string) {
	y := dst.Height() / 2
	dst.DrawTextCenteredWithColor(y, title, core.ColorBrightYellow)
	dst.DrawTextCenteredWithColor(y+1, hint, core.ColorGray)
}

// renderHUD draws the title and stats lines.
func (g *Game) renderHUD(dst *core.Screen) {
	title := fmt.Sprintf(" SOKOBAN | %s | Level %d/%d: %s", g.pack.Name, g.levelIndex+1, g.pack.Len(), g.level.Name)
	dst.DrawTextWithColor(0, 0, title, core.ColorCyan)

	if g.state == nil {
		return
	}

	stats := fmt.Sprintf(" Moves: %d | Time: %s | Crates: %d/%d",
		g.state.MoveCount(), g.formatTicks(g.levelTicks), g.state.SeatedCount(), g.state.StorageCount())
	if best, ok := g.best[g.level.ID]; ok {
		stats += " | Best: " + g.formatTicks(best)
	}
	if g.movesDone > 0 {
		stats += fmt.Sprintf(" | Total: %d", g.TotalMoves())
	}
	dst.DrawTextWithColor(0, 1, stats, core.ColorWhite)

	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorGray)
}

// renderBoard draws the board centered below the HUD and returns its frame.
func (g *Game) renderBoard(dst *core.Screen) core.Rect {
	h, w := g.state.Dimensions()
	theme := g.opts.Theme

	frame := core.CenteredRect(dst.Width(), dst.Height()-hudHeight, w*cellWidth+2, h+2)
	frame.Y += hudHeight
	dst.DrawBoxWithColor(frame, theme.Border)

	inner := frame.Inset(1)
	player := g.state.PlayerPosition()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var glyph Glyph
			if c := sokocore.C(x, y); c == player {
				glyph = theme.PlayerGlyph(g.state.Facing(), g.state.IsStorage(c))
			} else {
				glyph = theme.Glyph(g.state.CellAt(x, y))
			}
			dst.DrawTextWithColor(inner.X+x*cellWidth, inner.Y+y, glyph.Text, glyph.Color)
		}
	}
	return frame
}

// renderOverlays draws pause, level-complete and game-won boxes.
func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	switch {
	case g.won:
		g.drawOverlay(dst, frame, "ALL LEVELS CLEARED!",
			fmt.Sprintf("Total moves: %d", g.movesDone),
			"Press R to play again")
	case g.cleared:
		lines := []string{
			"LEVEL COMPLETE!",
			fmt.Sprintf("Moves: %d", g.state.MoveCount()),
			"Time to beat: " + g.formatTicks(g.timeToBeat),
		}
		switch {
		case g.levelIndex >= g.pack.Len()-1:
			lines = append(lines, "Enter: finish")
		case g.opts.AutoAdvance:
			lines = append(lines, fmt.Sprintf("Next level in: %ds", g.countdown()))
		default:
			lines = append(lines, "Enter: next level")
		}
		g.drawOverlay(dst, frame, lines...)
	case g.paused:
		g.drawOverlay(dst, frame, "PAUSED", "Press P to resume")
	}
}

// countdown returns the whole seconds left before auto-advance, rounded up.
func (g *Game) countdown() int {
	left := g.advanceTicks() - g.clearTicks
	if left <= 0 {
		return 0
	}
	return (left + g.tickRate - 1) / g.tickRate
}

// drawOverlay draws a boxed message centered on the board frame.
func (g *Game) drawOverlay(dst *core.Screen, frame core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	cx, cy := frame.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	// Keep the box on screen even when the board is small
	box.X = core.Clamp(box.X, 0, core.Max(0, dst.Width()-boxW))
	box.Y = core.Clamp(box.Y, hudHeight, core.Max(hudHeight, dst.Height()-boxH))

	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, core.ColorWhite)
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		x := box.X + (boxW-utf8.RuneCountInString(line))/2
		dst.DrawTextWithColor(x, box.Y+1+i, line, color)
	}
}

// formatTicks renders a tick count as m:ss.
func (g *Game) formatTicks(ticks int) string {
	secs := ticks / g.tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
