package sokoban

import (
	"github.com/vovakirdan/tui-sokoban/internal/core"
	sokocore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// cellWidth is the number of terminal columns per board cell.
// Two columns keep cells roughly square in most fonts.
const cellWidth = 2

// Glyph is how one board cell is drawn.
type Glyph struct {
	Text  string // Exactly cellWidth runes
	Color core.Color
}

// Theme maps tiles to glyphs.
type Theme struct {
	Name   string
	Tiles  map[sokocore.Tile]Glyph
	Player [4]Glyph // Indexed by facing direction
	// PlayerOnStorage colors the player while it stands on a storage cell.
	PlayerOnStorage core.Color
	Border          core.Color
}

// Glyph returns the glyph for a tile. Unknown tiles draw as "??".
func (t Theme) Glyph(tile sokocore.Tile) Glyph {
	if g, ok := t.Tiles[tile]; ok {
		return g
	}
	return Glyph{Text: "??", Color: core.ColorRed}
}

// PlayerGlyph returns the player glyph for a facing direction.
func (t Theme) PlayerGlyph(d sokocore.Dir, onStorage bool) Glyph {
	g := t.Player[d]
	if onStorage {
		g.Color = t.PlayerOnStorage
	}
	return g
}

// UnicodeTheme draws with block and arrow characters.
func UnicodeTheme() Theme {
	return Theme{
		Name: "unicode",
		Tiles: map[sokocore.Tile]Glyph{
			sokocore.TileGround:          {"  ", core.ColorDefault},
			sokocore.TileWall:            {"██", core.ColorGray},
			sokocore.TileCrate:           {"▐▌", core.ColorOrange},
			sokocore.TileHoleCrate:       {"▐▌", core.ColorBrightGreen},
			sokocore.TileGroundOutline:   {"░░", core.ColorCyan},
			sokocore.TileOutline:         {"▫▫", core.ColorCyan},
			sokocore.TileHoleGround:      {"◦◦", core.ColorGray},
			sokocore.TileLockedCrate:     {"▓▓", core.ColorRed},
			sokocore.TileLockedHoleCrate: {"▓▓", core.ColorGreen},
			sokocore.TileDimCrate:        {"▐▌", core.ColorGray},
			sokocore.TileDimHoleCrate:    {"▐▌", core.ColorGreen},
			sokocore.TileFallingCrate:    {"▼▼", core.ColorYellow},
			sokocore.TileCoin:            {"◉ ", core.ColorBrightYellow},
		},
		Player: [4]Glyph{
			sokocore.DirUp:    {"▲▲", core.ColorBrightWhite},
			sokocore.DirDown:  {"▼▼", core.ColorBrightWhite},
			sokocore.DirLeft:  {"◀■", core.ColorBrightWhite},
			sokocore.DirRight: {"■▶", core.ColorBrightWhite},
		},
		PlayerOnStorage: core.ColorBrightCyan,
		Border:          core.ColorGray,
	}
}

// ASCIITheme draws with plain ASCII for terminals without box characters.
func ASCIITheme() Theme {
	return Theme{
		Name: "ascii",
		Tiles: map[sokocore.Tile]Glyph{
			sokocore.TileGround:          {"  ", core.ColorDefault},
			sokocore.TileWall:            {"##", core.ColorGray},
			sokocore.TileCrate:           {"[]", core.ColorYellow},
			sokocore.TileHoleCrate:       {"{}", core.ColorGreen},
			sokocore.TileGroundOutline:   {"..", core.ColorCyan},
			sokocore.TileOutline:         {"::", core.ColorCyan},
			sokocore.TileHoleGround:      {"()", core.ColorGray},
			sokocore.TileLockedCrate:     {"XX", core.ColorRed},
			sokocore.TileLockedHoleCrate: {"XX", core.ColorGreen},
			sokocore.TileDimCrate:        {"[]", core.ColorGray},
			sokocore.TileDimHoleCrate:    {"{}", core.ColorGray},
			sokocore.TileFallingCrate:    {"vv", core.ColorYellow},
			sokocore.TileCoin:            {"$ ", core.ColorYellow},
		},
		Player: [4]Glyph{
			sokocore.DirUp:    {"^@", core.ColorWhite},
			sokocore.DirDown:  {"@v", core.ColorWhite},
			sokocore.DirLeft:  {"<@", core.ColorWhite},
			sokocore.DirRight: {"@>", core.ColorWhite},
		},
		PlayerOnStorage: core.ColorCyan,
		Border:          core.ColorDefault,
	}
}

// ThemeByName returns a theme by its config name.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "unicode", "":
		return UnicodeTheme(), true
	case "ascii":
		return ASCIITheme(), true
	}
	return Theme{}, false
}
