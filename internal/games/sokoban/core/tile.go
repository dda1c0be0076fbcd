// Package core provides the board state machine for Sokoban: level parsing,
// move resolution, the win check and undo/redo history.
// This package is UI-agnostic and deterministic.
package core

// Tile is the kind of a single board cell.
// The set is closed; every kind has exactly one character in the level format.
type Tile uint8

// Ground is the zero value; cells a level leaves unspecified are ground.
const (
	TileGround Tile = iota
	TilePlayer
	TileWall
	TileCrate
	TileHoleGround
	TileLockedCrate
	TileGroundOutline
	TileOutline
	TileDimCrate
	TileDimHoleCrate
	TileFallingCrate
	TileHoleCrate
	TileLockedHoleCrate
	TileCoin

	tileCount
)

// tileChars maps each tile to its level-format character.
var tileChars = [tileCount]byte{
	TileGround:          '.',
	TilePlayer:          '@',
	TileWall:            '#',
	TileCrate:           'A',
	TileHoleGround:      'H',
	TileLockedCrate:     'L',
	TileGroundOutline:   'a',
	TileOutline:         'o',
	TileDimCrate:        'D',
	TileDimHoleCrate:    'd',
	TileFallingCrate:    'F',
	TileHoleCrate:       '1',
	TileLockedHoleCrate: 'l',
	TileCoin:            'C',
}

var tileNames = [tileCount]string{
	TileGround:          "Ground",
	TilePlayer:          "Player",
	TileWall:            "Wall",
	TileCrate:           "Crate",
	TileHoleGround:      "HoleGround",
	TileLockedCrate:     "LockedCrate",
	TileGroundOutline:   "GroundOutline",
	TileOutline:         "Outline",
	TileDimCrate:        "DimCrate",
	TileDimHoleCrate:    "DimHoleCrate",
	TileFallingCrate:    "FallingCrate",
	TileHoleCrate:       "HoleCrate",
	TileLockedHoleCrate: "LockedHoleCrate",
	TileCoin:            "Coin",
}

// charTiles is the inverse of tileChars, built once at init.
var charTiles [256]Tile

var charKnown [256]bool

func init() {
	for t := Tile(0); t < tileCount; t++ {
		c := tileChars[t]
		charTiles[c] = t
		charKnown[c] = true
	}
}

// ParseTile returns the tile for a level-format character.
// The second result is false for characters outside the tile set.
func ParseTile(c byte) (Tile, bool) {
	if !charKnown[c] {
		return 0, false
	}
	return charTiles[c], true
}

// Char returns the level-format character of the tile.
func (t Tile) Char() byte {
	if t >= tileCount {
		return '?'
	}
	return tileChars[t]
}

// String returns the name of the tile.
func (t Tile) String() string {
	if t >= tileCount {
		return "Unknown"
	}
	return tileNames[t]
}

// Valid reports whether t is one of the defined tiles.
func (t Tile) Valid() bool {
	return t < tileCount
}

// IsCrate reports whether the tile is a pushable crate, seated or not.
func (t Tile) IsCrate() bool {
	return t == TileCrate || t == TileHoleCrate
}

// BlocksPush reports whether a crate cannot be pushed onto this tile.
func (t Tile) BlocksPush() bool {
	switch t {
	case TileWall, TileLockedCrate, TileCrate, TileHoleCrate:
		return true
	default:
		return false
	}
}

// Tiles returns every tile kind in declaration order.
func Tiles() []Tile {
	out := make([]Tile, 0, tileCount)
	for t := Tile(0); t < tileCount; t++ {
		out = append(out, t)
	}
	return out
}
