package core

import (
	"strconv"
	"strings"
)

// Board is the rectangular tile grid.
// Cells are stored in row-major order: index = y*W + x.
type Board struct {
	W     int
	H     int
	Cells []Tile
}

// NewBoard creates a w×h board. All cells start as ground (the zero Tile).
func NewBoard(w, h int) *Board {
	return &Board{
		W:     w,
		H:     h,
		Cells: make([]Tile, w*h),
	}
}

func (b *Board) index(c Coord) int {
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Get returns the tile at c. Out-of-bounds coordinates read as walls.
func (b *Board) Get(c Coord) Tile {
	if !b.InBounds(c) {
		return TileWall
	}
	return b.Cells[b.index(c)]
}

// Set writes the tile at c. Out-of-bounds writes are ignored.
func (b *Board) Set(c Coord, t Tile) {
	if b.InBounds(c) {
		b.Cells[b.index(c)] = t
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{W: b.W, H: b.H, Cells: cells}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.W != other.W || b.H != other.H {
		return false
	}
	for i, t := range b.Cells {
		if t != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold the given tile.
func (b *Board) Count(t Tile) int {
	n := 0
	for _, c := range b.Cells {
		if c == t {
			n++
		}
	}
	return n
}

// Row returns row y in level-format characters.
func (b *Board) Row(y int) string {
	if y < 0 || y >= b.H {
		return ""
	}
	row := make([]byte, b.W)
	for x := 0; x < b.W; x++ {
		row[x] = b.Cells[y*b.W+x].Char()
	}
	return string(row)
}

// String serializes the board in the level text format:
// a "<height> <width>" header followed by one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.W + 1) * (b.H + 1))
	sb.WriteString(strconv.Itoa(b.H))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.W))
	sb.WriteByte('\n')
	for y := 0; y < b.H; y++ {
		sb.WriteString(b.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
