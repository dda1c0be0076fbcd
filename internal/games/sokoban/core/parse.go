package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors. Wrapped by *ParseError when a source position is known.
var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrMissingPlayer     = errors.New("no player found")
	ErrMultiplePlayers   = errors.New("more than one player")
	ErrUnknownTile       = errors.New("unknown tile")
)

// ParseError reports where in the level text parsing failed.
// Line and Column are 1-based; Line 1 is the header.
type ParseError struct {
	Line   int
	Column int
	Char   byte
	Err    error
}

func (e *ParseError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("line %d, column %d: %v %q", e.Line, e.Column, e.Err, e.Char)
	}
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Level is the parsed form of a level: the initial board plus the indices
// derived from it.
type Level struct {
	Board   *Board
	Player  Coord
	Facing  Dir
	Storage []Coord // Storage locations in row-major order
	Crates  int     // Crate and HoleCrate cells at parse time
}

// Parse reads a level in the text format:
//
//	<height> <width>
//	<row 0>
//	...
//	<row height-1>
//
// Short rows and missing rows leave ground. Characters past the width and
// rows past the height are ignored.
func Parse(text string) (*Level, error) {
	lines := strings.Split(text, "\n")

	h, w, err := parseHeader(lines[0])
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	lvl := &Level{
		Board:  NewBoard(w, h),
		Facing: DirDown,
	}
	players := 0

	rows := lines[1:]
	if len(rows) > h {
		rows = rows[:h]
	}
	for y, line := range rows {
		line = strings.TrimSuffix(line, "\r")
		if len(line) > w {
			line = line[:w]
		}
		for x := 0; x < len(line); x++ {
			t, ok := ParseTile(line[x])
			if !ok {
				return nil, &ParseError{Line: y + 2, Column: x + 1, Char: line[x], Err: ErrUnknownTile}
			}
			pos := C(x, y)
			switch t {
			case TilePlayer:
				players++
				if players > 1 {
					return nil, &ParseError{Line: y + 2, Column: x + 1, Err: ErrMultiplePlayers}
				}
				lvl.Player = pos
			case TileGroundOutline:
				lvl.Storage = append(lvl.Storage, pos)
			case TileHoleCrate:
				lvl.Storage = append(lvl.Storage, pos)
				lvl.Crates++
			case TileCrate:
				lvl.Crates++
			}
			lvl.Board.Set(pos, t)
		}
	}

	if players == 0 {
		return nil, ErrMissingPlayer
	}
	return lvl, nil
}

// ParseBytes is Parse for raw file contents.
func ParseBytes(data []byte) (*Level, error) {
	return Parse(string(data))
}

func parseHeader(line string) (h, w int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: header %q needs height and width", ErrInvalidDimensions, line)
	}
	h, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q", ErrInvalidDimensions, fields[0])
	}
	w, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q", ErrInvalidDimensions, fields[1])
	}
	if h <= 0 || w <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h, w)
	}
	return h, w, nil
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	storage := make([]Coord, len(l.Storage))
	copy(storage, l.Storage)
	return &Level{
		Board:   l.Board.Clone(),
		Player:  l.Player,
		Facing:  l.Facing,
		Storage: storage,
		Crates:  l.Crates,
	}
}
