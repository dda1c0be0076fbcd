package core

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidMove is returned by ApplyMoves for a letter that is not U, D, L or R.
var ErrInvalidMove = errors.New("invalid move")

// Outcome is the result of a move request.
type Outcome uint8

const (
	Blocked Outcome = iota
	Moved
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if o == Moved {
		return "Moved"
	}
	return "Blocked"
}

// Option configures a State.
type Option func(*State)

// WithHistoryLimit caps the number of snapshots kept for undo.
// 0 keeps every snapshot.
func WithHistoryLimit(n int) Option {
	return func(s *State) {
		s.historyLimit = n
	}
}

// State is the live game for one level instance.
// It is not safe for concurrent use; callers serialize all operations.
type State struct {
	board   *Board
	player  Coord
	facing  Dir
	moves   int
	storage map[Coord]struct{}
	slots   []Coord // Storage in row-major order, for deterministic iteration
	crates  int

	initial      Snapshot
	history      *History
	historyLimit int
}

// NewState creates a game from a parsed level. The level is copied, so it can
// be reused to start other instances.
func NewState(lvl *Level, opts ...Option) *State {
	s := &State{
		board:   lvl.Board.Clone(),
		player:  lvl.Player,
		facing:  lvl.Facing,
		storage: make(map[Coord]struct{}, len(lvl.Storage)),
		slots:   make([]Coord, 0, len(lvl.Storage)),
		crates:  lvl.Crates,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, c := range lvl.Storage {
		if _, dup := s.storage[c]; dup {
			continue
		}
		s.storage[c] = struct{}{}
		s.slots = append(s.slots, c)
	}

	s.initial = s.snapshot()
	s.history = NewHistory(s.initial, s.historyLimit)
	return s
}

// Load parses level text and starts a game on it.
func Load(text string, opts ...Option) (*State, error) {
	lvl, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return NewState(lvl, opts...), nil
}

// snapshot captures the live state.
func (s *State) snapshot() Snapshot {
	cells := make([]Tile, len(s.board.Cells))
	copy(cells, s.board.Cells)
	return Snapshot{
		Cells:  cells,
		Player: s.player,
		Facing: s.facing,
		Moves:  s.moves,
	}
}

// restore makes snap the live state.
func (s *State) restore(snap Snapshot) {
	copy(s.board.Cells, snap.Cells)
	s.player = snap.Player
	s.facing = snap.Facing
	s.moves = snap.Moves
}

// IsStorage reports whether c is a storage location.
func (s *State) IsStorage(c Coord) bool {
	_, ok := s.storage[c]
	return ok
}

// vacated returns what a cell shows once the player or a crate leaves it.
func (s *State) vacated(c Coord) Tile {
	if s.IsStorage(c) {
		return TileGroundOutline
	}
	return TileGround
}

// Move tries to move the player one cell, pushing at most one crate.
// A blocked move leaves every piece of state untouched.
func (s *State) Move(d Dir) Outcome {
	target := s.player.Step(d)
	if !s.board.InBounds(target) {
		return Blocked
	}

	switch t := s.board.Get(target); {
	case t == TileWall:
		return Blocked
	case t.IsCrate():
		beyond := target.Step(d)
		if !s.board.InBounds(beyond) || s.board.Get(beyond).BlocksPush() {
			return Blocked
		}
		if s.IsStorage(beyond) {
			s.board.Set(beyond, TileHoleCrate)
		} else {
			s.board.Set(beyond, TileCrate)
		}
	}

	s.board.Set(target, TilePlayer)
	s.board.Set(s.player, s.vacated(s.player))
	s.player = target
	s.facing = d
	s.moves++
	s.history.Push(s.snapshot())
	return Moved
}

// ApplyMoves replays a move string such as "RRDlu". Whitespace is ignored.
// It stops at the first character that is not a direction letter and
// returns how many moves were accepted (blocked moves are not counted).
func (s *State) ApplyMoves(moves string) (int, error) {
	applied := 0
	for i, r := range moves {
		if unicode.IsSpace(r) {
			continue
		}
		d, ok := ParseDir(r)
		if !ok {
			return applied, fmt.Errorf("%w %q at offset %d", ErrInvalidMove, r, i)
		}
		if s.Move(d) == Moved {
			applied++
		}
	}
	return applied, nil
}

// IsWon reports whether the level is solved.
// With at least as many crates as storage slots, every slot must hold a crate;
// otherwise every crate must be seated.
func (s *State) IsWon() bool {
	if len(s.slots) == 0 || s.crates == 0 {
		return true
	}
	matched := s.SeatedCount()
	if s.crates >= len(s.slots) {
		return matched == len(s.slots)
	}
	return matched == s.crates
}

// SeatedCount returns how many storage locations currently hold a crate.
func (s *State) SeatedCount() int {
	n := 0
	for _, c := range s.slots {
		if s.board.Get(c) == TileHoleCrate {
			n++
		}
	}
	return n
}

// Reset restores the level as parsed and clears all history.
func (s *State) Reset() {
	s.restore(s.initial)
	s.history.Reset(s.initial)
}

// Undo steps back one accepted move. Returns false at the start of history.
func (s *State) Undo() bool {
	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// Redo re-applies the most recently undone move. Returns false when there is
// nothing to redo; any accepted move since the last undo clears redo.
func (s *State) Redo() bool {
	snap, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// CanUndo reports whether Undo would change the state.
func (s *State) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change the state.
func (s *State) CanRedo() bool {
	return s.history.CanRedo()
}

// PlayerPosition returns the player's cell.
func (s *State) PlayerPosition() Coord {
	return s.player
}

// Facing returns the direction of the player's last move (Down after load).
func (s *State) Facing() Dir {
	return s.facing
}

// MoveCount returns the number of accepted moves in the current timeline.
func (s *State) MoveCount() int {
	return s.moves
}

// Dimensions returns the board height and width.
func (s *State) Dimensions() (height, width int) {
	return s.board.H, s.board.W
}

// CellAt returns the tile at (x, y). Out-of-range cells read as walls.
func (s *State) CellAt(x, y int) Tile {
	return s.board.Get(C(x, y))
}

// Board returns a copy of the live board.
func (s *State) Board() *Board {
	return s.board.Clone()
}

// Storage returns the storage locations in row-major order.
func (s *State) Storage() []Coord {
	out := make([]Coord, len(s.slots))
	copy(out, s.slots)
	return out
}

// StorageCount returns the number of storage locations.
func (s *State) StorageCount() int {
	return len(s.slots)
}

// CrateCount returns the number of crates in the level.
func (s *State) CrateCount() int {
	return s.crates
}

// Snapshot returns a copy of the live state.
func (s *State) Snapshot() Snapshot {
	return s.snapshot()
}

// String serializes the live board in the level text format.
func (s *State) String() string {
	return s.board.String()
}

// MarshalText implements encoding.TextMarshaler.
func (s *State) MarshalText() ([]byte, error) {
	return s.board.MarshalText()
}
