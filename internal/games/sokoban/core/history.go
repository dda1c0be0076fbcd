package core

// Snapshot captures the complete mutable state of a board at one point in time.
// Cells is never shared with the live board or with other snapshots.
type Snapshot struct {
	Cells  []Tile
	Player Coord
	Facing Dir
	Moves  int
}

func (s Snapshot) clone() Snapshot {
	cells := make([]Tile, len(s.Cells))
	copy(cells, s.Cells)
	s.Cells = cells
	return s
}

// History is a linear undo/redo timeline of snapshots.
// entries[cursor] is the present; entries after the cursor are redo states.
type History struct {
	entries []Snapshot
	cursor  int
	limit   int // Max retained entries, 0 for unbounded
}

// NewHistory creates a history seeded with the initial snapshot.
// A positive limit caps the number of retained snapshots.
func NewHistory(initial Snapshot, limit int) *History {
	if limit < 0 {
		limit = 0
	}
	h := &History{limit: limit}
	h.Reset(initial)
	return h
}

// Reset discards every entry and re-seeds the history with one snapshot.
func (h *History) Reset(initial Snapshot) {
	h.entries = []Snapshot{initial.clone()}
	h.cursor = 0
}

// Push records a new present state. Pending redo entries are dropped.
// When the limit is exceeded the oldest entries fall off the front.
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries[:h.cursor+1], s.clone())
	h.cursor++

	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append(h.entries[:0], h.entries[drop:]...)
		h.cursor -= drop
	}
}

// Undo steps back one entry and returns the state to restore.
// Returns false at the oldest entry.
func (h *History) Undo() (Snapshot, bool) {
	if h.cursor == 0 {
		return Snapshot{}, false
	}
	h.cursor--
	return h.entries[h.cursor].clone(), true
}

// Redo steps forward one entry and returns the state to restore.
// Returns false when nothing has been undone since the last push.
func (h *History) Redo() (Snapshot, bool) {
	if h.cursor >= len(h.entries)-1 {
		return Snapshot{}, false
	}
	h.cursor++
	return h.entries[h.cursor].clone(), true
}

// Current returns a copy of the present entry.
func (h *History) Current() Snapshot {
	return h.entries[h.cursor].clone()
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Len returns the number of entries up to and including the present.
func (h *History) Len() int {
	return h.cursor + 1
}

// RedoLen returns the number of pending redo entries.
func (h *History) RedoLen() int {
	return len(h.entries) - 1 - h.cursor
}
