package sokoban

import "errors"

// ErrNoLevel is returned when the game has no level loaded.
var ErrNoLevel = errors.New("no level loaded")

// Status is the coarse state of the game.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusCleared  Status = "level_cleared"
	StatusWon      Status = "won"
	StatusPaused   Status = "paused"
	StatusTooSmall Status = "paused_small_window"
	StatusNoLevels Status = "no_levels"
)

// Snapshot captures the game for tests and save file names.
type Snapshot struct {
	Tick       uint64
	Level      int // 1-indexed
	LevelID    string
	Moves      int
	TotalMoves int
	LevelTicks int
	TimeToBeat int
	Status     Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.noLevels:
		status = StatusNoLevels
	case g.won:
		status = StatusWon
	case g.tooSmall:
		status = StatusTooSmall
	case g.cleared:
		status = StatusCleared
	case g.paused:
		status = StatusPaused
	}

	snap := Snapshot{
		Tick:       g.tick,
		Level:      g.levelIndex + 1,
		LevelID:    g.level.ID,
		TotalMoves: g.TotalMoves(),
		LevelTicks: g.levelTicks,
		TimeToBeat: g.timeToBeat,
		Status:     status,
	}
	if g.state != nil {
		snap.Moves = g.state.MoveCount()
	}
	return snap
}
