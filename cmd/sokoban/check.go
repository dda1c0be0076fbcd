package main

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/spf13/cobra"

	sokocore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// errCheckFailed is returned when a check ran but its result was negative.
var errCheckFailed = errors.New("check failed")

var (
	flagMoves     string
	flagTrace     bool
	flagRoundTrip bool
	flagExpectWin bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level file and replay moves on it",
	Long: `Parses a level file and prints its board and statistics.

With --moves the move string (letters U, D, L, R) is replayed and the
resulting board is printed; --trace prints the board after every move.
With --round-trip the board is serialized and parsed back, and the
command fails if the result differs.

Examples:
  sokoban check corner.lvl
  sokoban check corner.lvl --moves LLURRLUURULL --expect-win
  sokoban check corner.lvl --moves "ddr" --trace`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to replay (U, D, L, R)")
	checkCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the board after every move")
	checkCmd.Flags().BoolVar(&flagRoundTrip, "round-trip", false, "Verify that serialize then parse reproduces the board")
	checkCmd.Flags().BoolVar(&flagExpectWin, "expect-win", false, "Fail unless the level is won after the moves")
}

func runCheck(cmd *cobra.Command, args []string) error {
	lvl, err := levels.ReadFile(args[0])
	if err != nil {
		return err
	}
	logger.Debug("level parsed", "file", args[0], "id", lvl.ID)

	out := cmd.OutOrStdout()
	st := lvl.NewState(sokocore.WithHistoryLimit(0))
	h, w := st.Dimensions()
	fmt.Fprintf(out, "Level %s: %dx%d, %d crates, %d storage\n", lvl.ID, w, h, st.CrateCount(), st.StorageCount())
	fmt.Fprint(out, st.String())

	if flagMoves != "" {
		if err := replay(out, st, flagMoves, flagTrace); err != nil {
			return err
		}
		if !flagTrace {
			fmt.Fprintln(out)
			fmt.Fprint(out, st.String())
		}
	}
	fmt.Fprintf(out, "Seated: %d/%d  Won: %t\n", st.SeatedCount(), st.StorageCount(), st.IsWon())

	if flagRoundTrip {
		if err := roundTrip(st); err != nil {
			return err
		}
		fmt.Fprintln(out, "Round trip: ok")
	}
	if flagExpectWin && !st.IsWon() {
		return fmt.Errorf("%w: level is not won", errCheckFailed)
	}
	return nil
}

// replay applies moves to st. With trace every accepted letter is followed by
// the board it produced.
func replay(out io.Writer, st *sokocore.State, moves string, trace bool) error {
	if !trace {
		applied, err := st.ApplyMoves(moves)
		fmt.Fprintf(out, "\nApplied %d moves\n", applied)
		return err
	}

	for i, r := range moves {
		if unicode.IsSpace(r) {
			continue
		}
		d, ok := sokocore.ParseDir(r)
		if !ok {
			return fmt.Errorf("%w %q at offset %d", sokocore.ErrInvalidMove, r, i)
		}
		outcome := st.Move(d)
		fmt.Fprintf(out, "\n%s: %s\n", d, outcome)
		fmt.Fprint(out, st.String())
	}
	return nil
}

func roundTrip(st *sokocore.State) error {
	text, err := st.MarshalText()
	if err != nil {
		return err
	}
	parsed, err := sokocore.ParseBytes(text)
	if err != nil {
		return fmt.Errorf("%w: reparse: %w", errCheckFailed, err)
	}
	if !parsed.Board.Equal(st.Board()) || parsed.Player != st.PlayerPosition() {
		return fmt.Errorf("%w: round trip changed the board", errCheckFailed)
	}
	return nil
}
