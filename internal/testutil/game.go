package testutil

import (
	"testing"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/game"
)

// MustSetup parses a FEN string, calling t.Fatal if it is malformed.
func MustSetup(t testing.TB, fen string) *engine.Setup {
	t.Helper()
	setup, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return setup
}

// MustGame creates a game from a FEN string, calling t.Fatal if the FEN is
// malformed or the position is rejected.
func MustGame(t testing.TB, fen string, opts ...game.Option) *game.Game {
	t.Helper()
	g, err := game.New(MustSetup(t, fen), opts...)
	if err != nil {
		t.Fatalf("game.New(%q): %v", fen, err)
	}
	return g
}

// Squares parses square identifiers, panicking on a malformed one.
func Squares(ids ...string) []chess.Square {
	squares := make([]chess.Square, 0, len(ids))
	for _, id := range ids {
		squares = append(squares, chess.MustParseSquare(id))
	}
	return squares
}

// PresenterCall is one call recorded by a RecordingPresenter.
type PresenterCall struct {
	Method      string
	Squares     []chess.Square
	Square      chess.Square
	Mark        game.Mark
	Move        chess.Move
	Termination game.Termination
}

// RecordingPresenter records every presenter call in order.
type RecordingPresenter struct {
	Calls []PresenterCall
}

var _ game.Presenter = (*RecordingPresenter)(nil)

func (r *RecordingPresenter) Highlight(squares []chess.Square) {
	r.Calls = append(r.Calls, PresenterCall{Method: "Highlight", Squares: squares})
}

func (r *RecordingPresenter) ClearHighlights() {
	r.Calls = append(r.Calls, PresenterCall{Method: "ClearHighlights"})
}

func (r *RecordingPresenter) Mark(sq chess.Square, mark game.Mark) {
	r.Calls = append(r.Calls, PresenterCall{Method: "Mark", Square: sq, Mark: mark})
}

func (r *RecordingPresenter) Moved(move chess.Move) {
	r.Calls = append(r.Calls, PresenterCall{Method: "Moved", Move: move})
}

func (r *RecordingPresenter) Terminated(t game.Termination) {
	r.Calls = append(r.Calls, PresenterCall{Method: "Terminated", Termination: t})
}

// Methods returns the names of the recorded calls.
func (r *RecordingPresenter) Methods() []string {
	methods := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		methods = append(methods, c.Method)
	}
	return methods
}

// Terminations returns every recorded termination.
func (r *RecordingPresenter) Terminations() []game.Termination {
	var out []game.Termination
	for _, c := range r.Calls {
		if c.Method == "Terminated" {
			out = append(out, c.Termination)
		}
	}
	return out
}

// LastMark returns the most recent mark recorded for sq.
func (r *RecordingPresenter) LastMark(sq chess.Square) (game.Mark, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if c := r.Calls[i]; c.Method == "Mark" && c.Square == sq {
			return c.Mark, true
		}
	}
	return game.MarkNone, false
}

// Reset forgets the recorded calls.
func (r *RecordingPresenter) Reset() {
	r.Calls = nil
}
