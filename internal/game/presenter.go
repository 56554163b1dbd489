package game

import (
	"fmt"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
)

// Mark is a state shown on a single square, such as a king in check.
type Mark int

const (
	MarkNone Mark = iota
	MarkCheck
	MarkStalemate
)

// String returns the lower-case name of the mark.
func (m Mark) String() string {
	switch m {
	case MarkCheck:
		return "check"
	case MarkStalemate:
		return "stalemate"
	default:
		return "none"
	}
}

// Termination describes how a game ended.
type Termination struct {
	Reason engine.Status // Checkmate or Stalemate
	Winner chess.Colour  // Meaningful only when Draw is false
	Draw   bool
	King   chess.Square // The king of the side that could not move
}

// String returns the result line, e.g. "checkmate, Black wins".
func (t Termination) String() string {
	if t.Draw {
		return fmt.Sprintf("%v, draw", t.Reason)
	}
	return fmt.Sprintf("%v, %v wins", t.Reason, t.Winner)
}

// Presenter receives everything the controller wants shown. Calls are made
// synchronously from the goroutine that drives the Game.
type Presenter interface {
	// Highlight shows the legal destinations of the selected piece,
	// replacing any earlier highlights.
	Highlight(squares []chess.Square)

	// ClearHighlights removes all destination highlights.
	ClearHighlights()

	// Mark sets the mark of one square; MarkNone clears it.
	Mark(sq chess.Square, mark Mark)

	// Moved reports a committed move.
	Moved(move chess.Move)

	// Terminated reports the end of the game. No further calls follow.
	Terminated(t Termination)
}

// NopPresenter ignores everything.
type NopPresenter struct{}

var _ Presenter = NopPresenter{}

func (NopPresenter) Highlight([]chess.Square) {}
func (NopPresenter) ClearHighlights()         {}
func (NopPresenter) Mark(chess.Square, Mark)  {}
func (NopPresenter) Moved(chess.Move)         {}
func (NopPresenter) Terminated(Termination)   {}
