package engine

import (
	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// Status describes the position from the point of view of the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsTerminal returns true for checkmate and stalemate.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, gen Generator, colour chess.Colour) bool {
	return IsInCheck(board, gen, colour) && !HasLegalMoves(board, gen, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, gen Generator, colour chess.Colour) bool {
	return !IsInCheck(board, gen, colour) && !HasLegalMoves(board, gen, colour)
}

// Evaluate returns the status of the position for colour, the side to move.
func Evaluate(board *chess.Board, gen Generator, colour chess.Colour) Status {
	inCheck := IsInCheck(board, gen, colour)
	hasMove := HasLegalMoves(board, gen, colour)

	switch {
	case inCheck && !hasMove:
		return Checkmate
	case !hasMove:
		return Stalemate
	case inCheck:
		return Check
	}
	return Ongoing
}
