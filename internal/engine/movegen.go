// Package engine provides chess move generation, legality checking and board
// manipulation. Its functions are stateless: they read a board and return
// results, mutating only boards they are explicitly handed.
package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// CastlingOptions carries context the caller already knows when asking a king
// for castling destinations.
type CastlingOptions struct {
	// InCheck reports that the king is attacked right now; no castling
	// destination is produced.
	InCheck bool
}

// Generator produces destinations for the piece standing on a square.
// Implementations must not modify the board.
type Generator interface {
	// PseudoLegalMoves returns the destinations reachable by the piece on
	// from, ignoring whether the move exposes its own king.
	PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Square

	// CastlingMoves returns the king destinations of legal castling moves
	// for the king on from.
	CastlingMoves(board *chess.Board, from chess.Square, opts CastlingOptions) []chess.Square
}

// Standard generates moves for orthodox chess.
type Standard struct{}

var _ Generator = Standard{}

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// PseudoLegalMoves returns the pseudo-legal destinations of the piece on from.
// An empty square yields no destinations.
func (Standard) PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.At(from)
	if !chess.IsOccupant(piece) {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(board, from, colour)
	case chess.Knight:
		return stepMoves(board, from, colour, knightOffsets)
	case chess.King:
		return stepMoves(board, from, colour, kingOffsets)
	case chess.Bishop:
		return slideMoves(board, from, colour, diagonalDirs)
	case chess.Rook:
		return slideMoves(board, from, colour, straightDirs)
	case chess.Queen:
		return slideMoves(board, from, colour, allSlidingDirs)
	}
	return nil
}

// CastlingMoves returns the castling destinations of the king on from.
func (Standard) CastlingMoves(board *chess.Board, from chess.Square, opts CastlingOptions) []chess.Square {
	if opts.InCheck {
		return nil
	}
	return castlingMoves(board, from)
}
