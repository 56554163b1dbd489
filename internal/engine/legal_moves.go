package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// LegalMoves returns the legal destinations of the piece on from: its
// pseudo-legal destinations, followed by castling destinations when it is a
// king that is not in check, minus every destination that would leave its own
// king attacked. Each candidate is tried on a scratch copy of the board.
func LegalMoves(board *chess.Board, gen Generator, from chess.Square) []chess.Square {
	piece, ok := board.PieceAt(from)
	if !ok {
		return nil
	}
	colour := piece.Colour()

	candidates := gen.PseudoLegalMoves(board, from)
	if piece.Kind() == chess.King {
		inCheck := IsInCheck(board, gen, colour)
		if !inCheck {
			candidates = append(candidates, gen.CastlingMoves(board, from, CastlingOptions{InCheck: inCheck})...)
		}
	}

	var legal []chess.Square
	for _, to := range candidates {
		if leavesKingSafe(board, gen, from, to, colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move of the given colour.
func AllLegalMoves(board *chess.Board, gen Generator, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, piece := range board.PiecesOf(colour) {
		for _, to := range LegalMoves(board, gen, piece.Square) {
			moves = append(moves, NewMove(board, piece.Square, to))
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, gen Generator, colour chess.Colour) bool {
	for _, piece := range board.PiecesOf(colour) {
		if len(LegalMoves(board, gen, piece.Square)) > 0 {
			return true
		}
	}
	return false
}

// leavesKingSafe makes a move on a copied board and checks that it does not
// leave the mover's king in check.
func leavesKingSafe(board *chess.Board, gen Generator, from, to chess.Square, colour chess.Colour) bool {
	testBoard := Simulate(board, from, to)
	return !IsInCheck(testBoard, gen, colour)
}
