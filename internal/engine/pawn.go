package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// pawnMoves returns the pawn's forward pushes, diagonal captures and en
// passant capture.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := chess.ColourOffset(colour)

	// Forward move
	if to, ok := from.Offset(0, dir); ok && board.At(to) == chess.Empty {
		moves = append(moves, to)
		// Double push from starting rank
		if from.Rank == pawnStartRank(colour) {
			if to2, ok := from.Offset(0, 2*dir); ok && board.At(to2) == chess.Empty {
				moves = append(moves, to2)
			}
		}
	}

	// Captures
	ep, hasEP := board.EPSquare()
	for dc := -1; dc <= 1; dc += 2 {
		to, ok := from.Offset(dc, dir)
		if !ok {
			continue
		}
		target := board.At(to)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			moves = append(moves, to)
			continue
		}
		if hasEP && to == ep && target == chess.Empty && from.Rank == enPassantRank(colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// pawnStartRank returns the rank from which the colour's pawns may double-push.
func pawnStartRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return '2'
	}
	return '7'
}

// enPassantRank returns the rank a colour's pawn must stand on to capture
// en passant.
func enPassantRank(colour chess.Colour) chess.Rank {
	return chess.Rank(int(pawnStartRank(colour.Opposite())) - 2*chess.ColourOffset(colour))
}

// promotionRank returns the rank on which the colour's pawns promote.
func promotionRank(colour chess.Colour) chess.Rank {
	return chess.HomeRank(colour.Opposite())
}
