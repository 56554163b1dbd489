package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// squaresBetween returns the squares strictly between two squares on the same
// rank, file or diagonal. Unaligned squares yield nil.
func squaresBetween(from, to chess.Square) []chess.Square {
	colDiff := int(to.Col) - int(from.Col)
	rankDiff := int(to.Rank) - int(from.Rank)
	if colDiff != 0 && rankDiff != 0 && abs(colDiff) != abs(rankDiff) {
		return nil
	}

	colDir := sign(colDiff)
	rankDir := sign(rankDiff)

	var squares []chess.Square
	sq, _ := from.Offset(colDir, rankDir)
	for sq != to && sq.Valid() {
		squares = append(squares, sq)
		sq, _ = sq.Offset(colDir, rankDir)
	}
	return squares
}

// isPathClear checks that every square strictly between from and to is empty.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	for _, sq := range squaresBetween(from, to) {
		if board.At(sq) != chess.Empty {
			return false
		}
	}
	return true
}
