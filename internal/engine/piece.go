package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// stepMoves returns the single-step destinations (knight, king) that are
// empty or hold an enemy piece.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		target := board.At(to)
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// slideMoves returns the destinations of a sliding piece (bishop, rook, queen)
// along dirs, stopping at the first occupied square and including it when it
// holds an enemy piece.
func slideMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.At(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
