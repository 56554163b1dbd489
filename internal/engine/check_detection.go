package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// IsAttacked returns true if any piece of byColour has sq among its
// pseudo-legal destinations on board, as produced by gen.
func IsAttacked(board *chess.Board, gen Generator, sq chess.Square, byColour chess.Colour) bool {
	for _, attacker := range board.PiecesOf(byColour) {
		if chess.ContainsSquare(gen.PseudoLegalMoves(board, attacker.Square), sq) {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked by the
// opposite colour. A board without that king is never in check.
func IsInCheck(board *chess.Board, gen Generator, colour chess.Colour) bool {
	king, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsAttacked(board, gen, king, colour.Opposite())
}

// FindKing returns the square of the given colour's king. The tracked king
// square is trusted when it still holds that king; otherwise the board is
// searched.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	if sq := board.KingSquare(colour); sq.Valid() && board.At(sq) == king {
		return sq, true
	}
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) == king {
				return chess.Sq(col, rank), true
			}
		}
	}
	return chess.Square{}, false
}

// SquareAttacked returns true if the square is attacked by the given colour.
// Unlike IsAttacked it looks outward from the square, so pawn attacks on empty
// squares are seen too; castling uses it to test the king's path.
func SquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour) // pawns attack from behind the square
	for dc := -1; dc <= 1; dc += 2 {
		if from, ok := sq.Offset(dc, pawnDir); ok && board.At(from) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, offset := range knightOffsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && board.At(from) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, offset := range kingOffsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && board.At(from) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if slidingAttack(board, sq, diagonalDirs, chess.MakeColouredPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return slidingAttack(board, sq, straightDirs, chess.MakeColouredPiece(byColour, chess.Rook), queen)
}

// slidingAttack scans outward from sq along dirs and reports whether the first
// piece met is one of the two given sliders.
func slidingAttack(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := board.At(from)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
