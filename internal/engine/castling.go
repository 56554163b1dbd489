package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// castleSide describes one castling option: where the king and rook end up.
type castleSide struct {
	class     chess.MoveClass
	kingToCol chess.Col
	rookToCol chess.Col
}

var (
	kingside  = castleSide{class: chess.KingsideCastle, kingToCol: 'g', rookToCol: 'f'}
	queenside = castleSide{class: chess.QueensideCastle, kingToCol: 'c', rookToCol: 'd'}
)

// kingHomeCol is the file the king must stand on to castle.
const kingHomeCol = chess.Col('e')

// castlingMoves returns the king destinations of every castling move that is
// currently legal for the king on from: the right is still recorded, the rook
// is on its column, the squares between king and rook are empty, and the king
// is not attacked on its start, transit or landing square.
func castlingMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.At(from)
	if !chess.IsOccupant(piece) || chess.ExtractPiece(piece) != chess.King {
		return nil
	}
	colour := chess.ExtractColour(piece)
	rank := chess.HomeRank(colour)
	if from != chess.Sq(kingHomeCol, rank) {
		return nil
	}
	opponent := colour.Opposite()
	if SquareAttacked(board, from, opponent) {
		return nil
	}

	kingRook, queenRook := board.CastlingRooks(colour)
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	var moves []chess.Square
	for _, option := range []struct {
		side    castleSide
		rookCol chess.Col
	}{{kingside, kingRook}, {queenside, queenRook}} {
		if option.rookCol == 0 {
			continue
		}
		rookSq := chess.Sq(option.rookCol, rank)
		if board.At(rookSq) != rook || !isPathClear(board, from, rookSq) {
			continue
		}
		landing := chess.Sq(option.side.kingToCol, rank)
		safe := true
		for _, sq := range append(squaresBetween(from, landing), landing) {
			if SquareAttacked(board, sq, opponent) {
				safe = false
				break
			}
		}
		if safe {
			moves = append(moves, landing)
		}
	}
	return moves
}

// castleSideFor returns the castling option whose king lands on to.
func castleSideFor(to chess.Square) castleSide {
	if to.Col == kingside.kingToCol {
		return kingside
	}
	return queenside
}

// applyCastle applies a castling move: the king moves two files and the rook
// jumps over it.
func applyCastle(board *chess.Board, move chess.Move) {
	colour := chess.ExtractColour(move.Piece)
	rank := move.From.Rank
	side := castleSideFor(move.To)

	kingRook, queenRook := board.CastlingRooks(colour)
	rookFromCol := kingRook
	if side.class == chess.QueensideCastle {
		rookFromCol = queenRook
	}
	if rookFromCol == 0 {
		// Rights already gone; fall back to the standard corner.
		rookFromCol = 'h'
		if side.class == chess.QueensideCastle {
			rookFromCol = 'a'
		}
	}

	// Move king
	board.Set(move.From.Col, rank, chess.Empty)
	board.Put(move.To, move.Piece)

	// Move rook
	rook := board.Get(rookFromCol, rank)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(side.rookToCol, rank, rook)

	board.ClearCastling(colour)
}

// updateCastlingRightsForRook removes castling rights when a rook moves or is captured.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if colour == chess.White && sq.Rank == '1' {
		if sq.Col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if sq.Col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else if colour == chess.Black && sq.Rank == '8' {
		if sq.Col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if sq.Col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}
