package engine

import (
	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// NewMove classifies the relocation of the piece on from to to. A king moving
// two files is a castle, a pawn moving diagonally onto the en passant target is
// an en passant capture, and a pawn reaching its last rank promotes to a queen.
func NewMove(board *chess.Board, from, to chess.Square) chess.Move {
	piece := board.At(from)
	move := chess.Move{
		Class:    chess.PieceMove,
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: board.At(to),
		Promoted: chess.Empty,
	}
	if move.Captured == chess.Off {
		move.Captured = chess.Empty
	}
	if !chess.IsOccupant(piece) {
		return move
	}

	colour := chess.ExtractColour(piece)
	switch chess.ExtractPiece(piece) {
	case chess.King:
		if from.Rank == to.Rank && abs(int(to.Col)-int(from.Col)) == 2 {
			move.Class = castleSideFor(to).class
		}
	case chess.Pawn:
		move.Class = chess.PawnMove
		ep, hasEP := board.EPSquare()
		switch {
		case to.Rank == promotionRank(colour):
			move.Class = chess.PawnMoveWithPromotion
			move.Promoted = chess.Queen
		case hasEP && to == ep && from.Col != to.Col && move.Captured == chess.Empty:
			move.Class = chess.EnPassantPawnMove
			move.Captured = chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
		}
	}
	return move
}

// ApplyMove applies a move to the board and updates the board state.
// Returns false if there is no piece on the move's source square.
func ApplyMove(board *chess.Board, move chess.Move) bool {
	if !chess.IsOccupant(board.At(move.From)) || !move.To.Valid() {
		return false
	}

	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(board, move)
		board.EnPassant = false
		return true

	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		applyPawnMove(board, move)
		return true

	default:
		applyPieceMove(board, move)
		return true
	}
}

// Simulate plays the move from -> to on a scratch copy of board and returns
// the copy. The original board is left untouched.
func Simulate(board *chess.Board, from, to chess.Square) *chess.Board {
	scratch := board.Copy()
	ApplyMove(scratch, NewMove(board, from, to))
	return scratch
}

// applyPawnMove applies a pawn move.
func applyPawnMove(board *chess.Board, move chess.Move) {
	pawn := board.At(move.From)
	colour := chess.ExtractColour(pawn)

	// Handle en passant capture
	if move.Class == chess.EnPassantPawnMove {
		board.Set(move.To.Col, move.From.Rank, chess.Empty)
	}

	captured := board.At(move.To)
	board.Set(move.From.Col, move.From.Rank, chess.Empty)

	// Handle promotion
	if move.Class == chess.PawnMoveWithPromotion {
		promotedPiece := move.Promoted
		if promotedPiece == chess.Empty {
			promotedPiece = chess.Queen // Default to queen
		}
		board.Put(move.To, chess.MakeColouredPiece(colour, promotedPiece))
	} else {
		board.Put(move.To, pawn)
	}

	if chess.IsOccupant(captured) && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(captured), move.To)
	}

	// Set en passant square if double pawn push
	board.EnPassant = false
	if abs(int(move.To.Rank)-int(move.From.Rank)) == 2 {
		board.EnPassant = true
		board.EPCol = move.From.Col
		board.EPRank = chess.Rank(int(move.From.Rank) + chess.ColourOffset(colour))
	}
}

// applyPieceMove applies a piece (non-pawn) move.
func applyPieceMove(board *chess.Board, move chess.Move) {
	piece := board.At(move.From)
	colour := chess.ExtractColour(piece)
	captured := board.At(move.To)

	// Move the piece
	board.Set(move.From.Col, move.From.Rank, chess.Empty)
	board.Put(move.To, piece)

	switch chess.ExtractPiece(piece) {
	case chess.King:
		board.ClearCastling(colour)
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, move.From)
	}

	// Update castling rights if a rook was captured
	if chess.IsOccupant(captured) && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(captured), move.To)
	}

	board.EnPassant = false
}
