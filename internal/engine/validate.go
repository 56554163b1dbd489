package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// ValidatePosition checks the structural invariants the rules rely on and
// reports every violation at once. Each reported problem wraps
// errors.ErrInvalidPosition.
func ValidatePosition(board *chess.Board, toMove chess.Colour) error {
	var result *multierror.Error

	kings := map[chess.Colour]int{}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, piece := range board.PiecesOf(colour) {
			switch piece.Kind() {
			case chess.King:
				kings[colour]++
			case chess.Pawn:
				if piece.Square.Rank == chess.FirstRank || piece.Square.Rank == chess.LastRank {
					result = multierror.Append(result,
						fmt.Errorf("%v pawn on %v: %w", colour, piece.Square, errors.ErrInvalidPosition))
				}
			}
		}
		if kings[colour] != 1 {
			result = multierror.Append(result,
				fmt.Errorf("%v has %d kings: %w", colour, kings[colour], errors.ErrInvalidPosition))
		}
		result = multierror.Append(result, validateCastling(board, colour)...)
	}

	// The attack test needs both kings on the board.
	if kings[chess.White] == 1 && kings[chess.Black] == 1 {
		if IsInCheck(board, Standard{}, toMove.Opposite()) {
			result = multierror.Append(result,
				fmt.Errorf("%v is in check but not to move: %w", toMove.Opposite(), errors.ErrInvalidPosition))
		}
	}

	if err := validateEnPassant(board, toMove); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// validateCastling checks that every recorded castling right still has its
// king and rook on their home squares.
func validateCastling(board *chess.Board, colour chess.Colour) []error {
	var errs []error
	rank := chess.HomeRank(colour)
	kingRook, queenRook := board.CastlingRooks(colour)
	if kingRook == 0 && queenRook == 0 {
		return nil
	}

	if board.Get(kingHomeCol, rank) != chess.MakeColouredPiece(colour, chess.King) {
		errs = append(errs, fmt.Errorf("%v may castle but its king is not on %v: %w",
			colour, chess.Sq(kingHomeCol, rank), errors.ErrInvalidPosition))
	}
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	for _, col := range []chess.Col{kingRook, queenRook} {
		if col != 0 && board.Get(col, rank) != rook {
			errs = append(errs, fmt.Errorf("%v may castle with a rook missing from %v: %w",
				colour, chess.Sq(col, rank), errors.ErrInvalidPosition))
		}
	}
	return errs
}

// validateEnPassant checks that an en passant target sits behind a pawn of
// the side that just moved.
func validateEnPassant(board *chess.Board, toMove chess.Colour) error {
	ep, ok := board.EPSquare()
	if !ok {
		return nil
	}
	mover := toMove.Opposite()
	wantRank := chess.Rank(int(pawnStartRank(mover)) + chess.ColourOffset(mover))
	pawnSq, onBoard := ep.Offset(0, chess.ColourOffset(mover))
	if ep.Rank != wantRank || !onBoard || board.At(ep) != chess.Empty ||
		board.At(pawnSq) != chess.MakeColouredPiece(mover, chess.Pawn) {
		return fmt.Errorf("en passant square %v is inconsistent: %w", ep, errors.ErrInvalidPosition)
	}
	return nil
}
