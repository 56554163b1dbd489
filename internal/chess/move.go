package chess

// Move is a relocation of one piece, classified so that the board can apply
// its side effects (captures, castling rook, en passant, promotion).
type Move struct {
	Class MoveClass

	From Square
	To   Square

	// The piece being moved (coloured).
	Piece Piece

	// The piece captured (Empty if no capture).
	Captured Piece

	// The piece type promoted to (Empty if not a promotion).
	Promoted Piece
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != Empty || m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() && m.Promoted != Empty {
		s += string(m.Promoted.Letter() + ('a' - 'A'))
	}
	return s
}
