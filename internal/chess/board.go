package chess

// Board represents an 8x8 chess board together with the castling and en
// passant state needed to generate moves. It holds no slices or maps, so a
// plain value copy never shares storage with the original.
type Board struct {
	// squares[col][rank], both 0-7.
	squares [BoardSize][BoardSize]Piece

	// Rook starting columns for the 4 castling options (0 = right lost).
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is EnPassant capture possible? If so then EPRank and EPCol have
	// the square on which this can be made.
	EnPassant bool
	EPRank    Rank
	EPCol     Col
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	b.clear()
	return b
}

func (b *Board) clear() {
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.squares[col][rank] = Empty
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[col][0] = W(backRank[col])
		b.squares[col][1] = W(Pawn)
		b.squares[col][6] = B(Pawn)
		b.squares[col][7] = B(backRank[col])
	}

	b.WKingCol, b.WKingRank = 'e', '1'
	b.BKingCol, b.BKingRank = 'e', '8'

	b.WKingCastle = 'h'
	b.WQueenCastle = 'a'
	b.BKingCastle = 'h'
	b.BQueenCastle = 'a'

	b.EnPassant = false
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
// Coordinates off the board yield Off.
func (b *Board) Get(col Col, rank Rank) Piece {
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return Off
	}
	return b.squares[col-FirstCol][rank-FirstRank]
}

// Set places a piece at the given coordinates. Off-board coordinates are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return
	}
	b.squares[col-FirstCol][rank-FirstRank] = piece
}

// At returns the piece on sq.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places piece on sq, keeping the tracked king square current.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
	if IsOccupant(piece) && ExtractPiece(piece) == King {
		b.SetKingSquare(ExtractColour(piece), sq)
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// KingSquare returns the tracked square of the given colour's king.
// The zero Square is returned when no king has been recorded.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return Square{Col: b.WKingCol, Rank: b.WKingRank}
	}
	return Square{Col: b.BKingCol, Rank: b.BKingRank}
}

// SetKingSquare records the square of the given colour's king.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKingCol, b.WKingRank = sq.Col, sq.Rank
	} else {
		b.BKingCol, b.BKingRank = sq.Col, sq.Rank
	}
}

// EPSquare returns the en passant target square and whether one is set.
func (b *Board) EPSquare() (Square, bool) {
	return Square{Col: b.EPCol, Rank: b.EPRank}, b.EnPassant
}

// CastlingRooks returns the recorded kingside and queenside rook columns for colour.
func (b *Board) CastlingRooks(colour Colour) (kingside, queenside Col) {
	if colour == White {
		return b.WKingCastle, b.WQueenCastle
	}
	return b.BKingCastle, b.BQueenCastle
}

// ClearCastling removes both castling rights of colour.
func (b *Board) ClearCastling(colour Colour) {
	if colour == White {
		b.WKingCastle, b.WQueenCastle = 0, 0
	} else {
		b.BKingCastle, b.BQueenCastle = 0, 0
	}
}

// PlacedPiece is a coloured piece together with the square it stands on.
// It is a snapshot: the board owns the piece, holders only observe it.
type PlacedPiece struct {
	Piece  Piece
	Square Square
}

// Colour returns the side that owns the piece.
func (p PlacedPiece) Colour() Colour {
	return ExtractColour(p.Piece)
}

// Kind returns the uncoloured piece type.
func (p PlacedPiece) Kind() Piece {
	return ExtractPiece(p.Piece)
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (PlacedPiece, bool) {
	piece := b.At(sq)
	if !IsOccupant(piece) {
		return PlacedPiece{}, false
	}
	return PlacedPiece{Piece: piece, Square: sq}, true
}

// PiecesOf returns every piece of colour, scanning files a-h and ranks 1-8.
func (b *Board) PiecesOf(colour Colour) []PlacedPiece {
	var pieces []PlacedPiece
	for col := Col(FirstCol); col <= LastCol; col++ {
		for rank := Rank(FirstRank); rank <= LastRank; rank++ {
			piece := b.Get(col, rank)
			if IsOccupant(piece) && ExtractColour(piece) == colour {
				pieces = append(pieces, PlacedPiece{Piece: piece, Square: Square{Col: col, Rank: rank}})
			}
		}
	}
	return pieces
}
