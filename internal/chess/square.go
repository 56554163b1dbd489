package chess

import (
	"fmt"

	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// Square addresses one cell of the board. Its string form ("e4") is the
// destination identifier exchanged with the presentation layer.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a square from file and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses a square identifier such as "e4".
func ParseSquare(id string) (Square, error) {
	if len(id) != 2 {
		return Square{}, fmt.Errorf("%q: %w", id, errors.ErrInvalidSquare)
	}
	sq := Square{Col: Col(id[0]), Rank: Rank(id[1])}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%q: %w", id, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on a malformed identifier.
func MustParseSquare(id string) Square {
	sq, err := ParseSquare(id)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid returns true if the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol && s.Rank >= FirstRank && s.Rank <= LastRank
}

// Offset returns the square dc files and dr ranks away, and whether it is on the board.
func (s Square) Offset(dc, dr int) (Square, bool) {
	to := Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
	return to, to.Valid()
}

// String returns the square identifier, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.Col-FirstCol)+int(s.Rank-FirstRank))%2 == 1
}

// ContainsSquare reports whether sq is in squares.
func ContainsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
