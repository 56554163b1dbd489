package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Setup is a position to start a game from: the board, the side to move and
// the full-move number.
type Setup struct {
	Board      *chess.Board
	ToMove     chess.Colour
	MoveNumber uint
}

// NewInitialSetup returns the standard starting position.
func NewInitialSetup() *Setup {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return &Setup{Board: board, ToMove: chess.White, MoveNumber: 1}
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParseFEN creates a setup from a FEN string. The halfmove clock field is
// accepted but ignored.
func ParseFEN(fen string) (*Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	setup := &Setup{Board: chess.NewBoard(), ToMove: chess.White, MoveNumber: 1}

	if err := parsePiecePositions(setup.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(setup, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(setup.Board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(setup.Board, parts); err != nil {
		return nil, err
	}
	if err := parseMoveNumber(setup, parts); err != nil {
		return nil, err
	}

	return setup, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.Rank('8')
	col := chess.Col('a')
	ranks := 1

	for _, c := range positions {
		switch {
		case c == '/':
			if col != 'h'+1 {
				return fmt.Errorf("rank %c has %d files: %w", rank, col-'a', errors.ErrInvalidFEN)
			}
			rank--
			ranks++
			col = 'a'
		case c >= '1' && c <= '8':
			col += chess.Col(c - '0')
			if col > 'h'+1 {
				return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
			}
		default:
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col > 'h' || rank < '1' {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Put(chess.Sq(col, rank), chess.MakeColouredPiece(colour, piece))
			col++
		}
	}
	if ranks != chess.BoardSize || col != 'h'+1 {
		return fmt.Errorf("piece placement must describe 8 full ranks: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(setup *Setup, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		setup.ToMove = chess.White
	case "b":
		setup.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.ClearCastling(chess.White)
	board.ClearCastling(chess.Black)

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.WKingCastle = 'h'
		case 'Q':
			board.WQueenCastle = 'a'
		case 'k':
			board.BKingCastle = 'h'
		case 'q':
			board.BQueenCastle = 'a'
		default:
			return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPCol = sq.Col
	board.EPRank = sq.Rank
	return nil
}

// parseMoveNumber parses the fullmove number field.
func parseMoveNumber(setup *Setup, parts []string) error {
	if len(parts) < 6 {
		return nil
	}
	n, err := strconv.ParseUint(parts[5], 10, 32)
	if err != nil || n == 0 {
		return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}
	setup.MoveNumber = uint(n)
	return nil
}

// FormatFEN converts a board to a FEN string. The halfmove clock is not
// tracked and is always written as 0.
func FormatFEN(board *chess.Board, toMove chess.Colour, moveNumber uint) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	fmt.Fprintf(&sb, " 0 %d", moveNumber)

	return sb.String()
}

// String returns the setup as a FEN string.
func (s *Setup) String() string {
	return FormatFEN(s.Board, s.ToMove, s.MoveNumber)
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.WKingCastle != 0 {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.WQueenCastle != 0 {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.BKingCastle != 0 {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.BQueenCastle != 0 {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if ep, ok := board.EPSquare(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
}
