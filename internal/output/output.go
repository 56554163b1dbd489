// Package output renders the referee's game to text and JSON. Both writers
// implement game.Presenter and track the board by applying the moves they are
// told about.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/game"
)

// unicodeGlyphs maps FEN letters to chess glyphs.
var unicodeGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// RenderBoard writes board as an 8x8 grid, rank 8 first. Each cell is three
// characters wide: a highlighted empty square shows the highlight mark, a
// highlighted capture is shown in parentheses and a marked king in brackets.
func RenderBoard(w io.Writer, board *chess.Board, highlights []chess.Square, marks map[chess.Square]game.Mark, display config.DisplayConfig) {
	highlightMark := display.HighlightMark
	if highlightMark == 0 {
		highlightMark = '*'
	}

	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		var sb strings.Builder
		if display.Coordinates {
			fmt.Fprintf(&sb, "%c ", rank)
		}
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			sq := chess.Sq(col, rank)
			sb.WriteString(renderCell(board.At(sq), chess.ContainsSquare(highlights, sq),
				marks[sq], highlightMark, display.Unicode))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	if display.Coordinates {
		var sb strings.Builder
		sb.WriteString("  ")
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			fmt.Fprintf(&sb, " %c ", col)
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

func renderCell(piece chess.Piece, highlighted bool, mark game.Mark, highlightMark byte, unicode bool) string {
	symbol := "."
	if chess.IsOccupant(piece) {
		letter := engine.ColouredPieceToFENLetter(piece)
		symbol = string(letter)
		if unicode {
			symbol = unicodeGlyphs[letter]
		}
	}

	switch {
	case mark != game.MarkNone:
		return "[" + symbol + "]"
	case highlighted && chess.IsOccupant(piece):
		return "(" + symbol + ")"
	case highlighted:
		return " " + string(highlightMark) + " "
	}
	return " " + symbol + " "
}

// moveText describes a move for the text log, e.g. "White e1g1 (castles)".
func moveText(move chess.Move) string {
	text := fmt.Sprintf("%v %v", chess.ExtractColour(move.Piece), move)
	switch {
	case move.IsCastle():
		text += " (castles)"
	case move.Class == chess.EnPassantPawnMove:
		text += " (en passant)"
	case move.IsPromotion():
		text += " (promotes)"
	}
	return text
}
