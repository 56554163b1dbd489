package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/game"
)

// JSONEvent is one presenter call in JSON form.
type JSONEvent struct {
	Event   string      `json:"event"` // highlight, clear, mark, move or end
	Squares []string    `json:"squares,omitempty"`
	Square  string      `json:"square,omitempty"`
	Mark    string      `json:"mark,omitempty"`
	Move    *JSONMove   `json:"move,omitempty"`
	Result  *JSONResult `json:"result,omitempty"`
	FEN     string      `json:"fen,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    string `json:"castle,omitempty"` // "kingside" or "queenside"
}

// JSONResult represents the end of a game.
type JSONResult struct {
	Reason string `json:"reason"`
	Winner string `json:"winner,omitempty"`
	Draw   bool   `json:"draw"`
	King   string `json:"king"`
}

// JSONWriter presents a game as a stream of JSON events, one per line.
type JSONWriter struct {
	enc    *json.Encoder
	board  *chess.Board
	toMove chess.Colour
	number uint
	err    error
}

var _ PresenterWriter = (*JSONWriter)(nil)

// NewJSONWriter creates a JSON presenter starting from setup. Move events
// carry the FEN of the position they produce.
func NewJSONWriter(w io.Writer, setup *engine.Setup) *JSONWriter {
	return &JSONWriter{
		enc:    json.NewEncoder(w),
		board:  setup.Board.Copy(),
		toMove: setup.ToMove,
		number: max(setup.MoveNumber, 1),
	}
}

// Highlight emits the legal destinations of the selected piece.
func (jw *JSONWriter) Highlight(squares []chess.Square) {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	jw.emit(&JSONEvent{Event: "highlight", Squares: names})
}

// ClearHighlights emits a clear event.
func (jw *JSONWriter) ClearHighlights() {
	jw.emit(&JSONEvent{Event: "clear"})
}

// Mark emits a square mark.
func (jw *JSONWriter) Mark(sq chess.Square, mark game.Mark) {
	jw.emit(&JSONEvent{Event: "mark", Square: sq.String(), Mark: mark.String()})
}

// Moved emits the move and the FEN after it.
func (jw *JSONWriter) Moved(move chess.Move) {
	engine.ApplyMove(jw.board, move)
	if jw.toMove == chess.Black {
		jw.number++
	}
	jw.toMove = jw.toMove.Opposite()
	jw.emit(&JSONEvent{
		Event: "move",
		Move:  convertMove(move),
		FEN:   engine.FormatFEN(jw.board, jw.toMove, jw.number),
	})
}

// Terminated emits the result.
func (jw *JSONWriter) Terminated(t game.Termination) {
	result := &JSONResult{
		Reason: t.Reason.String(),
		Draw:   t.Draw,
		King:   t.King.String(),
	}
	if !t.Draw {
		result.Winner = colorName(t.Winner)
	}
	jw.emit(&JSONEvent{Event: "end", Result: result})
}

// Flush reports the first encoding error.
func (jw *JSONWriter) Flush() error {
	return jw.err
}

// Close reports the first encoding error.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) emit(ev *JSONEvent) {
	if jw.err != nil {
		return
	}
	jw.err = jw.enc.Encode(ev)
}

// convertMove converts a move to JSON format.
func convertMove(move chess.Move) *JSONMove {
	jm := &JSONMove{
		Color: colorName(chess.ExtractColour(move.Piece)),
		UCI:   move.String(),
		From:  move.From.String(),
		To:    move.To.String(),
		Piece: pieceTypeName(chess.ExtractPiece(move.Piece)),
	}
	if move.IsCapture() {
		jm.Captured = pieceTypeName(chess.ExtractPiece(move.Captured))
	}
	if move.IsPromotion() {
		jm.Promotion = pieceTypeName(move.Promoted)
	}
	switch move.Class {
	case chess.KingsideCastle:
		jm.Castle = "kingside"
	case chess.QueensideCastle:
		jm.Castle = "queenside"
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the lowercase name of a piece type.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
