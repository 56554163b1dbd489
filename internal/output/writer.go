package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/game"
)

// PresenterWriter is a game.Presenter that writes to an io.Writer.
// Presenter methods cannot fail, so the first write error is kept and
// reported by Flush and Close.
type PresenterWriter interface {
	game.Presenter

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases the writer.
	Close() error
}

// BoardWriter presents a game as text: one line per move, the result line
// at the end, and the board grid whenever Render is called.
type BoardWriter struct {
	w   io.Writer
	cfg *config.Config

	board      *chess.Board
	highlights []chess.Square
	marks      map[chess.Square]game.Mark
	err        error
}

var _ PresenterWriter = (*BoardWriter)(nil)

// NewBoardWriter creates a text presenter starting from board, which is copied.
func NewBoardWriter(w io.Writer, cfg *config.Config, board *chess.Board) *BoardWriter {
	return &BoardWriter{
		w:     w,
		cfg:   cfg,
		board: board.Copy(),
		marks: make(map[chess.Square]game.Mark),
	}
}

// Highlight records the destinations shown on the next render.
func (bw *BoardWriter) Highlight(squares []chess.Square) {
	bw.highlights = append(bw.highlights[:0], squares...)
}

// ClearHighlights removes all destination highlights.
func (bw *BoardWriter) ClearHighlights() {
	bw.highlights = bw.highlights[:0]
}

// Mark records the mark of sq.
func (bw *BoardWriter) Mark(sq chess.Square, mark game.Mark) {
	if mark == game.MarkNone {
		delete(bw.marks, sq)
		return
	}
	bw.marks[sq] = mark
}

// Moved applies the move to the tracked board and writes it.
func (bw *BoardWriter) Moved(move chess.Move) {
	engine.ApplyMove(bw.board, move)
	bw.printf("%s\n", moveText(move))
}

// Terminated writes the result line.
func (bw *BoardWriter) Terminated(t game.Termination) {
	bw.printf("%v\n", t)
}

// Render writes the tracked board with the current highlights and marks.
func (bw *BoardWriter) Render() {
	RenderBoard(&errWriter{bw}, bw.board, bw.highlights, bw.marks, bw.cfg.Display)
}

// Board returns a copy of the tracked board.
func (bw *BoardWriter) Board() *chess.Board {
	return bw.board.Copy()
}

// Flush reports the first write error.
func (bw *BoardWriter) Flush() error {
	return bw.err
}

// Close reports the first write error.
func (bw *BoardWriter) Close() error {
	return bw.Flush()
}

func (bw *BoardWriter) printf(format string, args ...interface{}) {
	if bw.err != nil {
		return
	}
	_, bw.err = fmt.Fprintf(bw.w, format, args...)
}

// errWriter forwards writes to a BoardWriter, keeping its first error.
type errWriter struct {
	bw *BoardWriter
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.bw.err != nil {
		return 0, e.bw.err
	}
	n, err := e.bw.w.Write(p)
	e.bw.err = err
	return n, err
}
