// Package game implements the referee's controller: whose turn it is, which
// piece is selected and where it may go, and when the game is over.
//
// A Game is driven one input at a time through OnActivate. It is not safe for
// concurrent use; wrap it in a ThreadSafeGame when inputs come from several
// goroutines.
package game

import (
	"io"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// Game owns the live board together with the turn, selection and terminal
// state of one game.
type Game struct {
	board     *chess.Board
	gen       engine.Generator
	presenter Presenter
	cfg       *config.Config

	// Turn state: currentPlayer is Black exactly when round is odd.
	currentPlayer chess.Colour
	round         uint
	plies         int // moves committed since construction

	// Selection state. legalMoves is empty unless selected is set.
	selected   *chess.PlacedPiece
	legalMoves []chess.Square

	status      engine.Status
	terminated  bool
	termination Termination
	marked      chess.Square // king square carrying a mark, if valid
}

// Option configures a Game.
type Option func(*Game)

// WithGenerator sets the pseudo-legal move generator.
func WithGenerator(gen engine.Generator) Option {
	return func(g *Game) {
		if gen != nil {
			g.gen = gen
		}
	}
}

// WithPresenter sets the presenter that is told about highlights, marks,
// moves and the end of the game.
func WithPresenter(p Presenter) Option {
	return func(g *Game) {
		if p != nil {
			g.presenter = p
		}
	}
}

// WithConfig sets the configuration used for logging.
func WithConfig(cfg *config.Config) Option {
	return func(g *Game) {
		if cfg != nil {
			g.cfg = cfg
		}
	}
}

// New creates a game from setup. A nil setup means the standard starting
// position. Setups that break a structural invariant, such as a side without
// exactly one king, are rejected with an error wrapping
// errors.ErrInvalidPosition.
func New(setup *engine.Setup, opts ...Option) (*Game, error) {
	if setup == nil {
		setup = engine.NewInitialSetup()
	}

	g := &Game{
		gen:       engine.Standard{},
		presenter: NopPresenter{},
		cfg:       &config.Config{LogFile: io.Discard},
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := engine.ValidatePosition(setup.Board, setup.ToMove); err != nil {
		return nil, errors.Wrap(err, "game setup")
	}

	g.board = setup.Board.Copy()
	g.currentPlayer = setup.ToMove
	moveNumber := setup.MoveNumber
	if moveNumber == 0 {
		moveNumber = 1
	}
	g.round = 2 * (moveNumber - 1)
	if setup.ToMove == chess.Black {
		g.round++
	}

	g.cfg.Logf(2, "new game: %s", g.FEN())
	g.detectTerminalState()
	return g, nil
}

// NewStandard creates a game from the standard starting position.
func NewStandard(opts ...Option) *Game {
	g, err := New(engine.NewInitialSetup(), opts...)
	if err != nil {
		panic(err) // the starting position is always valid
	}
	return g
}

// Select makes the piece on sq the selected piece and returns its legal
// destinations, which are also passed to the presenter. Selecting an empty
// square or an opponent's piece, or selecting after the game has ended, does
// nothing and returns nil.
func (g *Game) Select(sq chess.Square) []chess.Square {
	if g.terminated {
		return nil
	}
	piece, ok := g.board.PieceAt(sq)
	if !ok || piece.Colour() != g.currentPlayer {
		return nil
	}

	g.selected = &piece
	g.legalMoves = engine.LegalMoves(g.board, g.gen, sq)
	g.presenter.Highlight(g.LegalMoves())
	g.cfg.Logf(2, "select %v %v on %v: %d legal moves", piece.Colour(), piece.Kind(), sq, len(g.legalMoves))
	return g.LegalMoves()
}

// Deselect drops the current selection. The turn does not change.
func (g *Game) Deselect() {
	if g.selected == nil {
		return
	}
	g.cfg.Logf(2, "deselect %v", g.selected.Square)
	g.clearSelection()
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.legalMoves = nil
	g.presenter.ClearHighlights()
}

// CommitMove moves the selected piece from from to to and passes the turn.
// It does nothing and returns false unless from holds the selected piece and
// to is one of its legal destinations.
func (g *Game) CommitMove(from, to chess.Square) bool {
	if g.terminated || g.selected == nil || g.selected.Square != from ||
		!chess.ContainsSquare(g.legalMoves, to) {
		return false
	}

	move := engine.NewMove(g.board, from, to)
	engine.ApplyMove(g.board, move)
	g.clearSelection()

	g.round++
	g.plies++
	g.currentPlayer = chess.White
	if g.round%2 == 1 {
		g.currentPlayer = chess.Black
	}

	g.presenter.Moved(move)
	g.cfg.Logf(2, "ply %d: %v %v", g.plies, g.currentPlayer.Opposite(), move)

	g.detectTerminalState()
	return true
}

// detectTerminalState evaluates the position for the side to move, updates
// the king mark and ends the game on checkmate or stalemate.
func (g *Game) detectTerminalState() {
	if g.marked.Valid() {
		g.presenter.Mark(g.marked, MarkNone)
		g.marked = chess.Square{}
	}

	g.status = engine.Evaluate(g.board, g.gen, g.currentPlayer)
	king, _ := engine.FindKing(g.board, g.currentPlayer)

	switch g.status {
	case engine.Check:
		g.setMark(king, MarkCheck)
		g.cfg.Logf(2, "%v is in check", g.currentPlayer)
	case engine.Checkmate:
		g.setMark(king, MarkCheck)
		g.terminate(Termination{Reason: engine.Checkmate, Winner: g.currentPlayer.Opposite(), King: king})
	case engine.Stalemate:
		g.setMark(king, MarkStalemate)
		g.terminate(Termination{Reason: engine.Stalemate, Draw: true, King: king})
	}
}

func (g *Game) setMark(sq chess.Square, mark Mark) {
	g.marked = sq
	g.presenter.Mark(sq, mark)
}

func (g *Game) terminate(t Termination) {
	g.terminated = true
	g.termination = t
	g.cfg.Logf(1, "%v after %d plies", t, g.plies)
	g.presenter.Terminated(t)
}

// OnActivate handles one activation of the square named id. With nothing
// selected it selects; with a piece selected it commits a move to a legal
// destination, switches to another piece of the same side, or otherwise
// deselects. Illegal activations are ignored. The only error reported is a
// malformed square id.
func (g *Game) OnActivate(id string) error {
	sq, err := chess.ParseSquare(id)
	if err != nil {
		return err
	}
	if g.terminated {
		return nil
	}

	if g.selected == nil {
		g.Select(sq)
		return nil
	}

	switch {
	case chess.ContainsSquare(g.legalMoves, sq):
		g.CommitMove(g.selected.Square, sq)
	case sq != g.selected.Square && g.ownsPieceOn(sq):
		g.Select(sq)
	default:
		g.Deselect()
	}
	return nil
}

func (g *Game) ownsPieceOn(sq chess.Square) bool {
	piece, ok := g.board.PieceAt(sq)
	return ok && piece.Colour() == g.currentPlayer
}

// Play selects the piece on from and moves it to to. It reports
// errors.ErrGameOver once the game has ended and a *errors.MoveError wrapping
// errors.ErrIllegalMove when the move is not legal; the selection is then
// left empty.
func (g *Game) Play(from, to string) error {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return err
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return err
	}
	if g.terminated {
		return errors.Wrapf(errors.ErrGameOver, "move %s%s after %v", from, to, g.termination)
	}

	g.Select(fromSq)
	if !g.CommitMove(fromSq, toSq) {
		g.Deselect()
		return &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Ply:  g.plies + 1,
			Move: from + to,
			Side: g.currentPlayer.String(),
		}
	}
	return nil
}

// IsAttacked reports whether any piece of by could move to sq on board.
func (g *Game) IsAttacked(sq chess.Square, board *chess.Board, by chess.Colour) bool {
	return engine.IsAttacked(board, g.gen, sq, by)
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return engine.IsInCheck(g.board, g.gen, g.currentPlayer)
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return engine.IsCheckmate(g.board, g.gen, g.currentPlayer)
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return engine.IsStalemate(g.board, g.gen, g.currentPlayer)
}

// Board returns a copy of the live board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Turn returns the side to move and the round counter.
func (g *Game) Turn() (chess.Colour, uint) {
	return g.currentPlayer, g.round
}

// Selected returns the selected piece, if any.
func (g *Game) Selected() (chess.PlacedPiece, bool) {
	if g.selected == nil {
		return chess.PlacedPiece{}, false
	}
	return *g.selected, true
}

// LegalMoves returns the legal destinations of the selected piece.
func (g *Game) LegalMoves() []chess.Square {
	if len(g.legalMoves) == 0 {
		return nil
	}
	return append([]chess.Square(nil), g.legalMoves...)
}

// Status returns the status of the position for the side to move, as of the
// last commit.
func (g *Game) Status() engine.Status {
	return g.status
}

// Terminated returns how the game ended and whether it has.
func (g *Game) Terminated() (Termination, bool) {
	return g.termination, g.terminated
}

// Plies returns the number of moves committed since the game was created.
func (g *Game) Plies() int {
	return g.plies
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.FormatFEN(g.board, g.currentPlayer, g.round/2+1)
}
