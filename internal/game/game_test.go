package game_test

import (
	"bytes"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/game"
	"github.com/lgbarn/chess-referee-go/internal/testutil"
)

// activate feeds square ids to the game one by one.
func activate(t *testing.T, g *game.Game, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.OnActivate(id), "OnActivate(%q)", id)
	}
}

func TestNew_TurnFromSetup(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantTurn  chess.Colour
		wantRound uint
	}{
		{"initial", engine.InitialFEN, chess.White, 0},
		{"black to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", chess.Black, 1},
		{"white at move 10", "4k3/8/8/8/8/8/8/4K3 w - - 0 10", chess.White, 18},
		{"black at move 10", "4k3/8/8/8/8/8/8/4K3 b - - 0 10", chess.Black, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			colour, round := g.Turn()
			assert.Equal(t, tt.wantTurn, colour)
			assert.Equal(t, tt.wantRound, round)
			assert.Equal(t, tt.fen, g.FEN())
		})
	}
}

func TestNew_RejectsInvalidPosition(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"no black king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
		{"pawn on the back rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := game.New(testutil.MustSetup(t, tt.fen))
			assert.Nil(t, g)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrInvalidPosition), "error = %v", err)
		})
	}
}

func TestNew_NilSetupIsStandard(t *testing.T) {
	g, err := game.New(nil)
	require.NoError(t, err)
	assert.Equal(t, engine.InitialFEN, g.FEN())
}

func TestTurnParity(t *testing.T) {
	g := game.NewStandard()
	moves := [][2]string{
		{"e2", "e4"}, {"e7", "e5"}, {"g1", "f3"}, {"b8", "c6"},
		{"f1", "b5"}, {"a7", "a6"}, {"e1", "g1"}, {"g8", "f6"},
	}

	for i, m := range moves {
		require.NoError(t, g.Play(m[0], m[1]), "ply %d", i+1)
		colour, round := g.Turn()
		assert.Equal(t, uint(i+1), round)
		assert.Equal(t, round%2 == 1, colour == chess.Black, "parity after %d plies", i+1)
		assert.Equal(t, i+1, g.Plies())
	}

	board := g.Board()
	assert.Equal(t, chess.W(chess.King), board.Get('g', '1'), "castled king")
	assert.Equal(t, chess.W(chess.Rook), board.Get('f', '1'), "castled rook")
}

func TestFEN_AfterMoves(t *testing.T) {
	g := game.NewStandard()

	require.NoError(t, g.Play("e2", "e4"))
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", g.FEN())

	require.NoError(t, g.Play("e7", "e5"))
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", g.FEN())
}

func TestSelect_LegalitySoundAndComplete(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/1b6/8/3B4/4K3 w - - 0 1",
		"4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1",
	}
	gen := engine.Standard{}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := testutil.MustGame(t, fen)
			board := g.Board()
			colour, _ := g.Turn()

			for _, piece := range board.PiecesOf(colour) {
				legal := g.Select(piece.Square)
				for _, to := range legal {
					after := engine.Simulate(board, piece.Square, to)
					king, _ := engine.FindKing(after, colour)
					assert.False(t, g.IsAttacked(king, after, colour.Opposite()),
						"%v%v leaves the king attacked", piece.Square, to)
				}
				for _, to := range gen.PseudoLegalMoves(board, piece.Square) {
					if chess.ContainsSquare(legal, to) {
						continue
					}
					after := engine.Simulate(board, piece.Square, to)
					king, _ := engine.FindKing(after, colour)
					assert.True(t, g.IsAttacked(king, after, colour.Opposite()),
						"%v%v is safe but not offered", piece.Square, to)
				}
			}
		})
	}
}

func TestSelect_Idempotent(t *testing.T) {
	g := testutil.MustGame(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := g.FEN()

	first := g.Select(chess.Sq('e', '1'))
	second := g.Select(chess.Sq('e', '1'))

	assert.Equal(t, first, second)
	assert.Equal(t, first, g.LegalMoves())
	assert.Equal(t, before, g.FEN(), "selection must not change the board")
	testutil.AssertSameSquares(t, first, []string{"c1", "d1", "f1", "g1"})
}

func TestSelect_IllegalSelectionIsIgnored(t *testing.T) {
	rec := &testutil.RecordingPresenter{}
	g := game.NewStandard(game.WithPresenter(rec))

	assert.Nil(t, g.Select(chess.Sq('e', '7')), "opponent piece")
	assert.Nil(t, g.Select(chess.Sq('e', '4')), "empty square")
	activate(t, g, "d7", "d5")

	_, selected := g.Selected()
	assert.False(t, selected)
	assert.Empty(t, g.LegalMoves())
	assert.Empty(t, rec.Calls)
	colour, round := g.Turn()
	assert.Equal(t, chess.White, colour)
	assert.Equal(t, uint(0), round)
	assert.Equal(t, engine.InitialFEN, g.FEN())
}

func TestSelect_KeepsSelectionOnIllegalReselect(t *testing.T) {
	g := game.NewStandard()
	g.Select(chess.Sq('e', '2'))

	assert.Nil(t, g.Select(chess.Sq('e', '7')))

	piece, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, chess.Sq('e', '2'), piece.Square)
	testutil.AssertSameSquares(t, g.LegalMoves(), []string{"e3", "e4"})
}

func TestOnActivate_Deselection(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{"empty non-destination", []string{"e2", "e5"}},
		{"opponent piece out of reach", []string{"e2", "e7"}},
		{"same square twice", []string{"e2", "e2"}},
		{"piece without moves then elsewhere", []string{"a1", "a5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &testutil.RecordingPresenter{}
			g := game.NewStandard(game.WithPresenter(rec))

			activate(t, g, tt.ids...)

			_, selected := g.Selected()
			assert.False(t, selected)
			assert.Empty(t, g.LegalMoves())
			assert.Equal(t, []string{"Highlight", "ClearHighlights"}, rec.Methods())
			colour, round := g.Turn()
			assert.Equal(t, chess.White, colour)
			assert.Equal(t, uint(0), round)
		})
	}
}

func TestOnActivate_SwitchesSelection(t *testing.T) {
	g := game.NewStandard()
	activate(t, g, "e2", "g1")

	piece, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, chess.W(chess.Knight), piece.Piece)
	testutil.AssertSameSquares(t, g.LegalMoves(), []string{"f3", "h3"})
}

func TestOnActivate_CommitsMove(t *testing.T) {
	rec := &testutil.RecordingPresenter{}
	g := game.NewStandard(game.WithPresenter(rec))

	activate(t, g, "g1", "f3")

	board := g.Board()
	assert.Equal(t, chess.W(chess.Knight), board.Get('f', '3'))
	assert.Equal(t, chess.Empty, board.Get('g', '1'))
	colour, round := g.Turn()
	assert.Equal(t, chess.Black, colour)
	assert.Equal(t, uint(1), round)
	assert.Equal(t, []string{"Highlight", "ClearHighlights", "Moved"}, rec.Methods())
	assert.Equal(t, "g1f3", rec.Calls[2].Move.String())
}

func TestOnActivate_Castling(t *testing.T) {
	g := testutil.MustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	activate(t, g, "e1", "c1")

	board := g.Board()
	assert.Equal(t, chess.W(chess.King), board.Get('c', '1'))
	assert.Equal(t, chess.W(chess.Rook), board.Get('d', '1'))
	assert.Equal(t, chess.Empty, board.Get('a', '1'))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/2KR3R b kq - 0 1", g.FEN())
}

func TestOnActivate_MalformedSquare(t *testing.T) {
	g := game.NewStandard()
	for _, id := range []string{"", "e", "e9", "i1", "e22", "E2"} {
		err := g.OnActivate(id)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidSquare), "OnActivate(%q) = %v", id, err)
	}
	assert.Equal(t, engine.InitialFEN, g.FEN())
}

func TestFoolsMate(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
	}{
		{"f4 e6 g4 Qh4", []string{"f2", "f4", "e7", "e6", "g2", "g4", "d8", "h4"}},
		{"f3 e5 g4 Qh4", []string{"f2", "f3", "e7", "e5", "g2", "g4", "d8", "h4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &testutil.RecordingPresenter{}
			g := game.NewStandard(game.WithPresenter(rec))

			activate(t, g, tt.moves...)

			assert.Equal(t, engine.Checkmate, g.Status())
			assert.True(t, g.IsCheck())
			assert.True(t, g.IsCheckmate())
			assert.False(t, g.IsStalemate())

			term, over := g.Terminated()
			require.True(t, over)
			assert.Equal(t, game.Termination{Reason: engine.Checkmate, Winner: chess.Black, King: chess.Sq('e', '1')}, term)
			assert.Equal(t, "checkmate, Black wins", term.String())
			assert.Equal(t, []game.Termination{term}, rec.Terminations())

			mark, ok := rec.LastMark(chess.Sq('e', '1'))
			assert.True(t, ok)
			assert.Equal(t, game.MarkCheck, mark)
		})
	}
}

func TestQueenBlockedByPawn_IsNotCheck(t *testing.T) {
	g := game.NewStandard()
	activate(t, g, "f2", "f3", "e7", "e5", "g2", "g3", "d8", "h4")

	assert.Equal(t, engine.Ongoing, g.Status())
	assert.False(t, g.IsCheck())
	_, over := g.Terminated()
	assert.False(t, over)
}

func TestGameOver_IgnoresInput(t *testing.T) {
	rec := &testutil.RecordingPresenter{}
	g := game.NewStandard(game.WithPresenter(rec))
	activate(t, g, "f2", "f3", "e7", "e5", "g2", "g4", "d8", "h4")
	fen := g.FEN()
	calls := len(rec.Calls)

	activate(t, g, "a2", "a3", "e1", "f2")
	assert.Nil(t, g.Select(chess.Sq('a', '2')))

	err := g.Play("a2", "a3")
	assert.True(t, stderrors.Is(err, errors.ErrGameOver), "Play after mate = %v", err)
	assert.Equal(t, fen, g.FEN())
	assert.Len(t, rec.Calls, calls, "no presenter calls after the game ended")
}

func TestStalemate(t *testing.T) {
	rec := &testutil.RecordingPresenter{}
	g := testutil.MustGame(t, "7k/8/6K1/8/8/8/8/5Q2 w - - 0 1", game.WithPresenter(rec))

	activate(t, g, "f1", "f7")

	assert.Equal(t, engine.Stalemate, g.Status())
	assert.True(t, g.IsStalemate())
	assert.False(t, g.IsCheck())
	assert.False(t, g.IsCheckmate())

	term, over := g.Terminated()
	require.True(t, over)
	assert.True(t, term.Draw)
	assert.Equal(t, engine.Stalemate, term.Reason)
	assert.Equal(t, chess.Sq('h', '8'), term.King)
	assert.Equal(t, "stalemate, draw", term.String())

	mark, ok := rec.LastMark(chess.Sq('h', '8'))
	assert.True(t, ok)
	assert.Equal(t, game.MarkStalemate, mark)
}

func TestCheckMarkIsCleared(t *testing.T) {
	rec := &testutil.RecordingPresenter{}
	g := testutil.MustGame(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", game.WithPresenter(rec))

	activate(t, g, "a1", "a8")
	assert.Equal(t, engine.Check, g.Status())
	mark, _ := rec.LastMark(chess.Sq('e', '8'))
	assert.Equal(t, game.MarkCheck, mark)

	activate(t, g, "e8", "e7")
	assert.Equal(t, engine.Ongoing, g.Status())
	mark, _ = rec.LastMark(chess.Sq('e', '8'))
	assert.Equal(t, game.MarkNone, mark)
}

func TestStartInTerminalPosition(t *testing.T) {
	rec := &testutil.RecordingPresenter{}
	g := testutil.MustGame(t, "rnb1kbnr/pppp1ppp/4p3/8/5PPq/8/PPPPP2P/RNBQKBNR w KQkq - 1 3", game.WithPresenter(rec))

	term, over := g.Terminated()
	require.True(t, over)
	assert.Equal(t, chess.Black, term.Winner)
	assert.Len(t, rec.Terminations(), 1)
}

func TestPlay_IllegalMove(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"pinned bishop", "4k3/8/8/8/1b6/8/3B4/4K3 w - - 0 1", "d2", "e3"},
		{"wrong side", engine.InitialFEN, "e7", "e5"},
		{"empty square", engine.InitialFEN, "e4", "e5"},
		{"pawn triple push", engine.InitialFEN, "e2", "e5"},
		{"castle through check", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1", "g1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			before := g.FEN()

			err := g.Play(tt.from, tt.to)

			var moveErr *errors.MoveError
			require.True(t, stderrors.As(err, &moveErr), "error = %v", err)
			assert.True(t, stderrors.Is(err, errors.ErrIllegalMove))
			assert.Equal(t, 1, moveErr.Ply)
			assert.Equal(t, tt.from+tt.to, moveErr.Move)
			assert.Equal(t, before, g.FEN())
			_, selected := g.Selected()
			assert.False(t, selected)
		})
	}
}

func TestBoard_ReturnsCopy(t *testing.T) {
	g := game.NewStandard()
	board := g.Board()
	board.Set('e', '2', chess.Empty)

	assert.Equal(t, chess.W(chess.Pawn), g.Board().Get('e', '2'))
}

func TestLogging(t *testing.T) {
	var log bytes.Buffer
	cfg := config.NewConfigBuilder().WithLog(&log).WithVerbosity(2).Build()
	g := game.NewStandard(game.WithConfig(cfg))

	activate(t, g, "f2", "f3", "e7", "e5", "g2", "g4", "d8", "h4")

	testutil.AssertContains(t, log.String(), "select White Pawn on f2")
	testutil.AssertContains(t, log.String(), "ply 4: Black d8h4")
	testutil.AssertContains(t, log.String(), "checkmate, Black wins after 4 plies")
}

func TestThreadSafeGame_ConcurrentInput(t *testing.T) {
	ts := game.NewThreadSafeGame(game.NewStandard())
	ids := []string{"e2", "e4", "e7", "e5", "g1", "f3", "b8", "c6", "d2", "d4", "a7", "a6"}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := range ids {
				_ = ts.OnActivate(ids[(i+offset)%len(ids)])
				ts.LegalMoves()
				ts.Turn()
			}
		}(w)
	}
	wg.Wait()

	colour, round := ts.Turn()
	assert.Equal(t, round%2 == 1, colour == chess.Black)
	assert.Equal(t, int(round), ts.Plies())
	if _, ok := ts.Selected(); !ok {
		assert.Empty(t, ts.LegalMoves())
	}
}
