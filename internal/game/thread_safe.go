package game

import (
	"sync"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
)

// ThreadSafeGame wraps Game with mutex protection so that each input is
// processed to completion before the next is accepted. Presenter calls are
// made while the lock is held and must not call back into the game.
type ThreadSafeGame struct {
	game *Game
	mu   sync.RWMutex
}

// NewThreadSafeGame wraps g. The caller must not use g directly afterwards.
func NewThreadSafeGame(g *Game) *ThreadSafeGame {
	return &ThreadSafeGame{game: g}
}

// OnActivate handles one square activation atomically.
func (t *ThreadSafeGame) OnActivate(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.OnActivate(id)
}

// Play performs a scripted move atomically.
func (t *ThreadSafeGame) Play(from, to string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Play(from, to)
}

// Deselect drops the current selection.
func (t *ThreadSafeGame) Deselect() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.game.Deselect()
}

// Turn returns the side to move and the round counter.
func (t *ThreadSafeGame) Turn() (chess.Colour, uint) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.game.Turn()
}

// Selected returns the selected piece, if any.
func (t *ThreadSafeGame) Selected() (chess.PlacedPiece, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.game.Selected()
}

// LegalMoves returns the legal destinations of the selected piece.
func (t *ThreadSafeGame) LegalMoves() []chess.Square {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.game.LegalMoves()
}

// Status returns the status of the position for the side to move.
func (t *ThreadSafeGame) Status() engine.Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.game.Status()
}

// Terminated returns how the game ended and whether it has.
func (t *ThreadSafeGame) Terminated() (Termination, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.game.Terminated()
}

// Plies returns the number of committed moves.
func (t *ThreadSafeGame) Plies() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.game.Plies()
}

// Board returns a copy of the live board.
func (t *ThreadSafeGame) Board() *chess.Board {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.game.Board()
}

// FEN returns the current position as a FEN string.
func (t *ThreadSafeGame) FEN() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.game.FEN()
}
