package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/game"
	"github.com/lgbarn/chess-referee-go/internal/output"
)

// loadSetup returns the configured start position.
func loadSetup(cfg *config.Config) (*engine.Setup, error) {
	if cfg.StartFEN == "" {
		return engine.NewInitialSetup(), nil
	}
	return engine.ParseFEN(cfg.StartFEN)
}

// newPresenter creates the writer game events are reported to.
func newPresenter(cfg *config.Config, setup *engine.Setup) output.PresenterWriter {
	if cfg.Display.JSONFormat {
		return output.NewJSONWriter(cfg.OutputFile, setup)
	}
	return output.NewBoardWriter(cfg.OutputFile, cfg, setup.Board)
}

// session is one refereed game and the writer it reports to.
type session struct {
	cfg       *config.Config
	game      *game.ThreadSafeGame
	presenter output.PresenterWriter
}

func newSession(cfg *config.Config, setup *engine.Setup) (*session, error) {
	presenter := newPresenter(cfg, setup)
	g, err := game.New(setup, game.WithPresenter(presenter), game.WithConfig(cfg))
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:       cfg,
		game:      game.NewThreadSafeGame(g),
		presenter: presenter,
	}
	if cfg.Display.ShowBoard {
		s.render()
	}
	return s, nil
}

// runGame plays moves when given and reads interactive input from in
// otherwise.
func runGame(cfg *config.Config, setup *engine.Setup, moves string, in io.Reader) error {
	s, err := newSession(cfg, setup)
	if err != nil {
		return err
	}

	if strings.TrimSpace(moves) != "" {
		err = s.playMoves(moves)
	} else {
		err = s.interact(in)
	}

	cfg.Logf(2, "final position: %s", s.game.FEN())
	if closeErr := s.presenter.Close(); err == nil {
		err = closeErr
	}
	return err
}

// playMoves plays whitespace-separated coordinate moves, stopping at the
// first one that is not legal.
func (s *session) playMoves(moves string) error {
	for _, text := range strings.Fields(moves) {
		from, to, err := splitMove(text)
		if err != nil {
			return err
		}
		if err := s.game.Play(from, to); err != nil {
			return err
		}
		if s.cfg.Display.ShowBoard {
			s.render()
		}
	}
	return nil
}

// splitMove splits coordinate text such as "e2e4" into its squares. Pawns
// always promote to a queen, so "e7e8q" is accepted and other promotion
// letters are not.
func splitMove(text string) (from, to string, err error) {
	switch {
	case len(text) == 4:
	case len(text) == 5 && (text[4] == 'q' || text[4] == 'Q'):
	default:
		return "", "", &errors.MoveError{Err: errors.ErrIllegalMove, Move: text}
	}
	return text[:2], text[2:4], nil
}

// interact reads square ids and commands from in until end of input, quit or
// the end of the game. Malformed square ids are logged and skipped.
func (s *session) interact(in io.Reader) error {
	if _, over := s.game.Terminated(); over {
		return nil
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := strings.ToLower(scanner.Text())
		switch word {
		case "quit", "exit":
			return nil
		case "fen":
			fmt.Fprintln(s.cfg.OutputFile, s.game.FEN())
		case "board":
			s.render()
		default:
			if err := s.game.OnActivate(word); err != nil {
				s.cfg.Logf(1, "%v", err)
				continue
			}
			if s.cfg.Display.ShowBoard {
				s.render()
			}
			if _, over := s.game.Terminated(); over {
				return nil
			}
		}
	}
	return scanner.Err()
}

// render prints the board when the session reports as text.
func (s *session) render() {
	if bw, ok := s.presenter.(*output.BoardWriter); ok {
		bw.Render()
	}
}
