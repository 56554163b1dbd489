package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
)

// runPerft counts the leaves of the legal move tree below setup and writes
// the total, preceded by the per-move counts when dividing.
func runPerft(cfg *config.Config, setup *engine.Setup) error {
	start := time.Now()
	depth := cfg.Perft.Depth
	gen := engine.Standard{}
	w := cfg.OutputFile

	var nodes uint64
	switch {
	case cfg.Perft.Divide:
		var results []engine.DivideResult
		results, nodes = engine.Divide(setup.Board, gen, setup.ToMove, depth, cfg.Perft.Workers)
		for _, r := range results {
			fmt.Fprintf(w, "%v: %d\n", r.Move, r.Nodes)
		}
		fmt.Fprintf(w, "\nMoves: %d\n", len(results))
	case cfg.Perft.Workers > 1:
		_, nodes = engine.Divide(setup.Board, gen, setup.ToMove, depth, cfg.Perft.Workers)
	default:
		nodes = engine.Perft(setup.Board, gen, setup.ToMove, depth)
	}

	if _, err := fmt.Fprintf(w, "Nodes: %d\n", nodes); err != nil {
		return err
	}
	cfg.Logf(2, "perft(%d) of %s: %d nodes in %v", depth, setup, nodes, time.Since(start).Round(time.Millisecond))
	return nil
}
