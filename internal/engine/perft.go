package engine

import (
	"sort"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
// A promotion counts once, since the queen is the only promotion piece.
func Perft(board *chess.Board, gen Generator, toMove chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board, gen, toMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		next := board.Copy()
		ApplyMove(next, move)
		nodes += Perft(next, gen, toMove.Opposite(), depth-1)
	}
	return nodes
}

// DivideResult is the node count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft below each legal root move on a pool of workers and
// returns the per-move counts, sorted by move text, with their total.
func Divide(board *chess.Board, gen Generator, toMove chess.Colour, depth, workers int) ([]DivideResult, uint64) {
	if depth <= 0 {
		return nil, 1
	}
	moves := AllLegalMoves(board, gen, toMove)

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: Perft(item.Board, gen, item.ToMove, item.Depth),
		}
	}

	pool := worker.NewPool(processFunc, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, move := range moves {
			next := board.Copy()
			ApplyMove(next, move)
			pool.Submit(worker.WorkItem{
				Index:  i,
				Move:   move,
				Board:  next,
				ToMove: toMove.Opposite(),
				Depth:  depth - 1,
			})
		}
		pool.Close()
	}()

	results := make([]DivideResult, len(moves))
	var total uint64
	for result := range pool.Results() {
		results[result.Index] = DivideResult{Move: result.Move, Nodes: result.Nodes}
		total += result.Nodes
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Move.String() < results[j].Move.String()
	})
	return results, total
}
