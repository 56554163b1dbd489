// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-referee-go/internal/config"
)

var (
	// Position options
	startFEN = flag.String("fen", "", "Start from this FEN position (default: standard start)")
	moveList = flag.String("moves", "", "Play these coordinate moves and exit, e.g. \"e2e4 e7e5\"")

	// Perft options
	perftDepth   = flag.Int("perft", 0, "Count move-tree leaves to depth N and exit")
	perftWorkers = flag.Int("workers", runtime.NumCPU(), "Goroutines used to count root moves")
	divide       = flag.Bool("divide", false, "Print the perft count below each root move")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	showBoard  = flag.Bool("board", false, "Print the board after every input")
	useUnicode = flag.Bool("unicode", false, "Draw pieces with chess glyphs")
	noCoords   = flag.Bool("nocoords", false, "Don't print file and rank labels")
	jsonOutput = flag.Bool("json", false, "Report game events as JSON lines")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 results, 2 running commentary")
	quiet     = flag.Bool("q", false, "Quiet mode, same as -v 0")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies all command-line flags to the config.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	applyDisplayFlags(cfg)
	applyPerftFlags(cfg)
	applyLogFlags(cfg)
}

// applyDisplayFlags configures board and event output.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.ShowBoard = *showBoard
	cfg.Display.Unicode = *useUnicode
	cfg.Display.Coordinates = !*noCoords
	cfg.Display.JSONFormat = *jsonOutput
}

// applyPerftFlags configures move-tree counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Workers = *perftWorkers
	cfg.Perft.Divide = *divide
}

// applyLogFlags configures diagnostic verbosity.
func applyLogFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}
