package config

import (
	"fmt"

	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// MaxPerftDepth bounds the perft search; deeper trees take hours.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-tree node counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft
	Depth int

	// Workers is the number of goroutines counting root moves
	Workers int

	// Divide prints the node count below each root move
	Divide bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: 1}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
