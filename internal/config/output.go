package config

// DisplayConfig holds settings for the text board.
type DisplayConfig struct {
	// ShowBoard prints the board after every input
	ShowBoard bool

	// Coordinates adds file letters and rank numbers around the board
	Coordinates bool

	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool

	// HighlightMark is drawn on empty legal destinations
	HighlightMark byte

	// JSONFormat reports game events as JSON lines instead of text
	JSONFormat bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Coordinates:   true,
		HighlightMark: '*',
	}
}
