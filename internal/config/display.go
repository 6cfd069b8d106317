package config

// DisplayConfig holds settings for drawing the board in a terminal.
type DisplayConfig struct {
	// ClearScreen clears the terminal before every board is drawn
	ClearScreen bool

	// NoColor disables ANSI colours and draws pieces as letters
	NoColor bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{}
}
