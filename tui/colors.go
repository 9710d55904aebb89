package tui

// Color constants for the studio's chrome. Swatch cards take their
// colors from the live palette; these only style the frame around them.
const (
	// Dark theme
	darkBorder        = "#3A3F55" // grey-blue card borders
	darkPrimaryText   = "#E6EAF2" // titles, hex codes
	darkSecondaryText = "#B1B8C7" // color names, mode line
	darkHelpText      = "240"     // dark grey help bar

	// Light theme
	lightBorder        = "#C9CEDD"
	lightPrimaryText   = "#1A1E2B"
	lightSecondaryText = "#4C5366"
	lightHelpText      = "245"

	// Shared accents
	colorAccent  = "#7C3AED" // selected card border, lock marker
	colorSuccess = "#22C55E" // copy confirmation
	colorError   = "#EF4444" // failures in the status line
)
