package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorGray    = "\033[90m"
	ColorBold    = "\033[1m"

	ClearScreen    = "\033[2J"   // Clear entire screen
	ClearLine      = "\033[2K"   // Clear entire line
	MoveCursorHome = "\033[H"    // Move cursor to home position
	HideCursor     = "\033[?25l" // Hide cursor
	ShowCursor     = "\033[?25h" // Show cursor
)

// GetDisplayWidth calculates the actual display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadToWidth pads text with spaces up to the given display width, truncating
// with an ellipsis when it does not fit
func PadToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(text)
	if w > width {
		return runewidth.Truncate(text, width, "…")
	}
	return text + strings.Repeat(" ", width-w)
}
