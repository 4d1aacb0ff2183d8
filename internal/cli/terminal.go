package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/output"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Terminal provides terminal-aware output utilities
type Terminal struct {
	IsTerminal bool
	UseColor   bool
}

// NewTerminal creates a Terminal for w. Colour is only used when w is a TTY.
func NewTerminal(w io.Writer) *Terminal {
	isTerminal := false
	if f, ok := w.(*os.File); ok {
		isTerminal = term.IsTerminal(int(f.Fd()))
	}
	return &Terminal{
		IsTerminal: isTerminal,
		UseColor:   isTerminal && os.Getenv("NO_COLOR") == "",
	}
}

// Color wraps text in ANSI color codes (terminal only)
func (t *Terminal) Color(color, text string) string {
	if !t.UseColor {
		return text
	}
	return color + text + ColorReset
}

// ScoreStyle colours compatibility scores for match tables
func (t *Terminal) ScoreStyle() output.ScoreStyle {
	return func(score int, text string) string {
		return t.Color(ScoreColor(score), text)
	}
}

// ScoreColor returns the color for a compatibility score
func ScoreColor(score int) string {
	switch {
	case score >= 70:
		return ColorGreen
	case score >= 40:
		return ColorYellow
	default:
		return ColorGray
	}
}

// StatusColor returns the color for a collaboration request status
func StatusColor(status database.RequestStatus) string {
	switch status {
	case database.RequestPending:
		return ColorYellow
	case database.RequestAccepted:
		return ColorGreen
	case database.RequestDeclined:
		return ColorRed
	case database.RequestCancelled:
		return ColorGray
	default:
		return ColorCyan
	}
}
