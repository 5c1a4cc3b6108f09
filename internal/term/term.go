// Package term provides color state and terminal detection.
//
// Styles are package-level so the logger and any other writer of
// diagnostics share one color state. [Configure] resolves the color mode once during
// startup; when colors are disabled every style prints plain text.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"
	xterm "golang.org/x/term"

	"github.com/backmassage/avcp/internal/config"
)

// Styles used for diagnostics.
var (
	Red    = color.New(color.FgHiRed, color.Bold)
	Green  = color.New(color.FgHiGreen, color.Bold)
	Yellow = color.New(color.FgHiYellow, color.Bold)
	Blue   = color.New(color.FgHiBlue, color.Bold)
	Cyan   = color.New(color.FgHiCyan, color.Bold)
)

// Configure resolves mode against out (the stream diagnostics go to) and
// switches colors on or off globally. Call once during startup.
func Configure(mode config.ColorMode, out *os.File) {
	color.NoColor = !resolve(mode, out)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(out) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
