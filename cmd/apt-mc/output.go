package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Output colors (apt-inspired).
var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // Green
	colorError   = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"} // Red
	colorPackage = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // Green
	colorAuthor  = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94e2d5"} // Cyan
	colorHeader  = lipgloss.AdaptiveColor{Light: "#8839ef", Dark: "#cba6f7"} // Magenta
)

// Shared styles for CLI output.
var (
	styleDone    = lipgloss.NewStyle().Foreground(colorSuccess)
	styleError   = lipgloss.NewStyle().Foreground(colorError)
	stylePackage = lipgloss.NewStyle().Foreground(colorPackage)
	styleAuthor  = lipgloss.NewStyle().Foreground(colorAuthor)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	styleHit     = lipgloss.NewStyle().Bold(true)
)

// statusLine prints an apt-style progress line: "Reading package lists... Done".
func statusLine(w io.Writer, label string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", label, styleDone.Render("Done"))
}

// errorLine renders a message with the apt "E:" prefix.
func errorLine(msg string) string {
	return styleError.Render("E: " + msg)
}

// truncate shortens s to at most n runes, appending "..." when trimmed.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// formatSize renders a byte count the way apt reports fetch sizes.
func formatSize(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f kB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
