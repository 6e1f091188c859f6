package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// WrapText wraps text to a specified width while preserving words
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}

// TruncateText truncates text to a maximum display width with an ellipsis.
// Width is measured in terminal cells, so wide runes and ANSI styling are safe.
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(text, maxWidth, "…")
}

// ClampLines wraps text to width and keeps at most n lines, marking the cut
// with an ellipsis.
func ClampLines(text string, width, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(WrapText(strings.Join(strings.Fields(text), " "), width), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	lines = lines[:n]
	lines[n-1] = TruncateText(lines[n-1]+" …", width)
	return strings.Join(lines, "\n")
}

// PadRight pads text to the right with spaces up to its display width
func PadRight(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

// Pluralize returns singular or plural form based on count
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
