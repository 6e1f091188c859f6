package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repobrowser/internal/ui/theme"
)

// Footer is the bottom bar: key help on the left, metadata on the right.
type Footer struct {
	Help     string
	Metadata string
	Width    int
}

// Render renders the footer
func (f Footer) Render() string {
	styles := theme.GetGlobalThemeManager().GetStyles()

	if f.Metadata == "" {
		return styles.Footer.Width(f.Width).Render(f.Help)
	}

	meta := styles.Metadata.Render(f.Metadata)
	line := f.Help + " " + meta
	if f.Width > 0 {
		spacing := f.Width - lipgloss.Width(f.Help) - lipgloss.Width(meta)
		if spacing > 0 {
			line = f.Help + strings.Repeat(" ", spacing) + meta
		}
	}
	return styles.Footer.Width(f.Width).Render(line)
}

// HelpText renders help text in a consistent format
func HelpText(parts ...string) string {
	styles := theme.GetGlobalThemeManager().GetStyles()
	return styles.ShortcutDesc.Render(strings.Join(parts, " • "))
}
