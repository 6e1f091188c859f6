package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repobrowser/internal/domain"
	"github.com/yourusername/repobrowser/internal/ui/components"
	"github.com/yourusername/repobrowser/internal/ui/theme"
)

func prefix(label string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(label)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	styles := theme.GetGlobalThemeManager().GetStyles()
	fmt.Printf("%s %s\n", prefix("[SUCCESS]", styles.ColorSuccess), message)
}

// PrintError prints an error message
func PrintError(message string) {
	styles := theme.GetGlobalThemeManager().GetStyles()
	fmt.Fprintf(os.Stderr, "%s %s\n", prefix("[ERROR]", styles.ColorError), message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	styles := theme.GetGlobalThemeManager().GetStyles()
	fmt.Printf("%s %s\n", prefix("[INFO]", styles.ColorPrimary), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	styles := theme.GetGlobalThemeManager().GetStyles()
	fmt.Printf("%s %s\n", prefix("[WARNING]", styles.ColorWarning), message)
}

// FormatValue highlights a value in output
func FormatValue(value string) string {
	styles := theme.GetGlobalThemeManager().GetStyles()
	return lipgloss.NewStyle().Foreground(styles.ColorPrimary).Bold(true).Render(value)
}

// FormatLabel formats a label
func FormatLabel(label string) string {
	styles := theme.GetGlobalThemeManager().GetStyles()
	return lipgloss.NewStyle().Foreground(styles.ColorMuted).Render(label)
}

// PrintResult writes one page of results as a plain list, one repository per
// entry, for non-interactive use.
func PrintResult(w io.Writer, result domain.QueryResult, width int) {
	styles := theme.GetGlobalThemeManager().GetStyles()
	if width <= 0 {
		width = 80
	}

	for i, item := range result.Items() {
		stars := styles.Stars.Render("★ " + domain.FormatCount(item.StarCount()))
		name := styles.CardTitle.Render(item.FullName())

		fmt.Fprintf(w, "%2d. %s  %s  %s\n", i+1, name, stars, FormatLabel(item.Language()))
		fmt.Fprintf(w, "    %s\n", components.TruncateText(item.Description(), width-4))
		if url := item.HTMLURL(); url != "" {
			fmt.Fprintf(w, "    %s\n", FormatLabel(url))
		}
	}

	if result.IsEmpty() {
		fmt.Fprintln(w, styles.Metadata.Render(domain.EmptyResultMessage))
		return
	}
	fmt.Fprintln(w, theme.GetGlobalThemeManager().RenderSeparator(min(width, 60)))
}
