package domain

import (
	"fmt"
	"regexp"
)

// Theme represents a visual theme for the TUI.
type Theme struct {
	Name        string
	Description string
	Colors      ThemeColors
	Backgrounds ThemeBackgrounds
}

// ThemeColors defines the primary color palette for a theme.
type ThemeColors struct {
	// Primary accent color (selected cards, active page, input border)
	Primary string

	// Secondary accent color (darker shade of primary)
	Secondary string

	Success string
	Warning string
	Error   string

	// Muted text color (descriptions, inactive page numbers)
	Muted string

	Border   string
	Selected string
	Text     string

	// Star count highlight
	Stars string
}

// ThemeBackgrounds defines background colors for various UI elements.
type ThemeBackgrounds struct {
	Card       string
	ActivePage string
	Input      string
	Picker     string
	ErrorBar   string
}

// hexColorRegex matches valid hex color codes (#RGB or #RRGGBB).
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Validate checks if the theme has valid color values.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}

	colors := map[string]string{
		"Primary":    t.Colors.Primary,
		"Secondary":  t.Colors.Secondary,
		"Success":    t.Colors.Success,
		"Warning":    t.Colors.Warning,
		"Error":      t.Colors.Error,
		"Muted":      t.Colors.Muted,
		"Border":     t.Colors.Border,
		"Selected":   t.Colors.Selected,
		"Text":       t.Colors.Text,
		"Stars":      t.Colors.Stars,
		"Card":       t.Backgrounds.Card,
		"ActivePage": t.Backgrounds.ActivePage,
		"Input":      t.Backgrounds.Input,
		"Picker":     t.Backgrounds.Picker,
		"ErrorBar":   t.Backgrounds.ErrorBar,
	}

	for name, color := range colors {
		if !hexColorRegex.MatchString(color) {
			return fmt.Errorf("invalid hex color for %s: %s", name, color)
		}
	}

	return nil
}
