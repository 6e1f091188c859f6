// Package theme holds the TUI color presets and the lipgloss styles built
// from them.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repobrowser/internal/domain"
)

// ThemeManager manages the current theme and provides styled components.
type ThemeManager struct {
	currentTheme domain.Theme
	styles       *ThemeStyles
}

// ThemeStyles contains all lipgloss styles for the TUI.
type ThemeStyles struct {
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorError     lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorSelected  lipgloss.Color
	ColorText      lipgloss.Color
	ColorStars     lipgloss.Color

	// Header styles
	Header       lipgloss.Style
	SectionTitle lipgloss.Style
	Metadata     lipgloss.Style

	// Search input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Repository cards
	Card            lipgloss.Style
	CardSelected    lipgloss.Style
	CardTitle       lipgloss.Style
	CardOwner       lipgloss.Style
	CardDescription lipgloss.Style
	CardLanguage    lipgloss.Style
	Stars           lipgloss.Style

	// Pagination bar
	PageNumber        lipgloss.Style
	PageActive        lipgloss.Style
	PageArrow         lipgloss.Style
	PageArrowDisabled lipgloss.Style

	// Sort picker
	Picker             lipgloss.Style
	PickerOption       lipgloss.Style
	PickerOptionActive lipgloss.Style

	// Status indicator styles
	StatusOk      lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	ErrorBar      lipgloss.Style
	Loading       lipgloss.Style

	// Footer styles
	Footer       lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	Separator lipgloss.Style
}

// NewThemeManager creates a new theme manager with the specified theme.
func NewThemeManager(theme domain.Theme) *ThemeManager {
	tm := &ThemeManager{
		currentTheme: theme,
		styles:       &ThemeStyles{},
	}
	tm.regenerateStyles()
	return tm
}

// GetCurrentTheme returns the current theme.
func (tm *ThemeManager) GetCurrentTheme() domain.Theme {
	return tm.currentTheme
}

// SetTheme changes the current theme and regenerates all styles.
func (tm *ThemeManager) SetTheme(theme domain.Theme) {
	tm.currentTheme = theme
	tm.regenerateStyles()
}

// GetStyles returns the current theme styles.
func (tm *ThemeManager) GetStyles() *ThemeStyles {
	return tm.styles
}

// regenerateStyles rebuilds all lipgloss styles based on the current theme.
func (tm *ThemeManager) regenerateStyles() {
	c := tm.currentTheme.Colors
	bg := tm.currentTheme.Backgrounds
	s := tm.styles

	s.ColorPrimary = lipgloss.Color(c.Primary)
	s.ColorSecondary = lipgloss.Color(c.Secondary)
	s.ColorSuccess = lipgloss.Color(c.Success)
	s.ColorWarning = lipgloss.Color(c.Warning)
	s.ColorError = lipgloss.Color(c.Error)
	s.ColorMuted = lipgloss.Color(c.Muted)
	s.ColorBorder = lipgloss.Color(c.Border)
	s.ColorSelected = lipgloss.Color(c.Selected)
	s.ColorText = lipgloss.Color(c.Text)
	s.ColorStars = lipgloss.Color(c.Stars)

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary).
		Padding(0, 1)

	s.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorSecondary)

	s.Metadata = lipgloss.NewStyle().
		Foreground(s.ColorMuted).
		Italic(true)

	s.Input = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Background(lipgloss.Color(bg.Input)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorBorder).
		Padding(0, 1)

	s.InputFocused = s.Input.
		BorderForeground(s.ColorPrimary)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorBorder).
		Padding(0, 1)

	s.CardSelected = s.Card.
		BorderForeground(s.ColorSelected).
		Background(lipgloss.Color(bg.Card))

	s.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary)

	s.CardOwner = lipgloss.NewStyle().
		Foreground(s.ColorSecondary)

	s.CardDescription = lipgloss.NewStyle().
		Foreground(s.ColorText)

	s.CardLanguage = lipgloss.NewStyle().
		Foreground(s.ColorMuted)

	s.Stars = lipgloss.NewStyle().
		Foreground(s.ColorStars).
		Bold(true)

	s.PageNumber = lipgloss.NewStyle().
		Foreground(s.ColorMuted).
		Padding(0, 1)

	s.PageActive = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Background(lipgloss.Color(bg.ActivePage)).
		Bold(true).
		Padding(0, 1)

	s.PageArrow = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Padding(0, 1)

	s.PageArrowDisabled = lipgloss.NewStyle().
		Foreground(s.ColorBorder).
		Padding(0, 1)

	s.Picker = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorPrimary).
		Background(lipgloss.Color(bg.Picker)).
		Padding(1, 2)

	s.PickerOption = lipgloss.NewStyle().
		Foreground(s.ColorMuted)

	s.PickerOptionActive = lipgloss.NewStyle().
		Foreground(s.ColorSelected).
		Bold(true)

	s.StatusOk = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Bold(true)

	s.StatusWarning = lipgloss.NewStyle().
		Foreground(s.ColorWarning).
		Bold(true)

	s.StatusError = lipgloss.NewStyle().
		Foreground(s.ColorError).
		Bold(true)

	s.StatusInfo = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.ErrorBar = lipgloss.NewStyle().
		Foreground(s.ColorError).
		Background(lipgloss.Color(bg.ErrorBar)).
		Bold(true).
		Padding(0, 1)

	s.Loading = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.Footer = lipgloss.NewStyle().
		Foreground(s.ColorMuted).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.ColorBorder)

	s.ShortcutKey = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.ShortcutDesc = lipgloss.NewStyle().
		Foreground(s.ColorMuted)

	s.Separator = lipgloss.NewStyle().
		Foreground(s.ColorBorder)
}

// RenderSeparator returns a styled horizontal separator.
func (tm *ThemeManager) RenderSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return tm.styles.Separator.Render(strings.Repeat("─", width))
}

// defaultThemeManager is the global theme manager instance. It starts with
// Warm and is switched once the user's preference is loaded.
var defaultThemeManager = NewThemeManager(Warm)

// SetGlobalTheme updates the global theme manager with a new theme.
func SetGlobalTheme(name string) {
	defaultThemeManager.SetTheme(GetThemeByName(name))
}

// GetGlobalThemeManager returns the global theme manager instance.
// UI components should call GetGlobalThemeManager().GetStyles() so they pick up
// theme changes.
func GetGlobalThemeManager() *ThemeManager {
	return defaultThemeManager
}
