package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repobrowser/internal/ui/layout"
	"github.com/yourusername/repobrowser/internal/ui/theme"
)

// ModalOption is one choice in a picker modal
type ModalOption struct {
	Label  string
	Active bool // currently applied value
}

// PickerModal is a small modal listing options with a cursor.
type PickerModal struct {
	Title   string
	Options []ModalOption
	Width   int

	cursor int
}

// NewPickerModal creates a picker with the cursor on the active option
func NewPickerModal(title string, options []ModalOption) *PickerModal {
	m := &PickerModal{
		Title:   title,
		Options: options,
		Width:   layout.ModalWidthSM,
	}
	for i, opt := range options {
		if opt.Active {
			m.cursor = i
			break
		}
	}
	return m
}

// Cursor returns the highlighted option index
func (m *PickerModal) Cursor() int {
	return m.cursor
}

// Up moves the cursor up, wrapping around
func (m *PickerModal) Up() {
	if len(m.Options) == 0 {
		return
	}
	m.cursor = (m.cursor - 1 + len(m.Options)) % len(m.Options)
}

// Down moves the cursor down, wrapping around
func (m *PickerModal) Down() {
	if len(m.Options) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.Options)
}

// Render renders the modal
func (m *PickerModal) Render() string {
	styles := theme.GetGlobalThemeManager().GetStyles()

	var content strings.Builder
	content.WriteString(styles.SectionTitle.Render(m.Title) + "\n\n")

	for i, opt := range m.Options {
		marker := "  "
		style := styles.PickerOption
		if i == m.cursor {
			marker = "› "
			style = styles.PickerOptionActive
		}
		label := opt.Label
		if opt.Active {
			label += " ✓"
		}
		content.WriteString(style.Render(marker+label) + "\n")
	}

	content.WriteString("\n" + HelpText("↑/↓ move", "enter apply", "esc cancel"))

	return styles.Picker.Width(m.Width).Render(content.String())
}

// RenderCentered renders the modal horizontally centered in windowWidth
func (m *PickerModal) RenderCentered(windowWidth int) string {
	x := layout.CenterHorizontal(windowWidth, m.Width)
	return lipgloss.NewStyle().PaddingLeft(x).Render(m.Render())
}
