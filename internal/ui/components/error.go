package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repobrowser/internal/ui/theme"
)

// ErrorSeverity defines the severity level of an error
type ErrorSeverity int

const (
	SeverityError ErrorSeverity = iota
	SeverityWarning
	SeverityInfo
)

// ErrorBanner is a single-line notice shown above the result grid.
type ErrorBanner struct {
	Message  string
	Detail   string // Optional, shown muted after the message
	Severity ErrorSeverity
	Width    int
}

// NewErrorBanner creates a new error banner
func NewErrorBanner(message string) *ErrorBanner {
	return &ErrorBanner{Message: message, Severity: SeverityError}
}

// NewInfoBanner creates an info banner
func NewInfoBanner(message string) *ErrorBanner {
	return &ErrorBanner{Message: message, Severity: SeverityInfo}
}

// NewWarningBanner creates a warning banner
func NewWarningBanner(message string) *ErrorBanner {
	return &ErrorBanner{Message: message, Severity: SeverityWarning}
}

// WithDetail adds a muted detail after the message
func (eb *ErrorBanner) WithDetail(detail string) *ErrorBanner {
	eb.Detail = detail
	return eb
}

// WithWidth sets the width
func (eb *ErrorBanner) WithWidth(width int) *ErrorBanner {
	eb.Width = width
	return eb
}

// Render renders the banner
func (eb *ErrorBanner) Render() string {
	styles := theme.GetGlobalThemeManager().GetStyles()

	var style lipgloss.Style
	var icon string
	switch eb.Severity {
	case SeverityError:
		style = styles.ErrorBar
		icon = "✗"
	case SeverityWarning:
		style = styles.StatusWarning.Padding(0, 1)
		icon = "⚠"
	default:
		style = styles.StatusInfo.Padding(0, 1)
		icon = "ℹ"
	}

	var b strings.Builder
	b.WriteString(icon + " " + eb.Message)
	if eb.Detail != "" {
		b.WriteString(" (" + eb.Detail + ")")
	}

	text := b.String()
	if eb.Width > 0 {
		// padding
		text = TruncateText(text, eb.Width-2)
		style = style.Width(eb.Width)
	}
	return style.Render(text)
}
