package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repobrowser/internal/ui/theme"
)

const logoASCII = `
  ┏━┓┏━╸┏━┓┏━┓   ┏┓ ┏━┓┏━┓╻ ╻┏━┓┏━╸┏━┓
  ┣┳┛┣╸ ┣━┛┃ ┃   ┣┻┓┣┳┛┃ ┃┃╻┃┗━┓┣╸ ┣┳┛
  ╹┗╸┗━╸╹  ┗━┛   ┗━┛╹┗╸┗━┛┗┻┛┗━┛┗━╸╹┗╸`

// RenderLogo renders the ASCII logo with an optional subtitle.
func RenderLogo(subtitle string) string {
	styles := theme.GetGlobalThemeManager().GetStyles()

	logo := lipgloss.NewStyle().Foreground(styles.ColorPrimary).Render(logoASCII)
	if subtitle != "" {
		return logo + "\n" + styles.Metadata.Render(subtitle)
	}
	return logo
}

// RenderHeader renders a consistent header with title and optional subtitle
func RenderHeader(title, subtitle string) string {
	styles := theme.GetGlobalThemeManager().GetStyles()

	header := lipgloss.NewStyle().Bold(true).Foreground(styles.ColorPrimary).Render(title)
	if subtitle != "" {
		header += " " + lipgloss.NewStyle().Foreground(styles.ColorMuted).Render(subtitle)
	}
	return header
}
