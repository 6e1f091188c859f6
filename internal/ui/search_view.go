package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repobrowser/internal/ui/components"
	"github.com/yourusername/repobrowser/internal/ui/layout"
	"github.com/yourusername/repobrowser/internal/ui/theme"
)

// View renders the search screen.
func (m SearchModel) View() string {
	styles := theme.GetGlobalThemeManager().GetStyles()
	vm := BuildViewModel(m.session.State(), m.printer)

	var sections []string

	sections = append(sections, components.RenderHeader("Repo Browser", "sorted by "+vm.SortLabel))

	inputStyle := styles.Input
	if m.focus == focusInput {
		inputStyle = styles.InputFocused
	}
	sections = append(sections, inputStyle.Width(m.windowWidth-2).Render(m.input.View()))

	sections = append(sections, m.renderStatus(vm))

	if m.picker != nil {
		sections = append(sections, lipgloss.PlaceVertical(m.viewport.Height, lipgloss.Top, m.picker.RenderCentered(m.windowWidth)))
	} else {
		sections = append(sections, m.renderBody(vm))
	}

	bar := components.PageBar{Pages: vm.Pages, Current: vm.CurrentPage, Total: vm.TotalPages}
	sections = append(sections, lipgloss.PlaceHorizontal(m.windowWidth, lipgloss.Center, bar.Render()))

	footer := components.Footer{Help: m.help.View(m.keys), Width: m.windowWidth}
	if vm.TotalPages > 0 {
		footer.Metadata = fmt.Sprintf("page %d/%d", vm.CurrentPage, vm.TotalPages)
	}
	sections = append(sections, footer.Render())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatus renders the single line between the input and the results.
func (m SearchModel) renderStatus(vm ViewModel) string {
	styles := theme.GetGlobalThemeManager().GetStyles()

	switch {
	case m.notice != "":
		return components.NewWarningBanner(m.notice).WithWidth(m.windowWidth).Render()
	case vm.Loading:
		return styles.Loading.Render(m.spinner.View() + " Loading repositories…")
	case vm.ErrorMessage != "":
		return components.NewErrorBanner(vm.ErrorMessage).
			WithDetail(vm.ErrorDetail).
			WithWidth(m.windowWidth).
			Render()
	case vm.TotalLabel != "":
		return styles.Metadata.Render(vm.TotalLabel + " found")
	default:
		return ""
	}
}

func (m SearchModel) renderBody(vm ViewModel) string {
	if vm.EmptyMessage != "" {
		msg := components.NewInfoBanner(vm.EmptyMessage).Render()
		return lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center, msg)
	}
	if len(vm.Cards) == 0 {
		return lipgloss.NewStyle().Height(m.viewport.Height).Render("")
	}
	return m.viewport.View()
}

// renderGrid lays the cards out in rows that fill width.
func renderGrid(cards []CardView, width, selected int, highlight bool) string {
	if len(cards) == 0 {
		return ""
	}

	cols := layout.CalculateColumns(width)
	cardWidth := layout.CalculateCardWidth(width, cols)

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))

		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			c := cards[i]
			card := &components.RepoCard{
				Name:        c.Name,
				Owner:       c.Owner,
				Description: c.Description,
				Language:    c.Language,
				Stars:       c.Stars,

				DescriptionMissing: c.NoDescription,
				LanguageMissing:    c.NoLanguage,
			}
			row = append(row, card.SetWidth(cardWidth).SetActive(highlight && i == selected).Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return strings.Join(rows, "\n")
}
