package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repobrowser/internal/ui/layout"
	"github.com/yourusername/repobrowser/internal/ui/theme"
)

// RepoCard renders one repository in the result grid.
type RepoCard struct {
	Name        string
	Owner       string
	Description string
	Language    string
	Stars       string
	Width       int
	Active      bool

	// Placeholder text is rendered muted.
	DescriptionMissing bool
	LanguageMissing    bool
}

// SetActive sets the active state of the card
func (c *RepoCard) SetActive(active bool) *RepoCard {
	c.Active = active
	return c
}

// SetWidth sets the card width including its border
func (c *RepoCard) SetWidth(width int) *RepoCard {
	c.Width = width
	return c
}

// Render renders the card
func (c *RepoCard) Render() string {
	styles := theme.GetGlobalThemeManager().GetStyles()

	cardStyle := styles.Card
	if c.Active {
		cardStyle = styles.CardSelected
	}

	// border and horizontal padding
	inner := c.Width - 4
	if inner < 10 {
		inner = 10
	}
	cardStyle = cardStyle.Width(inner + 2)

	stars := styles.Stars.Render("★ " + c.Stars)
	nameWidth := inner - lipgloss.Width(stars) - 1

	titleStyle := styles.CardTitle
	if !c.Active {
		titleStyle = titleStyle.Foreground(styles.ColorText)
	}
	title := PadRight(titleStyle.Render(TruncateText(c.Name, nameWidth)), nameWidth) + " " + stars

	owner := styles.CardOwner.Render(TruncateText("@"+c.Owner, inner))
	descStyle := styles.CardDescription
	if c.DescriptionMissing {
		descStyle = styles.Metadata
	}
	langStyle := styles.CardLanguage
	if c.LanguageMissing {
		langStyle = styles.Metadata
	}
	description := descStyle.Render(PadLines(ClampLines(c.Description, inner, 2), 2))
	language := langStyle.Render(TruncateText("● "+c.Language, inner))

	content := lipgloss.JoinVertical(lipgloss.Left, title, owner, description, language)
	return cardStyle.Height(layout.CardHeight - 2).Render(content)
}

// PadLines appends empty lines until text has n lines.
func PadLines(text string, n int) string {
	lines := 1
	for _, r := range text {
		if r == '\n' {
			lines++
		}
	}
	for ; lines < n; lines++ {
		text += "\n"
	}
	return text
}
