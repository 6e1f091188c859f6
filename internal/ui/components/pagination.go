package components

import (
	"strconv"
	"strings"

	"github.com/yourusername/repobrowser/internal/ui/theme"
)

// PageBar renders the page controls under the result grid.
type PageBar struct {
	Pages   []int
	Current int
	Total   int
}

// HasPrev reports whether a previous page exists.
func (p PageBar) HasPrev() bool {
	return p.Current > 1
}

// HasNext reports whether a following page exists.
func (p PageBar) HasNext() bool {
	return p.Current < p.Total
}

// Render renders the bar. Nothing is drawn for fewer than two pages.
func (p PageBar) Render() string {
	if p.Total < 2 || len(p.Pages) == 0 {
		return ""
	}
	styles := theme.GetGlobalThemeManager().GetStyles()

	parts := make([]string, 0, len(p.Pages)+2)

	if p.HasPrev() {
		parts = append(parts, styles.PageArrow.Render("‹"))
	} else {
		parts = append(parts, styles.PageArrowDisabled.Render("‹"))
	}

	for _, n := range p.Pages {
		label := strconv.Itoa(n)
		if n == p.Current {
			parts = append(parts, styles.PageActive.Render(label))
		} else {
			parts = append(parts, styles.PageNumber.Render(label))
		}
	}

	if p.HasNext() {
		parts = append(parts, styles.PageArrow.Render("›"))
	} else {
		parts = append(parts, styles.PageArrowDisabled.Render("›"))
	}

	return strings.Join(parts, "")
}
