package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestFooter_Render(t *testing.T) {
	f := Footer{Help: "q quit", Metadata: "page 2/9", Width: 60}

	got := ansi.Strip(f.Render())
	lines := strings.Split(got, "\n")
	last := lines[len(lines)-1]

	if !strings.HasPrefix(strings.TrimSpace(last), "q quit") {
		t.Errorf("Render() last line = %q, want help on the left", last)
	}
	if !strings.HasSuffix(strings.TrimRight(last, " "), "page 2/9") {
		t.Errorf("Render() last line = %q, want metadata on the right", last)
	}
	if w := lipgloss.Width(got); w != 60 {
		t.Errorf("Render() width = %d, want 60", w)
	}
}

func TestFooter_RenderWithoutMetadata(t *testing.T) {
	got := ansi.Strip(Footer{Help: "? help"}.Render())
	if !strings.Contains(got, "? help") {
		t.Errorf("Render() = %q, missing help", got)
	}
}

func TestHelpText(t *testing.T) {
	got := ansi.Strip(HelpText("↑/↓ move", "enter apply"))
	if got != "↑/↓ move • enter apply" {
		t.Errorf("HelpText() = %q", got)
	}
}
