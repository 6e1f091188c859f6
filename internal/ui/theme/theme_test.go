package theme

import "testing"

func TestAllThemesValid(t *testing.T) {
	for _, th := range AllThemes() {
		if err := th.Validate(); err != nil {
			t.Errorf("theme %q invalid: %v", th.Name, err)
		}
	}
}

func TestGetThemeByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"warm", "warm"},
		{"ocean-blue", "ocean-blue"},
		{"forest-green", "forest-green"},
		{"monochrome", "monochrome"},
		{"", "warm"},
		{"does-not-exist", "warm"},
	}

	for _, tt := range tests {
		if got := GetThemeByName(tt.name).Name; got != tt.want {
			t.Errorf("GetThemeByName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGetThemeNames(t *testing.T) {
	names := GetThemeNames()
	if len(names) != len(AllThemes()) {
		t.Fatalf("GetThemeNames() returned %d names, want %d", len(names), len(AllThemes()))
	}
	for _, n := range names {
		if !IsKnownTheme(n) {
			t.Errorf("IsKnownTheme(%q) = false", n)
		}
	}
	if IsKnownTheme("claude-warm") {
		t.Error("IsKnownTheme(\"claude-warm\") = true, want false")
	}
}

func TestSetGlobalTheme(t *testing.T) {
	t.Cleanup(func() { SetGlobalTheme(Warm.Name) })

	SetGlobalTheme("ocean-blue")
	tm := GetGlobalThemeManager()
	if tm.GetCurrentTheme().Name != "ocean-blue" {
		t.Fatalf("current theme = %q, want ocean-blue", tm.GetCurrentTheme().Name)
	}
	if string(tm.GetStyles().ColorPrimary) != OceanBlue.Colors.Primary {
		t.Errorf("ColorPrimary = %q, want %q", tm.GetStyles().ColorPrimary, OceanBlue.Colors.Primary)
	}

	SetGlobalTheme("unknown")
	if tm.GetCurrentTheme().Name != Warm.Name {
		t.Errorf("unknown theme should fall back to %q, got %q", Warm.Name, tm.GetCurrentTheme().Name)
	}
}
