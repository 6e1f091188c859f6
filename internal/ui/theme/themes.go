package theme

import "github.com/yourusername/repobrowser/internal/domain"

// Available theme presets for the TUI.
var (
	// Warm is the default theme with orange-rust tones.
	Warm = domain.Theme{
		Name:        "warm",
		Description: "Warm theme with orange-rust accents (default)",
		Colors: domain.ThemeColors{
			Primary:   "#C15F3C",
			Secondary: "#A14A2F",
			Success:   "#7A9A6E",
			Warning:   "#D4945A",
			Error:     "#C16B6B",
			Muted:     "#B1ADA1",
			Border:    "#3A3631",
			Selected:  "#C15F3C",
			Text:      "#E8E6E3",
			Stars:     "#D4945A",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Card:       "#1F1B17",
			ActivePage: "#C15F3C",
			Input:      "#2F2A1F",
			Picker:     "#1A1A1A",
			ErrorBar:   "#3A1F1F",
		},
	}

	// OceanBlue is a calm blue theme.
	OceanBlue = domain.Theme{
		Name:        "ocean-blue",
		Description: "Cool blue theme for reduced eye strain",
		Colors: domain.ThemeColors{
			Primary:   "#4A90E2",
			Secondary: "#357ABD",
			Success:   "#6EA06E",
			Warning:   "#E2A04A",
			Error:     "#E24A4A",
			Muted:     "#A1B1C1",
			Border:    "#2A3641",
			Selected:  "#4A90E2",
			Text:      "#E3E8ED",
			Stars:     "#E2C04A",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Card:       "#151F2A",
			ActivePage: "#357ABD",
			Input:      "#1F2A37",
			Picker:     "#151F2A",
			ErrorBar:   "#3A1F1F",
		},
	}

	// ForestGreen is a natural green theme.
	ForestGreen = domain.Theme{
		Name:        "forest-green",
		Description: "Natural green theme for calm browsing",
		Colors: domain.ThemeColors{
			Primary:   "#6B9A6B",
			Secondary: "#557A55",
			Success:   "#7AAA7A",
			Warning:   "#D4A45A",
			Error:     "#C17B6B",
			Muted:     "#A1B1A1",
			Border:    "#2A3A2A",
			Selected:  "#6B9A6B",
			Text:      "#E3EDE3",
			Stars:     "#D4A45A",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Card:       "#15201A",
			ActivePage: "#557A55",
			Input:      "#1F2A1F",
			Picker:     "#15201A",
			ErrorBar:   "#3A1F1F",
		},
	}

	// Monochrome is a minimalist grayscale theme.
	Monochrome = domain.Theme{
		Name:        "monochrome",
		Description: "Minimalist grayscale theme",
		Colors: domain.ThemeColors{
			Primary:   "#888888",
			Secondary: "#666666",
			Success:   "#999999",
			Warning:   "#AAAAAA",
			Error:     "#777777",
			Muted:     "#666666",
			Border:    "#333333",
			Selected:  "#AAAAAA",
			Text:      "#EEEEEE",
			Stars:     "#CCCCCC",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Card:       "#1A1A1A",
			ActivePage: "#555555",
			Input:      "#222222",
			Picker:     "#1A1A1A",
			ErrorBar:   "#2A2A2A",
		},
	}
)

// AllThemes returns all available theme presets.
func AllThemes() []domain.Theme {
	return []domain.Theme{Warm, OceanBlue, ForestGreen, Monochrome}
}

// GetThemeByName returns the theme with the given name, or Warm if not found.
func GetThemeByName(name string) domain.Theme {
	for _, t := range AllThemes() {
		if t.Name == name {
			return t
		}
	}
	return Warm
}

// GetThemeNames returns the names of all available themes.
func GetThemeNames() []string {
	themes := AllThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// IsKnownTheme reports whether name is one of the presets.
func IsKnownTheme(name string) bool {
	for _, t := range AllThemes() {
		if t.Name == name {
			return true
		}
	}
	return false
}
