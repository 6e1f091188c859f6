package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/yourusername/repobrowser/internal/adapter/config"
	"github.com/yourusername/repobrowser/internal/domain"
	"github.com/yourusername/repobrowser/internal/ui/components"
	"github.com/yourusername/repobrowser/internal/ui/theme"
)

func runConfig(cfgManager *config.Manager, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, components.RenderLogo("Configuration Wizard"))
	fmt.Fprintln(out)

	cfg, err := cfgManager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Theme
	fmt.Fprintln(out, "Theme:")
	themes := theme.AllThemes()
	for i, t := range themes {
		fmt.Fprintf(out, "  %d. %s - %s\n", i+1, t.Name, t.Description)
	}
	fmt.Fprintf(out, "  Current: %s\n", cfg.UI.Theme)
	fmt.Fprint(out, "  Select (Enter to keep): ")
	if i, ok := readChoice(in, len(themes)); ok {
		cfg.UI.Theme = themes[i].Name
	}

	// Default sort
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Default sort:")
	fields := domain.AllSortFields()
	for i, f := range fields {
		fmt.Fprintf(out, "  %d. %s\n", i+1, f.Label())
	}
	fmt.Fprintf(out, "  Current: %s\n", cfg.SortField().Label())
	fmt.Fprint(out, "  Select (Enter to keep): ")
	if i, ok := readChoice(in, len(fields)); ok {
		cfg.UI.DefaultSort = fields[i].String()
	}

	// Log file
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Log file (empty disables logging):")
	if cfg.Log.File != "" {
		fmt.Fprintf(out, "  Current: %s\n", cfg.Log.File)
	}
	fmt.Fprint(out, "  Path (Enter to keep, '-' to disable): ")
	switch path := readLine(in); path {
	case "":
	case "-":
		cfg.Log.File = ""
	default:
		cfg.Log.File = path
	}

	// Log level
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Log level (trace, debug, info, warn, error) [%s]: ", cfg.Log.Level)
	if level := readLine(in); level != "" {
		cfg.Log.Level = level
	}

	if err := cfgManager.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "✅ Configuration saved to: %s\n", cfgManager.ConfigPath())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "You're all set! Run 'rb' to start browsing.")

	return nil
}

// readLine reads one whitespace-free token; an empty line yields "".
func readLine(in io.Reader) string {
	var s string
	fmt.Fscanln(in, &s)
	return s
}

// readChoice reads a 1-based menu choice in [1, n] and returns it 0-based.
func readChoice(in io.Reader, n int) (int, bool) {
	choice, err := strconv.Atoi(readLine(in))
	if err != nil || choice < 1 || choice > n {
		return 0, false
	}
	return choice - 1, true
}
