package github

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Browser opens repositories in a web browser.
type Browser interface {
	OpenRepository(ctx context.Context, fullName, htmlURL string) error
}

// ExecBrowser opens repositories with the gh CLI, falling back to the
// platform's URL opener.
type ExecBrowser struct {
	// lookPath is swapped in tests
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewExecBrowser creates a browser backed by external commands.
func NewExecBrowser() *ExecBrowser {
	return &ExecBrowser{
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			cmd := exec.CommandContext(ctx, name, args...)
			output, err := cmd.CombinedOutput()
			if err != nil {
				return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, string(output))
			}
			return nil
		},
	}
}

// CheckGHAvailable checks if gh CLI is installed
func (b *ExecBrowser) CheckGHAvailable() bool {
	_, err := b.lookPath("gh")
	return err == nil
}

// OpenRepository opens owner/repo with `gh browse`, or htmlURL with the
// system opener when gh is not installed.
func (b *ExecBrowser) OpenRepository(ctx context.Context, fullName, htmlURL string) error {
	if fullName == "" && htmlURL == "" {
		return fmt.Errorf("repository has no name or URL")
	}

	if fullName != "" && b.CheckGHAvailable() {
		if err := b.run(ctx, "gh", "browse", "--repo", fullName); err == nil {
			return nil
		}
	}

	if htmlURL == "" {
		htmlURL = GetRepoURL(fullName)
	}

	opener, args := systemOpener(runtime.GOOS)
	if _, err := b.lookPath(opener); err != nil {
		return fmt.Errorf("no browser opener available: %w", err)
	}

	if err := b.run(ctx, opener, append(args, htmlURL)...); err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	return nil
}

// GetRepoURL constructs the web URL of owner/repo.
func GetRepoURL(fullName string) string {
	return fmt.Sprintf("https://github.com/%s", fullName)
}

func systemOpener(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
