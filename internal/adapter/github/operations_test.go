package github

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRun struct {
	name string
	args []string
}

func fakeBrowser(available map[string]bool, fail map[string]bool) (*ExecBrowser, *[]recordedRun) {
	var runs []recordedRun
	b := &ExecBrowser{
		lookPath: func(name string) (string, error) {
			if available[name] {
				return "/usr/bin/" + name, nil
			}
			return "", errors.New("not found")
		},
		run: func(ctx context.Context, name string, args ...string) error {
			runs = append(runs, recordedRun{name: name, args: args})
			if fail[name] {
				return errors.New("exit status 1")
			}
			return nil
		},
	}
	return b, &runs
}

func TestExecBrowser_PrefersGH(t *testing.T) {
	b, runs := fakeBrowser(map[string]bool{"gh": true}, nil)

	require.NoError(t, b.OpenRepository(context.Background(), "charmbracelet/bubbletea", ""))
	require.Len(t, *runs, 1)
	require.Equal(t, "gh", (*runs)[0].name)
	require.Equal(t, []string{"browse", "--repo", "charmbracelet/bubbletea"}, (*runs)[0].args)
}

func TestExecBrowser_FallsBackToSystemOpener(t *testing.T) {
	opener, _ := systemOpener(runtime.GOOS)
	b, runs := fakeBrowser(map[string]bool{"gh": true, opener: true}, map[string]bool{"gh": true})

	require.NoError(t, b.OpenRepository(context.Background(), "rubiojr/ergs", ""))
	require.Len(t, *runs, 2)
	last := (*runs)[1]
	require.Equal(t, opener, last.name)
	require.Equal(t, "https://github.com/rubiojr/ergs", last.args[len(last.args)-1])
}

func TestExecBrowser_NoOpener(t *testing.T) {
	b, _ := fakeBrowser(nil, nil)

	err := b.OpenRepository(context.Background(), "", "https://github.com/x/y")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no browser opener available")

	require.Error(t, b.OpenRepository(context.Background(), "", ""))
}
