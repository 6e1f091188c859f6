package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/repobrowser/internal/adapter/config"
	"github.com/yourusername/repobrowser/internal/domain"
)

func TestRunConfig(t *testing.T) {
	m := config.NewManagerAt(filepath.Join(t.TempDir(), "config.toml"))
	logPath := filepath.Join(t.TempDir(), "rb.log")

	in := strings.NewReader("2\n1\n" + logPath + "\ndebug\n")
	var out bytes.Buffer

	require.NoError(t, runConfig(m, in, &out))
	require.Contains(t, out.String(), "Configuration saved to")

	cfg, err := m.Load()
	require.NoError(t, err)
	require.Equal(t, "ocean-blue", cfg.UI.Theme)
	require.Equal(t, domain.SortStars, cfg.SortField())
	require.Equal(t, logPath, cfg.Log.File)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestRunConfig_KeepsCurrent(t *testing.T) {
	m := config.NewManagerAt(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, runConfig(m, strings.NewReader("\n\n\n\n"), &bytes.Buffer{}))

	cfg, err := m.Load()
	require.NoError(t, err)
	require.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestRunConfig_IgnoresOutOfRange(t *testing.T) {
	m := config.NewManagerAt(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, runConfig(m, strings.NewReader("9\nabc\n\n\n"), &bytes.Buffer{}))

	cfg, err := m.Load()
	require.NoError(t, err)
	require.Equal(t, "warm", cfg.UI.Theme)
	require.Equal(t, domain.DefaultSortField, cfg.SortField())
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"sort", "theme", "debug"} {
		require.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing --%s", name)
	}
	require.NotNil(t, cmd.Flags().Lookup("query"))

	search, _, err := cmd.Find([]string{"search"})
	require.NoError(t, err)
	require.Equal(t, "search", search.Name())
	require.NotNil(t, search.Flags().Lookup("page"))
}
