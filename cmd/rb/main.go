package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yourusername/repobrowser/internal/adapter/config"
	"github.com/yourusername/repobrowser/internal/adapter/github"
	"github.com/yourusername/repobrowser/internal/adapter/logging"
	"github.com/yourusername/repobrowser/internal/domain"
	"github.com/yourusername/repobrowser/internal/ui"
	"github.com/yourusername/repobrowser/internal/ui/theme"
	"github.com/yourusername/repobrowser/internal/usecase"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	sort  string
	theme string
	debug bool
}

func newRootCmd() *cobra.Command {
	var opts globalOptions
	var query string

	rootCmd := &cobra.Command{
		Use:   "rb",
		Short: "Repo Browser - search GitHub repositories from the terminal",
		Long: `Repo Browser (rb) is an interactive terminal UI for searching public
GitHub repositories. Results update as you type and can be sorted and paged.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBrowse(cmd.Context(), opts, query)
			if err != nil {
				ui.PrintError(err.Error())
			}
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.sort, "sort", "s", "", "Sort field: "+sortFieldList())
	rootCmd.PersistentFlags().StringVar(&opts.theme, "theme", "", "Theme: "+strings.Join(theme.GetThemeNames(), ", "))
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log at debug level")
	rootCmd.Flags().StringVarP(&query, "query", "q", "", "Initial search text")

	rootCmd.AddCommand(searchCmd(&opts))
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

func searchCmd(opts *globalOptions) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "search [terms...]",
		Short: "Print one page of search results and exit",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			err := runSearch(cmd.Context(), *opts, query, page, cmd.OutOrStdout())
			if err != nil {
				ui.PrintError(err.Error())
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")

	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Configure Repo Browser settings",
		Long:  `Interactive configuration wizard for theme, default sort and logging.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgManager, err := config.NewManager()
			if err != nil {
				return err
			}
			return runConfig(cfgManager, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
		},
	}
}

// app holds everything built from configuration.
type app struct {
	cfg    *domain.Config
	log    zerolog.Logger
	closer io.Closer
	client *github.Client
}

func setup(opts globalOptions) (*app, error) {
	cfgManager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg, err := cfgManager.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.sort != "" {
		if _, err := domain.ParseSortField(opts.sort); err != nil {
			return nil, err
		}
		cfg.UI.DefaultSort = opts.sort
	}
	if opts.theme != "" {
		cfg.UI.Theme = opts.theme
	}
	if !theme.IsKnownTheme(cfg.UI.Theme) {
		ui.PrintWarning(fmt.Sprintf("unknown theme %q, using %q", cfg.UI.Theme, theme.Warm.Name))
	}
	theme.SetGlobalTheme(cfg.UI.Theme)

	log, closer, err := logging.FromConfig(cfg.Log, opts.debug)
	if err != nil {
		return nil, err
	}

	client, err := github.NewClient(github.ClientConfig{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent + "/" + version,
	})
	if err != nil {
		closer.Close()
		return nil, err
	}

	log.Info().
		Str("config", cfgManager.ConfigPath()).
		Str("base_url", cfg.API.BaseURL).
		Str("sort", cfg.UI.DefaultSort).
		Str("theme", cfg.UI.Theme).
		Msg("repobrowser starting")

	return &app{cfg: cfg, log: log, closer: closer, client: client}, nil
}

func runBrowse(ctx context.Context, opts globalOptions, query string) error {
	a, err := setup(opts)
	if err != nil {
		return err
	}
	defer a.closer.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := usecase.NewSearchSession(a.client, a.log, domain.NewSearchCriteria(query, a.cfg.SortField(), 1))
	model := ui.NewSearchModel(ui.SearchModelOptions{
		Session: session,
		Browser: github.NewExecBrowser(),
		Logger:  a.log,
		Context: ctx,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}

	a.log.Info().Msg("repobrowser exiting")
	return nil
}

func runSearch(ctx context.Context, opts globalOptions, query string, page int, out io.Writer) error {
	a, err := setup(opts)
	if err != nil {
		return err
	}
	defer a.closer.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	resp, err := usecase.NewSearchRepositoriesUseCase(a.client).Execute(ctx, usecase.SearchRepositoriesRequest{
		Text: query,
		Sort: a.cfg.SortField(),
		Page: page,
	})
	if err != nil {
		a.log.Warn().Err(err).Str("kind", domain.ErrorKindOf(err).String()).Msg("search failed")
		return err
	}

	ui.PrintInfo(resp.Message)
	ui.PrintResult(out, resp.Result, 100)
	return nil
}

func sortFieldList() string {
	fields := domain.AllSortFields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
