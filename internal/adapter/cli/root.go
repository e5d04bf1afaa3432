// Package cli implements sailctl, a terminal front end for the sailing
// listing pipeline. It shares configuration, sources and the listing use
// case with the HTTP service.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/sailing-search/sailing-listing-service/internal/adapter/source"
	"github.com/sailing-search/sailing-listing-service/internal/config"
	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/logger"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
	"github.com/sailing-search/sailing-listing-service/internal/usecase"
)

// ProgressFunc runs action while showing title to the user.
// It returns once action has completed.
type ProgressFunc func(ctx context.Context, title string, action func())

// App holds the collaborators shared by every sailctl command.
type App struct {
	out        io.Writer
	errOut     io.Writer
	loadConfig func() (*config.Config, error)
	sources    func(config.SourceConfig) []domain.SailingSource
	progress   ProgressFunc
	clock      timeutil.Clock

	verbose bool
	quiet   bool
}

// Option configures an App.
type Option func(*App)

// WithOutput redirects command output and diagnostics.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithConfigLoader replaces config.Load.
func WithConfigLoader(load func() (*config.Config, error)) Option {
	return func(a *App) {
		a.loadConfig = load
	}
}

// WithSources replaces source selection from configuration.
func WithSources(fn func(config.SourceConfig) []domain.SailingSource) Option {
	return func(a *App) {
		a.sources = fn
	}
}

// WithProgress replaces the terminal spinner.
func WithProgress(p ProgressFunc) Option {
	return func(a *App) {
		a.progress = p
	}
}

// WithClock sets the clock used for calendar timestamps.
func WithClock(c timeutil.Clock) Option {
	return func(a *App) {
		a.clock = c
	}
}

// NewApp creates an App wired to the real environment unless overridden.
func NewApp(opts ...Option) *App {
	a := &App{
		out:        os.Stdout,
		errOut:     os.Stderr,
		loadConfig: config.Load,
		sources:    source.FromConfig,
		progress:   spinnerProgress,
		clock:      timeutil.NewRealClock(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RootCommand builds the sailctl command tree.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sailctl",
		Short: "Browse cruise sailings from the terminal",
		Long: `sailctl loads the sailing list, removes duplicates, sorts it
and shows one page at a time. Pages can also be exported to an .ics calendar.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log pipeline details to stderr")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Disable the progress spinner")

	root.AddCommand(
		a.newListCommand(),
		a.newExportCommand(),
		a.newSortOptionsCommand(),
	)
	return root
}

// Execute runs sailctl and exits non-zero on failure.
func Execute() {
	app := NewApp()
	if err := app.RootCommand().Execute(); err != nil {
		fmt.Fprintln(app.errOut, "Error:", err)
		os.Exit(1)
	}
}

// listing loads configuration, fetches sailings behind the progress
// indicator and runs the listing pipeline.
func (a *App) listing(ctx context.Context, flags *listFlags) (*config.Config, *domain.ListingPage, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	opts, err := flags.options(cfg.Listing.PageSize)
	if err != nil {
		return nil, nil, err
	}

	logCfg := cfg.LoggerConfig()
	if a.verbose {
		logCfg.Level = "debug"
	}
	log := logger.NewWithOutput(logCfg, a.errOut).WithComponent("cli")

	uc := usecase.NewSailingListUseCase(a.sources(cfg.Sources), &usecase.Config{
		FetchTimeout: cfg.Timeouts.Fetch,
		PageSize:     cfg.Listing.PageSize,
	}, log)

	var (
		page    *domain.ListingPage
		listErr error
	)
	run := func() { page, listErr = uc.List(ctx, opts) }
	if a.quiet {
		run()
	} else {
		a.progress(ctx, "Loading sailings...", run)
	}
	if listErr != nil {
		return nil, nil, fmt.Errorf("could not load sailings: %w", listErr)
	}
	return cfg, page, nil
}

// spinnerProgress shows a huh spinner until action returns.
// Spinner failures (e.g., no terminal) are ignored; action still completes.
func spinnerProgress(ctx context.Context, title string, action func()) {
	done := make(chan struct{})
	sctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer close(done)
		defer cancel()
		action()
	}()

	_ = spinner.New().
		Title(title).
		Context(sctx).
		Run()

	<-done
}
