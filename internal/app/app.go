// Package app implements the application layer for licnotice.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mjeanroy/licnotice/internal/adapters/watcher"
	"github.com/mjeanroy/licnotice/internal/core/domain"
	"github.com/mjeanroy/licnotice/internal/core/ports"
	"github.com/mjeanroy/licnotice/internal/report"
	"go.trai.ch/zerr"
)

// defaultDebounceWindow coalesces editor save bursts into one regeneration.
const defaultDebounceWindow = 200 * time.Millisecond

// App represents the main application logic.
type App struct {
	records        ports.RecordsLoader
	logger         ports.Logger
	generator      *report.Generator
	writer         *report.Writer
	out            io.Writer
	newWatcher     func() (ports.Watcher, error)
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	records ports.RecordsLoader,
	logger ports.Logger,
	generator *report.Generator,
	writer *report.Writer,
) *App {
	a := &App{
		records:        records,
		logger:         logger,
		generator:      generator,
		writer:         writer,
		out:            os.Stdout,
		debounceWindow: defaultDebounceWindow,
	}
	a.newWatcher = func() (ports.Watcher, error) {
		return watcher.NewWatcher(logger)
	}
	return a
}

// WithOutput redirects the formatted output stream. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWatcherFactory overrides watcher construction. Used for testing.
func (a *App) WithWatcherFactory(fn func() (ports.Watcher, error)) *App {
	a.newWatcher = fn
	return a
}

// WithDebounceWindow overrides the watch debounce window. Used for testing.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// FormatOptions configuration for the Format method.
type FormatOptions struct {
	// RecordsPath is the records file path. Empty triggers discovery.
	RecordsPath string

	// Separator is inserted between blocks. Empty means the default.
	Separator string
}

// Format loads dependency records and prints one formatted block per record,
// in input order, joined by the separator.
func (a *App) Format(_ context.Context, opts FormatOptions) error {
	deps, err := a.records.Load(opts.RecordsPath)
	if err != nil {
		return err
	}

	if len(deps) == 0 {
		_, err = fmt.Fprintln(a.out, domain.EmptyNotice)
		return err
	}

	blocks := make([]string, len(deps))
	for i := range deps {
		blocks[i] = deps[i].Text()
	}

	separator := opts.Separator
	if separator == "" {
		separator = domain.DefaultSeparator
	}

	_, err = fmt.Fprintln(a.out, strings.Join(blocks, separator))
	return err
}

// ReportOptions configuration for the Report method.
type ReportOptions struct {
	// RecordsPath is the records file path. Empty triggers discovery.
	RecordsPath string

	// OutputPath is the notices file path. Empty means the default.
	OutputPath string

	// Separator is inserted between blocks. Empty means the default.
	Separator string

	// TemplatePath reads the per-dependency template from a file.
	TemplatePath string

	// IncludePrivate keeps private dependencies in the notice.
	IncludePrivate bool

	// Watch regenerates the notice whenever the records file changes.
	Watch bool
}

// Report generates the third-party notices file. With Watch enabled it keeps
// regenerating on records file changes until the context is cancelled.
func (a *App) Report(ctx context.Context, opts ReportOptions) error {
	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = domain.DefaultNoticePath
	}

	generate := func() error {
		deps, err := a.records.Load(opts.RecordsPath)
		if err != nil {
			return err
		}

		notice, err := a.generator.Render(ctx, deps, report.Options{
			IncludePrivate: opts.IncludePrivate,
			Separator:      opts.Separator,
			TemplatePath:   opts.TemplatePath,
		})
		if err != nil {
			return err
		}

		written, err := a.writer.Write(outputPath, notice)
		if err != nil {
			return err
		}
		if written {
			a.logger.Info(fmt.Sprintf("wrote %s (%d dependencies)", outputPath, len(deps)))
		}
		return nil
	}

	if err := generate(); err != nil {
		if !opts.Watch {
			return err
		}
		// In watch mode a broken records file is not fatal: report it and
		// wait for the next change.
		a.logger.Error(err)
	}

	if !opts.Watch {
		return nil
	}

	return a.watch(ctx, opts.RecordsPath, generate)
}

// watch regenerates the notice on records file changes until ctx is cancelled.
func (a *App) watch(ctx context.Context, recordsPath string, generate func() error) error {
	if recordsPath == "" {
		discovered, err := a.records.Discover(".")
		if err != nil {
			return err
		}
		recordsPath = discovered
	}

	absPath, err := filepath.Abs(recordsPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	debouncer := watcher.NewDebouncer(a.debounceWindow, func(_ []string) {
		if genErr := generate(); genErr != nil {
			a.logger.Error(genErr)
		}
	})

	if err := w.Start(ctx, filepath.Dir(absPath)); err != nil {
		return err
	}
	a.logger.Info("watching " + recordsPath)

	for event := range w.Events() {
		if filepath.Clean(event.Path) == absPath {
			debouncer.Add(event.Path)
		}
	}

	// The event stream closes when the context is cancelled.
	return nil
}
