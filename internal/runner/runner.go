package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/jacoelho/jx/internal/config"
	"github.com/jacoelho/jx/internal/document"
	"github.com/jacoelho/jx/internal/exit"
	"github.com/jacoelho/jx/internal/formatter"
	"github.com/jacoelho/jx/internal/formatter/stdout"
	"github.com/jacoelho/jx/internal/jsonpath"
	"github.com/jacoelho/jx/internal/results"
	"golang.org/x/sync/errgroup"
)

// Runner loads input files and evaluates the configured queries against each.
type Runner struct {
	config    *config.Config
	formatter formatter.Formatter
	logger    *slog.Logger
	stdin     io.Reader
}

// Option configures a Runner.
type Option func(*Runner)

// WithFormatter replaces the default stdout formatter.
func WithFormatter(f formatter.Formatter) Option {
	return func(r *Runner) {
		r.formatter = f
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithStdin sets the reader used for the "-" file argument.
func WithStdin(stdin io.Reader) Option {
	return func(r *Runner) {
		r.stdin = stdin
	}
}

// New creates a new Runner with the provided configuration.
func New(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdin:  os.Stdin,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.formatter == nil {
		r.formatter = stdout.NewWithWriter(os.Stdout, cfg.Compact)
	}
	return r
}

// Run extracts all files and writes their envelopes. It returns nil on
// success, otherwise the exit result to report. Nothing is written when any
// file fails or, in required mode, when any query matched nothing.
func (r *Runner) Run(ctx context.Context) *exit.Result {
	envelopes, err := r.Extract(ctx)
	if err != nil {
		return describe(err)
	}

	if r.config.Required {
		if missing := results.CollectMissing(envelopes); len(missing) > 0 {
			return exit.Error(missingMessage(missing, len(envelopes) > 1))
		}
	}

	if err := r.formatter.Format(envelopes...); err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	return nil
}

// Extract evaluates the queries against every file, in parallel up to the
// configured concurrency. Envelopes are returned in file argument order. On
// failure the error of the earliest failing file is returned.
func (r *Runner) Extract(ctx context.Context) ([]results.Envelope, error) {
	envelopes := make([]results.Envelope, len(r.config.Files))
	errs := make([]error, len(r.config.Files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.config.Concurrency, 1))

	for i, file := range r.config.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return err
			}

			envelope, err := r.extractFile(file)
			if err != nil {
				errs[i] = err
				return err
			}
			envelopes[i] = envelope
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, firstError(errs, err)
	}
	return envelopes, nil
}

func (r *Runner) extractFile(file string) (results.Envelope, error) {
	doc, err := r.load(file)
	if err != nil {
		return results.Envelope{}, err
	}

	res, err := jsonpath.ExtractMany(doc, r.config.Queries, r.config.First)
	if err != nil {
		return results.Envelope{}, err
	}

	for _, q := range res.Queries() {
		m, _ := res.Get(q)
		r.logger.Debug("evaluated query", "file", file, "query", q, "matches", len(m.Nodes))
	}

	return results.Envelope{File: file, Results: res}, nil
}

// firstError prefers, in argument order, an error that is not a cancellation
// caused by another file failing.
func firstError(errs []error, fallback error) error {
	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return fallback
}

func describe(err error) *exit.Result {
	var loadErr *LoadError
	switch {
	case errors.As(err, &loadErr) && errors.Is(err, fs.ErrNotExist):
		return exit.Errorf("File not found: %s\n", loadErr.File)
	case errors.As(err, &loadErr) && errors.Is(err, document.ErrMalformed):
		return exit.Errorf("Invalid JSON in %s: %v\n", loadErr.File, loadErr.Err)
	case errors.As(err, &loadErr) && errors.Is(err, document.ErrMalformedYAML):
		return exit.Errorf("Invalid YAML in %s: %v\n", loadErr.File, loadErr.Err)
	case errors.Is(err, jsonpath.ErrSyntax):
		return exit.Errorf("Invalid query path: %v\n", err)
	default:
		return exit.Errorf("Error: %v\n", err)
	}
}

func missingMessage(missing []results.Missing, withFile bool) string {
	var b strings.Builder
	for _, m := range missing {
		if withFile {
			fmt.Fprintf(&b, "Missing required query matches in %s: %s\n", m.File, strings.Join(m.Queries, ", "))
			continue
		}
		fmt.Fprintf(&b, "Missing required query matches: %s\n", strings.Join(m.Queries, ", "))
	}
	return b.String()
}
