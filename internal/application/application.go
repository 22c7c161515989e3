package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/eugenenazirov/confres/internal/config"
	"github.com/eugenenazirov/confres/internal/resolver"
	"github.com/eugenenazirov/confres/internal/snapshot"
	"github.com/eugenenazirov/confres/internal/source"
)

// Options capture the source mediums selected on the command line.
type Options struct {
	// Tokens are the positional KEY=VALUE arguments fed to the
	// command-line source. Always the highest-precedence source.
	Tokens []string

	// EnvFiles are paths to `.env` files, consulted in the given order
	// after the process environment.
	EnvFiles []string

	// YAMLFile is an optional path to a flat YAML mapping, consulted last.
	YAMLFile string

	// SkipEnvironment excludes the process environment from the chain.
	SkipEnvironment bool
}

// App bundles the resolver built from the CLI options together with the
// holder that publishes the latest record in watch mode.
type App struct {
	resolver *resolver.Resolver
	holder   *snapshot.Holder
	logger   *zap.Logger
}

// New assembles the source chain described by opts and wraps it in a
// ready-to-run application.
func New(opts Options, logger *zap.Logger) *App {
	return &App{
		resolver: resolver.New(logger, BuildSources(opts)...),
		holder:   snapshot.NewHolder(),
		logger:   logger,
	}
}

// BuildSources assembles the ordered source chain: command-line tokens
// first, then the process environment, then `.env` files, then the YAML
// file. Earlier sources mask later ones key by key.
func BuildSources(opts Options) []source.Source {
	sources := make([]source.Source, 0, len(opts.EnvFiles)+3)

	sources = append(sources, source.NewCommandLine(opts.Tokens))
	if !opts.SkipEnvironment {
		sources = append(sources, source.NewEnvironment())
	}
	for _, path := range opts.EnvFiles {
		sources = append(sources, source.NewDotEnvFile(path))
	}
	if opts.YAMLFile != "" {
		sources = append(sources, source.NewYAMLFile(opts.YAMLFile))
	}

	return sources
}

// Resolve runs one resolution pass and returns the validated record.
func (a *App) Resolve() (config.Record, error) {
	record, err := a.resolver.Resolve()
	if err != nil {
		return config.Record{}, fmt.Errorf("resolve configuration: %w", err)
	}
	return record, nil
}

// Check runs one resolution pass and reports only its outcome.
func (a *App) Check() error {
	record, err := a.Resolve()
	if err != nil {
		return err
	}

	a.logger.Info("configuration is valid",
		zap.String("db_name", record.DBName),
		zap.String("base_url", record.BaseURL),
		zap.Int("client_id", record.ClientID),
	)
	return nil
}

// Snapshot returns the holder carrying the latest record published by Watch.
func (a *App) Snapshot() *snapshot.Holder {
	return a.holder
}

// Watch re-resolves the sources until ctx is cancelled, at most once per
// interval, and publishes every changed record to the snapshot holder.
// Resolution failures inside the loop are logged and retried on the next
// tick; only cancellation ends the loop.
func (a *App) Watch(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("watch wait: %w", err)
		}

		record, err := a.Resolve()
		if err != nil {
			a.logger.Error("resolution failed, will retry", zap.Error(err))
			continue
		}

		if a.holder.Publish(record) {
			a.logger.Info("configuration changed",
				zap.String("db_name", record.DBName),
				zap.String("base_url", record.BaseURL),
				zap.Int("client_id", record.ClientID),
			)
		}
	}
}
