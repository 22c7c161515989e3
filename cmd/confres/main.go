package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/confres/internal/application"
	"github.com/eugenenazirov/confres/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("confres", "Configuration resolver - merges command-line, environment, and file sources into one validated record")
	envFiles := kingpinApp.Flag("env-file", "Path to a .env file, repeatable; consulted in order").Strings()
	yamlFile := kingpinApp.Flag("yaml-file", "Path to a flat YAML configuration file, consulted last").String()
	noEnvironment := kingpinApp.Flag("no-environment", "Exclude the process environment from the source chain").Bool()
	verbose := kingpinApp.Flag("verbose", "Emit debug-level logs").Short('v').Bool()

	resolveCmd := kingpinApp.Command("resolve", "Resolve configuration and print it as .env text on stdout")
	resolveTokens := resolveCmd.Arg("tokens", "KEY=VALUE overrides, highest precedence").Strings()

	checkCmd := kingpinApp.Command("check", "Resolve configuration and report whether it is valid")
	checkTokens := checkCmd.Arg("tokens", "KEY=VALUE overrides, highest precedence").Strings()

	watchCmd := kingpinApp.Command("watch", "Re-resolve configuration periodically and log changes")
	watchInterval := watchCmd.Flag("interval", "Minimum time between resolution passes").Default("5s").Duration()
	watchTokens := watchCmd.Arg("tokens", "KEY=VALUE overrides, highest precedence").Strings()

	command := kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	logger, err := logging.New(*verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := application.Options{
		EnvFiles:        *envFiles,
		YAMLFile:        *yamlFile,
		SkipEnvironment: *noEnvironment,
	}

	switch command {
	case resolveCmd.FullCommand():
		opts.Tokens = *resolveTokens
		runResolve(opts, logger)
	case checkCmd.FullCommand():
		opts.Tokens = *checkTokens
		runCheck(opts, logger)
	case watchCmd.FullCommand():
		opts.Tokens = *watchTokens
		runWatch(opts, *watchInterval, logger)
	}
}

func runResolve(opts application.Options, logger *zap.Logger) {
	app := application.New(opts, logger)

	record, err := app.Resolve()
	if err != nil {
		logger.Fatal("configuration resolution failed", zap.Error(err))
	}

	encoded, err := record.Encode()
	if err != nil {
		logger.Fatal("failed to encode configuration", zap.Error(err))
	}

	fmt.Println(encoded)
}

func runCheck(opts application.Options, logger *zap.Logger) {
	app := application.New(opts, logger)

	if err := app.Check(); err != nil {
		logger.Fatal("configuration check failed", zap.Error(err))
	}
}

func runWatch(opts application.Options, interval time.Duration, logger *zap.Logger) {
	app := application.New(opts, logger)

	ctx, cancel := watchContext(context.Background())
	defer cancel()

	if err := app.Watch(ctx, interval); err != nil {
		logger.Fatal("watch loop failed", zap.Error(err))
	}
	logger.Info("watch stopped")
}

// watchContext derives a context that is cancelled on SIGINT or SIGTERM.
func watchContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
