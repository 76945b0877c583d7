package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	doc2web "github.com/alnah/go-doc2web"
	"github.com/alnah/go-doc2web/internal/config"
	"github.com/alnah/go-doc2web/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Errors are reported by runMain; only verbosity matters here.
	flags, _, _ := parseFlags(os.Args[1:])

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags != nil && flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain parses arguments, runs one conversion and returns the exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, document, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	switch {
	case flags.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.version:
		fmt.Fprintf(env.Stdout, "go-doc2web %s\n", Version)
		return ExitSuccess
	}

	if err := run(ctx, flags, document, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run loads configuration, builds the converter and converts one document.
func run(ctx context.Context, flags *cliFlags, document string, env *Environment) error {
	start := env.Now()

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(configName)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if !cfg.Services.Offline && !envCfg.hasCredentials() && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "warning: service credentials not set, local fallbacks will be used%s\n", hints.ForMissingCredentials())
	}

	logger := newLogger(env.Stderr, flags.common)
	conv, err := doc2web.NewConverter(buildOptions(cfg, envCfg, logger)...)
	if err != nil {
		return fmt.Errorf("configuring converter: %w", err)
	}

	res, err := conv.Convert(ctx, doc2web.Input{DocumentPath: document})
	if err != nil {
		if errors.Is(err, doc2web.ErrWriteArtifact) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	printResult(env, res, flags.common, env.Now().Sub(start))
	if !flags.common.quiet {
		printNextSteps(env.Stdout, cfg.Output.Dir)
	}
	return nil
}

// mergeFlags applies CLI flags on top of the config (CLI wins).
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.offline {
		cfg.Services.Offline = true
	}
}

// buildOptions maps the resolved config and credentials to converter options.
func buildOptions(cfg *config.Config, envCfg *envConfig, logger *slog.Logger) []doc2web.Option {
	opts := []doc2web.Option{
		doc2web.WithLogger(logger),
		doc2web.WithOutputDir(cfg.Output.Dir),
		doc2web.WithArtifactNames(cfg.Output.HTML, cfg.Output.Markup),
		doc2web.WithOffline(cfg.Services.Offline),
		doc2web.WithCredentials(doc2web.Credentials{
			APIKey:    envCfg.APIKey,
			APISecret: envCfg.APISecret,
			TokenURL:  cfg.Auth.TokenURL,
		}),
		doc2web.WithOCREndpoint(cfg.OCR.Endpoint),
		doc2web.WithRenderService(doc2web.RenderService{
			Provider:    cfg.Render.Provider,
			Endpoint:    cfg.Render.Endpoint,
			BaseURL:     cfg.Render.BaseURL,
			Model:       cfg.Render.Model,
			APIKey:      envCfg.RenderAPIKey,
			Temperature: cfg.Render.Temperature,
			TopP:        cfg.Render.TopP,
		}),
		doc2web.WithEscapeText(cfg.Render.EscapeText),
		doc2web.WithAssetPath(cfg.Assets.BasePath),
	}

	if cfg.Services.TimeoutSeconds > 0 {
		opts = append(opts, doc2web.WithTimeout(time.Duration(cfg.Services.TimeoutSeconds)*time.Second))
	}
	if cfg.Assets.Style != "" {
		opts = append(opts, doc2web.WithStyle(cfg.Assets.Style))
	}
	if cfg.Assets.Template != "" {
		opts = append(opts, doc2web.WithTemplate(cfg.Assets.Template))
	}

	return opts
}

// newLogger builds the run logger: debug when verbose, errors only when quiet.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printResult reports the written artifacts.
func printResult(env *Environment, res *doc2web.Result, f commonFlags, elapsed time.Duration) {
	if f.quiet {
		return
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", res.HTMLPath)
	fmt.Fprintf(env.Stdout, "Created %s\n", res.MarkupPath)
	if f.verbose {
		fmt.Fprintf(env.Stdout, "extraction: %s, rendering: %s, run %s (%v)\n",
			res.Extraction, res.Rendering, res.RunID, elapsed.Round(time.Millisecond))
	}
}
