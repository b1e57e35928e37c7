// Command glotd serves the glot translation API over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/veznalabs/glot"
	"github.com/veznalabs/glot/backend"
	"github.com/veznalabs/glot/cache"
	"github.com/veznalabs/glot/httpapi"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("glotd", flag.ContinueOnError)
	configPath := fs.String("config", "glot.yaml", "Path to YAML configuration file")
	listen := fs.String("listen", "", "Listen address override (e.g., :8080)")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Printf("%s %s\n", glot.Name, glot.FullVersion())
		return nil
	}

	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg, err := httpapi.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	logger := newLogger()

	opts := []glot.Option{glot.WithLogger(logger)}
	if c := buildCache(cfg.Cache, logger); c != nil {
		opts = append(opts, glot.WithCache(c))
	}

	orch := glot.New(buildFactory(cfg.Backend), opts...)
	if !orch.Available() {
		logger.Warn().Msg("no translation backend configured; all requests will fail")
	}

	srv := httpapi.NewServer(orch, cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// buildCache picks Redis when configured, falling back to the in-memory cache.
func buildCache(cfg httpapi.CacheConfig, logger zerolog.Logger) glot.TranslationCache {
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{
			URL: cfg.RedisURL,
			TTL: cfg.TTLSeconds,
		})
		if err == nil {
			return rc
		}
		logger.Warn().Err(err).Msg("redis cache unavailable, using in-memory cache")
	}

	if cfg.TTLSeconds > 0 || cfg.MaxEntries > 0 {
		return cache.NewInMemoryCacheSized(cfg.TTLSeconds, cfg.MaxEntries)
	}
	return nil
}

// buildFactory maps the configured backend kind to a glot.BackendFactory.
// Kind "none" returns nil, marking the capability unavailable.
func buildFactory(cfg httpapi.BackendConfig) glot.BackendFactory {
	if cfg.Kind == "none" {
		return nil
	}

	return func() (glot.Backend, error) {
		var b glot.Backend

		switch cfg.Kind {
		case "openai":
			b = backend.NewOpenAIBackend(backend.OpenAIConfig{
				APIKey: cfg.OpenAIAPIKey,
				Model:  cfg.OpenAIModel,
			})
		case "mobile":
			b = backend.NewMobileBackend(backend.MobileConfig{})
		default:
			b = backend.NewGTXBackend(backend.GTXConfig{})
		}

		if cfg.RequestsPerMinute > 0 {
			b = glot.NewRateLimitedBackend(b, glot.RateLimitConfig{
				RequestsPerMinute: cfg.RequestsPerMinute,
			})
		}
		if cfg.Retries > 0 {
			rc := glot.DefaultRetryConfig()
			rc.MaxRetries = cfg.Retries
			b = glot.NewRetryingBackend(b, rc)
		}

		return b, nil
	}
}
