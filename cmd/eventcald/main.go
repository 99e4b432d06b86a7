// Command eventcald serves the eventcal operation surface over HTTP.
// Every request is executed against the configured database file, one
// request to completion at a time, exactly as the local client would.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mkarpinski/eventcal/pkg/eventcal/config"
	"github.com/mkarpinski/eventcal/pkg/eventcal/dispatch"
	"github.com/mkarpinski/eventcal/pkg/eventcal/observability"
	"github.com/mkarpinski/eventcal/pkg/eventcal/rpc"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", "", "YAML or JSON configuration file")
		storePath  = flag.String("store", "", "path of the database file")
		listenAddr = flag.String("addr", "", "listen address")
		logLevel   = flag.String("log-level", "", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if err := run(*configPath, *storePath, *listenAddr, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath, storePath, listenAddr, logLevel string) error {
	cfg := config.New(nil)
	if configPath != "" {
		loaded, err := config.FromFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if storePath == "" {
		storePath = firstNonEmpty(os.Getenv("EVENTCAL_STORE"), cfg.String(config.KeyStorePath, "calendar.db"))
	}
	if listenAddr == "" {
		listenAddr = firstNonEmpty(os.Getenv("EVENTCAL_ADDR"), cfg.String(config.KeyListenAddr, "localhost:8000"))
	}
	if logLevel == "" {
		logLevel = firstNonEmpty(os.Getenv("EVENTCAL_LOG_LEVEL"), cfg.String(config.KeyLogLevel, "info"))
	}

	logger := setupLogger(logLevel)

	d := dispatch.New(dispatch.Config{StorePath: storePath},
		dispatch.WithLogger(logger),
		dispatch.WithMetrics(observability.NewMetricsRecorder(logger)),
		dispatch.WithSpanManager(observability.NewSpanManager()),
	)
	server := rpc.NewServer(d, rpc.WithServerLogger(logger))

	logger.Info("serving",
		slog.String("addr", listenAddr),
		slog.String("store", storePath),
	)
	return http.ListenAndServe(listenAddr, server.Handler())
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
