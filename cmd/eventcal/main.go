// Command eventcal is the command-line client for the eventcal system.
// Every operation can run against a local database file or, with
// --remote, against an eventcald server exposing the same operations.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mkarpinski/eventcal/pkg/eventcal/config"
	"github.com/mkarpinski/eventcal/pkg/eventcal/dispatch"
	"github.com/mkarpinski/eventcal/pkg/eventcal/observability"
	"github.com/mkarpinski/eventcal/pkg/eventcal/rpc"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "eventcal",
		Usage: "Manage events, venues, people, and enrollments.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "store",
				Usage:   "path of the local database file",
				EnvVars: []string{"EVENTCAL_STORE"},
			},
			&cli.StringFlag{
				Name:    "remote",
				Usage:   "server base URL; when set, operations run remotely",
				EnvVars: []string{"EVENTCAL_REMOTE"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML or JSON configuration file",
				EnvVars: []string{"EVENTCAL_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level: debug, info, warn, error",
				EnvVars: []string{"EVENTCAL_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			initCommand(),
			eventCommand(),
			venueCommand(),
			personCommand(),
			enrollCommand(),
			withdrawCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// invoke resolves configuration, builds a dispatcher, and runs one
// operation on the transport the flags select.
func invoke(c *cli.Context, op string, args []any) (any, error) {
	cfg := config.New(nil)
	if path := c.String("config"); path != "" {
		loaded, err := config.FromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	storePath := c.String("store")
	if storePath == "" {
		storePath = cfg.String(config.KeyStorePath, "calendar.db")
	}
	remoteURL := c.String("remote")
	if remoteURL == "" {
		remoteURL = cfg.String(config.KeyRemoteURL, "")
	}

	logger := setupLogger(c.String("log-level"))
	opts := []dispatch.Option{
		dispatch.WithLogger(logger),
		dispatch.WithMetrics(observability.NewMetricsRecorder(logger)),
		dispatch.WithSpanManager(observability.NewSpanManager()),
	}
	remote := remoteURL != ""
	if remote {
		opts = append(opts, dispatch.WithRemote(rpc.NewClient(remoteURL)))
	}

	d := dispatch.New(dispatch.Config{StorePath: storePath}, opts...)
	return d.Call(c.Context, op, args, remote)
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// optArg returns the flag value, or nil when the flag was not given.
// nil means "leave unchanged" in modify operations.
func optArg(c *cli.Context, name string) any {
	if c.IsSet(name) {
		return c.String(name)
	}
	return nil
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create the database schema.",
		Action: func(c *cli.Context) error {
			_, err := invoke(c, dispatch.OpInit, nil)
			return err
		},
	}
}
