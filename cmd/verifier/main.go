package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/betcheck/config"
	"github.com/alejandrodnm/betcheck/internal/adapters/apifootball"
	"github.com/alejandrodnm/betcheck/internal/adapters/notify"
	"github.com/alejandrodnm/betcheck/internal/adapters/storage"
	"github.com/alejandrodnm/betcheck/internal/application/verifier"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	registerPath := flag.String("register", "", "register a ticket from a JSON file and exit")
	list := flag.Bool("list", false, "list stored tickets and exit")
	verifyID := flag.String("verify", "", "verify the ticket with this ID")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	store, err := storage.NewSQLiteStore(cfg.Storage.DSN)
	if err != nil {
		slog.Error("failed to open storage", "err", err, "dsn", cfg.Storage.DSN)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch {
	case *registerPath != "":
		registerTicket(ctx, store, *registerPath)

	case *list:
		listTickets(ctx, store)

	case *verifyID != "":
		client := apifootball.NewClient(cfg.API.FootballBase, cfg.API.FootballKey)
		notifier := notify.NewConsole()

		v := verifier.New(verifier.Config{Workers: cfg.Verifier.Workers}, client, store, notifier)
		if _, err := v.VerifyTicket(ctx, *verifyID); err != nil {
			slog.Error("verification failed", "ticket_id", *verifyID, "err", err)
			os.Exit(1)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
