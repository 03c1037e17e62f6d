// Package main is the entry point for the sweepwatch dashboard.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sweepwatch/engine/internal/config"
	"github.com/sweepwatch/engine/internal/ingest"
	"github.com/sweepwatch/engine/internal/store"
	"github.com/sweepwatch/engine/internal/ui"
	"github.com/sweepwatch/engine/internal/views"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize structured logger
	logger, closeLog, err := setupLogger(cfg)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	slog.Info("sweepwatch starting", "version", "1.0.0")
	slog.Info("config_loaded",
		"source_url", cfg.SourceURL,
		"poll_interval", cfg.PollInterval,
		"page_size", cfg.PageSize,
		"whale_min_usd", cfg.WhaleMinUSD,
		"whale_window", cfg.WhaleWindow,
		"stream_ws_url", cfg.StreamWSURL,
		"enable_tui", cfg.EnableTUI,
	)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	client := ingest.NewClient(cfg.SourceURL, cfg.HTTPTimeout)
	tracker := store.NewTracker()
	poller := ingest.NewPoller(client, tracker, cfg.PollInterval)

	opts := views.Options{
		PageSize:    cfg.PageSize,
		WhaleMinUSD: cfg.WhaleMinUSD,
		WhaleWindow: cfg.WhaleWindow,
	}

	if cfg.EnableTUI {
		runDashboard(ctx, cancel, cfg, poller, opts, sigChan)
	} else {
		runHeadless(ctx, poller, opts, sigChan)
	}

	slog.Info("shutdown_complete")
}

// runDashboard wires the poller and optional stream into the TUI and
// blocks until quit.
func runDashboard(ctx context.Context, cancel context.CancelFunc, cfg *config.Config,
	poller *ingest.Poller, opts views.Options, sigChan chan os.Signal) {

	app := ui.NewApp(opts)
	poller.Paused = app.Paused
	poller.OnSnapshot = app.ApplySnapshot
	poller.OnError = app.SetSourceError

	go poller.Start(ctx)

	if cfg.StreamWSURL != "" {
		stream := ingest.NewStream(cfg.StreamWSURL, app.SetLiveSweep)
		stream.Start(ctx)
		defer stream.Stop()
	}

	// Run TUI in a goroutine so signals still reach us.
	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	select {
	case sig := <-sigChan:
		slog.Info("shutdown_signal_received", "signal", sig.String())
		app.Stop()
		<-done
	case err := <-done:
		if err != nil {
			slog.Error("tui_error", "error", err)
		}
	}
	cancel()
}

// runHeadless polls and logs snapshot summaries without a terminal UI.
func runHeadless(ctx context.Context, poller *ingest.Poller, opts views.Options, sigChan chan os.Signal) {
	poller.OnSnapshot = func(snap store.Snapshot) {
		sess := views.NewSession()
		sess.SwitchTab(views.TabWhales)
		whales := views.Build(snap, sess, time.Now(), opts)
		slog.Info("snapshot",
			"sweeps", len(snap.Sweeps),
			"expiring", len(snap.Expiring),
			"whales", whales.Total,
		)
	}
	poller.OnError = func(err error) {
		slog.Warn("source_unavailable", "error", err)
	}

	go poller.Start(ctx)

	sig := <-sigChan
	slog.Info("shutdown_signal_received", "signal", sig.String())
}

// setupLogger creates a structured logger with the configured level.
// In TUI mode stdout belongs to the terminal UI, so logs go to the
// configured file, or are discarded when none is set.
func setupLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var w io.Writer = os.Stdout
	closeLog := func() {}
	if cfg.EnableTUI {
		if cfg.LogFile != "" {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, err
			}
			w = f
			closeLog = func() { _ = f.Close() }
		} else {
			w = io.Discard
		}
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("2006-01-02 15:04:05"))
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts)), closeLog, nil
}
