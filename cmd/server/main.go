package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/adrianliechti/wingman-research/pkg/app"
	"github.com/adrianliechti/wingman-research/pkg/client"
	"github.com/adrianliechti/wingman-research/pkg/config"
	"github.com/adrianliechti/wingman-research/pkg/logger"
	"github.com/adrianliechti/wingman-research/pkg/server"
	"github.com/adrianliechti/wingman-research/pkg/session"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

func main() {
	addr := flag.String("addr", ":3000", "address to listen on")
	headless := flag.Bool("headless", false, "log to stderr instead of showing the UI")
	flag.Parse()

	theme.Auto()

	cfg, err := config.Default()

	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	s := session.New(client.New(cfg), cfg.Personality)

	if *headless {
		cleanup, err := logger.Setup(cfg, os.Stderr)

		if err != nil {
			panic("failed to open log: " + err.Error())
		}

		defer cleanup()

		slog.Info("mcp server listening", "addr", *addr, "backend", cfg.BaseURL)

		if err := server.New(s, cfg, nil).ListenAndServe(*addr); err != nil {
			slog.Error("server error", "error", err)
		}

		return
	}

	cleanup, err := logger.Setup(cfg, nil)

	if err != nil {
		panic("failed to open log: " + err.Error())
	}

	defer cleanup()

	// Create TUI and get pre-wired server options
	ui, opts := app.NewServerUI()

	srv := server.New(s, cfg, opts)

	ui.SetServerInfo(*addr)

	go func() {
		if err := srv.ListenAndServe(*addr); err != nil {
			slog.Error("server error", "error", err)
			ui.Stop()
		}
	}()

	// Run TUI (blocks until Ctrl+C)
	if err := ui.Run(); err != nil {
		panic("UI error: " + err.Error())
	}
}
