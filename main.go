package main

import (
	"context"
	"fmt"
	"os"

	"github.com/adrianliechti/wingman-research/pkg/app"
	"github.com/adrianliechti/wingman-research/pkg/client"
	"github.com/adrianliechti/wingman-research/pkg/config"
	"github.com/adrianliechti/wingman-research/pkg/logger"
	"github.com/adrianliechti/wingman-research/pkg/session"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

func main() {
	theme.Auto()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Default()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// the terminal belongs to the UI, so logs only go to the file
	cleanup, err := logger.Setup(cfg, nil)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	defer cleanup()

	s := session.New(client.New(cfg), cfg.Personality)

	app := app.New(ctx, cfg, s)

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
