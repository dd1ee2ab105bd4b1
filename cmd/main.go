package main

import (
	"context"
	"os"

	"github.com/desertthunder/launchora/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{
		Config:     shared.DefaultConfig(),
		ConfigPath: "config.toml",
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "launchora",
		Usage:    "Serve and preview the Launchora marketing site",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
