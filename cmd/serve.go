package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/launchora/internal/server"
	"github.com/desertthunder/launchora/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the static asset server until SIGINT or SIGTERM.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.serveConfig(cmd)
	if err != nil {
		return err
	}

	level, err := shared.ParseLogLevel(config.Log.Level)
	if err != nil {
		return err
	}
	shared.SetLogLevel(r.logger, level)

	root := config.Server.Root
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		r.logger.Warn("site root is not a readable directory, requests will fail", "root", root)
	}

	srv, err := server.New(server.Options{
		Addr:            config.Server.Addr(),
		Assets:          os.DirFS(root),
		Index:           config.Server.Index,
		CacheMaxAge:     config.Server.CacheMaxAge.Duration,
		ShutdownTimeout: config.Server.ShutdownTimeout.Duration,
		Logger:          shared.WithLogger(r.logger, "component", "server"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logger.Info("serving site", "root", root, "addr", srv.Addr())
	return srv.ListenAndServe(ctx)
}

// serveConfig resolves the server settings. The port comes from --port, then PORT, then the config file.
func (r *Runner) serveConfig(cmd *cli.Command) (*shared.Config, error) {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("host") {
		config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		config.Server.Port = int(cmd.Int("port"))
	} else if config.Server.Port, err = shared.PortFromEnv(config.Server.Port); err != nil {
		return nil, err
	}
	if cmd.IsSet("root") {
		config.Server.Root = cmd.String("root")
	}
	if cmd.IsSet("log-level") {
		config.Log.Level = cmd.String("log-level")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
