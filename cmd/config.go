package main

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/launchora/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration file.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("Config written to %s\n", path)
}

// ConfigShow prints the effective configuration as TOML or JSON.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(config, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Configuration")
	if err := toml.NewEncoder(r.output).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
