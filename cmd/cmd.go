// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
	}
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "host",
			Usage: "Interface to listen on (default all)",
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Port to listen on, overrides PORT and the config file",
		},
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "Directory holding the site files",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
		},
	}
}

// serveCommand serves the static site
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Serve the site directory over HTTP",
		Flags:  serveFlags(),
		Action: r.Serve,
	}
}

// zoomCommand opens the terminal zoom preview
func zoomCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "zoom",
		Usage: "Preview the portfolio zoom viewer in the terminal",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "Image path to list in the picker (repeatable)",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "File the preview logs to",
				Value: "./tmp/launchora-zoom.log",
			},
		},
		Action: r.Zoom,
	}
}

// configCommand manages the configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration file operations",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the file",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON instead of TOML",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.ConfigShow,
			},
		},
	}
}
