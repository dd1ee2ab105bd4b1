package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/launchora/internal/gesture"
	"github.com/desertthunder/launchora/internal/shared"
	"github.com/desertthunder/launchora/internal/ui"
	"github.com/urfave/cli/v3"
)

// Zoom launches the terminal zoom preview.
func (r *Runner) Zoom(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(cmd.String("log"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, log.DebugLevel)
	r.SetLogger(fileLogger)

	model := ui.NewModel(imagesFromPaths(cmd.StringSlice("image")), fileLogger)
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running zoom preview: %w", err)
	}

	return nil
}

// imagesFromPaths builds picker entries from image paths, using the file name as alt text.
func imagesFromPaths(paths []string) []gesture.Image {
	images := make([]gesture.Image, 0, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		images = append(images, gesture.Image{
			Src: p,
			Alt: strings.ReplaceAll(name, "-", " "),
		})
	}
	return images
}
