// mandelbrot is the desktop viewer: drag with the left button to zoom into a
// rectangle, right click to reset, Q or Escape to quit.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/hajimehoshi/ebiten/v2"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/config"
	"github.com/marben/mandelzoom/internal/logging"
	"github.com/marben/mandelzoom/render"
	"github.com/marben/mandelzoom/session"
	"github.com/spf13/cobra"
)

type options struct {
	ConfigFile    string
	Landmark      string
	Width, Height int
	Debug         bool
	ListLandmarks bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Explore the Mandelbrot set",
		Long: `Opens a window showing the Mandelbrot set.
Drag a rectangle with the left mouse button to zoom into it,
right click to return to the full view, press Q or Escape to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ListLandmarks {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(mandel.LandmarkNames(), "\n"))
				return nil
			}
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	rootCmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Path to config.toml (default: user config dir)")
	rootCmd.Flags().StringVarP(&opts.Landmark, "landmark", "l", "", "Start at a named landmark")
	rootCmd.Flags().IntVar(&opts.Width, "width", 0, "Initial window width")
	rootCmd.Flags().IntVar(&opts.Height, "height", 0, "Initial window height")
	rootCmd.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&opts.ListLandmarks, "list-landmarks", false, "Print landmark names and exit")

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies flags on top of the config file.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.LoadFile(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(config.Overrides{
		Landmark: opts.Landmark,
		Width:    opts.Width,
		Height:   opts.Height,
		Debug:    opts.Debug,
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := logging.Setup(os.Stderr, level)

	start, err := cfg.Viewport()
	if err != nil {
		return err
	}

	s := session.New(
		session.WithViewport(start),
		session.WithRenderer(render.Renderer{OnRender: logging.RenderHook(logger)}),
	)
	v := newViewer(s, logger)

	ebiten.SetWindowTitle("Mandelbrot")
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowSizeLimits(config.MinWindowWidth, config.MinWindowHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting viewer",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		logging.Viewport("viewport", start),
	)
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	slog.Debug("viewer closed")
	return nil
}
