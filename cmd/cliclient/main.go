// cliclient renders a single view of the Mandelbrot set without a window and
// saves it as a PNG file. With --server the image is rendered by a running
// server over irpc instead of locally.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/marben/irpc"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/internal/logging"
	"github.com/marben/mandelzoom/render"
	"github.com/spf13/cobra"
)

var errEmptySelection = errors.New("zoom selection has zero width or height")

type options struct {
	Landmark      string
	Bounds        []float64
	Zoom          []int
	Width, Height int
	Output        string
	Server        string
	Debug         bool
}

func main() {
	opts := options{Width: 640, Height: 480, Output: "mandel.png"}

	rootCmd := &cobra.Command{
		Use:   "cliclient",
		Short: "Render a Mandelbrot view to a PNG file",
		Example: `  # the full set
  cliclient -o full.png

  # a landmark at 1920x1080
  cliclient --landmark seahorse-valley --width 1920 --height 1080

  # zoom into the centre half of the default view, like a drag in the viewer
  cliclient --width 320 --height 240 --zoom 80,60,240,180

  # let a running server do the rendering
  cliclient --server localhost:8081 --landmark triple-spiral`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	rootCmd.Flags().StringVarP(&opts.Landmark, "landmark", "l", "", "Named landmark to render")
	rootCmd.Flags().Float64SliceVar(&opts.Bounds, "bounds", nil, "Explicit viewport x_start,x_end,y_start,y_end")
	rootCmd.Flags().IntSliceVar(&opts.Zoom, "zoom", nil, "Pixel selection x0,y0,x1,y1 to zoom into before rendering")
	rootCmd.Flags().IntVar(&opts.Width, "width", opts.Width, "Image width")
	rootCmd.Flags().IntVar(&opts.Height, "height", opts.Height, "Image height")
	rootCmd.Flags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output PNG file")
	rootCmd.Flags().StringVarP(&opts.Server, "server", "s", "", "Render on the irpc server at this address")
	rootCmd.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.MarkFlagsMutuallyExclusive("landmark", "bounds")

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(opts options) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.Setup(os.Stderr, level)

	vp, err := resolveViewport(opts)
	if err != nil {
		return err
	}

	var provider mandel.ImageProvider = render.PNGProvider{
		Renderer: render.Renderer{OnRender: logging.RenderHook(logger)},
	}
	if opts.Server != "" {
		logger.Info("connecting", "server", opts.Server)
		conn, err := net.Dial("tcp", opts.Server)
		if err != nil {
			return fmt.Errorf("failed to connect to server: %w", err)
		}
		ep := irpc.NewEndpoint(conn)
		defer ep.Close()

		client, err := mandel.NewImageProviderIrpcClient(ep)
		if err != nil {
			return fmt.Errorf("failed to create ImageProvider client: %w", err)
		}
		provider = client
	}

	logger.Info("rendering", "width", opts.Width, "height", opts.Height, logging.Viewport("viewport", vp))
	data, err := provider.RenderPNG(vp, opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Info("saved", "file", opts.Output)
	return nil
}

// resolveViewport picks the start viewport from --landmark or --bounds and
// applies --zoom on top of it.
func resolveViewport(opts options) (mandel.Viewport, error) {
	if err := render.CheckSize(opts.Width, opts.Height); err != nil {
		return mandel.Viewport{}, err
	}

	vp, err := mandel.Landmark(opts.Landmark)
	if err != nil {
		return mandel.Viewport{}, err
	}
	if opts.Bounds != nil {
		if len(opts.Bounds) != 4 {
			return mandel.Viewport{}, fmt.Errorf("--bounds needs 4 values, got %d", len(opts.Bounds))
		}
		vp = mandel.Viewport{XStart: opts.Bounds[0], XEnd: opts.Bounds[1], YStart: opts.Bounds[2], YEnd: opts.Bounds[3]}
		if err := vp.Check(); err != nil {
			return mandel.Viewport{}, err
		}
	}

	if opts.Zoom != nil {
		if len(opts.Zoom) != 4 {
			return mandel.Viewport{}, fmt.Errorf("--zoom needs 4 values, got %d", len(opts.Zoom))
		}
		sel := image.Rect(opts.Zoom[0], opts.Zoom[1], opts.Zoom[2], opts.Zoom[3])
		if sel.Empty() {
			return mandel.Viewport{}, fmt.Errorf("%w: %s", errEmptySelection, sel)
		}
		vp = vp.Zoom(sel, opts.Width, opts.Height)
	}
	return vp, nil
}
