// server serves the Mandelbrot viewer to browsers. Each websocket connection
// gets its own session: the page sends resize and pointer events, the server
// renders and streams the framebuffer back as tiles.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/marben/irpc"
	"github.com/marben/mandelzoom/config"
	"github.com/marben/mandelzoom/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type options struct {
	ConfigFile string
	Addr       string
	RPCAddr    string
	Landmark   string
	Debug      bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "server",
		Short: "Serve the Mandelbrot viewer over http and websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(opts.ConfigFile)
			if err != nil {
				return err
			}
			if err := cfg.Apply(config.Overrides{Addr: opts.Addr, RPCAddr: opts.RPCAddr, Landmark: opts.Landmark, Debug: opts.Debug}); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	rootCmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Path to config.toml (default: user config dir)")
	rootCmd.Flags().StringVarP(&opts.Addr, "addr", "a", "", "Listen address (default from config, :8080)")
	rootCmd.Flags().StringVar(&opts.RPCAddr, "rpc-addr", "", "irpc listen address (default from config, :8081)")
	rootCmd.Flags().StringVarP(&opts.Landmark, "landmark", "l", "", "Landmark new sessions start at")
	rootCmd.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging")

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := logging.Setup(os.Stderr, level)

	start, err := cfg.Viewport()
	if err != nil {
		return err
	}

	srv := webServer(cfg.Server.Addr, newHub(start, logger))

	var (
		rpcSrv *irpc.Server
		rpcLis net.Listener
	)
	if cfg.Server.RPCAddr != "" {
		rpcLis, err = net.Listen("tcp", cfg.Server.RPCAddr)
		if err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}
		rpcSrv = newRPCServer(logger)
	}

	g, ctx := errgroup.WithContext(ctx)
	// websocket sessions end with the server
	srv.BaseContext = func(net.Listener) context.Context { return ctx }
	g.Go(func() error {
		logger.Info("listening", "url", "http://"+displayAddr(cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer: %w", err)
		}
		return nil
	})

	if rpcLis != nil {
		g.Go(func() error {
			defer rpcLis.Close()
			logger.Info("rpc listening", "addr", rpcLis.Addr().String())
			if err := rpcSrv.Serve(rpcLis); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
				return fmt.Errorf("irpc server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		if rpcSrv != nil {
			if err := rpcSrv.Close(); err != nil {
				logger.Warn("closing rpc server", "err", err)
			}
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
