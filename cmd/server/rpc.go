package main

import (
	"log/slog"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/internal/logging"
	"github.com/marben/mandelzoom/render"
)

// newRPCServer serves mandel.ImageProvider to irpc clients such as
// `cliclient --server`. Requests share the websocket sessions' size cap.
func newRPCServer(logger *slog.Logger) *irpc.Server {
	logger = logger.With("transport", "irpc")
	provider := render.PNGProvider{
		Renderer: render.Renderer{OnRender: logging.RenderHook(logger)},
		MaxSide:  maxSide,
	}
	return irpc.NewServer(
		irpc.WithServices(mandel.NewImageProviderIrpcService(provider)),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			logger.Info("rpc client connected", "remote", ep.RemoteAddr().String())
		}),
	)
}
