package main

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandelzoom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCServer_RendersPNG(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := newRPCServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	done := make(chan error, 1)
	go func() { done <- srv.Serve(lis) }()

	conn, err := net.Dial("tcp", lis.Addr().String())
	require.NoError(t, err)
	ep := irpc.NewEndpoint(conn)
	t.Cleanup(func() { ep.Close() })

	client, err := mandel.NewImageProviderIrpcClient(ep)
	require.NoError(t, err)

	data, err := client.RenderPNG(mandel.DefaultViewport(), 64, 48)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	// the websocket size cap applies to rpc requests too
	_, err = client.RenderPNG(mandel.DefaultViewport(), maxSide+1, 48)
	assert.ErrorContains(t, err, "invalid size")

	require.NoError(t, srv.Close())
	assert.ErrorIs(t, <-done, irpc.ErrServerClosed)
}
