package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"image"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/render"
)

const tileSize = 64

// sendFrame writes the frame header followed by one binary message per tile.
func sendFrame(ctx context.Context, c *websocket.Conn, fb *render.Framebuffer, vp mandel.Viewport) error {
	tiles := splitRectNoClip(fb.Bounds(), tileSize, tileSize)
	hdr := frameMessage{
		Type:   "frame",
		Width:  fb.Width(),
		Height: fb.Height(),
		Tiles:  len(tiles),
		Viewport: viewportJSON{
			XStart: vp.XStart,
			XEnd:   vp.XEnd,
			YStart: vp.YStart,
			YEnd:   vp.YEnd,
		},
	}
	if err := wsjson.Write(ctx, c, hdr); err != nil {
		return err
	}

	var buf []byte
	for _, t := range tiles {
		buf = encodeTile(buf[:0], fb, t)
		if err := c.Write(ctx, websocket.MessageBinary, buf); err != nil {
			return fmt.Errorf("tile %s: %w", t, err)
		}
	}
	return nil
}

// encodeTile appends the tile's x, y, width and height as big-endian uint16
// followed by its RGBA pixels in raster order.
func encodeTile(dst []byte, fb *render.Framebuffer, tile image.Rectangle) []byte {
	dst = binary.BigEndian.AppendUint16(dst, uint16(tile.Min.X))
	dst = binary.BigEndian.AppendUint16(dst, uint16(tile.Min.Y))
	dst = binary.BigEndian.AppendUint16(dst, uint16(tile.Dx()))
	dst = binary.BigEndian.AppendUint16(dst, uint16(tile.Dy()))
	return fb.AppendRGBA(dst, tile)
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	var tiles []image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y += tileH {
		for x := r.Min.X; x < r.Max.X; x += tileW {
			tiles = append(tiles, image.Rect(x, y, x+tileW, y+tileH).Intersect(r))
		}
	}
	return tiles
}
