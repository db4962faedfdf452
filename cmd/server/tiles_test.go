package main

import (
	"encoding/binary"
	"image"
	"testing"

	"github.com/marben/mandelzoom/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRectNoClip(t *testing.T) {
	tiles := splitRectNoClip(image.Rect(0, 0, 150, 70), 64, 64)
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 64, 64),
		image.Rect(64, 0, 128, 64),
		image.Rect(128, 0, 150, 64),
		image.Rect(0, 64, 64, 70),
		image.Rect(64, 64, 128, 70),
		image.Rect(128, 64, 150, 70),
	}, tiles)
}

func TestSplitRectNoClip_CoversEveryPixelOnce(t *testing.T) {
	r := image.Rect(0, 0, 321, 241)
	seen := make(map[image.Point]int)
	for _, tile := range splitRectNoClip(r, 64, 64) {
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				seen[image.Pt(x, y)]++
			}
		}
	}
	assert.Len(t, seen, r.Dx()*r.Dy())
	for p, n := range seen {
		require.Equalf(t, 1, n, "pixel %v", p)
	}
}

func TestSplitRectNoClip_Empty(t *testing.T) {
	assert.Empty(t, splitRectNoClip(image.Rectangle{}, 64, 64))
	assert.Panics(t, func() { splitRectNoClip(image.Rect(0, 0, 1, 1), 0, 64) })
}

func TestEncodeTile(t *testing.T) {
	fb := render.NewFramebuffer(130, 70)
	fb.Set(128, 64, render.NewRGB(9, 8, 7))

	tile := image.Rect(128, 64, 130, 70)
	b := encodeTile(nil, fb, tile)

	require.Len(t, b, 8+2*6*4)
	assert.Equal(t, uint16(128), binary.BigEndian.Uint16(b[0:]))
	assert.Equal(t, uint16(64), binary.BigEndian.Uint16(b[2:]))
	assert.Equal(t, uint16(2), binary.BigEndian.Uint16(b[4:]))
	assert.Equal(t, uint16(6), binary.BigEndian.Uint16(b[6:]))
	assert.Equal(t, []byte{9, 8, 7, 255}, b[8:12])
}
