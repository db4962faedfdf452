package render

import (
	"bytes"
	"fmt"
	"image/png"

	mandel "github.com/marben/mandelzoom"
)

// PNGProvider renders whole images on request. It backs the irpc
// ImageProvider service.
type PNGProvider struct {
	Renderer Renderer

	// MaxSide caps the requested width and height. Zero means MaxSide.
	MaxSide int
}

var _ mandel.ImageProvider = PNGProvider{}

// RenderPNG renders vp at width x height and returns the PNG encoding.
func (p PNGProvider) RenderPNG(vp mandel.Viewport, width, height int) ([]byte, error) {
	if err := vp.Check(); err != nil {
		return nil, err
	}
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	if p.MaxSide > 0 && (width > p.MaxSide || height > p.MaxSide) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidSize, width, height, p.MaxSide)
	}

	fb := NewFramebuffer(width, height)
	p.Renderer.Render(fb, vp)

	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.ToRGBA()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
