package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// MaxSide bounds either dimension of a framebuffer. It keeps width*height
// well inside int on every platform.
const MaxSide = 1 << 14

var ErrInvalidSize = errors.New("invalid size")

// RGB is a packed 0x00RRGGBB pixel. It carries no alpha.
type RGB uint32

func NewRGB(r, g, b uint8) RGB {
	return RGB(r)<<16 | RGB(g)<<8 | RGB(b)
}

func (c RGB) R() uint8 { return uint8(c >> 16) }
func (c RGB) G() uint8 { return uint8(c >> 8) }
func (c RGB) B() uint8 { return uint8(c) }

// RGBModel converts any color to an opaque RGB, dropping alpha.
var RGBModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(RGB); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return NewRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGBA implements color.Color. Pixels are always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	g = uint32(c.G())
	b = uint32(c.B())
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// Framebuffer is a fixed-size grid of RGB pixels in raster order.
// A nil *Framebuffer stands for an absent (zero-area) surface and is safe to
// query.
type Framebuffer struct {
	width, height int
	pix           []RGB
}

// CheckSize returns an error wrapping ErrInvalidSize unless both dimensions
// are in [1, MaxSide].
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxSide || height > MaxSide {
		return fmt.Errorf("%w: %dx%d (each side must be 1..%d)", ErrInvalidSize, width, height, MaxSide)
	}
	return nil
}

// NewFramebuffer allocates a width x height framebuffer, or returns nil when
// the size fails CheckSize.
func NewFramebuffer(width, height int) *Framebuffer {
	if CheckSize(width, height) != nil {
		return nil
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

func (fb *Framebuffer) Width() int {
	if fb == nil {
		return 0
	}
	return fb.width
}

func (fb *Framebuffer) Height() int {
	if fb == nil {
		return 0
	}
	return fb.height
}

// Empty reports whether fb has no pixels.
func (fb *Framebuffer) Empty() bool {
	return fb == nil || len(fb.pix) == 0
}

func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width(), fb.Height())
}

func (fb *Framebuffer) ColorModel() color.Model {
	return RGBModel
}

func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.RGBAt(x, y)
}

// RGBAt returns the pixel at (x, y), or black outside the bounds.
func (fb *Framebuffer) RGBAt(x, y int) RGB {
	if !(image.Point{X: x, Y: y}).In(fb.Bounds()) {
		return 0
	}
	return fb.pix[y*fb.width+x]
}

// Set writes the pixel at (x, y). Writes outside the bounds are dropped.
func (fb *Framebuffer) Set(x, y int, c RGB) {
	if !(image.Point{X: x, Y: y}).In(fb.Bounds()) {
		return
	}
	fb.pix[y*fb.width+x] = c
}

// AppendRGBA appends the 8-bit RGBA bytes of the pixels inside r, row by row,
// to dst. r is clipped to the framebuffer bounds.
func (fb *Framebuffer) AppendRGBA(dst []byte, r image.Rectangle) []byte {
	r = r.Intersect(fb.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := fb.pix[y*fb.width+r.Min.X : y*fb.width+r.Max.X]
		for _, c := range row {
			dst = append(dst, c.R(), c.G(), c.B(), 0xff)
		}
	}
	return dst
}

// ToRGBA copies fb into a new *image.RGBA.
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	img.Pix = fb.AppendRGBA(img.Pix[:0], fb.Bounds())
	return img
}
