package mandel

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// MaxIterations caps the escape iteration count for every render.
const MaxIterations = 100

var ErrInvalidViewport = errors.New("invalid viewport")

// Viewport is the rectangle of the complex plane mapped onto the framebuffer.
// It is replaced wholesale on zoom or reset, never mutated in place.
type Viewport struct {
	XStart, XEnd float64
	YStart, YEnd float64
}

// DefaultViewport shows the whole set.
func DefaultViewport() Viewport {
	return Viewport{XStart: -2.5, XEnd: 1.0, YStart: -1.0, YEnd: 1.0}
}

// ToPlane maps pixel coordinates of a width x height framebuffer to the plane.
// Coordinates outside the framebuffer extrapolate linearly.
func (v Viewport) ToPlane(px, py float64, width, height int) (x0, y0 float64) {
	x0 = px*(v.XEnd-v.XStart)/float64(width) + v.XStart
	y0 = py*(v.YEnd-v.YStart)/float64(height) + v.YStart
	return x0, y0
}

// Zoom returns the viewport covered by sel on a width x height framebuffer.
// It does not validate sel: a selection with zero width or height collapses the
// viewport, so callers must reject sel.Empty() selections first.
func (v Viewport) Zoom(sel image.Rectangle, width, height int) Viewport {
	xStart, yStart := v.ToPlane(float64(sel.Min.X), float64(sel.Min.Y), width, height)
	xEnd, yEnd := v.ToPlane(float64(sel.Max.X), float64(sel.Max.Y), width, height)
	return Viewport{XStart: xStart, XEnd: xEnd, YStart: yStart, YEnd: yEnd}
}

// Valid reports whether both axes are finite and strictly ordered.
func (v Viewport) Valid() bool {
	for _, f := range []float64{v.XStart, v.XEnd, v.YStart, v.YEnd} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.XStart < v.XEnd && v.YStart < v.YEnd
}

// Check returns an error wrapping ErrInvalidViewport when v is not Valid.
func (v Viewport) Check() error {
	if !v.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidViewport, v)
	}
	return nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", v.XStart, v.XEnd, v.YStart, v.YEnd)
}
