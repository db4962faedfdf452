package render

import (
	"time"

	mandel "github.com/marben/mandelzoom"
)

// Stats describes one completed Render call.
type Stats struct {
	Width, Height int
	Viewport      mandel.Viewport
	Inside        int // pixels that reached MaxIterations
	Elapsed       time.Duration
}

// Renderer fills framebuffers with the escape-time colouring of a viewport.
type Renderer struct {
	// MaxIterations defaults to mandel.MaxIterations when zero.
	MaxIterations int

	// OnRender, if set, is called after every non-empty render.
	OnRender func(Stats)
}

func (r Renderer) maxIterations() int {
	if r.MaxIterations <= 0 {
		return mandel.MaxIterations
	}
	return r.MaxIterations
}

// Render recomputes every pixel of fb in raster order. It is a no-op for a
// nil or zero-area framebuffer.
func (r Renderer) Render(fb *Framebuffer, vp mandel.Viewport) {
	if fb.Empty() {
		return
	}
	start := time.Now()
	maxIter := r.maxIterations()
	inside := 0

	for py := 0; py < fb.height; py++ {
		for px := 0; px < fb.width; px++ {
			x0, y0 := vp.ToPlane(float64(px), float64(py), fb.width, fb.height)
			iterations := EscapeCount(x0, y0, maxIter)
			if iterations >= maxIter {
				inside++
			}
			fb.pix[py*fb.width+px] = ColorFor(iterations, maxIter)
		}
	}

	if r.OnRender != nil {
		r.OnRender(Stats{
			Width:    fb.width,
			Height:   fb.height,
			Viewport: vp,
			Inside:   inside,
			Elapsed:  time.Since(start),
		})
	}
}
