package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// EscapeCount iterates z = z*z + c from z = 0 with c = x0 + y0*i and returns
// the number of iterations performed before |z|^2 exceeded 4, capped at
// maxIterations.
func EscapeCount(x0, y0 float64, maxIterations int) int {
	var x, y, x2, y2 float64
	iteration := 0
	for x2+y2 <= 4 && iteration < maxIterations {
		y = 2*x*y + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y
		iteration++
	}
	return iteration
}

// Hue maps an iteration count onto [0, 360). A full count wraps to 0.
func Hue(iterations, maxIterations int) float64 {
	if maxIterations <= 0 {
		return 0
	}
	hue := float64(iterations) * 360.0 / float64(maxIterations)
	if hue == 360.0 {
		hue = 0.0
	}
	return hue
}

// ColorFor returns the colour of a pixel whose escape count is iterations.
// Points that never escaped are black.
func ColorFor(iterations, maxIterations int) RGB {
	value := 0.0
	if iterations < maxIterations {
		value = 1.0
	}
	return FromHSV(Hue(iterations, maxIterations), 1.0, value)
}

// FromHSV converts hue in degrees [0, 360), saturation and value in [0, 1].
func FromHSV(hue, saturation, value float64) RGB {
	r, g, b := colorful.Hsv(hue, saturation, value).Clamped().RGB255()
	return NewRGB(r, g, b)
}
