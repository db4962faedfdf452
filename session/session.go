// Package session holds the interactive state of one Mandelbrot view: the
// current viewport, the framebuffer it is rendered into and the drag gesture
// used to select a zoom rectangle.
package session

import (
	"image"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/render"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Session reacts to host events. It is not safe for concurrent use: hosts
// deliver one event at a time.
type Session struct {
	renderer render.Renderer
	viewport mandel.Viewport
	fb       *render.Framebuffer

	state          State
	selectionStart image.Point
	selectionEnd   image.Point

	generation uint64
}

var _ mandel.EventHandler = (*Session)(nil)

type Option func(*Session)

// WithRenderer replaces the default renderer.
func WithRenderer(r render.Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithViewport sets the initial viewport. Right click still resets to
// mandel.DefaultViewport.
func WithViewport(vp mandel.Viewport) Option {
	return func(s *Session) { s.viewport = vp }
}

// New returns an idle session without a framebuffer. Nothing is rendered
// until the first OnResize.
func New(opts ...Option) *Session {
	s := &Session{viewport: mandel.DefaultViewport()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnResize replaces the framebuffer with one of the new size and redraws it.
// A zero-area size leaves the session without a framebuffer.
func (s *Session) OnResize(width, height int) {
	s.fb = render.NewFramebuffer(width, height)
	s.render()
}

func (s *Session) OnPointerDown(x, y int, button mandel.Button) {
	if button != mandel.ButtonLeft || s.state == Dragging {
		return
	}
	s.selectionStart = image.Pt(x, y)
	s.selectionEnd = s.selectionStart
	s.state = Dragging
}

func (s *Session) OnPointerMove(x, y int) {
	if s.state != Dragging {
		return
	}
	s.selectionEnd = image.Pt(x, y)
}

// OnPointerUp finishes a drag with the left button, zooming into the selection
// when it has positive area, or resets the view with the right button.
func (s *Session) OnPointerUp(x, y int, button mandel.Button) {
	switch button {
	case mandel.ButtonLeft:
		if s.state != Dragging {
			return
		}
		sel := s.selection()
		s.state = Idle
		if sel.Empty() || s.fb.Empty() {
			return
		}
		s.viewport = s.viewport.Zoom(sel, s.fb.Width(), s.fb.Height())
		s.render()
	case mandel.ButtonRight:
		s.Reset()
	}
}

// Reset restores the default viewport and redraws.
func (s *Session) Reset() {
	s.viewport = mandel.DefaultViewport()
	s.render()
}

// Framebuffer returns the current frame for presentation. Callers must not
// write to it. It is nil until a non-empty resize.
func (s *Session) Framebuffer() *render.Framebuffer {
	return s.fb
}

// Selection returns the in-progress selection rectangle, if dragging.
func (s *Session) Selection() (image.Rectangle, bool) {
	if s.state != Dragging {
		return image.Rectangle{}, false
	}
	return s.selection(), true
}

func (s *Session) Viewport() mandel.Viewport { return s.viewport }

func (s *Session) State() State { return s.state }

// Generation increments every time the framebuffer is redrawn.
func (s *Session) Generation() uint64 { return s.generation }

func (s *Session) selection() image.Rectangle {
	return image.Rectangle{Min: s.selectionStart, Max: s.selectionEnd}.Canon()
}

func (s *Session) render() {
	if s.fb.Empty() {
		return
	}
	s.renderer.Render(s.fb, s.viewport)
	s.generation++
}
