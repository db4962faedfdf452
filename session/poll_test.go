package session

import (
	"fmt"
	"image"
	"testing"

	mandel "github.com/marben/mandelzoom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
}

func (r *recorder) OnResize(w, h int) { r.events = append(r.events, fmt.Sprintf("resize %dx%d", w, h)) }
func (r *recorder) OnPointerDown(x, y int, b mandel.Button) {
	r.events = append(r.events, fmt.Sprintf("down %d,%d %s", x, y, b))
}
func (r *recorder) OnPointerMove(x, y int) { r.events = append(r.events, fmt.Sprintf("move %d,%d", x, y)) }
func (r *recorder) OnPointerUp(x, y int, b mandel.Button) {
	r.events = append(r.events, fmt.Sprintf("up %d,%d %s", x, y, b))
}

func TestPoller_Resize(t *testing.T) {
	var p Poller
	r := &recorder{}
	p.Resize(r, 640, 480)
	p.Resize(r, 640, 480)
	p.Resize(r, 800, 480)
	assert.Equal(t, []string{"resize 640x480", "resize 800x480"}, r.events)
}

func TestPoller_FirstResizeAlwaysFires(t *testing.T) {
	var p Poller
	r := &recorder{}
	p.Resize(r, 0, 0)
	assert.Equal(t, []string{"resize 0x0"}, r.events)
}

func TestPoller_Drag(t *testing.T) {
	var p Poller
	r := &recorder{}
	frames := []PointerState{
		{Pos: image.Pt(10, 10)},
		{Pos: image.Pt(10, 10), Left: true},
		{Pos: image.Pt(30, 40), Left: true},
		{Pos: image.Pt(30, 40), Left: true},
		{Pos: image.Pt(30, 40)},
		{Pos: image.Pt(30, 40), Right: true},
		{Pos: image.Pt(30, 40)},
	}
	for _, f := range frames {
		p.Poll(r, f)
	}
	assert.Equal(t, []string{
		"move 10,10",
		"down 10,10 left",
		"move 30,40",
		"up 30,40 left",
		"up 30,40 right",
	}, r.events)
}

func TestPoller_DrivesSession(t *testing.T) {
	var p Poller
	s := New()
	p.Resize(s, 320, 240)
	p.Poll(s, PointerState{Pos: image.Pt(80, 60), Left: true})
	p.Poll(s, PointerState{Pos: image.Pt(240, 180), Left: true})
	sel, ok := s.Selection()
	require.True(t, ok)
	assert.Equal(t, image.Rect(80, 60, 240, 180), sel)

	p.Poll(s, PointerState{Pos: image.Pt(240, 180)})
	assert.InDelta(t, -1.625, s.Viewport().XStart, 1e-12)
	assert.InDelta(t, 0.125, s.Viewport().XEnd, 1e-12)
}
