package session

import (
	"image"

	mandel "github.com/marben/mandelzoom"
)

// PointerState is a snapshot of a pointer device taken by hosts that poll
// input once per frame instead of receiving events.
type PointerState struct {
	Pos         image.Point
	Left, Right bool
}

// Poller turns successive surface sizes and pointer snapshots into
// EventHandler calls.
type Poller struct {
	size    image.Point
	sized   bool
	pointer PointerState
}

// Resize forwards a resize event when the surface size changed since the
// previous call.
func (p *Poller) Resize(h mandel.EventHandler, width, height int) {
	size := image.Pt(width, height)
	if p.sized && size == p.size {
		return
	}
	p.size, p.sized = size, true
	h.OnResize(width, height)
}

// Poll compares cur with the previous snapshot and emits presses, moves and
// releases in that order.
func (p *Poller) Poll(h mandel.EventHandler, cur PointerState) {
	prev := p.pointer
	p.pointer = cur

	if cur.Left && !prev.Left {
		h.OnPointerDown(cur.Pos.X, cur.Pos.Y, mandel.ButtonLeft)
	}
	if cur.Pos != prev.Pos {
		h.OnPointerMove(cur.Pos.X, cur.Pos.Y)
	}
	if !cur.Left && prev.Left {
		h.OnPointerUp(cur.Pos.X, cur.Pos.Y, mandel.ButtonLeft)
	}
	if !cur.Right && prev.Right {
		h.OnPointerUp(cur.Pos.X, cur.Pos.Y, mandel.ButtonRight)
	}
}
