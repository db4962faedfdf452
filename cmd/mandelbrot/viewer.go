package main

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/marben/mandelzoom/internal/logging"
	"github.com/marben/mandelzoom/session"
)

var selectionColor = color.RGBA{B: 0xff, A: 0xff}

// viewer is the ebiten game driving a session. Layout records the window
// size, Update feeds input to the session, Draw blits the framebuffer.
type viewer struct {
	s      *session.Session
	poller session.Poller
	logger *slog.Logger

	size image.Point

	img      *ebiten.Image
	pix      []byte
	uploaded uint64
}

func newViewer(s *session.Session, logger *slog.Logger) *viewer {
	return &viewer{s: s, logger: logger}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	v.poller.Resize(v.s, v.size.X, v.size.Y)

	before := v.s.Viewport()
	x, y := ebiten.CursorPosition()
	v.poller.Poll(v.s, session.PointerState{
		Pos:   image.Pt(x, y),
		Left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	})
	if after := v.s.Viewport(); after != before {
		v.logger.Info("view changed", logging.Viewport("viewport", after))
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	fb := v.s.Framebuffer()
	if fb.Empty() {
		return
	}

	if v.img == nil || v.img.Bounds() != fb.Bounds() {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(fb.Width(), fb.Height())
		v.uploaded = 0
	}
	if gen := v.s.Generation(); gen != v.uploaded {
		v.pix = fb.AppendRGBA(v.pix[:0], fb.Bounds())
		v.img.WritePixels(v.pix)
		v.uploaded = gen
	}

	// the framebuffer lags the window by one frame after a resize
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(fb.Width()), float64(sh)/float64(fb.Height()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(v.img, op)

	if sel, ok := v.s.Selection(); ok {
		vector.StrokeRect(screen,
			float32(sel.Min.X), float32(sel.Min.Y),
			float32(sel.Dx()), float32(sel.Dy()),
			1, selectionColor, false)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.size = image.Pt(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
