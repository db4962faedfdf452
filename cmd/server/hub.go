package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/internal/logging"
	"github.com/marben/mandelzoom/render"
	"github.com/marben/mandelzoom/session"
)

// maxSide bounds the framebuffer a client may request.
const maxSide = 4096

// hub owns the settings shared by all connections and counts live sessions.
type hub struct {
	start  mandel.Viewport
	logger *slog.Logger

	m        sync.Mutex
	sessions int
}

func newHub(start mandel.Viewport, logger *slog.Logger) *hub {
	return &hub{start: start, logger: logger}
}

func (h *hub) incSessions() {
	h.m.Lock()
	h.sessions++
	n := h.sessions
	h.m.Unlock()

	h.logger.Info("session opened", "sessions", n)
}

func (h *hub) decSessions() {
	h.m.Lock()
	h.sessions--
	n := h.sessions
	h.m.Unlock()

	h.logger.Info("session closed", "sessions", n)
}

func (h *hub) activeSessions() int {
	h.m.Lock()
	defer h.m.Unlock()
	return h.sessions
}

// serve runs one viewer session on c. Events are read and applied one at a
// time on this goroutine, and every redraw is streamed back before the next
// event is read.
func (h *hub) serve(ctx context.Context, c *websocket.Conn, remote string) error {
	h.incSessions()
	defer h.decSessions()

	logger := h.logger.With("remote", remote)
	s := session.New(
		session.WithViewport(h.start),
		session.WithRenderer(render.Renderer{OnRender: logging.RenderHook(logger)}),
	)

	var sent uint64
	// blank is true while the page shows no image
	blank := true
	for {
		var msg clientMessage
		if err := wsjson.Read(ctx, c, &msg); err != nil {
			return err
		}
		if err := msg.apply(s); err != nil {
			logger.Warn("ignoring message", "type", msg.Type, "err", err)
			continue
		}

		fb := s.Framebuffer()
		if fb == nil {
			// clear the page once with an empty 0x0 frame
			if blank {
				continue
			}
		} else if s.Generation() == sent {
			continue
		}
		if err := sendFrame(ctx, c, fb, s.Viewport()); err != nil {
			return fmt.Errorf("send frame: %w", err)
		}
		sent = s.Generation()
		blank = fb == nil
	}
}
