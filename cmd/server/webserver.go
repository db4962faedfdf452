package main

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

//go:embed static
var staticFS embed.FS

// webServer serves the embedded viewer page and the /ws endpoint.
func webServer(addr string, h *hub) *http.Server {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return &http.Server{
		Addr:              addr,
		Handler:           newMux(h, static),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func newMux(h *hub, static fs.FS) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(h))
	mux.Handle("/", http.FileServer(http.FS(static)))
	return mux
}

// websocketHandler upgrades the request and runs a viewer session on it until
// the connection closes.
func websocketHandler(h *hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			h.logger.Warn("websocket accept", "remote", r.RemoteAddr, "err", err)
			return
		}
		defer c.CloseNow()

		err = h.serve(r.Context(), c, r.RemoteAddr)
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			c.Close(websocket.StatusNormalClosure, "")
			return
		}
		if err != nil && r.Context().Err() == nil {
			h.logger.Warn("session ended", "remote", r.RemoteAddr, "err", err)
			c.Close(websocket.StatusInternalError, "session error")
			return
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}

