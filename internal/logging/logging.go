package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/render"
)

// Setup installs a tinted slog handler writing to w as the default logger.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		if fi, err := f.Stat(); err == nil {
			noColor = fi.Mode()&os.ModeCharDevice == 0
		}
	}
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
	slog.SetDefault(logger)
	return logger
}

// Viewport groups the bounds of vp for structured logging.
func Viewport(key string, vp mandel.Viewport) slog.Attr {
	return slog.Group(key,
		slog.Float64("x_start", vp.XStart),
		slog.Float64("x_end", vp.XEnd),
		slog.Float64("y_start", vp.YStart),
		slog.Float64("y_end", vp.YEnd),
	)
}

// RenderHook returns a render.Renderer OnRender callback logging at debug level.
func RenderHook(logger *slog.Logger) func(render.Stats) {
	return func(s render.Stats) {
		logger.Debug("rendered",
			"width", s.Width,
			"height", s.Height,
			Viewport("viewport", s.Viewport),
			"inside", s.Inside,
			"elapsed", s.Elapsed,
		)
	}
}
