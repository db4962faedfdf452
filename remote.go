package mandel

//go:generate irpc $GOFILE

// ImageProvider renders a whole view on the serving side and returns it as
// PNG data. The server exposes it over irpc so headless clients can fetch
// images without rendering locally.
type ImageProvider interface {
	RenderPNG(vp Viewport, width, height int) ([]byte, error)
}
