package mandel

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return "unknown"
}

// EventHandler reacts to the events a host surface delivers.
// Hosts call it from a single goroutine, one event at a time.
type EventHandler interface {
	OnResize(width, height int)
	OnPointerDown(x, y int, button Button)
	OnPointerMove(x, y int)
	OnPointerUp(x, y int, button Button)
}
