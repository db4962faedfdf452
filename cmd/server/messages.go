package main

import (
	"errors"
	"fmt"

	mandel "github.com/marben/mandelzoom"
)

var errBadMessage = errors.New("bad message")

// clientMessage is a pointer or resize event sent by the page. Button uses
// the DOM MouseEvent.button numbering.
type clientMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Button int    `json:"button,omitempty"`
}

func (m clientMessage) apply(h mandel.EventHandler) error {
	switch m.Type {
	case "resize":
		if m.Width < 0 || m.Height < 0 || m.Width > maxSide || m.Height > maxSide {
			return fmt.Errorf("%w: size %dx%d outside [0, %d]", errBadMessage, m.Width, m.Height, maxSide)
		}
		h.OnResize(m.Width, m.Height)
	case "down":
		b, err := domButton(m.Button)
		if err != nil {
			return err
		}
		h.OnPointerDown(m.X, m.Y, b)
	case "move":
		h.OnPointerMove(m.X, m.Y)
	case "up":
		b, err := domButton(m.Button)
		if err != nil {
			return err
		}
		h.OnPointerUp(m.X, m.Y, b)
	default:
		return fmt.Errorf("%w: unknown type %q", errBadMessage, m.Type)
	}
	return nil
}

func domButton(b int) (mandel.Button, error) {
	switch b {
	case 0:
		return mandel.ButtonLeft, nil
	case 1:
		return mandel.ButtonMiddle, nil
	case 2:
		return mandel.ButtonRight, nil
	}
	return 0, fmt.Errorf("%w: button %d", errBadMessage, b)
}

type viewportJSON struct {
	XStart float64 `json:"x_start"`
	XEnd   float64 `json:"x_end"`
	YStart float64 `json:"y_start"`
	YEnd   float64 `json:"y_end"`
}

// frameMessage announces a redrawn frame. It is followed by Tiles binary
// messages, see encodeTile.
type frameMessage struct {
	Type     string       `json:"type"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Tiles    int          `json:"tiles"`
	Viewport viewportJSON `json:"viewport"`
}
