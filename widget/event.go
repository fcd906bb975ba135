package widget

import (
	"fmt"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// Scroll is a wheel or trackpad scroll at X,Y by DX,DY.
type Scroll struct {
	X, Y   float32
	DX, DY float32
}

// Handlers receive input drained each tick and port updates from the host.
type Handlers struct {
	Key    func(w *Widget, e key.Event)
	Mouse  func(w *Widget, e mouse.Event)
	Scroll func(w *Widget, e Scroll)
	Port   func(w *Widget, p PortUpdate)
}

// DefaultHandlers only log what they receive.
func DefaultHandlers() Handlers {
	return Handlers{
		Key:    logKey,
		Mouse:  logMouse,
		Scroll: logScroll,
		Port:   logPort,
	}
}

func (w *Widget) dispatch(ev interface{}) {
	switch e := ev.(type) {
	case key.Event:
		w.handlers.Key(w, e)
	case mouse.Event:
		w.handlers.Mouse(w, e)
	case Scroll:
		w.handlers.Scroll(w, e)
	default:
		w.log.Debug("unhandled event", "type", fmt.Sprintf("%T", ev))
	}
}

func logKey(w *Widget, e key.Event) {
	switch e.Direction {
	case key.DirPress:
		w.log.Info("keyboard press", "key", keyName(e))
	case key.DirRelease:
		w.log.Info("keyboard release", "key", keyName(e))
	}
}

func logMouse(w *Widget, e mouse.Event) {
	x, y := int(e.X), int(e.Y)
	switch e.Direction {
	case mouse.DirNone:
		w.log.Info("motion", "x", x, "y", y)
	case mouse.DirPress:
		w.log.Info("mouse down", "button", int(e.Button), "x", x, "y", y)
	case mouse.DirRelease:
		w.log.Info("mouse up", "button", int(e.Button), "x", x, "y", y)
	}
}

func logScroll(w *Widget, e Scroll) {
	w.log.Info("scroll", "dx", e.DX, "dy", e.DY)
}

func logPort(w *Widget, p PortUpdate) {
	w.log.Debug("port event", "port", p.Index, "size", p.BufferSize, "format", p.Format)
}

func keyName(e key.Event) string {
	if e.Rune > 0 {
		return string(e.Rune)
	}
	return e.Code.String()
}
