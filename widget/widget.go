// Package widget implements a pulsing brightness control surface that a plugin
// host creates, ticks and destroys.
//
// Nothing in this package knows about a particular window system or host ABI;
// both are reached through Backend and Host.
package widget

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

var (
	ErrMissingParentWindow = errors.New("widget: no parent window provided")
	ErrBackendInitFailed   = errors.New("widget: failed to initialize backend")
	ErrWindowCreateFailed  = errors.New("widget: failed to create window")
)

// State is a lifecycle stage of a Widget.
type State int

const (
	Uninitialized State = iota
	Ready
	Terminating
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	case Terminating:
		return "Terminating"
	case Destroyed:
		return "Destroyed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// WriteFunc sends a buffer for a port upstream to the host.
type WriteFunc func(port, bufferSize, format uint32, buffer []byte)

// Controller is the host's opaque reference passed back alongside writes.
type Controller interface{}

// Resizer lets a widget propose its size to the host. The host may ignore it.
type Resizer interface {
	ProposeSize(width, height int)
}

// Host is everything a container hands a widget at creation.
type Host struct {
	Parent     uintptr // native parent window; zero if the host gave none
	Resize     Resizer // optional
	Write      WriteFunc
	Controller Controller
}

// PortUpdate is a buffer the host pushed for a port.
type PortUpdate struct {
	Index      uint32
	BufferSize uint32
	Format     uint32
	Buffer     []byte
}

// Widget is the state of one plugin UI instance.
type Widget struct {
	backend Backend
	window  Window

	write      WriteFunc
	controller Controller

	width, height   int // current surface size
	lwidth, lheight int // size proposed to the host

	brightness float64
	state      State

	cfg      Config
	handlers Handlers
	log      *slog.Logger
}

// Create opens a window for host through b and returns the widget in the Ready
// state. On error no resources remain allocated.
func Create(b Backend, host Host, cfg Config) (*Widget, error) {
	log := Logger()

	if host.Parent == 0 {
		log.Error("no parent window provided")
		return nil, ErrMissingParentWindow
	}

	if err := b.Init(); err != nil {
		log.Error("failed to initialize backend", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendInitFailed, err)
	}

	win, err := newWindow(b, WindowOptions{
		Parent:       host.Parent,
		Title:        cfg.Title,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ContextMajor: cfg.ContextMajor,
		ContextMinor: cfg.ContextMinor,
	})
	if err != nil || win == nil {
		log.Error("failed to create window", "err", err)
		b.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreateFailed, err)
	}

	w := &Widget{
		backend:    b,
		window:     win,
		write:      host.Write,
		controller: host.Controller,
		width:      cfg.Width,
		height:     cfg.Height,
		lwidth:     cfg.LogicalWidth,
		lheight:    cfg.LogicalHeight,
		state:      Ready,
		cfg:        cfg,
		handlers:   DefaultHandlers(),
		log:        log,
	}

	win.OnRefresh(w.Draw)
	win.OnResize(w.Reshape)

	win.MakeContextCurrent()
	win.SetSwapInterval(cfg.SwapInterval)

	if host.Resize != nil {
		host.Resize.ProposeSize(w.lwidth, w.lheight)
	}

	win.MakeContextCurrent()
	w.Reshape(win.Size())

	return w, nil
}

// newWindow turns a panic in the window system into an error so that a failed
// creation unwinds no further than Create.
func newWindow(b Backend, opts WindowOptions) (win Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			win, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return b.NewWindow(opts)
}

// SetHandlers replaces the input and port handlers. Nil fields keep the
// logging defaults.
func (w *Widget) SetHandlers(h Handlers) {
	def := DefaultHandlers()
	if h.Key == nil {
		h.Key = def.Key
	}
	if h.Mouse == nil {
		h.Mouse = def.Mouse
	}
	if h.Scroll == nil {
		h.Scroll = def.Scroll
	}
	if h.Port == nil {
		h.Port = def.Port
	}
	w.handlers = h
}

// Tick advances the animation one step, draws a frame and dispatches pending
// input. It is called once per host refresh cycle and always returns 0.
func (w *Widget) Tick() (status int) {
	if w == nil || w.state != Ready {
		return 0
	}

	// a panic here would take down the host.
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("tick failed", "err", r)
			status = 0
		}
	}()

	w.brightness = Wrap(w.brightness + w.cfg.Step)
	w.window.MakeContextCurrent()
	w.draw()

	for _, ev := range w.window.PollEvents() {
		w.dispatch(ev)
	}
	return 0
}

// PortEvent accepts a host update for a port. The default handler ignores it.
func (w *Widget) PortEvent(port, bufferSize, format uint32, buffer []byte) {
	if w == nil || w.state != Ready {
		return
	}
	w.handlers.Port(w, PortUpdate{Index: port, BufferSize: bufferSize, Format: format, Buffer: buffer})
}

// Reshape maps drawing coordinates to pixels of a width×height surface with
// the origin at the top left.
func (w *Widget) Reshape(width, height int) {
	if w == nil || w.state != Ready || width <= 0 || height <= 0 {
		return
	}
	w.width, w.height = width, height
	w.window.MakeContextCurrent()
	w.window.Reshape(width, height, Ortho(0, float32(width), float32(height), 0, 0, 1))
}

// Draw renders one frame. It is also the window's refresh handler.
func (w *Widget) Draw() {
	if w == nil || w.state != Ready {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("draw failed", "err", r)
		}
	}()
	w.window.MakeContextCurrent()
	w.draw()
}

func (w *Widget) draw() {
	w.window.Clear()
	w.window.Quad(QuadVertices(w.width, w.height, w.cfg.Margin, float32(w.brightness)))
	w.window.Present()
}

// Destroy tears the window down and releases the backend. Calls after the
// first are no-ops.
func (w *Widget) Destroy() {
	if w == nil || w.state != Ready {
		return
	}
	w.state = Terminating
	w.window.Destroy()
	w.window = nil
	w.backend.Terminate()
	w.state = Destroyed
}

// Write sends buffer for port upstream through the host's write function.
func (w *Widget) Write(port, format uint32, buffer []byte) {
	if w == nil || w.write == nil {
		return
	}
	w.write(port, uint32(len(buffer)), format, buffer)
}

func (w *Widget) State() State            { return w.state }
func (w *Widget) Terminating() bool       { return w.state >= Terminating }
func (w *Widget) Brightness() float64     { return w.brightness }
func (w *Widget) SetBrightness(v float64) { w.brightness = Wrap(v) }
func (w *Widget) Size() (int, int)        { return w.width, w.height }
func (w *Widget) LogicalSize() (int, int) { return w.lwidth, w.lheight }
func (w *Widget) Controller() Controller  { return w.controller }

// NativeHandle returns the window system handle of the widget's window, or zero
// once teardown has begun.
func (w *Widget) NativeHandle() uintptr {
	if w == nil || w.window == nil {
		return 0
	}
	return w.window.NativeHandle()
}

// Wrap returns v modulo 1 in [0, 1).
func Wrap(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	if v >= 1 {
		v = 0
	}
	return v
}
