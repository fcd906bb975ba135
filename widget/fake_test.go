package widget

import (
	"errors"

	"golang.org/x/image/math/f32"
)

// fakeBackend counts allocations so tests can check for leaks.
type fakeBackend struct {
	inits, terms int
	windows      []*fakeWindow

	initErr, windowErr error

	// noWindow returns neither a window nor an error; crash dereferences the
	// missing window.
	noWindow, crash bool
}

func (b *fakeBackend) Init() error {
	if b.initErr != nil {
		return b.initErr
	}
	b.inits++
	return nil
}

func (b *fakeBackend) Terminate() { b.terms++ }

func (b *fakeBackend) NewWindow(opts WindowOptions) (Window, error) {
	if b.windowErr != nil {
		return nil, b.windowErr
	}
	if b.noWindow || b.crash {
		var w *fakeWindow
		if b.crash {
			w.width = opts.Width
		}
		return nil, nil
	}
	w := &fakeWindow{opts: opts, width: opts.Width, height: opts.Height}
	b.windows = append(b.windows, w)
	return w, nil
}

func (b *fakeBackend) live() int { return b.inits - b.terms }

type fakeWindow struct {
	opts          WindowOptions
	width, height int

	current   int
	interval  int
	destroyed int

	reshapes []f32.Mat4
	clears   int
	quads    [][4]Vertex
	presents int

	pending   []interface{}
	onRefresh func()
	onResize  func(int, int)

	// calls records the order of context and drawing calls.
	calls []string
	panic bool
}

var errFake = errors.New("fake failure")

func (w *fakeWindow) NativeHandle() uintptr { return 0xbeef }
func (w *fakeWindow) Size() (int, int)      { return w.width, w.height }
func (w *fakeWindow) MakeContextCurrent() {
	w.current++
	w.calls = append(w.calls, "current")
}
func (w *fakeWindow) SetSwapInterval(n int)           { w.interval = n }
func (w *fakeWindow) OnRefresh(fn func())             { w.onRefresh = fn }
func (w *fakeWindow) OnResize(fn func(int, int))      { w.onResize = fn }
func (w *fakeWindow) Destroy()                        { w.destroyed++ }
func (w *fakeWindow) Reshape(_, _ int, m f32.Mat4)    { w.reshapes = append(w.reshapes, m) }
func (w *fakeWindow) Present()                        { w.presents++; w.calls = append(w.calls, "present") }
func (w *fakeWindow) PollEvents() (evs []interface{}) { evs, w.pending = w.pending, nil; return evs }

func (w *fakeWindow) Clear() {
	if w.panic {
		panic(errFake)
	}
	w.clears++
	w.calls = append(w.calls, "clear")
}

func (w *fakeWindow) Quad(v [4]Vertex) {
	w.quads = append(w.quads, v)
	w.calls = append(w.calls, "quad")
}

type fakeResizer struct{ w, h, calls int }

func (r *fakeResizer) ProposeSize(w, h int) { r.w, r.h = w, h; r.calls++ }
