package nui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/math/f32"

	"dasa.cc/glamp/widget"
)

var (
	pollEvents   = glfw.PollEvents
	swapInterval = glfw.SwapInterval
	createWindow = newGLFWWindow
)

var errNoWindow = errors.New("nui: glfw created no window")

// glfw state is process wide and shared by every plugin instance in the host.
var (
	refsMu sync.Mutex
	refs   int
)

// Backend opens glfw windows with a legacy OpenGL context.
type Backend struct{}

func (Backend) Init() error {
	refsMu.Lock()
	defer refsMu.Unlock()
	if refs == 0 {
		if err := glfw.Init(); err != nil {
			return err
		}
	}
	refs++
	return nil
}

func (Backend) Terminate() {
	refsMu.Lock()
	defer refsMu.Unlock()
	if refs == 0 {
		return
	}
	refs--
	if refs == 0 {
		glfw.Terminate()
	}
}

func newGLFWWindow(opts widget.WindowOptions) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, opts.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.ContextMinor)
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)
	return glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
}

func (Backend) NewWindow(opts widget.WindowOptions) (widget.Window, error) {
	win, err := createWindow(opts)
	if err != nil {
		return nil, err
	}
	// glfw reports platform errors through its error callback only.
	if win == nil {
		return nil, errNoWindow
	}

	if err := embed(win, opts.Parent); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("embed in parent %#x: %v", opts.Parent, err)
	}
	win.Show()

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, err
	}
	gl.ClearColor(0, 0, 0, 0)

	w := &Window{win: win}
	w.listen()
	return w, nil
}

// Window is a glfw window drawn with immediate mode GL.
type Window struct {
	win *glfw.Window

	// cursor position for button events, which glfw reports without one.
	x, y    float32
	pending []interface{}
}

func (w *Window) NativeHandle() uintptr { return nativeHandle(w.win) }
func (w *Window) Size() (int, int)      { return w.win.GetSize() }
func (w *Window) MakeContextCurrent()   { w.win.MakeContextCurrent() }
func (w *Window) SetSwapInterval(n int) { swapInterval(n) }
func (w *Window) Destroy()              { w.win.Destroy() }
func (w *Window) push(ev interface{})   { w.pending = append(w.pending, ev) }
func (w *Window) Present()              { w.win.SwapBuffers() }
func (w *Window) Clear()                { gl.Clear(gl.COLOR_BUFFER_BIT) }
func (w *Window) OnRefresh(fn func())   { w.win.SetRefreshCallback(func(*glfw.Window) { fn() }) }
func (w *Window) OnResize(fn func(int, int)) {
	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) { fn(width, height) })
}

// PollEvents processes pending events of every glfw window and returns those
// queued for w. Events for other windows stay queued on them.
func (w *Window) PollEvents() []interface{} {
	pollEvents()
	evs := w.pending
	w.pending = nil
	return evs
}

func (w *Window) Reshape(width, height int, proj f32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.LoadTransposeMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.Disable(gl.DEPTH_TEST)
	gl.LoadIdentity()
}

func (w *Window) Quad(vs [4]widget.Vertex) {
	gl.Begin(gl.QUADS)
	for _, v := range vs {
		gl.Color3f(v.Color[0], v.Color[1], v.Color[2])
		gl.Vertex2f(v.Pos[0], v.Pos[1])
	}
	gl.End()
}

func (w *Window) listen() {
	w.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		w.push(keyEvent(k, action, mods))
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.x, w.y = float32(x), float32(y)
		w.push(motionEvent(x, y))
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.push(buttonEvent(b, action, mods, w.x, w.y))
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.push(widget.Scroll{X: w.x, Y: w.y, DX: float32(dx), DY: float32(dy)})
	})
}
