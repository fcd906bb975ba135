// Package raster is an offscreen widget backend that renders into images.
//
// It stands in for a window system wherever none is available: tests, and
// snapshots of the widget's frames.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"dasa.cc/glamp/widget"
)

var errBadSize = errors.New("raster: window size must be positive")

// Backend creates offscreen windows. The zero value is ready to use.
type Backend struct {
	// InitErr and WindowErr, if set, are returned by Init and NewWindow.
	InitErr   error
	WindowErr error

	refs    int
	handles uintptr
	current *Window
	windows map[uintptr]*Window
}

func (b *Backend) Init() error {
	if b.InitErr != nil {
		return b.InitErr
	}
	b.refs++
	return nil
}

func (b *Backend) Terminate() {
	if b.refs > 0 {
		b.refs--
	}
}

// Refs reports Init calls not yet released by Terminate.
func (b *Backend) Refs() int { return b.refs }

func (b *Backend) NewWindow(opts widget.WindowOptions) (widget.Window, error) {
	if b.WindowErr != nil {
		return nil, b.WindowErr
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errBadSize
	}
	b.handles++
	w := &Window{
		b:      b,
		handle: b.handles,
		parent: opts.Parent,
		title:  opts.Title,
	}
	w.alloc(opts.Width, opts.Height)
	if b.windows == nil {
		b.windows = make(map[uintptr]*Window)
	}
	b.windows[w.handle] = w
	return w, nil
}

// Lookup returns the live window with the given native handle, or nil.
func (b *Backend) Lookup(handle uintptr) *Window { return b.windows[handle] }

// Window is an offscreen double buffered surface.
type Window struct {
	b      *Backend
	handle uintptr
	parent uintptr
	title  string

	front, back *image.RGBA
	z           vector.Rasterizer

	vw, vh int
	proj   f32.Mat4

	interval  int
	frames    int
	stray     int
	destroyed bool

	pending   []interface{}
	onRefresh func()
	onResize  func(int, int)
}

func (w *Window) alloc(width, height int) {
	r := image.Rect(0, 0, width, height)
	w.front, w.back = image.NewRGBA(r), image.NewRGBA(r)
}

func (w *Window) NativeHandle() uintptr      { return w.handle }
func (w *Window) Parent() uintptr            { return w.parent }
func (w *Window) Title() string              { return w.title }
func (w *Window) Size() (int, int)           { s := w.back.Bounds().Size(); return s.X, s.Y }
func (w *Window) MakeContextCurrent()        { w.b.current = w }
func (w *Window) SetSwapInterval(n int)      { w.interval = n }
func (w *Window) SwapInterval() int          { return w.interval }
func (w *Window) OnRefresh(fn func())        { w.onRefresh = fn }
func (w *Window) OnResize(fn func(int, int)) { w.onResize = fn }
func (w *Window) Destroy()                   { w.destroyed = true; w.release() }
func (w *Window) Destroyed() bool            { return w.destroyed }
func (w *Window) Frames() int                { return w.frames }
func (w *Window) Viewport() (int, int)       { return w.vw, w.vh }
func (w *Window) Projection() f32.Mat4       { return w.proj }
func (w *Window) Inject(evs ...interface{})  { w.pending = append(w.pending, evs...) }

// Stray counts drawing calls made while another window's context was current.
func (w *Window) Stray() int { return w.stray }

func (w *Window) release() {
	if w.b.current == w {
		w.b.current = nil
	}
	delete(w.b.windows, w.handle)
}

func (w *Window) PollEvents() []interface{} {
	evs := w.pending
	w.pending = nil
	return evs
}

// Resize changes the surface size as a window manager would and notifies the
// resize handler.
func (w *Window) Resize(width, height int) {
	if width <= 0 || height <= 0 || w.destroyed {
		return
	}
	w.alloc(width, height)
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// Refresh asks the refresh handler to redraw, as an expose event would.
func (w *Window) Refresh() {
	if w.onRefresh != nil && !w.destroyed {
		w.onRefresh()
	}
}

// Frame returns a copy of the last presented frame.
func (w *Window) Frame() *image.RGBA {
	m := image.NewRGBA(w.front.Bounds())
	draw.Draw(m, m.Bounds(), w.front, image.Point{}, draw.Src)
	return m
}

func (w *Window) check() {
	if w.b.current != w {
		w.stray++
	}
}

func (w *Window) Reshape(width, height int, proj f32.Mat4) {
	w.check()
	w.vw, w.vh, w.proj = width, height, proj
}

func (w *Window) Clear() {
	w.check()
	draw.Draw(w.back, w.back.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (w *Window) Present() {
	w.check()
	w.front, w.back = w.back, w.front
	draw.Draw(w.back, w.back.Bounds(), w.front, image.Point{}, draw.Src)
	w.frames++
}

// Quad fills an axis aligned quad, interpolating vertex colors bilinearly
// across it.
func (w *Window) Quad(vs [4]widget.Vertex) {
	w.check()
	if w.vw <= 0 || w.vh <= 0 {
		return
	}

	var pts [4]f32.Vec2
	for i, v := range vs {
		pts[i] = w.pixel(v.Pos)
	}

	size := w.back.Bounds().Size()
	w.z.Reset(size.X, size.Y)
	w.z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		w.z.LineTo(p[0], p[1])
	}
	w.z.ClosePath()
	w.z.Draw(w.back, w.back.Bounds(), newGradient(pts, vs), image.Point{})
}

// pixel maps a drawing coordinate through the projection and viewport to image
// space, origin top left.
func (w *Window) pixel(p f32.Vec2) f32.Vec2 {
	nx, ny := widget.Project(w.proj, p[0], p[1])
	return f32.Vec2{
		(nx + 1) / 2 * float32(w.vw),
		(1 - ny) / 2 * float32(w.vh),
	}
}

// gradient is the bilinear blend of four corner colors over a rectangle.
type gradient struct {
	min, max f32.Vec2
	// tl, tr, bl, br
	c [4]f32.Vec3
}

func newGradient(pts [4]f32.Vec2, vs [4]widget.Vertex) *gradient {
	g := &gradient{min: pts[0], max: pts[0]}
	for _, p := range pts[1:] {
		for i := range p {
			if p[i] < g.min[i] {
				g.min[i] = p[i]
			}
			if p[i] > g.max[i] {
				g.max[i] = p[i]
			}
		}
	}
	cx, cy := (g.min[0]+g.max[0])/2, (g.min[1]+g.max[1])/2
	for i, p := range pts {
		k := 0
		if p[0] > cx {
			k |= 1
		}
		if p[1] > cy {
			k |= 2
		}
		g.c[k] = vs[i].Color
	}
	return g
}

func (g *gradient) ColorModel() color.Model { return color.RGBAModel }
func (g *gradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *gradient) At(x, y int) color.Color {
	u := unit(float32(x)+0.5, g.min[0], g.max[0])
	v := unit(float32(y)+0.5, g.min[1], g.max[1])
	var c [3]float32
	for i := range c {
		top := lerp(g.c[0][i], g.c[1][i], u)
		bot := lerp(g.c[2][i], g.c[3][i], u)
		c[i] = lerp(top, bot, v)
	}
	return color.RGBA{channel(c[0]), channel(c[1]), channel(c[2]), 0xff}
}

func unit(x, lo, hi float32) float32 {
	if hi <= lo {
		return 0
	}
	t := (x - lo) / (hi - lo)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func channel(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 0xff
	}
	return uint8(f*0xff + 0.5)
}
