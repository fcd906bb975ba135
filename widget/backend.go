package widget

import "golang.org/x/image/math/f32"

// Backend provides windows with a rendering context. Init and Terminate are
// paired; every successful Init is released by exactly one Terminate.
type Backend interface {
	Init() error
	NewWindow(opts WindowOptions) (Window, error)
	Terminate()
}

type WindowOptions struct {
	Parent        uintptr
	Title         string
	Width, Height int

	ContextMajor, ContextMinor int
}

// Canvas is the immediate-mode drawing surface of a window.
type Canvas interface {
	// Reshape sets the viewport to width×height and loads proj as the
	// projection with depth testing disabled.
	Reshape(width, height int, proj f32.Mat4)
	Clear()
	// Quad fills the quadrilateral with colors interpolated between vertices.
	Quad(v [4]Vertex)
	// Present swaps the finished frame to screen.
	Present()
}

type Window interface {
	Canvas

	NativeHandle() uintptr
	Size() (width, height int)
	MakeContextCurrent()
	SetSwapInterval(interval int)

	OnRefresh(fn func())
	OnResize(fn func(width, height int))

	// PollEvents processes pending window system events without blocking and
	// returns input events for this window in arrival order.
	PollEvents() []interface{}

	Destroy()
}

type Vertex struct {
	Pos   f32.Vec2
	Color f32.Vec3
}
