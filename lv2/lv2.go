// Package lv2 adapts widget to the LV2 UI extension's descriptor contract.
package lv2

import (
	"sync"

	"dasa.cc/glamp/widget"
)

// URI identifies this UI to hosts and must never change.
const URI = "http://drobilla.net/plugins/glamp#ui"

const (
	uiPrefix = "http://lv2plug.in/ns/extensions/ui#"

	ParentURI        = uiPrefix + "parent"
	ResizeURI        = uiPrefix + "resize"
	IdleInterfaceURI = uiPrefix + "idleInterface"
)

// Feature is a host capability keyed by URI. For ParentURI Data is the
// native parent window as a uintptr; for ResizeURI it is a Resize.
type Feature struct {
	URI  string
	Data interface{}
}

// Resize is the host's resize capability. UIResize returns nonzero if the host
// refused.
type Resize interface {
	UIResize(width, height int) int
}

// IdleInterface is returned by ExtensionData for IdleInterfaceURI. Idle is
// called once per host refresh cycle.
type IdleInterface struct {
	Idle func(w *widget.Widget) int
}

var idleInterface = &IdleInterface{
	Idle: func(w *widget.Widget) int { return w.Tick() },
}

// Descriptor is the table of operations a host drives a UI through.
type Descriptor interface {
	URI() string
	Instantiate(write widget.WriteFunc, controller widget.Controller, features []Feature) (*widget.Widget, uintptr, error)
	Cleanup(w *widget.Widget)
	PortEvent(w *widget.Widget, port, bufferSize, format uint32, buffer []byte)
	ExtensionData(uri string) interface{}
}

type descriptor struct {
	backend widget.Backend
	cfg     widget.Config
}

// NewDescriptor returns the glamp UI descriptor creating windows through b.
func NewDescriptor(b widget.Backend, cfg widget.Config) Descriptor {
	return &descriptor{backend: b, cfg: cfg}
}

func (d *descriptor) URI() string { return URI }

// Instantiate creates a widget and returns it with the native window handle
// the host should embed.
func (d *descriptor) Instantiate(write widget.WriteFunc, controller widget.Controller, features []Feature) (*widget.Widget, uintptr, error) {
	host := widget.Host{Write: write, Controller: controller}
	host.Parent, host.Resize = parseFeatures(features)

	w, err := widget.Create(d.backend, host, d.cfg)
	if err != nil {
		return nil, 0, err
	}
	return w, w.NativeHandle(), nil
}

func (d *descriptor) Cleanup(w *widget.Widget) { w.Destroy() }

func (d *descriptor) PortEvent(w *widget.Widget, port, bufferSize, format uint32, buffer []byte) {
	w.PortEvent(port, bufferSize, format, buffer)
}

func (d *descriptor) ExtensionData(uri string) interface{} {
	if uri == IdleInterfaceURI {
		return idleInterface
	}
	return nil
}

func parseFeatures(features []Feature) (parent uintptr, r widget.Resizer) {
	for _, f := range features {
		switch f.URI {
		case ParentURI:
			if p, ok := f.Data.(uintptr); ok {
				parent = p
			}
		case ResizeURI:
			if rs, ok := f.Data.(Resize); ok && rs != nil {
				r = resizer{rs}
			}
		}
	}
	return parent, r
}

type resizer struct{ Resize }

func (r resizer) ProposeSize(width, height int) {
	if status := r.UIResize(width, height); status != 0 {
		widget.Logger().Warn("host refused resize", "width", width, "height", height, "status", status)
	}
}

// Handles maps opaque handles given to a host onto widgets, so that a handle
// the host releases twice is only released once.
type Handles struct {
	mu   sync.Mutex
	next uintptr
	m    map[uintptr]*widget.Widget
}

// Put registers w and returns its nonzero handle.
func (hs *Handles) Put(w *widget.Widget) uintptr {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if hs.m == nil {
		hs.m = make(map[uintptr]*widget.Widget)
	}
	hs.next++
	hs.m[hs.next] = w
	return hs.next
}

func (hs *Handles) Get(h uintptr) (*widget.Widget, bool) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	w, ok := hs.m[h]
	return w, ok
}

// Take unregisters h and returns its widget.
func (hs *Handles) Take(h uintptr) (*widget.Widget, bool) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	w, ok := hs.m[h]
	delete(hs.m, h)
	return w, ok
}

func (hs *Handles) Len() int {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return len(hs.m)
}
