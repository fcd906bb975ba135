package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/mobile/event/key"

	"dasa.cc/glamp/widget"
)

func create(t *testing.T, b *Backend, width, height int) (*widget.Widget, *Window) {
	t.Helper()
	cfg := widget.DefaultConfig()
	cfg.Width, cfg.Height = width, height
	w, err := widget.Create(b, widget.Host{Parent: 1}, cfg)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return w, b.current
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestFrameInset(t *testing.T) {
	for _, sz := range [][2]int{{5, 5}, {6, 9}, {64, 48}, {640, 480}} {
		var b Backend
		w, win := create(t, &b, sz[0], sz[1])
		w.SetBrightness(0.49)
		w.Tick()

		m := win.Frame()
		inner := widget.Inset(sz[0], sz[1], 2)
		for y := 0; y < sz[1]; y++ {
			for x := 0; x < sz[0]; x++ {
				a := m.RGBAAt(x, y).A
				if in := image.Pt(x, y).In(inner); in && a != 0xff {
					t.Fatalf("%vx%v: pixel %v,%v inside quad has alpha %v", sz[0], sz[1], x, y, a)
				} else if !in && a != 0 {
					t.Fatalf("%vx%v: pixel %v,%v in margin has alpha %v", sz[0], sz[1], x, y, a)
				}
			}
		}
	}
}

func TestFrameGradient(t *testing.T) {
	var b Backend
	w, win := create(t, &b, 640, 480)
	w.SetBrightness(0.49)
	w.Tick()

	m := win.Frame()
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 240, color.RGBA{0, 127, 0, 0xff}},
		{637, 240, color.RGBA{127, 26, 0, 0xff}},
		{637, 2, color.RGBA{127, 26, 0, 0xff}},
		{320, 100, color.RGBA{64, 76, 0, 0xff}},
	}
	for _, tt := range tests {
		have := m.RGBAAt(tt.x, tt.y)
		if !near(have.R, tt.want.R, 2) || !near(have.G, tt.want.G, 2) || have.B != 0 || have.A != 0xff {
			t.Errorf("pixel %v,%v: have %v, want %v", tt.x, tt.y, have, tt.want)
		}
	}
}

func TestFramePulse(t *testing.T) {
	var b Backend
	w, win := create(t, &b, 32, 32)
	w.SetBrightness(0.005)

	var prev uint8
	for i := 1; i <= 100; i++ {
		w.Tick()
		g := win.Frame().RGBAAt(2, 16).G
		if i < 100 && g < prev {
			t.Fatalf("tick %v: green fell from %v to %v", i, prev, g)
		}
		prev = g
	}
	if prev > 2 {
		t.Errorf("green after a full cycle: have %v, want ~0", prev)
	}
	if have, want := win.Frames(), 100; have != want {
		t.Errorf("frames: have %v, want %v", have, want)
	}
}

func TestResize(t *testing.T) {
	var b Backend
	w, win := create(t, &b, 640, 480)
	win.Resize(100, 50)

	if width, height := w.Size(); width != 100 || height != 50 {
		t.Fatalf("widget size: have %vx%v, want 100x50", width, height)
	}
	if vw, vh := win.Viewport(); vw != 100 || vh != 50 {
		t.Fatalf("viewport: have %vx%v, want 100x50", vw, vh)
	}

	w.SetBrightness(0.5)
	win.Refresh()
	m := win.Frame()
	if have := m.Bounds(); have != image.Rect(0, 0, 100, 50) {
		t.Fatalf("frame bounds: %v", have)
	}
	if a := m.RGBAAt(97, 47).A; a != 0xff {
		t.Errorf("quad corner not drawn after resize: alpha %v", a)
	}
	if a := m.RGBAAt(98, 48).A; a != 0 {
		t.Errorf("margin drawn after resize: alpha %v", a)
	}
}

func TestSharedContext(t *testing.T) {
	var b Backend
	w1, win1 := create(t, &b, 64, 64)
	w2, win2 := create(t, &b, 32, 32)

	for i := 0; i < 10; i++ {
		w1.Tick()
		win2.Refresh()
		w2.Tick()
		win1.Resize(64+i, 64)
	}
	if win1.Stray() != 0 || win2.Stray() != 0 {
		t.Fatalf("drew into the wrong context: %v, %v", win1.Stray(), win2.Stray())
	}
	if win1.NativeHandle() == win2.NativeHandle() {
		t.Error("windows share a native handle")
	}

	w1.Destroy()
	w2.Destroy()
	if have := b.Refs(); have != 0 {
		t.Errorf("refs after destroy: %v", have)
	}
}

func TestDestroy(t *testing.T) {
	var b Backend
	w, win := create(t, &b, 64, 64)
	w.Destroy()
	w.Destroy()

	if !win.Destroyed() {
		t.Fatal("window not destroyed")
	}
	if have := b.Refs(); have != 0 {
		t.Errorf("refs: have %v, want 0", have)
	}
	frames := win.Frames()
	win.Refresh()
	w.Tick()
	if win.Frames() != frames {
		t.Error("drew after destroy")
	}
}

func TestCreateFailure(t *testing.T) {
	b := Backend{WindowErr: errors.New("no display")}
	_, err := widget.Create(&b, widget.Host{Parent: 1}, widget.DefaultConfig())
	if !errors.Is(err, widget.ErrWindowCreateFailed) {
		t.Fatalf("have %v, want %v", err, widget.ErrWindowCreateFailed)
	}
	if have := b.Refs(); have != 0 {
		t.Errorf("refs leaked: %v", have)
	}
}

func TestInject(t *testing.T) {
	var b Backend
	w, win := create(t, &b, 64, 64)

	var keys []rune
	w.SetHandlers(widget.Handlers{Key: func(_ *widget.Widget, e key.Event) { keys = append(keys, e.Rune) }})
	win.Inject(key.Event{Rune: 'g', Direction: key.DirPress}, key.Event{Rune: 'g', Direction: key.DirRelease})
	w.Tick()

	if have, want := string(keys), "gg"; have != want {
		t.Fatalf("have %q, want %q", have, want)
	}
	if evs := win.PollEvents(); len(evs) != 0 {
		t.Errorf("undrained events: %v", evs)
	}
}

func TestLookup(t *testing.T) {
	var b Backend
	w, win := create(t, &b, 16, 16)
	if have := b.Lookup(w.NativeHandle()); have != win {
		t.Fatalf("Lookup: have %p, want %p", have, win)
	}
	h := w.NativeHandle()
	w.Destroy()
	if have := b.Lookup(h); have != nil {
		t.Errorf("Lookup after destroy: have %p", have)
	}
}
