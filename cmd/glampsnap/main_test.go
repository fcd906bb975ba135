package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/nfnt/resize"

	"dasa.cc/glamp/widget"
)

func TestSnapshot(t *testing.T) {
	cfg := widget.DefaultConfig()
	cfg.Width, cfg.Height = 64, 32

	m, err := snapshot(cfg, 50)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := m.Bounds(), image.Rect(0, 0, 64, 32); have != want {
		t.Fatalf("bounds: have %v, want %v", have, want)
	}
	if _, _, _, a := m.At(1, 1).RGBA(); a != 0 {
		t.Errorf("margin pixel alpha %v", a)
	}
	if _, g, _, a := m.At(2, 16).RGBA(); a != 0xffff || g == 0 {
		t.Errorf("quad pixel not drawn: g=%v a=%v", g, a)
	}

	thumb := resize.Thumbnail(16, 16, m, resize.Lanczos3)
	if have, want := thumb.Bounds().Size(), image.Pt(16, 8); have != want {
		t.Errorf("thumbnail size: have %v, want %v", have, want)
	}
}

func TestSnapshotFailure(t *testing.T) {
	cfg := widget.DefaultConfig()
	cfg.Width = 0
	if _, err := snapshot(cfg, 1); err == nil {
		t.Fatal("expected error for empty window")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		w, h uint
		ok   bool
	}{
		{"128x96", 128, 96, true},
		{"1x1", 1, 1, true},
		{"0x10", 0, 0, false},
		{"128", 0, 0, false},
		{"axb", 0, 0, false},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if (err == nil) != tt.ok || w != tt.w || h != tt.h {
			t.Errorf("parseSize(%q): have %v %v %v", tt.in, w, h, err)
		}
	}
}

func TestWritePNG(t *testing.T) {
	name := filepath.Join(t.TempDir(), "frame.png")
	m := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := writePNG(name, m); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		t.Fatalf("stat: %v %v", fi, err)
	}
	if have, want := thumbName(name), filepath.Join(filepath.Dir(name), "frame.thumb.png"); have != want {
		t.Errorf("thumbName: have %v, want %v", have, want)
	}
}
