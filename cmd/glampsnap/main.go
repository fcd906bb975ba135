// Command glampsnap renders glamp frames offscreen and saves them as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/nfnt/resize"

	"dasa.cc/glamp/raster"
	"dasa.cc/glamp/widget"
)

var (
	flagTicks  = flag.Int("ticks", 50, "number of ticks to advance before the snapshot")
	flagWidth  = flag.Int("width", 640, "window width")
	flagHeight = flag.Int("height", 480, "window height")
	flagOut    = flag.String("o", "glamp.png", "output file")
	flagThumb  = flag.String("thumb", "", "also write a thumbnail bounded by WxH next to the output")
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("glampsnap: ")
}

// snapshot ticks a widget n times on an offscreen window and returns the last
// frame.
func snapshot(cfg widget.Config, n int) (image.Image, error) {
	var b raster.Backend
	// offscreen windows have no real parent; any nonzero handle will do.
	w, err := widget.Create(&b, widget.Host{Parent: 1}, cfg)
	if err != nil {
		return nil, err
	}
	defer w.Destroy()

	win := b.Lookup(w.NativeHandle())
	if n == 0 {
		w.Draw()
	}
	for i := 0; i < n; i++ {
		w.Tick()
	}
	return win.Frame(), nil
}

func parseSize(s string) (width, height uint, err error) {
	if _, err := fmt.Sscanf(s, "%dx%d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("bad size %q: %v", s, err)
	}
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("bad size %q: must be positive", s)
	}
	return width, height, nil
}

func writePNG(name string, m image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func thumbName(name string) string {
	const ext = ".png"
	if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
		name = name[:len(name)-len(ext)]
	}
	return name + ".thumb" + ext
}

func main() {
	flag.Parse()

	cfg := widget.DefaultConfig()
	cfg.Width, cfg.Height = *flagWidth, *flagHeight

	m, err := snapshot(cfg, *flagTicks)
	if err != nil {
		log.Fatal(err)
	}
	if err := writePNG(*flagOut, m); err != nil {
		log.Fatal(err)
	}

	if *flagThumb != "" {
		tw, th, err := parseSize(*flagThumb)
		if err != nil {
			log.Fatal(err)
		}
		if err := writePNG(thumbName(*flagOut), resize.Thumbnail(tw, th, m, resize.Lanczos3)); err != nil {
			log.Fatal(err)
		}
	}
}
