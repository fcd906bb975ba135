//go:build !linux || wayland

package nui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"dasa.cc/glamp/widget"
)

// embed leaves win as a top level window; only X11 embedding is supported.
func embed(win *glfw.Window, parent uintptr) error {
	widget.Logger().Warn("embedding unsupported on this platform, window is top level", "parent", parent)
	return nil
}

func nativeHandle(win *glfw.Window) uintptr { return uintptr(win.Handle()) }
