//go:build linux && !wayland

package nui

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var dial = xgb.NewConn

// embed reparents win into the X11 window parent.
func embed(win *glfw.Window, parent uintptr) error {
	conn, err := dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	child := xproto.Window(win.GetX11Window())
	return xproto.ReparentWindowChecked(conn, child, xproto.Window(parent), 0, 0).Check()
}

func nativeHandle(win *glfw.Window) uintptr { return uintptr(win.GetX11Window()) }
