package main

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"golang.org/x/exp/shiny/materialdesign/colornames"
)

// parent is the top level X11 window the UI embeds itself into.
type parent struct {
	conn *xgb.Conn
	win  xproto.Window
}

var backdrop = colornames.BlueGrey900

func openParent(title string, width, height int) (*parent, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %v", err)
	}
	p := &parent{conn: conn}
	if err := p.create(title, width, height); err != nil {
		conn.Close()
		return nil, err
	}
	return p, nil
}

func (p *parent) create(title string, width, height int) error {
	screen := xproto.Setup(p.conn).DefaultScreen(p.conn)
	win, err := xproto.NewWindowId(p.conn)
	if err != nil {
		return err
	}
	mask, values := attributes()
	err = xproto.CreateWindowChecked(p.conn, screen.RootDepth, win, screen.Root,
		0, 0, uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		mask, values).Check()
	if err != nil {
		return fmt.Errorf("create parent window: %v", err)
	}
	p.win = win

	err = xproto.ChangePropertyChecked(p.conn, xproto.PropModeReplace, win,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title)).Check()
	if err != nil {
		return err
	}
	return xproto.MapWindowChecked(p.conn, win).Check()
}

// attributes of the parent window. No events are selected; nothing reads the
// connection's event queue and a full queue stalls replies.
func attributes() (mask uint32, values []uint32) {
	pixel := uint32(backdrop.R)<<16 | uint32(backdrop.G)<<8 | uint32(backdrop.B)
	return xproto.CwBackPixel, []uint32{pixel}
}

// Handle is the window id handed to the UI as its parent.
func (p *parent) Handle() uintptr { return uintptr(p.win) }

// UIResize resizes the parent to fit the UI's request.
func (p *parent) UIResize(width, height int) int {
	if width <= 0 || height <= 0 {
		return 1
	}
	err := xproto.ConfigureWindowChecked(p.conn, p.win,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(width), uint32(height)}).Check()
	if err != nil {
		return 1
	}
	return 0
}

func (p *parent) Close() {
	xproto.DestroyWindow(p.conn, p.win)
	p.conn.Close()
}
