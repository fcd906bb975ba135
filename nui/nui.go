// Package nui aims to be unremarkable in aiding windowing: a glfw backend for
// widget, embedded in the host's window.
package nui

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

var keycodes = map[glfw.Key]key.Code{
	glfw.KeyA: key.CodeA, glfw.KeyB: key.CodeB, glfw.KeyC: key.CodeC, glfw.KeyD: key.CodeD,
	glfw.KeyE: key.CodeE, glfw.KeyF: key.CodeF, glfw.KeyG: key.CodeG, glfw.KeyH: key.CodeH,
	glfw.KeyI: key.CodeI, glfw.KeyJ: key.CodeJ, glfw.KeyK: key.CodeK, glfw.KeyL: key.CodeL,
	glfw.KeyM: key.CodeM, glfw.KeyN: key.CodeN, glfw.KeyO: key.CodeO, glfw.KeyP: key.CodeP,
	glfw.KeyQ: key.CodeQ, glfw.KeyR: key.CodeR, glfw.KeyS: key.CodeS, glfw.KeyT: key.CodeT,
	glfw.KeyU: key.CodeU, glfw.KeyV: key.CodeV, glfw.KeyW: key.CodeW, glfw.KeyX: key.CodeX,
	glfw.KeyY: key.CodeY, glfw.KeyZ: key.CodeZ,

	glfw.Key0: key.Code0, glfw.Key1: key.Code1, glfw.Key2: key.Code2, glfw.Key3: key.Code3,
	glfw.Key4: key.Code4, glfw.Key5: key.Code5, glfw.Key6: key.Code6, glfw.Key7: key.Code7,
	glfw.Key8: key.Code8, glfw.Key9: key.Code9,

	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeyBackspace:    key.CodeDeleteBackspace,
	glfw.KeyDelete:       key.CodeDeleteForward,
	glfw.KeyMinus:        key.CodeHyphenMinus,
	glfw.KeyEqual:        key.CodeEqualSign,
	glfw.KeyLeftBracket:  key.CodeLeftSquareBracket,
	glfw.KeyRightBracket: key.CodeRightSquareBracket,
	glfw.KeySemicolon:    key.CodeSemicolon,
	glfw.KeyComma:        key.CodeComma,
	glfw.KeyPeriod:       key.CodeFullStop,
	glfw.KeySlash:        key.CodeSlash,

	glfw.KeyLeft:  key.CodeLeftArrow,
	glfw.KeyRight: key.CodeRightArrow,
	glfw.KeyUp:    key.CodeUpArrow,
	glfw.KeyDown:  key.CodeDownArrow,

	glfw.KeyHome:     key.CodeHome,
	glfw.KeyEnd:      key.CodeEnd,
	glfw.KeyPageUp:   key.CodePageUp,
	glfw.KeyPageDown: key.CodePageDown,

	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyLeftSuper:    key.CodeLeftGUI,
	glfw.KeyRightSuper:   key.CodeRightGUI,
}

var buttons = map[glfw.MouseButton]mouse.Button{
	glfw.MouseButtonLeft:   mouse.ButtonLeft,
	glfw.MouseButtonMiddle: mouse.ButtonMiddle,
	glfw.MouseButtonRight:  mouse.ButtonRight,
}

func modifiers(mods glfw.ModifierKey) (m key.Modifiers) {
	if mods&glfw.ModShift != 0 {
		m |= key.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= key.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= key.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= key.ModMeta
	}
	return m
}

// keyRune returns the rune typed by k on a US layout, or -1.
func keyRune(k glfw.Key, mods glfw.ModifierKey) rune {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		r := 'a' + rune(k-glfw.KeyA)
		if mods&glfw.ModShift != 0 {
			r -= 'a' - 'A'
		}
		return r
	case k >= glfw.Key0 && k <= glfw.Key9:
		return '0' + rune(k-glfw.Key0)
	case k == glfw.KeySpace:
		return ' '
	}
	return -1
}

func keyEvent(k glfw.Key, action glfw.Action, mods glfw.ModifierKey) key.Event {
	e := key.Event{
		Rune:      keyRune(k, mods),
		Code:      keycodes[k],
		Modifiers: modifiers(mods),
	}
	switch action {
	case glfw.Press:
		e.Direction = key.DirPress
	case glfw.Release:
		e.Direction = key.DirRelease
	}
	return e
}

func motionEvent(x, y float64) mouse.Event {
	return mouse.Event{X: float32(x), Y: float32(y), Direction: mouse.DirNone}
}

func buttonEvent(b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey, x, y float32) mouse.Event {
	e := mouse.Event{X: x, Y: y, Button: buttons[b], Modifiers: modifiers(mods)}
	if e.Button == mouse.ButtonNone {
		e.Button = mouse.Button(b + 1)
	}
	switch action {
	case glfw.Press:
		e.Direction = mouse.DirPress
	case glfw.Release:
		e.Direction = mouse.DirRelease
	}
	return e
}
