// Command glamp_ui is the Glamp LV2 plugin UI, built as a shared object:
//
//	go build -buildmode=c-shared -o glamp_ui.so ./cmd/glamp_ui
//
// The host finds it through lv2ui_descriptor and drives it on its UI thread.
package main

/*
#cgo pkg-config: lv2

#include "glamp_ui.h"
*/
import "C"

import (
	"unsafe"

	"dasa.cc/glamp/lv2"
	"dasa.cc/glamp/nui"
	"dasa.cc/glamp/widget"
)

var (
	descriptor = lv2.NewDescriptor(nui.Backend{}, widget.DefaultConfig())
	handles    lv2.Handles
	uri        = C.CString(descriptor.URI())
)

type hostResize struct{ p *C.LV2UI_Resize }

func (r hostResize) UIResize(width, height int) int {
	return int(C.glamp_resize(r.p, C.int(width), C.int(height)))
}

// features converts the host's NULL terminated feature array.
func features(p **C.LV2_Feature) (fs []lv2.Feature) {
	for ; p != nil && *p != nil; p = (**C.LV2_Feature)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
		f := *p
		if f.URI == nil {
			continue
		}
		feature := lv2.Feature{URI: C.GoString(f.URI)}
		switch feature.URI {
		case lv2.ParentURI:
			feature.Data = uintptr(f.data)
		case lv2.ResizeURI:
			if f.data != nil {
				feature.Data = hostResize{(*C.LV2UI_Resize)(f.data)}
			}
		}
		fs = append(fs, feature)
	}
	return fs
}

func writer(write C.LV2UI_Write_Function, controller C.LV2UI_Controller) widget.WriteFunc {
	if write == nil {
		return nil
	}
	return func(port, size, format uint32, buffer []byte) {
		var p unsafe.Pointer
		if len(buffer) > 0 {
			p = unsafe.Pointer(&buffer[0])
		}
		C.glamp_write(write, controller, C.uint32_t(port), C.uint32_t(size), C.uint32_t(format), p)
	}
}

//export glampURI
func glampURI() *C.char { return uri }

//export glampInstantiate
func glampInstantiate(write C.LV2UI_Write_Function, controller C.LV2UI_Controller, fs **C.LV2_Feature, native *C.uintptr_t) C.uintptr_t {
	w, handle, err := descriptor.Instantiate(writer(write, controller), controller, features(fs))
	if err != nil {
		return 0
	}
	*native = C.uintptr_t(handle)
	return C.uintptr_t(handles.Put(w))
}

//export glampCleanup
func glampCleanup(h C.uintptr_t) {
	if w, ok := handles.Take(uintptr(h)); ok {
		descriptor.Cleanup(w)
	}
}

//export glampPortEvent
func glampPortEvent(h C.uintptr_t, port, size, format C.uint32_t, buffer unsafe.Pointer) {
	w, ok := handles.Get(uintptr(h))
	if !ok {
		return
	}
	var buf []byte
	if buffer != nil && size > 0 {
		n, ok := bufferLen(uint32(size))
		if !ok {
			widget.Logger().Warn("port buffer too large", "port", uint32(port), "size", uint32(size))
			return
		}
		buf = C.GoBytes(buffer, C.int(n))
	}
	descriptor.PortEvent(w, uint32(port), uint32(size), uint32(format), buf)
}

//export glampIdle
func glampIdle(h C.uintptr_t) C.int {
	w, ok := handles.Get(uintptr(h))
	if !ok {
		return 0
	}
	idle := descriptor.ExtensionData(lv2.IdleInterfaceURI).(*lv2.IdleInterface)
	return C.int(idle.Idle(w))
}

//export glampExtensionData
func glampExtensionData(u *C.char) C.int {
	switch descriptor.ExtensionData(C.GoString(u)).(type) {
	case *lv2.IdleInterface:
		return C.GLAMP_EXT_IDLE
	}
	return C.GLAMP_EXT_NONE
}

func main() {}
