package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"dasa.cc/glamp/lv2"
	"dasa.cc/glamp/widget"
)

var errNoUI = errors.New("no ui; use create")

// host plays the plugin container: it owns the parent window and drives one
// UI instance through its descriptor.
type host struct {
	d      lv2.Descriptor
	cfg    Config
	parent uintptr
	resize lv2.Resize
	out    io.Writer

	ui *widget.Widget
}

func (h *host) features() []lv2.Feature {
	fs := []lv2.Feature{{URI: lv2.ParentURI, Data: h.parent}}
	if h.cfg.Resize && h.resize != nil {
		fs = append(fs, lv2.Feature{URI: lv2.ResizeURI, Data: h.resize})
	}
	return fs
}

func (h *host) write(port, size, format uint32, buffer []byte) {
	fmt.Fprintf(h.out, "write port=%v size=%v format=%v\n", port, size, format)
}

func (h *host) idle() (int, error) {
	if h.ui == nil || h.ui.State() != widget.Ready {
		return 0, errNoUI
	}
	iface, ok := h.d.ExtensionData(lv2.IdleInterfaceURI).(*lv2.IdleInterface)
	if !ok {
		return 0, errors.New("ui has no idle interface")
	}
	return iface.Idle(h.ui), nil
}

const usage = `commands:
  create              instantiate the ui in the parent window
  tick [n]            call idle n times (default 1)
  run <duration>      call idle at the configured rate for duration
  port <index> <v>    send a float port event
  state               print ui state
  destroy             clean up the ui; repeating it is harmless
  help                print this
  quit                exit`

// exec runs one command line. It reports whether the host should exit.
func (h *host) exec(line string) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}

	switch args[0] {
	case "create":
		if h.ui != nil && h.ui.State() == widget.Ready {
			return false, errors.New("ui already created")
		}
		ui, native, err := h.d.Instantiate(h.write, h, h.features())
		if err != nil {
			return false, err
		}
		h.ui = ui
		fmt.Fprintf(h.out, "created native=%#x\n", native)

	case "tick":
		n := 1
		if len(args) > 1 {
			if n, err = strconv.Atoi(args[1]); err != nil {
				return false, err
			}
		}
		for i := 0; i < n; i++ {
			if _, err := h.idle(); err != nil {
				return false, err
			}
		}
		h.state()

	case "run":
		if len(args) < 2 {
			return false, errors.New("run: missing duration")
		}
		d, err := time.ParseDuration(args[1])
		if err != nil {
			return false, err
		}
		if err := h.run(d); err != nil {
			return false, err
		}
		h.state()

	case "port":
		if len(args) < 3 {
			return false, errors.New("port: want index and value")
		}
		if h.ui == nil {
			return false, errNoUI
		}
		idx, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return false, err
		}
		v, err := strconv.ParseFloat(args[2], 32)
		if err != nil {
			return false, err
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
		h.d.PortEvent(h.ui, uint32(idx), uint32(len(buf)), 0, buf)

	case "state":
		if h.ui == nil {
			return false, errNoUI
		}
		h.state()

	case "destroy":
		if h.ui == nil {
			return false, errNoUI
		}
		h.d.Cleanup(h.ui)
		h.state()

	case "help":
		fmt.Fprintln(h.out, usage)

	case "quit", "exit":
		if h.ui != nil {
			h.d.Cleanup(h.ui)
		}
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q; try help", args[0])
	}
	return false, nil
}

func (h *host) run(d time.Duration) error {
	rate := h.cfg.Rate
	if rate <= 0 {
		rate = 60
	}
	t := time.NewTicker(time.Second / time.Duration(rate))
	defer t.Stop()
	done := time.After(d)
	for {
		select {
		case <-done:
			return nil
		case <-t.C:
			if _, err := h.idle(); err != nil {
				return err
			}
		}
	}
}

func (h *host) state() {
	w, ht := h.ui.Size()
	lw, lh := h.ui.LogicalSize()
	fmt.Fprintf(h.out, "%v brightness=%.2f size=%vx%v logical=%vx%v\n", h.ui.State(), h.ui.Brightness(), w, ht, lw, lh)
}
