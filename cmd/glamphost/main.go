// Command glamphost is a minimal interactive LV2 UI host for glamp.
//
// It opens an X11 window, embeds the UI in it and drives the UI from a
// command prompt:
//
//	glamphost -config glamp.toml
//	glamp> create
//	glamp> run 5s
//	glamp> destroy
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/chzyer/readline"

	"dasa.cc/glamp/lv2"
	"dasa.cc/glamp/nui"
	"dasa.cc/glamp/widget"
)

var (
	flagConfig  = flag.String("config", "", "TOML configuration file")
	flagVerbose = flag.Bool("v", false, "log debug events")
)

func init() {
	// glfw and the GL context are bound to the main thread.
	runtime.LockOSThread()
	log.SetFlags(0)
	log.SetPrefix("glamphost: ")
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("create"),
	readline.PcItem("tick"),
	readline.PcItem("run"),
	readline.PcItem("port"),
	readline.PcItem("state"),
	readline.PcItem("destroy"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

func main() {
	flag.Parse()

	if *flagVerbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		widget.SetLogger(slog.New(h).With("ui", "glamp"))
	}

	cfg, err := LoadConfig(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}

	p, err := openParent(cfg.UI.Title, cfg.UI.Width, cfg.UI.Height)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "glamp> ",
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	log.SetOutput(rl.Stderr())

	h := &host{
		d:      lv2.NewDescriptor(nui.Backend{}, cfg.UI),
		cfg:    cfg,
		parent: p.Handle(),
		resize: p,
		out:    rl.Stdout(),
	}
	defer h.exec("quit")
	fmt.Fprintln(h.out, usage)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		quit, err := h.exec(line)
		if err != nil {
			log.Println(err)
		}
		if quit {
			break
		}
	}
}
