package widget

// Config holds the fixed presentation parameters of a widget.
type Config struct {
	Title string `toml:"title"`

	// Width and Height size the created window.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// LogicalWidth and LogicalHeight are proposed to the host's resize
	// capability and are independent of the created window size.
	LogicalWidth  int `toml:"logical_width"`
	LogicalHeight int `toml:"logical_height"`

	Step         float64 `toml:"step"`   // brightness advance per tick
	Margin       int     `toml:"margin"` // quad inset in pixels
	SwapInterval int     `toml:"swap_interval"`

	ContextMajor int `toml:"context_major"`
	ContextMinor int `toml:"context_minor"`
}

func DefaultConfig() Config {
	return Config{
		Title:         "Glamp",
		Width:         640,
		Height:        480,
		LogicalWidth:  256,
		LogicalHeight: 32,
		Step:          0.01,
		Margin:        2,
		SwapInterval:  1,
		ContextMajor:  2,
		ContextMinor:  0,
	}
}
