// Package terminal shows stacker frames on a terminal, either through a
// tcell screen or as plain text.
package terminal

import (
	"os"
	"strings"

	"tetrobox/canvas"
)

// Capabilities describes what the current terminal can display.
type Capabilities struct {
	Name          string
	Unicode       bool
	SupportsColor bool
	ColorDepth    int // 0, 8, 256, or 24-bit
}

// Glyphs returns the glyph table the terminal can display.
func (c Capabilities) Glyphs() canvas.GlyphTable {
	if c.Unicode {
		return canvas.Glyphs
	}
	return canvas.ASCIIGlyphs
}

// DetectCapabilities detects the current terminal's capabilities.
func DetectCapabilities() Capabilities {
	return Detect(os.Getenv)
}

// Detect works out the capabilities from the environment read through getenv.
func Detect(getenv func(string) string) Capabilities {
	// Allow override via environment variable
	switch getenv("TETROBOX_TERMINAL_MODE") {
	case "ascii":
		return ForceASCII()
	case "unicode":
		return withNoColor(ForceUnicode(), getenv)
	}

	term := getenv("TERM")
	caps := Capabilities{Name: term, Unicode: true}

	if term != "" && term != "dumb" {
		switch {
		case strings.Contains(term, "256color"):
			caps.SupportsColor, caps.ColorDepth = true, 256
		case strings.Contains(term, "color"):
			caps.SupportsColor, caps.ColorDepth = true, 8
		case strings.HasPrefix(term, "xterm"), strings.HasPrefix(term, "screen"):
			caps.SupportsColor, caps.ColorDepth = true, 256
		}
	}
	if ct := getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		caps.SupportsColor, caps.ColorDepth = true, 24
	}

	// The linux console font has no box-drawing corners worth using.
	if !utf8Locale(getenv) || term == "linux" || term == "dumb" {
		caps.Unicode = false
	}

	return withNoColor(caps, getenv)
}

// withNoColor honours NO_COLOR (https://no-color.org/).
func withNoColor(caps Capabilities, getenv func(string) string) Capabilities {
	if getenv("NO_COLOR") != "" {
		caps.SupportsColor = false
		caps.ColorDepth = 0
	}
	return caps
}

// utf8Locale checks if the locale supports UTF-8.
func utf8Locale(getenv func(string) string) bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := getenv(env)
		if value == "" {
			continue
		}
		// C.UTF-8, en_US.utf8, en_US.UTF-8@euro, ...
		upper := strings.ToUpper(value)
		return strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
	}
	return false
}

// ForceASCII returns capabilities configured for ASCII-only output.
func ForceASCII() Capabilities {
	return Capabilities{Name: "ascii"}
}

// ForceUnicode returns capabilities configured for full Unicode support.
func ForceUnicode() Capabilities {
	return Capabilities{
		Name:          "unicode",
		Unicode:       true,
		SupportsColor: true,
		ColorDepth:    24,
	}
}
