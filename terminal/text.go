package terminal

import (
	"io"

	"tetrobox/canvas"
	"tetrobox/stacker"
)

// clearHome clears the screen and moves the cursor to the top left.
const clearHome = "\x1b[2J\x1b[H"

// TextSink writes every frame as plain text, colored when the terminal
// supports it.
type TextSink struct {
	w       io.Writer
	table   canvas.GlyphTable
	palette *Palette
	color   bool
	clear   bool
}

var _ stacker.Sink = (*TextSink)(nil)

// NewTextSink writes frames to w. With clear set each frame starts on a
// cleared screen.
func NewTextSink(w io.Writer, caps Capabilities, clear bool) *TextSink {
	return &TextSink{
		w:       w,
		table:   caps.Glyphs(),
		palette: NewPalette(caps),
		color:   caps.SupportsColor,
		clear:   clear,
	}
}

// Show writes the board.
func (s *TextSink) Show(f stacker.Frame) error {
	m := f.Grid.Raster(s.table, f.Field)

	var text string
	if s.color {
		text = ColoredString(m, f.Grid, s.palette)
	} else {
		text = m.String()
	}

	if s.clear {
		text = clearHome + text
	} else {
		text += "\n"
	}
	_, err := io.WriteString(s.w, text)
	return err
}
