package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tetrobox/core"
)

// goldenAngle spreads consecutive hues as far apart as possible.
const goldenAngle = 137.50776405003785

// Palette maps cell colors to terminal colors.
type Palette struct {
	colors [256]tcell.Color
}

// NewPalette builds the palette. Without color support every entry is the
// terminal default.
func NewPalette(caps Capabilities) *Palette {
	p := &Palette{}
	for i := range p.colors {
		p.colors[i] = tcell.ColorDefault
	}
	if !caps.SupportsColor {
		return p
	}

	for i := 1; i < int(core.Wall); i++ {
		hue := math.Mod(float64(i-1)*goldenAngle, 360)
		r, g, b := colorful.Hsv(hue, 0.65, 0.95).RGB255()
		p.colors[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	p.colors[core.Wall] = tcell.ColorGray
	return p
}

// Color returns the terminal color for c.
func (p *Palette) Color(c core.Color) tcell.Color {
	return p.colors[c]
}

// Style returns the default style drawn in the color of c.
func (p *Palette) Style(c core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(p.colors[c])
}
