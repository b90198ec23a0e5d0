package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"tetrobox/board"
	"tetrobox/canvas"
	"tetrobox/core"
)

const ansiReset = "\x1b[0m"

// ANSI returns the escape sequence selecting the foreground color of c, or
// "" when c is drawn in the terminal default.
func (p *Palette) ANSI(c core.Color) string {
	col := p.colors[c]
	if col == tcell.ColorDefault {
		return ""
	}
	r, g, b := col.RGB()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// ColoredString renders m with every glyph in the color of the cell it
// borders. Escape sequences are only written when the color changes.
func ColoredString(m *canvas.Matrix, g *board.BoxGrid, p *Palette) string {
	var sb strings.Builder

	for row, runes := range m.Rows() {
		current := ""
		for col, r := range runes {
			color := ""
			if r != ' ' {
				color = p.ANSI(colorAt(g, m.Vertex(col, row)))
			}

			if color != current {
				if current != "" {
					sb.WriteString(ansiReset)
				}
				sb.WriteString(color)
				current = color
			}
			sb.WriteRune(r)
		}

		if current != "" {
			sb.WriteString(ansiReset)
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
