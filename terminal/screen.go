package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tetrobox/board"
	"tetrobox/canvas"
	"tetrobox/core"
	"tetrobox/geometry"
	"tetrobox/stacker"
)

// ErrQuit is the cancel cause when the user asks to leave.
var ErrQuit = errors.New("quit")

// ScreenSink draws frames on a tcell screen.
type ScreenSink struct {
	screen  tcell.Screen
	table   canvas.GlyphTable
	palette *Palette
}

var _ stacker.Sink = (*ScreenSink)(nil)

// NewScreenSink draws on an initialised screen.
func NewScreenSink(screen tcell.Screen, caps Capabilities) *ScreenSink {
	return &ScreenSink{
		screen:  screen,
		table:   caps.Glyphs(),
		palette: NewPalette(caps),
	}
}

// Show draws the board with a status line underneath it. The outline of
// the piece placed last is drawn bold.
func (s *ScreenSink) Show(f stacker.Frame) error {
	m := f.Grid.Raster(s.table, f.Field)
	rows := m.Rows()

	s.screen.Clear()
	if w, h := s.screen.Size(); w < m.Width() || h <= len(rows) {
		drawText(s.screen, 0, fmt.Sprintf("terminal too small: need %dx%d", m.Width(), len(rows)+1))
		s.screen.Show()
		return nil
	}

	bold := placedOutline(m, f.Placed)
	for row, runes := range rows {
		x := 0
		for col, r := range runes {
			style := s.palette.Style(colorAt(f.Grid, m.Vertex(col, row)))
			if bold[[2]int{col, row}] {
				style = style.Bold(true)
			}
			s.screen.SetContent(x, row, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}

	drawText(s.screen, len(rows), fmt.Sprintf("round %d  piece %d (%s)  q to quit", f.Round, f.Pieces, f.Piece))
	s.screen.Show()
	return nil
}

func drawText(screen tcell.Screen, row int, text string) {
	x := 0
	for _, r := range text {
		screen.SetContent(x, row, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
}

// placedOutline returns the raster positions of every vertex on the border
// of a placed cell, keyed by column and row.
func placedOutline(m *canvas.Matrix, placed geometry.Shape) map[[2]int]bool {
	out := make(map[[2]int]bool, len(placed)*9)
	for _, p := range placed {
		corner := core.DoubleX(p)
		for dx := 0; dx <= 2; dx++ {
			for dy := -1; dy <= 0; dy++ {
				col, row := m.Cell(core.Pt(corner.X+dx, corner.Y+dy))
				out[[2]int{col, row}] = true
			}
		}
	}
	return out
}

// colorAt picks the cell a glyph at vertex v belongs to. Cells below the
// vertex win over cells above it, and cells to its right over cells to its
// left. Only even columns have cells on their left.
func colorAt(g *board.BoxGrid, v core.Point) core.Color {
	x := v.X >> 1
	columns := []int{x}
	if v.X&1 == 0 {
		columns = append(columns, x-1)
	}
	for _, cx := range columns {
		for _, cy := range []int{v.Y, v.Y + 1} {
			if c := g.Get(core.Pt(cx, cy)); c != core.Empty {
				return c
			}
		}
	}
	return core.Empty
}

// WatchKeys polls screen events until the screen is finalised. q, Esc and
// Ctrl-C cancel with ErrQuit; a resize redraws.
func WatchKeys(screen tcell.Screen, cancel context.CancelCauseFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				cancel(ErrQuit)
				return
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
