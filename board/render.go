package board

import (
	"github.com/zyedidia/generic/mapset"

	"tetrobox/canvas"
	"tetrobox/core"
)

// Lines derives the outline of every color region as a fresh line grid.
func (g *BoxGrid) Lines() *canvas.LineGrid {
	// Every cell plus the cells above and to its left. The extra anchors
	// catch the top and left borders of regions, which no occupied cell
	// would otherwise compare against.
	anchors := mapset.New[core.Point]()
	g.cells.ForEach(func(k uint64, _ core.Color) bool {
		p := unpack(k)
		anchors.Put(p)
		anchors.Put(core.Offset(p, core.Up))
		anchors.Put(core.Offset(p, core.Left))
		return true
	})

	lines := canvas.NewLineGrid()
	anchors.Each(func(b core.Point) {
		color := g.Get(b)

		right := core.Offset(b, core.Right)
		if color != g.Get(right) {
			start := core.DoubleX(right)
			lines.Line(start, core.Offset(start, core.Down), canvas.Single)
		}

		down := core.Offset(b, core.Down)
		if color != g.Get(down) {
			start := core.DoubleX(down)
			middle := core.Offset(start, core.Right)
			lines.Line(start, middle, canvas.Single)
			lines.Line(middle, core.Offset(middle, core.Right), canvas.Single)
		}
	})
	return lines
}

// Frame draws a double outline around the cells covered by field. It
// replaces whatever weight the outline edges already had.
func Frame(lines *canvas.LineGrid, field core.Bounds) {
	lo := core.Point{X: 2 * field.Min.X, Y: field.Min.Y - 1}
	hi := core.Point{X: 2 * (field.Max.X + 1), Y: field.Max.Y}

	for x := lo.X; x < hi.X; x++ {
		lines.Line(core.Pt(x, lo.Y), core.Pt(x+1, lo.Y), canvas.Double)
		lines.Line(core.Pt(x, hi.Y), core.Pt(x+1, hi.Y), canvas.Double)
	}
	for y := lo.Y; y < hi.Y; y++ {
		lines.Line(core.Pt(lo.X, y), core.Pt(lo.X, y+1), canvas.Double)
		lines.Line(core.Pt(hi.X, y), core.Pt(hi.X, y+1), canvas.Double)
	}
}

// Raster renders the grid through table. When field is non-nil the field
// outline is drawn with double lines.
func (g *BoxGrid) Raster(table canvas.GlyphTable, field *core.Bounds) *canvas.Matrix {
	lines := g.Lines()
	if field != nil {
		Frame(lines, *field)
	}
	return lines.Raster(table)
}

// Render draws the outline of every color region as box-drawing text.
func (g *BoxGrid) Render() string {
	return g.Lines().Render()
}

// RenderFramed is Render with a double outline around field.
func (g *BoxGrid) RenderFramed(field core.Bounds) string {
	return g.Raster(canvas.Glyphs, &field).String()
}
