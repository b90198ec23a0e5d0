package canvas

import (
	"errors"
	"fmt"

	"tetrobox/core"
)

// ErrDegenerateEdge is reported by Check when an edge was drawn from a point
// to itself.
var ErrDegenerateEdge = errors.New("edge endpoints are identical")

// edge is an undirected unit segment with its endpoints in core.Compare order.
type edge struct {
	a, b core.Point
}

func makeEdge(p1, p2 core.Point) edge {
	if core.Compare(p2, p1) < 0 {
		p1, p2 = p2, p1
	}
	return edge{p1, p2}
}

// LineGrid stores weighted edges between adjacent vertices and turns them
// into box-drawing text.
//
// LineGrid does not check that the endpoints of an edge are neighbors; the
// caller is expected to only ever connect adjacent vertices.
type LineGrid struct {
	edges      map[edge]Weight
	degenerate []core.Point
}

// NewLineGrid creates an empty line grid.
func NewLineGrid() *LineGrid {
	return &LineGrid{edges: make(map[edge]Weight)}
}

// Line records the weight of the edge between p1 and p2. Drawing None
// removes the edge. An edge from a point to itself is not stored; Check
// reports it.
func (g *LineGrid) Line(p1, p2 core.Point, w Weight) {
	if p1 == p2 {
		g.degenerate = append(g.degenerate, p1)
		return
	}
	e := makeEdge(p1, p2)
	if w == None {
		delete(g.edges, e)
		return
	}
	g.edges[e] = w
}

// Get returns the weight of the edge between p1 and p2, in either order.
func (g *LineGrid) Get(p1, p2 core.Point) Weight {
	return g.edges[makeEdge(p1, p2)]
}

// Len returns the number of stored edges.
func (g *LineGrid) Len() int {
	return len(g.edges)
}

// Junction collects the weights of the four edges around vertex p.
func (g *LineGrid) Junction(p core.Point) Junction {
	var j Junction
	for _, d := range core.Directions {
		j[d] = g.Get(p, core.Offset(p, d))
	}
	return j
}

// Bounds returns the rectangle covering every endpoint and the origin.
func (g *LineGrid) Bounds() core.Bounds {
	var b core.Bounds
	for e := range g.edges {
		b = b.Include(e.a).Include(e.b)
	}
	return b
}

// Check reports edges that could not be drawn.
func (g *LineGrid) Check() error {
	if len(g.degenerate) > 0 {
		return fmt.Errorf("%w: %d edge(s), first at %s", ErrDegenerateEdge, len(g.degenerate), g.degenerate[0])
	}
	for e, w := range g.edges {
		if !w.Valid() {
			return fmt.Errorf("edge %s-%s has weight %d", e.a, e.b, w)
		}
	}
	return nil
}

// Raster renders the grid through the given glyph table.
func (g *LineGrid) Raster(table GlyphTable) *Matrix {
	b := g.Bounds()
	m := NewMatrix(b)
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			m.cells[row][col] = table.GlyphOrError(g.Junction(m.Vertex(col, row)))
		}
	}
	return m
}

// Render draws the grid with the Unicode glyph table, one line per row of
// vertices, the highest Y first.
func (g *LineGrid) Render() string {
	return g.Raster(Glyphs).String()
}
