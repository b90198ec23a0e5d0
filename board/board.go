// Package board holds the colored cell grid and derives its outline.
//
// A BoxGrid never draws anything itself. Render compares every cell with its
// right and lower neighbors and emits a line-grid edge wherever the colors
// differ; the line grid then turns those edges into box-drawing text.
//
// Coordinate System:
//   - X increases rightward, Y increases upward (core.Up is +Y)
//   - Cell (x, y) is drawn between line-grid vertices (2x, y-1) and (2x+2, y)
package board

import (
	"math"
	"slices"

	"github.com/kamstrup/intmap"

	"tetrobox/core"
	"tetrobox/geometry"
)

// Cell is one colored position.
type Cell struct {
	Point core.Point
	Color core.Color
}

// BoxGrid maps cells to colors. Cells that were never set are core.Empty.
//
// Coordinates must fit in an int32. Cells outside that range cannot be
// stored: Set and Unset ignore them and Get reports them as core.Empty.
//
// BoxGrid is not safe for concurrent writes; a grid belongs to one round of
// one caller.
type BoxGrid struct {
	cells *intmap.Map[uint64, core.Color]
}

// New creates an empty grid.
func New() *BoxGrid {
	return &BoxGrid{cells: intmap.New[uint64, core.Color](256)}
}

// key packs a point into a map key. It reports false for points that do
// not fit, so two distinct points never share a key.
func key(p core.Point) (uint64, bool) {
	if !storable(p.X) || !storable(p.Y) {
		return 0, false
	}
	return uint64(uint32(int32(p.X)))<<32 | uint64(uint32(int32(p.Y))), true
}

func storable(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func unpack(k uint64) core.Point {
	return core.Point{X: int(int32(uint32(k >> 32))), Y: int(int32(uint32(k)))}
}

// Set colors a cell, replacing any previous color. Setting core.Empty is the
// same as Unset.
func (g *BoxGrid) Set(p core.Point, c core.Color) {
	if c == core.Empty {
		g.Unset(p)
		return
	}
	if k, ok := key(p); ok {
		g.cells.Put(k, c)
	}
}

// Unset clears a cell.
func (g *BoxGrid) Unset(p core.Point) {
	if k, ok := key(p); ok {
		g.cells.Del(k)
	}
}

// SetShape colors every cell of the shape.
func (g *BoxGrid) SetShape(s geometry.Shape, c core.Color) {
	for _, p := range s {
		g.Set(p, c)
	}
}

// UnsetShape clears every cell of the shape.
func (g *BoxGrid) UnsetShape(s geometry.Shape) {
	for _, p := range s {
		g.Unset(p)
	}
}

// Get returns the color of a cell, or core.Empty.
func (g *BoxGrid) Get(p core.Point) core.Color {
	k, ok := key(p)
	if !ok {
		return core.Empty
	}
	if c, ok := g.cells.Get(k); ok {
		return c
	}
	return core.Empty
}

// IsClear reports whether every cell of the shape is empty.
func (g *BoxGrid) IsClear(s geometry.Shape) bool {
	for _, p := range s {
		if g.Get(p) != core.Empty {
			return false
		}
	}
	return true
}

// Len returns the number of colored cells.
func (g *BoxGrid) Len() int {
	return g.cells.Len()
}

// Cells returns every colored cell sorted by position.
func (g *BoxGrid) Cells() []Cell {
	cells := make([]Cell, 0, g.cells.Len())
	g.cells.ForEach(func(k uint64, c core.Color) bool {
		cells = append(cells, Cell{Point: unpack(k), Color: c})
		return true
	})
	slices.SortFunc(cells, func(a, b Cell) int { return core.Compare(a.Point, b.Point) })
	return cells
}
