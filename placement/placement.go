// Package placement searches for positions where a shape fits on a board.
//
// Every search is bounded by the field rectangle, so it always terminates.
// The randomized search shuffles columns and rotations but walks rows in a
// fixed order from the bottom up; pieces therefore settle low while their
// column and orientation vary.
package placement

import (
	"tetrobox/board"
	"tetrobox/core"
	"tetrobox/geometry"
)

// The playfield, in cells. Both ends are inclusive.
const (
	XLo = 0
	XHi = 10 - 1
	YLo = 0
	YHi = 20 - 1
)

// Field is the playfield rectangle.
var Field = core.Bounds{Min: core.Pt(XLo, YLo), Max: core.Pt(XHi, YHi)}

// Shuffler is the part of *rand.Rand the randomized search needs.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Grid is the occupancy test the search runs against.
type Grid interface {
	IsClear(s geometry.Shape) bool
}

var _ Grid = (*board.BoxGrid)(nil)

// InBounds reports whether every cell of s lies inside the field.
func InBounds(s geometry.Shape) bool {
	for _, p := range s {
		if !Field.Contains(p) {
			return false
		}
	}
	return true
}

// AllPositions lists every in-bounds placement of s: rotations first, then
// rows from the bottom, then columns from the left.
func AllPositions(s geometry.Shape) []geometry.Shape {
	var out []geometry.Shape
	for _, rot := range geometry.Rotations(s) {
		for y := YLo; y <= YHi; y++ {
			for x := XLo; x <= XHi; x++ {
				if moved := geometry.Move(rot, core.Pt(x, y)); InBounds(moved) {
					out = append(out, moved)
				}
			}
		}
	}
	return out
}

// AllPositionsRandom lists every in-bounds placement of s in a randomized
// order. Rotations are shuffled, then columns are shuffled; the walk is rows
// from the bottom (not shuffled), then columns, then rotations.
func AllPositionsRandom(s geometry.Shape, rng Shuffler) []geometry.Shape {
	rots := geometry.Rotations(s)
	rng.Shuffle(len(rots), func(i, j int) { rots[i], rots[j] = rots[j], rots[i] })

	columns := make([]int, 0, XHi-XLo+1)
	for x := XLo; x <= XHi; x++ {
		columns = append(columns, x)
	}
	rng.Shuffle(len(columns), func(i, j int) { columns[i], columns[j] = columns[j], columns[i] })

	var out []geometry.Shape
	for y := YLo; y <= YHi; y++ {
		for _, x := range columns {
			for _, rot := range rots {
				if moved := geometry.Move(rot, core.Pt(x, y)); InBounds(moved) {
					out = append(out, moved)
				}
			}
		}
	}
	return out
}

// FindFitRandom returns the first placement from AllPositionsRandom that is
// clear on g. The second result is false when nothing fits, which is the
// normal way for a round to end.
func FindFitRandom(s geometry.Shape, g Grid, rng Shuffler) (geometry.Shape, bool) {
	return first(AllPositionsRandom(s, rng), g)
}

// FindFit is FindFitRandom over the deterministic AllPositions order.
func FindFit(s geometry.Shape, g Grid) (geometry.Shape, bool) {
	return first(AllPositions(s), g)
}

func first(candidates []geometry.Shape, g Grid) (geometry.Shape, bool) {
	for _, c := range candidates {
		if g.IsClear(c) {
			return c, true
		}
	}
	return nil, false
}
