package geometry

import (
	"slices"

	"tetrobox/core"
)

// RotatePoint turns a point a quarter turn counter-clockwise about the origin.
func RotatePoint(p core.Point) core.Point {
	return core.Point{X: -p.Y, Y: p.X}
}

// Move translates every point of the shape by offset.
func Move(s Shape, offset core.Point) Shape {
	moved := make(Shape, len(s))
	for i, p := range s {
		moved[i] = p.Add(offset)
	}
	return moved
}

// Normalize translates the shape so its smallest X and smallest Y are both
// zero and sorts the points. Normalize(Normalize(s)) equals Normalize(s).
func Normalize(s Shape) Shape {
	if len(s) == 0 {
		return Shape{}
	}
	b := s.Bounds()
	n := Move(s, core.Point{X: -b.Min.X, Y: -b.Min.Y})
	slices.SortFunc(n, core.Compare)
	return n
}

// Rotate applies (x, y) -> (-y, x) to every point and normalizes the result.
func Rotate(s Shape) Shape {
	r := make(Shape, len(s))
	for i, p := range s {
		r[i] = RotatePoint(p)
	}
	return Normalize(r)
}

// Rotations returns the distinct normalized rotations of s, starting with s
// itself and in quarter-turn order. Symmetric shapes yield fewer than four.
func Rotations(s Shape) []Shape {
	cur := Normalize(s)
	var out []Shape
	for range 4 {
		if !slices.ContainsFunc(out, func(seen Shape) bool { return Equal(seen, cur) }) {
			out = append(out, cur)
		}
		cur = Rotate(cur)
	}
	return out
}
