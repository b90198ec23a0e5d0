// Package core contains the fundamental types used throughout the tetrobox renderer.
package core

import "fmt"

// Point represents a 2D coordinate on the cell grid or on the line grid.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// String returns the point in "(x,y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Compare orders points by X, then by Y. It returns -1, 0 or +1.
func Compare(a, b Point) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// Direction represents a cardinal direction.
//
// Up is +Y. Anything that prints rows must therefore walk Y downwards so
// that Up ends up above Down on screen.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in glyph tuple order.
var Directions = [4]Direction{Up, Right, Down, Left}

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// Offset returns the unit vector for the direction.
func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{0, 1}
	case Right:
		return Point{1, 0}
	case Down:
		return Point{0, -1}
	case Left:
		return Point{-1, 0}
	default:
		return Point{}
	}
}

// Offset returns the neighbor of p in direction d.
func Offset(p Point, d Direction) Point {
	return p.Add(d.Offset())
}

// DoubleX maps a cell coordinate onto the line grid, where the border between
// two horizontally adjacent cells gets an integer column of its own.
func DoubleX(p Point) Point {
	return Point{X: p.X * 2, Y: p.Y}
}

// Bounds represents a rectangular area. Both Min and Max are inclusive.
type Bounds struct {
	Min, Max Point
}

// Rect returns the bounds spanning the two corners in any order.
func Rect(a, b Point) Bounds {
	return Bounds{
		Min: Point{min(a.X, b.X), min(a.Y, b.Y)},
		Max: Point{max(a.X, b.X), max(a.Y, b.Y)},
	}
}

// Width returns the number of columns covered by the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows covered by the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y + 1
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Include returns the smallest bounds containing both b and p.
func (b Bounds) Include(p Point) Bounds {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	return b
}

// Color identifies the fill of a cell. Empty is the background; every other
// value is an opaque id chosen by the caller.
type Color uint8

const (
	// Empty marks a cell with nothing in it.
	Empty Color = 0
	// Wall is the color used for the fixed rows around the playfield.
	Wall Color = 255
)
