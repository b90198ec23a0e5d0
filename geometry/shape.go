// Package geometry implements shapes made of grid cells and the transforms
// used to compare them: translation, rotation and normalization.
package geometry

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"tetrobox/core"
)

// ErrSyntax is returned by Parse for malformed shape text.
var ErrSyntax = errors.New("invalid shape syntax")

// Shape is an ordered list of cells. Duplicates are not expected but not
// rejected either.
type Shape []core.Point

// Of builds a shape from (x, y) pairs.
func Of(pairs ...[2]int) Shape {
	s := make(Shape, len(pairs))
	for i, xy := range pairs {
		s[i] = core.Pt(xy[0], xy[1])
	}
	return s
}

// Bounds returns the smallest rectangle containing every point.
// The zero Bounds is returned for an empty shape.
func (s Shape) Bounds() core.Bounds {
	if len(s) == 0 {
		return core.Bounds{}
	}
	b := core.Bounds{Min: s[0], Max: s[0]}
	for _, p := range s[1:] {
		b = b.Include(p)
	}
	return b
}

// Contains reports whether p is one of the shape's cells.
func (s Shape) Contains(p core.Point) bool {
	return slices.Contains(s, p)
}

// String renders the shape as "(x,y),(x,y),..." in its stored order.
func (s Shape) String() string {
	var b strings.Builder
	for i, p := range s {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteRune('(')
		b.WriteString(strconv.Itoa(p.X))
		b.WriteRune(',')
		b.WriteString(strconv.Itoa(p.Y))
		b.WriteRune(')')
	}
	return b.String()
}

// Key returns the String of the normalized shape. Two shapes have the same
// key exactly when they are translations of each other.
func (s Shape) Key() string {
	return Normalize(s).String()
}

// Equal reports whether two shapes hold the same points in the same order.
func Equal(a, b Shape) bool {
	return slices.Equal(a, b)
}

// Compare orders shapes lexicographically by their points. A shape that is a
// prefix of another sorts first.
func Compare(a, b Shape) int {
	return slices.CompareFunc(a, b, core.Compare)
}

// Parse reads the form produced by String. Whitespace is ignored.
func Parse(text string) (Shape, error) {
	text = strings.Join(strings.Fields(text), "")
	if text == "" {
		return Shape{}, nil
	}
	if !strings.HasPrefix(text, "(") || !strings.HasSuffix(text, ")") {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, text)
	}

	var s Shape
	for _, tuple := range strings.Split(text[1:len(text)-1], "),(") {
		xs, ys, ok := strings.Cut(tuple, ",")
		if !ok {
			return nil, fmt.Errorf("%w: point %q", ErrSyntax, tuple)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("%w: point %q", ErrSyntax, tuple)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("%w: point %q", ErrSyntax, tuple)
		}
		s = append(s, core.Pt(x, y))
	}
	return s, nil
}
