package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tetrobox/core"
)

var (
	lineShape   = Of([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	squareShape = Of([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})
	teeShape    = Of([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 1})
	zedShape    = Of([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 1})
)

func TestNormalize(t *testing.T) {
	s := Of([2]int{5, 3}, [2]int{4, 4}, [2]int{4, 3})
	n := Normalize(s)

	assert.Equal(t, Of([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}), n)
	assert.Equal(t, n, Normalize(n), "normalize must be idempotent")
	assert.Equal(t, Of([2]int{5, 3}, [2]int{4, 4}, [2]int{4, 3}), s, "input must not be mutated")
	assert.Empty(t, Normalize(nil))
}

func TestNormalizeTranslationInvariant(t *testing.T) {
	offsets := []core.Point{core.Pt(0, 0), core.Pt(3, -7), core.Pt(-12, 40), core.Pt(1, 1)}
	for _, s := range []Shape{lineShape, squareShape, teeShape, zedShape} {
		for _, o := range offsets {
			assert.Equal(t, Normalize(s), Normalize(Move(s, o)), "shape %s offset %s", s, o)
		}
	}
}

func TestRotate(t *testing.T) {
	horizontal := Rotate(lineShape)
	assert.Equal(t, Of([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}), horizontal)
	assert.Equal(t, lineShape, Rotate(horizontal))

	s := teeShape
	for range 4 {
		s = Rotate(s)
	}
	assert.Equal(t, Normalize(teeShape), s, "four quarter turns are the identity")
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"line", lineShape, 2},
		{"square", squareShape, 1},
		{"tee", teeShape, 4},
		{"zed", zedShape, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rots := Rotations(tt.shape)
			require.Len(t, rots, tt.want)
			assert.Equal(t, Normalize(tt.shape), rots[0], "first rotation is the input")
			assert.Equal(t, rots[0], Rotate(rots[len(rots)-1]), "rotations must cycle")

			for i := range rots {
				for j := i + 1; j < len(rots); j++ {
					assert.False(t, Equal(rots[i], rots[j]), "rotations %d and %d repeat", i, j)
				}
			}
		})
	}
}

func TestCompareShapes(t *testing.T) {
	horizontal := Rotate(lineShape)
	assert.Equal(t, -1, Compare(lineShape, horizontal))
	assert.Equal(t, 1, Compare(horizontal, lineShape))
	assert.Equal(t, 0, Compare(lineShape, Normalize(lineShape)))
	assert.Equal(t, -1, Compare(lineShape[:2], lineShape))
}

func TestStringAndKey(t *testing.T) {
	assert.Equal(t, "(0,0),(1,0),(1,1),(2,1)", zedShape.String())
	assert.Equal(t, zedShape.Key(), Move(zedShape, core.Pt(4, -2)).Key())
	assert.NotEqual(t, zedShape.Key(), Rotate(zedShape).Key())
	assert.Equal(t, "", Shape{}.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Shape
		wantErr bool
	}{
		{"round trip", "(0,0),(1,0),(1,1),(2,1)", zedShape, false},
		{"spaces", " (0, 0), (0,1) ", Of([2]int{0, 0}, [2]int{0, 1}), false},
		{"negative", "(-1,2)", Of([2]int{-1, 2}), false},
		{"empty", "", Shape{}, false},
		{"no parens", "0,0", nil, true},
		{"bad number", "(a,0)", nil, true},
		{"missing y", "(1)", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSyntax)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoundsAndContains(t *testing.T) {
	b := teeShape.Bounds()
	assert.Equal(t, core.Pt(0, 0), b.Min)
	assert.Equal(t, core.Pt(1, 2), b.Max)
	assert.True(t, teeShape.Contains(core.Pt(1, 1)))
	assert.False(t, teeShape.Contains(core.Pt(1, 0)))
}
