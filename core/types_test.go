package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want int
	}{
		{"equal", Pt(1, 2), Pt(1, 2), 0},
		{"x decides", Pt(0, 9), Pt(1, 0), -1},
		{"y breaks ties", Pt(3, 1), Pt(3, 0), 1},
		{"negative", Pt(-1, 0), Pt(0, -5), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

func TestOffset(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, Pt(3, 5), Offset(p, Up))
	assert.Equal(t, Pt(4, 4), Offset(p, Right))
	assert.Equal(t, Pt(3, 3), Offset(p, Down))
	assert.Equal(t, Pt(2, 4), Offset(p, Left))

	for _, d := range Directions {
		assert.Equal(t, p, Offset(Offset(p, d), d.Opposite()), "direction %s", d)
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Up", Up.String())
	assert.Equal(t, "Left", Left.String())
	assert.Equal(t, "Unknown", Direction(9).String())
}

func TestDoubleX(t *testing.T) {
	assert.Equal(t, Pt(6, -2), DoubleX(Pt(3, -2)))
	assert.Equal(t, Pt(-4, 0), DoubleX(Pt(-2, 0)))
}

func TestBounds(t *testing.T) {
	b := Rect(Pt(9, 19), Pt(0, 0))
	assert.Equal(t, Pt(0, 0), b.Min)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.True(t, b.Contains(Pt(9, 19)))
	assert.False(t, b.Contains(Pt(10, 0)))
	assert.False(t, b.Contains(Pt(0, -1)))

	grown := Bounds{}.Include(Pt(-2, 3))
	assert.Equal(t, Bounds{Min: Pt(-2, 0), Max: Pt(0, 3)}, grown)
}
