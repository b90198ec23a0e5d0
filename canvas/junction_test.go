package canvas

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"tetrobox/core"
)

// junctions enumerates every junction over the weights up to and including top.
func junctions(top Weight) []Junction {
	var all []Junction
	for up := None; up <= top; up++ {
		for right := None; right <= top; right++ {
			for down := None; down <= top; down++ {
				for left := None; left <= top; left++ {
					all = append(all, J(up, right, down, left))
				}
			}
		}
	}
	return all
}

func TestGlyphs_TotalOverSingleLines(t *testing.T) {
	for _, j := range junctions(Single) {
		_, ok := Glyphs.Glyph(j)
		assert.True(t, ok, "no glyph for %v", j)
	}
}

func TestGlyphs_Distinct(t *testing.T) {
	seen := make(map[rune]Junction)
	for j, r := range Glyphs {
		if prev, dup := seen[r]; dup {
			t.Errorf("glyph %c used for both %v and %v", r, prev, j)
		}
		seen[r] = j
	}
	assert.Len(t, Glyphs, 45)
}

func TestGlyphs_SingleCell(t *testing.T) {
	for j, r := range Glyphs {
		assert.Equal(t, 1, runewidth.RuneWidth(r), "glyph %c for %v", r, j)
	}
	assert.Equal(t, 1, runewidth.RuneWidth(ErrorGlyph))
}

func TestGlyphs_Known(t *testing.T) {
	tests := []struct {
		name string
		j    Junction
		want rune
	}{
		{"empty", J(0, 0, 0, 0), ' '},
		{"cross", J(1, 1, 1, 1), '┼'},
		{"top-left corner", J(0, 1, 1, 0), '┌'},
		{"left cap", J(0, 0, 0, 1), '╴'},
		{"double tee down", J(0, 2, 1, 2), '╤'},
		{"mixed cross", J(2, 1, 2, 1), '╫'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Glyphs.GlyphOrError(tt.j))
		})
	}
}

func TestGlyphs_MissingIsError(t *testing.T) {
	missing := []Junction{
		J(2, 0, 0, 0),
		J(2, 2, 1, 1),
		J(1, 0, 2, 0),
	}
	for _, j := range missing {
		_, ok := Glyphs.Glyph(j)
		assert.False(t, ok)
		assert.Equal(t, ErrorGlyph, Glyphs.GlyphOrError(j))
	}
}

func TestASCIIGlyphs(t *testing.T) {
	assert.Len(t, ASCIIGlyphs, len(Glyphs))
	assert.Equal(t, '+', ASCIIGlyphs.GlyphOrError(J(0, 1, 1, 0)))
	assert.Equal(t, '|', ASCIIGlyphs.GlyphOrError(J(2, 0, 2, 0)))
	assert.Equal(t, '-', ASCIIGlyphs.GlyphOrError(J(0, 0, 0, 1)))
	assert.Equal(t, ' ', ASCIIGlyphs.GlyphOrError(J(0, 0, 0, 0)))
	assert.Equal(t, ErrorGlyph, ASCIIGlyphs.GlyphOrError(J(2, 0, 0, 0)))
}

func TestWeight(t *testing.T) {
	assert.True(t, Double.Valid())
	assert.False(t, Weight(3).Valid())
	assert.Equal(t, "single", Single.String())
	assert.Equal(t, Single, J(0, 0, 1, 0).Toward(core.Down))
}
