package canvas

import "tetrobox/core"

// ErrorGlyph is printed for any edge combination missing from a glyph table.
const ErrorGlyph = '╳'

// Weight is the kind of line drawn along one edge of the line grid.
type Weight uint8

const (
	None Weight = iota
	Single
	Double
)

// Valid reports whether w is one of the declared weights.
func (w Weight) Valid() bool {
	return w <= Double
}

func (w Weight) String() string {
	switch w {
	case None:
		return "none"
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return "invalid"
	}
}

// Junction holds the weights of the four edges meeting at a vertex, indexed
// by core.Direction (Up, Right, Down, Left).
type Junction [4]Weight

// J builds a Junction from its up, right, down and left weights.
func J(up, right, down, left Weight) Junction {
	return Junction{up, right, down, left}
}

// Toward returns the weight of the edge leaving the vertex in direction d.
func (j Junction) Toward(d core.Direction) Weight {
	return j[d]
}

// GlyphTable maps junctions to the character that draws them.
type GlyphTable map[Junction]rune

// Glyph returns the character for j and whether the table has one.
func (t GlyphTable) Glyph(j Junction) (rune, bool) {
	r, ok := t[j]
	return r, ok
}

// GlyphOrError returns the character for j, or ErrorGlyph when the table has
// none. Missing entries indicate a bad edge set upstream and must stay visible.
func (t GlyphTable) GlyphOrError(j Junction) rune {
	if r, ok := t[j]; ok {
		return r
	}
	return ErrorGlyph
}

// Glyphs is the Unicode table. It is total over the None/Single alphabet and
// carries every single/double mix that Unicode has a character for.
var Glyphs = GlyphTable{
	J(0, 0, 0, 0): ' ',

	J(1, 0, 1, 0): '│',
	J(0, 1, 0, 1): '─',
	J(0, 1, 1, 0): '┌',
	J(0, 0, 1, 1): '┐',
	J(1, 1, 0, 0): '└',
	J(1, 0, 0, 1): '┘',
	J(1, 1, 1, 0): '├',
	J(1, 0, 1, 1): '┤',
	J(0, 1, 1, 1): '┬',
	J(1, 1, 0, 1): '┴',
	J(1, 1, 1, 1): '┼',
	J(1, 0, 0, 0): '╵',
	J(0, 1, 0, 0): '╶',
	J(0, 0, 1, 0): '╷',
	J(0, 0, 0, 1): '╴',

	J(2, 0, 2, 0): '║',
	J(0, 2, 0, 2): '═',
	J(0, 2, 2, 0): '╔',
	J(0, 0, 2, 2): '╗',
	J(2, 2, 0, 0): '╚',
	J(2, 0, 0, 2): '╝',
	J(2, 2, 2, 0): '╠',
	J(2, 0, 2, 2): '╣',
	J(0, 2, 2, 2): '╦',
	J(2, 2, 0, 2): '╩',
	J(2, 2, 2, 2): '╬',

	J(0, 2, 1, 0): '╒',
	J(0, 1, 2, 0): '╓',
	J(0, 0, 1, 2): '╕',
	J(0, 0, 2, 1): '╖',
	J(1, 2, 0, 0): '╘',
	J(2, 1, 0, 0): '╙',
	J(1, 0, 0, 2): '╛',
	J(2, 0, 0, 1): '╜',
	J(1, 2, 1, 0): '╞',
	J(2, 1, 2, 0): '╟',
	J(1, 0, 1, 2): '╡',
	J(2, 0, 2, 1): '╢',
	J(0, 2, 1, 2): '╤',
	J(0, 1, 2, 1): '╥',
	J(1, 2, 0, 2): '╧',
	J(2, 1, 0, 1): '╨',
	J(1, 2, 1, 2): '╪',
	J(2, 1, 2, 1): '╫',
}

// ASCIIGlyphs draws the same pictures for terminals without box-drawing
// support. Double lines fall back to the single-line characters.
var ASCIIGlyphs = asciiGlyphs()

func asciiGlyphs() GlyphTable {
	t := make(GlyphTable, len(Glyphs))
	for j := range Glyphs {
		vertical := j[core.Up] != None || j[core.Down] != None
		horizontal := j[core.Left] != None || j[core.Right] != None
		switch {
		case vertical && horizontal:
			t[j] = '+'
		case vertical:
			t[j] = '|'
		case horizontal:
			t[j] = '-'
		default:
			t[j] = ' '
		}
	}
	return t
}
