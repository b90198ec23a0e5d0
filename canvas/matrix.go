package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"tetrobox/core"
)

// Matrix is a rendered line grid: one rune per vertex.
//
// Row 0 holds the vertices with the largest Y, so the text reads with Up
// at the top. Vertex and Cell convert between the two coordinate systems.
//
// Performance Characteristics:
//   - Get/Vertex/Cell: O(1)
//   - String: O(width × height)
type Matrix struct {
	cells  [][]rune
	width  int
	height int
	bounds core.Bounds
}

// NewMatrix creates a blank matrix covering the given vertex bounds.
func NewMatrix(bounds core.Bounds) *Matrix {
	width, height := bounds.Width(), bounds.Height()
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Matrix{
		cells:  cells,
		width:  width,
		height: height,
		bounds: bounds,
	}
}

// Size returns the number of columns and rows.
func (m *Matrix) Size() (width, height int) {
	return m.width, m.height
}

// Bounds returns the vertex rectangle the matrix covers.
func (m *Matrix) Bounds() core.Bounds {
	return m.bounds
}

// Rows returns direct access to the underlying rune rows.
func (m *Matrix) Rows() [][]rune {
	return m.cells
}

// Get returns the character at the given column and row.
// Returns ' ' (space) if position is out of bounds.
func (m *Matrix) Get(col, row int) rune {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return ' '
	}
	return m.cells[row][col]
}

// Vertex returns the line-grid vertex drawn at the given column and row.
func (m *Matrix) Vertex(col, row int) core.Point {
	return core.Point{X: m.bounds.Min.X + col, Y: m.bounds.Max.Y - row}
}

// Cell returns the column and row at which vertex p is drawn.
func (m *Matrix) Cell(p core.Point) (col, row int) {
	return p.X - m.bounds.Min.X, m.bounds.Max.Y - p.Y
}

// Width returns the widest row in terminal cells.
func (m *Matrix) Width() int {
	widest := 0
	for _, row := range m.cells {
		widest = max(widest, runewidth.StringWidth(string(row)))
	}
	return widest
}

// String returns every row followed by a newline.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.height * (m.width*3 + 1))

	for _, row := range m.cells {
		for _, r := range row {
			sb.WriteRune(r)
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Count returns how many times r appears in the matrix.
func (m *Matrix) Count(r rune) int {
	n := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c == r {
				n++
			}
		}
	}
	return n
}
