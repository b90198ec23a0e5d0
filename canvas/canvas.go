// Package canvas provides the line grid: weighted edges between integer
// vertices, rendered as Unicode box-drawing characters through a glyph table.
package canvas
