// Package tetromino defines the seven tetrominoes and a catalog that maps any
// rotation of one of them to its canonical form.
package tetromino

import (
	"errors"
	"fmt"
	"slices"

	"tetrobox/geometry"
)

var (
	// ErrUnknownShape is returned when a shape is not a rotation of any
	// catalog piece.
	ErrUnknownShape = errors.New("shape is not a known tetromino")
	// ErrNotCanonical is returned by NewCatalog when a prototype is not the
	// smallest of its rotations.
	ErrNotCanonical = errors.New("prototype is not canonical")
)

// Name identifies a tetromino.
type Name string

const (
	I Name = "I"
	O Name = "O"
	T Name = "T"
	J Name = "J"
	L Name = "L"
	N Name = "N"
	S Name = "S"
)

// prototype lists each piece in its canonical orientation.
type prototype struct {
	name  Name
	shape geometry.Shape
}

func prototypes() []prototype {
	return []prototype{
		{I, geometry.Of([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})},
		{O, geometry.Of([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})},
		{T, geometry.Of([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 1})},
		{J, geometry.Of([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 0})},
		{L, geometry.Of([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2})},
		{N, geometry.Of([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 1})},
		{S, geometry.Of([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{1, 2})},
	}
}

// Piece is one tetromino with its distinct rotations.
type Piece struct {
	Name      Name
	Shape     geometry.Shape
	Rotations []geometry.Shape
}

// Catalog is the read-only table of pieces. It is safe for concurrent use
// once built.
type Catalog struct {
	pieces    []Piece
	canonical map[string]*Piece
}

// NewCatalog computes the rotations and canonical form of every piece.
func NewCatalog() (*Catalog, error) {
	protos := prototypes()
	c := &Catalog{
		pieces:    make([]Piece, len(protos)),
		canonical: make(map[string]*Piece),
	}

	for i, proto := range protos {
		rots := geometry.Rotations(proto.shape)
		canonical := rots[0]
		for _, r := range rots[1:] {
			if geometry.Compare(r, canonical) < 0 {
				canonical = r
			}
		}
		if !geometry.Equal(proto.shape, canonical) {
			return nil, fmt.Errorf("%w: %s is %s, smallest rotation is %s",
				ErrNotCanonical, proto.name, proto.shape, canonical)
		}

		c.pieces[i] = Piece{Name: proto.name, Shape: canonical, Rotations: rots}
		for _, r := range rots {
			c.canonical[r.String()] = &c.pieces[i]
		}
	}
	return c, nil
}

// MustCatalog is NewCatalog for program startup. It panics if the built-in
// prototypes are inconsistent.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Pieces returns the pieces in their fixed order.
func (c *Catalog) Pieces() []Piece {
	return slices.Clone(c.pieces)
}

// Piece returns the piece with the given name.
func (c *Catalog) Piece(name Name) (Piece, bool) {
	for _, p := range c.pieces {
		if p.Name == name {
			return p, true
		}
	}
	return Piece{}, false
}

// Lookup returns the piece that s is a rotation of, after normalizing s.
func (c *Catalog) Lookup(s geometry.Shape) (Piece, error) {
	p, ok := c.canonical[s.Key()]
	if !ok {
		return Piece{}, fmt.Errorf("%w: %s", ErrUnknownShape, s)
	}
	return *p, nil
}

// Canonicalize returns the canonical form of the piece that s is a rotation of.
func (c *Catalog) Canonicalize(s geometry.Shape) (geometry.Shape, error) {
	p, err := c.Lookup(s)
	if err != nil {
		return nil, err
	}
	return p.Shape, nil
}

// Source is the part of *rand.Rand that Random needs.
type Source interface {
	IntN(n int) int
}

// Random picks a piece uniformly.
func (c *Catalog) Random(rng Source) Piece {
	return c.pieces[rng.IntN(len(c.pieces))]
}
