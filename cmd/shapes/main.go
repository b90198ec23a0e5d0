package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"tetrobox/board"
	"tetrobox/canvas"
	"tetrobox/core"
	"tetrobox/geometry"
	"tetrobox/tetromino"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("shapes", flag.ContinueOnError)
	var (
		shape = fs.String("shape", "", `Cells to canonicalize, e.g. "(0,0),(1,0),(1,1),(2,1)"`)
		ascii = fs.Bool("ascii", false, "Use ASCII instead of box-drawing characters")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	table := canvas.Glyphs
	if *ascii {
		table = canvas.ASCIIGlyphs
	}

	catalog, err := tetromino.NewCatalog()
	if err != nil {
		return err
	}

	if *shape == "" {
		for _, p := range catalog.Pieces() {
			if err := printPiece(w, p, table); err != nil {
				return err
			}
		}
		return nil
	}

	s, err := geometry.Parse(*shape)
	if err != nil {
		return err
	}
	p, err := catalog.Lookup(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "canonical: %s\n", p.Shape)
	return printPiece(w, p, table)
}

// printPiece draws every rotation of p next to each other.
func printPiece(w io.Writer, p tetromino.Piece, table canvas.GlyphTable) error {
	g := board.New()
	for i, r := range p.Rotations {
		g.SetShape(geometry.Move(r, core.Pt(i*5, 0)), core.Color(i+1))
	}

	lines := g.Lines()
	if err := lines.Check(); err != nil {
		return fmt.Errorf("piece %s: %w", p.Name, err)
	}
	fmt.Fprintf(w, "%s: %d rotation(s)\n", p.Name, len(p.Rotations))
	fmt.Fprint(w, lines.Raster(table).String())
	fmt.Fprintln(w)
	return nil
}
