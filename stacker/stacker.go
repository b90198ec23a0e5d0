// Package stacker runs the stacking demonstration: drop random tetrominoes
// onto a fresh board wherever they fit until nothing fits, then start over.
package stacker

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"tetrobox/board"
	"tetrobox/core"
	"tetrobox/geometry"
	"tetrobox/placement"
	"tetrobox/tetromino"
)

// Config controls a run.
type Config struct {
	Seed   uint64        // seed for the random source
	Delay  time.Duration // pause after each placement
	Rounds int           // rounds to play, 0 = until cancelled
	Walls  bool          // color the rows below and above the field
	Frame  bool          // draw a double outline around the field instead of walls
}

// DefaultConfig returns the settings of the classic demo.
func DefaultConfig() Config {
	return Config{
		Seed:  uint64(time.Now().UnixNano()),
		Delay: 250 * time.Millisecond,
		Walls: true,
	}
}

// Frame is one picture of the board, taken right after a placement.
type Frame struct {
	Round  int
	Pieces int // pieces placed this round, including Placed
	Piece  tetromino.Name
	Placed geometry.Shape
	Grid   *board.BoxGrid
	Field  *core.Bounds // non-nil when the field outline should be drawn
}

// Sink receives every frame.
type Sink interface {
	Show(f Frame) error
}

// Stacker plays rounds on one board at a time.
type Stacker struct {
	cfg     Config
	catalog *tetromino.Catalog
	sink    Sink
	rng     *rand.Rand

	grid   *board.BoxGrid
	round  int
	pieces int
}

// New creates a stacker. The first round starts on the first Step.
func New(cfg Config, catalog *tetromino.Catalog, sink Sink) *Stacker {
	return &Stacker{
		cfg:     cfg,
		catalog: catalog,
		sink:    sink,
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// Grid returns the board of the current round.
func (s *Stacker) Grid() *board.BoxGrid {
	return s.grid
}

// Round returns the number of the current round, starting at 1.
func (s *Stacker) Round() int {
	return s.round
}

// NewRound replaces the board with an empty one.
func (s *Stacker) NewRound() {
	s.grid = board.New()
	s.round++
	s.pieces = 0
	if s.cfg.Walls && !s.cfg.Frame {
		s.grid.SetShape(rows(-3, -1), core.Wall)
		s.grid.SetShape(rows(placement.YHi+1, placement.YHi+2), core.Wall)
	}
}

// rows spans the field width for the rows lo..hi.
func rows(lo, hi int) geometry.Shape {
	var s geometry.Shape
	for x := placement.XLo; x <= placement.XHi; x++ {
		for y := lo; y <= hi; y++ {
			s = append(s, core.Pt(x, y))
		}
	}
	return s
}

// Step places one random piece. It returns false, leaving the board as it
// is, when the piece does not fit anywhere.
func (s *Stacker) Step() (Frame, bool) {
	if s.grid == nil {
		s.NewRound()
	}

	piece := s.catalog.Random(s.rng)
	fit, ok := placement.FindFitRandom(piece.Shape, s.grid, s.rng)
	if !ok {
		return Frame{}, false
	}

	s.grid.SetShape(fit, colorFor(s.pieces))
	s.pieces++
	return s.frame(piece.Name, fit), true
}

// colorFor gives the i-th piece of a round its color, skipping Empty and Wall.
func colorFor(i int) core.Color {
	return core.Color(i%int(core.Wall-1) + 1)
}

func (s *Stacker) frame(name tetromino.Name, placed geometry.Shape) Frame {
	f := Frame{
		Round:  s.round,
		Pieces: s.pieces,
		Piece:  name,
		Placed: placed,
		Grid:   s.grid,
	}
	if s.cfg.Frame {
		field := placement.Field
		f.Field = &field
	}
	return f
}

// PlayRound fills a fresh board, sending a frame after every placement.
// It returns the number of pieces placed.
func (s *Stacker) PlayRound(ctx context.Context) (int, error) {
	s.NewRound()
	for {
		f, ok := s.Step()
		if !ok {
			return s.pieces, nil
		}
		if err := s.sink.Show(f); err != nil {
			return s.pieces, fmt.Errorf("round %d piece %d: %w", s.round, s.pieces, err)
		}
		if err := sleep(ctx, s.cfg.Delay); err != nil {
			return s.pieces, err
		}
	}
}

// Run plays rounds until cfg.Rounds are done or ctx is cancelled.
func (s *Stacker) Run(ctx context.Context) error {
	for played := 0; s.cfg.Rounds == 0 || played < s.cfg.Rounds; played++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.PlayRound(ctx); err != nil {
			return err
		}
	}
	return nil
}

// IsStopped reports whether err only means the run was cancelled.
func IsStopped(err error) bool {
	return errors.Is(err, context.Canceled)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
