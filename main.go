package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"tetrobox/stacker"
	"tetrobox/terminal"
	"tetrobox/tetromino"
)

func main() {
	defaults := stacker.DefaultConfig()

	var (
		seed   = flag.Uint64("seed", defaults.Seed, "Random seed (default: current time)")
		delay  = flag.Duration("delay", defaults.Delay, "Pause after each placed piece")
		rounds = flag.Int("rounds", 0, "Rounds to play, 0 plays until interrupted")
		walls  = flag.Bool("walls", defaults.Walls, "Draw the rows below and above the field")
		frame  = flag.Bool("frame", false, "Outline the field with double lines instead of walls")
		plain  = flag.Bool("plain", false, "Print frames as text instead of using the full screen")
		ascii  = flag.Bool("ascii", false, "Use ASCII instead of box-drawing characters")
		help   = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Drops random tetrominoes onto a 10x20 field until none fits, then starts over.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                         # Animate until q or Ctrl-C\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -seed 42 -rounds 1      # Replay one round\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -plain -delay 0 | less  # Every frame as text\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  TETROBOX_TERMINAL_MODE=ascii|unicode  # Override glyph detection\n")
		fmt.Fprintf(os.Stderr, "  NO_COLOR=1                            # Disable colors\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg := stacker.Config{
		Seed:   *seed,
		Delay:  *delay,
		Rounds: *rounds,
		Walls:  *walls,
		Frame:  *frame,
	}

	caps := terminal.DetectCapabilities()
	if *ascii {
		caps = terminal.ForceASCII()
	}

	catalog, err := tetromino.NewCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if !tty {
		caps.SupportsColor = false
	}
	if *plain || !tty {
		err = runText(ctx, cfg, catalog, caps, tty)
	} else {
		err = runScreen(ctx, cfg, catalog, caps)
	}

	if err != nil && !stacker.IsStopped(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "seed %d\n", cfg.Seed)
}

func runText(ctx context.Context, cfg stacker.Config, catalog *tetromino.Catalog, caps terminal.Capabilities, clear bool) error {
	sink := terminal.NewTextSink(os.Stdout, caps, clear)
	return stacker.New(cfg, catalog, sink).Run(ctx)
}

func runScreen(ctx context.Context, cfg stacker.Config, catalog *tetromino.Catalog, caps terminal.Capabilities) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	go terminal.WatchKeys(screen, cancel)

	// Finite runs keep the last frame up until a key is pressed.
	err = stacker.New(cfg, catalog, terminal.NewScreenSink(screen, caps)).Run(ctx)
	if err == nil {
		<-ctx.Done()
	}
	if errors.Is(context.Cause(ctx), terminal.ErrQuit) {
		return nil
	}
	return err
}
