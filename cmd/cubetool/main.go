// cubetool plays move sequences on a headless cube.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Faultbox/rubik/internal/anim"
	"github.com/Faultbox/rubik/internal/config"
	"github.com/Faultbox/rubik/internal/cube"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "apply":
		cmdApply(args)
	case "scramble":
		cmdScramble(args)
	case "verify":
		cmdVerify(args)
	case "grid":
		fmt.Print(formatGrid(cube.NewGrid()))
	case "moves":
		fmt.Print(formatTurns())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`cubetool - headless 3x3x3 cube utility

Usage:
  cubetool <command> [options]

Commands:
  apply <moves>                        Apply moves and print the grid
  scramble [-n N] [-seed S] [-primes]  Print a scramble and its inverse
  verify [-step DEG] [-rounded] <moves> Animate moves and check every cubelet
  grid                                 Print the solved grid
  moves                                List the turn alphabet

Moves are letters from fbtdrlmes in either case, with a trailing ' for the
inverse turn, separated by spaces or commas.

Examples:
  cubetool apply "f r' t"
  cubetool scramble -n 25 -seed 7
  cubetool verify -step 7 "f r b' m"`)
}

func parseMoves(args []string, usage string) []cube.Move {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: cubetool "+usage)
		os.Exit(1)
	}
	moves, err := cube.ParseSequence(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return moves
}

func cmdApply(args []string) {
	moves := parseMoves(args, "apply <moves>")

	g := cube.NewGrid()
	for _, m := range moves {
		spec := m.Turn.Spec()
		g.RotateLayer(spec.GridAxes, spec.Layer, spec.Align, m.Prime)
	}

	fmt.Printf("Moves:   %s\n", cube.FormatSequence(moves))
	fmt.Printf("Solved:  %v\n", g == cube.NewGrid())
	fmt.Printf("Inverse: %s\n\n", cube.FormatSequence(cube.InverseSequence(moves)))
	fmt.Print(formatGrid(g))
}

func cmdScramble(args []string) {
	defaults := anim.DefaultScrambleConfig()

	fs := flag.NewFlagSet("scramble", flag.ExitOnError)
	n := fs.Int("n", defaults.Moves, "Number of moves")
	seed := fs.Uint64("seed", 0, "Random seed (0 = from clock)")
	primes := fs.Bool("primes", false, "Include inverse turns")
	fs.Parse(args)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	cfg := defaults
	cfg.Moves = *n
	cfg.Primes = *primes

	s := anim.NewScrambler(cfg, *seed)
	seq := s.Sequence(cfg.Moves)

	fmt.Printf("Seed:     %d\n", s.Seed())
	fmt.Printf("Scramble: %s\n", cube.FormatSequence(seq))
	fmt.Printf("Undo:     %s\n", cube.FormatSequence(cube.InverseSequence(seq)))
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	step := fs.Float64("step", 5, "Degrees per frame")
	rounded := fs.Bool("rounded", false, "Use rounded cubelets")
	fs.Parse(args)

	moves := parseMoves(fs.Args(), "verify [-step DEG] [-rounded] <moves>")

	cfg := config.Default()
	if *rounded {
		cfg.Cube.Variant = string(cube.VariantRounded)
	}
	res, err := verify(cfg, moves, float32(*step))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Moves:    %d\n", len(moves))
	fmt.Printf("Frames:   %d\n", res.frames)
	fmt.Printf("Drift:    %.2e\n", res.drift)
	fmt.Printf("Restored: %v\n", res.restored)
	if !res.restored || res.drift > driftTolerance {
		os.Exit(1)
	}
}
