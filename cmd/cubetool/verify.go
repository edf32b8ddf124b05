package main

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rubik/internal/anim"
	"github.com/Faultbox/rubik/internal/config"
	"github.com/Faultbox/rubik/internal/cube"
)

const driftTolerance = 1e-4

type verifyResult struct {
	frames   int
	drift    float32 // largest distance between a cubelet and its grid cell
	restored bool    // the inverse sequence brought back every vertex
}

// verify animates moves frame by frame, checks that every cubelet sits in the
// cell the grid says it does, then plays the inverse and compares every
// vertex with the freshly built cube.
func verify(cfg *config.Config, moves []cube.Move, step float32) (verifyResult, error) {
	var res verifyResult

	palette, err := cfg.Palette.Palette()
	if err != nil {
		return res, err
	}
	c, err := cube.Build(cfg.Cube.Geometry(), palette)
	if err != nil {
		return res, err
	}
	initial := append([]cube.Vertex(nil), c.Vertices()...)

	a := anim.NewAnimator(c)
	count := func() { res.frames++ }
	for _, m := range moves {
		if err := a.Run(m, step, count); err != nil {
			return res, fmt.Errorf("%s: %w", m, err)
		}
	}

	for i := range c.Cubelets {
		d, r, col, ok := c.Grid.Locate(i)
		if !ok {
			return res, fmt.Errorf("cubelet %d missing from grid", i)
		}
		res.drift = math32.Max(res.drift, c.Cubelets[i].Center().Distance(c.CellCenter(d, r, col)))
	}

	for _, m := range cube.InverseSequence(moves) {
		if err := a.Run(m, step, count); err != nil {
			return res, fmt.Errorf("%s: %w", m, err)
		}
	}

	res.restored = c.Grid == cube.NewGrid()
	for i, v := range c.Vertices() {
		for k := 0; k < 3; k++ {
			if math32.Abs(v.Position[k]-initial[i].Position[k]) > driftTolerance {
				res.restored = false
			}
		}
	}
	return res, nil
}

// formatGrid prints the grid one depth layer at a time, front first.
func formatGrid(g cube.Grid) string {
	var b strings.Builder
	for d := 0; d < cube.Size; d++ {
		fmt.Fprintf(&b, "depth %d\n", d)
		for r := 0; r < cube.Size; r++ {
			for c := 0; c < cube.Size; c++ {
				fmt.Fprintf(&b, " %2d", g[d][r][c])
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func formatTurns() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-9s %-4s %-5s\n", "KEY", "NAME", "AXIS", "LAYER")
	for _, t := range cube.Turns {
		dir := "ccw"
		if t.Sign < 0 {
			dir = "cw"
		}
		fmt.Fprintf(&b, "%-4c %-9s %-4s %d (%s)\n", t.Key, t.Name, t.Axis, t.Layer, dir)
	}
	return b.String()
}
