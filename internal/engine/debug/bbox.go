// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/rubik/internal/cube"
	"github.com/Faultbox/rubik/pkg/math"
)

// OutlineVertexCount is the number of line vertices of a box outline (12 edges × 2).
const OutlineVertexCount = 24

// DefaultOutlinePadding keeps the outline clear of the cubelet faces.
const DefaultOutlinePadding = 0.05

// OutlineColor is used for the turning layer's outline.
var OutlineColor = cube.Color{1, 0, 1, 1}

// BoxOutline returns line vertices for the wireframe of the box lo..hi,
// grown by padding on every side.
func BoxOutline(lo, hi math.Vec3, padding float32, color cube.Color) []cube.Vertex {
	p := math.Vec3{X: padding, Y: padding, Z: padding}
	lo, hi = lo.Sub(p), hi.Add(p)

	corner := func(x, y, z bool) cube.Vertex {
		c := lo
		if x {
			c.X = hi.X
		}
		if y {
			c.Y = hi.Y
		}
		if z {
			c.Z = hi.Z
		}
		return cube.Vertex{Position: c.Array(), Color: color}
	}

	edges := [12][2][3]bool{
		// bottom
		{{false, false, false}, {true, false, false}},
		{{true, false, false}, {true, false, true}},
		{{true, false, true}, {false, false, true}},
		{{false, false, true}, {false, false, false}},
		// top
		{{false, true, false}, {true, true, false}},
		{{true, true, false}, {true, true, true}},
		{{true, true, true}, {false, true, true}},
		{{false, true, true}, {false, true, false}},
		// vertical
		{{false, false, false}, {false, true, false}},
		{{true, false, false}, {true, true, false}},
		{{true, false, true}, {true, true, true}},
		{{false, false, true}, {false, true, true}},
	}

	out := make([]cube.Vertex, 0, OutlineVertexCount)
	for _, e := range edges {
		out = append(out,
			corner(e[0][0], e[0][1], e[0][2]),
			corner(e[1][0], e[1][1], e[1][2]))
	}
	return out
}

// LayerOutline outlines the cubelets of a turn in progress.
func LayerOutline(c *cube.Cube, rot cube.Rotation, padding float32) []cube.Vertex {
	var lo, hi math.Vec3
	for i, idx := range rot.Cubelets {
		l, h := c.Cubelets[idx].Bounds()
		if i == 0 {
			lo, hi = l, h
			continue
		}
		lo = math.Vec3{X: min(lo.X, l.X), Y: min(lo.Y, l.Y), Z: min(lo.Z, l.Z)}
		hi = math.Vec3{X: max(hi.X, h.X), Y: max(hi.Y, h.Y), Z: max(hi.Z, h.Z)}
	}
	return BoxOutline(lo, hi, padding, OutlineColor)
}
