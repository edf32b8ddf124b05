// Package cube models a 3x3x3 Rubik's Cube: cubelet geometry, the logical
// grid tracking which cubelet sits in which cell, and the layer turns that
// permute both.
package cube

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rubik/pkg/math"
)

// Variant selects the cubelet mesh.
type Variant string

const (
	VariantFlat    Variant = "flat"
	VariantRounded Variant = "rounded"
)

// GeometryConfig holds the dimensions used to build all 27 cubelets.
type GeometryConfig struct {
	Variant Variant

	// Width is the edge length of a flat cubelet, or the face width of a
	// rounded one.
	Width float32

	// Radius is the fillet radius (rounded variant only).
	Radius float32

	// Pitch is the distance between neighbouring cell centres.
	Pitch float32

	// Origin is the reference (top-right-front) corner of cubelet 0.
	Origin math.Vec3
}

// DefaultFlatGeometry returns flat-faced cubelets of width 1 with a 0.2 gap.
func DefaultFlatGeometry() GeometryConfig {
	return GeometryConfig{
		Variant: VariantFlat,
		Width:   1.0,
		Pitch:   1.2,
		Origin:  math.Vec3{X: 1.7, Y: 1.7, Z: 1.7},
	}
}

// DefaultRoundedGeometry returns tightly packed rounded cubelets.
func DefaultRoundedGeometry() GeometryConfig {
	return GeometryConfig{
		Variant: VariantRounded,
		Width:   0.8696,
		Radius:  0.0652,
		Pitch:   1.0,
		Origin:  math.Vec3{X: 1.4348, Y: 1.4348, Z: 1.5},
	}
}

// centerTolerance bounds how far the cube centre may sit from the origin.
// Turns rotate about the origin, so an off-centre cube would leave its cells.
const centerTolerance = 1e-3

// Cubelet is one of the 27 sub-cubes. Vertices is a window into the cube's
// shared vertex array and is rewritten in place by turns.
type Cubelet struct {
	Index    int
	Vertices []Vertex
}

// Bounds returns the axis-aligned bounding box of the cubelet.
func (c *Cubelet) Bounds() (lo, hi math.Vec3) {
	if len(c.Vertices) == 0 {
		return
	}
	lo = math.V3(c.Vertices[0].Position)
	hi = lo
	for _, v := range c.Vertices[1:] {
		p := v.Position
		lo = math.Vec3{X: math32.Min(lo.X, p[0]), Y: math32.Min(lo.Y, p[1]), Z: math32.Min(lo.Z, p[2])}
		hi = math.Vec3{X: math32.Max(hi.X, p[0]), Y: math32.Max(hi.Y, p[1]), Z: math32.Max(hi.Z, p[2])}
	}
	return lo, hi
}

// Center returns the centre of the cubelet's bounding box.
func (c *Cubelet) Center() math.Vec3 {
	lo, hi := c.Bounds()
	return lo.Add(hi).Scale(0.5)
}

// Transform replaces every vertex position p with m·[p, 1].
func (c *Cubelet) Transform(m math.Mat4) {
	for i := range c.Vertices {
		c.Vertices[i].Position = m.TransformPoint(c.Vertices[i].Position)
	}
}

// Cube is the full puzzle: 27 cubelets sharing one vertex array, and the grid
// tracking where each of them currently is.
type Cube struct {
	Cubelets [CubeletCount]Cubelet
	Grid     Grid

	vertices []Vertex
	pitch    float32
}

// Build creates all cubelets from the geometry and palette. A palette that
// leaves a needed face without colour fails with ErrMissingColorData.
func Build(geo GeometryConfig, palette Palette) (*Cube, error) {
	if geo.Pitch <= 0 {
		return nil, fmt.Errorf("%w: pitch %v", ErrInvalidGeometry, geo.Pitch)
	}

	perCubelet := FlatVertexCount
	if geo.Variant == VariantRounded {
		perCubelet = RoundedVertexCount
	} else if geo.Variant != VariantFlat {
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidGeometry, geo.Variant)
	}

	c := &Cube{
		Grid:     NewGrid(),
		vertices: make([]Vertex, CubeletCount*perCubelet),
		pitch:    geo.Pitch,
	}

	for i := 0; i < CubeletCount; i++ {
		ref := ReferenceCorner(geo.Origin, geo.Pitch, i)
		scheme := palette.SchemeFor(i)

		var verts []Vertex
		var err error
		if geo.Variant == VariantRounded {
			verts, err = BuildRounded(ref, geo.Width, geo.Radius, scheme, palette.Fillet)
		} else {
			verts, err = BuildFlat(ref, geo.Width, scheme)
		}
		if err != nil {
			return nil, fmt.Errorf("cubelet %d: %w", i, err)
		}

		lo, hi := i*perCubelet, (i+1)*perCubelet
		copy(c.vertices[lo:hi], verts)
		c.Cubelets[i] = Cubelet{Index: i, Vertices: c.vertices[lo:hi:hi]}
	}

	if center := c.Cubelets[CubeletCount/2].Center(); center.Length() > centerTolerance {
		return nil, fmt.Errorf("%w: cube centred at %v, want the origin", ErrInvalidGeometry, center)
	}
	return c, nil
}

// Vertices returns the shared vertex array of all cubelets in index order.
func (c *Cube) Vertices() []Vertex {
	return c.vertices
}

// CellCenter returns the world position of a grid cell's centre.
func (c *Cube) CellCenter(depth, row, col int) math.Vec3 {
	return math.Vec3{
		X: float32(col-1) * c.pitch,
		Y: float32(1-row) * c.pitch,
		Z: float32(1-depth) * c.pitch,
	}
}

// Rotation describes a started turn: which cubelets move and how.
type Rotation struct {
	Move     Move
	Axis     math.Axis
	Quarters int
	Cubelets [Size * Size]int
}

// Matrix returns the exact quarter-turn matrix of the rotation.
func (r Rotation) Matrix() math.Mat4 {
	return math.RotateQuarter(r.Axis, r.Quarters)
}

// Apply updates the grid for move and returns the cubelets to animate.
// Vertex positions are left untouched.
func (c *Cube) Apply(m Move) Rotation {
	spec := m.Turn.Spec()
	moved := c.Grid.RotateLayer(spec.GridAxes, spec.Layer, spec.Align, m.Prime)
	return Rotation{
		Move:     m,
		Axis:     spec.Axis,
		Quarters: m.Quarters(),
		Cubelets: moved,
	}
}

// Turn applies move to the grid and rotates the moved cubelets' vertices by
// the exact quarter turn, without animation.
func (c *Cube) Turn(m Move) Rotation {
	rot := c.Apply(m)
	mat := rot.Matrix()
	for _, idx := range rot.Cubelets {
		c.Cubelets[idx].Transform(mat)
	}
	return rot
}
