package cube

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rubik/pkg/math"
)

// Vertex is one triangle-list vertex as uploaded to the GPU.
// Layout: 3 floats position, 4 floats colour (stride 28 bytes).
type Vertex struct {
	Position [3]float32
	Color    [4]float32
}

const (
	// FlatVertexCount is the vertex count of a flat-faced cubelet (12 triangles).
	FlatVertexCount = 36

	// FilletSegments is the number of segments of each quarter-circle fillet.
	FilletSegments = 9

	// FilletStrips is the number of filleted regions on a rounded cubelet.
	FilletStrips = 5

	// RoundedVertexCount is the vertex count of a rounded cubelet.
	RoundedVertexCount = FlatVertexCount + FilletStrips*FilletSegments*6
)

// cornerIndices maps the 8 corners of a flat cubelet to triangle-list order.
// Every 6 entries form one face, in the order of Faces.
//
// Corner numbering, from the reference (top-right-front) corner r and width w:
//
//	0 r            4 r-(0,w,w)
//	1 r-(w,0,0)    5 r-(0,0,w)
//	2 r-(w,w,0)    6 r-(w,0,w)
//	3 r-(0,w,0)    7 r-(w,w,w)
var cornerIndices = [FlatVertexCount]int{
	0, 1, 3, 1, 2, 3, // front
	5, 0, 4, 0, 3, 4, // right
	6, 5, 7, 5, 4, 7, // back
	1, 6, 2, 6, 7, 2, // left
	5, 6, 0, 6, 1, 0, // top
	7, 4, 2, 4, 3, 2, // down
}

// Corners returns the 8 corners of a flat cubelet with the given reference
// corner and edge width.
func Corners(ref math.Vec3, width float32) [8]math.Vec3 {
	w := width
	return [8]math.Vec3{
		ref,
		ref.Sub(math.Vec3{X: w}),
		ref.Sub(math.Vec3{X: w, Y: w}),
		ref.Sub(math.Vec3{Y: w}),
		ref.Sub(math.Vec3{Y: w, Z: w}),
		ref.Sub(math.Vec3{Z: w}),
		ref.Sub(math.Vec3{X: w, Z: w}),
		ref.Sub(math.Vec3{X: w, Y: w, Z: w}),
	}
}

// ReferenceCorner returns the reference corner of the cubelet created at
// index, offset from origin (the corner of cubelet 0) by whole pitches.
// Index runs right to left, top to bottom, front to back.
func ReferenceCorner(origin math.Vec3, pitch float32, index int) math.Vec3 {
	return origin.Sub(math.Vec3{
		X: float32(index%3) * pitch,
		Y: float32((index/3)%3) * pitch,
		Z: float32(index/9) * pitch,
	})
}

// BuildFlat builds the 36-vertex triangle list of a flat-faced cubelet.
func BuildFlat(ref math.Vec3, width float32, scheme Scheme) ([]Vertex, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: cell width %v", ErrInvalidGeometry, width)
	}
	if err := scheme.Check(); err != nil {
		return nil, err
	}

	corners := Corners(ref, width)
	out := make([]Vertex, FlatVertexCount)
	for i, ci := range cornerIndices {
		out[i] = Vertex{
			Position: corners[ci].Array(),
			Color:    scheme[Faces[i/6]],
		}
	}
	return out, nil
}

// BuildRounded builds a cubelet whose six faces are inset by radius, with five
// filleted regions approximated by 9-segment quarter-circle strips: the
// front-top, front-bottom, back-top and back-bottom edges and the front-right
// standing edge. Fillet vertices take the fillet colour.
func BuildRounded(ref math.Vec3, faceWidth, radius float32, scheme Scheme, fillet Color) ([]Vertex, error) {
	if faceWidth <= 0 || radius < 0 {
		return nil, fmt.Errorf("%w: face width %v, radius %v", ErrInvalidGeometry, faceWidth, radius)
	}
	if err := scheme.Check(); err != nil {
		return nil, err
	}

	x, y, z := ref.X, ref.Y, ref.Z
	w, r := faceWidth, radius
	v := func(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }

	zIn, zOut := z-r, z-r-w
	xRight, xLeft := x+r, x-r-w
	yTop, yDown := y+r, y-r-w
	zBack := z - 2*r - w

	faces := [FlatVertexCount]math.Vec3{
		// front
		ref, v(x-w, y, z), v(x-w, y-w, z),
		ref, v(x-w, y-w, z), v(x, y-w, z),
		// right
		v(xRight, y, zOut), v(xRight, y, zIn), v(xRight, y-w, zIn),
		v(xRight, y, zOut), v(xRight, y-w, zIn), v(xRight, y-w, zOut),
		// back
		v(x-w, y, zBack), v(x, y, zBack), v(x, y-w, zBack),
		v(x-w, y, zBack), v(x, y-w, zBack), v(x-w, y-w, zBack),
		// left
		v(xLeft, y, zIn), v(xLeft, y, zOut), v(xLeft, y-w, zOut),
		v(xLeft, y, zIn), v(xLeft, y-w, zOut), v(xLeft, y-w, zIn),
		// top
		v(x, yTop, zOut), v(x-w, yTop, zOut), v(x-w, yTop, zIn),
		v(x, yTop, zOut), v(x-w, yTop, zIn), v(x, yTop, zIn),
		// down
		v(x-w, yDown, zOut), v(x, yDown, zOut), v(x, yDown, zIn),
		v(x-w, yDown, zOut), v(x, yDown, zIn), v(x-w, yDown, zIn),
	}

	out := make([]Vertex, RoundedVertexCount)
	for i, p := range faces {
		out[i] = Vertex{Position: p.Array(), Color: scheme[Faces[i/6]]}
	}

	// Each strip sweeps from its start edge; at(a) gives the edge after
	// sweeping a radians of the quarter circle.
	strips := []struct {
		start [2]math.Vec3
		at    func(s, c float32) [2]math.Vec3
	}{
		{ // front top
			[2]math.Vec3{v(x, yTop, zIn), v(x-w, yTop, zIn)},
			func(s, c float32) [2]math.Vec3 {
				return [2]math.Vec3{v(x, y+c*r, z-(1-s)*r), v(x-w, y+c*r, z-(1-s)*r)}
			},
		},
		{ // front bottom
			[2]math.Vec3{v(x, yDown, zIn), v(x-w, yDown, zIn)},
			func(s, c float32) [2]math.Vec3 {
				return [2]math.Vec3{v(x, y-w-c*r, z-(1-s)*r), v(x-w, y-w-c*r, z-(1-s)*r)}
			},
		},
		{ // back top
			[2]math.Vec3{v(x, yTop, zOut), v(x-w, yTop, zOut)},
			func(s, c float32) [2]math.Vec3 {
				return [2]math.Vec3{v(x, y+c*r, z-w-(1+s)*r), v(x-w, y+c*r, z-w-(1+s)*r)}
			},
		},
		{ // back bottom
			[2]math.Vec3{v(x, yDown, zOut), v(x-w, yDown, zOut)},
			func(s, c float32) [2]math.Vec3 {
				return [2]math.Vec3{v(x, y-w-c*r, z-w-(1+s)*r), v(x-w, y-w-c*r, z-w-(1+s)*r)}
			},
		},
		{ // standing, front right
			[2]math.Vec3{v(x, y-w, z), ref},
			func(s, c float32) [2]math.Vec3 {
				return [2]math.Vec3{v(x+s*r, y, z-(1-c)*r), v(x+s*r, y-w, z-(1-c)*r)}
			},
		},
	}

	n := FlatVertexCount
	for _, st := range strips {
		prev := st.start
		for seg := 0; seg < FilletSegments; seg++ {
			a := (math32.Pi / 2) * float32(seg+1) / FilletSegments
			next := st.at(math32.Sin(a), math32.Cos(a))
			for _, p := range [6]math.Vec3{prev[0], prev[1], next[0], prev[1], next[0], next[1]} {
				out[n] = Vertex{Position: p.Array(), Color: fillet}
				n++
			}
			prev = next
		}
	}
	return out, nil
}
