package cube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubik/pkg/math"
)

func fullScheme(c Color) Scheme {
	s := Scheme{}
	for _, f := range Faces {
		s[f] = c
	}
	return s
}

func TestCorners(t *testing.T) {
	c := Corners(math.Vec3{X: 1, Y: 1, Z: 1}, 1)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, c[0])
	assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 1}, c[1])
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 1}, c[2])
	assert.Equal(t, math.Vec3{X: 1, Y: 0, Z: 1}, c[3])
	assert.Equal(t, math.Vec3{X: 1, Y: 0, Z: 0}, c[4])
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 0}, c[5])
	assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 0}, c[6])
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 0}, c[7])
}

func TestBuildFlatPositions(t *testing.T) {
	scheme := Scheme{Front: Red, Right: Blue, Back: Orange, Left: Green, Top: White, Down: Yellow}
	verts, err := BuildFlat(math.Vec3{X: 1.7, Y: 1.7, Z: 1.7}, 1, scheme)
	require.NoError(t, err)
	require.Len(t, verts, FlatVertexCount)

	want := [FlatVertexCount][3]float32{
		// front
		{1.7, 1.7, 1.7}, {0.7, 1.7, 1.7}, {1.7, 0.7, 1.7},
		{0.7, 1.7, 1.7}, {0.7, 0.7, 1.7}, {1.7, 0.7, 1.7},
		// right
		{1.7, 1.7, 0.7}, {1.7, 1.7, 1.7}, {1.7, 0.7, 0.7},
		{1.7, 1.7, 1.7}, {1.7, 0.7, 1.7}, {1.7, 0.7, 0.7},
		// back
		{0.7, 1.7, 0.7}, {1.7, 1.7, 0.7}, {0.7, 0.7, 0.7},
		{1.7, 1.7, 0.7}, {1.7, 0.7, 0.7}, {0.7, 0.7, 0.7},
		// left
		{0.7, 1.7, 1.7}, {0.7, 1.7, 0.7}, {0.7, 0.7, 1.7},
		{0.7, 1.7, 0.7}, {0.7, 0.7, 0.7}, {0.7, 0.7, 1.7},
		// top
		{1.7, 1.7, 0.7}, {0.7, 1.7, 0.7}, {1.7, 1.7, 1.7},
		{0.7, 1.7, 0.7}, {0.7, 1.7, 1.7}, {1.7, 1.7, 1.7},
		// down
		{0.7, 0.7, 0.7}, {1.7, 0.7, 0.7}, {0.7, 0.7, 1.7},
		{1.7, 0.7, 0.7}, {1.7, 0.7, 1.7}, {0.7, 0.7, 1.7},
	}
	for i, v := range verts {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, want[i][k], v.Position[k], 1e-6, "vertex %d component %d", i, k)
		}
		assert.Equal(t, scheme[Faces[i/6]], v.Color, "vertex %d", i)
	}
}

func TestBuildFlatMissingColor(t *testing.T) {
	scheme := fullScheme(Black)
	delete(scheme, Back)

	_, err := BuildFlat(math.Vec3{}, 1, scheme)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColorData))
}

func TestBuildFlatInvalidWidth(t *testing.T) {
	_, err := BuildFlat(math.Vec3{}, 0, fullScheme(Black))
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestBuildRounded(t *testing.T) {
	scheme := Scheme{Front: Red, Right: Blue, Back: Orange, Left: Green, Top: White, Down: Yellow}
	ref := math.Vec3{X: 1, Y: 1, Z: 1}
	verts, err := BuildRounded(ref, 0.8, 0.1, scheme, Teal)
	require.NoError(t, err)
	require.Len(t, verts, RoundedVertexCount)

	for i := 0; i < FlatVertexCount; i++ {
		assert.Equal(t, scheme[Faces[i/6]], verts[i].Color, "face vertex %d", i)
	}
	for i := FlatVertexCount; i < RoundedVertexCount; i++ {
		assert.Equal(t, Teal, verts[i].Color, "fillet vertex %d", i)
	}

	// Everything stays within the rounded cubelet's box.
	c := Cubelet{Vertices: verts}
	lo, hi := c.Bounds()
	assert.InDelta(t, 1.1, hi.X, 1e-5)
	assert.InDelta(t, 1.1, hi.Y, 1e-5)
	assert.InDelta(t, 1.0, hi.Z, 1e-5)
	assert.InDelta(t, 0.1, lo.X, 1e-5)
	assert.InDelta(t, 0.1, lo.Y, 1e-5)
	assert.InDelta(t, 0.0, lo.Z, 1e-5)
}

func TestBuildRoundedFilletsMeetFaces(t *testing.T) {
	verts, err := BuildRounded(math.Vec3{}, 1, 0.2, fullScheme(Black), Teal)
	require.NoError(t, err)

	// The last segment of the front-top strip ends on the front face edge.
	strip := verts[FlatVertexCount : FlatVertexCount+FilletSegments*6]
	last := strip[len(strip)-1].Position
	assert.InDelta(t, -1.0, last[0], 1e-5)
	assert.InDelta(t, 0.0, last[1], 1e-5)
	assert.InDelta(t, 0.0, last[2], 1e-5)
}

func TestReferenceCorner(t *testing.T) {
	origin := math.Vec3{X: 1.7, Y: 1.7, Z: 1.7}
	assert.Equal(t, origin, ReferenceCorner(origin, 1.2, 0))

	r := ReferenceCorner(origin, 1.2, 26)
	assert.InDelta(t, -0.7, r.X, 1e-5)
	assert.InDelta(t, -0.7, r.Y, 1e-5)
	assert.InDelta(t, -0.7, r.Z, 1e-5)

	r = ReferenceCorner(origin, 1.2, 5)
	assert.InDelta(t, -0.7, r.X, 1e-5)
	assert.InDelta(t, 0.5, r.Y, 1e-5)
	assert.InDelta(t, 1.7, r.Z, 1e-5)
}
