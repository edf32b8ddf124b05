package cube

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubik/pkg/math"
)

func buildFlat(t *testing.T) *Cube {
	t.Helper()
	c, err := Build(DefaultFlatGeometry(), DefaultPalette())
	require.NoError(t, err)
	return c
}

func allMoves() []Move {
	var out []Move
	for i := range Turns {
		out = append(out, Move{Turn: Turn(i)}, Move{Turn: Turn(i), Prime: true})
	}
	return out
}

func snapshot(c *Cube) []Vertex {
	return append([]Vertex(nil), c.Vertices()...)
}

func assertVerticesNear(t *testing.T, want, got []Vertex, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		for k := 0; k < 3; k++ {
			if !assert.InDelta(t, want[i].Position[k], got[i].Position[k], delta, "vertex %d", i) {
				return
			}
		}
	}
}

func assertCubeletsInCells(t *testing.T, c *Cube) {
	t.Helper()
	for d := 0; d < Size; d++ {
		for r := 0; r < Size; r++ {
			for col := 0; col < Size; col++ {
				idx := c.Grid[d][r][col]
				got := c.Cubelets[idx].Center()
				want := c.CellCenter(d, r, col)
				assert.InDelta(t, 0, got.Distance(want), 1e-3,
					"cubelet %d in cell [%d][%d][%d]: centre %v, want %v", idx, d, r, col, got, want)
			}
		}
	}
}

func TestBuildDefaults(t *testing.T) {
	for _, geo := range []GeometryConfig{DefaultFlatGeometry(), DefaultRoundedGeometry()} {
		t.Run(string(geo.Variant), func(t *testing.T) {
			c, err := Build(geo, DefaultPalette())
			require.NoError(t, err)

			per := FlatVertexCount
			if geo.Variant == VariantRounded {
				per = RoundedVertexCount
			}
			assert.Len(t, c.Vertices(), CubeletCount*per)
			assert.True(t, c.Grid.Valid())
			assertCubeletsInCells(t, c)
		})
	}
}

func TestBuildMissingColor(t *testing.T) {
	p := DefaultPalette()
	delete(p.Faces, Back)

	_, err := Build(DefaultFlatGeometry(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColorData)
}

func TestBuildRejectsBadGeometry(t *testing.T) {
	geo := DefaultFlatGeometry()
	geo.Origin = math.Vec3{}
	_, err := Build(geo, DefaultPalette())
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	geo = DefaultFlatGeometry()
	geo.Pitch = 0
	_, err = Build(geo, DefaultPalette())
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	geo = DefaultFlatGeometry()
	geo.Variant = "hexagonal"
	_, err = Build(geo, DefaultPalette())
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestCubeletVerticesShareBacking(t *testing.T) {
	c := buildFlat(t)
	c.Cubelets[3].Vertices[0].Position = [3]float32{9, 9, 9}
	assert.Equal(t, [3]float32{9, 9, 9}, c.Vertices()[3*FlatVertexCount].Position)
}

func TestFrontTurnMovesFrontLayer(t *testing.T) {
	c := buildFlat(t)
	rot := c.Turn(Move{Turn: TurnFront})

	assert.Equal(t, math.AxisZ, rot.Axis)
	assert.Equal(t, -1, rot.Quarters)
	assert.Equal(t, [9]int{2, 1, 0, 5, 4, 3, 8, 7, 6}, rot.Cubelets)

	// Clockwise seen from the front: top-right goes to bottom-right.
	center := c.Cubelets[0].Center()
	assert.InDelta(t, 1.2, center.X, 1e-4)
	assert.InDelta(t, -1.2, center.Y, 1e-4)
	assert.InDelta(t, 1.2, center.Z, 1e-4)
	assertCubeletsInCells(t, c)
}

func TestTurnThenInverseRestores(t *testing.T) {
	for _, geo := range []GeometryConfig{DefaultFlatGeometry(), DefaultRoundedGeometry()} {
		c, err := Build(geo, DefaultPalette())
		require.NoError(t, err)
		before := snapshot(c)
		grid := c.Grid

		for _, m := range allMoves() {
			c.Turn(m)
			c.Turn(m.Inverse())
			require.Equal(t, grid, c.Grid, "%s then inverse", m)
			assertVerticesNear(t, before, c.Vertices(), 1e-4)
		}
	}
}

func TestFourTurnsRestore(t *testing.T) {
	c := buildFlat(t)
	before := snapshot(c)

	for _, m := range allMoves() {
		for i := 0; i < 4; i++ {
			c.Turn(m)
		}
		require.Equal(t, NewGrid(), c.Grid, "4x %s", m)
		assertVerticesNear(t, before, c.Vertices(), 1e-4)
	}
}

func TestTurnLeavesOtherCubeletsUntouched(t *testing.T) {
	for _, m := range allMoves() {
		c := buildFlat(t)
		before := snapshot(c)

		rot := c.Turn(m)
		moved := map[int]bool{}
		for _, idx := range rot.Cubelets {
			moved[idx] = true
		}
		require.Len(t, moved, 9)

		for i := 0; i < CubeletCount; i++ {
			if moved[i] {
				continue
			}
			lo, hi := i*FlatVertexCount, (i+1)*FlatVertexCount
			assert.Equal(t, before[lo:hi], c.Vertices()[lo:hi], "%s touched cubelet %d", m, i)
		}
	}
}

func TestApplyLeavesVertices(t *testing.T) {
	c := buildFlat(t)
	before := snapshot(c)
	c.Apply(Move{Turn: TurnRight})
	assert.Equal(t, before, c.Vertices())
	assert.NotEqual(t, NewGrid(), c.Grid)
}

func TestCubeletsFollowGrid(t *testing.T) {
	for _, geo := range []GeometryConfig{DefaultFlatGeometry(), DefaultRoundedGeometry()} {
		t.Run(string(geo.Variant), func(t *testing.T) {
			c, err := Build(geo, DefaultPalette())
			require.NoError(t, err)

			rng := rand.New(rand.NewSource(42))
			moves := allMoves()
			for n := 0; n < 200; n++ {
				c.Turn(moves[rng.Intn(len(moves))])
				require.True(t, c.Grid.Valid())
			}
			assertCubeletsInCells(t, c)
		})
	}
}

func TestScrambleThenUndo(t *testing.T) {
	c := buildFlat(t)
	before := snapshot(c)

	rng := rand.New(rand.NewSource(1))
	moves := allMoves()
	seq := make([]Move, 70)
	for i := range seq {
		seq[i] = moves[rng.Intn(len(moves))]
		c.Turn(seq[i])
	}
	require.NotEqual(t, NewGrid(), c.Grid)

	for _, m := range InverseSequence(seq) {
		c.Turn(m)
	}
	assert.Equal(t, NewGrid(), c.Grid)
	assertVerticesNear(t, before, c.Vertices(), 1e-4)
}

func TestCellCenter(t *testing.T) {
	c := buildFlat(t)
	assert.Equal(t, math.Vec3{}, c.CellCenter(1, 1, 1))

	p := c.CellCenter(0, 0, 2)
	assert.InDelta(t, 1.2, p.X, 1e-6)
	assert.InDelta(t, 1.2, p.Y, 1e-6)
	assert.InDelta(t, 1.2, p.Z, 1e-6)
}
