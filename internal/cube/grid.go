package cube

// Size is the edge length of the cube in cubelets.
const Size = 3

// CubeletCount is the number of cubelets in the cube.
const CubeletCount = Size * Size * Size

// Grid maps logical cells to cubelet indices, addressed grid[depth][row][col]:
// depth 0 is the front layer, row 0 the top row and col 0 the left column.
// A valid grid holds every index 0..26 exactly once.
type Grid [Size][Size][Size]int

// AxisPair names the two grid axes spanning a rotation plane. A quarter
// rotation turns the first axis towards the second.
type AxisPair [2]int

// Layer is one 3x3 slice of the grid.
type Layer [Size][Size]int

// NewGrid returns the grid of a freshly built cube.
func NewGrid() Grid {
	var g Grid
	for i := 0; i < CubeletCount; i++ {
		g[i/9][(i/3)%3][Size-1-i%3] = i
	}
	return g
}

// Valid reports whether g is a permutation of 0..26.
func (g Grid) Valid() bool {
	var seen [CubeletCount]bool
	for d := range g {
		for r := range g[d] {
			for _, idx := range g[d][r] {
				if idx < 0 || idx >= CubeletCount || seen[idx] {
					return false
				}
				seen[idx] = true
			}
		}
	}
	return true
}

// Locate returns the cell currently holding cubelet index.
func (g Grid) Locate(index int) (depth, row, col int, ok bool) {
	for d := range g {
		for r := range g[d] {
			for c, idx := range g[d][r] {
				if idx == index {
					return d, r, c, true
				}
			}
		}
	}
	return 0, 0, 0, false
}

// Rot90 returns g rotated by k quarter turns in the plane of axes.
// A single quarter turn maps out[.., i_a=x, .., i_b=y, ..] = g[.., i_a=y, .., i_b=2-x, ..].
func (g Grid) Rot90(axes AxisPair, k int) Grid {
	k = ((k % 4) + 4) % 4
	a, b := axes[0], axes[1]
	for ; k > 0; k-- {
		var out Grid
		for d := 0; d < Size; d++ {
			for r := 0; r < Size; r++ {
				for c := 0; c < Size; c++ {
					dst := [3]int{d, r, c}
					src := dst
					src[a] = dst[b]
					src[b] = Size - 1 - dst[a]
					out[d][r][c] = g[src[0]][src[1]][src[2]]
				}
			}
		}
		g = out
	}
	return g
}

// Rot90 returns l rotated by k quarter turns, rows towards columns.
func (l Layer) Rot90(k int) Layer {
	k = ((k % 4) + 4) % 4
	for ; k > 0; k-- {
		var out Layer
		for i := 0; i < Size; i++ {
			for j := 0; j < Size; j++ {
				out[i][j] = l[j][Size-1-i]
			}
		}
		l = out
	}
	return l
}

// Indices flattens the layer in row order.
func (l Layer) Indices() [Size * Size]int {
	var out [Size * Size]int
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[i*Size+j] = l[i][j]
		}
	}
	return out
}

// RotateLayer turns one layer of the grid by a quarter and returns the nine
// cubelets that moved. The layer is isolated by aligning it with axis 0:
//
//  1. rotate the whole grid quarterTurns times about axes
//  2. take slice layer as the cubelets to animate
//  3. rotate that slice by 270 degrees (by 90 when invert is set)
//  4. rotate the whole grid back by 4-quarterTurns
//
// Only the chosen layer ends up moved; every other cell is restored by step 4.
func (g *Grid) RotateLayer(axes AxisPair, layer, quarterTurns int, invert bool) [Size * Size]int {
	aligned := g.Rot90(axes, quarterTurns)
	moved := Layer(aligned[layer]).Indices()

	turns := 3
	if invert {
		turns = 1
	}
	aligned[layer] = Layer(aligned[layer]).Rot90(turns)

	*g = aligned.Rot90(axes, 4-quarterTurns)
	return moved
}
