package debug

import "github.com/Faultbox/rubik/internal/cube"

// AxisVertexCount is the number of line vertices of the axis gizmo.
const AxisVertexCount = 6

// Axis colours: X red, Y green, Z blue.
var (
	AxisXColor = cube.Color{1, 0, 0, 1}
	AxisYColor = cube.Color{0, 1, 0, 1}
	AxisZColor = cube.Color{0, 0, 1, 1}
)

// AxisGizmo returns three lines from the origin along +X, +Y and +Z, for
// drawing with GL_LINES.
func AxisGizmo(length float32) []cube.Vertex {
	return []cube.Vertex{
		{Position: [3]float32{0, 0, 0}, Color: AxisXColor},
		{Position: [3]float32{length, 0, 0}, Color: AxisXColor},
		{Position: [3]float32{0, 0, 0}, Color: AxisYColor},
		{Position: [3]float32{0, length, 0}, Color: AxisYColor},
		{Position: [3]float32{0, 0, 0}, Color: AxisZColor},
		{Position: [3]float32{0, 0, length}, Color: AxisZColor},
	}
}
