package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Axis names one of the three principal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// RotateX returns a counter-clockwise rotation around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	return rotateX(math32.Cos(angle), math32.Sin(angle))
}

// RotateY returns a counter-clockwise rotation around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	return rotateY(math32.Cos(angle), math32.Sin(angle))
}

// RotateZ returns a counter-clockwise rotation around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	return rotateZ(math32.Cos(angle), math32.Sin(angle))
}

// Rotate returns the rotation around the given principal axis.
func Rotate(axis Axis, angle float32) Mat4 {
	return rotate(axis, math32.Cos(angle), math32.Sin(angle))
}

// RotateQuarter returns an exact rotation of quarters*90 degrees around axis.
// Entries are 0 or ±1 so repeated application never accumulates error.
func RotateQuarter(axis Axis, quarters int) Mat4 {
	var c, s float32
	switch ((quarters % 4) + 4) % 4 {
	case 0:
		c, s = 1, 0
	case 1:
		c, s = 0, 1
	case 2:
		c, s = -1, 0
	case 3:
		c, s = 0, -1
	}
	return rotate(axis, c, s)
}

func rotate(axis Axis, c, s float32) Mat4 {
	switch axis {
	case AxisX:
		return rotateX(c, s)
	case AxisY:
		return rotateY(c, s)
	default:
		return rotateZ(c, s)
	}
}

func rotateX(c, s float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func rotateY(c, s float32) Mat4 {
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func rotateZ(c, s float32) Mat4 {
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// TransformPoint returns m·[p, 1] truncated to three components.
// No perspective divide is performed; use it for affine matrices.
func (m Mat4) TransformPoint(p [3]float32) [3]float32 {
	return [3]float32{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
	}
}

// TransformVec3 transforms a Vec3 point by this matrix.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	return V3(m.TransformPoint(v.Array()))
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
