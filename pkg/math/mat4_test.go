package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformPoint([3]float32{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateZNegativeIsClockwise(t *testing.T) {
	// Looking down +Z, a negative angle moves the top-left corner to the top-right.
	m := RotateZ(-float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{-1, 1, 0})
	if abs(result[0]-1) > 0.001 || abs(result[1]-1) > 0.001 {
		t.Errorf("RotateZ -90: got %v, want (1, 1, 0)", result)
	}
}

func TestRotateMatchesNamedAxes(t *testing.T) {
	angle := Radians(37)
	pairs := []struct {
		axis Axis
		want Mat4
	}{
		{AxisX, RotateX(angle)},
		{AxisY, RotateY(angle)},
		{AxisZ, RotateZ(angle)},
	}
	for _, p := range pairs {
		if got := Rotate(p.axis, angle); got != p.want {
			t.Errorf("Rotate(%v) = %v, want %v", p.axis, got, p.want)
		}
	}
}

func TestRotateQuarterMatchesRotate(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for q := -5; q <= 5; q++ {
			exact := RotateQuarter(axis, q)
			approx := Rotate(axis, Radians(float32(q*90)))
			for i := range exact {
				if abs(exact[i]-approx[i]) > 1e-5 {
					t.Fatalf("RotateQuarter(%v, %d)[%d] = %f, want %f", axis, q, i, exact[i], approx[i])
				}
			}
		}
	}
}

func TestRotateQuarterFullRevolutionIsExact(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		m := Identity()
		q := RotateQuarter(axis, 1)
		for i := 0; i < 4; i++ {
			m = q.Mul(m)
		}
		if m != Identity() {
			t.Errorf("four quarter turns about %v: got %v, want identity", axis, m)
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/2), 1, 0.1, 100)

	// A 90 degree field of view leaves x and y unscaled.
	if abs(m[0]-1) > 1e-6 || abs(m[5]-1) > 1e-6 {
		t.Errorf("Perspective focal terms: got (%f, %f), want (1, 1)", m[0], m[5])
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-float32(math.Pi)) > 1e-6 {
		t.Errorf("Radians(180) = %f, want pi", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
