package renderer

import (
	"testing"

	"github.com/Faultbox/rubik/pkg/math"
)

func TestVertexStride(t *testing.T) {
	if vertexStride != 28 {
		t.Errorf("vertex stride = %d, want 28", vertexStride)
	}
}

func TestViewProjectionCentresCube(t *testing.T) {
	vp := ViewProjection(DefaultConfig(800, 800))

	// The origin lands in the middle of the screen, in front of the camera.
	clip := vp.Mul(math.Translate(0, 0, 0))
	x, y, z, w := clip[12], clip[13], clip[14], clip[15]
	if x != 0 || y != 0 {
		t.Errorf("origin off centre: x=%v y=%v", x, y)
	}
	if w != 4.5 {
		t.Errorf("origin depth w = %v, want 4.5", w)
	}
	if ndc := z / w; ndc <= -1 || ndc >= 1 {
		t.Errorf("origin clipped: ndc z = %v", ndc)
	}
}

func TestViewProjectionAspect(t *testing.T) {
	wide := ViewProjection(DefaultConfig(1600, 800))
	square := ViewProjection(DefaultConfig(800, 800))
	if wide[0] >= square[0] {
		t.Errorf("wide x scale %v should be below square %v", wide[0], square[0])
	}
	if wide[5] != square[5] {
		t.Errorf("y scale changed with aspect: %v vs %v", wide[5], square[5])
	}

	// Zero height must not divide by zero.
	_ = ViewProjection(DefaultConfig(800, 0))
}
