package anim

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/rubik/internal/logger"
	"github.com/Faultbox/rubik/pkg/math"
)

// Role is a nominal view rotation driven by the user.
type Role int

const (
	Pitch Role = iota // tilt towards or away from the viewer
	Yaw               // spin about the vertical
	Roll
)

func (r Role) String() string {
	switch r {
	case Pitch:
		return "pitch"
	case Yaw:
		return "yaw"
	case Roll:
		return "roll"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Direction is one view rotation command.
type Direction int

const (
	YawLeft Direction = iota
	YawRight
	PitchDown
	PitchUp
)

func (d Direction) String() string {
	switch d {
	case YawLeft:
		return "yaw left"
	case YawRight:
		return "yaw right"
	case PitchDown:
		return "pitch down"
	case PitchUp:
		return "pitch up"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

func (d Direction) role() Role {
	if d == PitchDown || d == PitchUp {
		return Pitch
	}
	return Yaw
}

func (d Direction) sign() float32 {
	if d == YawLeft || d == PitchDown {
		return -1
	}
	return 1
}

// ViewConfig controls whole-cube reorientation.
type ViewConfig struct {
	Step   float32 // degrees per frame
	Frames int     // frames per nudge

	// Threshold is how far pitch may move from its origin before yaw and
	// roll trade physical axes.
	Threshold float32
}

// DefaultViewConfig turns the cube 10 degrees per nudge over 5 frames.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{Step: 2, Frames: 5, Threshold: 45}
}

type nudge struct {
	role    Role
	delta   float32
	frames  int
	started bool
}

// View holds the whole-cube orientation: one cumulative angle per physical
// axis and the mapping of the three roles onto those axes.
//
// Pitch always drives X. Yaw starts on Y and roll on Z. When a pitch nudge
// starts with pitch more than Threshold degrees away from its origin, the
// cube's upright axis has changed, so yaw and roll swap axes and the origin
// moves 90 degrees in the direction of travel. The check runs once per
// nudge, before its first frame, so a nudge that crosses the threshold only
// swaps roles when the next pitch nudge begins.
//
// Angles are never wrapped. A view never changes cube vertices or the grid.
type View struct {
	cfg ViewConfig

	angles [3]float32 // degrees, indexed by math.Axis
	roles  [3]math.Axis
	origin float32

	pending []nudge
}

// NewView creates an upright view.
func NewView(cfg ViewConfig) *View {
	return &View{
		cfg:   cfg,
		roles: [3]math.Axis{Pitch: math.AxisX, Yaw: math.AxisY, Roll: math.AxisZ},
	}
}

// Nudge schedules one view rotation of Frames frames.
func (v *View) Nudge(dir Direction) {
	v.pending = append(v.pending, nudge{
		role:   dir.role(),
		delta:  dir.sign() * v.cfg.Step,
		frames: v.cfg.Frames,
	})
}

// Busy reports whether a nudge is still playing.
func (v *View) Busy() bool {
	return len(v.pending) > 0
}

// Update plays one frame of the oldest pending nudge and reports whether the
// orientation changed.
func (v *View) Update() bool {
	if len(v.pending) == 0 {
		return false
	}
	n := &v.pending[0]
	if !n.started {
		n.started = true
		if n.role == Pitch {
			v.checkRoles()
		}
	}
	v.Rotate(n.role, n.delta)
	n.frames--
	if n.frames <= 0 {
		v.pending = v.pending[1:]
	}
	return true
}

// Rotate turns the role's current axis by deg degrees. It never changes
// the role mapping.
func (v *View) Rotate(role Role, deg float32) {
	v.angles[v.roles[role]] += deg
}

func (v *View) checkRoles() {
	off := v.angles[v.roles[Pitch]] - v.origin
	if math32.Abs(off) <= v.cfg.Threshold {
		return
	}
	v.roles[Yaw], v.roles[Roll] = v.roles[Roll], v.roles[Yaw]
	if off > 0 {
		v.origin += 90
	} else {
		v.origin -= 90
	}
	logger.Debug("view roles swapped",
		zap.Stringer("yaw", v.roles[Yaw]),
		zap.Stringer("roll", v.roles[Roll]),
		zap.Float32("origin", v.origin))
}

// Angles returns the cumulative rotation about X, Y and Z in degrees.
func (v *View) Angles() [3]float32 {
	return v.angles
}

// RoleAxis returns the physical axis a role currently drives.
func (v *View) RoleAxis(r Role) math.Axis {
	return v.roles[r]
}

// Origin returns the pitch angle the role mapping is relative to.
func (v *View) Origin() float32 {
	return v.origin
}

// Matrix returns the model rotation for the current orientation.
func (v *View) Matrix() math.Mat4 {
	return math.RotateX(-math.Radians(v.angles[math.AxisX])).
		Mul(math.RotateY(-math.Radians(v.angles[math.AxisY]))).
		Mul(math.RotateZ(-math.Radians(v.angles[math.AxisZ])))
}

// Reset returns to the upright view and drops pending nudges.
func (v *View) Reset() {
	*v = *NewView(v.cfg)
}
