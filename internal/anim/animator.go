// Package anim drives layer turns and whole-cube view rotation one frame at a
// time from the render loop.
package anim

import (
	"errors"
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/rubik/internal/cube"
	"github.com/Faultbox/rubik/internal/logger"
	"github.com/Faultbox/rubik/pkg/math"
)

// ErrInvalidStep is returned for a step angle of zero, or one larger than a
// quarter turn.
var ErrInvalidStep = errors.New("invalid step angle")

// QuarterDegrees is the angle of one layer turn.
const QuarterDegrees = 90

// StepCount returns the number of frames a quarter turn takes at stepDeg
// degrees per frame: round(90/|stepDeg|).
func StepCount(stepDeg float32) (int, error) {
	a := math32.Abs(stepDeg)
	if math32.IsNaN(a) || a == 0 || a > QuarterDegrees {
		return 0, fmt.Errorf("%w: %v degrees", ErrInvalidStep, stepDeg)
	}
	return int(QuarterDegrees/a + 0.5), nil
}

// turn is the layer turn in progress.
type turn struct {
	rot   cube.Rotation
	steps int
	done  int

	// inc rotates by one frame's share of the quarter turn.
	inc math.Mat4

	// start holds the moved cubelets' vertices as they were before the turn.
	start [cube.Size * cube.Size][]cube.Vertex
}

type job struct {
	move  cube.Move
	step  float32
	pause time.Duration
}

// Animator turns layers of a cube over several frames. Moves are queued and
// played one after another; the grid is updated as each turn starts, so the
// model is always consistent with the turn's final position.
type Animator struct {
	cube *cube.Cube

	queue  []job
	active *turn

	// wait is the pause left before the next queued move starts.
	wait time.Duration
}

// NewAnimator creates an animator for c.
func NewAnimator(c *cube.Cube) *Animator {
	return &Animator{cube: c}
}

// Cube returns the animated cube.
func (a *Animator) Cube() *cube.Cube {
	return a.cube
}

// Busy reports whether a turn is playing or queued.
func (a *Animator) Busy() bool {
	return a.active != nil || len(a.queue) > 0
}

// Pending returns the number of queued moves, not counting the active one.
func (a *Animator) Pending() int {
	return len(a.queue)
}

// Active returns the turn in progress.
func (a *Animator) Active() (cube.Rotation, bool) {
	if a.active == nil {
		return cube.Rotation{}, false
	}
	return a.active.rot, true
}

// Enqueue schedules move at stepDeg degrees per frame, followed by pause
// before the next queued move starts.
func (a *Animator) Enqueue(move cube.Move, stepDeg float32, pause time.Duration) error {
	if _, err := StepCount(stepDeg); err != nil {
		return err
	}
	a.queue = append(a.queue, job{move: move, step: stepDeg, pause: pause})
	return nil
}

// Start begins move immediately, settling any turn already in progress.
// The grid is updated before the first frame.
func (a *Animator) Start(move cube.Move, stepDeg float32) (cube.Rotation, error) {
	steps, err := StepCount(stepDeg)
	if err != nil {
		return cube.Rotation{}, err
	}
	if a.active != nil {
		a.settle()
	}

	rot := a.cube.Apply(move)
	t := &turn{
		rot:   rot,
		steps: steps,
		inc:   math.Rotate(rot.Axis, math.Radians(float32(rot.Quarters)*QuarterDegrees/float32(steps))),
	}
	for i, idx := range rot.Cubelets {
		t.start[i] = append([]cube.Vertex(nil), a.cube.Cubelets[idx].Vertices...)
	}
	a.active = t

	logger.Debug("turn started",
		zap.Stringer("move", move),
		zap.Stringer("axis", rot.Axis),
		zap.Int("steps", steps),
		zap.Ints("cubelets", rot.Cubelets[:]))
	return rot, nil
}

// Step advances the active turn by one frame and reports whether it has
// finished. On the last frame the cubelets are placed at the exact quarter
// turn of their starting position, so no rounding error carries over.
func (a *Animator) Step() bool {
	t := a.active
	if t == nil {
		return true
	}

	t.done++
	if t.done >= t.steps {
		a.settle()
		return true
	}
	for _, idx := range t.rot.Cubelets {
		a.cube.Cubelets[idx].Transform(t.inc)
	}
	return false
}

// settle finishes the active turn without further frames.
func (a *Animator) settle() {
	t := a.active
	exact := t.rot.Matrix()
	for i, idx := range t.rot.Cubelets {
		verts := a.cube.Cubelets[idx].Vertices
		for j, v := range t.start[i] {
			verts[j].Position = exact.TransformPoint(v.Position)
		}
	}
	a.active = nil
	logger.Debug("turn settled", zap.Stringer("move", t.rot.Move), zap.Int("frames", t.done))
}

// Run plays move to completion, calling redraw after every frame.
func (a *Animator) Run(move cube.Move, stepDeg float32, redraw func()) error {
	if _, err := a.Start(move, stepDeg); err != nil {
		return err
	}
	for {
		done := a.Step()
		if redraw != nil {
			redraw()
		}
		if done {
			return nil
		}
	}
}

// Update is called once per rendered frame with the time since the previous
// frame. It advances the active turn, or starts the next queued move once the
// pause after the previous one has elapsed. It reports whether any vertex
// moved.
func (a *Animator) Update(dt time.Duration) bool {
	if a.active != nil {
		a.Step()
		return true
	}

	if a.wait > 0 {
		a.wait -= dt
		if a.wait > 0 {
			return false
		}
	}
	if len(a.queue) == 0 {
		a.wait = 0
		return false
	}

	next := a.queue[0]
	a.queue = a.queue[1:]
	if _, err := a.Start(next.move, next.step); err != nil {
		// Steps are validated by Enqueue.
		logger.Error("queued turn rejected", zap.Stringer("move", next.move), zap.Error(err))
		return false
	}
	a.wait = next.pause
	a.Step()
	return true
}

// Cancel drops every queued move and finishes the active turn at once.
// It returns the dropped moves in the order they were queued.
func (a *Animator) Cancel() []cube.Move {
	var dropped []cube.Move
	for _, j := range a.queue {
		dropped = append(dropped, j.move)
	}
	a.queue = nil
	a.wait = 0
	if a.active != nil {
		a.settle()
	}
	if len(dropped) > 0 {
		logger.Info("queued turns cancelled", zap.Int("dropped", len(dropped)))
	}
	return dropped
}
