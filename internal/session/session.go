// Package session ties a cube to its animator, view and scrambler and applies
// user commands to them. It has no window or GL dependencies.
package session

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/rubik/internal/anim"
	"github.com/Faultbox/rubik/internal/config"
	"github.com/Faultbox/rubik/internal/controls"
	"github.com/Faultbox/rubik/internal/cube"
	"github.com/Faultbox/rubik/internal/logger"
)

// Session is one interactive cube.
type Session struct {
	cube      *cube.Cube
	animator  *anim.Animator
	view      *anim.View
	scrambler *anim.Scrambler

	turnStep float32

	// history is the net sequence of moves applied or queued, oldest first.
	// Reversing it in order returns the cube to its start.
	history []cube.Move
}

// New builds the cube described by cfg. A seed of 0 is replaced by one
// derived from the clock and logged so the scramble can be replayed.
func New(cfg *config.Config) (*Session, error) {
	palette, err := cfg.Palette.Palette()
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	c, err := cube.Build(cfg.Cube.Geometry(), palette)
	if err != nil {
		return nil, fmt.Errorf("building cube: %w", err)
	}
	if _, err := anim.StepCount(cfg.Cube.TurnStep); err != nil {
		return nil, fmt.Errorf("turn step: %w", err)
	}

	seed := cfg.Cube.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Session{
		cube:      c,
		animator:  anim.NewAnimator(c),
		view:      anim.NewView(cfg.Cube.View()),
		scrambler: anim.NewScrambler(cfg.Cube.Scramble(), seed),
		turnStep:  cfg.Cube.TurnStep,
	}
	logger.Named("session").Info("cube built",
		zap.String("variant", cfg.Cube.Variant),
		zap.Int("vertices", len(c.Vertices())),
		zap.Uint64("seed", s.scrambler.Seed()))
	return s, nil
}

// Cube returns the cube.
func (s *Session) Cube() *cube.Cube {
	return s.cube
}

// View returns the whole-cube orientation.
func (s *Session) View() *anim.View {
	return s.view
}

// Animator returns the turn animator.
func (s *Session) Animator() *anim.Animator {
	return s.animator
}

// History returns the net sequence of moves applied or queued, oldest first.
// A move directly followed by its inverse cancels out.
func (s *Session) History() []cube.Move {
	return append([]cube.Move(nil), s.history...)
}

// Handle applies one command. Zoom, screenshot and quit commands belong to
// the window and are ignored here.
func (s *Session) Handle(cmd controls.Command) error {
	switch cmd.Kind {
	case controls.KindTurn:
		return s.Turn(cmd.Move)
	case controls.KindView:
		s.view.Nudge(cmd.View)
	case controls.KindScramble:
		return s.Scramble()
	case controls.KindCancel:
		s.Cancel()
	case controls.KindUndo:
		return s.Undo()
	case controls.KindReset:
		s.view.Reset()
	}
	return nil
}

// Turn queues one move at the normal turn speed.
func (s *Session) Turn(m cube.Move) error {
	if err := s.animator.Enqueue(m, s.turnStep, 0); err != nil {
		return err
	}
	s.push(m)
	return nil
}

// Scramble queues a random scramble.
func (s *Session) Scramble() error {
	seq, err := s.scrambler.Scramble(s.animator)
	if err != nil {
		return err
	}
	for _, m := range seq {
		s.push(m)
	}
	return nil
}

// Cancel drops queued moves and finishes the current one. The history keeps
// only what was applied to the grid.
func (s *Session) Cancel() {
	dropped := s.animator.Cancel()
	for i := len(dropped) - 1; i >= 0; i-- {
		s.push(dropped[i].Inverse())
	}
}

// Undo finishes any turn in progress and queues the inverse of the whole
// history at scramble speed.
func (s *Session) Undo() error {
	s.Cancel()
	inv := cube.InverseSequence(s.history)
	step := s.scrambler.Config().Step
	for _, m := range inv {
		if err := s.animator.Enqueue(m, step, 0); err != nil {
			return err
		}
		s.push(m)
	}
	logger.Named("session").Info("undo queued", zap.Int("moves", len(inv)))
	return nil
}

// push appends m to the history, or drops the last entry when m reverses it.
func (s *Session) push(m cube.Move) {
	if n := len(s.history); n > 0 && s.history[n-1] == m.Inverse() {
		s.history = s.history[:n-1]
		return
	}
	s.history = append(s.history, m)
}

// Update advances the view and the animator by one frame and reports
// whether anything moved.
func (s *Session) Update(dt time.Duration) bool {
	viewChanged := s.view.Update()
	turned := s.animator.Update(dt)
	return viewChanged || turned
}

// Solved reports whether every cubelet is back in its starting cell.
func (s *Session) Solved() bool {
	return !s.animator.Busy() && s.cube.Grid == cube.NewGrid()
}
