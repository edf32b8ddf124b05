package anim

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/rubik/internal/cube"
	"github.com/Faultbox/rubik/internal/logger"
)

// ScrambleConfig controls how a scramble is played.
type ScrambleConfig struct {
	Moves int
	Step  float32       // degrees per frame
	Pause time.Duration // between moves
	// Primes also draws inverse turns. Off, only the nine plain turns are used.
	Primes bool
}

// DefaultScrambleConfig returns a fast 70-move scramble.
func DefaultScrambleConfig() ScrambleConfig {
	return ScrambleConfig{
		Moves: 70,
		Step:  30,
		Pause: 10 * time.Millisecond,
	}
}

// Scrambler draws uniformly random turns. Callers keep track of what was
// played; the scrambler only owns the random stream.
type Scrambler struct {
	cfg  ScrambleConfig
	rng  *rand.Rand
	seed uint64
}

// NewScrambler creates a scrambler. The same seed always yields the same moves.
func NewScrambler(cfg ScrambleConfig, seed uint64) *Scrambler {
	return &Scrambler{
		cfg:  cfg,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Config returns the scramble settings.
func (s *Scrambler) Config() ScrambleConfig {
	return s.cfg
}

// Seed returns the seed the scrambler was created with.
func (s *Scrambler) Seed() uint64 {
	return s.seed
}

// Next draws one random move.
func (s *Scrambler) Next() cube.Move {
	m := cube.Move{Turn: cube.Turn(s.rng.IntN(len(cube.Turns)))}
	if s.cfg.Primes {
		m.Prime = s.rng.IntN(2) == 1
	}
	return m
}

// Sequence draws n random moves.
func (s *Scrambler) Sequence(n int) []cube.Move {
	seq := make([]cube.Move, n)
	for i := range seq {
		seq[i] = s.Next()
	}
	return seq
}

// Scramble queues a full scramble on a and returns the moves queued.
func (s *Scrambler) Scramble(a *Animator) ([]cube.Move, error) {
	if _, err := StepCount(s.cfg.Step); err != nil {
		return nil, err
	}
	seq := s.Sequence(s.cfg.Moves)
	for _, m := range seq {
		if err := a.Enqueue(m, s.cfg.Step, s.cfg.Pause); err != nil {
			return nil, err
		}
	}
	logger.Info("scramble queued",
		zap.Int("moves", len(seq)),
		zap.Uint64("seed", s.seed),
		zap.Float32("step", s.cfg.Step),
		zap.Duration("pause", s.cfg.Pause))
	logger.Debug("scramble sequence", zap.String("moves", cube.FormatSequence(seq)))
	return seq, nil
}
