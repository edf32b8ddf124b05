package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubik/internal/anim"
	"github.com/Faultbox/rubik/internal/config"
	"github.com/Faultbox/rubik/internal/cube"
)

func TestVerify(t *testing.T) {
	moves, err := cube.ParseSequence("f r' t b m e s d l")
	require.NoError(t, err)

	for _, variant := range []cube.Variant{cube.VariantFlat, cube.VariantRounded} {
		cfg := config.Default()
		cfg.Cube.Variant = string(variant)

		res, err := verify(cfg, moves, 7)
		require.NoError(t, err, variant)
		// 13 frames per quarter turn at 7 degrees, forwards and back.
		assert.Equal(t, 2*len(moves)*13, res.frames, variant)
		assert.Less(t, res.drift, float32(driftTolerance), variant)
		assert.True(t, res.restored, variant)
	}
}

func TestVerifyInvalidStep(t *testing.T) {
	_, err := verify(config.Default(), []cube.Move{{Turn: cube.TurnTop}}, 0)
	assert.ErrorIs(t, err, anim.ErrInvalidStep)
}

func TestFormatGrid(t *testing.T) {
	out := formatGrid(cube.NewGrid())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "depth 0", lines[0])
	assert.Equal(t, "  2  1  0", lines[1])
	assert.Equal(t, " 26 25 24", lines[11])
}

func TestFormatTurns(t *testing.T) {
	out := formatTurns()
	assert.Equal(t, len(cube.Turns)+1, strings.Count(out, "\n"))
	assert.Contains(t, out, "standing")
}
