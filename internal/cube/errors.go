package cube

import "errors"

var (
	// ErrMissingColorData is returned when a colour scheme does not name a
	// colour for every face a cubelet needs.
	ErrMissingColorData = errors.New("missing color data")

	// ErrInvalidGeometry is returned for non-positive sizes or an off-centre cube.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnknownMove is returned when a move token is not in the turn alphabet.
	ErrUnknownMove = errors.New("unknown move")
)
