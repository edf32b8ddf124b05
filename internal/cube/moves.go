package cube

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Faultbox/rubik/pkg/math"
)

// Turn names one of the nine layer turns.
type Turn int

const (
	TurnFront Turn = iota
	TurnBack
	TurnTop
	TurnDown
	TurnRight
	TurnLeft
	TurnMiddle
	TurnEquator
	TurnStanding
)

// TurnSpec describes how a turn selects its layer and how the layer moves.
type TurnSpec struct {
	Key  rune
	Name string

	// Axis is the world axis the layer's vertices rotate about.
	Axis math.Axis

	// Sign is the direction of the vertex rotation: +1 counter-clockwise
	// about Axis, -1 clockwise.
	Sign int

	// GridAxes, Align and Layer pick the slice passed to Grid.RotateLayer.
	GridAxes AxisPair
	Align    int
	Layer    int
}

// Turns is the turn alphabet in key order.
var Turns = [...]TurnSpec{
	TurnFront:    {Key: 'f', Name: "front", Axis: math.AxisZ, Sign: -1, GridAxes: AxisPair{0, 1}, Align: 0, Layer: 0},
	TurnBack:     {Key: 'b', Name: "back", Axis: math.AxisZ, Sign: +1, GridAxes: AxisPair{0, 1}, Align: 2, Layer: 0},
	TurnTop:      {Key: 't', Name: "top", Axis: math.AxisY, Sign: -1, GridAxes: AxisPair{0, 1}, Align: 3, Layer: 0},
	TurnDown:     {Key: 'd', Name: "down", Axis: math.AxisY, Sign: +1, GridAxes: AxisPair{0, 1}, Align: 1, Layer: 0},
	TurnRight:    {Key: 'r', Name: "right", Axis: math.AxisX, Sign: -1, GridAxes: AxisPair{0, 2}, Align: 1, Layer: 0},
	TurnLeft:     {Key: 'l', Name: "left", Axis: math.AxisX, Sign: +1, GridAxes: AxisPair{0, 2}, Align: 3, Layer: 0},
	TurnMiddle:   {Key: 'm', Name: "middle", Axis: math.AxisX, Sign: +1, GridAxes: AxisPair{0, 2}, Align: 3, Layer: 1},
	TurnEquator:  {Key: 'e', Name: "equator", Axis: math.AxisY, Sign: +1, GridAxes: AxisPair{0, 1}, Align: 1, Layer: 1},
	TurnStanding: {Key: 's', Name: "standing", Axis: math.AxisZ, Sign: -1, GridAxes: AxisPair{0, 1}, Align: 0, Layer: 1},
}

// Spec returns the turn's description.
func (t Turn) Spec() TurnSpec {
	return Turns[t]
}

func (t Turn) String() string {
	if t < 0 || int(t) >= len(Turns) {
		return fmt.Sprintf("turn(%d)", int(t))
	}
	return Turns[t].Name
}

// TurnForKey returns the turn bound to a letter key.
func TurnForKey(key rune) (Turn, bool) {
	key = unicode.ToLower(key)
	for i, spec := range Turns {
		if spec.Key == key {
			return Turn(i), true
		}
	}
	return 0, false
}

// Move is a quarter turn of one layer; Prime reverses its direction.
type Move struct {
	Turn  Turn
	Prime bool
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Turn: m.Turn, Prime: !m.Prime}
}

// Quarters returns the signed number of counter-clockwise quarter turns the
// layer makes about the turn's axis: +1 or -1.
func (m Move) Quarters() int {
	q := m.Turn.Spec().Sign
	if m.Prime {
		q = -q
	}
	return q
}

// String returns the move as an upper-case key, with ' for prime moves.
func (m Move) String() string {
	s := strings.ToUpper(string(m.Turn.Spec().Key))
	if m.Prime {
		s += "'"
	}
	return s
}

// ParseMove parses a single move token such as "f", "F" or "r'".
func ParseMove(token string) (Move, error) {
	tok := strings.TrimSpace(token)
	prime := strings.HasSuffix(tok, "'")
	tok = strings.TrimSuffix(tok, "'")
	runes := []rune(tok)
	if len(runes) != 1 {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, token)
	}
	t, ok := TurnForKey(runes[0])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, token)
	}
	return Move{Turn: t, Prime: prime}, nil
}

// ParseSequence parses whitespace- or comma-separated move tokens.
func ParseSequence(s string) ([]Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSequence joins moves with spaces.
func FormatSequence(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// InverseSequence returns the moves that undo seq: each move inverted, in
// reverse order.
func InverseSequence(seq []Move) []Move {
	out := make([]Move, len(seq))
	for i, m := range seq {
		out[len(seq)-1-i] = m.Inverse()
	}
	return out
}
