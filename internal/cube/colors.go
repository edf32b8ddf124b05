package cube

import (
	"fmt"
	"strings"
)

// Color is an RGBA colour with components in [0, 1].
type Color [4]float32

// Face identifies one side of a cubelet. The order matches the order in which
// the geometry builder emits triangles.
type Face int

const (
	Front Face = iota
	Right
	Back
	Left
	Top
	Down
)

// FaceCount is the number of faces of a cubelet.
const FaceCount = 6

var faceNames = [FaceCount]string{"front", "right", "back", "left", "top", "down"}

// Faces lists every face in builder order.
var Faces = [FaceCount]Face{Front, Right, Back, Left, Top, Down}

func (f Face) String() string {
	if f < 0 || int(f) >= FaceCount {
		return fmt.Sprintf("face(%d)", int(f))
	}
	return faceNames[f]
}

// ParseFace parses a face name such as "front" or "Top".
func ParseFace(name string) (Face, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, fn := range faceNames {
		if fn == n {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("unknown face %q", name)
}

// Scheme assigns a colour to each face of one cubelet.
type Scheme map[Face]Color

// Check reports ErrMissingColorData for the first face without a colour.
func (s Scheme) Check() error {
	for _, f := range Faces {
		if _, ok := s[f]; !ok {
			return fmt.Errorf("%w: no color for %s face", ErrMissingColorData, f)
		}
	}
	return nil
}

// Palette holds the sticker colour of each outer face of the whole cube,
// plus the colour of hidden inner faces and of rounded fillet strips.
type Palette struct {
	Faces    map[Face]Color
	Interior Color
	Fillet   Color
}

// Standard sticker colours.
var (
	Red    = Color{1, 0, 0, 1}
	Blue   = Color{0, 0, 1, 1}
	Orange = Color{1, 0.5, 0, 1}
	Green  = Color{0, 1, 0, 1}
	White  = Color{1, 1, 1, 1}
	Yellow = Color{1, 1, 0, 1}
	Black  = Color{0, 0, 0, 1}
	Teal   = Color{0.2, 0.8, 0.8, 1}
)

// DefaultPalette returns the classic sticker layout.
func DefaultPalette() Palette {
	return Palette{
		Faces: map[Face]Color{
			Front: Red,
			Right: Blue,
			Back:  Orange,
			Left:  Green,
			Top:   White,
			Down:  Yellow,
		},
		Interior: Black,
		Fillet:   Teal,
	}
}

// PaletteFromNames builds a palette from name → colour pairs, as found in
// config files. Recognised names are the six face names plus "interior" and
// "fillet". Faces absent from the map stay absent so that the builder can
// report them.
func PaletteFromNames(colors map[string][4]float32) (Palette, error) {
	p := Palette{Faces: make(map[Face]Color, FaceCount)}
	var haveInterior bool
	for name, c := range colors {
		switch strings.ToLower(name) {
		case "interior":
			p.Interior = c
			haveInterior = true
		case "fillet":
			p.Fillet = c
		default:
			f, err := ParseFace(name)
			if err != nil {
				return Palette{}, err
			}
			p.Faces[f] = c
		}
	}
	if !haveInterior {
		return Palette{}, fmt.Errorf("%w: no interior color", ErrMissingColorData)
	}
	return p, nil
}

// SchemeFor returns the scheme of the cubelet created at index: faces on the
// outside of the cube take the palette colour, inward faces the interior
// colour. Outer faces the palette does not name are left out of the scheme.
func (p Palette) SchemeFor(index int) Scheme {
	x, y, z := index%3, (index/3)%3, index/9
	outer := map[Face]bool{
		Front: z == 0,
		Back:  z == 2,
		Right: x == 0,
		Left:  x == 2,
		Top:   y == 0,
		Down:  y == 2,
	}

	s := make(Scheme, FaceCount)
	for _, f := range Faces {
		if !outer[f] {
			s[f] = p.Interior
			continue
		}
		if c, ok := p.Faces[f]; ok {
			s[f] = c
		}
	}
	return s
}
