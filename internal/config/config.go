// Package config handles configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/rubik/internal/anim"
	"github.com/Faultbox/rubik/internal/cube"
	"github.com/Faultbox/rubik/internal/engine/debug"
	"github.com/Faultbox/rubik/internal/logger"
	"github.com/Faultbox/rubik/pkg/math"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Cube     CubeConfig     `yaml:"cube"`
	Palette  PaletteConfig  `yaml:"palette"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	Samples    int     `yaml:"samples"`  // multisampling, 0 disables
	FOV        float32 `yaml:"fov"`      // vertical, degrees
	Distance   float32 `yaml:"distance"` // camera distance from the cube centre
	ShowAxes   bool    `yaml:"show_axes"`

	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// CubeConfig holds cube geometry and animation settings. Zero geometry
// values fall back to the defaults of the selected variant.
type CubeConfig struct {
	Variant string     `yaml:"variant"` // flat or rounded
	Width   float32    `yaml:"cell_width"`
	Radius  float32    `yaml:"radius"`
	Pitch   float32    `yaml:"pitch"`
	Origin  [3]float32 `yaml:"origin"`

	TurnStep float32 `yaml:"turn_step"` // degrees per frame

	ScrambleStep   float32       `yaml:"scramble_step"`
	ScrambleMoves  int           `yaml:"scramble_moves"`
	ScrambleDelay  time.Duration `yaml:"scramble_delay"`
	ScramblePrimes bool          `yaml:"scramble_primes"`
	Seed           uint64        `yaml:"seed"` // 0 picks a seed at startup

	ViewStep   float32 `yaml:"view_step"`
	ViewFrames int     `yaml:"view_frames"`
}

// PaletteConfig maps face names, "interior" and "fillet" to RGBA colours.
type PaletteConfig map[string][4]float32

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	scramble := anim.DefaultScrambleConfig()
	view := anim.DefaultViewConfig()
	return &Config{
		Graphics: GraphicsConfig{
			Width:    800,
			Height:   800,
			VSync:    true,
			Samples:  4,
			FOV:      90,
			Distance: 4.5,
			ShowAxes: true,

			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Cube: CubeConfig{
			Variant:       string(cube.VariantFlat),
			TurnStep:      5,
			ScrambleStep:  scramble.Step,
			ScrambleMoves: scramble.Moves,
			ScrambleDelay: scramble.Pause,
			ViewStep:      view.Step,
			ViewFrames:    view.Frames,
		},
		Palette: DefaultPalette(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPalette returns the standard colours by name.
func DefaultPalette() PaletteConfig {
	p := cube.DefaultPalette()
	out := PaletteConfig{
		"interior": p.Interior,
		"fillet":   p.Fillet,
	}
	for f, c := range p.Faces {
		out[f.String()] = c
	}
	return out
}

// Geometry returns the cube geometry, filling unset values from the
// variant's defaults.
func (c CubeConfig) Geometry() cube.GeometryConfig {
	geo := cube.DefaultFlatGeometry()
	if cube.Variant(c.Variant) == cube.VariantRounded {
		geo = cube.DefaultRoundedGeometry()
	}
	if c.Width > 0 {
		geo.Width = c.Width
	}
	if c.Radius > 0 {
		geo.Radius = c.Radius
	}
	if c.Pitch > 0 {
		geo.Pitch = c.Pitch
	}
	if c.Origin != [3]float32{} {
		geo.Origin = math.V3(c.Origin)
	}
	return geo
}

// Scramble returns the scramble settings.
func (c CubeConfig) Scramble() anim.ScrambleConfig {
	return anim.ScrambleConfig{
		Moves:  c.ScrambleMoves,
		Step:   c.ScrambleStep,
		Pause:  c.ScrambleDelay,
		Primes: c.ScramblePrimes,
	}
}

// View returns the whole-cube rotation settings.
func (c CubeConfig) View() anim.ViewConfig {
	v := anim.DefaultViewConfig()
	v.Step = c.ViewStep
	v.Frames = c.ViewFrames
	return v
}

// Palette converts the named colours to a cube palette.
func (p PaletteConfig) Palette() (cube.Palette, error) {
	return cube.PaletteFromNames(p)
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.Samples < 0 || c.Graphics.Samples > 16 {
		return fmt.Errorf("graphics: samples %d out of range 0..16", c.Graphics.Samples)
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		return fmt.Errorf("graphics: fov %v out of range (0, 180)", c.Graphics.FOV)
	}
	if _, err := debug.ParseFormat(c.Graphics.ScreenshotFormat); err != nil {
		return fmt.Errorf("graphics: %w", err)
	}

	switch cube.Variant(c.Cube.Variant) {
	case cube.VariantFlat, cube.VariantRounded:
	default:
		return fmt.Errorf("cube: unknown variant %q", c.Cube.Variant)
	}
	if _, err := anim.StepCount(c.Cube.TurnStep); err != nil {
		return fmt.Errorf("cube: turn_step: %w", err)
	}
	if _, err := anim.StepCount(c.Cube.ScrambleStep); err != nil {
		return fmt.Errorf("cube: scramble_step: %w", err)
	}
	if c.Cube.ScrambleMoves < 0 {
		return fmt.Errorf("cube: scramble_moves %d is negative", c.Cube.ScrambleMoves)
	}
	if c.Cube.ViewFrames <= 0 {
		return fmt.Errorf("cube: view_frames %d must be positive", c.Cube.ViewFrames)
	}

	if _, err := c.Palette.Palette(); err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}
	return nil
}
