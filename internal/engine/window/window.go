// Package window opens the SDL2 window the cube is drawn into and owns its
// OpenGL context.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/rubik/internal/logger"
)

// ErrInvalidSize is returned for a window with a non-positive dimension.
var ErrInvalidSize = errors.New("invalid window size")

// MaxSamples bounds the multisample count.
const MaxSamples = 16

func init() {
	// GL context is bound to the thread that created it.
	runtime.LockOSThread()
}

// Config describes the window.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	// Samples is the multisample count for cubelet edges. 0 disables it.
	Samples int
}

// Validate checks the size and sample count.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Samples < 0 || c.Samples > MaxSamples {
		return fmt.Errorf("samples %d out of range 0..%d", c.Samples, MaxSamples)
	}
	return nil
}

type glAttribute struct {
	name  string
	attr  sdl.GLattr
	value int
}

// glAttributes lists the context attributes to request. 4.1 core is the
// newest profile macOS offers; the cube needs a depth buffer for the hidden
// faces of each cubelet.
func glAttributes(cfg Config) []glAttribute {
	attrs := []glAttribute{
		{"major", sdl.GLattr(sdl.GL_CONTEXT_MAJOR_VERSION), 4},
		{"minor", sdl.GLattr(sdl.GL_CONTEXT_MINOR_VERSION), 1},
		{"profile", sdl.GLattr(sdl.GL_CONTEXT_PROFILE_MASK), sdl.GL_CONTEXT_PROFILE_CORE},
		{"double buffer", sdl.GLattr(sdl.GL_DOUBLEBUFFER), 1},
		{"depth", sdl.GLattr(sdl.GL_DEPTH_SIZE), 24},
	}
	if cfg.Samples > 0 {
		attrs = append(attrs,
			glAttribute{"multisample buffers", sdl.GLattr(sdl.GL_MULTISAMPLEBUFFERS), 1},
			glAttribute{"multisample samples", sdl.GLattr(sdl.GL_MULTISAMPLESAMPLES), cfg.Samples},
		)
	}
	return attrs
}

func windowFlags(cfg Config) uint32 {
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

func swapInterval(vsync bool) int {
	if vsync {
		return 1
	}
	return 0
}

// titleFor returns the window title for the cube's solved state.
func titleFor(base string, solved bool) string {
	if solved {
		return base + " - solved"
	}
	return base
}

// Window is the cube's SDL2 window and its GL context.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	solved    bool
}

// New opens a centred window with an OpenGL 4.1 core context.
func New(cfg Config) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}
	for _, a := range glAttributes(cfg) {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			logger.Warn("GL attribute rejected", zap.String("attr", a.name), zap.Int("value", a.value), zap.Error(err))
		}
	}

	sw, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height),
		windowFlags(cfg))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}
	ctx, err := sw.GLCreateContext()
	if err != nil {
		sw.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}
	w := &Window{config: cfg, sdlWindow: sw, glContext: ctx, solved: true}

	if err := sdl.GLSetSwapInterval(swapInterval(cfg.VSync)); err != nil {
		logger.Warn("vsync unavailable", zap.Bool("vsync", cfg.VSync), zap.Error(err))
	}

	width, height := w.DrawableSize()
	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("samples", cfg.Samples),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// Close destroys the context and the window and shuts SDL2 down.
func (w *Window) Close() {
	logger.Debug("closing window")
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// DrawableSize returns the framebuffer size in pixels, which is larger than
// the window size on high-DPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// SetSolved marks the title when the cube is solved. It reports whether the
// state changed.
func (w *Window) SetSolved(solved bool) bool {
	if solved == w.solved {
		return false
	}
	w.solved = solved
	w.sdlWindow.SetTitle(titleFor(w.config.Title, solved))
	return true
}
