// Package game runs the window, input and render loop around a cube session.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/rubik/internal/config"
	"github.com/Faultbox/rubik/internal/controls"
	"github.com/Faultbox/rubik/internal/cube"
	"github.com/Faultbox/rubik/internal/engine/debug"
	"github.com/Faultbox/rubik/internal/engine/input"
	"github.com/Faultbox/rubik/internal/engine/renderer"
	"github.com/Faultbox/rubik/internal/engine/window"
	"github.com/Faultbox/rubik/internal/logger"
	"github.com/Faultbox/rubik/internal/session"
)

// Title is the window title.
const Title = "Rubik"

// Game is the interactive cube viewer.
type Game struct {
	config  *config.Config
	running bool
	debug   bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	session     *session.Session
	screenshots *debug.Screenshots
	axes        []cube.Vertex
}

// New opens the window and builds the cube.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	s, err := session.New(cfg)
	if err != nil {
		return nil, err
	}

	format, err := debug.ParseFormat(cfg.Graphics.ScreenshotFormat)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:      cfg,
		debug:       logger.ParseLevel(cfg.Logging.Level) == zap.DebugLevel,
		session:     s,
		screenshots: debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "rubik"),
	}
	g.screenshots.SetFormat(format)
	if cfg.Graphics.ShowAxes {
		g.axes = debug.AxisGizmo(2.5)
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := g.window.DrawableSize()
	rc := renderer.DefaultConfig(w, h)
	rc.FOV = cfg.Graphics.FOV
	rc.Distance = cfg.Graphics.Distance
	g.renderer, err = renderer.New(rc)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	for _, b := range controls.Bindings() {
		logger.Debug("key binding", zap.String("keys", b.Keys), zap.String("action", b.Help))
	}
	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop and returns when the window is closed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}

		screenshot := false
		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				// The drawable can be larger than the window on high-DPI displays.
				g.renderer.Resize(g.window.DrawableSize())
			case input.EventKeyDown:
				cmd, ok := controls.Lookup(event.Key, event.Shift)
				if !ok {
					continue
				}
				logger.Debug("command", zap.Stringer("cmd", cmd))
				switch cmd.Kind {
				case controls.KindQuit:
					g.running = false
				case controls.KindScreenshot:
					screenshot = true
				case controls.KindZoom:
					g.renderer.Camera().HandleZoom(cmd.Zoom)
				default:
					if err := g.session.Handle(cmd); err != nil {
						logger.Warn("command failed", zap.Stringer("cmd", cmd), zap.Error(err))
					}
				}
			}
		}
		if !g.running {
			break
		}

		g.session.Update(dt)
		g.updateTitle()
		g.render()

		if screenshot {
			g.saveScreenshot()
		}

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) render() {
	g.renderer.Begin()
	defer g.renderer.End()

	model := g.session.View().Matrix()
	g.renderer.DrawCube(g.session.Cube().Vertices(), model)

	// The gizmo turns with the cube so the axes match the turn table.
	if len(g.axes) > 0 {
		g.renderer.DrawLines(g.axes, model)
	}
	if g.debug {
		if rot, ok := g.session.Animator().Active(); ok {
			g.renderer.DrawLines(debug.LayerOutline(g.session.Cube(), rot, debug.DefaultOutlinePadding), model)
		}
	}
}

func (g *Game) updateTitle() {
	solved := g.session.Solved()
	if g.window.SetSolved(solved) && solved {
		logger.Info("cube solved")
	}
}

// saveScreenshot writes the frame just drawn, before the buffers swap.
func (g *Game) saveScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.screenshots.SavePixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
