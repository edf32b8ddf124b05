// Package renderer draws the cube and its debug overlays with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/rubik/internal/cube"
	"github.com/Faultbox/rubik/internal/engine/camera"
	"github.com/Faultbox/rubik/internal/engine/shader"
	"github.com/Faultbox/rubik/internal/logger"
	"github.com/Faultbox/rubik/pkg/math"
)

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uMVP;

out vec4 vColor;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const fragmentShaderSource = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	FOV        float32 // vertical, degrees
	Distance   float32 // camera distance from the origin
	Background [4]float32
}

// DefaultConfig returns a 90 degree camera 4.5 units from the cube.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		FOV:        90,
		Distance:   4.5,
		Background: [4]float32{0.1, 0.1, 0.15, 1},
	}
}

// mesh is a dynamic vertex buffer of cube.Vertex.
type mesh struct {
	vao, vbo uint32
	capacity int // vertices
}

var vertexStride = int32(unsafe.Sizeof(cube.Vertex{}))

func newMesh() mesh {
	var m mesh
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(cube.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, vertexStride, unsafe.Offsetof(cube.Vertex{}.Color))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// upload copies vertices into the buffer, growing it when needed.
func (m *mesh) upload(vertices []cube.Vertex) {
	size := len(vertices) * int(vertexStride)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > m.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
		m.capacity = len(vertices)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&vertices[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (m *mesh) draw(mode uint32, vertices []cube.Vertex) {
	if len(vertices) == 0 {
		return
	}
	m.upload(vertices)
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(mode, 0, int32(len(vertices)))
	gl.BindVertexArray(0)
}

func (m *mesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}

// Renderer owns the GL state needed to draw the cube: the shader program,
// its MVP uniform and one buffer each for triangles and lines.
type Renderer struct {
	config Config
	camera *camera.Camera

	program *shader.Program
	mvpLoc  int32

	triangles mesh
	lines     mesh
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg, camera: newCamera(cfg)}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.New(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.mvpLoc = r.program.Uniform("uMVP")
	if r.mvpLoc < 0 {
		r.program.Delete()
		return nil, fmt.Errorf("shader program has no uMVP uniform")
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.triangles = newMesh()
	r.lines = newMesh()
	return r, nil
}

// Close frees all GL objects.
func (r *Renderer) Close() {
	logger.Debug("closing renderer")
	r.triangles.delete()
	r.lines.delete()
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	r.camera.SetViewport(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
}

// End finishes the frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// DrawCube uploads the full cubelet vertex array and draws it as triangles.
func (r *Renderer) DrawCube(vertices []cube.Vertex, model math.Mat4) {
	r.setMVP(model)
	r.triangles.draw(gl.TRIANGLES, vertices)
}

// DrawLines draws vertex pairs as line segments.
func (r *Renderer) DrawLines(vertices []cube.Vertex, model math.Mat4) {
	r.setMVP(model)
	r.lines.draw(gl.LINES, vertices)
}

func (r *Renderer) setMVP(model math.Mat4) {
	mvp := r.ViewProjection().Mul(model)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, mvp.Ptr())
}

// Camera returns the viewer camera.
func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// ViewProjection returns projection · view for the current window size.
func (r *Renderer) ViewProjection() math.Mat4 {
	return r.camera.ViewProjection()
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// ViewProjection returns the perspective projection times the camera
// translation for cfg.
func ViewProjection(cfg Config) math.Mat4 {
	return newCamera(cfg).ViewProjection()
}

func newCamera(cfg Config) *camera.Camera {
	c := camera.New(cfg.FOV, cfg.Distance)
	c.SetViewport(cfg.Width, cfg.Height)
	return c
}
