package glbackend

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"rectangle/internal/graphics"
	"rectangle/internal/input"
	"rectangle/internal/shape"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

const vertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;
uniform mat4 uTransform;
void main() {
	gl_Position = uTransform * vec4(aPos, 1.0);
}
` + "\x00"

const fragmentShader = `#version 330 core
uniform vec4 uColor;
out vec4 FragColor;
void main() {
	FragColor = uColor;
}
` + "\x00"

// Config describes the window to open.
type Config struct {
	Width, Height int
	Title         string
	ShapeColor    graphics.Color
}

// Backend owns the GLFW window and the GL objects for one mesh.
type Backend struct {
	window  *glfw.Window
	handler func(input.Event)
	color   graphics.Color

	program      uint32
	transformLoc int32
	colorLoc     int32
	vao, vbo     uint32
	ebo          uint32
	indexCount   int32
}

// Open initialises GLFW, creates the window with an OpenGL 3.3 core context and loads GL functions.
// Errors wrap graphics.ErrWindowSystem, graphics.ErrWindowCreate or graphics.ErrLoader.
func Open(cfg Config) (*Backend, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", graphics.ErrWindowSystem, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", graphics.ErrWindowCreate, err)
	}
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", graphics.ErrLoader, err)
	}

	b := &Backend{window: w, color: cfg.ShapeColor}
	w.SetKeyCallback(b.onKey)
	return b, nil
}

func (b *Backend) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if b.handler == nil {
		return
	}
	b.handler(input.Event{Key: mapKey(key), Action: mapAction(action)})
}

func mapKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyRight:
		return input.KeyRight
	case glfw.KeyUp:
		return input.KeyUp
	case glfw.KeyDown:
		return input.KeyDown
	}
	return input.KeyUnknown
}

func mapAction(a glfw.Action) input.Action {
	switch a {
	case glfw.Press:
		return input.Press
	case glfw.Repeat:
		return input.Repeat
	}
	return input.Release
}

// Upload builds the shader program and copies mesh into a VAO with one vertex buffer and one
// index buffer. Attribute 0 is three tightly packed floats.
func (b *Backend) Upload(mesh shape.Mesh) error {
	prog, err := newProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	b.program = prog
	b.transformLoc = gl.GetUniformLocation(prog, gl.Str("uTransform\x00"))
	b.colorLoc = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, shape.FloatsPerVertex, gl.FLOAT, false, shape.FloatsPerVertex*4, 0)
	gl.EnableVertexAttribArray(0)

	// The element buffer binding is part of VAO state, so only the VAO is unbound.
	gl.BindVertexArray(0)
	b.indexCount = int32(len(mesh.Indices))
	return nil
}

func (b *Backend) SetKeyHandler(h func(input.Event)) {
	b.handler = h
}

func (b *Backend) ShouldClose() bool {
	return b.window.ShouldClose()
}

func (b *Backend) Clear(c graphics.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (b *Backend) Draw(transform mgl32.Mat4) {
	gl.UseProgram(b.program)
	gl.UniformMatrix4fv(b.transformLoc, 1, false, &transform[0])
	gl.Uniform4f(b.colorLoc, b.color.R, b.color.G, b.color.B, b.color.A)
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (b *Backend) Present() {
	b.window.SwapBuffers()
}

func (b *Backend) PollEvents() {
	glfw.PollEvents()
}

func (b *Backend) SetTitle(title string) {
	b.window.SetTitle(title)
}

// Close deletes the GL objects, destroys the window and terminates GLFW.
func (b *Backend) Close() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
	}
	b.window.Destroy()
	glfw.Terminate()
}

func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prog, n, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("%w: link: %s", graphics.ErrShader, strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func compileShader(src string, kind uint32) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(sh, n, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%w: compile: %s", graphics.ErrShader, strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

var _ graphics.Backend = (*Backend)(nil)
