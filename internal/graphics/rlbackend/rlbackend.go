//go:build raylib

package rlbackend

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"rectangle/internal/graphics"
	"rectangle/internal/input"
	"rectangle/internal/shape"
)

// Config describes the window to open.
type Config struct {
	Width, Height int
	Title         string
	ShapeColor    graphics.Color
}

// Backend draws the mesh with raylib's 2D triangle primitive. Vertices are transformed on the CPU
// and mapped from normalized device coordinates to window pixels.
type Backend struct {
	width, height int32
	color         rl.Color
	mesh          shape.Mesh
	handler       func(input.Event)
}

// Open creates the window. raylib loads GL itself, so only graphics.ErrWindowCreate is reported.
// raylib bundles its own GLFW, so this package is built only with the raylib tag and never linked
// together with glbackend.
func Open(cfg Config) (*Backend, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: raylib window not ready", graphics.ErrWindowCreate)
	}
	rl.SetExitKey(rl.KeyNull) // close via window button only
	return &Backend{
		width:  int32(cfg.Width),
		height: int32(cfg.Height),
		color:  toColor(cfg.ShapeColor),
	}, nil
}

func toColor(c graphics.Color) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

// channel maps v to a byte, clamping it to [0, 1] first.
func channel(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

// toScreen maps an NDC point (y up, [-1, 1]) to pixels (y down, origin top-left).
func toScreen(v mgl32.Vec3, w, h int32) rl.Vector2 {
	return rl.NewVector2((v.X()+1)*float32(w)/2, (1-v.Y())*float32(h)/2)
}

func mapKey(k int32) input.Key {
	switch k {
	case rl.KeyLeft:
		return input.KeyLeft
	case rl.KeyRight:
		return input.KeyRight
	case rl.KeyUp:
		return input.KeyUp
	case rl.KeyDown:
		return input.KeyDown
	}
	return input.KeyUnknown
}

// Upload keeps a reference to mesh; raylib's batch renderer owns the GPU buffers.
func (b *Backend) Upload(mesh shape.Mesh) error {
	b.mesh = mesh
	return nil
}

func (b *Backend) SetKeyHandler(h func(input.Event)) {
	b.handler = h
}

func (b *Backend) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (b *Backend) Clear(c graphics.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(c))
}

// Draw emits the mesh's triangles. The y flip keeps counter-clockwise order as seen on screen,
// which is what rl.DrawTriangle expects.
func (b *Backend) Draw(transform mgl32.Mat4) {
	pts := b.mesh.Positions(transform)
	idx := b.mesh.Indices
	for i := 0; i+2 < len(idx); i += 3 {
		rl.DrawTriangle(
			toScreen(pts[idx[i]], b.width, b.height),
			toScreen(pts[idx[i+1]], b.width, b.height),
			toScreen(pts[idx[i+2]], b.width, b.height),
			b.color,
		)
	}
}

func (b *Backend) Present() {
	rl.EndDrawing()
}

// PollEvents drains raylib's key-pressed queue. raylib only queues press transitions.
func (b *Backend) PollEvents() {
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if b.handler != nil {
			b.handler(input.Event{Key: mapKey(k), Action: input.Press})
		}
	}
}

func (b *Backend) SetTitle(title string) {
	rl.SetWindowTitle(title)
}

func (b *Backend) Close() {
	rl.CloseWindow()
}

var _ graphics.Backend = (*Backend)(nil)
