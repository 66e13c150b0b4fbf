package graphics

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"rectangle/internal/debug"
	"rectangle/internal/input"
	"rectangle/internal/shape"
)

// Fatal initialisation failures. Backends wrap one of these so callers can tell them apart.
var (
	ErrWindowSystem = errors.New("failed to initialize window system")
	ErrWindowCreate = errors.New("failed to create window")
	ErrLoader       = errors.New("failed to load GPU functions")
	ErrShader       = errors.New("failed to build shader program")
)

// Color is an RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorFrom converts a [r g b a] array, as stored in config, to a Color.
func ColorFrom(c [4]float32) Color {
	return Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Backend is the window system and GPU the loop drives. All methods are called from the
// thread that created the backend.
type Backend interface {
	// Upload stores mesh in GPU-owned buffers. Run calls it once, before the first frame.
	Upload(mesh shape.Mesh) error
	// SetKeyHandler registers the function PollEvents calls for each key transition.
	SetKeyHandler(h func(input.Event))
	ShouldClose() bool
	Clear(c Color)
	// Draw issues one indexed draw of the uploaded mesh, translated by transform.
	Draw(transform mgl32.Mat4)
	Present()
	PollEvents()
	SetTitle(title string)
	// Close releases GPU objects and the window.
	Close()
}

// Options controls what Run draws.
type Options struct {
	Mesh       shape.Mesh
	Background Color
	// ApplyOffset translates the mesh by the current position; when false the mesh stays at the origin.
	ApplyOffset bool
	// Stats is optional; when set its caption is pushed to the window title.
	Stats *debug.Stats
}

// Transform returns the model matrix for pos: a translation when apply is true, identity otherwise.
func Transform(pos input.Position, apply bool) mgl32.Mat4 {
	if !apply {
		return mgl32.Ident4()
	}
	return mgl32.Translate3D(pos.X, pos.Y, 0)
}

// Run uploads the mesh, wires key events to st and runs frames until the backend reports a close
// request. Each frame clears, draws, presents, then polls events, so key presses handled during
// a poll are visible in the next frame. It returns the number of frames drawn.
func Run(b Backend, st *input.State, opts Options) (int, error) {
	if err := b.Upload(opts.Mesh); err != nil {
		return 0, fmt.Errorf("upload mesh: %w", err)
	}
	b.SetKeyHandler(func(ev input.Event) {
		input.Handle(ev, st)
	})

	frames := 0
	for !b.ShouldClose() {
		b.Clear(opts.Background)
		b.Draw(Transform(st.Position, opts.ApplyOffset))
		b.Present()
		b.PollEvents()
		frames++

		if opts.Stats != nil {
			if title, ok := opts.Stats.Frame(st); ok {
				b.SetTitle(title)
			}
		}
	}
	return frames, nil
}
