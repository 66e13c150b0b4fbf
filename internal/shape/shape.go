package shape

import "github.com/go-gl/mathgl/mgl32"

// HalfExtent is half the rectangle's side, in normalized device units.
const HalfExtent float32 = 0.025

// FloatsPerVertex is the size of one vertex attribute: x, y, z packed with no padding.
const FloatsPerVertex = 3

// Mesh is static indexed geometry. It is built once and treated as read-only after upload.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// Rectangle returns the square drawn by the demo: four corners around the origin and two
// counter-clockwise triangles.
func Rectangle() Mesh {
	h := HalfExtent
	return Mesh{
		Vertices: []float32{
			-h, -h, 0, // bottom left
			h, -h, 0, // bottom right
			h, h, 0, // top right
			-h, h, 0, // top left
		},
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Vertex returns vertex i.
func (m Mesh) Vertex(i int) mgl32.Vec3 {
	o := i * FloatsPerVertex
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Positions returns every vertex transformed by t. Backends without a vertex shader use it to
// place the mesh on the CPU.
func (m Mesh) Positions(t mgl32.Mat4) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, m.VertexCount())
	for i := range out {
		out[i] = t.Mul4x1(m.Vertex(i).Vec4(1)).Vec3()
	}
	return out
}
