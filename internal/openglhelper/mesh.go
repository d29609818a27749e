package openglhelper

import "fmt"

// VertexAttrib is one float attribute of an interleaved vertex.
type VertexAttrib struct {
	Name     string
	Location uint32 // shader input location
	Size     int32  // number of float components
}

// VertexLayout describes how interleaved float vertices are laid out.
type VertexLayout struct {
	Attribs []VertexAttrib
}

// Stride returns the number of floats per vertex.
func (l VertexLayout) Stride() int32 {
	var n int32
	for _, a := range l.Attribs {
		n += a.Size
	}
	return n
}

// Offset returns the float offset of attribute i within a vertex.
func (l VertexLayout) Offset(i int) int {
	off := 0
	for _, a := range l.Attribs[:i] {
		off += int(a.Size)
	}
	return off
}

// PositionTexNormal is 3 position floats, 2 texture coordinates and 3 normal floats.
var PositionTexNormal = VertexLayout{
	Attribs: []VertexAttrib{
		{Name: "aPos", Location: 0, Size: 3},
		{Name: "aTexCoord", Location: 1, Size: 2},
		{Name: "aNormal", Location: 2, Size: 3},
	},
}

// MeshData is unindexed triangle data in interleaved form.
type MeshData struct {
	Vertices []float32
	Layout   VertexLayout
}

// VertexCount returns the number of vertices described by the data.
func (m MeshData) VertexCount() int32 {
	stride := m.Layout.Stride()
	if stride == 0 {
		return 0
	}
	return int32(len(m.Vertices)) / stride
}

// Validate checks that the data holds a whole number of triangles.
func (m MeshData) Validate() error {
	stride := int(m.Layout.Stride())
	if stride == 0 {
		return fmt.Errorf("vertex layout has no attributes")
	}
	if len(m.Vertices) == 0 || len(m.Vertices)%stride != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of stride %d", len(m.Vertices), stride)
	}
	if n := len(m.Vertices) / stride; n%3 != 0 {
		return fmt.Errorf("%d vertices do not form whole triangles", n)
	}
	return nil
}

// NewCube returns a unit cube centred on the origin, two triangles per face.
func NewCube() MeshData {
	// position (3), texture coordinates (2), normal (3)
	vertices := []float32{
		// Back face
		-0.5, -0.5, -0.5, 0.0, 0.0, 0.0, 0.0, -1.0,
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, -1.0,
		0.5, 0.5, -0.5, 1.0, 1.0, 0.0, 0.0, -1.0,
		0.5, 0.5, -0.5, 1.0, 1.0, 0.0, 0.0, -1.0,
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, -1.0,
		-0.5, -0.5, -0.5, 0.0, 0.0, 0.0, 0.0, -1.0,

		// Front face
		-0.5, -0.5, 0.5, 0.0, 0.0, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 1.0, 0.0, 0.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 1.0, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 0.0, 0.0, 0.0, 1.0,

		// Left face
		-0.5, 0.5, 0.5, 1.0, 0.0, -1.0, 0.0, 0.0,
		-0.5, 0.5, -0.5, 1.0, 1.0, -1.0, 0.0, 0.0,
		-0.5, -0.5, -0.5, 0.0, 1.0, -1.0, 0.0, 0.0,
		-0.5, -0.5, -0.5, 0.0, 1.0, -1.0, 0.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
		-0.5, 0.5, 0.5, 1.0, 0.0, -1.0, 0.0, 0.0,

		// Right face
		0.5, 0.5, 0.5, 1.0, 0.0, 1.0, 0.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0, 1.0, 0.0, 0.0,
		0.5, -0.5, -0.5, 0.0, 1.0, 1.0, 0.0, 0.0,
		0.5, -0.5, -0.5, 0.0, 1.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 1.0, 0.0, 0.0,

		// Bottom face
		-0.5, -0.5, -0.5, 0.0, 1.0, 0.0, -1.0, 0.0,
		0.5, -0.5, -0.5, 1.0, 1.0, 0.0, -1.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0, -1.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0, -1.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, 0.0, 0.0, -1.0, 0.0,
		-0.5, -0.5, -0.5, 0.0, 1.0, 0.0, -1.0, 0.0,

		// Top face
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0, 0.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
		-0.5, 0.5, 0.5, 0.0, 0.0, 0.0, 1.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	}

	return MeshData{Vertices: vertices, Layout: PositionTexNormal}
}
