package openglhelper

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice issues the resource and draw calls render objects need against the
// current OpenGL context. Handles are raw GL object names; 0 is never a live
// object and every Delete method ignores it.
type GLDevice struct{}

// NewGLDevice returns a device bound to whatever context is current.
func NewGLDevice() *GLDevice {
	return &GLDevice{}
}

// CreateVertexArray uploads mesh into a static VBO and records its layout in a new VAO.
func (d *GLDevice) CreateVertexArray(mesh MeshData) (vao, vbo uint32) {
	va := NewVAO()
	va.Bind()

	buf := NewVBO(mesh.Vertices, StaticDraw)
	va.ApplyLayout(mesh.Layout)

	va.Unbind()
	buf.Unbind()

	return va.ID, buf.ID
}

// CreateTexture uploads img as a 2D texture.
func (d *GLDevice) CreateTexture(img *image.RGBA) uint32 {
	return NewTexture2D(img).ID
}

// BindTexture binds texture to unit.
func (d *GLDevice) BindTexture(unit, texture uint32) {
	BindTexture2D(unit, texture)
}

// BindVertexArray makes vao the active vertex array.
func (d *GLDevice) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DrawTriangles draws count unindexed vertices starting at first.
func (d *GLDevice) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// DeleteVertexArray releases a VAO.
func (d *GLDevice) DeleteVertexArray(vao uint32) {
	(&VertexArrayObject{ID: vao}).Delete()
}

// DeleteBuffer releases a buffer.
func (d *GLDevice) DeleteBuffer(vbo uint32) {
	(&BufferObject{ID: vbo, Type: gl.ARRAY_BUFFER}).Delete()
}

// DeleteTexture releases a texture.
func (d *GLDevice) DeleteTexture(texture uint32) {
	(&Texture{ID: texture}).Delete()
}
