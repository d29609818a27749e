// Package openglhelper provides utilities for working with OpenGL buffers and other resources.
// It wraps the low-level OpenGL functions in a more Go-friendly API.
package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const float32Size = 4

// BufferObject represents an OpenGL buffer object (VBO, EBO, etc.)
type BufferObject struct {
	ID   uint32
	Type uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER, etc.
}

// BufferUsage represents different buffer usage patterns for OpenGL buffers.
type BufferUsage uint32

// StaticDraw indicates buffer contents will be specified once and used many times for drawing
const StaticDraw BufferUsage = gl.STATIC_DRAW

// VertexArrayObject represents an OpenGL vertex array object (VAO) that stores vertex attribute configurations.
type VertexArrayObject struct {
	ID uint32
}

// NewBufferObject creates a buffer of the given type and uploads data to it.
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:   bufferID,
		Type: bufferType,
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	return buffer
}

// NewVBO creates an array buffer holding vertices.
func NewVBO(vertices []float32, usage BufferUsage) *BufferObject {
	if len(vertices) == 0 {
		return NewBufferObject(gl.ARRAY_BUFFER, 0, nil, usage)
	}
	return NewBufferObject(gl.ARRAY_BUFFER, len(vertices)*float32Size, gl.Ptr(vertices), usage)
}

// Bind binds the buffer object to its type target.
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its type target.
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// Delete releases the buffer. Deleting an already released buffer does nothing.
func (bo *BufferObject) Delete() {
	if bo.ID == 0 {
		return
	}
	gl.DeleteBuffers(1, &bo.ID)
	bo.ID = 0
}

// NewVAO creates a new Vertex Array Object.
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)

	return &VertexArrayObject{
		ID: vaoID,
	}
}

// Bind binds the vertex array object.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object.
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object. Deleting it twice does nothing.
func (vao *VertexArrayObject) Delete() {
	if vao.ID == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &vao.ID)
	vao.ID = 0
}

// SetVertexAttribPointer sets up a vertex attribute pointer and enables the attribute.
// stride and offset are in bytes.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}

// ApplyLayout configures every attribute of an interleaved float layout.
// The VAO and the source buffer must be bound.
func (vao *VertexArrayObject) ApplyLayout(layout VertexLayout) {
	stride := layout.Stride() * float32Size
	for i, attr := range layout.Attribs {
		vao.SetVertexAttribPointer(attr.Location, attr.Size, gl.FLOAT, false, stride, layout.Offset(i)*float32Size)
	}
}
