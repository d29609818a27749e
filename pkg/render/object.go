package render

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/leterax/go-cubes/internal/assets"
	"github.com/leterax/go-cubes/internal/logger"
	"github.com/leterax/go-cubes/internal/openglhelper"
)

// Device is the GPU surface a RenderObject needs. Handles are opaque; 0 means
// "none" and the delete methods must accept it.
type Device interface {
	CreateVertexArray(mesh openglhelper.MeshData) (vao, vbo uint32)
	CreateTexture(img *image.RGBA) uint32
	BindTexture(unit, texture uint32)
	BindVertexArray(vao uint32)
	DrawTriangles(first, count int32)
	DeleteVertexArray(vao uint32)
	DeleteBuffer(vbo uint32)
	DeleteTexture(texture uint32)
}

// Program is a shader program accepting named uniforms.
type Program interface {
	Use()
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec3(name string, vec mgl32.Vec3)
	SetMat4(name string, mat mgl32.Mat4)
}

// ObjectState is a RenderObject's lifecycle state.
type ObjectState int

const (
	Uninitialized ObjectState = iota
	Initialized
	Destroyed
)

func (s ObjectState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Destroyed:
		return "destroyed"
	}
	return fmt.Sprintf("ObjectState(%d)", int(s))
}

// RenderObject is a mesh with one texture and its own model matrix.
type RenderObject struct {
	mesh        openglhelper.MeshData
	texturePath string

	device      Device
	vao         uint32
	vbo         uint32
	texture     uint32
	vertexCount int32

	model      mgl32.Mat4
	projection mgl32.Mat4
	state      ObjectState
}

// NewRenderObject creates an uninitialised object for mesh textured with the
// image at texturePath.
func NewRenderObject(mesh openglhelper.MeshData, texturePath string) *RenderObject {
	return &RenderObject{
		mesh:        mesh,
		texturePath: texturePath,
		model:       mgl32.Ident4(),
		projection:  mgl32.Ident4(),
	}
}

// Initialize uploads the mesh and texture through dev.
//
// A texture that cannot be decoded is logged and left unset; the object still
// becomes drawable and samples whatever the default texture yields.
// Only malformed mesh data is an error.
func (o *RenderObject) Initialize(dev Device) error {
	if o.state != Uninitialized {
		return nil
	}
	if err := o.mesh.Validate(); err != nil {
		return fmt.Errorf("invalid mesh: %w", err)
	}

	o.device = dev
	o.vao, o.vbo = dev.CreateVertexArray(o.mesh)
	o.vertexCount = o.mesh.VertexCount()

	img, err := assets.LoadImage(o.texturePath, true)
	if err != nil {
		logger.Warn("Failed to load texture", zap.String("path", o.texturePath), zap.Error(err))
	} else {
		o.texture = dev.CreateTexture(img)
		logger.Debug("texture loaded",
			zap.String("path", o.texturePath),
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()))
	}

	o.state = Initialized
	return nil
}

// SetProjectionMatrix stores the projection used by the next Draw.
func (o *RenderObject) SetProjectionMatrix(m mgl32.Mat4) {
	o.projection = m
}

// SetModelMatrix stores the model matrix used by the next Draw.
func (o *RenderObject) SetModelMatrix(m mgl32.Mat4) {
	o.model = m
}

// ModelMatrix returns the current model matrix.
func (o *RenderObject) ModelMatrix() mgl32.Mat4 {
	return o.model
}

// Draw renders the object with program. It rebinds the texture unit, program
// and vertex array every call, so objects can be drawn back to back in any
// order. Drawing an object that is not initialised does nothing.
func (o *RenderObject) Draw(program Program, view mgl32.Mat4) {
	if o.state != Initialized {
		return
	}

	o.device.BindTexture(textureUnit, o.texture)

	program.Use()
	program.SetInt("texture1", textureUnit)
	program.SetMat4("projection", o.projection)
	program.SetMat4("view", view)
	program.SetMat4("model", o.model)

	o.device.BindVertexArray(o.vao)
	o.device.DrawTriangles(0, o.vertexCount)
}

// Destroy releases the GPU resources. It is safe on an object that was never
// initialised and on one already destroyed.
func (o *RenderObject) Destroy() {
	if o.device != nil {
		if o.vao != 0 {
			o.device.DeleteVertexArray(o.vao)
		}
		if o.vbo != 0 {
			o.device.DeleteBuffer(o.vbo)
		}
		if o.texture != 0 {
			o.device.DeleteTexture(o.texture)
		}
	}
	o.vao, o.vbo, o.texture = 0, 0, 0
	o.state = Destroyed
}

// State returns the lifecycle state.
func (o *RenderObject) State() ObjectState {
	return o.state
}

// VertexCount returns the number of vertices uploaded by Initialize.
func (o *RenderObject) VertexCount() int32 {
	return o.vertexCount
}

// HasTexture reports whether a texture was uploaded.
func (o *RenderObject) HasTexture() bool {
	return o.texture != 0
}
