package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/internal/config"
)

// Scene places the cubes and holds the lighting parameters pushed each frame.
type Scene struct {
	Positions []mgl32.Vec3
	Textures  []string

	Axis      mgl32.Vec3 // rotation axis, normalised
	AngleStep float32    // degrees of initial rotation per cube index
	SpinSpeed float32    // radians per second

	ClearColor       mgl32.Vec4
	ObjectColor      mgl32.Vec3
	LightColor       mgl32.Vec3
	AmbientStrength  float32
	SpecularStrength float32
}

// NewScene builds a scene from config.
func NewScene(sc config.SceneConfig, textures []string) (*Scene, error) {
	if len(sc.Cubes) == 0 {
		return nil, fmt.Errorf("scene has no cubes")
	}
	if len(textures) == 0 {
		return nil, fmt.Errorf("scene has no textures")
	}
	axis := mgl32.Vec3(sc.RotationAxis)
	if axis.Len() == 0 {
		return nil, fmt.Errorf("rotation axis must be non-zero")
	}

	positions := make([]mgl32.Vec3, len(sc.Cubes))
	for i, p := range sc.Cubes {
		positions[i] = mgl32.Vec3(p)
	}

	return &Scene{
		Positions:        positions,
		Textures:         textures,
		Axis:             axis.Normalize(),
		AngleStep:        sc.AngleStep,
		SpinSpeed:        sc.SpinSpeed,
		ClearColor:       mgl32.Vec4(sc.ClearColor),
		ObjectColor:      mgl32.Vec3(sc.ObjectColor),
		LightColor:       mgl32.Vec3(sc.LightColor),
		AmbientStrength:  sc.AmbientStrength,
		SpecularStrength: sc.SpecularStrength,
	}, nil
}

// Len returns the number of cubes.
func (s *Scene) Len() int {
	return len(s.Positions)
}

// TextureFor returns the texture assigned to cube i, cycling through the list.
func (s *Scene) TextureFor(i int) string {
	return s.Textures[i%len(s.Textures)]
}

// ModelMatrix returns cube i's model matrix at elapsed seconds t.
func (s *Scene) ModelMatrix(i int, t float32) mgl32.Mat4 {
	p := s.Positions[i]
	angle := mgl32.DegToRad(s.AngleStep*float32(i)) + t*s.SpinSpeed
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.HomogRotate3D(angle, s.Axis))
}

// ApplyLighting pushes the per-frame lighting uniforms. The light sits at the
// viewer, as a head lamp.
func (s *Scene) ApplyLighting(program Program, viewPos mgl32.Vec3) {
	program.Use()
	program.SetVec3("objectColor", s.ObjectColor)
	program.SetVec3("lightColor", s.LightColor)
	program.SetVec3("lightPos", viewPos)
	program.SetVec3("viewPos", viewPos)
	program.SetFloat("ambientStrength", s.AmbientStrength)
	program.SetFloat("specularStrength", s.SpecularStrength)
}
