package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-cubes/internal/config"
)

// Key constants for keyboard input
const (
	KeyW      = glfw.KeyW
	KeyA      = glfw.KeyA
	KeyS      = glfw.KeyS
	KeyD      = glfw.KeyD
	KeyC      = glfw.KeyC
	KeyEscape = glfw.KeyEscape
)

// Press is the action reported for a key going down.
const Press = glfw.Press

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed   = 2.5
	DefaultSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 45.0
	MinFOV     = config.MinFOV
	MaxFOV     = config.MaxFOV

	// Clip planes
	DefaultNear = 0.1
	DefaultFar  = 100.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)

// Texture unit the cube sampler reads from.
const textureUnit = 0
