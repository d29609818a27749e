package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a camera movement direction.
type Direction int

// Movement directions accepted by ProcessKeyboardInput.
const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= Forward && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// Camera implements a free-fly camera driven by Euler angles.
// front, right and up are kept orthonormal; pitch stays within [MinPitch, MaxPitch].
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles, degrees
	yaw   float32
	pitch float32

	// Camera options
	fov         float32
	moveSpeed   float32
	sensitivity float32

	// Projection
	projection mgl32.Mat4
	near       float32
	far        float32
	width      int
	height     int
}

// NewCamera creates a camera at position looking down -Z.
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		fov:         DefaultFOV,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
		near:        DefaultNear,
		far:         DefaultFar,
		width:       800,
		height:      600,
	}

	camera.updateCameraVectors()
	camera.updateProjectionMatrix()

	return camera
}

// updateCameraVectors recalculates front, right and up from yaw and pitch
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()

	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far)
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

// UpdateProjectionMatrix updates the projection for a new viewport size.
// Zero-sized viewports (minimised windows) are ignored.
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// SetClipPlanes sets the near and far planes of the projection.
func (c *Camera) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
	c.updateProjectionMatrix()
}

// ViewMatrix returns the world-to-camera transform for the current state.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns yaw and pitch in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets yaw and pitch in degrees; pitch is clamped
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)
	c.updateCameraVectors()
}

// LookAt turns the camera toward target
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	yaw := mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	pitch := mgl32.RadToDeg(float32(math.Asin(float64(direction.Y()))))
	c.SetRotation(yaw, pitch)
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// SetFOV sets the field of view, clamped to [MinFOV, MaxFOV]
func (c *Camera) SetFOV(fov float32) {
	c.fov = mgl32.Clamp(fov, MinFOV, MaxFOV)
	c.updateProjectionMatrix()
}

// SetMoveSpeed sets the movement speed in units per second
func (c *Camera) SetMoveSpeed(speed float32) {
	c.moveSpeed = speed
}

// SetSensitivity sets degrees of rotation per pixel of mouse movement
func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// ProcessKeyboardInput moves the camera along front or right by
// moveSpeed*deltaTime. Invalid directions are ignored.
func (c *Camera) ProcessKeyboardInput(direction Direction, deltaTime float32) {
	velocity := c.moveSpeed * deltaTime

	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a cursor delta in pixels.
// Positive deltaY looks up.
func (c *Camera) ProcessMouseMovement(deltaX, deltaY float32) {
	c.yaw += deltaX * c.sensitivity
	c.pitch = clampPitch(c.pitch + deltaY*c.sensitivity)

	c.updateCameraVectors()
}

// ProcessMouseScroll zooms by narrowing or widening the field of view.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.SetFOV(c.fov - yoffset)
}
