package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// movementBindings maps held keys to camera directions. Order is the order
// they are applied within a frame.
var movementBindings = []struct {
	key       glfw.Key
	direction Direction
}{
	{KeyW, Forward},
	{KeyS, Backward},
	{KeyA, Left},
	{KeyD, Right},
}

// KeyState reports whether a key is currently held.
type KeyState func(key glfw.Key) glfw.Action

// HeldDirections returns the movement directions whose keys are pressed.
func HeldDirections(state KeyState) []Direction {
	var dirs []Direction
	for _, b := range movementBindings {
		if state(b.key) == Press {
			dirs = append(dirs, b.direction)
		}
	}
	return dirs
}

// MouseTracker turns absolute cursor positions into per-event deltas.
// The first sample after creation or Reset only seeds the previous position,
// so a cursor that starts far from the window centre does not jerk the camera.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Delta returns the movement since the previous sample. The y delta is
// reversed because window coordinates grow downward.
func (m *MouseTracker) Delta(x, y float64) (dx, dy float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0
	}

	dx = float32(x - m.lastX)
	dy = float32(m.lastY - y)
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset makes the next sample a seeding sample again.
func (m *MouseTracker) Reset() {
	m.primed = false
}
