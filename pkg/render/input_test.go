package render

import (
	"reflect"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func TestMouseTrackerFirstSampleSuppressed(t *testing.T) {
	for _, start := range [][2]float64{{0, 0}, {400, 300}, {1919, 5}, {-250, 10000}} {
		var m MouseTracker
		c := NewCamera(mgl32.Vec3{})
		yaw0, pitch0 := c.Orientation()

		dx, dy := m.Delta(start[0], start[1])
		if dx != 0 || dy != 0 {
			t.Errorf("first sample at %v gave delta (%f, %f)", start, dx, dy)
		}
		c.ProcessMouseMovement(dx, dy)

		if yaw, pitch := c.Orientation(); yaw != yaw0 || pitch != pitch0 {
			t.Errorf("first sample at %v turned camera to (%f, %f)", start, yaw, pitch)
		}
	}
}

func TestMouseTrackerDeltas(t *testing.T) {
	var m MouseTracker
	m.Delta(100, 100)

	dx, dy := m.Delta(110, 90)
	if dx != 10 || dy != 10 {
		t.Errorf("delta = (%f, %f), want (10, 10): moving the cursor up looks up", dx, dy)
	}

	dx, dy = m.Delta(105, 95)
	if dx != -5 || dy != -5 {
		t.Errorf("delta = (%f, %f), want (-5, -5)", dx, dy)
	}
}

func TestMouseTrackerReset(t *testing.T) {
	var m MouseTracker
	m.Delta(0, 0)
	m.Reset()

	if dx, dy := m.Delta(800, 600); dx != 0 || dy != 0 {
		t.Errorf("sample after Reset gave (%f, %f)", dx, dy)
	}
	if dx, dy := m.Delta(801, 600); dx != 1 || dy != 0 {
		t.Errorf("delta = (%f, %f), want (1, 0)", dx, dy)
	}
}

func TestHeldDirections(t *testing.T) {
	tests := []struct {
		name string
		held []glfw.Key
		want []Direction
	}{
		{"none", nil, nil},
		{"forward", []glfw.Key{KeyW}, []Direction{Forward}},
		{"strafe", []glfw.Key{KeyA, KeyD}, []Direction{Left, Right}},
		{"all", []glfw.Key{KeyD, KeyS, KeyA, KeyW}, []Direction{Forward, Backward, Left, Right}},
		{"unbound", []glfw.Key{glfw.KeySpace, KeyEscape}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := func(key glfw.Key) glfw.Action {
				for _, k := range tt.held {
					if k == key {
						return Press
					}
				}
				return glfw.Release
			}
			if got := HeldDirections(state); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HeldDirections = %v, want %v", got, tt.want)
			}
		})
	}
}
