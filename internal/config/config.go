// Package config holds the demo's settings and loads them from YAML and flags.
package config

import (
	"errors"
	"fmt"

	"github.com/leterax/go-cubes/internal/logger"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Assets  AssetsConfig  `yaml:"assets"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Title        string `yaml:"title"`
	VSync        bool   `yaml:"vsync"`
	CaptureMouse bool   `yaml:"capture_mouse"`
}

// AssetsConfig names the files loaded at startup. Relative paths are
// resolved against Root.
type AssetsConfig struct {
	Root           string   `yaml:"root"`
	VertexShader   string   `yaml:"vertex_shader"`
	FragmentShader string   `yaml:"fragment_shader"`
	Textures       []string `yaml:"textures"`
}

// CameraConfig holds the free-fly camera's starting state and tuning.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	MoveSpeed   float32    `yaml:"move_speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	FOV         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// SceneConfig places the cubes and sets the lighting.
type SceneConfig struct {
	Cubes            [][3]float32 `yaml:"cubes"`
	RotationAxis     [3]float32   `yaml:"rotation_axis"`
	AngleStep        float32      `yaml:"angle_step"` // degrees of phase added per cube index
	SpinSpeed        float32      `yaml:"spin_speed"` // radians per second
	ClearColor       [4]float32   `yaml:"clear_color"`
	ObjectColor      [3]float32   `yaml:"object_color"`
	LightColor       [3]float32   `yaml:"light_color"`
	AmbientStrength  float32      `yaml:"ambient_strength"`
	SpecularStrength float32      `yaml:"specular_strength"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Zoom range for the camera's vertical field of view, in degrees.
const (
	MinFOV = 1.0
	MaxFOV = 45.0
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:        800,
			Height:       600,
			Title:        "go-cubes",
			VSync:        true,
			CaptureMouse: true,
		},
		Assets: AssetsConfig{
			Root:           "assets",
			VertexShader:   "shaders/vertex.glsl",
			FragmentShader: "shaders/fragment.glsl",
			Textures:       []string{"textures/container.png"},
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			MoveSpeed:   2.5,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Scene: SceneConfig{
			Cubes: [][3]float32{
				{0.0, 0.0, 0.0},
				{2.0, 5.0, -15.0},
				{-1.5, -2.2, -2.5},
				{-3.8, -2.0, -12.3},
				{2.4, -0.4, -3.5},
				{-1.7, 3.0, -7.5},
				{1.3, -2.0, -2.5},
				{1.5, 2.0, -2.5},
				{1.5, 0.2, -1.5},
				{-1.3, 1.0, -1.5},
			},
			RotationAxis:     [3]float32{1.0, 0.3, 0.5},
			AngleStep:        0,
			SpinSpeed:        1,
			ClearColor:       [4]float32{0, 0, 0, 1},
			ObjectColor:      [3]float32{1.0, 0.5, 0.31},
			LightColor:       [3]float32{1, 1, 1},
			AmbientStrength:  0.1,
			SpecularStrength: 0.5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that would make startup fail.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Assets.VertexShader == "" || c.Assets.FragmentShader == "" {
		return errors.New("both shader paths must be set")
	}
	if len(c.Assets.Textures) == 0 {
		return errors.New("at least one texture is required")
	}
	if len(c.Scene.Cubes) == 0 {
		return errors.New("scene has no cubes")
	}
	if c.Scene.RotationAxis == [3]float32{} {
		return errors.New("rotation axis must be non-zero")
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return fmt.Errorf("invalid clip planes near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV < MinFOV || c.Camera.FOV > MaxFOV {
		return fmt.Errorf("fov %g outside [%g, %g]", c.Camera.FOV, float32(MinFOV), float32(MaxFOV))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}
