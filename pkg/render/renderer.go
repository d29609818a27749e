package render

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/leterax/go-cubes/internal/assets"
	"github.com/leterax/go-cubes/internal/config"
	"github.com/leterax/go-cubes/internal/logger"
	"github.com/leterax/go-cubes/internal/openglhelper"
)

// Renderer owns everything the frame loop touches: window, shader program,
// camera, input state, render objects and frame timing. All methods must run
// on the thread that owns the GL context.
type Renderer struct {
	window  *openglhelper.Window
	device  *openglhelper.GLDevice
	program *openglhelper.Shader
	camera  *Camera
	mouse   MouseTracker
	scene   *Scene
	objects []*RenderObject
	title   string

	// Timing
	lastFrameTime float64
	deltaTime     float32
	elapsed       float32

	stats  frameStats
	closed bool
}

type frameStats struct {
	frames int
	window time.Duration
}

// NewRenderer loads the shader program and scene described by cfg into window.
// On error nothing created here is leaked; the caller still owns window.
func NewRenderer(cfg *config.Config, window *openglhelper.Window) (*Renderer, error) {
	res := assets.NewResolver(cfg.Assets.Root)

	vertexPath := res.Path(cfg.Assets.VertexShader)
	fragmentPath := res.Path(cfg.Assets.FragmentShader)
	program, err := openglhelper.LoadShaderFromFiles(vertexPath, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	logger.Info("shader program ready", zap.String("vertex", vertexPath), zap.String("fragment", fragmentPath))

	textures := make([]string, len(cfg.Assets.Textures))
	for i, t := range cfg.Assets.Textures {
		textures[i] = res.Path(t)
	}
	scene, err := NewScene(cfg.Scene, textures)
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	r := &Renderer{
		window:  window,
		device:  openglhelper.NewGLDevice(),
		program: program,
		camera:  newConfiguredCamera(cfg.Camera),
		scene:   scene,
		title:   cfg.Window.Title,
	}

	width, height := window.Size()
	r.camera.UpdateProjectionMatrix(width, height)

	if err := r.initObjects(); err != nil {
		r.releaseObjects()
		program.Delete()
		return nil, err
	}

	glw := window.GLFWWindow()
	glw.SetKeyCallback(r.keyCallback)
	glw.SetCursorPosCallback(r.cursorPosCallback)
	glw.SetScrollCallback(r.scrollCallback)
	glw.SetFramebufferSizeCallback(r.framebufferSizeCallback)
	window.SetMouseCaptured(cfg.Window.CaptureMouse)

	return r, nil
}

func newConfiguredCamera(cc config.CameraConfig) *Camera {
	camera := NewCamera(mgl32.Vec3(cc.Position))
	camera.SetRotation(cc.Yaw, cc.Pitch)
	camera.SetMoveSpeed(cc.MoveSpeed)
	camera.SetSensitivity(cc.Sensitivity)
	camera.SetClipPlanes(cc.Near, cc.Far)
	camera.SetFOV(cc.FOV)
	return camera
}

// initObjects creates one textured cube per scene position.
func (r *Renderer) initObjects() error {
	mesh := openglhelper.NewCube()
	projection := r.camera.ProjectionMatrix()

	for i := 0; i < r.scene.Len(); i++ {
		obj := NewRenderObject(mesh, r.scene.TextureFor(i))
		if err := obj.Initialize(r.device); err != nil {
			return fmt.Errorf("failed to initialize cube %d: %w", i, err)
		}
		obj.SetProjectionMatrix(projection)
		obj.SetModelMatrix(r.scene.ModelMatrix(i, 0))
		r.objects = append(r.objects, obj)
	}

	logger.Info("scene ready", zap.Int("cubes", len(r.objects)), zap.Int("textures", len(r.scene.Textures)))
	return nil
}

// Run drives the frame loop until the window is asked to close, then
// releases all resources.
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime
		r.elapsed += r.deltaTime

		r.processInput()
		r.update()
		r.render()
		r.recordFrame()

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Close()
}

// processInput applies held movement keys to the camera.
func (r *Renderer) processInput() {
	for _, dir := range HeldDirections(r.window.GetKeyState) {
		r.camera.ProcessKeyboardInput(dir, r.deltaTime)
	}
}

// update recomputes every object's model matrix for the current time.
func (r *Renderer) update() {
	for i, obj := range r.objects {
		obj.SetModelMatrix(r.scene.ModelMatrix(i, r.elapsed))
	}
}

func (r *Renderer) render() {
	r.window.Clear(r.scene.ClearColor)

	view := r.camera.ViewMatrix()
	r.scene.ApplyLighting(r.program, r.camera.Position())

	for _, obj := range r.objects {
		obj.Draw(r.program, view)
	}
}

func (r *Renderer) recordFrame() {
	r.stats.frames++
	r.stats.window += time.Duration(float64(r.deltaTime) * float64(time.Second))
	if r.stats.window < time.Second {
		return
	}

	fps := float64(r.stats.frames) / r.stats.window.Seconds()
	pos := r.camera.Position()
	logger.Debug("frame stats",
		zap.Float64("fps", fps),
		zap.Duration("avg_frame", r.stats.window/time.Duration(r.stats.frames)),
		zap.Float32s("camera", pos[:]))
	r.window.SetTitle(fmt.Sprintf("%s | %.0f fps", r.title, fps))

	r.stats = frameStats{}
}

// Close releases every render object once, the shader program and the window.
// Calling it again does nothing.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true

	r.releaseObjects()
	r.program.Delete()
	r.window.Close()
	logger.Info("renderer closed")
}

func (r *Renderer) releaseObjects() {
	for _, obj := range r.objects {
		obj.Destroy()
	}
	r.objects = nil
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != Press {
		return
	}

	switch key {
	case KeyEscape:
		r.window.RequestClose()
	case KeyC:
		r.window.ToggleMouseCaptured()
		r.mouse.Reset()
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if !r.window.IsMouseCaptured() {
		return
	}
	dx, dy := r.mouse.Delta(xpos, ypos)
	r.camera.ProcessMouseMovement(dx, dy)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.camera.ProcessMouseScroll(float32(yoffset))
	r.pushProjection()
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
	r.pushProjection()
}

// pushProjection hands the camera's current projection to every object.
func (r *Renderer) pushProjection() {
	projection := r.camera.ProjectionMatrix()
	for _, obj := range r.objects {
		obj.SetProjectionMatrix(projection)
	}
}
