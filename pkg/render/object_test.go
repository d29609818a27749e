package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/internal/openglhelper"
)

// fakeDevice hands out sequential handles and records every call.
type fakeDevice struct {
	next     uint32
	textures []*image.RGBA

	boundTexture map[uint32]uint32
	boundVAO     uint32
	draws        [][2]int32
	deleted      []uint32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{boundTexture: make(map[uint32]uint32)}
}

func (d *fakeDevice) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) CreateVertexArray(openglhelper.MeshData) (uint32, uint32) {
	return d.handle(), d.handle()
}

func (d *fakeDevice) CreateTexture(img *image.RGBA) uint32 {
	d.textures = append(d.textures, img)
	return d.handle()
}

func (d *fakeDevice) BindTexture(unit, texture uint32) {
	d.boundTexture[unit] = texture
}

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.boundVAO = vao
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	d.draws = append(d.draws, [2]int32{first, count})
}

func (d *fakeDevice) DeleteVertexArray(vao uint32) {
	d.deleted = append(d.deleted, vao)
}

func (d *fakeDevice) DeleteBuffer(vbo uint32) {
	d.deleted = append(d.deleted, vbo)
}

func (d *fakeDevice) DeleteTexture(texture uint32) {
	d.deleted = append(d.deleted, texture)
}

// fakeProgram keeps the last value written to each uniform.
type fakeProgram struct {
	uses   int
	ints   map[string]int32
	floats map[string]float32
	vec3s  map[string]mgl32.Vec3
	mat4s  map[string]mgl32.Mat4
}

func newFakeProgram() *fakeProgram {
	return &fakeProgram{
		ints:   make(map[string]int32),
		floats: make(map[string]float32),
		vec3s:  make(map[string]mgl32.Vec3),
		mat4s:  make(map[string]mgl32.Mat4),
	}
}

func (p *fakeProgram) Use() {
	p.uses++
}

func (p *fakeProgram) SetInt(name string, v int32) {
	p.ints[name] = v
}

func (p *fakeProgram) SetFloat(name string, v float32) {
	p.floats[name] = v
}

func (p *fakeProgram) SetVec3(name string, v mgl32.Vec3) {
	p.vec3s[name] = v
}

func (p *fakeProgram) SetMat4(name string, m mgl32.Mat4) {
	p.mat4s[name] = m
}

func writeTexture(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.NRGBA{R: 255, A: 255})
		img.Set(x, 1, color.NRGBA{G: 255, A: 255})
	}
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderObjectLifecycle(t *testing.T) {
	dev := newFakeDevice()
	obj := NewRenderObject(openglhelper.NewCube(), writeTexture(t))

	if obj.State() != Uninitialized {
		t.Fatalf("state = %v, want uninitialized", obj.State())
	}
	if err := obj.Initialize(dev); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if obj.State() != Initialized {
		t.Fatalf("state = %v, want initialized", obj.State())
	}
	if !obj.HasTexture() {
		t.Fatal("texture should have been uploaded")
	}
	if obj.VertexCount() != 36 {
		t.Errorf("VertexCount = %d, want 36", obj.VertexCount())
	}

	// Uploaded texture is flipped: bottom row (green) first.
	if got := dev.textures[0].RGBAAt(0, 0); got.G != 255 || got.R != 0 {
		t.Errorf("texture row 0 = %v, want green", got)
	}

	obj.Destroy()
	if obj.State() != Destroyed {
		t.Fatalf("state = %v, want destroyed", obj.State())
	}
	if len(dev.deleted) != 3 {
		t.Fatalf("deleted %v, want vao, vbo and texture", dev.deleted)
	}

	obj.Destroy()
	if len(dev.deleted) != 3 {
		t.Errorf("second Destroy released again: %v", dev.deleted)
	}
}

func TestRenderObjectDraw(t *testing.T) {
	dev := newFakeDevice()
	prog := newFakeProgram()
	obj := NewRenderObject(openglhelper.NewCube(), writeTexture(t))
	if err := obj.Initialize(dev); err != nil {
		t.Fatal(err)
	}

	proj := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	model := mgl32.Translate3D(1, 2, 3)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	obj.SetProjectionMatrix(proj)
	obj.SetModelMatrix(model)

	obj.Draw(prog, view)

	if prog.uses != 1 {
		t.Errorf("program used %d times, want 1", prog.uses)
	}
	if prog.ints["texture1"] != 0 {
		t.Errorf("texture1 = %d, want unit 0", prog.ints["texture1"])
	}
	if prog.mat4s["projection"] != proj || prog.mat4s["view"] != view || prog.mat4s["model"] != model {
		t.Error("matrices not pushed as set")
	}
	if dev.boundTexture[0] == 0 {
		t.Error("texture not bound to unit 0")
	}
	if dev.boundVAO == 0 {
		t.Error("vertex array not bound")
	}
	if len(dev.draws) != 1 || dev.draws[0] != [2]int32{0, 36} {
		t.Errorf("draws = %v, want one draw of 36 vertices", dev.draws)
	}
}

func TestRenderObjectMissingTexture(t *testing.T) {
	dev := newFakeDevice()
	prog := newFakeProgram()
	obj := NewRenderObject(openglhelper.NewCube(), filepath.Join(t.TempDir(), "nope.png"))

	if err := obj.Initialize(dev); err != nil {
		t.Fatalf("missing texture must not fail Initialize: %v", err)
	}
	if obj.State() != Initialized {
		t.Fatalf("state = %v, want initialized", obj.State())
	}
	if obj.HasTexture() {
		t.Error("no texture should have been uploaded")
	}

	obj.Draw(prog, mgl32.Ident4())
	if len(dev.draws) != 1 {
		t.Fatalf("draw did not happen: %v", dev.draws)
	}
	if tex, ok := dev.boundTexture[0]; !ok || tex != 0 {
		t.Errorf("unit 0 should be bound to the default texture, got %d (bound=%v)", tex, ok)
	}

	obj.Destroy()
	if len(dev.deleted) != 2 {
		t.Errorf("deleted %v, want only vao and vbo", dev.deleted)
	}
}

func TestRenderObjectDestroyBeforeInitialize(t *testing.T) {
	obj := NewRenderObject(openglhelper.NewCube(), "unused.png")
	obj.Destroy()
	if obj.State() != Destroyed {
		t.Errorf("state = %v, want destroyed", obj.State())
	}
}

func TestRenderObjectDrawOutsideInitialized(t *testing.T) {
	dev := newFakeDevice()
	prog := newFakeProgram()
	obj := NewRenderObject(openglhelper.NewCube(), writeTexture(t))

	obj.Draw(prog, mgl32.Ident4())
	if prog.uses != 0 {
		t.Error("draw before Initialize touched the program")
	}

	if err := obj.Initialize(dev); err != nil {
		t.Fatal(err)
	}
	obj.Destroy()
	obj.Draw(prog, mgl32.Ident4())
	if len(dev.draws) != 0 {
		t.Errorf("draw after Destroy issued %v", dev.draws)
	}
}

func TestRenderObjectInitializeTwice(t *testing.T) {
	dev := newFakeDevice()
	obj := NewRenderObject(openglhelper.NewCube(), writeTexture(t))

	if err := obj.Initialize(dev); err != nil {
		t.Fatal(err)
	}
	handles := dev.next
	if err := obj.Initialize(dev); err != nil {
		t.Fatal(err)
	}
	if dev.next != handles {
		t.Errorf("second Initialize allocated %d more handles", dev.next-handles)
	}
}

func TestRenderObjectRejectsBadMesh(t *testing.T) {
	dev := newFakeDevice()
	mesh := openglhelper.MeshData{
		Vertices: make([]float32, 8*36-3),
		Layout:   openglhelper.PositionTexNormal,
	}
	obj := NewRenderObject(mesh, writeTexture(t))

	if err := obj.Initialize(dev); err == nil {
		t.Fatal("expected error for truncated vertex data")
	}
	if obj.State() != Uninitialized {
		t.Errorf("state = %v, want uninitialized", obj.State())
	}
	if dev.next != 0 {
		t.Error("no GPU resources should be allocated for a bad mesh")
	}
}

func TestVertexCountFollowsMesh(t *testing.T) {
	dev := newFakeDevice()
	mesh := openglhelper.MeshData{
		Vertices: make([]float32, 8*6),
		Layout:   openglhelper.PositionTexNormal,
	}
	obj := NewRenderObject(mesh, writeTexture(t))
	if err := obj.Initialize(dev); err != nil {
		t.Fatal(err)
	}

	obj.Draw(newFakeProgram(), mgl32.Ident4())
	if dev.draws[0][1] != 6 {
		t.Errorf("drew %d vertices, want 6", dev.draws[0][1])
	}
}

func TestObjectsRebindPerDraw(t *testing.T) {
	dev := newFakeDevice()
	prog := newFakeProgram()
	tex := writeTexture(t)

	a := NewRenderObject(openglhelper.NewCube(), tex)
	b := NewRenderObject(openglhelper.NewCube(), tex)
	for _, o := range []*RenderObject{a, b} {
		if err := o.Initialize(dev); err != nil {
			t.Fatal(err)
		}
	}
	a.SetModelMatrix(mgl32.Translate3D(1, 0, 0))
	b.SetModelMatrix(mgl32.Translate3D(0, 1, 0))

	a.Draw(prog, mgl32.Ident4())
	vaoA, texA := dev.boundVAO, dev.boundTexture[0]
	b.Draw(prog, mgl32.Ident4())

	if dev.boundVAO == vaoA || dev.boundTexture[0] == texA {
		t.Error("second object did not rebind its own vertex array and texture")
	}
	if prog.mat4s["model"] != mgl32.Translate3D(0, 1, 0) {
		t.Error("model uniform should hold the last drawn object's matrix")
	}
	if prog.uses != 2 {
		t.Errorf("program used %d times, want 2", prog.uses)
	}
}

func TestObjectStateString(t *testing.T) {
	tests := map[ObjectState]string{
		Uninitialized:  "uninitialized",
		Initialized:    "initialized",
		Destroyed:      "destroyed",
		ObjectState(9): "ObjectState(9)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
