package scene

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/camera"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/light"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/model"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
)

type fakeBackend struct{ clears int }

func (b *fakeBackend) Init() error                   { return nil }
func (b *fakeBackend) Version() string               { return "fake" }
func (b *fakeBackend) SetViewport(width, height int) {}
func (b *fakeBackend) Clear(color [4]float32)        { b.clears++ }
func (b *fakeBackend) Release()                      {}

type fakeShader struct {
	*common.UniformRecorder
	key    string
	used   int
	models []mgl32.Mat4
}

func newFakeShader(key string) *fakeShader {
	return &fakeShader{UniformRecorder: common.NewUniformRecorder(), key: key}
}

func (s *fakeShader) Key() string                           { return s.key }
func (s *fakeShader) Source(stage shader.ShaderType) string { return "" }
func (s *fakeShader) Program() uint32                       { return 1 }
func (s *fakeShader) Declarations() []shader.Annotation     { return nil }
func (s *fakeShader) Use()                                  { s.used++ }
func (s *fakeShader) Delete()                               {}

func (s *fakeShader) UniformName(structType shader.AnnotationArg, fallback string) string {
	return fallback
}

func (s *fakeShader) SetMat4(name string, m mgl32.Mat4) {
	if name == UniformModel {
		s.models = append(s.models, m)
	}
	s.UniformRecorder.SetMat4(name, m)
}

type fixture struct {
	scene   Scene
	r       renderer.Renderer
	backend *fakeBackend
	lit     *fakeShader
	lamp    *fakeShader
}

func matApprox(a, b mgl32.Mat4) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-6 {
			return false
		}
	}
	return true
}

func vecApprox(a, b mgl32.Vec3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-6 {
			return false
		}
	}
	return true
}

func newFixture(t *testing.T, lightType light.LightType, positions [][3]float32, options ...SceneBuilderOption) *fixture {
	t.Helper()
	f := &fixture{
		backend: &fakeBackend{},
		lit:     newFakeShader(DefaultLitShaderKey),
		lamp:    newFakeShader(DefaultLampShaderKey),
	}
	r, err := renderer.NewRenderer(renderer.BackendTypeOpenGL, renderer.WithBackend(f.backend), renderer.WithShader(f.lit), renderer.WithShader(f.lamp))
	if err != nil {
		t.Fatalf("unexpected renderer error: %v", err)
	}
	f.r = r

	cube := model.NewCube("cube")
	l := light.NewLight(lightType, light.WithPosition(1, 1, -2), light.WithColor(1, 0.5, 0.25))
	opts := []SceneBuilderOption{
		WithLight(l),
		WithLamp(NewLamp(cube, l)),
		WithObjects(NewCubeField(cube, positions)...),
	}
	f.scene = NewScene("test", camera.NewCamera(), camera.NewLens(), append(opts, options...)...)
	return f
}

func (f *fixture) frameDrawCalls() int {
	f.r.BeginFrame()
	return f.r.DrawCalls()
}

func TestDrawUniformContract(t *testing.T) {
	f := newFixture(t, light.LightTypeSpot, [][3]float32{{0, 0, -5}, {2, 0, -8}})
	if err := f.scene.Draw(f.r); err != nil {
		t.Fatalf("unexpected draw error: %v", err)
	}

	for _, name := range []string{
		UniformModel, UniformView, UniformProjection, UniformCameraPos,
		"material.diffuse", "material.specular", "material.shininess",
		"light.kind", "light.position", "light.direction", "light.ambient", "light.diffuse",
		"light.specular", "light.constant", "light.linear", "light.quadratic", "light.cutOff", "light.outerCutOff",
	} {
		if !f.lit.Has(name) {
			t.Errorf("lit program missing uniform %q", name)
		}
	}
	for _, name := range []string{UniformModel, UniformView, UniformProjection, UniformLightColor} {
		if !f.lamp.Has(name) {
			t.Errorf("lamp program missing uniform %q", name)
		}
	}

	if f.lit.Ints["material.diffuse"] != 0 || f.lit.Ints["material.specular"] != 1 {
		t.Error("material samplers should use texture units 0 and 1")
	}
	if f.lit.Floats["material.shininess"] != material.DefaultShininess {
		t.Errorf("expected shininess %v, got %v", material.DefaultShininess, f.lit.Floats["material.shininess"])
	}
	if f.lit.Mat4s[UniformView] != f.scene.Camera().View() {
		t.Error("view uniform should match the camera view")
	}
	if f.lit.Mat4s[UniformProjection] != f.scene.Lens().Projection() {
		t.Error("projection uniform should match the lens projection")
	}
	if f.lamp.Vec3s[UniformLightColor] != (mgl32.Vec3{1, 0.5, 0.25}) {
		t.Errorf("unexpected lamp color %v", f.lamp.Vec3s[UniformLightColor])
	}

	expectedLamp := mgl32.Translate3D(1, 1, -2).Mul4(mgl32.Scale3D(DefaultLampScale, DefaultLampScale, DefaultLampScale))
	if !matApprox(f.lamp.Mat4s[UniformModel], expectedLamp) {
		t.Errorf("unexpected lamp model matrix %v", f.lamp.Mat4s[UniformModel])
	}

	if len(f.lit.models) != 2 {
		t.Errorf("expected 2 lit model matrices, got %d", len(f.lit.models))
	}
	if f.backend.clears != 1 {
		t.Errorf("expected one clear per frame, got %d", f.backend.clears)
	}
	if got := f.frameDrawCalls(); got != 3 {
		t.Errorf("expected 3 draw calls, got %d", got)
	}
}

func TestDrawSkipsLampForDirectionalLight(t *testing.T) {
	f := newFixture(t, light.LightTypeDirectional, [][3]float32{{0, 0, -5}})
	if err := f.scene.Draw(f.r); err != nil {
		t.Fatalf("unexpected draw error: %v", err)
	}
	if f.lamp.used != 0 {
		t.Error("lamp program should not be used for a directional light")
	}
	if got := f.frameDrawCalls(); got != 1 {
		t.Errorf("expected 1 draw call, got %d", got)
	}
}

func TestDrawFrustumCulling(t *testing.T) {
	positions := [][3]float32{{0, 0, -5}, {0, 0, 10}, {0, 0, -200}, {50, 0, -5}}

	f := newFixture(t, light.LightTypePoint, positions)
	if err := f.scene.Draw(f.r); err != nil {
		t.Fatalf("unexpected draw error: %v", err)
	}
	if drawn, culled := f.scene.Stats(); drawn != 1 || culled != 3 {
		t.Errorf("expected 1 drawn and 3 culled, got %d and %d", drawn, culled)
	}

	f.scene.SetCullingDisabled(true)
	if err := f.scene.Draw(f.r); err != nil {
		t.Fatalf("unexpected draw error: %v", err)
	}
	if drawn, culled := f.scene.Stats(); drawn != 4 || culled != 0 {
		t.Errorf("expected 4 drawn with culling disabled, got %d and %d", drawn, culled)
	}
}

func TestDrawSkipsDisabledObjects(t *testing.T) {
	f := newFixture(t, light.LightTypePoint, [][3]float32{{0, 0, -5}, {1, 0, -5}})
	f.scene.Objects()[0].SetEnabled(false)
	if err := f.scene.Draw(f.r); err != nil {
		t.Fatalf("unexpected draw error: %v", err)
	}
	if drawn, _ := f.scene.Stats(); drawn != 1 {
		t.Errorf("expected 1 drawn, got %d", drawn)
	}
}

func TestDrawMissingShader(t *testing.T) {
	f := newFixture(t, light.LightTypePoint, nil, WithShaderKeys("missing", DefaultLampShaderKey))
	if err := f.scene.Draw(f.r); err == nil {
		t.Error("expected error for unregistered lit program")
	}

	g := newFixture(t, light.LightTypePoint, nil, WithShaderKeys(DefaultLitShaderKey, "missing"))
	if err := g.scene.Draw(g.r); err == nil {
		t.Error("expected error for unregistered lamp program")
	}
}

func TestNewCubeField(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {2, 5, -15}, {-1.5, -2.2, -2.5}}
	objects := NewCubeField(model.NewCube("cube"), positions)
	if len(objects) != len(positions) {
		t.Fatalf("expected %d objects, got %d", len(positions), len(objects))
	}
	for i, obj := range objects {
		if obj.Angle() != 20*float32(i) {
			t.Errorf("[%d] expected angle %v, got %v", i, 20*float32(i), obj.Angle())
		}
		if !vecApprox(obj.RotationAxis(), CubeRotationAxis.Normalize()) {
			t.Errorf("[%d] unexpected axis %v", i, obj.RotationAxis())
		}
		p := positions[i]
		if obj.Position() != (mgl32.Vec3{p[0], p[1], p[2]}) {
			t.Errorf("[%d] unexpected position %v", i, obj.Position())
		}
	}
}

func TestRegistry(t *testing.T) {
	s := NewScene("registry", camera.NewCamera(), camera.NewLens())
	a := s.Add(game_object.NewGameObject())
	b := s.Add(game_object.NewGameObject(game_object.WithID(10)))
	c := s.Add(game_object.NewGameObject())

	if a != 1 || b != 10 || c != 11 {
		t.Errorf("unexpected ids %d %d %d", a, b, c)
	}
	if s.Count() != 3 || s.Get(10) == nil {
		t.Errorf("unexpected registry state: count %d", s.Count())
	}

	s.Remove(10)
	s.Remove(99)
	if s.Count() != 2 || s.Get(10) != nil {
		t.Error("remove did not delete the object")
	}

	objs := s.Objects()
	if objs[0].ID() != 1 || objs[1].ID() != 11 {
		t.Errorf("objects should be in id order, got %d %d", objs[0].ID(), objs[1].ID())
	}
}

func TestUpdateAndLampFollowsLight(t *testing.T) {
	cube := model.NewCube("cube")
	l := light.NewLight(light.LightTypePoint, light.WithPosition(1, 1, 2))
	lamp := NewLamp(cube, l)
	spinner := game_object.NewGameObject(game_object.WithModel(cube), game_object.WithRotation(mgl32.Vec3{0, 1, 0}, 0), game_object.WithRotationSpeed(90))
	s := NewScene("update", camera.NewCamera(), camera.NewLens(), WithLight(l), WithLamp(lamp), WithObjects(spinner))

	s.Update(0.5)
	if math.Abs(float64(spinner.Angle()-45)) > 1e-5 {
		t.Errorf("expected angle 45, got %v", spinner.Angle())
	}

	lamp.SetPosition(0, 3, 0)
	if s.Light().Position() != (mgl32.Vec3{0, 3, 0}) {
		t.Errorf("light should follow the lamp, got %v", s.Light().Position())
	}

	replacement := light.NewLight(light.LightTypeSpot)
	s.SetLight(replacement)
	if replacement.Position() != (mgl32.Vec3{0, 3, 0}) || lamp.Light() != replacement {
		t.Error("lamp should be re-attached to the replacement light")
	}
}
