package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/shader"
	"github.com/pkg/errors"
)

type fakeBackend struct {
	initErr   error
	viewports [][2]int
	clears    [][4]float32
	released  bool
}

func (b *fakeBackend) Init() error                   { return b.initErr }
func (b *fakeBackend) Version() string               { return "fake 4.1" }
func (b *fakeBackend) SetViewport(width, height int) { b.viewports = append(b.viewports, [2]int{width, height}) }
func (b *fakeBackend) Clear(color [4]float32)        { b.clears = append(b.clears, color) }
func (b *fakeBackend) Release()                      { b.released = true }

type fakeShader struct {
	*common.UniformRecorder
	key     string
	used    int
	deleted bool
}

func (s *fakeShader) Key() string                           { return s.key }
func (s *fakeShader) Source(stage shader.ShaderType) string { return "" }
func (s *fakeShader) Program() uint32                       { return 1 }
func (s *fakeShader) Declarations() []shader.Annotation     { return nil }
func (s *fakeShader) UniformName(structType shader.AnnotationArg, fallback string) string {
	return fallback
}
func (s *fakeShader) Use()    { s.used++ }
func (s *fakeShader) Delete() { s.deleted = true }

type fakeDrawable struct{ draws int }

func (d *fakeDrawable) Draw() { d.draws++ }

func newTestRenderer(t *testing.T, options ...RendererBuilderOption) (Renderer, *fakeBackend) {
	t.Helper()
	b := &fakeBackend{}
	r, err := NewRenderer(BackendTypeOpenGL, append([]RendererBuilderOption{WithBackend(b)}, options...)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r, b
}

func TestNewRendererInitError(t *testing.T) {
	b := &fakeBackend{initErr: errors.New("no context")}
	if _, err := NewRenderer(BackendTypeOpenGL, WithBackend(b)); err == nil {
		t.Error("expected init error to propagate")
	}
}

func TestRendererDefaults(t *testing.T) {
	r, b := newTestRenderer(t, WithViewport(800, 600))

	if r.ClearColor() != [4]float32{0.14, 0.14, 0.14, 1} {
		t.Errorf("unexpected default clear color %v", r.ClearColor())
	}
	if len(b.viewports) != 1 || b.viewports[0] != [2]int{800, 600} {
		t.Errorf("expected initial viewport 800x600, got %v", b.viewports)
	}
	if r.Version() != "fake 4.1" {
		t.Errorf("unexpected version %q", r.Version())
	}
}

func TestRendererResize(t *testing.T) {
	r, b := newTestRenderer(t)

	r.Resize(1024, 768)
	r.Resize(0, 0)
	r.Resize(-1, 300)

	if w, h := r.Size(); w != 1024 || h != 768 {
		t.Errorf("expected 1024x768, got %dx%d", w, h)
	}
	if len(b.viewports) != 1 {
		t.Errorf("degenerate sizes should not reach the backend: %v", b.viewports)
	}
}

func TestRendererFrameAndDrawCalls(t *testing.T) {
	r, b := newTestRenderer(t, WithClearColor(0, 0, 0, 1))
	d := &fakeDrawable{}

	r.BeginFrame()
	r.DrawCall(d)
	r.DrawCall(d)
	r.DrawCall(d)
	r.BeginFrame()

	if d.draws != 3 {
		t.Errorf("expected 3 draws, got %d", d.draws)
	}
	if r.DrawCalls() != 3 {
		t.Errorf("expected 3 draw calls for the previous frame, got %d", r.DrawCalls())
	}
	if len(b.clears) != 2 || b.clears[0] != [4]float32{0, 0, 0, 1} {
		t.Errorf("unexpected clears %v", b.clears)
	}
}

func TestRendererShaderCache(t *testing.T) {
	lit := &fakeShader{UniformRecorder: common.NewUniformRecorder(), key: "cube"}
	dup := &fakeShader{UniformRecorder: common.NewUniformRecorder(), key: "cube"}
	lamp := &fakeShader{UniformRecorder: common.NewUniformRecorder(), key: "lamp"}

	r, b := newTestRenderer(t, WithShader(lit))
	r.RegisterShaders(dup, lamp)

	if r.Shader("cube") != lit {
		t.Error("registering a duplicate key should keep the first shader")
	}
	if len(r.Shaders()) != 2 {
		t.Errorf("expected 2 shaders, got %d", len(r.Shaders()))
	}

	s, err := r.UseShader("lamp")
	if err != nil || s != lamp || lamp.used != 1 {
		t.Errorf("UseShader(lamp) = %v, %v (used %d)", s, err, lamp.used)
	}
	if _, err := r.UseShader("missing"); err == nil {
		t.Error("expected error for unknown shader")
	}

	r.Release()
	if !lit.deleted || !lamp.deleted || !b.released {
		t.Error("release should delete shaders and the backend")
	}
	if len(r.Shaders()) != 0 {
		t.Error("cache should be empty after release")
	}
}
