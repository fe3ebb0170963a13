package engine

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/camera"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/input"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/model"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/scene"
)

type fakeWindow struct {
	*input.State
	times     []float64
	tick      int
	maxFrames int
	frames    int
	closed    bool
	released  bool
	hidden    bool
	swaps     int
	width     int
	height    int
	onResize  func(width, height int)
}

func newFakeWindow(maxFrames int, times ...float64) *fakeWindow {
	return &fakeWindow{State: input.NewState(), times: times, maxFrames: maxFrames, width: 800, height: 600}
}

func (w *fakeWindow) SetResizeCallback(callback func(width, height int)) { w.onResize = callback }
func (w *fakeWindow) SetCursorHidden(hidden bool)                        { w.hidden = hidden }
func (w *fakeWindow) CursorHidden() bool                                 { return w.hidden }
func (w *fakeWindow) SwapBuffers()                                       { w.swaps++ }
func (w *fakeWindow) PollEvents()                                        { w.frames++ }
func (w *fakeWindow) IsRunning() bool                                    { return !w.closed && w.frames < w.maxFrames }
func (w *fakeWindow) RequestClose()                                      { w.closed = true }
func (w *fakeWindow) Width() int                                         { return w.width }
func (w *fakeWindow) Height() int                                        { return w.height }
func (w *fakeWindow) Title() string                                      { return "fake" }

func (w *fakeWindow) Close() error {
	w.released = true
	return nil
}

func (w *fakeWindow) Time() float64 {
	if len(w.times) == 0 {
		return 0
	}
	t := w.times[min(w.tick, len(w.times)-1)]
	w.tick++
	return t
}

func (w *fakeWindow) resize(width, height int) {
	w.width, w.height = width, height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

type fakeBackend struct{ released bool }

func (b *fakeBackend) Init() error                   { return nil }
func (b *fakeBackend) Version() string               { return "fake" }
func (b *fakeBackend) SetViewport(width, height int) {}
func (b *fakeBackend) Clear(color [4]float32)        {}
func (b *fakeBackend) Release()                      { b.released = true }

type fakeShader struct {
	*common.UniformRecorder
	key     string
	deleted bool
}

func (s *fakeShader) Key() string                           { return s.key }
func (s *fakeShader) Source(stage shader.ShaderType) string { return "" }
func (s *fakeShader) Program() uint32                       { return 1 }
func (s *fakeShader) Declarations() []shader.Annotation     { return nil }
func (s *fakeShader) Use()                                  {}
func (s *fakeShader) Delete()                               { s.deleted = true }

func (s *fakeShader) UniformName(structType shader.AnnotationArg, fallback string) string {
	return fallback
}

type fixture struct {
	engine  Engine
	window  *fakeWindow
	backend *fakeBackend
	lit     *fakeShader
	cam     camera.Camera
	lens    camera.Lens
}

func newFixture(t *testing.T, win *fakeWindow, litKey string, options ...EngineBuilderOption) *fixture {
	t.Helper()
	f := &fixture{
		window:  win,
		backend: &fakeBackend{},
		lit:     &fakeShader{UniformRecorder: common.NewUniformRecorder(), key: litKey},
		cam:     camera.NewCamera(),
		lens:    camera.NewLens(),
	}
	lamp := &fakeShader{UniformRecorder: common.NewUniformRecorder(), key: scene.DefaultLampShaderKey}
	r, err := renderer.NewRenderer(renderer.BackendTypeOpenGL, renderer.WithBackend(f.backend), renderer.WithShader(f.lit), renderer.WithShader(lamp))
	if err != nil {
		t.Fatalf("unexpected renderer error: %v", err)
	}

	cube := model.NewCube("cube")
	s := scene.NewScene("test", f.cam, f.lens, scene.WithObjects(scene.NewCubeField(cube, [][3]float32{{0, 0, -5}})...))

	opts := append([]EngineBuilderOption{WithWindow(win), WithRenderer(r), WithScene(s)}, options...)
	e, err := NewEngine(opts...)
	if err != nil {
		t.Fatalf("unexpected engine error: %v", err)
	}
	f.engine = e
	return f
}

func TestFrameClock(t *testing.T) {
	testCases := []struct {
		maxDelta float32
		times    []float64
		expected []float32
	}{
		{0, []float64{5, 5.1, 5.3}, []float32{0, 0.1, 0.2}},
		{0, []float64{2, 1, 1.5}, []float32{0, 0, 0.5}},
		{0.25, []float64{0, 1, 1.1}, []float32{0, 0.25, 0.1}},
	}

	for i, tt := range testCases {
		c := NewFrameClock(tt.maxDelta)
		for j, now := range tt.times {
			if got := c.Advance(now); math.Abs(float64(got-tt.expected[j])) > 1e-5 {
				t.Errorf("[%d:%d] Advance(%v) = %v, expected %v", i, j, now, got, tt.expected[j])
			}
		}
	}
}

func TestRunMovesCameraByFrameTime(t *testing.T) {
	win := newFakeWindow(3, 0, 0.1, 0.3)
	win.SetKey(common.KeyW, true)
	f := newFixture(t, win, scene.DefaultLitShaderKey)

	if err := f.engine.Run(); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if f.engine.Frames() != 3 || win.swaps != 3 {
		t.Errorf("expected 3 frames and swaps, got %d and %d", f.engine.Frames(), win.swaps)
	}
	// 2.5 units/s for 0.3 s along -Z
	if z := f.cam.Position().Z(); math.Abs(float64(z)+0.75) > 1e-5 {
		t.Errorf("expected camera z -0.75, got %v", z)
	}
	if f.cam.DeltaTime() <= 0 {
		t.Error("camera delta time should be set from the frame clock")
	}
}

func TestEscapeClosesWindow(t *testing.T) {
	win := newFakeWindow(100, 0, 0.016)
	win.SetKey(common.KeyEsc, true)
	f := newFixture(t, win, scene.DefaultLitShaderKey)

	if err := f.engine.Run(); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if f.engine.Frames() != 1 || !win.closed {
		t.Errorf("expected escape to close after 1 frame, got %d frames", f.engine.Frames())
	}
}

func TestResizeUpdatesViewportAndLens(t *testing.T) {
	win := newFakeWindow(1)
	f := newFixture(t, win, scene.DefaultLitShaderKey)

	if w, h := f.engine.Renderer().Size(); w != 800 || h != 600 {
		t.Errorf("expected initial viewport 800x600, got %dx%d", w, h)
	}
	win.resize(1000, 500)
	if w, h := f.engine.Renderer().Size(); w != 1000 || h != 500 {
		t.Errorf("expected viewport 1000x500, got %dx%d", w, h)
	}
	if f.lens.Aspect() != 2 {
		t.Errorf("expected aspect 2, got %v", f.lens.Aspect())
	}
}

func TestDragHidesCursor(t *testing.T) {
	win := newFakeWindow(100, 0, 0.016, 0.032)
	f := newFixture(t, win, scene.DefaultLitShaderKey)

	if err := f.engine.Frame(); err != nil {
		t.Fatal(err)
	}
	if win.hidden {
		t.Error("cursor should be visible while not dragging")
	}

	win.SetMouseButton(common.MouseButtonLeft, true)
	win.MoveCursor(10, 0)
	if err := f.engine.Frame(); err != nil {
		t.Fatal(err)
	}
	if !win.hidden {
		t.Error("cursor should be hidden while dragging")
	}
	if f.cam.Yaw() == camera.DefaultYaw {
		t.Error("dragging should rotate the camera")
	}
}

func TestRunReturnsDrawErrors(t *testing.T) {
	win := newFakeWindow(10, 0, 0.016)
	f := newFixture(t, win, "not-the-lit-key")
	if err := f.engine.Run(); err == nil {
		t.Error("expected draw error to stop the loop")
	}
	if f.engine.Frames() != 0 {
		t.Errorf("expected no completed frames, got %d", f.engine.Frames())
	}
}

func TestRenderCallbackAndProfiler(t *testing.T) {
	win := newFakeWindow(4, 0, 0.5, 1.0, 1.5)
	f := newFixture(t, win, scene.DefaultLitShaderKey, WithProfiling(true), WithMaxFrameDelta(0))
	f.engine.Profiler().SetQuiet(true)

	var total float32
	f.engine.SetRenderCallback(func(dt float32) { total += dt })
	if err := f.engine.Run(); err != nil {
		t.Fatal(err)
	}
	if math.Abs(float64(total)-1.5) > 1e-5 {
		t.Errorf("expected callback to see 1.5s, got %v", total)
	}
	if f.engine.Profiler().Stats().Frames == 0 {
		t.Error("profiler should have reported once 1s accumulated")
	}
}

func TestRelease(t *testing.T) {
	win := newFakeWindow(1)
	f := newFixture(t, win, scene.DefaultLitShaderKey)
	f.engine.Release()
	if !f.lit.deleted || !f.backend.released || !win.released {
		t.Error("release should delete shaders, release the backend and close the window")
	}
}

func TestNewEngineRequiresComponents(t *testing.T) {
	if _, err := NewEngine(); err == nil {
		t.Error("expected error without a window")
	}
	if _, err := NewEngine(WithWindow(newFakeWindow(1))); err == nil {
		t.Error("expected error without a renderer")
	}
}
