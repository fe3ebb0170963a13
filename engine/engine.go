package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/camera"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/model"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/profiler"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/scene"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/window"
	"github.com/pkg/errors"
)

// DefaultMaxFrameDelta caps the delta time of a single frame in seconds.
const DefaultMaxFrameDelta = float32(0.25)

// engine implements the Engine interface.
// Everything runs on the thread that owns the window and GL context.
type engine struct {
	window     window.Window
	renderer   renderer.Renderer
	scene      scene.Scene
	controller camera.CameraController
	clock      *FrameClock

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderCallback   func(deltaTime float32)
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	frames           uint64
}

// Engine is the main entry point for the engine.
// It runs the single-threaded frame loop: timing, input, animation, drawing and
// presentation, until the window is asked to close.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer drawing the scene.
	Renderer() renderer.Renderer

	// Scene returns the scene drawn every frame.
	Scene() scene.Scene

	// Controller returns the controller driving the scene camera.
	Controller() camera.CameraController

	// Clock returns the frame clock.
	Clock() *FrameClock

	// Frames returns the number of frames completed.
	Frames() uint64

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Profiler returns the frame profiler.
	Profiler() *profiler.Profiler

	// SetRenderCallback registers a function called after the scene is drawn and
	// before the buffers are swapped.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default). Vsync applies independently.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Frame runs one iteration of the loop.
	//
	// Returns:
	//   - error: if the scene cannot be drawn
	Frame() error

	// Run runs frames until the window closes (blocks).
	//
	// Returns:
	//   - error: the first frame error, after which the loop stops
	Run() error

	// Quit asks the window to close; Run returns after the current frame.
	// Safe to call multiple times.
	Quit()

	// Release frees models, material textures, shaders and the window.
	Release()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the provided options. A window, renderer and
// scene are required. Without WithController, a controller is created for the
// scene camera and lens. The renderer viewport and lens aspect follow the window's
// framebuffer size.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: if a required component is missing
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		clock:    NewFrameClock(DefaultMaxFrameDelta),
		profiler: profiler.NewProfiler(profiler.DefaultInterval),
	}

	for _, opt := range options {
		opt(e)
	}

	switch {
	case e.window == nil:
		return nil, errors.New("engine requires a window")
	case e.renderer == nil:
		return nil, errors.New("engine requires a renderer")
	case e.scene == nil:
		return nil, errors.New("engine requires a scene")
	}
	if e.controller == nil {
		e.controller = camera.NewCameraController(e.scene.Camera(), camera.WithLens(e.scene.Lens()))
	}

	e.window.SetResizeCallback(e.resize)
	e.resize(e.window.Width(), e.window.Height())

	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Clock() *FrameClock {
	return e.clock
}

func (e *engine) Frames() uint64 {
	return e.frames
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

func (e *engine) Frame() error {
	dt := e.clock.Advance(e.window.Time())
	e.scene.Camera().SetDeltaTime(dt)

	if e.window.KeyPressed(common.KeyEsc) {
		e.window.RequestClose()
	}

	e.controller.Update(e.window)
	e.window.SetCursorHidden(e.controller.Dragging())

	e.scene.Update(dt)
	if err := e.scene.Draw(e.renderer); err != nil {
		return err
	}

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(dt)
	}

	e.window.SwapBuffers()
	e.window.PollEvents()
	e.frames++
	return nil
}

func (e *engine) Run() error {
	for e.window.IsRunning() {
		start := time.Now()
		if err := e.Frame(); err != nil {
			return errors.Wrapf(err, "frame %d", e.frames)
		}

		// Frame rate limiting
		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(start); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
	log.Printf("[Engine] window closed after %d frames", e.frames)
	return nil
}

func (e *engine) Quit() {
	e.window.RequestClose()
}

func (e *engine) Release() {
	models := make(map[model.Model]struct{})
	for _, obj := range e.scene.Objects() {
		if m := obj.Model(); m != nil {
			models[m] = struct{}{}
		}
	}
	if lamp := e.scene.Lamp(); lamp != nil && lamp.Model() != nil {
		models[lamp.Model()] = struct{}{}
	}
	for m := range models {
		m.Delete()
	}
	if mat := e.scene.Material(); mat != nil {
		mat.Delete()
	}
	e.renderer.Release()
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] close window: %v", err)
	}
}

// resize keeps the viewport and projection in step with the framebuffer.
func (e *engine) resize(width, height int) {
	e.renderer.Resize(width, height)
	e.scene.Lens().SetAspect(width, height)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
