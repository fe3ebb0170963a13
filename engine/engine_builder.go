package engine

import (
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/camera"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/scene"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine polls, draws into and presents.
//
// Parameters:
//   - w: a created Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer created on the window's GL context.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithScene sets the scene drawn every frame.
//
// Parameters:
//   - s: the Scene to draw
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithController sets the controller driving the scene camera from window input.
//
// Parameters:
//   - cc: the camera controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(cc camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = cc
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}

// WithMaxFrameDelta sets the largest delta time a single frame may report.
// Pass 0 to disable the cap.
//
// Parameters:
//   - seconds: the cap in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxFrameDelta(seconds float32) EngineBuilderOption {
	return func(e *engine) {
		e.clock = NewFrameClock(seconds)
	}
}
