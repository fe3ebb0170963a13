package renderer

import "github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/shader"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithShader pre-registers a single Shader in the renderer's shader cache under its key.
//
// Parameters:
//   - s: the Shader to cache
//
// Returns:
//   - RendererBuilderOption: a function that applies the shader option to a renderer
func WithShader(s shader.Shader) RendererBuilderOption {
	return func(r *renderer) {
		r.shaderCache[s.Key()] = s
	}
}

// WithClearColor sets the RGBA color each frame is cleared to.
//
// Parameters:
//   - red, green, blue, alpha: color components in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(red, green, blue, alpha float32) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = [4]float32{red, green, blue, alpha}
	}
}

// WithViewport sets the initial framebuffer size applied right after the backend is initialized.
//
// Parameters:
//   - width, height: framebuffer size in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the viewport option to a renderer
func WithViewport(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.width, r.height = width, height
	}
}

// WithBackend replaces the graphics API backend. Intended for headless use and tests.
//
// Parameters:
//   - backend: the backend to drive
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(backend RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = backend
	}
}
