package renderer

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/shader"
	"github.com/pkg/errors"
)

// Drawable is anything that can issue its own draw command against the currently bound program.
type Drawable interface {
	Draw()
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	shaderCache map[string]shader.Shader

	backendType RendererBackendType
	backend     RendererBackend

	clearColor    [4]float32
	width, height int
	drawCalls     int
	lastDrawCalls int
}

// Renderer defines the interface for the rendering system.
//
// The Renderer owns the per-frame GL state (viewport, clear color), a cache of linked
// shader programs keyed by shader key, and a per-frame draw call counter. It is created
// after a GL context has been made current and must only be used from that thread.
type Renderer interface {
	// Shader retrieves the cached Shader associated with the given key, or nil if none is registered.
	//
	// Parameters:
	//   - key: the unique identifier of the shader
	//
	// Returns:
	//   - shader.Shader: the shader, or nil if not found
	Shader(key string) shader.Shader

	// Shaders retrieves a copy of the shader cache.
	//
	// Returns:
	//   - map[string]shader.Shader: shaders keyed by shader key
	Shaders() map[string]shader.Shader

	// RegisterShaders caches one or more linked shaders by key.
	// Shaders whose keys are already registered are skipped.
	//
	// Parameters:
	//   - shaders: the shaders to register
	RegisterShaders(shaders ...shader.Shader)

	// UseShader makes the shader with the given key current and returns it for uniform updates.
	//
	// Parameters:
	//   - key: the unique identifier of the shader
	//
	// Returns:
	//   - shader.Shader: the bound shader
	//   - error: if no shader is registered under key
	UseShader(key string) (shader.Shader, error)

	// Resize sets the viewport to the new framebuffer size. Non-positive sizes
	// (e.g. a minimized window) are ignored.
	//
	// Parameters:
	//   - width: the new framebuffer width in pixels
	//   - height: the new framebuffer height in pixels
	Resize(width, height int)

	// Size returns the last framebuffer size passed to Resize.
	//
	// Returns:
	//   - width, height: framebuffer size in pixels
	Size() (width, height int)

	// ClearColor returns the RGBA color the frame is cleared to.
	ClearColor() [4]float32

	// SetClearColor sets the RGBA color the frame is cleared to.
	//
	// Parameters:
	//   - r, g, b, a: color components in [0, 1]
	SetClearColor(r, g, b, a float32)

	// BeginFrame clears the color and depth buffers and resets the draw call counter.
	BeginFrame()

	// DrawCall issues the drawable's draw command and counts it.
	//
	// Parameters:
	//   - d: the drawable to draw with the currently bound program
	DrawCall(d Drawable)

	// DrawCalls returns the number of draw calls issued during the previous frame.
	//
	// Returns:
	//   - int: draw calls between the last two BeginFrame calls
	DrawCalls() int

	// Version returns the graphics API version string reported by the backend.
	Version() string

	// Release deletes every cached shader and frees backend resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer on the current GL context and initializes the backend.
//
// Parameters:
//   - backendType: the graphics API to use
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the initialized renderer
//   - error: if the backend cannot be initialized
func NewRenderer(backendType RendererBackendType, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		shaderCache: make(map[string]shader.Shader),
		backendType: backendType,
		clearColor:  [4]float32{0.14, 0.14, 0.14, 1.0},
	}

	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		switch backendType {
		case BackendTypeOpenGL:
			fallthrough
		default:
			r.backend = newGLRendererBackend()
		}
	}

	if err := r.backend.Init(); err != nil {
		return nil, errors.Wrap(err, "renderer")
	}
	log.Printf("[Renderer] OpenGL version %s", r.backend.Version())

	if r.width > 0 && r.height > 0 {
		r.backend.SetViewport(r.width, r.height)
	}
	return r, nil
}

func (r *renderer) Shader(key string) shader.Shader {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shaderCache[key]
}

func (r *renderer) Shaders() map[string]shader.Shader {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]shader.Shader, len(r.shaderCache))
	for k, s := range r.shaderCache {
		out[k] = s
	}
	return out
}

func (r *renderer) RegisterShaders(shaders ...shader.Shader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range shaders {
		if _, exists := r.shaderCache[s.Key()]; exists {
			continue
		}
		r.shaderCache[s.Key()] = s
	}
}

func (r *renderer) UseShader(key string) (shader.Shader, error) {
	r.mu.Lock()
	s, exists := r.shaderCache[key]
	r.mu.Unlock()

	if !exists {
		return nil, errors.Errorf("shader %q not found in cache", key)
	}
	s.Use()
	return s, nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
	r.backend.SetViewport(width, height)
}

func (r *renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) ClearColor() [4]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearColor
}

func (r *renderer) SetClearColor(red, green, blue, alpha float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = [4]float32{red, green, blue, alpha}
}

func (r *renderer) BeginFrame() {
	r.mu.Lock()
	r.lastDrawCalls = r.drawCalls
	r.drawCalls = 0
	color := r.clearColor
	r.mu.Unlock()

	r.backend.Clear(color)
}

func (r *renderer) DrawCall(d Drawable) {
	d.Draw()
	r.mu.Lock()
	r.drawCalls++
	r.mu.Unlock()
}

func (r *renderer) DrawCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastDrawCalls
}

func (r *renderer) Version() string {
	return r.backend.Version()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, s := range r.shaderCache {
		s.Delete()
		delete(r.shaderCache, key)
	}
	r.backend.Release()
}
