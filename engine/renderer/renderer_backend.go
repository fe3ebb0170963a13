package renderer

// RendererBackendType identifies the graphics API implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeOpenGL selects the OpenGL 4.1 core backend.
	BackendTypeOpenGL RendererBackendType = iota
)

// RendererBackend is the set of graphics API calls the Renderer issues.
// All methods must be called on the thread that owns the GL context.
type RendererBackend interface {
	// Init loads the API entry points for the current context and applies the
	// fixed state used by every frame (depth testing).
	//
	// Returns:
	//   - error: if the entry points cannot be loaded
	Init() error

	// Version returns a human readable API version string, available after Init.
	Version() string

	// SetViewport maps normalized device coordinates to a width x height framebuffer.
	SetViewport(width, height int)

	// Clear clears the color and depth buffers.
	//
	// Parameters:
	//   - color: RGBA clear color
	Clear(color [4]float32)

	// Release frees backend-owned resources.
	Release()
}
