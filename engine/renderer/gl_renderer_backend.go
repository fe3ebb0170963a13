package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// glRendererBackend implements RendererBackend on OpenGL 4.1 core.
type glRendererBackend struct {
	version string
}

var _ RendererBackend = &glRendererBackend{}

func newGLRendererBackend() *glRendererBackend {
	return &glRendererBackend{}
}

func (b *glRendererBackend) Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize OpenGL")
	}
	b.version = gl.GoStr(gl.GetString(gl.VERSION))
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (b *glRendererBackend) Version() string {
	return b.version
}

func (b *glRendererBackend) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *glRendererBackend) Clear(color [4]float32) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *glRendererBackend) Release() {}
