// Package texture uploads decoded RGBA images to OpenGL 2D textures.
package texture

import (
	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// texture is the implementation of the Texture interface.
type texture struct {
	name   string
	handle uint32
	width  uint32
	height uint32
}

// Texture defines the interface for a GPU-resident 2D texture.
type Texture interface {
	// Name returns the asset name the texture was loaded from.
	Name() string

	// Handle returns the GL texture object name.
	Handle() uint32

	// Size returns the texture dimensions in texels.
	//
	// Returns:
	//   - width, height: dimensions in texels
	Size() (width, height uint32)

	// Bind makes the texture active on the given texture unit.
	//
	// Parameters:
	//   - unit: the texture unit index (0 for GL_TEXTURE0)
	Bind(unit uint32)

	// Delete releases the GL texture object.
	Delete()
}

var _ Texture = &texture{}

// NewTexture uploads staging data as an RGBA8 texture with the given sampler state.
// Must be called on the thread that owns the GL context.
//
// Parameters:
//   - name: the asset name, used in errors and logs
//   - data: bottom-up RGBA pixels
//   - sampler: wrap and filter settings
//
// Returns:
//   - Texture: the uploaded texture
//   - error: if the staging data is malformed
func NewTexture(name string, data common.TextureStagingData, sampler common.SamplerStagingData) (Texture, error) {
	if !data.Valid() {
		return nil, errors.Errorf("texture %s: invalid staging data %dx%d with %d bytes", name, data.Width, data.Height, len(data.Pixels))
	}

	t := &texture{name: name, width: data.Width, height: data.Height}
	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(data.Width), int32(data.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data.Pixels))
	if sampler.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(sampler.WrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(sampler.WrapT))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(sampler.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(sampler.MagFilter))

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (t *texture) Name() string {
	return t.name
}

func (t *texture) Handle() uint32 {
	return t.handle
}

func (t *texture) Size() (width, height uint32) {
	return t.width, t.height
}

func (t *texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
}

func (t *texture) Delete() {
	if t.handle != 0 {
		gl.DeleteTextures(1, &t.handle)
		t.handle = 0
	}
}
