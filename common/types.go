// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"image"
	"image/color"
)

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
// Rows are stored bottom-up so the first row matches OpenGL's texture origin.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// Valid reports whether the pixel buffer is large enough for the declared dimensions.
//
// Returns:
//   - bool: true if Width and Height are non-zero and Pixels holds Width*Height*4 bytes
func (t TextureStagingData) Valid() bool {
	return t.Width > 0 && t.Height > 0 && len(t.Pixels) == int(t.Width*t.Height*4)
}

// At returns the color of the texel at (x, y), where y = 0 is the bottom row.
// Used for inspection and tests; returns a zero color when out of bounds.
//
// Parameters:
//   - x, y: texel coordinates
//
// Returns:
//   - color.RGBA: the texel color
func (t TextureStagingData) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= int(t.Width) || y >= int(t.Height) {
		return color.RGBA{}
	}
	i := (y*int(t.Width) + x) * 4
	return color.RGBA{R: t.Pixels[i], G: t.Pixels[i+1], B: t.Pixels[i+2], A: t.Pixels[i+3]}
}

// SolidTexture creates a width×height texture filled with a single color.
//
// Parameters:
//   - width, height: texture dimensions in pixels
//   - c: fill color
//
// Returns:
//   - TextureStagingData: the filled texture
func SolidTexture(width, height uint32, c color.RGBA) TextureStagingData {
	pix := make([]byte, int(width*height*4))
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
	return TextureStagingData{Pixels: pix, Width: width, Height: height}
}

// FlipRGBA copies an RGBA image into staging data with the rows reversed, so that
// the image's top row becomes the last row in memory.
//
// Parameters:
//   - img: source image in RGBA form
//
// Returns:
//   - TextureStagingData: the flipped pixel data
func FlipRGBA(img *image.RGBA) TextureStagingData {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rowLen := w * 4
	pix := make([]byte, rowLen*h)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		copy(pix[(h-1-y)*rowLen:], src)
	}
	return TextureStagingData{Pixels: pix, Width: uint32(w), Height: uint32(h)}
}

// WrapMode mirrors the OpenGL texture wrap parameters.
type WrapMode int32

// FilterMode mirrors the OpenGL texture filter parameters.
type FilterMode int32

// GL enum values for wrap and filter modes. They are duplicated here so that
// packages without a GL context (config, loader, tests) can describe samplers.
const (
	WrapRepeat         WrapMode = 0x2901
	WrapClampToEdge    WrapMode = 0x812F
	WrapMirroredRepeat WrapMode = 0x8370

	FilterNearest              FilterMode = 0x2600
	FilterLinear               FilterMode = 0x2601
	FilterLinearMipmapLinear   FilterMode = 0x2703
	FilterNearestMipmapNearest FilterMode = 0x2700
)

// SamplerStagingData holds the sampling configuration applied to a texture at upload time.
type SamplerStagingData struct {
	// WrapS and WrapT specify the addressing mode for texture coordinates outside the [0, 1] range.
	WrapS, WrapT WrapMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter FilterMode
	// Mipmaps requests mipmap generation after upload.
	Mipmaps bool
}

// DefaultSampler returns repeat wrapping with trilinear minification, the
// settings used by the LearnOpenGL texture helper.
//
// Returns:
//   - SamplerStagingData: the default sampler
func DefaultSampler() SamplerStagingData {
	return SamplerStagingData{
		WrapS:     WrapRepeat,
		WrapT:     WrapRepeat,
		MagFilter: FilterLinear,
		MinFilter: FilterLinearMipmapLinear,
		Mipmaps:   true,
	}
}
