package loader

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// twoRowImage returns a 2x2 image whose top row is red and bottom row is blue.
func twoRowImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	return img
}

func writeImage(t *testing.T, dir, name string, encode func(f *os.File) error) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
}

func newTestLoader(t *testing.T, options ...LoaderBuilderOption) (Loader, string) {
	t.Helper()
	dir := t.TempDir()
	l, err := NewLoader(BackendTypeOverlay, append([]LoaderBuilderOption{WithDirs(dir)}, options...)...)
	if err != nil {
		t.Fatalf("unexpected loader error: %v", err)
	}
	return l, dir
}

func TestEmbeddedShaders(t *testing.T) {
	l, err := NewLoader(BackendTypeEmbedded)
	if err != nil {
		t.Fatalf("unexpected loader error: %v", err)
	}

	testCases := []struct {
		name     string
		contains string
	}{
		{CubeVertexShader, "uniform mat4 model;"},
		{CubeFragmentShader, "//@oxy:uniform light light"},
		{LampVertexShader, "layout (location = 0) in vec3 aPos;"},
		{LampFragmentShader, "uniform vec3 lightColor;"},
	}
	for _, tt := range testCases {
		src, err := l.ShaderSource(tt.name)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if !strings.Contains(src, tt.contains) {
			t.Errorf("%s: expected source to contain %q", tt.name, tt.contains)
		}
	}

	if _, err := l.ShaderSource("missing.glsl"); err == nil {
		t.Error("expected error for missing shader")
	}
	if len(l.Dirs()) != 0 {
		t.Errorf("embedded loader should not search directories, got %v", l.Dirs())
	}
}

func TestOverlayShadowsEmbedded(t *testing.T) {
	l, dir := newTestLoader(t)
	if err := os.WriteFile(filepath.Join(dir, CubeVertexShader), []byte("// override"), 0o644); err != nil {
		t.Fatal(err)
	}

	vs, fs, err := l.ShaderPair(CubeVertexShader, LampFragmentShader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vs != "// override" {
		t.Errorf("expected overlay source, got %q", vs)
	}
	if !strings.Contains(fs, "lightColor") {
		t.Error("expected embedded fallback for the fragment stage")
	}

	if _, _, err := l.ShaderPair(CubeVertexShader, "nope.glsl"); err == nil {
		t.Error("expected error when one stage is missing")
	}
}

func TestTextureDecodeAndFlip(t *testing.T) {
	l, dir := newTestLoader(t)
	writeImage(t, dir, "rows.png", func(f *os.File) error { return png.Encode(f, twoRowImage()) })
	writeImage(t, dir, "rows.bmp", func(f *os.File) error { return bmp.Encode(f, twoRowImage()) })

	for _, name := range []string{"rows.png", "rows.bmp"} {
		tex, err := l.Texture(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if tex.Width != 2 || tex.Height != 2 || !tex.Valid() {
			t.Fatalf("%s: unexpected size %dx%d", name, tex.Width, tex.Height)
		}
		if tex.At(0, 0) != blue || tex.At(1, 1) != red {
			t.Errorf("%s: rows not flipped: bottom %v top %v", name, tex.At(0, 0), tex.At(1, 1))
		}
	}

	if len(l.Textures()) != 2 {
		t.Errorf("expected 2 cached textures, got %d", len(l.Textures()))
	}
}

func TestTextureFallback(t *testing.T) {
	l, dir := newTestLoader(t)
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"missing.png", "broken.png"} {
		tex, err := l.Texture(name)
		if err != nil {
			t.Fatalf("%s: expected fallback, got error %v", name, err)
		}
		if tex.Width != 1 || tex.Height != 1 || tex.At(0, 0) != white {
			t.Errorf("%s: expected 1x1 white fallback, got %dx%d %v", name, tex.Width, tex.Height, tex.At(0, 0))
		}
	}
}

func TestStrictTextures(t *testing.T) {
	l, dir := newTestLoader(t, WithStrictTextures(true))
	if _, err := l.Texture("missing.png"); err == nil {
		t.Error("expected error for missing texture in strict mode")
	}

	writeImage(t, dir, "ok.png", func(f *os.File) error { return png.Encode(f, twoRowImage()) })
	if err := l.Preload("ok.png", "missing.png"); err == nil {
		t.Error("expected preload error in strict mode")
	}
	if _, ok := l.Textures()["ok.png"]; !ok {
		t.Error("successful textures should still be cached")
	}
}

func TestPreload(t *testing.T) {
	l, dir := newTestLoader(t, WithWorkers(2))
	names := []string{"a.png", "b.png", "c.png", "d.png"}
	for _, name := range names {
		writeImage(t, dir, name, func(f *os.File) error { return png.Encode(f, twoRowImage()) })
	}

	if err := l.Preload(names...); err != nil {
		t.Fatalf("unexpected preload error: %v", err)
	}
	cache := l.Textures()
	for _, name := range names {
		if tex, ok := cache[name]; !ok || tex.Width != 2 {
			t.Errorf("%s not decoded by preload", name)
		}
	}

	if err := l.Preload(); err != nil {
		t.Errorf("empty preload should succeed, got %v", err)
	}
}

func TestUnknownBackend(t *testing.T) {
	if _, err := NewLoader(LoaderBackendType(9)); err == nil {
		t.Error("expected error for unknown backend type")
	}
}
