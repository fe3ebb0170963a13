package common

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestClamp(t *testing.T) {
	testCases := []struct {
		v, lo, hi, expected float32
	}{
		{0, -89, 89, 0},
		{120, -89, 89, 89},
		{-120, -89, 89, -89},
		{5, 10, 1, 5},
		{0, 10, 1, 1},
	}

	for i, tt := range testCases {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("[%d] Clamp(%v, %v, %v) = %v, expected %v", i, tt.v, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "b", "c"); got != "b" {
		t.Errorf("expected b, got %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestFlipRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	top := color.RGBA{R: 255, A: 255}
	bottom := color.RGBA{B: 255, A: 255}
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, top)
		img.SetRGBA(x, 2, bottom)
	}

	tex := FlipRGBA(img)
	if !tex.Valid() {
		t.Fatalf("flipped texture is not valid: %dx%d, %d bytes", tex.Width, tex.Height, len(tex.Pixels))
	}
	if got := tex.At(0, 0); got != bottom {
		t.Errorf("first row expected %v, got %v", bottom, got)
	}
	if got := tex.At(1, 2); got != top {
		t.Errorf("last row expected %v, got %v", top, got)
	}
	if got := tex.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("out of bounds expected zero color, got %v", got)
	}
}

func TestSolidTexture(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	tex := SolidTexture(1, 1, white)
	if !tex.Valid() || tex.At(0, 0) != white {
		t.Errorf("unexpected solid texture %+v", tex)
	}
}

func TestFrustumContainsSphere(t *testing.T) {
	proj := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	f := ExtractFrustum(proj.Mul4(view))

	testCases := []struct {
		center   mgl32.Vec3
		radius   float32
		expected bool
	}{
		{mgl32.Vec3{0, 0, -5}, 0.5, true},
		{mgl32.Vec3{0, 0, 5}, 0.5, false},
		{mgl32.Vec3{0, 0, -200}, 0.5, false},
		{mgl32.Vec3{50, 0, -5}, 0.5, false},
		{mgl32.Vec3{0, 0, 0.5}, 1, true},
		{mgl32.Vec3{0, 0, -99.5}, 1, true},
	}

	for i, tt := range testCases {
		if got := f.ContainsSphere(tt.center, tt.radius); got != tt.expected {
			t.Errorf("[%d] ContainsSphere(%v, %v) = %v, expected %v", i, tt.center, tt.radius, got, tt.expected)
		}
	}

	for i, p := range f.Planes {
		if l := p.Normal.Len(); l < 0.999 || l > 1.001 {
			t.Errorf("plane %d normal not unit length: %f", i, l)
		}
	}
}
