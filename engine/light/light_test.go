package light

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(LightTypePoint, WithPosition(1, 1, 2))

	if l.Position() != (mgl32.Vec3{1, 1, 2}) {
		t.Errorf("unexpected position %v", l.Position())
	}
	if l.Ambient() != (mgl32.Vec3{0.2, 0.2, 0.2}) || l.Diffuse() != (mgl32.Vec3{0.5, 0.5, 0.5}) || l.Specular() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("unexpected Phong terms %v %v %v", l.Ambient(), l.Diffuse(), l.Specular())
	}
	if l.Constant() != 1 || l.Linear() != 0.09 || l.Quadratic() != 0.032 {
		t.Errorf("unexpected attenuation %v %v %v", l.Constant(), l.Linear(), l.Quadratic())
	}
	if !l.Enabled() || !l.HasMarker() {
		t.Error("point light should be enabled with a marker")
	}
}

func TestAttenuation(t *testing.T) {
	testCases := []struct {
		lightType LightType
		distance  float32
		expected  float32
	}{
		{LightTypePoint, 0, 1},
		{LightTypePoint, 10, 1 / (1 + 0.9 + 3.2)},
		{LightTypeSpot, 50, 1 / (1 + 4.5 + 80)},
		{LightTypeDirectional, 1000, 1},
	}

	for i, tt := range testCases {
		l := NewLight(tt.lightType)
		if got := l.Attenuation(tt.distance); math.Abs(float64(got-tt.expected)) > 1e-6 {
			t.Errorf("[%d] Attenuation(%v) = %v, expected %v", i, tt.distance, got, tt.expected)
		}
	}

	l := NewLight(LightTypePoint)
	prev := l.Attenuation(0)
	for d := float32(1); d <= 100; d++ {
		a := l.Attenuation(d)
		if a > prev || a <= 0 {
			t.Fatalf("attenuation not decreasing at %v: %v after %v", d, a, prev)
		}
		prev = a
	}
}

func TestSpotCone(t *testing.T) {
	l := NewLight(LightTypeSpot, WithSpotCone(30, 20))
	if l.InnerCone() <= l.OuterCone() {
		t.Errorf("inner cosine %v should exceed outer %v", l.InnerCone(), l.OuterCone())
	}
	if math.Abs(float64(l.InnerCone())-math.Cos(20*math.Pi/180)) > 1e-6 {
		t.Errorf("unexpected inner cosine %v", l.InnerCone())
	}

	d := NewLight(LightTypeSpot)
	if math.Abs(float64(d.InnerCone())-math.Cos(12.5*math.Pi/180)) > 1e-6 {
		t.Errorf("unexpected default inner cosine %v", d.InnerCone())
	}
}

func TestApplyWritesLightStruct(t *testing.T) {
	l := NewLight(LightTypeSpot,
		WithPosition(1, 2, 3),
		WithDirection(0, 0, -2),
		WithColor(1, 0.5, 0),
	)
	rec := common.NewUniformRecorder()
	l.Apply(rec, "light")

	for _, field := range []string{
		UniformKind, UniformPosition, UniformDirection, UniformAmbient, UniformDiffuse,
		UniformSpecular, UniformConstant, UniformLinear, UniformQuadratic, UniformCutOff, UniformOuterCutOff,
	} {
		if !rec.Has("light." + field) {
			t.Errorf("missing uniform light.%s", field)
		}
	}
	if rec.Ints["light.kind"] != int32(LightTypeSpot) {
		t.Errorf("expected kind %d, got %d", LightTypeSpot, rec.Ints["light.kind"])
	}
	if rec.Vec3s["light.direction"] != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("direction should be normalized, got %v", rec.Vec3s["light.direction"])
	}
	if rec.Vec3s["light.diffuse"] != (mgl32.Vec3{0.5, 0.25, 0}) {
		t.Errorf("diffuse should be tinted, got %v", rec.Vec3s["light.diffuse"])
	}
}

func TestApplyDisabledLight(t *testing.T) {
	l := NewLight(LightTypePoint, WithEnabled(false))
	rec := common.NewUniformRecorder()
	l.Apply(rec, "")

	if l.HasMarker() {
		t.Error("disabled light should not have a marker")
	}
	for _, field := range []string{UniformAmbient, UniformDiffuse, UniformSpecular} {
		if rec.Vec3s[field] != (mgl32.Vec3{}) {
			t.Errorf("expected zero %s, got %v", field, rec.Vec3s[field])
		}
	}
}

func TestParseLightType(t *testing.T) {
	for _, lt := range []LightType{LightTypeDirectional, LightTypePoint, LightTypeSpot} {
		got, ok := ParseLightType(lt.String())
		if !ok || got != lt {
			t.Errorf("round trip of %v failed: %v %v", lt, got, ok)
		}
	}
	if _, ok := ParseLightType("area"); ok {
		t.Error("expected unknown light type to fail")
	}
}
