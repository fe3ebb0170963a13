package game_object

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-lightcaster/engine/light"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func matApprox(a, b mgl32.Mat4) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tolerance {
			return false
		}
	}
	return true
}

func vecApprox(a, b mgl32.Vec3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tolerance {
			return false
		}
	}
	return true
}

func TestNewGameObjectDefaults(t *testing.T) {
	g := NewGameObject()
	if !g.Enabled() {
		t.Error("new objects should be enabled")
	}
	if g.Scale() != (mgl32.Vec3{1, 1, 1}) || g.Position() != (mgl32.Vec3{}) {
		t.Errorf("unexpected transform: pos %v scale %v", g.Position(), g.Scale())
	}
	if !matApprox(g.ModelMatrix(), mgl32.Ident4()) {
		t.Errorf("expected identity model matrix, got %v", g.ModelMatrix())
	}
}

func TestModelMatrixComposition(t *testing.T) {
	axis := mgl32.Vec3{1, 0.3, 0.5}
	g := NewGameObject(
		WithPosition(2, -1, 3),
		WithRotation(axis, 40),
		WithScale(0.5, 2, 1),
	)

	expected := mgl32.Translate3D(2, -1, 3).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(40), axis.Normalize())).
		Mul4(mgl32.Scale3D(0.5, 2, 1))
	if !matApprox(g.ModelMatrix(), expected) {
		t.Errorf("unexpected model matrix:\n%v\nexpected:\n%v", g.ModelMatrix(), expected)
	}

	origin := g.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !vecApprox(origin, mgl32.Vec3{2, -1, 3}) {
		t.Errorf("model origin should map to the position, got %v", origin)
	}
}

func TestUpdateAdvancesAngle(t *testing.T) {
	testCases := []struct {
		start, speed, dt float32
		expected         float32
	}{
		{0, 90, 0.5, 45},
		{350, 20, 1, 10},
		{10, -20, 1, 350},
		{30, 90, 0, 30},
		{30, 90, -1, 30},
	}

	for i, tt := range testCases {
		g := NewGameObject(WithRotation(mgl32.Vec3{0, 1, 0}, tt.start), WithRotationSpeed(tt.speed))
		g.Update(tt.dt)
		if math.Abs(float64(g.Angle()-tt.expected)) > 1e-4 {
			t.Errorf("[%d] expected angle %v, got %v", i, tt.expected, g.Angle())
		}
	}
}

func TestZeroAxisDisablesRotation(t *testing.T) {
	g := NewGameObject(WithPosition(1, 0, 0))
	g.SetRotation(mgl32.Vec3{}, 45)
	expected := mgl32.Translate3D(1, 0, 0)
	if !matApprox(g.ModelMatrix(), expected) {
		t.Errorf("zero axis should not rotate, got %v", g.ModelMatrix())
	}
}

func TestBoundingSphere(t *testing.T) {
	g := NewGameObject(WithModel(model.NewCube("cube")), WithPosition(1, 2, 3), WithScale(1, -4, 2))
	c, r := g.BoundingSphere()
	if c != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("unexpected center %v", c)
	}
	if math.Abs(float64(r)-4*math.Sqrt(0.75)) > tolerance {
		t.Errorf("unexpected radius %v", r)
	}

	if _, r := NewGameObject().BoundingSphere(); r != 0 {
		t.Errorf("expected zero radius without a model, got %v", r)
	}
}

func TestAttachedLightFollowsPosition(t *testing.T) {
	l := light.NewLight(light.LightTypePoint)
	g := NewGameObject(WithLight(l), WithPosition(1, 1, 2))
	if l.Position() != (mgl32.Vec3{1, 1, 2}) {
		t.Errorf("light should start at the object position, got %v", l.Position())
	}

	g.SetPosition(-3, 0, 0)
	if l.Position() != (mgl32.Vec3{-3, 0, 0}) {
		t.Errorf("light should follow SetPosition, got %v", l.Position())
	}

	g.SetLight(nil)
	g.SetPosition(5, 5, 5)
	if l.Position() != (mgl32.Vec3{-3, 0, 0}) {
		t.Errorf("detached light should not move, got %v", l.Position())
	}
}
