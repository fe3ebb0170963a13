package game_object

import (
	"math"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-lightcaster/engine/light"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	id            uint64
	enabled       atomic.Bool
	mdl           model.Model
	attachedLight light.Light

	position      mgl32.Vec3
	scale         mgl32.Vec3
	axis          mgl32.Vec3 // unit rotation axis, zero for no rotation
	angle         float32    // degrees, kept in [0, 360)
	rotationSpeed float32    // degrees per second
}

// GameObject defines the interface for a drawable scene entity with a rigid transform.
// The transform is a translation, a rotation of Angle degrees about a fixed axis and
// a per-axis scale, composed as T · R · S.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Model returns the Model associated with this object, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Position returns the world-space translation.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Scale returns the per-axis scale factors.
	//
	// Returns:
	//   - mgl32.Vec3: the scale
	Scale() mgl32.Vec3

	// RotationAxis returns the normalized rotation axis, or a zero vector if the
	// object is not rotated.
	//
	// Returns:
	//   - mgl32.Vec3: the axis
	RotationAxis() mgl32.Vec3

	// Angle returns the current rotation angle about RotationAxis in degrees.
	//
	// Returns:
	//   - float32: the angle in [0, 360)
	Angle() float32

	// RotationSpeed returns the angular speed about RotationAxis.
	//
	// Returns:
	//   - float32: degrees per second
	RotationSpeed() float32

	// ModelMatrix composes translation, rotation and scale into the model-to-world matrix.
	//
	// Returns:
	//   - mgl32.Mat4: T · R(angle, axis) · S
	ModelMatrix() mgl32.Mat4

	// BoundingSphere returns a world-space sphere enclosing the model, used for culling.
	// The radius is the model's bounding radius scaled by the largest scale component.
	//
	// Returns:
	//   - mgl32.Vec3: sphere center
	//   - float32: sphere radius, 0 if no model is set
	BoundingSphere() (mgl32.Vec3, float32)

	// Update advances the rotation angle by RotationSpeed * dt and moves an attached
	// light to the object's position.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetModel assigns a Model to this object.
	//
	// Parameters:
	//   - m: the Model to associate
	SetModel(m model.Model)

	// SetPosition sets the world-space translation.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the rotation axis and angle. The axis is normalized; a zero
	// axis disables rotation.
	//
	// Parameters:
	//   - axis: the rotation axis
	//   - angleDeg: the rotation angle in degrees
	SetRotation(axis mgl32.Vec3, angleDeg float32)

	// SetRotationSpeed sets the angular speed about the rotation axis.
	//
	// Parameters:
	//   - degPerSec: degrees per second, may be negative
	SetRotationSpeed(degPerSec float32)

	// SetScale sets the per-axis scale factors.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// Light returns the Light attached to this object, or nil if none is set.
	//
	// Returns:
	//   - light.Light: the attached light or nil
	Light() light.Light

	// SetLight attaches a Light to this object. The light's position follows the
	// object's position on every Update. Pass nil to detach.
	//
	// Parameters:
	//   - l: the Light to attach, or nil to detach
	SetLight(l light.Light)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new, enabled GameObject at the origin with unit scale,
// configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: mgl32.Vec3{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	obj.syncLight()
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Position() mgl32.Vec3 {
	return g.position
}

func (g *gameObject) Scale() mgl32.Vec3 {
	return g.scale
}

func (g *gameObject) RotationAxis() mgl32.Vec3 {
	return g.axis
}

func (g *gameObject) Angle() float32 {
	return g.angle
}

func (g *gameObject) RotationSpeed() float32 {
	return g.rotationSpeed
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(g.position.X(), g.position.Y(), g.position.Z())
	if g.axis != (mgl32.Vec3{}) && g.angle != 0 {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(g.angle), g.axis))
	}
	return m.Mul4(mgl32.Scale3D(g.scale.X(), g.scale.Y(), g.scale.Z()))
}

func (g *gameObject) BoundingSphere() (mgl32.Vec3, float32) {
	if g.mdl == nil {
		return g.position, 0
	}
	s := max(abs32(g.scale.X()), abs32(g.scale.Y()), abs32(g.scale.Z()))
	return g.position, g.mdl.BoundingRadius() * s
}

func (g *gameObject) Update(dt float32) {
	if dt > 0 && g.rotationSpeed != 0 {
		g.angle = wrapDegrees(g.angle + g.rotationSpeed*dt)
	}
	g.syncLight()
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetModel(m model.Model) {
	g.mdl = m
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = mgl32.Vec3{x, y, z}
	g.syncLight()
}

func (g *gameObject) SetRotation(axis mgl32.Vec3, angleDeg float32) {
	g.axis = normalizeAxis(axis)
	g.angle = wrapDegrees(angleDeg)
}

func (g *gameObject) SetRotationSpeed(degPerSec float32) {
	g.rotationSpeed = degPerSec
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = mgl32.Vec3{sx, sy, sz}
}

func (g *gameObject) Light() light.Light {
	return g.attachedLight
}

func (g *gameObject) SetLight(l light.Light) {
	g.attachedLight = l
	g.syncLight()
}

func (g *gameObject) syncLight() {
	if g.attachedLight == nil {
		return
	}
	g.attachedLight.SetPosition(g.position.X(), g.position.Y(), g.position.Z())
}

func normalizeAxis(axis mgl32.Vec3) mgl32.Vec3 {
	if axis.Len() == 0 {
		return mgl32.Vec3{}
	}
	return axis.Normalize()
}

// wrapDegrees maps any angle into [0, 360).
func wrapDegrees(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	return w
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
