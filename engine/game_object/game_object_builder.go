package game_object

import (
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/light"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithModel sets the Model drawn for the GameObject.
//
// Parameters:
//   - m: the Model to associate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Model
func WithModel(m model.Model) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mdl = m
	}
}

// WithPosition sets the world-space position of the GameObject.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = mgl32.Vec3{x, y, z}
	}
}

// WithScale sets the per-axis scale of the GameObject.
//
// Parameters:
//   - sx, sy, sz: scale factors
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = mgl32.Vec3{sx, sy, sz}
	}
}

// WithUniformScale sets the same scale factor on every axis.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithUniformScale(s float32) GameObjectBuilderOption {
	return WithScale(s, s, s)
}

// WithRotation sets the rotation axis and initial angle of the GameObject.
//
// Parameters:
//   - axis: the rotation axis, normalized before storing
//   - angleDeg: the initial angle in degrees
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(axis mgl32.Vec3, angleDeg float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.axis = normalizeAxis(axis)
		obj.angle = wrapDegrees(angleDeg)
	}
}

// WithRotationSpeed sets the angular speed about the rotation axis.
//
// Parameters:
//   - degPerSec: degrees per second
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(degPerSec float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotationSpeed = degPerSec
	}
}

// WithLight attaches a Light whose position follows the GameObject.
//
// Parameters:
//   - l: the Light to attach
//
// Returns:
//   - GameObjectBuilderOption: functional option to attach the Light
func WithLight(l light.Light) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.attachedLight = l
	}
}
