package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithMode sets the movement mode.
//
// Parameters:
//   - mode: ModeFly or ModeGround
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's mode
func WithMode(mode Mode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mode = mode
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithYaw sets the initial yaw in degrees. A yaw of -90 looks down -Z.
//
// Parameters:
//   - yaw: yaw angle in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's yaw
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial pitch in degrees. It is clamped to the pitch bound.
//
// Parameters:
//   - pitch: pitch angle in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's pitch
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = pitch
	}
}

// WithSpeed sets the movement speed in world units per second.
//
// Parameters:
//   - speed: movement speed (negative values become 0)
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's speed
func WithSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.speed = max(speed, 0)
	}
}

// WithWorldUp sets the world up vector used to derive the right vector.
// Yaw and pitch are always measured around +Y, so a world up far from +Y tilts
// the basis. When front ends up parallel to world up the previous right vector is kept.
//
// Parameters:
//   - x, y, z: up vector components (normalized before use)
//
// Returns:
//   - CameraBuilderOption: a function that sets the world up vector
func WithWorldUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		up := mgl32.Vec3{x, y, z}
		if up.Len() > epsilon {
			c.worldUp = up.Normalize()
		}
	}
}

// WithPitchBound sets the absolute pitch limit in degrees.
// NewCamera caps the bound at MaxPitchBound so the basis never flips.
//
// Parameters:
//   - bound: pitch limit in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the pitch bound
func WithPitchBound(bound float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitchBound = bound
	}
}
