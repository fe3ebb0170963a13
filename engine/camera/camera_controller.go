package camera

import "github.com/Carmen-Shannon/oxy-lightcaster/engine/input"

// CameraController turns polled input into camera and lens changes once per frame.
// The controller owns the transient input state the camera itself must not know
// about: the last cursor position and whether a look drag is in progress.
type CameraController interface {
	// Update reads the input source and applies movement, look and zoom.
	// Movement uses the camera's current delta time, so SetDeltaTime must be
	// called before Update each frame.
	//
	// Parameters:
	//   - src: the polled input state for this frame
	Update(src input.Source)

	// Camera returns the driven camera.
	//
	// Returns:
	//   - Camera: the camera updated by this controller
	Camera() Camera

	// Lens returns the driven lens.
	//
	// Returns:
	//   - Lens: the lens zoomed by this controller
	Lens() Lens

	// Dragging reports whether the look button was held during the last Update.
	// The window hides the cursor while this is true.
	//
	// Returns:
	//   - bool: true while a look drag is active
	Dragging() bool

	// MouseSensitivity returns the base look sensitivity in degrees per pixel.
	//
	// Returns:
	//   - float32: base sensitivity
	MouseSensitivity() float32

	// EffectiveSensitivity returns the sensitivity applied to cursor offsets,
	// scaled by the current field of view when zoom scaling is enabled.
	//
	// Returns:
	//   - float32: degrees per pixel
	EffectiveSensitivity() float32
}
