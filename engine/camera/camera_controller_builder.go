package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithMouseSensitivity sets the look sensitivity in degrees per pixel of cursor movement.
//
// Parameters:
//   - sensitivity: degrees per pixel
//
// Returns:
//   - CameraControllerOption: functional option to set the sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithZoomScaledSensitivity scales look sensitivity by fov/maxFov so that
// zoomed-in views turn more slowly.
//
// Parameters:
//   - enabled: true to couple sensitivity to the field of view
//
// Returns:
//   - CameraControllerOption: functional option to toggle zoom scaling
func WithZoomScaledSensitivity(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomScaled = enabled
	}
}

// WithLookButton sets the mouse button that must be held to look around.
//
// Parameters:
//   - button: mouse button code (see common.MouseButton*)
//
// Returns:
//   - CameraControllerOption: functional option to set the look button
func WithLookButton(button uint32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.lookButton = button
	}
}

// WithLens sets the lens zoomed by scroll input. A default lens is used otherwise.
//
// Parameters:
//   - lens: the lens to drive
//
// Returns:
//   - CameraControllerOption: functional option to set the lens
func WithLens(lens Lens) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.lens = lens
	}
}
