package camera

// LensBuilderOption is a functional option for configuring a Lens.
type LensBuilderOption func(*lensImpl)

// WithFov sets the initial vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - LensBuilderOption: a function that sets the field of view
func WithFov(fov float32) LensBuilderOption {
	return func(l *lensImpl) {
		l.fov = fov
	}
}

// WithFovBounds sets the range the field of view is clamped to.
//
// Parameters:
//   - min: smallest field of view (most zoomed in)
//   - max: largest field of view
//
// Returns:
//   - LensBuilderOption: a function that sets the field-of-view bounds
func WithFovBounds(min, max float32) LensBuilderOption {
	return func(l *lensImpl) {
		l.minFov = min
		l.maxFov = max
	}
}

// WithAspect sets the aspect ratio from a framebuffer size.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - LensBuilderOption: a function that sets the aspect ratio
func WithAspect(width, height int) LensBuilderOption {
	return func(l *lensImpl) {
		if width > 0 && height > 0 {
			l.aspect = float32(width) / float32(height)
		}
	}
}

// WithClipPlanes sets the near and far clip distances.
//
// Parameters:
//   - near: near clip distance
//   - far: far clip distance
//
// Returns:
//   - LensBuilderOption: a function that sets the clip planes
func WithClipPlanes(near, far float32) LensBuilderOption {
	return func(l *lensImpl) {
		l.near = near
		l.far = far
	}
}
