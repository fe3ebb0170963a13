package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Default lens settings.
const (
	DefaultFov    float32 = 45.0
	DefaultMinFov float32 = 1.0
	DefaultMaxFov float32 = 45.0
	DefaultNear   float32 = 0.1
	DefaultFar    float32 = 100.0
)

type lensImpl struct {
	mu *sync.Mutex

	fov    float32
	minFov float32
	maxFov float32
	aspect float32
	near   float32
	far    float32
}

// Lens holds the perspective projection parameters used alongside a Camera.
// The field of view is always kept within [MinFov, MaxFov].
type Lens interface {
	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// MinFov returns the lower field-of-view bound in degrees.
	MinFov() float32

	// MaxFov returns the upper field-of-view bound in degrees.
	MaxFov() float32

	// Aspect returns the width/height ratio.
	Aspect() float32

	// Near returns the near clip distance.
	Near() float32

	// Far returns the far clip distance.
	Far() float32

	// SetFov sets the field of view, clamped to the bounds.
	//
	// Parameters:
	//   - fov: field of view in degrees
	SetFov(fov float32)

	// Zoom narrows the field of view by delta degrees (positive zooms in), clamped to the bounds.
	//
	// Parameters:
	//   - delta: scroll offset in degrees
	Zoom(delta float32)

	// SetAspect sets the aspect ratio from a framebuffer size.
	// A zero height leaves the aspect unchanged.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	SetAspect(width, height int)

	// Projection returns the perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	Projection() mgl32.Mat4
}

var _ Lens = &lensImpl{}

// NewLens creates a new Lens with a 45 degree field of view and a 4:3 aspect ratio.
//
// Parameters:
//   - options: functional options to configure the lens
//
// Returns:
//   - Lens: the newly created lens
func NewLens(options ...LensBuilderOption) Lens {
	l := &lensImpl{
		mu:     &sync.Mutex{},
		fov:    DefaultFov,
		minFov: DefaultMinFov,
		maxFov: DefaultMaxFov,
		aspect: 800.0 / 600.0,
		near:   DefaultNear,
		far:    DefaultFar,
	}
	for _, option := range options {
		option(l)
	}
	if l.minFov > l.maxFov {
		l.minFov, l.maxFov = l.maxFov, l.minFov
	}
	l.fov = common.Clamp(l.fov, l.minFov, l.maxFov)
	return l
}

func (l *lensImpl) Fov() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fov
}

func (l *lensImpl) MinFov() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minFov
}

func (l *lensImpl) MaxFov() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxFov
}

func (l *lensImpl) Aspect() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.aspect
}

func (l *lensImpl) Near() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.near
}

func (l *lensImpl) Far() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.far
}

func (l *lensImpl) SetFov(fov float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fov = common.Clamp(fov, l.minFov, l.maxFov)
}

func (l *lensImpl) Zoom(delta float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fov = common.Clamp(l.fov-delta, l.minFov, l.maxFov)
}

func (l *lensImpl) SetAspect(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.aspect = float32(width) / float32(height)
}

func (l *lensImpl) Projection() mgl32.Mat4 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return mgl32.Perspective(mgl32.DegToRad(l.fov), l.aspect, l.near, l.far)
}
