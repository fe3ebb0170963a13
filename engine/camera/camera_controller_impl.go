package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/input"
)

// DefaultMouseSensitivity is the look sensitivity in degrees per pixel.
const DefaultMouseSensitivity float32 = 0.1

// moveBinding maps a key chord to a movement direction.
type moveBinding struct {
	keys []uint32
	dir  Direction
}

// moveBindings is checked in order and the first fully pressed chord wins.
var moveBindings = []moveBinding{
	{[]uint32{common.KeyS, common.KeyD}, DirBackward | DirRight},
	{[]uint32{common.KeyS, common.KeyA}, DirBackward | DirLeft},
	{[]uint32{common.KeyW, common.KeyD}, DirForward | DirRight},
	{[]uint32{common.KeyW, common.KeyA}, DirForward | DirLeft},
	{[]uint32{common.KeyW}, DirForward},
	{[]uint32{common.KeyS}, DirBackward},
	{[]uint32{common.KeyA}, DirLeft},
	{[]uint32{common.KeyD}, DirRight},
}

type cameraControllerImpl struct {
	mu *sync.Mutex

	camera Camera
	lens   Lens

	mouseSensitivity float32
	zoomScaled       bool
	lookButton       uint32

	// cursor tracking
	lastX, lastY float64
	tracking     bool
	dragging     bool
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller driving the given camera.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:               &sync.Mutex{},
		camera:           cam,
		mouseSensitivity: DefaultMouseSensitivity,
		lookButton:       common.MouseButtonLeft,
	}
	for _, option := range options {
		option(cc)
	}
	if cc.lens == nil {
		cc.lens = NewLens()
	}
	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) Lens() Lens {
	return cc.lens
}

func (cc *cameraControllerImpl) Dragging() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.dragging
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) EffectiveSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.effectiveSensitivity()
}

func (cc *cameraControllerImpl) Update(src input.Source) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cc.applyMovement(src)
	cc.applyLook(src)

	if dy := src.ScrollDelta(); dy != 0 {
		cc.lens.Zoom(float32(dy))
	}
}

// applyMovement issues at most one movement call per frame.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) applyMovement(src input.Source) {
	for _, b := range moveBindings {
		if allPressed(src, b.keys) {
			cc.camera.Move(b.dir)
			return
		}
	}
}

// applyLook converts cursor offsets into yaw and pitch while the look button is held.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) applyLook(src input.Source) {
	x, y := src.CursorPosition()
	cc.dragging = src.MouseButtonPressed(cc.lookButton)

	if !cc.tracking {
		cc.lastX, cc.lastY = x, y
		cc.tracking = true
		return
	}

	if cc.dragging {
		sensitivity := cc.effectiveSensitivity()
		xOffset := float32(cc.lastX-x) * sensitivity
		yOffset := float32(y-cc.lastY) * sensitivity
		if xOffset != 0 {
			cc.camera.AddYaw(xOffset)
		}
		if yOffset != 0 {
			cc.camera.AddPitch(yOffset)
		}
	}
	cc.lastX, cc.lastY = x, y
}

// effectiveSensitivity must be called with the mutex held.
func (cc *cameraControllerImpl) effectiveSensitivity() float32 {
	if !cc.zoomScaled {
		return cc.mouseSensitivity
	}
	maxFov := cc.lens.MaxFov()
	if maxFov <= 0 {
		return cc.mouseSensitivity
	}
	return cc.mouseSensitivity * cc.lens.Fov() / maxFov
}

func allPressed(src input.Source, keys []uint32) bool {
	for _, k := range keys {
		if !src.KeyPressed(k) {
			return false
		}
	}
	return true
}
