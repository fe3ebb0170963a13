package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects which axes camera movement affects.
type Mode int

const (
	// ModeFly moves freely along the view direction, including up and down.
	ModeFly Mode = iota

	// ModeGround keeps the camera at its current height: forward movement is the
	// view direction projected onto the ground plane.
	ModeGround
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFly:
		return "fly"
	case ModeGround:
		return "ground"
	default:
		return "unknown"
	}
}

// ParseMode converts a name produced by String back into a Mode.
//
// Parameters:
//   - name: "fly" or "ground"
//
// Returns:
//   - Mode: the parsed mode
//   - bool: false if the name is not recognised
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "fly":
		return ModeFly, true
	case "ground":
		return ModeGround, true
	default:
		return ModeFly, false
	}
}

// Direction is a bit set of movement directions relative to the camera basis.
type Direction uint8

const (
	DirForward Direction = 1 << iota
	DirBackward
	DirLeft
	DirRight
)

// Default camera settings.
const (
	DefaultSpeed      float32 = 2.5
	DefaultPitchBound float32 = 89.0
	DefaultYaw        float32 = -90.0

	// MaxPitchBound keeps front away from world up so the right vector stays defined.
	MaxPitchBound float32 = 89.9
)

// epsilon below which a combined movement vector is treated as zero.
const epsilon = 1e-6

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw        float32
	pitch      float32
	pitchBound float32

	speed     float32
	deltaTime float32
	mode      Mode
}

// Camera defines the interface for a free-fly camera.
// The camera owns its position and yaw/pitch orientation and derives an orthonormal
// front/right/up basis from them. The basis is recomputed on every orientation change.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Front returns the unit view direction.
	//
	// Returns:
	//   - mgl32.Vec3: the front basis vector
	Front() mgl32.Vec3

	// Right returns the unit right vector.
	//
	// Returns:
	//   - mgl32.Vec3: the right basis vector
	Right() mgl32.Vec3

	// Up returns the unit camera up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up basis vector
	Up() mgl32.Vec3

	// Yaw returns the yaw angle in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the pitch angle in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees, within [-PitchBound, PitchBound]
	Pitch() float32

	// PitchBound returns the absolute pitch limit in degrees.
	//
	// Returns:
	//   - float32: the pitch bound
	PitchBound() float32

	// Speed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: movement speed
	Speed() float32

	// DeltaTime returns the frame time used by movement calls.
	//
	// Returns:
	//   - float32: delta time in seconds
	DeltaTime() float32

	// Mode returns the movement mode.
	//
	// Returns:
	//   - Mode: fly or ground
	Mode() Mode

	// View returns the world-to-camera transform looking from Position along Front.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	View() mgl32.Mat4

	// AddYaw adds a yaw offset and recomputes the basis.
	//
	// Parameters:
	//   - delta: yaw offset in degrees
	AddYaw(delta float32)

	// AddPitch adds a pitch offset, clamps pitch to the bound and recomputes the basis.
	//
	// Parameters:
	//   - delta: pitch offset in degrees
	AddPitch(delta float32)

	// SetDeltaTime records the elapsed frame time used by subsequent movement calls.
	// Negative values are treated as zero.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	SetDeltaTime(dt float32)

	// SetPosition moves the camera to an absolute position.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl32.Vec3)

	// SetSpeed sets the movement speed. Negative values are treated as zero.
	//
	// Parameters:
	//   - speed: world units per second
	SetSpeed(speed float32)

	// SetMode sets the movement mode.
	//
	// Parameters:
	//   - mode: fly or ground
	SetMode(mode Mode)

	// Move translates the camera along the combined, normalized direction by speed * deltaTime.
	// Opposing directions cancel out.
	//
	// Parameters:
	//   - dir: bit set of directions
	Move(dir Direction)

	MoveForward()
	MoveBackward()
	MoveLeft()
	MoveRight()
	MoveForwardLeft()
	MoveForwardRight()
	MoveBackwardLeft()
	MoveBackwardRight()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down -Z in fly mode.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		worldUp:    mgl32.Vec3{0, 1, 0},
		yaw:        DefaultYaw,
		pitchBound: DefaultPitchBound,
		speed:      DefaultSpeed,
		mode:       ModeFly,
	}
	for _, option := range options {
		option(c)
	}
	c.pitchBound = min(float32(math.Abs(float64(c.pitchBound))), MaxPitchBound)
	c.pitch = common.Clamp(c.pitch, -c.pitchBound, c.pitchBound)
	c.updateVectors()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) PitchBound() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitchBound
}

func (c *cameraImpl) Speed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

func (c *cameraImpl) DeltaTime() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deltaTime
}

func (c *cameraImpl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *cameraImpl) View() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *cameraImpl) AddYaw(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw += delta
	c.updateVectors()
}

func (c *cameraImpl) AddPitch(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = common.Clamp(c.pitch+delta, -c.pitchBound, c.pitchBound)
	c.updateVectors()
}

func (c *cameraImpl) SetDeltaTime(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deltaTime = max(dt, 0)
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraImpl) SetSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = max(speed, 0)
}

func (c *cameraImpl) SetMode(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
}

func (c *cameraImpl) Move(dir Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.move(dir)
}

func (c *cameraImpl) MoveForward()       { c.Move(DirForward) }
func (c *cameraImpl) MoveBackward()      { c.Move(DirBackward) }
func (c *cameraImpl) MoveLeft()          { c.Move(DirLeft) }
func (c *cameraImpl) MoveRight()         { c.Move(DirRight) }
func (c *cameraImpl) MoveForwardLeft()   { c.Move(DirForward | DirLeft) }
func (c *cameraImpl) MoveForwardRight()  { c.Move(DirForward | DirRight) }
func (c *cameraImpl) MoveBackwardLeft()  { c.Move(DirBackward | DirLeft) }
func (c *cameraImpl) MoveBackwardRight() { c.Move(DirBackward | DirRight) }

// move applies a movement step. Caller must hold the mutex.
func (c *cameraImpl) move(dir Direction) {
	step := c.speed * c.deltaTime
	if step == 0 {
		return
	}

	forward := c.front
	if c.mode == ModeGround {
		forward = forward.Sub(c.worldUp.Mul(forward.Dot(c.worldUp)))
		if forward.Len() < epsilon {
			forward = mgl32.Vec3{}
		} else {
			forward = forward.Normalize()
		}
	}

	var v mgl32.Vec3
	if dir&DirForward != 0 {
		v = v.Add(forward)
	}
	if dir&DirBackward != 0 {
		v = v.Sub(forward)
	}
	if dir&DirRight != 0 {
		v = v.Add(c.right)
	}
	if dir&DirLeft != 0 {
		v = v.Sub(c.right)
	}

	if v.Len() < epsilon {
		return
	}
	c.position = c.position.Add(v.Normalize().Mul(step))
}

// updateVectors recomputes front, right and up from yaw and pitch.
// Caller must hold the mutex.
func (c *cameraImpl) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}
	c.front = front.Normalize()

	right := c.front.Cross(c.worldUp)
	if right.Len() < epsilon {
		// front is parallel to world up: keep the previous right, made orthogonal to front.
		right = c.right
		if right.Len() < epsilon {
			right = mgl32.Vec3{1, 0, 0}
		}
		right = right.Sub(c.front.Mul(right.Dot(c.front)))
		if right.Len() < epsilon {
			right = c.front.Cross(mgl32.Vec3{0, 0, 1})
		}
	}
	c.right = right.Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
