package scene

import (
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/camera"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/light"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/model"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Uniform names shared by the lit cube and lamp programs.
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
	UniformCameraPos  = "cameraPos"
	UniformLightColor = "lightColor"
)

// Default shader keys and lamp marker scale.
const (
	DefaultLitShaderKey  = "cube"
	DefaultLampShaderKey = "lamp"
	DefaultLampScale     = float32(0.2)
)

// CubeRotationAxis is the axis every cube in a cube field is tilted about.
var CubeRotationAxis = mgl32.Vec3{1, 0.5, 0.1}

// Scene holds everything drawn in one frame: a camera and lens, a single light caster
// with its lamp marker, a material shared by every lit object and the lit objects
// themselves. Thread-safe for concurrent access; Draw must run on the GL thread.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Lens returns the lens providing the projection matrix.
	Lens() camera.Lens

	// Light returns the scene's light caster.
	Light() light.Light

	// SetLight replaces the scene's light caster. The lamp, if any, is re-attached
	// to the new light.
	//
	// Parameters:
	//   - l: the new light
	SetLight(l light.Light)

	// Lamp returns the object marking the light position, or nil if none is set.
	Lamp() game_object.GameObject

	// Material returns the material applied to every lit object.
	Material() material.Material

	// CullingDisabled returns whether frustum culling is skipped.
	CullingDisabled() bool

	// SetCullingDisabled enables or disables frustum culling.
	//
	// Parameters:
	//   - disabled: true to draw every enabled object
	SetCullingDisabled(disabled bool)

	// Count returns the number of lit objects in the scene.
	//
	// Returns:
	//   - int: object count, excluding the lamp
	Count() int

	// Add adds a lit object to the scene, assigning a new ID if it has none.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get returns the object with the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Objects returns the lit objects in ID order.
	//
	// Returns:
	//   - []game_object.GameObject: a copy of the object list
	Objects() []game_object.GameObject

	// Remove removes the object with the given ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Update advances every object's animation and the lamp by dt seconds.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// Draw renders one frame: clear, lit objects with the lit program, then the lamp
	// marker with the lamp program if the light has one.
	//
	// Parameters:
	//   - r: the renderer holding both programs
	//
	// Returns:
	//   - error: if a program is not registered with the renderer
	Draw(r renderer.Renderer) error

	// Stats returns how many lit objects were drawn and culled in the last Draw.
	//
	// Returns:
	//   - drawn: objects drawn
	//   - culled: objects rejected by the frustum test
	Stats() (drawn, culled int)
}

type scene struct {
	mu *sync.RWMutex

	name string

	cam  camera.Camera
	lens camera.Lens

	lt   light.Light
	lamp game_object.GameObject
	mat  material.Material

	registry map[uint64]game_object.GameObject
	nextID   uint64

	litShaderKey  string
	lampShaderKey string

	cullingDisabled bool
	drawn, culled   int
}

var _ Scene = &scene{}

// NewScene creates a new Scene viewed through the given camera and lens. Both are
// required and NewScene panics if either is nil. Without options the scene has a
// default point light, an untextured material and no objects.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to view through (must not be nil)
//   - lens: the lens providing the projection (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, lens camera.Lens, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if lens == nil {
		panic("scene: NewScene requires a non-nil Lens")
	}

	s := &scene{
		mu:            &sync.RWMutex{},
		name:          name,
		cam:           cam,
		lens:          lens,
		lt:            light.NewLight(light.LightTypePoint),
		mat:           material.NewMaterial(),
		registry:      make(map[uint64]game_object.GameObject),
		nextID:        1,
		litShaderKey:  DefaultLitShaderKey,
		lampShaderKey: DefaultLampShaderKey,
	}

	for _, option := range options {
		option(s)
	}

	if s.lamp != nil {
		s.lamp.SetLight(s.lt)
	}
	return s
}

// NewCubeField creates one object per position sharing the given model, where the
// object at index i is rotated 20·i degrees about CubeRotationAxis.
//
// Parameters:
//   - mdl: the model drawn for every object
//   - positions: world-space positions
//
// Returns:
//   - []game_object.GameObject: the objects, without IDs
func NewCubeField(mdl model.Model, positions [][3]float32) []game_object.GameObject {
	objects := make([]game_object.GameObject, 0, len(positions))
	for i, p := range positions {
		objects = append(objects, game_object.NewGameObject(
			game_object.WithModel(mdl),
			game_object.WithPosition(p[0], p[1], p[2]),
			game_object.WithRotation(CubeRotationAxis, 20*float32(i)),
		))
	}
	return objects
}

// NewLamp creates the lamp marker object at the light's position, scaled by DefaultLampScale.
//
// Parameters:
//   - mdl: the model drawn for the lamp
//   - l: the light the lamp follows
//
// Returns:
//   - game_object.GameObject: the lamp object
func NewLamp(mdl model.Model, l light.Light) game_object.GameObject {
	p := l.Position()
	return game_object.NewGameObject(
		game_object.WithModel(mdl),
		game_object.WithPosition(p.X(), p.Y(), p.Z()),
		game_object.WithUniformScale(DefaultLampScale),
		game_object.WithLight(l),
	)
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Lens() camera.Lens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lens
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lt
}

func (s *scene) SetLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lt = l
	if s.lamp != nil {
		s.lamp.SetLight(l)
	}
}

func (s *scene) Lamp() game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lamp
}

func (s *scene) Material() material.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mat
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedObjects()
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Update(dt float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, obj := range s.registry {
		obj.Update(dt)
	}
	if s.lamp != nil {
		s.lamp.Update(dt)
	}
}

func (s *scene) Draw(r renderer.Renderer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.BeginFrame()

	view := s.cam.View()
	projection := s.lens.Projection()

	lit, err := r.UseShader(s.litShaderKey)
	if err != nil {
		return errors.Wrap(err, "lit pass")
	}
	lit.SetMat4(UniformView, view)
	lit.SetMat4(UniformProjection, projection)
	lit.SetVec3(UniformCameraPos, s.cam.Position())
	s.lt.Apply(lit, lit.UniformName(shader.AnnotationArgLight, "light"))
	s.mat.Apply(lit, lit.UniformName(shader.AnnotationArgMaterial, "material"))
	s.mat.Bind()

	frustum := common.ExtractFrustum(projection.Mul4(view))
	s.drawn, s.culled = 0, 0
	for _, obj := range s.sortedObjects() {
		if !obj.Enabled() || obj.Model() == nil {
			continue
		}
		if !s.cullingDisabled {
			center, radius := obj.BoundingSphere()
			if !frustum.ContainsSphere(center, radius) {
				s.culled++
				continue
			}
		}
		lit.SetMat4(UniformModel, obj.ModelMatrix())
		r.DrawCall(obj.Model())
		s.drawn++
	}

	if s.lamp == nil || s.lamp.Model() == nil || !s.lamp.Enabled() || !s.lt.HasMarker() {
		return nil
	}
	lamp, err := r.UseShader(s.lampShaderKey)
	if err != nil {
		return errors.Wrap(err, "lamp pass")
	}
	lamp.SetMat4(UniformView, view)
	lamp.SetMat4(UniformProjection, projection)
	lamp.SetMat4(UniformModel, s.lamp.ModelMatrix())
	lamp.SetVec3(UniformLightColor, s.lt.Color())
	r.DrawCall(s.lamp.Model())
	return nil
}

func (s *scene) Stats() (drawn, culled int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drawn, s.culled
}

// add must be called with the write lock held.
func (s *scene) add(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	s.registry[obj.ID()] = obj
	return obj.ID()
}

// sortedObjects must be called with a lock held.
func (s *scene) sortedObjects() []game_object.GameObject {
	out := make([]game_object.GameObject, 0, len(s.registry))
	for _, obj := range s.registry {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
