package scene

import (
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/light"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/material"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithObjects adds initial lit objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.add(obj)
		}
	}
}

// WithLight sets the scene's light caster.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lt = l
	}
}

// WithLamp sets the object drawn at the light position. The light is attached to it
// so moving the lamp moves the light.
//
// Parameters:
//   - lamp: the lamp object
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLamp(lamp game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		s.lamp = lamp
	}
}

// WithMaterial sets the material applied to every lit object.
//
// Parameters:
//   - m: the material
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMaterial(m material.Material) SceneBuilderOption {
	return func(s *scene) {
		s.mat = m
	}
}

// WithShaderKeys sets the renderer keys of the lit and lamp programs.
// Defaults to DefaultLitShaderKey and DefaultLampShaderKey.
//
// Parameters:
//   - lit: the lit cube program key
//   - lamp: the lamp program key
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShaderKeys(lit, lamp string) SceneBuilderOption {
	return func(s *scene) {
		s.litShaderKey = lit
		s.lampShaderKey = lamp
	}
}

// WithCullingDisabled disables frustum culling for the scene. By default culling
// is enabled (disabled = false).
//
// Parameters:
//   - disabled: true to disable frustum culling, false to enable it (default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}
