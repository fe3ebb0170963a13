package material

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/texture"
)

// GLSLSource is the canonical GLSL definition of the Material struct.
//
//go:embed assets/material.glsl
var GLSLSource string

// Texture units the material samplers are bound to.
const (
	DiffuseUnit  uint32 = 0
	SpecularUnit uint32 = 1
)

// DefaultShininess is the specular exponent used when none is configured.
const DefaultShininess float32 = 32.0

// material is the implementation of the Material interface.
type material struct {
	name            string
	diffuseTexture  texture.Texture
	specularTexture texture.Texture
	shininess       float32
}

// Material defines the interface for a lighting-maps material: a diffuse map, a
// specular map and a specular exponent.
//
// The material owns the mapping from its textures to texture units. Apply writes the
// sampler uniforms and Bind activates the textures, so a scene must call both before
// drawing with a lit program.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// DiffuseTexture retrieves the diffuse map, or nil if none is set.
	//
	// Returns:
	//   - texture.Texture: the diffuse map, or nil
	DiffuseTexture() texture.Texture

	// SpecularTexture retrieves the specular map, or nil if none is set.
	//
	// Returns:
	//   - texture.Texture: the specular map, or nil
	SpecularTexture() texture.Texture

	// Shininess retrieves the specular exponent.
	//
	// Returns:
	//   - float32: the shininess
	Shininess() float32

	// SetShininess sets the specular exponent. Values below 1 are clamped to 1.
	//
	// Parameters:
	//   - shininess: the specular exponent
	SetShininess(shininess float32)

	// Apply writes the sampler units and shininess under the given struct prefix, e.g. "material".
	//
	// Parameters:
	//   - setter: the uniform sink of the bound program
	//   - prefix: the GLSL struct instance name
	Apply(setter common.UniformSetter, prefix string)

	// Bind binds the diffuse and specular maps to their texture units.
	// Missing textures are skipped.
	Bind()

	// Delete releases both textures.
	Delete()
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		shininess: DefaultShininess,
	}
	for _, opt := range options {
		opt(m)
	}
	m.shininess = max(m.shininess, 1)
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) DiffuseTexture() texture.Texture {
	return m.diffuseTexture
}

func (m *material) SpecularTexture() texture.Texture {
	return m.specularTexture
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) SetShininess(shininess float32) {
	m.shininess = max(shininess, 1)
}

func (m *material) Apply(setter common.UniformSetter, prefix string) {
	name := func(field string) string {
		if prefix == "" {
			return field
		}
		return prefix + "." + field
	}
	setter.SetInt(name("diffuse"), int32(DiffuseUnit))
	setter.SetInt(name("specular"), int32(SpecularUnit))
	setter.SetFloat(name("shininess"), m.shininess)
}

func (m *material) Bind() {
	if m.diffuseTexture != nil {
		m.diffuseTexture.Bind(DiffuseUnit)
	}
	if m.specularTexture != nil {
		m.specularTexture.Bind(SpecularUnit)
	}
}

func (m *material) Delete() {
	if m.diffuseTexture != nil {
		m.diffuseTexture.Delete()
	}
	if m.specularTexture != nil {
		m.specularTexture.Delete()
	}
}
