package material

import "github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/texture"

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithDiffuseTexture is an option builder that sets the diffuse map sampled on unit 0.
//
// Parameters:
//   - tex: the uploaded diffuse texture
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse texture option to a material
func WithDiffuseTexture(tex texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseTexture = tex
	}
}

// WithSpecularTexture is an option builder that sets the specular map sampled on unit 1.
//
// Parameters:
//   - tex: the uploaded specular texture
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular texture option to a material
func WithSpecularTexture(tex texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.specularTexture = tex
	}
}

// WithShininess is an option builder that sets the specular exponent.
//
// Parameters:
//   - shininess: the specular exponent (values below 1 are clamped)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = shininess
	}
}
