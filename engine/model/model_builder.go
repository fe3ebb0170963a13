package model

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertexData is an option builder that sets raw interleaved vertex data.
//
// Parameters:
//   - data: floats laid out according to the model's layout
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertex data option to a model
func WithVertexData(data []float32) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = data
	}
}

// WithVertices is an option builder that sets the vertex data from GPUVertex values
// and selects the matching layout.
//
// Parameters:
//   - vertices: the mesh vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = MarshalVertices(vertices)
		m.layout = GPUVertexLayout
	}
}

// WithLayout is an option builder that overrides the vertex attribute layout.
// The lamp program, for example, only consumes the position attribute but the
// layout still has to describe the full stride.
//
// Parameters:
//   - layout: attributes in buffer order
//
// Returns:
//   - ModelBuilderOption: a function that applies the layout option to a model
func WithLayout(layout ...Attribute) ModelBuilderOption {
	return func(m *model) {
		m.layout = layout
	}
}
