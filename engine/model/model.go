package model

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	vertexData     []float32
	layout         []Attribute
	boundingRadius float32
	vao, vbo       uint32
}

// Model defines the interface for a non-indexed triangle mesh.
// A Model holds interleaved float vertex data and its attribute layout on the CPU,
// and the vertex array and buffer objects once uploaded. The same Model may be
// drawn any number of times with different programs and model matrices.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// VertexData returns the interleaved vertex data.
	//
	// Returns:
	//   - []float32: the vertex data
	VertexData() []float32

	// Layout returns the vertex attribute layout.
	//
	// Returns:
	//   - []Attribute: attributes in buffer order
	Layout() []Attribute

	// VertexCount returns the number of complete vertices in the vertex data.
	//
	// Returns:
	//   - int32: the vertex count
	VertexCount() int32

	// BoundingRadius returns the radius of the smallest origin-centered sphere
	// containing every vertex position, in model space.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// Uploaded reports whether Upload has created the GL objects.
	Uploaded() bool

	// Upload creates the vertex array and buffer objects and describes the attribute layout.
	// Must be called on the thread that owns the GL context. Calling it again is a no-op.
	//
	// Returns:
	//   - error: if the vertex data does not match the layout
	Upload() error

	// Draw binds the vertex array and issues a triangle draw with the currently bound program.
	// Does nothing before Upload.
	Draw()

	// Delete releases the GL objects.
	Delete()
}

var _ Model = &model{}

// NewModel creates a new Model with the GPUVertex layout and any provided options applied.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions to configure the model
//
// Returns:
//   - Model: a new Model instance
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		layout: GPUVertexLayout,
	}
	for _, opt := range options {
		opt(m)
	}
	m.boundingRadius = boundingRadius(m.vertexData, m.layout)
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) VertexData() []float32 {
	return m.vertexData
}

func (m *model) Layout() []Attribute {
	return m.layout
}

func (m *model) VertexCount() int32 {
	n := floatsPerVertex(m.layout)
	if n == 0 {
		return 0
	}
	return int32(len(m.vertexData) / n)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) Uploaded() bool {
	return m.vao != 0
}

func (m *model) Upload() error {
	if m.vao != 0 {
		return nil
	}
	n := floatsPerVertex(m.layout)
	if n == 0 || len(m.vertexData) == 0 || len(m.vertexData)%n != 0 {
		return errors.Errorf("model %s: %d floats do not fit a %d-float vertex layout", m.name, len(m.vertexData), n)
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.vertexData)*int(floatSize), gl.Ptr(m.vertexData), gl.STATIC_DRAW)

	stride := Stride(m.layout)
	for i, off := range Offsets(m.layout) {
		a := m.layout[i]
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, off)
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindVertexArray(0)
	return nil
}

func (m *model) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.VertexCount())
}

func (m *model) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}

// boundingRadius treats the first attribute as the position.
func boundingRadius(data []float32, layout []Attribute) float32 {
	n := floatsPerVertex(layout)
	if n == 0 || len(layout) == 0 {
		return 0
	}
	dims := int(min(layout[0].Size, 3))

	var maxSq float64
	for i := 0; i+n <= len(data); i += n {
		var sq float64
		for d := 0; d < dims; d++ {
			v := float64(data[i+d])
			sq += v * v
		}
		maxSq = max(maxSq, sq)
	}
	return float32(math.Sqrt(maxSq))
}
