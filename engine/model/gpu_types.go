package model

import "unsafe"

// floatSize is the size of a float32 in bytes.
const floatSize = int32(unsafe.Sizeof(float32(0)))

// GPUVertex is the interleaved representation of a single mesh vertex for the lit and lamp
// programs: position at location 0, normal at location 1, texture coordinate at location 2.
// Size: 32 bytes, tightly packed.
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal appends the vertex to an interleaved float buffer in attribute order.
//
// Parameters:
//   - dst: the buffer to append to
//
// Returns:
//   - []float32: the extended buffer
func (g *GPUVertex) Marshal(dst []float32) []float32 {
	dst = append(dst, g.Position[:]...)
	dst = append(dst, g.Normal[:]...)
	return append(dst, g.TexCoord[:]...)
}

// MarshalVertices flattens a vertex slice into an interleaved float buffer.
//
// Parameters:
//   - vertices: the vertices to flatten
//
// Returns:
//   - []float32: 8 floats per vertex
func MarshalVertices(vertices []GPUVertex) []float32 {
	out := make([]float32, 0, len(vertices)*8)
	for i := range vertices {
		out = vertices[i].Marshal(out)
	}
	return out
}

// Attribute describes one float vertex attribute within an interleaved buffer.
type Attribute struct {
	// Location is the shader input location.
	Location uint32
	// Size is the number of float components (1 to 4).
	Size int32
}

// GPUVertexLayout is the attribute layout matching GPUVertex.
var GPUVertexLayout = []Attribute{
	{Location: 0, Size: 3},
	{Location: 1, Size: 3},
	{Location: 2, Size: 2},
}

// Stride returns the size in bytes of one vertex for the given layout.
//
// Parameters:
//   - layout: attributes in buffer order
//
// Returns:
//   - int32: stride in bytes
func Stride(layout []Attribute) int32 {
	var n int32
	for _, a := range layout {
		n += a.Size
	}
	return n * floatSize
}

// Offsets returns the byte offset of each attribute within a vertex.
//
// Parameters:
//   - layout: attributes in buffer order
//
// Returns:
//   - []uintptr: one offset per attribute
func Offsets(layout []Attribute) []uintptr {
	out := make([]uintptr, len(layout))
	var off int32
	for i, a := range layout {
		out[i] = uintptr(off * floatSize)
		off += a.Size
	}
	return out
}

// floatsPerVertex returns the number of floats in one vertex for the given layout.
func floatsPerVertex(layout []Attribute) int {
	return int(Stride(layout) / floatSize)
}
