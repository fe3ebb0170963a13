package common

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformSetter writes named uniforms on the currently bound shader program.
// Shaders implement it on top of GL; lights, materials and scenes only see this
// interface so they can be exercised without a GL context.
type UniformSetter interface {
	// SetMat4 writes a 4x4 matrix uniform.
	SetMat4(name string, m mgl32.Mat4)

	// SetVec3 writes a vec3 uniform.
	SetVec3(name string, v mgl32.Vec3)

	// SetFloat writes a float uniform.
	SetFloat(name string, f float32)

	// SetInt writes an int (or sampler) uniform.
	SetInt(name string, i int32)
}

// UniformRecorder is an in-memory UniformSetter that keeps the last value written
// to each uniform, in the order of first write.
type UniformRecorder struct {
	Mat4s  map[string]mgl32.Mat4
	Vec3s  map[string]mgl32.Vec3
	Floats map[string]float32
	Ints   map[string]int32
	Order  []string
}

var _ UniformSetter = &UniformRecorder{}

// NewUniformRecorder creates an empty UniformRecorder.
//
// Returns:
//   - *UniformRecorder: the new recorder
func NewUniformRecorder() *UniformRecorder {
	return &UniformRecorder{
		Mat4s:  make(map[string]mgl32.Mat4),
		Vec3s:  make(map[string]mgl32.Vec3),
		Floats: make(map[string]float32),
		Ints:   make(map[string]int32),
	}
}

func (r *UniformRecorder) SetMat4(name string, m mgl32.Mat4) {
	r.record(name)
	r.Mat4s[name] = m
}

func (r *UniformRecorder) SetVec3(name string, v mgl32.Vec3) {
	r.record(name)
	r.Vec3s[name] = v
}

func (r *UniformRecorder) SetFloat(name string, f float32) {
	r.record(name)
	r.Floats[name] = f
}

func (r *UniformRecorder) SetInt(name string, i int32) {
	r.record(name)
	r.Ints[name] = i
}

// Has reports whether a uniform with the given name was written.
//
// Parameters:
//   - name: the uniform name
//
// Returns:
//   - bool: true if any setter wrote the uniform
func (r *UniformRecorder) Has(name string) bool {
	return slices.Contains(r.Order, name)
}

func (r *UniformRecorder) record(name string) {
	if !r.Has(name) {
		r.Order = append(r.Order, name)
	}
}
