package model

import (
	"math"
	"testing"
)

func TestGPUVertexLayout(t *testing.T) {
	v := GPUVertex{}
	if v.Size() != 32 {
		t.Errorf("expected vertex size 32, got %d", v.Size())
	}
	if s := Stride(GPUVertexLayout); s != 32 {
		t.Errorf("expected stride 32, got %d", s)
	}

	expected := []uintptr{0, 12, 24}
	for i, off := range Offsets(GPUVertexLayout) {
		if off != expected[i] {
			t.Errorf("attribute %d: expected offset %d, got %d", i, expected[i], off)
		}
	}
}

func TestMarshalVertices(t *testing.T) {
	vs := []GPUVertex{
		{Position: [3]float32{1, 2, 3}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0.5, 1}},
		{Position: [3]float32{-1, 0, 0}},
	}
	got := MarshalVertices(vs)
	expected := []float32{1, 2, 3, 0, 1, 0, 0.5, 1, -1, 0, 0, 0, 0, 0, 0, 0}
	if len(got) != len(expected) {
		t.Fatalf("expected %d floats, got %d", len(expected), len(got))
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("float %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestCube(t *testing.T) {
	c := NewCube("cube")

	if c.Name() != "cube" {
		t.Errorf("unexpected name %q", c.Name())
	}
	if len(c.VertexData()) != 288 || c.VertexCount() != 36 {
		t.Errorf("expected 288 floats and 36 vertices, got %d and %d", len(c.VertexData()), c.VertexCount())
	}
	if r := c.BoundingRadius(); math.Abs(float64(r)-math.Sqrt(0.75)) > 1e-6 {
		t.Errorf("expected bounding radius %v, got %v", math.Sqrt(0.75), r)
	}
	if c.Uploaded() {
		t.Error("cube should not be uploaded before Upload")
	}

	data := c.VertexData()
	for i := 0; i < len(data); i += 8 {
		n := float64(data[i+3]*data[i+3] + data[i+4]*data[i+4] + data[i+5]*data[i+5])
		if math.Abs(n-1) > 1e-6 {
			t.Fatalf("vertex %d: normal not unit length", i/8)
		}
		for _, uv := range data[i+6 : i+8] {
			if uv < 0 || uv > 1 {
				t.Fatalf("vertex %d: uv out of range", i/8)
			}
		}
	}
}

func TestCubeVerticesIsACopy(t *testing.T) {
	a := CubeVertices()
	a[0] = 42
	if CubeVertices()[0] == 42 {
		t.Error("CubeVertices should return a fresh copy")
	}
}

func TestBoundingRadiusCustomLayout(t *testing.T) {
	m := NewModel(
		WithLayout(Attribute{Location: 0, Size: 2}, Attribute{Location: 1, Size: 1}),
		WithVertexData([]float32{3, 4, 100, 1, 1, 100}),
	)
	if m.VertexCount() != 2 {
		t.Errorf("expected 2 vertices, got %d", m.VertexCount())
	}
	if m.BoundingRadius() != 5 {
		t.Errorf("expected radius 5, got %v", m.BoundingRadius())
	}
}

func TestUploadRejectsMismatchedData(t *testing.T) {
	testCases := [][]float32{
		nil,
		{1, 2, 3},
	}
	for i, data := range testCases {
		m := NewModel(WithName("bad"), WithVertexData(data))
		if err := m.Upload(); err == nil {
			t.Errorf("[%d] expected error for %d floats", i, len(data))
		}
	}
}
