package shader

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ShaderType identifies the pipeline stage a GLSL source is compiled for.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex stage.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment stage.
	ShaderTypeFragment
)

// String returns the lowercase stage name.
func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

func (t ShaderType) glEnum() uint32 {
	if t == ShaderTypeFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// shader is the implementation of the Shader interface.
// It holds the linked program, the pre-processed sources and a uniform location cache.
type shader struct {
	key            string
	vertexSource   string
	fragmentSource string
	program        uint32
	locations      map[string]int32
	declarations   []Annotation
}

// Shader defines the interface for a linked GLSL vertex+fragment program.
// Uniform setters write to this program and require it to be current (see Use).
// Unknown uniform names resolve to location -1 and are ignored, as in GL.
type Shader interface {
	common.UniformSetter

	// Key retrieves the unique identifier for this shader, used in logs and errors.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the pre-processed GLSL source of a stage.
	//
	// Parameters:
	//   - stage: the pipeline stage
	//
	// Returns:
	//   - string: the GLSL source after annotation processing
	Source(stage ShaderType) string

	// Program returns the GL program object name.
	//
	// Returns:
	//   - uint32: the program handle
	Program() uint32

	// Declarations returns the @oxy:uniform annotations from both stages.
	//
	// Returns:
	//   - []Annotation: the uniform declarations in source order, vertex stage first
	Declarations() []Annotation

	// UniformName returns the variable name declared for a registered struct type,
	// or fallback if the sources did not declare one through an annotation.
	//
	// Parameters:
	//   - structType: the registered struct type (e.g. AnnotationArgLight)
	//   - fallback: the name to use for sources without annotations
	//
	// Returns:
	//   - string: the uniform variable name
	UniformName(structType AnnotationArg, fallback string) string

	// Use makes this program current.
	Use()

	// Delete releases the GL program.
	Delete()
}

var _ Shader = &shader{}

// NewShader pre-processes, compiles and links a vertex and fragment source pair.
// Must be called on the thread that owns the GL context.
//
// Parameters:
//   - key: a unique identifier for the shader, used in logs and errors
//   - vertexSource: GLSL vertex stage source
//   - fragmentSource: GLSL fragment stage source
//
// Returns:
//   - Shader: the linked program
//   - error: if pre-processing, compilation or linking fails; the GL info log is included
func NewShader(key, vertexSource, fragmentSource string) (Shader, error) {
	s := &shader{
		key:       key,
		locations: make(map[string]int32),
	}

	var err error
	if s.vertexSource, s.fragmentSource, s.declarations, err = preprocessPair(vertexSource, fragmentSource); err != nil {
		return nil, errors.Wrapf(err, "shader %s", key)
	}

	vs, err := compile(s.vertexSource, ShaderTypeVertex)
	if err != nil {
		return nil, errors.Wrapf(err, "shader %s", key)
	}
	defer gl.DeleteShader(vs)

	fs, err := compile(s.fragmentSource, ShaderTypeFragment)
	if err != nil {
		return nil, errors.Wrapf(err, "shader %s", key)
	}
	defer gl.DeleteShader(fs)

	if s.program, err = link(vs, fs); err != nil {
		return nil, errors.Wrapf(err, "shader %s", key)
	}
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source(stage ShaderType) string {
	if stage == ShaderTypeFragment {
		return s.fragmentSource
	}
	return s.vertexSource
}

func (s *shader) Program() uint32 {
	return s.program
}

func (s *shader) Declarations() []Annotation {
	return s.declarations
}

func (s *shader) UniformName(structType AnnotationArg, fallback string) string {
	return uniformName(s.declarations, structType, fallback)
}

func (s *shader) Use() {
	gl.UseProgram(s.program)
}

func (s *shader) Delete() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func (s *shader) SetMat4(name string, m mgl32.Mat4) {
	if loc := s.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (s *shader) SetVec3(name string, v mgl32.Vec3) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (s *shader) SetFloat(name string, f float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1f(loc, f)
	}
}

func (s *shader) SetInt(name string, i int32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1i(loc, i)
	}
}

// location looks a uniform up once and caches the result, including misses.
func (s *shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

// preprocessPair runs both stages through a fresh pre-processor and merges their declarations.
func preprocessPair(vertexSource, fragmentSource string) (vs, fs string, decls []Annotation, err error) {
	pp := NewPreProcessor()
	if vs, err = pp.Process(vertexSource); err != nil {
		return "", "", nil, errors.Wrap(err, "vertex stage")
	}
	decls = append(decls, pp.Declarations()...)

	if fs, err = pp.Process(fragmentSource); err != nil {
		return "", "", nil, errors.Wrap(err, "fragment stage")
	}
	decls = append(decls, pp.Declarations()...)
	return vs, fs, decls, nil
}

func uniformName(decls []Annotation, structType AnnotationArg, fallback string) string {
	for _, d := range decls {
		if d.Type == AnnotationTypeUniform && d.Args[0] == structType {
			return d.VarName()
		}
	}
	return fallback
}

func compile(source string, stage ShaderType) (uint32, error) {
	handle := gl.CreateShader(stage.glEnum())

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, errors.Errorf("failed to compile %s stage: %s", stage, strings.TrimRight(infoLog, "\x00"))
	}
	return handle, nil
}

func link(vs, fs uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, errors.Errorf("failed to link program: %s", strings.TrimRight(infoLog, "\x00"))
	}
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	return program, nil
}
