// annotations.go defines the annotation types and parser for the Oxy GLSL shader
// pre-processor. Annotations are single-line GLSL comments prefixed with @oxy: that
// inject shared struct definitions and declare struct-typed uniforms. The parsed
// results are stored as Annotation values and consumed by the PreProcessor and the
// Scene, which uses the declared variable names as uniform prefixes.
package shader

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// annotationPrefix is the marker that identifies an Oxy annotation within a GLSL comment line.
// Every annotation must appear on a line beginning with "//" followed by this prefix.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a GLSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the GLSL source of a registered struct definition
	// into the shader at the annotation site. It is consumed entirely during
	// pre-processing and does not produce a declaration.
	//
	// Syntax: //@oxy:include <struct_type>
	//
	// Example: //@oxy:include light
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeUniform generates a struct-typed uniform declaration and appends an
	// Annotation to the PreProcessor's declarations list. The struct itself must be
	// included earlier in the source.
	//
	// Syntax: //@oxy:uniform <struct_type> <var_name>
	//
	// Example: //@oxy:uniform light light
	AnnotationTypeUniform AnnotationType = "uniform"
)

// Annotation represents a single parsed @oxy: annotation from a GLSL shader source line.
type Annotation struct {
	// Type identifies which annotation was parsed (include or uniform).
	Type AnnotationType

	// Args holds the annotation's arguments. The contents depend on Type:
	//   - include: [0] = struct type key (e.g. "light")
	//   - uniform: [0] = struct type key, [1] = uniform variable name
	Args []AnnotationArg

	// Line is the 1-based line number in the original GLSL source where this annotation
	// was found. Used for error reporting.
	Line int
}

// VarName returns the uniform variable name of a uniform annotation, or "" otherwise.
//
// Returns:
//   - string: the declared variable name
func (a Annotation) VarName() string {
	if a.Type != AnnotationTypeUniform || len(a.Args) < 2 {
		return ""
	}
	return string(a.Args[1])
}

// AnnotationArg is a typed string constant used as an argument in annotations.
type AnnotationArg string

// Struct type arguments. Each maps to a Go package with an embedded .glsl asset file.
const (
	// AnnotationArgLight identifies the Light caster struct.
	// Source: engine/light/assets/light.glsl
	AnnotationArgLight AnnotationArg = "light"

	// AnnotationArgMaterial identifies the Material struct (diffuse and specular maps, shininess).
	// Source: engine/renderer/material/assets/material.glsl
	AnnotationArgMaterial AnnotationArg = "material"
)

// validStructTypes lists all AnnotationArg values that are accepted as struct type
// arguments. Each entry must have a corresponding registryEntry in the PreProcessor.
var validStructTypes = []AnnotationArg{
	AnnotationArgLight,
	AnnotationArgMaterial,
}

// parseAnnotation attempts to parse a single line of GLSL source as an @oxy: annotation.
// Returns nil with no error for lines that do not contain the annotation prefix. Returns
// a populated Annotation for valid annotations, or an error describing the problem for
// malformed annotations with correct prefix but invalid syntax or unknown arguments.
//
// Parameters:
//   - line: the raw GLSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, errors.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch args[0] {
	case string(annotationTypeInclude):
		if len(args) != 2 {
			return nil, errors.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, errors.Errorf("line %d: unknown struct type %q in @oxy include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case string(AnnotationTypeUniform):
		if len(args) != 3 {
			return nil, errors.Errorf("line %d: @oxy uniform annotation requires exactly two arguments (struct type, variable name)", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, errors.Errorf("line %d: unknown struct type %q in @oxy uniform annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: AnnotationTypeUniform,
			Args: []AnnotationArg{AnnotationArg(args[1]), AnnotationArg(args[2])},
			Line: lineNum,
		}, nil
	default:
		return nil, errors.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
}
