// pre_processor.go implements the Oxy GLSL shader pre-processor. It scans shader
// source code for @oxy: annotations, replaces them with injected struct source or
// generated uniform declarations, and collects a declarations list that the Scene
// uses to find the uniform names of the light and material structs.
//
// Sources without annotations pass through unchanged.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-lightcaster/engine/light"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/material"
	"github.com/pkg/errors"
)

// registryEntry pairs a GLSL struct source string (embedded from a .glsl asset file)
// with the struct type name used in generated uniform declarations.
type registryEntry struct {
	// Source is the raw GLSL struct definition text injected by @oxy:include.
	Source string

	// Type is the GLSL type name emitted in @oxy:uniform declarations (e.g. "Light").
	Type string
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// structRegistry maps struct type argument keys to their embedded GLSL source and type name.
	structRegistry map[AnnotationArg]registryEntry

	// declarations accumulates AnnotationTypeUniform annotations during a Process call.
	declarations []Annotation
}

// PreProcessor processes raw GLSL shader source code containing @oxy: annotations.
type PreProcessor interface {
	// Process replaces @oxy:include annotations with embedded struct source text and
	// @oxy:uniform annotations with uniform declarations. A struct must be included
	// before it is declared as a uniform.
	//
	// The declarations list is reset at the start of each call and can be retrieved
	// via Declarations() after Process returns.
	//
	// Parameters:
	//   - source: the raw GLSL shader source code
	//
	// Returns:
	//   - string: the processed GLSL source
	//   - error: an error if any annotation is malformed or references a struct that was not included
	Process(source string) (string, error)

	// Declarations returns the uniform annotations collected during the most recent call
	// to Process, in source order.
	//
	// Returns:
	//   - []Annotation: the declarations collected during the last Process call
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a new PreProcessor with the light and material structs registered.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgLight:    {Source: light.GLSLSource, Type: "Light"},
			AnnotationArgMaterial: {Source: material.GLSLSource, Type: "Material"},
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = nil

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))
	included := make(map[AnnotationArg]bool)

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		entry, ok := p.structRegistry[a.Args[0]]
		if !ok {
			return "", errors.Errorf("line %d: no registered source for %q", i+1, a.Args[0])
		}

		switch a.Type {
		case annotationTypeInclude:
			if included[a.Args[0]] {
				continue
			}
			included[a.Args[0]] = true
			out = append(out, strings.TrimRight(entry.Source, "\n"))
		case AnnotationTypeUniform:
			if !included[a.Args[0]] {
				return "", errors.Errorf("line %d: @oxy uniform %s used before @oxy include %s", i+1, a.VarName(), a.Args[0])
			}
			out = append(out, fmt.Sprintf("uniform %s %s;", entry.Type, a.VarName()))
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}
