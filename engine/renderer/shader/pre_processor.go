// pre_processor.go implements the Oxy GLSL pre-processor. It scans shader source for
// @oxy: annotations, replaces include annotations with the registered block sources and
// define annotations with #define lines, and collects the defines so Go code can read
// the limits a program was compiled with.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
)

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// blockRegistry maps include keys to their embedded GLSL source.
	blockRegistry map[AnnotationArg]string

	// declarations accumulates define annotations during a Process call.
	declarations []Annotation
}

// PreProcessor processes raw GLSL source containing @oxy: annotations.
type PreProcessor interface {
	// Process replaces annotations with their GLSL output. Each block is included at most once
	// per source; repeated includes of the same block are dropped. The declarations list is
	// reset at the start of each call.
	//
	// Parameters:
	//   - source: the raw GLSL source
	//
	// Returns:
	//   - string: the processed source
	//   - error: an error if an annotation is malformed or references an unknown block
	Process(source string) (string, error)

	// Declarations returns the define annotations collected by the most recent Process call, in source order.
	//
	// Returns:
	//   - []Annotation: the defines of the last Process call
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the engine's GLSL blocks registered.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		blockRegistry: map[AnnotationArg]string{
			AnnotationArgLight:    light.GLSLLightSource,
			AnnotationArgFog:      light.GLSLFogSource,
			AnnotationArgMaterial: material.GLSLMaterialSource,
			AnnotationArgCamera:   camera.GLSLCameraSource,
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]
	included := make(map[AnnotationArg]bool)

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			src, ok := p.blockRegistry[a.Args[0]]
			if !ok {
				return "", fmt.Errorf("line %d: unknown @oxy:include argument %q", i+1, a.Args[0])
			}
			if included[a.Args[0]] {
				continue
			}
			included[a.Args[0]] = true
			out = append(out, strings.TrimRight(src, "\n"))
		case AnnotationTypeDefine:
			out = append(out, fmt.Sprintf("#define %s %d", a.Args[0], a.Value))
			p.declarations = append(p.declarations, *a)
		default:
			return "", fmt.Errorf("line %d: unknown annotation type %q", i+1, a.Type)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}
