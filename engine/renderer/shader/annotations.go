// annotations.go defines the annotation types, argument constants and parser for the Oxy
// GLSL pre-processor. Annotations are single-line GLSL comments prefixed with @oxy: that
// inject the engine's shared uniform blocks and compile-time limits into shader sources.
package shader

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies an Oxy annotation within a GLSL comment line.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a GLSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the GLSL source of a registered block at the annotation site.
	// The block source is embedded from the owning package's assets directory.
	//
	// Syntax: //@oxy:include <block>
	//
	// Example: //@oxy:include light
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeDefine emits a #define with an integer value and records it as a declaration,
	// so Go code can read the limit a shader was compiled with.
	//
	// Syntax: //@oxy:define <NAME> <int>
	//
	// Example: //@oxy:define MAX_POINT_LIGHTS 8
	AnnotationTypeDefine AnnotationType = "define"
)

// Annotation represents a single parsed @oxy: annotation from a GLSL source line.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Args holds the annotation's arguments:
	//   - include: [0] = block key
	//   - define:  [0] = macro name
	Args []AnnotationArg

	// Line is the 1-based line number in the original source.
	Line int

	// Value is the integer value of a define annotation. Zero for include annotations.
	Value int
}

// AnnotationArg is a typed string used as an annotation argument.
type AnnotationArg string

const (
	// AnnotationArgLight identifies the light structs, uniform arrays and lighting functions.
	// Source: engine/light/assets/light.glsl
	AnnotationArgLight AnnotationArg = "light"

	// AnnotationArgFog identifies the Fog struct, fog uniform and applyFog.
	// Source: engine/light/assets/fog.glsl
	AnnotationArgFog AnnotationArg = "fog"

	// AnnotationArgMaterial identifies the Material struct and material uniform.
	// Source: engine/renderer/material/assets/material.glsl
	AnnotationArgMaterial AnnotationArg = "material"

	// AnnotationArgCamera identifies the view, projection and viewPos uniforms.
	// Source: engine/camera/assets/camera.glsl
	AnnotationArgCamera AnnotationArg = "camera"
)

// validBlocks lists every AnnotationArg accepted by @oxy:include. Each must have an entry in
// the PreProcessor's block registry.
var validBlocks = []AnnotationArg{
	AnnotationArgLight,
	AnnotationArgFog,
	AnnotationArgMaterial,
	AnnotationArgCamera,
}

var macroName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// parseAnnotation attempts to parse a single line of GLSL source as an @oxy: annotation.
// Returns nil with no error for lines that do not contain the annotation prefix.
//
// Parameters:
//   - line: the raw source line
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
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch args[0] {
	case string(annotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validBlocks, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown block %q in @oxy include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case string(AnnotationTypeDefine):
		if len(args) != 3 {
			return nil, fmt.Errorf("line %d: @oxy define annotation requires a name and a value", lineNum)
		}
		if !macroName.MatchString(args[1]) {
			return nil, fmt.Errorf("line %d: invalid macro name %q in @oxy define annotation", lineNum, args[1])
		}
		v, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value %q in @oxy define annotation: %v", lineNum, args[2], err)
		}
		return &Annotation{
			Type:  AnnotationTypeDefine,
			Args:  []AnnotationArg{AnnotationArg(args[1])},
			Line:  lineNum,
			Value: v,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
}
