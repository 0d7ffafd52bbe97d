package shader

import (
	"fmt"
	"path"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
)

// Stage is one shader stage source ready for compilation.
type Stage struct {
	// Name identifies the stage in diagnostics, usually the source path.
	Name string

	// Source is the pre-processed GLSL text.
	Source string

	// Type is the pipeline stage the source compiles to.
	Type device.ShaderStage

	// Defines holds the @oxy:define values found while pre-processing.
	Defines map[string]int
}

// NewStage pre-processes source and returns the stage.
//
// Parameters:
//   - name: a name for diagnostics
//   - stageType: the pipeline stage
//   - source: raw GLSL text that may contain @oxy: annotations
//
// Returns:
//   - Stage: the processed stage
//   - error: a pre-processing error
func NewStage(name string, stageType device.ShaderStage, source string) (Stage, error) {
	pp := NewPreProcessor()
	processed, err := pp.Process(source)
	if err != nil {
		return Stage{}, fmt.Errorf("pre-process %s: %w", name, err)
	}
	s := Stage{Name: name, Source: processed, Type: stageType, Defines: make(map[string]int)}
	for _, d := range pp.Declarations() {
		s.Defines[string(d.Args[0])] = d.Value
	}
	return s, nil
}

// LoadStage reads a stage through an asset source and pre-processes it.
//
// Parameters:
//   - src: the asset source
//   - p: the logical path of the shader file
//   - stageType: the pipeline stage
//
// Returns:
//   - Stage: the processed stage
//   - error: loader.ErrNotFound when the path does not exist, or a pre-processing error
func LoadStage(src loader.Source, p string, stageType device.ShaderStage) (Stage, error) {
	data, err := loader.ReadAll(src, p)
	if err != nil {
		return Stage{}, fmt.Errorf("load %s shader: %w", stageType, err)
	}
	return NewStage(p, stageType, string(data))
}

// StageTypeFromPath maps a file extension to a pipeline stage: .vert, .frag and .geom.
//
// Parameters:
//   - p: the shader path
//
// Returns:
//   - device.ShaderStage: the stage type
//   - bool: false when the extension is not recognized
func StageTypeFromPath(p string) (device.ShaderStage, bool) {
	switch strings.ToLower(path.Ext(p)) {
	case ".vert", ".vs":
		return device.ShaderStageVertex, true
	case ".frag", ".fs":
		return device.ShaderStageFragment, true
	case ".geom", ".gs":
		return device.ShaderStageGeometry, true
	}
	return 0, false
}

// LoadStages loads every path with LoadStage, deriving each stage type from the file extension.
//
// Parameters:
//   - src: the asset source
//   - paths: the shader paths
//
// Returns:
//   - []Stage: the processed stages in path order
//   - error: the first load error
func LoadStages(src loader.Source, paths ...string) ([]Stage, error) {
	stages := make([]Stage, 0, len(paths))
	for _, p := range paths {
		typ, ok := StageTypeFromPath(p)
		if !ok {
			return nil, fmt.Errorf("shader %s: unknown stage extension", p)
		}
		s, err := LoadStage(src, p, typ)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, nil
}
