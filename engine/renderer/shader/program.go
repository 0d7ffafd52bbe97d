package shader

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// program is the implementation of the Program interface.
type program struct {
	dev      device.Device
	handle   device.Handle
	name     string
	uniforms map[string]int32
	defines  map[string]int
	log      *zap.Logger
}

// Program is a linked shader program with a uniform location cache built once after link.
// Uploads go straight to the program object, so Use is only needed before drawing.
type Program interface {
	resource.GpuResource

	// Name retrieves the program name used in log fields.
	//
	// Returns:
	//   - string: the program name
	Name() string

	// Use makes the program current for draw calls.
	Use()

	// Uniforms returns a copy of the uniform location cache.
	//
	// Returns:
	//   - map[string]int32: uniform name to location
	Uniforms() map[string]int32

	// Define returns the value of an @oxy:define found in any stage of the program.
	//
	// Parameters:
	//   - name: the macro name
	//
	// Returns:
	//   - int: the value
	//   - bool: false when no stage defined name
	Define(name string) (int, bool)

	// Location resolves a uniform through the cache. A miss logs a warning and queries the
	// device directly without caching the answer.
	//
	// Parameters:
	//   - name: the uniform name, with array index when addressing an element
	//
	// Returns:
	//   - int32: the location, -1 when the device does not know the name either
	Location(name string) int32

	// LoadInt uploads an int uniform.
	LoadInt(name string, v int32)
	// LoadBool uploads a bool uniform as 0 or 1.
	LoadBool(name string, v bool)
	// LoadFloat uploads a float uniform.
	LoadFloat(name string, v float32)
	// LoadVec2 uploads a vec2 uniform.
	LoadVec2(name string, v mgl32.Vec2)
	// LoadVec3 uploads a vec3 uniform.
	LoadVec3(name string, v mgl32.Vec3)
	// LoadVec4 uploads a vec4 uniform.
	LoadVec4(name string, v mgl32.Vec4)
	// LoadMat2 uploads a mat2 uniform, transposed by the device when transpose is set.
	LoadMat2(name string, m mgl32.Mat2, transpose bool)
	// LoadMat3 uploads a mat3 uniform, transposed by the device when transpose is set.
	LoadMat3(name string, m mgl32.Mat3, transpose bool)
	// LoadMat4 uploads a mat4 uniform, transposed by the device when transpose is set.
	LoadMat4(name string, m mgl32.Mat4, transpose bool)
}

var _ Program = &program{}

// NewProgram compiles every stage, links them and builds the uniform cache. Stage objects
// are deleted as soon as linking finishes, whether it succeeded or not. A failing program
// cannot render anything, so callers treat the returned error as fatal.
//
// Parameters:
//   - dev: the device that owns the program
//   - stages: the stages to compile and link
//   - options: functional options to configure the program
//
// Returns:
//   - Program: the linked program
//   - error: ErrCompile or ErrLink wrapped with the device log, or ErrNoStages
func NewProgram(dev device.Device, stages []Stage, options ...ProgramBuilderOption) (Program, error) {
	p := &program{
		dev:      dev,
		uniforms: make(map[string]int32),
		defines:  make(map[string]int),
	}
	for _, opt := range options {
		opt(p)
	}
	p.log = logger.Or(p.log)
	if p.name == "" && len(stages) > 0 {
		p.name = stages[0].Name
	}
	if len(stages) == 0 {
		return nil, ErrNoStages
	}

	handles := make([]device.Handle, 0, len(stages))
	deleteStages := func() {
		for _, h := range handles {
			dev.DeleteShaderStage(h)
		}
	}
	for _, s := range stages {
		h, log, ok := dev.CreateShaderStage(s.Type, s.Source)
		handles = append(handles, h)
		if !ok {
			deleteStages()
			return nil, fmt.Errorf("%w: %s stage %s: %s", ErrCompile, s.Type, s.Name, strings.TrimSpace(log))
		}
		maps.Copy(p.defines, s.Defines)
	}

	h, log, ok := dev.CreateProgram(handles)
	deleteStages()
	if !ok {
		dev.DeleteProgram(h)
		return nil, fmt.Errorf("%w: program %s: %s", ErrLink, p.name, strings.TrimSpace(log))
	}
	p.handle = h
	p.buildUniformCache()
	p.log.Debug("shader program linked", zap.String("program", p.name), zap.Int("uniforms", len(p.uniforms)))
	return p, nil
}

// MustNewProgram is NewProgram for startup code, panicking on a compile or link failure.
//
// Parameters:
//   - dev: the device that owns the program
//   - stages: the stages to compile and link
//   - options: functional options to configure the program
//
// Returns:
//   - Program: the linked program
func MustNewProgram(dev device.Device, stages []Stage, options ...ProgramBuilderOption) Program {
	p, err := NewProgram(dev, stages, options...)
	if err != nil {
		panic(fmt.Sprintf("shader: %v", err))
	}
	return p
}

// buildUniformCache enumerates active uniforms once. An array reported as "name[0]" with size N
// is expanded to name[0]..name[N-1]; the bare array name aliases element 0.
func (p *program) buildUniformCache() {
	for _, u := range p.dev.ActiveUniforms(p.handle) {
		base, isArray := strings.CutSuffix(u.Name, "[0]")
		if !isArray {
			if loc := p.dev.UniformLocation(p.handle, u.Name); loc >= 0 {
				p.uniforms[u.Name] = loc
			}
			continue
		}
		for i := 0; i < max(u.Size, 1); i++ {
			name := base + "[" + strconv.Itoa(i) + "]"
			if loc := p.dev.UniformLocation(p.handle, name); loc >= 0 {
				p.uniforms[name] = loc
			}
		}
		if loc, ok := p.uniforms[u.Name]; ok {
			p.uniforms[base] = loc
		}
	}
}

func (p *program) Handle() device.Handle {
	return p.handle
}

func (p *program) Released() bool {
	return p.handle == device.InvalidHandle
}

// Release deletes the program object. Calling it again is a no-op.
func (p *program) Release() {
	if p.Released() {
		return
	}
	p.dev.DeleteProgram(p.handle)
	p.handle = device.InvalidHandle
}

func (p *program) Name() string {
	return p.name
}

func (p *program) Use() {
	p.dev.UseProgram(p.handle)
}

func (p *program) Uniforms() map[string]int32 {
	return maps.Clone(p.uniforms)
}

func (p *program) Define(name string) (int, bool) {
	v, ok := p.defines[name]
	return v, ok
}

func (p *program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	p.log.Warn("uniform not found in cache", zap.String("program", p.name), zap.String("uniform", name))
	return p.dev.UniformLocation(p.handle, name)
}

func (p *program) LoadInt(name string, v int32) {
	p.dev.Uniform1i(p.handle, p.Location(name), v)
}

func (p *program) LoadBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.dev.Uniform1i(p.handle, p.Location(name), i)
}

func (p *program) LoadFloat(name string, v float32) {
	p.dev.Uniform1f(p.handle, p.Location(name), v)
}

func (p *program) LoadVec2(name string, v mgl32.Vec2) {
	p.dev.Uniform2f(p.handle, p.Location(name), v[0], v[1])
}

func (p *program) LoadVec3(name string, v mgl32.Vec3) {
	p.dev.Uniform3f(p.handle, p.Location(name), v[0], v[1], v[2])
}

func (p *program) LoadVec4(name string, v mgl32.Vec4) {
	p.dev.Uniform4f(p.handle, p.Location(name), v[0], v[1], v[2], v[3])
}

func (p *program) LoadMat2(name string, m mgl32.Mat2, transpose bool) {
	p.dev.UniformMatrix2(p.handle, p.Location(name), transpose, m[:])
}

func (p *program) LoadMat3(name string, m mgl32.Mat3, transpose bool) {
	p.dev.UniformMatrix3(p.handle, p.Location(name), transpose, m[:])
}

func (p *program) LoadMat4(name string, m mgl32.Mat4, transpose bool) {
	p.dev.UniformMatrix4(p.handle, p.Location(name), transpose, m[:])
}
