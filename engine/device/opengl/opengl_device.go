// Package opengl implements device.Device on top of OpenGL 4.5 core using direct state access.
// A context must be current on the calling OS thread before New is called.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/go-gl/gl/v4.5-core/gl"
)

// glDevice is the OpenGL implementation of device.Device.
type glDevice struct {
	debugCallback func(msg device.DebugMessage)
	debugEnabled  bool
}

var _ device.Device = &glDevice{}

// New loads the OpenGL function pointers for the current context and returns a Device
// bound to it. Depth testing is enabled by default.
//
// Parameters:
//   - options: functional options to configure the device
//
// Returns:
//   - device.Device: the OpenGL device
//   - error: error if the GL bindings could not be initialized
func New(options ...DeviceBuilderOption) (device.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
	}
	d := &glDevice{}
	for _, opt := range options {
		opt(d)
	}
	gl.Enable(gl.DEPTH_TEST)
	if d.debugEnabled {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	}
	if d.debugCallback != nil {
		d.SetDebugCallback(d.debugCallback)
	}
	return d, nil
}

// Version returns the GL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *glDevice) Backend() device.BackendType {
	return device.BackendTypeGL
}

func (d *glDevice) CreateBuffer() device.Handle {
	var h uint32
	gl.CreateBuffers(1, &h)
	return device.Handle(h)
}

func (d *glDevice) DeleteBuffer(h device.Handle) {
	name := uint32(h)
	gl.DeleteBuffers(1, &name)
}

func (d *glDevice) BufferData(h device.Handle, size int, data []byte, usage device.BufferUsage) {
	gl.NamedBufferData(uint32(h), size, bytePtr(data), bufferUsage(usage))
}

func (d *glDevice) BufferSubData(h device.Handle, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.NamedBufferSubData(uint32(h), offset, len(data), bytePtr(data))
}

func (d *glDevice) MapBuffer(h device.Handle, size int, access device.MapAccess) []byte {
	ptr := gl.MapNamedBuffer(uint32(h), mapAccess(access))
	if ptr == nil || size <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), size)
}

func (d *glDevice) UnmapBuffer(h device.Handle) bool {
	return gl.UnmapNamedBuffer(uint32(h))
}

func (d *glDevice) BindBuffer(target device.BufferTarget, h device.Handle) {
	gl.BindBuffer(bufferTarget(target), uint32(h))
}

func (d *glDevice) CreateVertexArray() device.Handle {
	var h uint32
	gl.CreateVertexArrays(1, &h)
	return device.Handle(h)
}

func (d *glDevice) DeleteVertexArray(h device.Handle) {
	name := uint32(h)
	gl.DeleteVertexArrays(1, &name)
}

func (d *glDevice) BindVertexArray(h device.Handle) {
	gl.BindVertexArray(uint32(h))
}

func (d *glDevice) VertexArrayVertexBuffer(vao device.Handle, binding uint32, buffer device.Handle, offset, stride int) {
	gl.VertexArrayVertexBuffer(uint32(vao), binding, uint32(buffer), offset, int32(stride))
}

func (d *glDevice) VertexArrayElementBuffer(vao device.Handle, buffer device.Handle) {
	gl.VertexArrayElementBuffer(uint32(vao), uint32(buffer))
}

func (d *glDevice) VertexArrayAttrib(vao device.Handle, attrib device.VertexAttribute, binding uint32) {
	gl.EnableVertexArrayAttrib(uint32(vao), attrib.Slot)
	switch {
	case attrib.Integer:
		gl.VertexArrayAttribIFormat(uint32(vao), attrib.Slot, int32(attrib.Count), attributeType(attrib.Type), uint32(attrib.Offset))
	case attrib.Type == device.AttributeTypeDouble:
		gl.VertexArrayAttribLFormat(uint32(vao), attrib.Slot, int32(attrib.Count), gl.DOUBLE, uint32(attrib.Offset))
	default:
		gl.VertexArrayAttribFormat(uint32(vao), attrib.Slot, int32(attrib.Count), attributeType(attrib.Type), attrib.Normalized, uint32(attrib.Offset))
	}
	gl.VertexArrayAttribBinding(uint32(vao), attrib.Slot, binding)
}

func (d *glDevice) CreateTexture(desc device.TextureDescriptor) device.Handle {
	var h uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &h)
	levels := desc.Levels
	if levels < 1 {
		levels = 1
	}
	gl.TextureStorage2D(h, int32(levels), textureFormat(desc.Format), int32(desc.Width), int32(desc.Height))
	gl.TextureParameteri(h, gl.TEXTURE_MIN_FILTER, textureFilter(desc.MinFilter))
	gl.TextureParameteri(h, gl.TEXTURE_MAG_FILTER, textureFilter(desc.MagFilter))
	gl.TextureParameteri(h, gl.TEXTURE_WRAP_S, textureWrap(desc.Wrap))
	gl.TextureParameteri(h, gl.TEXTURE_WRAP_T, textureWrap(desc.Wrap))
	return device.Handle(h)
}

func (d *glDevice) TextureUpload(h device.Handle, width, height int, pixels []byte, mipmaps bool) {
	gl.TextureSubImage2D(uint32(h), 0, 0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, bytePtr(pixels))
	if mipmaps {
		gl.GenerateTextureMipmap(uint32(h))
	}
}

func (d *glDevice) DeleteTexture(h device.Handle) {
	name := uint32(h)
	gl.DeleteTextures(1, &name)
}

func (d *glDevice) BindTextureUnit(unit uint32, h device.Handle) {
	gl.BindTextureUnit(unit, uint32(h))
}

func (d *glDevice) CreateRenderBuffer(format device.TextureFormat, width, height int) device.Handle {
	var h uint32
	gl.CreateRenderbuffers(1, &h)
	gl.NamedRenderbufferStorage(h, textureFormat(format), int32(width), int32(height))
	return device.Handle(h)
}

func (d *glDevice) DeleteRenderBuffer(h device.Handle) {
	name := uint32(h)
	gl.DeleteRenderbuffers(1, &name)
}

func (d *glDevice) CreateFramebuffer() device.Handle {
	var h uint32
	gl.CreateFramebuffers(1, &h)
	return device.Handle(h)
}

func (d *glDevice) DeleteFramebuffer(h device.Handle) {
	name := uint32(h)
	gl.DeleteFramebuffers(1, &name)
}

func (d *glDevice) FramebufferTexture(fb device.Handle, slot device.AttachmentSlot, tex device.Handle) {
	gl.NamedFramebufferTexture(uint32(fb), attachmentSlot(slot), uint32(tex), 0)
}

func (d *glDevice) FramebufferRenderBuffer(fb device.Handle, slot device.AttachmentSlot, rb device.Handle) {
	gl.NamedFramebufferRenderbuffer(uint32(fb), attachmentSlot(slot), gl.RENDERBUFFER, uint32(rb))
}

func (d *glDevice) FramebufferStatus(fb device.Handle) device.FramebufferStatus {
	switch gl.CheckNamedFramebufferStatus(uint32(fb), gl.FRAMEBUFFER) {
	case gl.FRAMEBUFFER_COMPLETE:
		return device.FramebufferComplete
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return device.FramebufferIncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return device.FramebufferIncompleteMissingAttachment
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return device.FramebufferUnsupported
	default:
		return device.FramebufferUndefined
	}
}

func (d *glDevice) BindFramebuffer(h device.Handle) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(h))
}

func (d *glDevice) CreateShaderStage(stage device.ShaderStage, source string) (device.Handle, string, bool) {
	h := gl.CreateShader(shaderStage(stage))
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(h, 1, csources, nil)
	free()
	gl.CompileShader(h)

	var status int32
	gl.GetShaderiv(h, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(h, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(h, logLength, nil, gl.Str(log))
		return device.Handle(h), strings.TrimRight(log, "\x00"), false
	}
	return device.Handle(h), "", true
}

func (d *glDevice) DeleteShaderStage(h device.Handle) {
	gl.DeleteShader(uint32(h))
}

func (d *glDevice) CreateProgram(stages []device.Handle) (device.Handle, string, bool) {
	p := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(p, uint32(s))
	}
	gl.LinkProgram(p)
	for _, s := range stages {
		gl.DetachShader(p, uint32(s))
	}

	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p, logLength, nil, gl.Str(log))
		return device.Handle(p), strings.TrimRight(log, "\x00"), false
	}
	return device.Handle(p), "", true
}

func (d *glDevice) DeleteProgram(h device.Handle) {
	gl.DeleteProgram(uint32(h))
}

func (d *glDevice) UseProgram(h device.Handle) {
	gl.UseProgram(uint32(h))
}

func (d *glDevice) ActiveUniforms(program device.Handle) []device.UniformInfo {
	var count, maxLength int32
	gl.GetProgramiv(uint32(program), gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(uint32(program), gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)

	infos := make([]device.UniformInfo, 0, count)
	buf := make([]uint8, maxLength+1)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(uint32(program), uint32(i), maxLength+1, &length, &size, &xtype, &buf[0])
		infos = append(infos, device.UniformInfo{
			Name: string(buf[:length]),
			Size: int(size),
			Type: xtype,
		})
	}
	return infos
}

func (d *glDevice) UniformLocation(program device.Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (d *glDevice) Uniform1i(program device.Handle, location int32, v int32) {
	gl.ProgramUniform1i(uint32(program), location, v)
}

func (d *glDevice) Uniform1f(program device.Handle, location int32, v float32) {
	gl.ProgramUniform1f(uint32(program), location, v)
}

func (d *glDevice) Uniform2f(program device.Handle, location int32, x, y float32) {
	gl.ProgramUniform2f(uint32(program), location, x, y)
}

func (d *glDevice) Uniform3f(program device.Handle, location int32, x, y, z float32) {
	gl.ProgramUniform3f(uint32(program), location, x, y, z)
}

func (d *glDevice) Uniform4f(program device.Handle, location int32, x, y, z, w float32) {
	gl.ProgramUniform4f(uint32(program), location, x, y, z, w)
}

func (d *glDevice) UniformMatrix2(program device.Handle, location int32, transpose bool, m []float32) {
	gl.ProgramUniformMatrix2fv(uint32(program), location, 1, transpose, &m[0])
}

func (d *glDevice) UniformMatrix3(program device.Handle, location int32, transpose bool, m []float32) {
	gl.ProgramUniformMatrix3fv(uint32(program), location, 1, transpose, &m[0])
}

func (d *glDevice) UniformMatrix4(program device.Handle, location int32, transpose bool, m []float32) {
	gl.ProgramUniformMatrix4fv(uint32(program), location, 1, transpose, &m[0])
}

func (d *glDevice) DrawElements(topology device.Topology, count int, indexType device.IndexType) {
	gl.DrawElements(topologyMode(topology), int32(count), indexTypeEnum(indexType), nil)
}

func (d *glDevice) DrawArrays(topology device.Topology, first, count int) {
	gl.DrawArrays(topologyMode(topology), int32(first), int32(count))
}

func (d *glDevice) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *glDevice) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *glDevice) SetDebugCallback(callback func(msg device.DebugMessage)) {
	d.debugCallback = callback
	if callback == nil {
		gl.Disable(gl.DEBUG_OUTPUT)
		return
	}
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		callback(device.DebugMessage{
			Source:   debugSource(source),
			Type:     debugType(gltype),
			ID:       id,
			Severity: debugSeverity(severity),
			Message:  message,
		})
	}, nil)
}

// bytePtr returns a pointer to the first byte of b, or nil for an empty slice.
func bytePtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gl.Ptr(b)
}
