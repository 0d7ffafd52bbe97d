package device

// BackendType identifies the graphics API implementation behind a Device.
type BackendType int

const (
	// BackendTypeGL selects the OpenGL 4.5 core backend (direct state access).
	BackendTypeGL BackendType = iota
)

// Handle is an opaque device object name. Zero is never a valid object.
type Handle uint32

// InvalidHandle is the handle value of a released or never-created object.
const InvalidHandle Handle = 0

// Device is the binding surface the resource layer talks to. Every GPU object is created,
// bound and destroyed through it, so the rest of the engine never touches the graphics API
// directly. All methods must be called from the thread that owns the graphics context.
type Device interface {
	// Backend returns the graphics API this device drives.
	//
	// Returns:
	//   - BackendType: the backend of this device
	Backend() BackendType

	// CreateBuffer creates an empty buffer object with no storage.
	//
	// Returns:
	//   - Handle: the new buffer handle
	CreateBuffer() Handle

	// DeleteBuffer destroys a buffer object.
	//
	// Parameters:
	//   - h: the buffer to destroy
	DeleteBuffer(h Handle)

	// BufferData (re)allocates the storage of a buffer. When data is nil the storage is left uninitialized.
	//
	// Parameters:
	//   - h: the buffer handle
	//   - size: the storage size in bytes
	//   - data: optional initial contents, at least size bytes when non-nil
	//   - usage: the usage hint for the storage
	BufferData(h Handle, size int, data []byte, usage BufferUsage)

	// BufferSubData overwrites a byte range of the buffer storage.
	//
	// Parameters:
	//   - h: the buffer handle
	//   - offset: destination offset in bytes
	//   - data: the bytes to write
	BufferSubData(h Handle, offset int, data []byte)

	// MapBuffer maps the whole buffer storage into client memory.
	//
	// Parameters:
	//   - h: the buffer handle
	//   - size: the buffer capacity in bytes
	//   - access: requested access to the mapping
	//
	// Returns:
	//   - []byte: a view of the mapped memory, nil if the device refused the mapping
	MapBuffer(h Handle, size int, access MapAccess) []byte

	// UnmapBuffer releases a mapping created by MapBuffer.
	//
	// Parameters:
	//   - h: the buffer handle
	//
	// Returns:
	//   - bool: false if the buffer contents were corrupted while mapped
	UnmapBuffer(h Handle) bool

	// BindBuffer binds a buffer to a target. Binding InvalidHandle unbinds the target.
	//
	// Parameters:
	//   - target: the binding point
	//   - h: the buffer handle
	BindBuffer(target BufferTarget, h Handle)

	// CreateVertexArray creates a vertex array object.
	//
	// Returns:
	//   - Handle: the new vertex array handle
	CreateVertexArray() Handle

	// DeleteVertexArray destroys a vertex array object.
	//
	// Parameters:
	//   - h: the vertex array to destroy
	DeleteVertexArray(h Handle)

	// BindVertexArray binds a vertex array. Binding InvalidHandle unbinds it.
	//
	// Parameters:
	//   - h: the vertex array handle
	BindVertexArray(h Handle)

	// VertexArrayVertexBuffer attaches a vertex buffer to a binding index of a vertex array.
	//
	// Parameters:
	//   - vao: the vertex array
	//   - binding: the binding index
	//   - buffer: the vertex buffer
	//   - offset: byte offset of the first vertex
	//   - stride: byte distance between consecutive vertices
	VertexArrayVertexBuffer(vao Handle, binding uint32, buffer Handle, offset, stride int)

	// VertexArrayElementBuffer attaches an index buffer to a vertex array.
	//
	// Parameters:
	//   - vao: the vertex array
	//   - buffer: the index buffer
	VertexArrayElementBuffer(vao Handle, buffer Handle)

	// VertexArrayAttrib enables and describes one attribute slot of a vertex array.
	//
	// Parameters:
	//   - vao: the vertex array
	//   - attrib: the attribute description, including its relative offset
	//   - binding: the buffer binding index the attribute reads from
	VertexArrayAttrib(vao Handle, attrib VertexAttribute, binding uint32)

	// CreateTexture creates a 2D texture with immutable storage.
	//
	// Parameters:
	//   - desc: size, format and sampling state of the texture
	//
	// Returns:
	//   - Handle: the new texture handle
	CreateTexture(desc TextureDescriptor) Handle

	// TextureUpload writes RGBA8 pixels into mip level 0 and regenerates mipmaps when requested.
	//
	// Parameters:
	//   - h: the texture handle
	//   - width, height: the pixel dimensions of the data
	//   - pixels: tightly packed RGBA8 rows
	//   - mipmaps: true to regenerate the mip chain after upload
	TextureUpload(h Handle, width, height int, pixels []byte, mipmaps bool)

	// DeleteTexture destroys a texture.
	//
	// Parameters:
	//   - h: the texture to destroy
	DeleteTexture(h Handle)

	// BindTextureUnit binds a texture to a sampler unit. Binding InvalidHandle clears the unit.
	//
	// Parameters:
	//   - unit: the texture unit
	//   - h: the texture handle
	BindTextureUnit(unit uint32, h Handle)

	// CreateRenderBuffer creates a render buffer with storage of the given format and size.
	//
	// Parameters:
	//   - format: the internal format
	//   - width, height: the storage size in pixels
	//
	// Returns:
	//   - Handle: the new render buffer handle
	CreateRenderBuffer(format TextureFormat, width, height int) Handle

	// DeleteRenderBuffer destroys a render buffer.
	//
	// Parameters:
	//   - h: the render buffer to destroy
	DeleteRenderBuffer(h Handle)

	// CreateFramebuffer creates a framebuffer object without attachments.
	//
	// Returns:
	//   - Handle: the new framebuffer handle
	CreateFramebuffer() Handle

	// DeleteFramebuffer destroys a framebuffer object. Attachments are not destroyed.
	//
	// Parameters:
	//   - h: the framebuffer to destroy
	DeleteFramebuffer(h Handle)

	// FramebufferTexture attaches a texture to a framebuffer slot.
	//
	// Parameters:
	//   - fb: the framebuffer
	//   - slot: the attachment point
	//   - tex: the texture, or InvalidHandle to detach
	FramebufferTexture(fb Handle, slot AttachmentSlot, tex Handle)

	// FramebufferRenderBuffer attaches a render buffer to a framebuffer slot.
	//
	// Parameters:
	//   - fb: the framebuffer
	//   - slot: the attachment point
	//   - rb: the render buffer, or InvalidHandle to detach
	FramebufferRenderBuffer(fb Handle, slot AttachmentSlot, rb Handle)

	// FramebufferStatus reports the device's completeness verdict for a framebuffer.
	//
	// Parameters:
	//   - fb: the framebuffer
	//
	// Returns:
	//   - FramebufferStatus: FramebufferComplete or the reason it is not
	FramebufferStatus(fb Handle) FramebufferStatus

	// BindFramebuffer binds a framebuffer for drawing and reading. InvalidHandle selects the window.
	//
	// Parameters:
	//   - h: the framebuffer handle
	BindFramebuffer(h Handle)

	// CreateShaderStage compiles a shader stage.
	//
	// Parameters:
	//   - stage: the pipeline stage of the source
	//   - source: the shader source text
	//
	// Returns:
	//   - Handle: the compiled stage, valid even when compilation failed
	//   - string: the info log, non-empty on failure
	//   - bool: true if compilation succeeded
	CreateShaderStage(stage ShaderStage, source string) (Handle, string, bool)

	// DeleteShaderStage destroys a shader stage object.
	//
	// Parameters:
	//   - h: the shader stage to destroy
	DeleteShaderStage(h Handle)

	// CreateProgram links compiled stages into a program and detaches them afterwards.
	//
	// Parameters:
	//   - stages: compiled shader stage handles
	//
	// Returns:
	//   - Handle: the program, valid even when linking failed
	//   - string: the link log, non-empty on failure
	//   - bool: true if linking succeeded
	CreateProgram(stages []Handle) (Handle, string, bool)

	// DeleteProgram destroys a program.
	//
	// Parameters:
	//   - h: the program to destroy
	DeleteProgram(h Handle)

	// UseProgram makes a program current for draw calls.
	//
	// Parameters:
	//   - h: the program handle
	UseProgram(h Handle)

	// ActiveUniforms enumerates the active uniforms of a linked program.
	//
	// Parameters:
	//   - program: the program handle
	//
	// Returns:
	//   - []UniformInfo: one entry per active uniform declaration
	ActiveUniforms(program Handle) []UniformInfo

	// UniformLocation queries the location of a uniform by name.
	//
	// Parameters:
	//   - program: the program handle
	//   - name: the uniform name, including any array index
	//
	// Returns:
	//   - int32: the location, -1 if the name is not an active uniform
	UniformLocation(program Handle, name string) int32

	// Uniform1i uploads an int (also used for bools and samplers).
	Uniform1i(program Handle, location int32, v int32)
	// Uniform1f uploads a float.
	Uniform1f(program Handle, location int32, v float32)
	// Uniform2f uploads a vec2.
	Uniform2f(program Handle, location int32, x, y float32)
	// Uniform3f uploads a vec3.
	Uniform3f(program Handle, location int32, x, y, z float32)
	// Uniform4f uploads a vec4.
	Uniform4f(program Handle, location int32, x, y, z, w float32)
	// UniformMatrix2 uploads a column-major mat2 (4 floats).
	UniformMatrix2(program Handle, location int32, transpose bool, m []float32)
	// UniformMatrix3 uploads a column-major mat3 (9 floats).
	UniformMatrix3(program Handle, location int32, transpose bool, m []float32)
	// UniformMatrix4 uploads a column-major mat4 (16 floats).
	UniformMatrix4(program Handle, location int32, transpose bool, m []float32)

	// DrawElements submits an indexed draw using the bound vertex array.
	//
	// Parameters:
	//   - topology: primitive assembly mode
	//   - count: number of indices
	//   - indexType: element type of the bound index buffer
	DrawElements(topology Topology, count int, indexType IndexType)

	// DrawArrays submits a non-indexed draw using the bound vertex array.
	//
	// Parameters:
	//   - topology: primitive assembly mode
	//   - first: first vertex
	//   - count: number of vertices
	DrawArrays(topology Topology, first, count int)

	// Viewport sets the drawable region of the bound framebuffer.
	Viewport(x, y, width, height int)

	// Clear clears the color and depth of the bound framebuffer.
	//
	// Parameters:
	//   - r, g, b, a: the clear color
	Clear(r, g, b, a float32)

	// SetDebugCallback installs a callback receiving driver diagnostics. Nil removes it.
	//
	// Parameters:
	//   - callback: function receiving each debug message
	SetDebugCallback(callback func(msg DebugMessage))
}
