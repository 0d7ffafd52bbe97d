// Package devicetest provides an in-memory device.Device that records every call, for tests
// that exercise the resource layer without a graphics context.
package devicetest

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// Buffer is the recorded state of a buffer object.
type Buffer struct {
	Size   int
	Data   []byte
	Usage  device.BufferUsage
	Mapped bool
}

// Surface is the recorded state of a texture or render buffer.
type Surface struct {
	Format device.TextureFormat
	Width  int
	Height int
	Pixels []byte
}

// Attrib is a recorded vertex array attribute.
type Attrib struct {
	device.VertexAttribute
	Binding uint32
}

// VertexArray is the recorded state of a vertex array object.
type VertexArray struct {
	VertexBuffers map[uint32]device.Handle
	Strides       map[uint32]int
	ElementBuffer device.Handle
	Attribs       map[uint32]Attrib
}

// Upload is one recorded uniform upload.
type Upload struct {
	Program   device.Handle
	Location  int32
	Name      string
	Ints      []int32
	Floats    []float32
	Transpose bool
}

// Draw is one recorded draw call.
type Draw struct {
	Program     device.Handle
	VertexArray device.Handle
	Framebuffer device.Handle
	Topology    device.Topology
	First       int
	Count       int
	Indexed     bool
	IndexType   device.IndexType
}

// Device is a recording implementation of device.Device. The zero value is not usable; use New.
type Device struct {
	mu sync.Mutex

	next device.Handle

	Buffers      map[device.Handle]*Buffer
	VertexArrays map[device.Handle]*VertexArray
	Surfaces     map[device.Handle]*Surface
	Framebuffers map[device.Handle]map[device.AttachmentSlot]device.Handle
	Stages       map[device.Handle]device.ShaderStage
	Programs     map[device.Handle][]device.Handle

	// Deletes counts delete calls per handle; any value above 1 is a double free.
	Deletes map[device.Handle]int

	BoundBuffers     map[device.BufferTarget]device.Handle
	BoundTextures    map[uint32]device.Handle
	BoundVertexArray device.Handle
	BoundFramebuffer device.Handle
	CurrentProgram   device.Handle

	Uploads   []Upload
	Draws     []Draw
	Clears    int
	Viewports [][4]int

	// ActiveUniformList is returned by ActiveUniforms for every program.
	ActiveUniformList []device.UniformInfo
	// HiddenUniforms resolve through UniformLocation but are not enumerated.
	HiddenUniforms []string
	// LocationQueries counts UniformLocation calls per name.
	LocationQueries map[string]int

	compileFailures map[string]string
	linkFailure     string
	locations       map[string]int32
	names           map[int32]string
	debugCallback   func(msg device.DebugMessage)
}

var _ device.Device = &Device{}

// New creates an empty recording device.
func New() *Device {
	return &Device{
		Buffers:         make(map[device.Handle]*Buffer),
		VertexArrays:    make(map[device.Handle]*VertexArray),
		Surfaces:        make(map[device.Handle]*Surface),
		Framebuffers:    make(map[device.Handle]map[device.AttachmentSlot]device.Handle),
		Stages:          make(map[device.Handle]device.ShaderStage),
		Programs:        make(map[device.Handle][]device.Handle),
		Deletes:         make(map[device.Handle]int),
		BoundBuffers:    make(map[device.BufferTarget]device.Handle),
		BoundTextures:   make(map[uint32]device.Handle),
		LocationQueries: make(map[string]int),
		compileFailures: make(map[string]string),
		locations:       make(map[string]int32),
		names:           make(map[int32]string),
	}
}

// FailCompile makes every stage whose source contains marker fail to compile with log.
func (d *Device) FailCompile(marker, log string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.compileFailures[marker] = log
}

// FailLink makes every subsequent link fail with log.
func (d *Device) FailLink(log string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.linkFailure = log
}

// Emit delivers a debug message to the installed callback, if any.
func (d *Device) Emit(msg device.DebugMessage) {
	d.mu.Lock()
	cb := d.debugCallback
	d.mu.Unlock()
	if cb != nil {
		cb(msg)
	}
}

// Deleted reports whether h was deleted at least once.
func (d *Device) Deleted(h device.Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Deletes[h] > 0
}

// LastUpload returns the most recent upload to the named uniform.
func (d *Device) LastUpload(name string) (Upload, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := len(d.Uploads) - 1; i >= 0; i-- {
		if d.Uploads[i].Name == name {
			return d.Uploads[i], true
		}
	}
	return Upload{}, false
}

// UploadCount returns how many uploads targeted the named uniform.
func (d *Device) UploadCount(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, u := range d.Uploads {
		if u.Name == name {
			n++
		}
	}
	return n
}

// UploadedNames returns the uniform names in upload order.
func (d *Device) UploadedNames() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, 0, len(d.Uploads))
	for _, u := range d.Uploads {
		names = append(names, u.Name)
	}
	return names
}

// ResetUploads forgets all recorded uploads.
func (d *Device) ResetUploads() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Uploads = nil
}

func (d *Device) newHandle() device.Handle {
	d.next++
	return d.next
}

func (d *Device) Backend() device.BackendType {
	return device.BackendTypeGL
}

func (d *Device) CreateBuffer() device.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.newHandle()
	d.Buffers[h] = &Buffer{}
	return h
}

func (d *Device) DeleteBuffer(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Deletes[h]++
	delete(d.Buffers, h)
}

func (d *Device) BufferData(h device.Handle, size int, data []byte, usage device.BufferUsage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.Buffers[h]
	if !ok {
		return
	}
	b.Size = size
	b.Usage = usage
	b.Data = make([]byte, size)
	copy(b.Data, data)
}

func (d *Device) BufferSubData(h device.Handle, offset int, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.Buffers[h]
	if !ok || offset+len(data) > len(b.Data) {
		return
	}
	copy(b.Data[offset:], data)
}

func (d *Device) MapBuffer(h device.Handle, size int, access device.MapAccess) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.Buffers[h]
	if !ok || b.Mapped {
		return nil
	}
	b.Mapped = true
	return b.Data[:size]
}

func (d *Device) UnmapBuffer(h device.Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if b, ok := d.Buffers[h]; ok {
		b.Mapped = false
	}
	return true
}

func (d *Device) BindBuffer(target device.BufferTarget, h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.BoundBuffers[target] = h
}

func (d *Device) CreateVertexArray() device.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.newHandle()
	d.VertexArrays[h] = &VertexArray{
		VertexBuffers: make(map[uint32]device.Handle),
		Strides:       make(map[uint32]int),
		Attribs:       make(map[uint32]Attrib),
	}
	return h
}

func (d *Device) DeleteVertexArray(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Deletes[h]++
	delete(d.VertexArrays, h)
}

func (d *Device) BindVertexArray(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.BoundVertexArray = h
}

func (d *Device) VertexArrayVertexBuffer(vao device.Handle, binding uint32, buffer device.Handle, offset, stride int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if v, ok := d.VertexArrays[vao]; ok {
		v.VertexBuffers[binding] = buffer
		v.Strides[binding] = stride
	}
}

func (d *Device) VertexArrayElementBuffer(vao device.Handle, buffer device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if v, ok := d.VertexArrays[vao]; ok {
		v.ElementBuffer = buffer
	}
}

func (d *Device) VertexArrayAttrib(vao device.Handle, attrib device.VertexAttribute, binding uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if v, ok := d.VertexArrays[vao]; ok {
		v.Attribs[attrib.Slot] = Attrib{VertexAttribute: attrib, Binding: binding}
	}
}

func (d *Device) CreateTexture(desc device.TextureDescriptor) device.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.newHandle()
	d.Surfaces[h] = &Surface{Format: desc.Format, Width: desc.Width, Height: desc.Height}
	return h
}

func (d *Device) TextureUpload(h device.Handle, width, height int, pixels []byte, mipmaps bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.Surfaces[h]; ok {
		s.Pixels = append([]byte(nil), pixels...)
	}
}

func (d *Device) DeleteTexture(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Deletes[h]++
	delete(d.Surfaces, h)
}

func (d *Device) BindTextureUnit(unit uint32, h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.BoundTextures[unit] = h
}

func (d *Device) CreateRenderBuffer(format device.TextureFormat, width, height int) device.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.newHandle()
	d.Surfaces[h] = &Surface{Format: format, Width: width, Height: height}
	return h
}

func (d *Device) DeleteRenderBuffer(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Deletes[h]++
	delete(d.Surfaces, h)
}

func (d *Device) CreateFramebuffer() device.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.newHandle()
	d.Framebuffers[h] = make(map[device.AttachmentSlot]device.Handle)
	return h
}

func (d *Device) DeleteFramebuffer(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Deletes[h]++
	delete(d.Framebuffers, h)
}

func (d *Device) FramebufferTexture(fb device.Handle, slot device.AttachmentSlot, tex device.Handle) {
	d.attach(fb, slot, tex)
}

func (d *Device) FramebufferRenderBuffer(fb device.Handle, slot device.AttachmentSlot, rb device.Handle) {
	d.attach(fb, slot, rb)
}

func (d *Device) attach(fb device.Handle, slot device.AttachmentSlot, h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.Framebuffers[fb]
	if !ok {
		return
	}
	if h == device.InvalidHandle {
		delete(a, slot)
		return
	}
	a[slot] = h
}

// FramebufferStatus mimics the driver: no attachments is missing-attachment, a deleted
// surface or a format in the wrong slot is an incomplete attachment.
func (d *Device) FramebufferStatus(fb device.Handle) device.FramebufferStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.Framebuffers[fb]
	if !ok {
		return device.FramebufferUndefined
	}
	if len(a) == 0 {
		return device.FramebufferIncompleteMissingAttachment
	}
	for slot, h := range a {
		s, ok := d.Surfaces[h]
		if !ok || !s.Format.Kind().Satisfies(slot.Kind()) {
			return device.FramebufferIncompleteAttachment
		}
	}
	return device.FramebufferComplete
}

func (d *Device) BindFramebuffer(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.BoundFramebuffer = h
}

func (d *Device) CreateShaderStage(stage device.ShaderStage, source string) (device.Handle, string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.newHandle()
	d.Stages[h] = stage
	for marker, log := range d.compileFailures {
		if strings.Contains(source, marker) {
			return h, log, false
		}
	}
	return h, "", true
}

func (d *Device) DeleteShaderStage(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Deletes[h]++
	delete(d.Stages, h)
}

func (d *Device) CreateProgram(stages []device.Handle) (device.Handle, string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.newHandle()
	d.Programs[h] = append([]device.Handle(nil), stages...)
	if d.linkFailure != "" {
		return h, d.linkFailure, false
	}
	return h, "", true
}

func (d *Device) DeleteProgram(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Deletes[h]++
	delete(d.Programs, h)
}

func (d *Device) UseProgram(h device.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.CurrentProgram = h
}

func (d *Device) ActiveUniforms(program device.Handle) []device.UniformInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]device.UniformInfo(nil), d.ActiveUniformList...)
}

// UniformLocation resolves names of active uniforms (including every element of an array)
// and hidden uniforms. Locations are stable per name for the lifetime of the device.
func (d *Device) UniformLocation(program device.Handle, name string) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.LocationQueries[name]++
	if !d.resolvable(name) {
		return -1
	}
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	loc := int32(len(d.locations))
	d.locations[name] = loc
	d.names[loc] = name
	return loc
}

func (d *Device) resolvable(name string) bool {
	for _, h := range d.HiddenUniforms {
		if h == name {
			return true
		}
	}
	for _, u := range d.ActiveUniformList {
		if u.Name == name {
			return true
		}
		base, ok := strings.CutSuffix(u.Name, "[0]")
		if !ok {
			continue
		}
		for i := 0; i < u.Size; i++ {
			if name == base+"["+strconv.Itoa(i)+"]" {
				return true
			}
		}
	}
	return false
}

func (d *Device) record(u Upload) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u.Location < 0 {
		return
	}
	u.Name = d.names[u.Location]
	d.Uploads = append(d.Uploads, u)
}

func (d *Device) Uniform1i(program device.Handle, location int32, v int32) {
	d.record(Upload{Program: program, Location: location, Ints: []int32{v}})
}

func (d *Device) Uniform1f(program device.Handle, location int32, v float32) {
	d.record(Upload{Program: program, Location: location, Floats: []float32{v}})
}

func (d *Device) Uniform2f(program device.Handle, location int32, x, y float32) {
	d.record(Upload{Program: program, Location: location, Floats: []float32{x, y}})
}

func (d *Device) Uniform3f(program device.Handle, location int32, x, y, z float32) {
	d.record(Upload{Program: program, Location: location, Floats: []float32{x, y, z}})
}

func (d *Device) Uniform4f(program device.Handle, location int32, x, y, z, w float32) {
	d.record(Upload{Program: program, Location: location, Floats: []float32{x, y, z, w}})
}

func (d *Device) UniformMatrix2(program device.Handle, location int32, transpose bool, m []float32) {
	d.record(Upload{Program: program, Location: location, Floats: append([]float32(nil), m...), Transpose: transpose})
}

func (d *Device) UniformMatrix3(program device.Handle, location int32, transpose bool, m []float32) {
	d.record(Upload{Program: program, Location: location, Floats: append([]float32(nil), m...), Transpose: transpose})
}

func (d *Device) UniformMatrix4(program device.Handle, location int32, transpose bool, m []float32) {
	d.record(Upload{Program: program, Location: location, Floats: append([]float32(nil), m...), Transpose: transpose})
}

func (d *Device) DrawElements(topology device.Topology, count int, indexType device.IndexType) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Draws = append(d.Draws, Draw{
		Program:     d.CurrentProgram,
		VertexArray: d.BoundVertexArray,
		Framebuffer: d.BoundFramebuffer,
		Topology:    topology,
		Count:       count,
		Indexed:     true,
		IndexType:   indexType,
	})
}

func (d *Device) DrawArrays(topology device.Topology, first, count int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Draws = append(d.Draws, Draw{
		Program:     d.CurrentProgram,
		VertexArray: d.BoundVertexArray,
		Framebuffer: d.BoundFramebuffer,
		Topology:    topology,
		First:       first,
		Count:       count,
	})
}

func (d *Device) Viewport(x, y, width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Viewports = append(d.Viewports, [4]int{x, y, width, height})
}

func (d *Device) Clear(r, g, b, a float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Clears++
}

func (d *Device) SetDebugCallback(callback func(msg device.DebugMessage)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.debugCallback = callback
}
