package device

import (
	"fmt"
	"strconv"
)

// BufferTarget is the binding point a buffer is bound to.
type BufferTarget int

const (
	// BufferTargetArray holds vertex attribute data.
	BufferTargetArray BufferTarget = iota
	// BufferTargetElementArray holds vertex indices.
	BufferTargetElementArray
	// BufferTargetUniform holds uniform block data.
	BufferTargetUniform
)

// BufferUsage is the expected access pattern of a buffer's storage.
type BufferUsage int

const (
	// BufferUsageStaticDraw is written once and drawn many times.
	BufferUsageStaticDraw BufferUsage = iota
	// BufferUsageDynamicDraw is rewritten repeatedly and drawn many times.
	BufferUsageDynamicDraw
	// BufferUsageStreamDraw is written once and drawn a few times.
	BufferUsageStreamDraw
)

// MapAccess is the access requested when mapping buffer storage.
type MapAccess int

const (
	MapReadOnly MapAccess = iota
	MapWriteOnly
	MapReadWrite
)

// AttributeType is the component type of a vertex attribute.
type AttributeType int

const (
	AttributeTypeByte AttributeType = iota
	AttributeTypeUnsignedByte
	AttributeTypeShort
	AttributeTypeUnsignedShort
	AttributeTypeHalfFloat
	AttributeTypeInt
	AttributeTypeUnsignedInt
	AttributeTypeFloat
	AttributeTypeFixed
	AttributeTypeDouble
	AttributeTypeInt2101010Rev
	AttributeTypeUnsignedInt2101010Rev
	AttributeTypeUnsignedInt10f11f11fRev
)

// Size returns the byte size of one component of the type.
// Packed types report the size of their whole 32-bit word.
//
// Returns:
//   - int: size in bytes
func (t AttributeType) Size() int {
	switch t {
	case AttributeTypeByte, AttributeTypeUnsignedByte:
		return 1
	case AttributeTypeShort, AttributeTypeUnsignedShort, AttributeTypeHalfFloat:
		return 2
	case AttributeTypeDouble:
		return 8
	default:
		return 4
	}
}

// Packed reports whether all components of the type share one 32-bit word.
func (t AttributeType) Packed() bool {
	switch t {
	case AttributeTypeInt2101010Rev, AttributeTypeUnsignedInt2101010Rev, AttributeTypeUnsignedInt10f11f11fRev:
		return true
	}
	return false
}

// VertexAttribute describes one shader input slot fed from a vertex buffer.
type VertexAttribute struct {
	// Slot is the shader input location.
	Slot uint32
	// Count is the number of components (1-4).
	Count int
	// Type is the component type.
	Type AttributeType
	// Normalized maps integer components into [0,1] or [-1,1] when read as floats.
	Normalized bool
	// Integer keeps integer components as integers in the shader.
	Integer bool
	// Offset is the byte offset of the attribute inside one vertex. Filled in by the layout.
	Offset int
}

// ByteSize returns the number of bytes the attribute occupies in one vertex.
//
// Returns:
//   - int: attribute size in bytes
func (a VertexAttribute) ByteSize() int {
	if a.Type.Packed() {
		return a.Type.Size()
	}
	return a.Count * a.Type.Size()
}

// IndexType is the element type of an index buffer.
type IndexType int

const (
	IndexTypeUnsignedByte IndexType = iota
	IndexTypeUnsignedShort
	IndexTypeUnsignedInt
)

// Size returns the byte size of one index.
func (t IndexType) Size() int {
	switch t {
	case IndexTypeUnsignedByte:
		return 1
	case IndexTypeUnsignedShort:
		return 2
	default:
		return 4
	}
}

// Topology is the primitive assembly mode of a draw call.
type Topology int

const (
	TopologyTriangles Topology = iota
	TopologyTriangleStrip
	TopologyLines
	TopologyPoints
)

// TextureFormat is the internal storage format of a texture or render buffer.
type TextureFormat int

const (
	TextureFormatRGBA8 TextureFormat = iota
	TextureFormatRGB8
	TextureFormatSRGB8Alpha8
	TextureFormatDepthComponent24
	TextureFormatDepthComponent32F
	TextureFormatDepth24Stencil8
	TextureFormatStencilIndex8
)

// Kind returns the attachment kind a surface of this format can fill.
//
// Returns:
//   - AttachmentKind: the kind matching the format
func (f TextureFormat) Kind() AttachmentKind {
	switch f {
	case TextureFormatDepthComponent24, TextureFormatDepthComponent32F:
		return AttachmentKindDepth
	case TextureFormatDepth24Stencil8:
		return AttachmentKindDepthStencil
	case TextureFormatStencilIndex8:
		return AttachmentKindStencil
	default:
		return AttachmentKindColor
	}
}

// TextureFilter is the sampling filter of a texture.
type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
	FilterLinearMipmapLinear
)

// TextureWrap is the addressing mode for coordinates outside [0, 1].
type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// TextureDescriptor describes the immutable storage and sampling state of a 2D texture.
type TextureDescriptor struct {
	Width     int
	Height    int
	Format    TextureFormat
	Levels    int
	MinFilter TextureFilter
	MagFilter TextureFilter
	Wrap      TextureWrap
}

// AttachmentKind groups attachment slots by what they store.
type AttachmentKind int

const (
	AttachmentKindColor AttachmentKind = iota
	AttachmentKindDepth
	AttachmentKindStencil
	AttachmentKindDepthStencil
)

func (k AttachmentKind) String() string {
	switch k {
	case AttachmentKindColor:
		return "color"
	case AttachmentKindDepth:
		return "depth"
	case AttachmentKindStencil:
		return "stencil"
	case AttachmentKindDepthStencil:
		return "depth-stencil"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Satisfies reports whether an attachment of kind k fulfils a requirement for kind want.
// A depth-stencil attachment fulfils depth and stencil requirements.
func (k AttachmentKind) Satisfies(want AttachmentKind) bool {
	if k == want {
		return true
	}
	return k == AttachmentKindDepthStencil && (want == AttachmentKindDepth || want == AttachmentKindStencil)
}

// AttachmentSlot is a framebuffer attachment point.
type AttachmentSlot int

const (
	AttachmentColor0 AttachmentSlot = iota
	AttachmentColor1
	AttachmentColor2
	AttachmentColor3
	AttachmentDepth
	AttachmentStencil
	AttachmentDepthStencil
)

// Kind returns the kind of surface the slot accepts.
func (s AttachmentSlot) Kind() AttachmentKind {
	switch s {
	case AttachmentDepth:
		return AttachmentKindDepth
	case AttachmentStencil:
		return AttachmentKindStencil
	case AttachmentDepthStencil:
		return AttachmentKindDepthStencil
	default:
		return AttachmentKindColor
	}
}

func (s AttachmentSlot) String() string {
	if s.Kind() == AttachmentKindColor {
		return "color" + strconv.Itoa(int(s-AttachmentColor0))
	}
	return s.Kind().String()
}

// FramebufferStatus is the completeness verdict of a framebuffer.
type FramebufferStatus int

const (
	FramebufferComplete FramebufferStatus = iota
	FramebufferIncompleteAttachment
	FramebufferIncompleteMissingAttachment
	FramebufferUnsupported
	FramebufferUndefined
)

func (s FramebufferStatus) String() string {
	switch s {
	case FramebufferComplete:
		return "complete"
	case FramebufferIncompleteAttachment:
		return "incomplete attachment"
	case FramebufferIncompleteMissingAttachment:
		return "missing attachment"
	case FramebufferUnsupported:
		return "unsupported"
	case FramebufferUndefined:
		return "undefined"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// ShaderStage is a programmable pipeline stage.
type ShaderStage int

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
	ShaderStageGeometry
)

func (s ShaderStage) String() string {
	switch s {
	case ShaderStageVertex:
		return "vertex"
	case ShaderStageFragment:
		return "fragment"
	case ShaderStageGeometry:
		return "geometry"
	}
	return "stage(" + strconv.Itoa(int(s)) + ")"
}

// UniformInfo is the metadata of one active uniform declaration.
type UniformInfo struct {
	// Name is the declared name. Arrays report their first element, e.g. "lights[0]".
	Name string
	// Size is the number of array elements, 1 for non-arrays.
	Size int
	// Type is the backend's type enum of the uniform.
	Type uint32
}

// DebugMessage is a diagnostic emitted by the driver.
type DebugMessage struct {
	Source   string
	Type     string
	ID       uint32
	Severity string
	Message  string
}

// String formats the message as "[severity source type id] message".
func (m DebugMessage) String() string {
	return fmt.Sprintf("[%s %s %s %d] %s", m.Severity, m.Source, m.Type, m.ID, m.Message)
}
