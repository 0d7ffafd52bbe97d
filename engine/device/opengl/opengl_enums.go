package opengl

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/go-gl/gl/v4.5-core/gl"
)

func bufferTarget(t device.BufferTarget) uint32 {
	switch t {
	case device.BufferTargetElementArray:
		return gl.ELEMENT_ARRAY_BUFFER
	case device.BufferTargetUniform:
		return gl.UNIFORM_BUFFER
	default:
		return gl.ARRAY_BUFFER
	}
}

func bufferUsage(u device.BufferUsage) uint32 {
	switch u {
	case device.BufferUsageDynamicDraw:
		return gl.DYNAMIC_DRAW
	case device.BufferUsageStreamDraw:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

func mapAccess(a device.MapAccess) uint32 {
	switch a {
	case device.MapWriteOnly:
		return gl.WRITE_ONLY
	case device.MapReadWrite:
		return gl.READ_WRITE
	default:
		return gl.READ_ONLY
	}
}

func attributeType(t device.AttributeType) uint32 {
	switch t {
	case device.AttributeTypeByte:
		return gl.BYTE
	case device.AttributeTypeUnsignedByte:
		return gl.UNSIGNED_BYTE
	case device.AttributeTypeShort:
		return gl.SHORT
	case device.AttributeTypeUnsignedShort:
		return gl.UNSIGNED_SHORT
	case device.AttributeTypeHalfFloat:
		return gl.HALF_FLOAT
	case device.AttributeTypeInt:
		return gl.INT
	case device.AttributeTypeUnsignedInt:
		return gl.UNSIGNED_INT
	case device.AttributeTypeFixed:
		return gl.FIXED
	case device.AttributeTypeDouble:
		return gl.DOUBLE
	case device.AttributeTypeInt2101010Rev:
		return gl.INT_2_10_10_10_REV
	case device.AttributeTypeUnsignedInt2101010Rev:
		return gl.UNSIGNED_INT_2_10_10_10_REV
	case device.AttributeTypeUnsignedInt10f11f11fRev:
		return gl.UNSIGNED_INT_10F_11F_11F_REV
	default:
		return gl.FLOAT
	}
}

func indexTypeEnum(t device.IndexType) uint32 {
	switch t {
	case device.IndexTypeUnsignedByte:
		return gl.UNSIGNED_BYTE
	case device.IndexTypeUnsignedShort:
		return gl.UNSIGNED_SHORT
	default:
		return gl.UNSIGNED_INT
	}
}

func topologyMode(t device.Topology) uint32 {
	switch t {
	case device.TopologyTriangleStrip:
		return gl.TRIANGLE_STRIP
	case device.TopologyLines:
		return gl.LINES
	case device.TopologyPoints:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

func textureFormat(f device.TextureFormat) uint32 {
	switch f {
	case device.TextureFormatRGB8:
		return gl.RGB8
	case device.TextureFormatSRGB8Alpha8:
		return gl.SRGB8_ALPHA8
	case device.TextureFormatDepthComponent24:
		return gl.DEPTH_COMPONENT24
	case device.TextureFormatDepthComponent32F:
		return gl.DEPTH_COMPONENT32F
	case device.TextureFormatDepth24Stencil8:
		return gl.DEPTH24_STENCIL8
	case device.TextureFormatStencilIndex8:
		return gl.STENCIL_INDEX8
	default:
		return gl.RGBA8
	}
}

func textureFilter(f device.TextureFilter) int32 {
	switch f {
	case device.FilterNearest:
		return gl.NEAREST
	case device.FilterLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		return gl.LINEAR
	}
}

func textureWrap(w device.TextureWrap) int32 {
	switch w {
	case device.WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case device.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

func attachmentSlot(s device.AttachmentSlot) uint32 {
	switch s {
	case device.AttachmentDepth:
		return gl.DEPTH_ATTACHMENT
	case device.AttachmentStencil:
		return gl.STENCIL_ATTACHMENT
	case device.AttachmentDepthStencil:
		return gl.DEPTH_STENCIL_ATTACHMENT
	default:
		return gl.COLOR_ATTACHMENT0 + uint32(s-device.AttachmentColor0)
	}
}

func shaderStage(s device.ShaderStage) uint32 {
	switch s {
	case device.ShaderStageFragment:
		return gl.FRAGMENT_SHADER
	case device.ShaderStageGeometry:
		return gl.GEOMETRY_SHADER
	default:
		return gl.VERTEX_SHADER
	}
}

func debugSource(s uint32) string {
	switch s {
	case gl.DEBUG_SOURCE_API:
		return "api"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "third-party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	default:
		return "other"
	}
}

func debugType(t uint32) string {
	switch t {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	case gl.DEBUG_TYPE_MARKER:
		return "marker"
	default:
		return "other"
	}
}

func debugSeverity(s uint32) string {
	switch s {
	case gl.DEBUG_SEVERITY_HIGH:
		return "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "medium"
	case gl.DEBUG_SEVERITY_LOW:
		return "low"
	default:
		return "notification"
	}
}
