package quadgl

import "fmt"

// The enum types below carry the standard GL numeric values, so Context
// implementations can hand them to the underlying API unchanged. Only the
// values WebGL 1 accepts are exported.

// ShaderKind selects the pipeline stage a shader compiles for.
type ShaderKind uint32

const (
	// VertexShader is the per-vertex stage.
	VertexShader ShaderKind = 0x8b31

	// FragmentShader is the per-fragment (pixel) stage.
	FragmentShader ShaderKind = 0x8b30
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "VERTEX_SHADER"
	case FragmentShader:
		return "FRAGMENT_SHADER"
	}
	return fmt.Sprintf("ShaderKind(0x%04x)", uint32(k))
}

// BufferTarget specifies a buffer binding point.
type BufferTarget uint32

const (
	// ArrayBuffer holds vertex attributes such as coordinates, texture
	// coordinates, or per-vertex color data.
	ArrayBuffer BufferTarget = 0x8892

	// ElementArrayBuffer holds element indices.
	ElementArrayBuffer BufferTarget = 0x8893
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ARRAY_BUFFER"
	case ElementArrayBuffer:
		return "ELEMENT_ARRAY_BUFFER"
	}
	return fmt.Sprintf("BufferTarget(0x%04x)", uint32(t))
}

// BufferUsage hints how a buffer's data store will be accessed.
type BufferUsage uint32

const (
	// StaticDraw: contents are written once and used often.
	StaticDraw BufferUsage = 0x88e4

	// DynamicDraw: contents are rewritten often and used often.
	DynamicDraw BufferUsage = 0x88e8

	// StreamDraw: contents are written and then used at most a few times.
	StreamDraw BufferUsage = 0x88e0
)

func (u BufferUsage) String() string {
	switch u {
	case StaticDraw:
		return "STATIC_DRAW"
	case DynamicDraw:
		return "DYNAMIC_DRAW"
	case StreamDraw:
		return "STREAM_DRAW"
	}
	return fmt.Sprintf("BufferUsage(0x%04x)", uint32(u))
}

// ComponentType is the data type of one component of a vertex attribute.
type ComponentType uint32

const (
	Byte          ComponentType = 0x1400
	UnsignedByte  ComponentType = 0x1401
	Short         ComponentType = 0x1402
	UnsignedShort ComponentType = 0x1403
	Float         ComponentType = 0x1406
)

func (c ComponentType) String() string {
	switch c {
	case Byte:
		return "BYTE"
	case UnsignedByte:
		return "UNSIGNED_BYTE"
	case Short:
		return "SHORT"
	case UnsignedShort:
		return "UNSIGNED_SHORT"
	case Float:
		return "FLOAT"
	}
	return fmt.Sprintf("ComponentType(0x%04x)", uint32(c))
}

// DrawMode selects the primitive a draw call assembles from vertices.
type DrawMode uint32

const (
	Points        DrawMode = 0x0000
	Lines         DrawMode = 0x0001
	LineLoop      DrawMode = 0x0002
	LineStrip     DrawMode = 0x0003
	Triangles     DrawMode = 0x0004
	TriangleStrip DrawMode = 0x0005
	TriangleFan   DrawMode = 0x0006
)

func (m DrawMode) String() string {
	switch m {
	case Points:
		return "POINTS"
	case Lines:
		return "LINES"
	case LineLoop:
		return "LINE_LOOP"
	case LineStrip:
		return "LINE_STRIP"
	case Triangles:
		return "TRIANGLES"
	case TriangleStrip:
		return "TRIANGLE_STRIP"
	case TriangleFan:
		return "TRIANGLE_FAN"
	}
	return fmt.Sprintf("DrawMode(0x%04x)", uint32(m))
}

// ClearMask selects which framebuffer planes a clear touches. Values OR
// together.
type ClearMask uint32

const (
	DepthBufferBit   ClearMask = 0x0100
	StencilBufferBit ClearMask = 0x0400
	ColorBufferBit   ClearMask = 0x4000
)

func (m ClearMask) String() string {
	switch m {
	case ColorBufferBit:
		return "COLOR_BUFFER_BIT"
	case DepthBufferBit:
		return "DEPTH_BUFFER_BIT"
	case StencilBufferBit:
		return "STENCIL_BUFFER_BIT"
	}
	return fmt.Sprintf("ClearMask(0x%04x)", uint32(m))
}
