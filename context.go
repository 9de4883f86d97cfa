package quadgl

// Context is the graphics capability surface every operation in this package
// runs against. It is a thin, call-per-method view of a WebGL 1 / OpenGL
// context: resource creation, shader compilation, program linking, buffer
// upload, attribute pointers, viewport, clear, and draw.
//
// This is NOT context.Context. The graphics context is process-wide mutable
// binding state (current program, bound buffer, enabled attribute arrays);
// passing it explicitly keeps that state visible at every call site and lets
// tests substitute a recording mock. Implementations:
//
//   - backend/opengl: desktop GL through github.com/go-gl/gl (v4.1 core)
//   - backend/webgl: browser WebGL through syscall/js (GOOS=js)
//
// Enum parameters use this package's types, which carry the standard GL
// numeric values; implementations may pass them through unchanged.
//
// Status queries (ShaderCompileStatus, ProgramLinkStatus,
// ProgramValidateStatus) report the corresponding boolean context parameter
// directly rather than exposing parameter-name constants.
type Context interface {
	// Shaders.
	CreateShader(kind ShaderKind) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompileStatus(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	// Programs.
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinkStatus(p Program) bool
	ValidateProgram(p Program)
	ProgramValidateStatus(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)

	// Buffers. A nil or empty data slice creates an empty data store.
	CreateBuffer() Buffer
	BindBuffer(target BufferTarget, b Buffer)
	BufferData(target BufferTarget, data []float32, usage BufferUsage)
	DeleteBuffer(b Buffer)

	// Vertex attributes. Stride and offset are byte counts.
	GetAttribLocation(p Program, name string) Attrib
	VertexAttribPointer(loc Attrib, size int, typ ComponentType, normalized bool, stride, offset int)
	EnableVertexAttribArray(loc Attrib)

	// Frame state and drawing.
	UseProgram(p Program)
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	DrawArrays(mode DrawMode, first, count int)

	// CanvasSize reports the drawing surface's current size in pixels.
	CanvasSize() (width, height int)
}
