// Package opengl implements quadgl.Context over desktop OpenGL 4.1 core
// through github.com/go-gl/gl.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/quadgl"
)

// Context adapts a current desktop GL context to the quadgl.Context surface.
//
// The caller owns GL setup: create a window and context (e.g. with GLFW),
// call gl.Init, then New. The core profile has no default vertex array
// object, so New creates and binds one for the attribute-pointer and draw
// calls to operate on; Delete releases it.
type Context struct {
	width, height int
	vao           uint32
}

// New wraps the calling thread's current GL context. width and height are
// the framebuffer size in pixels; keep them current with Resize.
func New(width, height int) *Context {
	c := &Context{width: width, height: height}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	return c
}

// Resize updates the canvas size reported to the helpers.
// Call it when the framebuffer size changes.
func (c *Context) Resize(width, height int) {
	c.width = width
	c.height = height
}

// Delete releases the vertex array object created by New.
func (c *Context) Delete() {
	gl.DeleteVertexArrays(1, &c.vao)
	c.vao = 0
}

// CanvasSize reports the framebuffer size set by New or Resize.
func (c *Context) CanvasSize() (int, int) { return c.width, c.height }

func (c *Context) CreateShader(kind quadgl.ShaderKind) quadgl.Shader {
	return quadgl.Shader{V: gl.CreateShader(uint32(kind))}
}

func (c *Context) ShaderSource(s quadgl.Shader, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s.V, 1, csource, nil)
	free()
}

func (c *Context) CompileShader(s quadgl.Shader) { gl.CompileShader(s.V) }

func (c *Context) ShaderCompileStatus(s quadgl.Shader) bool {
	var status int32
	gl.GetShaderiv(s.V, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ShaderInfoLog(s quadgl.Shader) string {
	var logLength int32
	gl.GetShaderiv(s.V, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(s.V, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (c *Context) DeleteShader(s quadgl.Shader) { gl.DeleteShader(s.V) }

func (c *Context) CreateProgram() quadgl.Program {
	return quadgl.Program{V: gl.CreateProgram()}
}

func (c *Context) AttachShader(p quadgl.Program, s quadgl.Shader) { gl.AttachShader(p.V, s.V) }

func (c *Context) LinkProgram(p quadgl.Program) { gl.LinkProgram(p.V) }

func (c *Context) ProgramLinkStatus(p quadgl.Program) bool {
	var status int32
	gl.GetProgramiv(p.V, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ValidateProgram(p quadgl.Program) { gl.ValidateProgram(p.V) }

func (c *Context) ProgramValidateStatus(p quadgl.Program) bool {
	var status int32
	gl.GetProgramiv(p.V, gl.VALIDATE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ProgramInfoLog(p quadgl.Program) string {
	var logLength int32
	gl.GetProgramiv(p.V, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(p.V, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (c *Context) DeleteProgram(p quadgl.Program) { gl.DeleteProgram(p.V) }

func (c *Context) CreateBuffer() quadgl.Buffer {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return quadgl.Buffer{V: buf}
}

func (c *Context) BindBuffer(target quadgl.BufferTarget, b quadgl.Buffer) {
	gl.BindBuffer(uint32(target), b.V)
}

func (c *Context) BufferData(target quadgl.BufferTarget, data []float32, usage quadgl.BufferUsage) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data)*4, gl.Ptr(data), uint32(usage))
}

func (c *Context) DeleteBuffer(b quadgl.Buffer) {
	gl.DeleteBuffers(1, &b.V)
}

func (c *Context) GetAttribLocation(p quadgl.Program, name string) quadgl.Attrib {
	return quadgl.Attrib(gl.GetAttribLocation(p.V, gl.Str(name+"\x00")))
}

func (c *Context) VertexAttribPointer(loc quadgl.Attrib, size int, typ quadgl.ComponentType, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(loc), int32(size), uint32(typ), normalized, int32(stride), uintptr(offset))
}

func (c *Context) EnableVertexAttribArray(loc quadgl.Attrib) {
	gl.EnableVertexAttribArray(uint32(loc))
}

func (c *Context) UseProgram(p quadgl.Program) { gl.UseProgram(p.V) }

func (c *Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (c *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (c *Context) Clear(mask quadgl.ClearMask) { gl.Clear(uint32(mask)) }

func (c *Context) DrawArrays(mode quadgl.DrawMode, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}
