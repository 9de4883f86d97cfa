//go:build js

// Package webgl implements quadgl.Context over a browser WebGL 1 context
// through syscall/js.
package webgl

import (
	"encoding/binary"
	"errors"
	"math"
	"syscall/js"

	"github.com/go-theft-auto/quadgl"
)

var (
	ErrNoCanvas  = errors.New("no canvas element given")
	ErrNoContext = errors.New("unable to get webgl context")
)

// Context parameter names for the boolean status queries. Backend-internal;
// the exported enums cover only the values operations pass in.
const (
	compileStatus  = 0x8b81
	linkStatus     = 0x8b82
	validateStatus = 0x8b83
)

// Context adapts a WebGLRenderingContext to the quadgl.Context surface.
// Enum values pass through unchanged (they carry the GL numbers); handles
// hold the underlying js objects.
type Context struct {
	gl     js.Value
	canvas js.Value

	// Cached reference to the Uint8Array JS type.
	uint8Array js.Value
}

// New obtains a WebGL context from a canvas element.
func New(canvas js.Value) (*Context, error) {
	if !canvas.Truthy() {
		return nil, ErrNoCanvas
	}
	for _, contextType := range []string{"webgl", "experimental-webgl"} {
		gl := canvas.Call("getContext", contextType)
		if gl.Truthy() {
			return NewFromContext(gl), nil
		}
	}
	return nil, ErrNoContext
}

// NewFromContext wraps an already obtained WebGLRenderingContext.
func NewFromContext(gl js.Value) *Context {
	return &Context{
		gl:         gl,
		canvas:     gl.Get("canvas"),
		uint8Array: js.Global().Get("Uint8Array"),
	}
}

// CanvasSize reports the canvas's current pixel width and height.
func (c *Context) CanvasSize() (int, int) {
	return c.canvas.Get("width").Int(), c.canvas.Get("height").Int()
}

func (c *Context) CreateShader(kind quadgl.ShaderKind) quadgl.Shader {
	return quadgl.Shader{V: c.gl.Call("createShader", int(kind))}
}

func (c *Context) ShaderSource(s quadgl.Shader, src string) {
	c.gl.Call("shaderSource", s.V, src)
}

func (c *Context) CompileShader(s quadgl.Shader) {
	c.gl.Call("compileShader", s.V)
}

func (c *Context) ShaderCompileStatus(s quadgl.Shader) bool {
	return c.gl.Call("getShaderParameter", s.V, compileStatus).Bool()
}

func (c *Context) ShaderInfoLog(s quadgl.Shader) string {
	return c.gl.Call("getShaderInfoLog", s.V).String()
}

func (c *Context) DeleteShader(s quadgl.Shader) {
	c.gl.Call("deleteShader", s.V)
}

func (c *Context) CreateProgram() quadgl.Program {
	return quadgl.Program{V: c.gl.Call("createProgram")}
}

func (c *Context) AttachShader(p quadgl.Program, s quadgl.Shader) {
	c.gl.Call("attachShader", p.V, s.V)
}

func (c *Context) LinkProgram(p quadgl.Program) {
	c.gl.Call("linkProgram", p.V)
}

func (c *Context) ProgramLinkStatus(p quadgl.Program) bool {
	return c.gl.Call("getProgramParameter", p.V, linkStatus).Bool()
}

func (c *Context) ValidateProgram(p quadgl.Program) {
	c.gl.Call("validateProgram", p.V)
}

func (c *Context) ProgramValidateStatus(p quadgl.Program) bool {
	return c.gl.Call("getProgramParameter", p.V, validateStatus).Bool()
}

func (c *Context) ProgramInfoLog(p quadgl.Program) string {
	return c.gl.Call("getProgramInfoLog", p.V).String()
}

func (c *Context) DeleteProgram(p quadgl.Program) {
	c.gl.Call("deleteProgram", p.V)
}

func (c *Context) CreateBuffer() quadgl.Buffer {
	return quadgl.Buffer{V: c.gl.Call("createBuffer")}
}

func (c *Context) BindBuffer(target quadgl.BufferTarget, b quadgl.Buffer) {
	c.gl.Call("bindBuffer", int(target), b.V)
}

func (c *Context) BufferData(target quadgl.BufferTarget, data []float32, usage quadgl.BufferUsage) {
	if len(data) == 0 {
		c.gl.Call("bufferData", int(target), 0, int(usage))
		return
	}
	c.gl.Call("bufferData", int(target), c.byteArrayOf(data), int(usage))
}

func (c *Context) DeleteBuffer(b quadgl.Buffer) {
	c.gl.Call("deleteBuffer", b.V)
}

func (c *Context) GetAttribLocation(p quadgl.Program, name string) quadgl.Attrib {
	return quadgl.Attrib(c.gl.Call("getAttribLocation", p.V, name).Int())
}

func (c *Context) VertexAttribPointer(loc quadgl.Attrib, size int, typ quadgl.ComponentType, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", int(loc), size, int(typ), normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(loc quadgl.Attrib) {
	c.gl.Call("enableVertexAttribArray", int(loc))
}

func (c *Context) UseProgram(p quadgl.Program) {
	c.gl.Call("useProgram", p.V)
}

func (c *Context) Viewport(x, y, width, height int) {
	c.gl.Call("viewport", x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *Context) Clear(mask quadgl.ClearMask) {
	c.gl.Call("clear", int(mask))
}

func (c *Context) DrawArrays(mode quadgl.DrawMode, first, count int) {
	c.gl.Call("drawArrays", int(mode), first, count)
}

// byteArrayOf copies the vertex array into a js Uint8Array over its raw
// little-endian bytes. bufferData accepts any ArrayBufferView and reads its
// byteLength, so a byte view of float data uploads correctly.
func (c *Context) byteArrayOf(data []float32) js.Value {
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	arr := c.uint8Array.New(len(buf))
	js.CopyBytesToJS(arr, buf)
	return arr
}
