//go:build !js

package quadgl

// Shader is an opaque handle to one compiled (or compiling) shader stage.
// The zero value is not a valid shader.
type Shader struct {
	V uint32
}

// Valid reports whether the handle refers to a context object.
func (s Shader) Valid() bool { return s.V != 0 }

// Program is an opaque handle to a linked shader program.
// The zero value is not a valid program.
type Program struct {
	V uint32
}

// Valid reports whether the handle refers to a context object.
func (p Program) Valid() bool { return p.V != 0 }

// Buffer is an opaque handle to a buffer object's data store.
// The zero value is not a valid buffer.
type Buffer struct {
	V uint32
}

// Valid reports whether the handle refers to a context object.
func (b Buffer) Valid() bool { return b.V != 0 }
