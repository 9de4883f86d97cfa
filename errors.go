package quadgl

import "fmt"

// The error kinds below are all terminal: shader and program failures are
// developer-time configuration mistakes, not transient conditions, so nothing
// in this package retries. Each kind carries the context's diagnostic text
// where one exists. Discriminate with errors.As.

// ShaderCompileError reports a shader that failed to compile. The broken
// shader object has already been released when this error is returned.
type ShaderCompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s compilation failed: %s", shaderKindName(e.Kind), e.Log)
}

// ProgramLinkError reports a program that failed to link.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// ProgramValidateError reports a linked program that failed validation.
type ProgramValidateError struct {
	Log string
}

func (e *ProgramValidateError) Error() string {
	return fmt.Sprintf("shader program validation failed: %s", e.Log)
}

// MissingElementError reports a shader source identifier that did not resolve
// to any element in the source lookup.
type MissingElementError struct {
	ID string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("no shader source element %q", e.ID)
}

// InvalidAttributeError reports an attribute descriptor with an element count
// outside 1..4.
type InvalidAttributeError struct {
	Name        string
	NumElements int
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("attribute %q: element count %d outside 1..4", e.Name, e.NumElements)
}

// UnknownAttributeError reports an attribute name that did not resolve to a
// location on the program it was configured against.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("attribute %q not found on program", e.Name)
}

// shaderKindName renders a kind in the lower-case register error messages use.
func shaderKindName(k ShaderKind) string {
	switch k {
	case VertexShader:
		return "vertex shader"
	case FragmentShader:
		return "fragment shader"
	}
	return k.String()
}
