package quadgl_test

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/quadgl"
)

// mockContext records every call made against it as a canonical string so
// tests can assert exact call sequences. Shader, program, and buffer handles
// are small sequential integers per kind. Compile, link, and validation
// outcomes are scripted through the fail* fields; attribute locations resolve
// through attribLocs, with unmapped names reporting -1 like a real context.
type mockContext struct {
	calls []string

	nextShader  uint32
	nextProgram uint32
	nextBuffer  uint32

	liveShaders  map[uint32]bool
	livePrograms map[uint32]bool
	liveBuffers  map[uint32]bool

	shaderKinds   map[uint32]quadgl.ShaderKind
	shaderSources map[uint32]string

	failCompile map[quadgl.ShaderKind]bool
	compileLogs map[quadgl.ShaderKind]string

	failLink bool
	linkLog  string

	failValidate bool
	validateLog  string

	attribLocs map[string]quadgl.Attrib

	width, height int
}

func newMockContext() *mockContext {
	return &mockContext{
		liveShaders:   make(map[uint32]bool),
		livePrograms:  make(map[uint32]bool),
		liveBuffers:   make(map[uint32]bool),
		shaderKinds:   make(map[uint32]quadgl.ShaderKind),
		shaderSources: make(map[uint32]string),
		failCompile:   make(map[quadgl.ShaderKind]bool),
		compileLogs:   make(map[quadgl.ShaderKind]string),
		attribLocs:    make(map[string]quadgl.Attrib),
		width:         640,
		height:        480,
	}
}

func (m *mockContext) record(format string, args ...any) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

// reset drops the recorded calls, keeping handles and scripting intact.
func (m *mockContext) reset() { m.calls = nil }

// callIndex returns the position of the first call starting with prefix, or -1.
func (m *mockContext) callIndex(prefix string) int {
	for i, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// countCalls counts the calls starting with prefix.
func (m *mockContext) countCalls(prefix string) int {
	n := 0
	for _, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (m *mockContext) CreateShader(kind quadgl.ShaderKind) quadgl.Shader {
	m.nextShader++
	m.liveShaders[m.nextShader] = true
	m.shaderKinds[m.nextShader] = kind
	m.record("CreateShader(%v)", kind)
	return quadgl.Shader{V: m.nextShader}
}

func (m *mockContext) ShaderSource(s quadgl.Shader, src string) {
	m.shaderSources[s.V] = src
	m.record("ShaderSource(%d)", s.V)
}

func (m *mockContext) CompileShader(s quadgl.Shader) {
	m.record("CompileShader(%d)", s.V)
}

func (m *mockContext) ShaderCompileStatus(s quadgl.Shader) bool {
	m.record("ShaderCompileStatus(%d)", s.V)
	return !m.failCompile[m.shaderKinds[s.V]]
}

func (m *mockContext) ShaderInfoLog(s quadgl.Shader) string {
	m.record("ShaderInfoLog(%d)", s.V)
	return m.compileLogs[m.shaderKinds[s.V]]
}

func (m *mockContext) DeleteShader(s quadgl.Shader) {
	delete(m.liveShaders, s.V)
	m.record("DeleteShader(%d)", s.V)
}

func (m *mockContext) CreateProgram() quadgl.Program {
	m.nextProgram++
	m.livePrograms[m.nextProgram] = true
	m.record("CreateProgram()")
	return quadgl.Program{V: m.nextProgram}
}

func (m *mockContext) AttachShader(p quadgl.Program, s quadgl.Shader) {
	m.record("AttachShader(%d, %d)", p.V, s.V)
}

func (m *mockContext) LinkProgram(p quadgl.Program) {
	m.record("LinkProgram(%d)", p.V)
}

func (m *mockContext) ProgramLinkStatus(p quadgl.Program) bool {
	m.record("ProgramLinkStatus(%d)", p.V)
	return !m.failLink
}

func (m *mockContext) ValidateProgram(p quadgl.Program) {
	m.record("ValidateProgram(%d)", p.V)
}

func (m *mockContext) ProgramValidateStatus(p quadgl.Program) bool {
	m.record("ProgramValidateStatus(%d)", p.V)
	return !m.failValidate
}

func (m *mockContext) ProgramInfoLog(p quadgl.Program) string {
	m.record("ProgramInfoLog(%d)", p.V)
	if m.failLink {
		return m.linkLog
	}
	return m.validateLog
}

func (m *mockContext) DeleteProgram(p quadgl.Program) {
	delete(m.livePrograms, p.V)
	m.record("DeleteProgram(%d)", p.V)
}

func (m *mockContext) CreateBuffer() quadgl.Buffer {
	m.nextBuffer++
	m.liveBuffers[m.nextBuffer] = true
	m.record("CreateBuffer()")
	return quadgl.Buffer{V: m.nextBuffer}
}

func (m *mockContext) BindBuffer(target quadgl.BufferTarget, b quadgl.Buffer) {
	m.record("BindBuffer(%v, %d)", target, b.V)
}

func (m *mockContext) BufferData(target quadgl.BufferTarget, data []float32, usage quadgl.BufferUsage) {
	m.record("BufferData(%v, %d, %v)", target, len(data), usage)
}

func (m *mockContext) DeleteBuffer(b quadgl.Buffer) {
	delete(m.liveBuffers, b.V)
	m.record("DeleteBuffer(%d)", b.V)
}

func (m *mockContext) GetAttribLocation(p quadgl.Program, name string) quadgl.Attrib {
	m.record("GetAttribLocation(%d, %q)", p.V, name)
	loc, ok := m.attribLocs[name]
	if !ok {
		return -1
	}
	return loc
}

func (m *mockContext) VertexAttribPointer(loc quadgl.Attrib, size int, typ quadgl.ComponentType, normalized bool, stride, offset int) {
	m.record("VertexAttribPointer(%d, %d, %v, %t, %d, %d)", loc, size, typ, normalized, stride, offset)
}

func (m *mockContext) EnableVertexAttribArray(loc quadgl.Attrib) {
	m.record("EnableVertexAttribArray(%d)", loc)
}

func (m *mockContext) UseProgram(p quadgl.Program) {
	m.record("UseProgram(%d)", p.V)
}

func (m *mockContext) Viewport(x, y, width, height int) {
	m.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (m *mockContext) ClearColor(r, g, b, a float32) {
	m.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (m *mockContext) Clear(mask quadgl.ClearMask) {
	m.record("Clear(%v)", mask)
}

func (m *mockContext) DrawArrays(mode quadgl.DrawMode, first, count int) {
	m.record("DrawArrays(%v, %d, %d)", mode, first, count)
}

func (m *mockContext) CanvasSize() (int, int) {
	m.record("CanvasSize()")
	return m.width, m.height
}
