package quadgl_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-theft-auto/quadgl"
)

func TestCompileShader(t *testing.T) {
	m := newMockContext()
	src := "void main() { gl_Position = vec4(0.0); }"

	s, err := quadgl.CompileShader(m, quadgl.VertexShader, src)
	if err != nil {
		t.Fatalf("CompileShader returned error: %v", err)
	}
	if !s.Valid() {
		t.Error("expected a valid shader handle")
	}
	if got := m.shaderSources[s.V]; got != src {
		t.Errorf("expected source %q uploaded, got %q", src, got)
	}

	want := []string{
		"CreateShader(VERTEX_SHADER)",
		"ShaderSource(1)",
		"CompileShader(1)",
		"ShaderCompileStatus(1)",
	}
	if !reflect.DeepEqual(m.calls, want) {
		t.Errorf("expected calls %v, got %v", want, m.calls)
	}
	if len(m.liveShaders) != 1 {
		t.Errorf("expected 1 live shader, got %d", len(m.liveShaders))
	}
}

func TestCompileShaderFailure(t *testing.T) {
	m := newMockContext()
	m.failCompile[quadgl.FragmentShader] = true
	m.compileLogs[quadgl.FragmentShader] = "0:1: syntax error"

	_, err := quadgl.CompileShader(m, quadgl.FragmentShader, "broken {")
	if err == nil {
		t.Fatal("expected an error for a failing compile")
	}

	var cerr *quadgl.ShaderCompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ShaderCompileError, got %T", err)
	}
	if cerr.Kind != quadgl.FragmentShader {
		t.Errorf("expected kind FRAGMENT_SHADER, got %v", cerr.Kind)
	}
	if cerr.Log != "0:1: syntax error" {
		t.Errorf("expected the context's log in the error, got %q", cerr.Log)
	}
	if want := "fragment shader compilation failed: 0:1: syntax error"; err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}

	// The broken shader object is released, and only after its log was read.
	if len(m.liveShaders) != 0 {
		t.Errorf("expected no live shaders after a failed compile, got %d", len(m.liveShaders))
	}
	log, del := m.callIndex("ShaderInfoLog("), m.callIndex("DeleteShader(")
	if log == -1 || del == -1 || log > del {
		t.Errorf("expected info log read before delete, got calls %v", m.calls)
	}
}
