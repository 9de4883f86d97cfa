// Example renders a full-screen quad shaded with a color gradient.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, wraps the OpenGL context, compiles and
// links the quad shaders once, uploads the quad geometry once, and redraws
// every frame.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/quadgl"
	"github.com/go-theft-auto/quadgl/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "quadgl example"
)

const (
	vertexShaderSource = `#version 410
in vec2 position;
out vec2 uv;
void main() {
	uv = position * 0.5 + 0.5;
	gl_Position = vec4(position, 0.0, 1.0);
}`

	fragmentShaderSource = `#version 410
in vec2 uv;
out vec4 fragColor;
void main() {
	fragColor = vec4(uv, 0.5, 1.0);
}`
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Log each helper call during setup.
	quadgl.SetVerbose(true)

	ctx := opengl.New(windowWidth, windowHeight)
	defer ctx.Delete()

	sources := quadgl.StaticSource{
		"vertexShader":   vertexShaderSource,
		"fragmentShader": fragmentShaderSource,
	}

	// Compile, link, and validate the quad program.
	program, err := quadgl.LoadProgram(ctx, sources)
	if err != nil {
		return fmt.Errorf("load program: %w", err)
	}
	defer ctx.DeleteProgram(program)

	// Two components per vertex, tightly packed.
	position, err := quadgl.NewAttribute("position", 2, 2, quadgl.Float)
	if err != nil {
		return fmt.Errorf("position attribute: %w", err)
	}

	// Full-screen quad as a triangle strip.
	quad := []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	}
	buffer, err := quadgl.UploadBuffer(ctx, program, quad, []quadgl.Attribute{position})
	if err != nil {
		return fmt.Errorf("upload quad: %w", err)
	}
	defer ctx.DeleteBuffer(buffer)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		ctx.Resize(w, h)

		quadgl.DrawQuad(ctx, program, quadgl.WithClearColor(quadgl.Color{R: 0.12, G: 0.12, B: 0.14, A: 1}))

		window.SwapBuffers()
	}

	return nil
}
