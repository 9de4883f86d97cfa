/*
Package quadgl removes the boilerplate around drawing a single quad with a
WebGL or OpenGL context: shader compilation, program linking and validation,
vertex attribute layout, buffer upload, and the clear-and-draw call.

# Overview

Every operation takes a Context, the injected graphics capability surface.
Nothing is stored between calls: helpers run straight through the context and
return, so each invocation is an independent pass and the only state that
changes is the context's own bindings. Two Context implementations ship with
the package (backend/opengl for desktop GL via go-gl, backend/webgl for the
browser via syscall/js), and tests substitute recording mocks.

Shader source is resolved through a SourceLookup by identifier. In the
browser that is the document itself, so the conventional script-tag setup
works unchanged; elsewhere a StaticSource map holds the GLSL.

# Quick Start

	sources := quadgl.StaticSource{
	    "vertexShader":   vertexGLSL,
	    "fragmentShader": fragmentGLSL,
	}

	position, _ := quadgl.NewAttribute("position", 2, 2, quadgl.Float)

	err := quadgl.DrawFrame(ctx, sources,
	    quadgl.WithVertexData([]float32{-1, -1, 1, -1, -1, 1, 1, 1}),
	    quadgl.WithAttributes(position),
	    quadgl.WithClearColor(quadgl.Color{R: 1, A: 1}),
	)

DrawFrame compiles and links the two shaders, uploads the vertex data,
configures the attribute, sets the viewport to the canvas size, clears, and
draws a 4-vertex triangle strip. For a render loop, build the program and
buffer once with LoadProgram and UploadBuffer and reissue the frame with
DrawQuad.

# Errors

Failures surface immediately as typed errors carrying the context's
diagnostic log: ShaderCompileError, ProgramLinkError, ProgramValidateError
from the build path, MissingElementError from source lookup,
InvalidAttributeError from descriptor construction, and UnknownAttributeError
when a descriptor names an attribute the linked program does not have. A
shader that fails to compile is deleted before its error returns; nothing
else is released automatically.

# Verbose Logging

SetVerbose(true) enables debug logging of compile, link, and upload
operations to stderr.
*/
package quadgl
