package quadgl

// quadVertexCount is the vertex count of one triangle-strip quad.
const quadVertexCount = 4

// Clear sets the clear color and clears the color buffer.
func Clear(ctx Context, c Color) {
	ctx.ClearColor(c.R, c.G, c.B, c.A)
	ctx.Clear(ColorBufferBit)
}

// DrawQuad renders one quad with an already linked program: viewport to the
// canvas's current pixel size, clear (WithClearColor, default transparent
// black), activate p, draw a 4-vertex triangle strip from index 0. Use it
// directly when program and buffer are built once and the frame is reissued,
// as in a render loop.
func DrawQuad(ctx Context, p Program, opts ...Option) {
	w, h := ctx.CanvasSize()
	ctx.Viewport(0, 0, w, h)
	Clear(ctx, ApplyAndGet(opts, OptClearColor))
	ctx.UseProgram(p)
	ctx.DrawArrays(TriangleStrip, 0, quadVertexCount)
}

// DrawFrame builds a program from src, uploads vertex data, and renders one
// quad into the canvas. It is the one-call path through the package:
//
//  1. Load and link the program from src (WithShaderIDs, WithValidation)
//  2. Upload WithVertexData and configure WithAttributes
//     (WithBufferTarget, WithBufferUsage)
//  3. Set the viewport to the canvas's current pixel size
//  4. Clear to WithClearColor (default transparent black)
//  5. Activate the program
//  6. Draw a triangle strip of exactly 4 vertices starting at index 0
//
// A failure from steps 1 or 2 returns unchanged and nothing is drawn after it.
// Created resources are not released here: every call is an independent,
// self-contained pass, and repeated calls rebind global context state anew.
func DrawFrame(ctx Context, src SourceLookup, opts ...Option) error {
	o := applyOptions(opts)

	p, err := LoadProgram(ctx, src, opts...)
	if err != nil {
		return err
	}
	if _, err := UploadBuffer(ctx, p, GetOpt(o, OptVertexData), GetOpt(o, OptAttributes), opts...); err != nil {
		return err
	}
	DrawQuad(ctx, p, opts...)
	return nil
}
