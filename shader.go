package quadgl

// CompileShader compiles GLSL source for one pipeline stage and returns the
// shader handle. On success the caller owns the handle (typically it is handed
// straight to LinkProgram, which consumes it). On failure the partially
// created shader object is deleted before returning, so a failed compile
// leaks nothing, and the *ShaderCompileError carries the context's diagnostic
// log.
func CompileShader(ctx Context, kind ShaderKind, source string) (Shader, error) {
	s := ctx.CreateShader(kind)
	ctx.ShaderSource(s, source)
	ctx.CompileShader(s)
	if !ctx.ShaderCompileStatus(s) {
		log := ctx.ShaderInfoLog(s)
		ctx.DeleteShader(s)
		return Shader{}, &ShaderCompileError{Kind: kind, Log: log}
	}
	glLogger.Debug("shader compiled", "kind", kind, "sourceBytes", len(source))
	return s, nil
}
