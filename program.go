package quadgl

// LinkProgram links a compiled vertex and fragment shader into a program.
//
// The two shaders are consumed: after a successful link they are deleted (the
// program keeps the linked code), and on failure both shaders and the program
// object are deleted before the error returns.
//
// Validation runs after linking by default and is skipped entirely with
// WithValidation(false); skip it when the target context does not implement
// validation semantics or when the extra check is unwanted. Link failures
// return *ProgramLinkError, validation failures *ProgramValidateError, each
// carrying the context's diagnostic log.
func LinkProgram(ctx Context, vertex, fragment Shader, opts ...Option) (Program, error) {
	o := applyOptions(opts)

	p := ctx.CreateProgram()
	ctx.AttachShader(p, vertex)
	ctx.AttachShader(p, fragment)
	ctx.LinkProgram(p)
	if !ctx.ProgramLinkStatus(p) {
		log := ctx.ProgramInfoLog(p)
		ctx.DeleteShader(vertex)
		ctx.DeleteShader(fragment)
		ctx.DeleteProgram(p)
		return Program{}, &ProgramLinkError{Log: log}
	}

	if GetOpt(o, OptValidate) {
		ctx.ValidateProgram(p)
		if !ctx.ProgramValidateStatus(p) {
			log := ctx.ProgramInfoLog(p)
			ctx.DeleteShader(vertex)
			ctx.DeleteShader(fragment)
			ctx.DeleteProgram(p)
			return Program{}, &ProgramValidateError{Log: log}
		}
	}

	ctx.DeleteShader(vertex)
	ctx.DeleteShader(fragment)
	glLogger.Debug("program linked", "validated", GetOpt(o, OptValidate))
	return p, nil
}
