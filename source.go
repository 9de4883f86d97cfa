package quadgl

// SourceLookup resolves a shader source identifier to GLSL text. In the
// browser this is the document, with script tags looked up by element id
// (backend/webgl.DocumentSource); in tests and native binaries a StaticSource
// serves the same role.
type SourceLookup interface {
	// Lookup returns the source text for id and whether id resolved.
	Lookup(id string) (source string, ok bool)
}

// StaticSource is a map-backed SourceLookup.
type StaticSource map[string]string

// Lookup implements SourceLookup.
func (s StaticSource) Lookup(id string) (string, bool) {
	src, ok := s[id]
	return src, ok
}

// LoadProgram reads vertex and fragment shader source from src and builds a
// linked program. Identifiers default to "vertexShader" and "fragmentShader";
// override with WithShaderIDs. Options also flow to LinkProgram, so
// WithValidation applies here too.
//
// Both identifiers are resolved before the context is touched; one that does
// not resolve fails with *MissingElementError. Compile, link, and validation
// failures propagate unchanged.
func LoadProgram(ctx Context, src SourceLookup, opts ...Option) (Program, error) {
	o := applyOptions(opts)

	vertexID := GetOpt(o, OptVertexShaderID)
	fragmentID := GetOpt(o, OptFragmentShaderID)

	vertexSrc, ok := src.Lookup(vertexID)
	if !ok {
		return Program{}, &MissingElementError{ID: vertexID}
	}
	fragmentSrc, ok := src.Lookup(fragmentID)
	if !ok {
		return Program{}, &MissingElementError{ID: fragmentID}
	}

	vertex, err := CompileShader(ctx, VertexShader, vertexSrc)
	if err != nil {
		return Program{}, err
	}
	fragment, err := CompileShader(ctx, FragmentShader, fragmentSrc)
	if err != nil {
		ctx.DeleteShader(vertex)
		return Program{}, err
	}

	return LinkProgram(ctx, vertex, fragment, opts...)
}
