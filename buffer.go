package quadgl

// UploadBuffer creates a buffer, uploads vertex data into it, and configures
// the vertex-attribute pointers for each descriptor against p.
//
// The buffer binds to ArrayBuffer with a StaticDraw usage hint unless
// WithBufferTarget / WithBufferUsage say otherwise. data may be nil or empty,
// producing an empty data store. Each attribute in attrs is resolved by name
// on p, its pointer configured with the descriptor's exact
// size/type/normalized/stride/offset tuple, and its array enabled, in order.
//
// A name that does not resolve to a location fails fast with
// *UnknownAttributeError; descriptors earlier in attrs are already configured
// at that point. On success the returned buffer is still bound to the target.
func UploadBuffer(ctx Context, p Program, data []float32, attrs []Attribute, opts ...Option) (Buffer, error) {
	o := applyOptions(opts)
	target := GetOpt(o, OptBufferTarget)
	usage := GetOpt(o, OptBufferUsage)

	buf := ctx.CreateBuffer()
	ctx.BindBuffer(target, buf)
	ctx.BufferData(target, data, usage)

	for _, a := range attrs {
		loc := ctx.GetAttribLocation(p, a.Name)
		if !loc.Valid() {
			return Buffer{}, &UnknownAttributeError{Name: a.Name}
		}
		ctx.VertexAttribPointer(loc, a.Size, a.Type, a.Normalized, a.Stride, a.Offset)
		ctx.EnableVertexAttribArray(loc)
	}

	glLogger.Debug("buffer uploaded", "target", target, "usage", usage,
		"floats", len(data), "attributes", len(attrs))
	return buf, nil
}
