package quadgl

// Option configures an operation.
type Option func(*options)

// options holds per-call configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for operation options.
// All options (built-in and custom) use this system for consistency. Every
// operation reads only the keys that apply to it and ignores the rest, so a
// single option slice can be handed to DrawFrame and flow through to the
// loader, linker, and uploader it calls.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = quadgl.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	quadgl.DrawFrame(ctx, src, quadgl.WithOpt(OptCustomThing, value))
//
//	// Read in a custom helper
//	value := quadgl.ApplyAndGet(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to build custom helpers over Context.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Program Options ---
var (
	OptValidate         = NewOptKey("validate", true)
	OptVertexShaderID   = NewOptKey("vertexShaderID", "vertexShader")
	OptFragmentShaderID = NewOptKey("fragmentShaderID", "fragmentShader")
)

// --- Attribute Options ---
var (
	OptComponentOffset   = NewOptKey("componentOffset", 0)
	OptComponentByteSize = NewOptKey("componentByteSize", 4) // width of a 32-bit float
	OptNormalized        = NewOptKey("normalized", false)
)

// --- Buffer Options ---
var (
	OptBufferTarget = NewOptKey("bufferTarget", ArrayBuffer)
	OptBufferUsage  = NewOptKey("bufferUsage", StaticDraw)
)

// --- Frame Options ---
var (
	OptVertexData = NewOptKey[[]float32]("vertexData", nil)
	OptAttributes = NewOptKey[[]Attribute]("attributes", nil)
	OptClearColor = NewOptKey("clearColor", Color{})
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithValidation enables or disables program validation after linking.
// Validation is on by default; disable it when the target context does not
// support validation semantics or to skip the extra check.
func WithValidation(validate bool) Option { return WithOpt(OptValidate, validate) }

// WithShaderIDs sets the element identifiers the program loader resolves
// shader source from.
func WithShaderIDs(vertexID, fragmentID string) Option {
	return func(o *options) {
		WithOpt(OptVertexShaderID, vertexID)(o)
		WithOpt(OptFragmentShaderID, fragmentID)(o)
	}
}

// WithComponentOffset sets the attribute's offset into one vertex record,
// counted in components (not bytes).
func WithComponentOffset(components int) Option { return WithOpt(OptComponentOffset, components) }

// WithComponentByteSize sets the width in bytes of one component of the
// backing array.
func WithComponentByteSize(bytes int) Option { return WithOpt(OptComponentByteSize, bytes) }

// WithNormalized marks integer attribute data for normalization to [0,1] or
// [-1,1] when read by the vertex shader.
func WithNormalized(normalized bool) Option { return WithOpt(OptNormalized, normalized) }

// WithBufferTarget sets the binding point the uploaded buffer is bound to.
func WithBufferTarget(target BufferTarget) Option { return WithOpt(OptBufferTarget, target) }

// WithBufferUsage sets the usage hint for the uploaded buffer's data store.
func WithBufferUsage(usage BufferUsage) Option { return WithOpt(OptBufferUsage, usage) }

// WithVertexData sets the vertex array a frame uploads. Nil data produces an
// empty upload.
func WithVertexData(data []float32) Option { return WithOpt(OptVertexData, data) }

// WithAttributes sets the attribute descriptors a frame configures, in order.
func WithAttributes(attrs ...Attribute) Option { return WithOpt(OptAttributes, attrs) }

// WithClearColor sets the color the frame clears to.
func WithClearColor(c Color) Option { return WithOpt(OptClearColor, c) }
