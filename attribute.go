package quadgl

// Attribute describes the layout of one named per-vertex input within a flat
// vertex array. Stride and Offset are byte counts. Values are immutable once
// constructed; build them with NewAttribute.
type Attribute struct {
	Name       string
	Size       int // components read per vertex, 1..4
	Type       ComponentType
	Normalized bool
	Stride     int // bytes between consecutive vertex records
	Offset     int // byte position of the first component in a record
}

// NewAttribute builds an attribute descriptor.
//
// numElements is how many components the attribute reads per vertex (1..4);
// vertexComponents is how many components one full vertex record spans in the
// backing array. Stride and offset come out in bytes:
//
//	stride = vertexComponents * componentByteSize
//	offset = componentOffset  * componentByteSize
//
// componentByteSize defaults to 4 (a 32-bit float) and componentOffset to 0;
// set them with WithComponentByteSize and WithComponentOffset. WithNormalized
// flags integer data for normalization when read. numElements outside 1..4
// fails with *InvalidAttributeError.
func NewAttribute(name string, numElements, vertexComponents int, typ ComponentType, opts ...Option) (Attribute, error) {
	if numElements < 1 || numElements > 4 {
		return Attribute{}, &InvalidAttributeError{Name: name, NumElements: numElements}
	}
	o := applyOptions(opts)
	byteSize := GetOpt(o, OptComponentByteSize)
	return Attribute{
		Name:       name,
		Size:       numElements,
		Type:       typ,
		Normalized: GetOpt(o, OptNormalized),
		Stride:     vertexComponents * byteSize,
		Offset:     GetOpt(o, OptComponentOffset) * byteSize,
	}, nil
}
