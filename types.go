package quadgl

import "image/color"

// Attrib is a vertex attribute location on a linked program. Contexts report
// a negative location for names that do not resolve (unused or optimized-out
// attributes).
type Attrib int32

// Valid reports whether the location resolves to an attribute.
func (a Attrib) Valid() bool { return a >= 0 }

// Color holds normalized color components in [0, 1]. The zero value is fully
// transparent black, the default clear color.
type Color struct {
	R, G, B, A float32
}

// ColorOf converts a stdlib color into normalized components.
func ColorOf(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float32(r) / 0xffff,
		G: float32(g) / 0xffff,
		B: float32(b) / 0xffff,
		A: float32(a) / 0xffff,
	}
}
