// Package color provides the float color type used while shading triangles.
//
// Colors arrive from the GUI library packed into a uint32 with red in the
// low byte (0xAABBGGRR). Shading converts them to four float32 channels in
// [0,1], interpolates and modulates them linearly, and converts back to
// bytes when a pixel is written. No gamma correction is applied.
package color

// Color is a straight-alpha color with float32 components in [0,1].
// Arithmetic does not clamp; conversion to bytes does.
type Color struct {
	R, G, B, A float32
}

// Transparent is the fully transparent black color.
var Transparent = Color{}

// White is opaque white.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Mul returns the componentwise product of c and o (modulate).
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Scale returns c with every component multiplied by v.
func (c Color) Scale(v float32) Color {
	return Color{R: c.R * v, G: c.G * v, B: c.B * v, A: c.A * v}
}

// Add returns the componentwise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Blend composites c over dst with straight alpha.
func (c Color) Blend(dst Color) Color {
	inv := 1 - c.A
	return Color{
		R: c.R*c.A + dst.R*inv,
		G: c.G*c.A + dst.G*inv,
		B: c.B*c.A + dst.B*inv,
		A: c.A + dst.A*inv,
	}
}
