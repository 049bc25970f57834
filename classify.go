package ggtri

import "github.com/chewxy/math32"

// Shape identifies how a run of indices is drawn.
type Shape int

const (
	// ShapeRect is a pair of triangles forming an axis-aligned, single-color
	// rectangle. It is drawn with one FillRect or one Copy.
	ShapeRect Shape = iota

	// ShapeUniformTriangle is a single-color triangle that samples only the
	// atlas's white texel.
	ShapeUniformTriangle

	// ShapeTexturedTriangle is any other triangle. It samples the font atlas
	// and is shaded by its interpolated vertex colors.
	ShapeTexturedTriangle
)

var shapeNames = [...]string{
	ShapeRect:             "Rect",
	ShapeUniformTriangle:  "UniformTriangle",
	ShapeTexturedTriangle: "TexturedTriangle",
}

// String returns the name of the shape.
func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "Unknown"
}

// bounds is the bounding box of a triangle's positions and texture
// coordinates.
type bounds struct {
	MinX, MinY, MaxX, MaxY float32
	MinU, MinV, MaxU, MaxV float32
}

func boundsOf(v0, v1, v2 *Vertex) bounds {
	return bounds{
		MinX: math32.Min(v0.Pos.X, math32.Min(v1.Pos.X, v2.Pos.X)),
		MinY: math32.Min(v0.Pos.Y, math32.Min(v1.Pos.Y, v2.Pos.Y)),
		MaxX: math32.Max(v0.Pos.X, math32.Max(v1.Pos.X, v2.Pos.X)),
		MaxY: math32.Max(v0.Pos.Y, math32.Max(v1.Pos.Y, v2.Pos.Y)),
		MinU: math32.Min(v0.UV.X, math32.Min(v1.UV.X, v2.UV.X)),
		MinV: math32.Min(v0.UV.Y, math32.Min(v1.UV.Y, v2.UV.Y)),
		MaxU: math32.Max(v0.UV.X, math32.Max(v1.UV.X, v2.UV.X)),
		MaxV: math32.Max(v0.UV.Y, math32.Max(v1.UV.Y, v2.UV.Y)),
	}
}

// IsOnExtreme reports whether p lies exactly on a corner of the box.
func (b bounds) IsOnExtreme(p Vec2) bool {
	return (p.X == b.MinX || p.X == b.MaxX) && (p.Y == b.MinY || p.Y == b.MaxY)
}

// UsesOnlyColor reports whether the texture coordinates collapse to the
// atlas's white texel, so the texture contributes nothing but white.
func (b bounds) UsesOnlyColor(white Vec2) bool {
	return b.MinU == b.MaxU && b.MinU == white.X &&
		b.MinV == b.MaxV && b.MaxV == white.Y
}

// classify decides how the indices starting at idx[i] are drawn. n is the
// command's element count relative to idx, and white is the atlas's white
// texel. It returns the shape and the number of indices it covers, 6 for
// ShapeRect and 3 otherwise.
//
// The caller guarantees i+3 <= n.
func classify(vtx []Vertex, idx []DrawIdx, i, n int, white Vec2) (Shape, int) {
	v0, v1, v2 := &vtx[idx[i]], &vtx[idx[i+1]], &vtx[idx[i+2]]
	b := boundsOf(v0, v1, v2)
	uniform := v0.Col == v1.Col && v1.Col == v2.Col

	if uniform && i+6 <= n {
		v3, v4, v5 := &vtx[idx[i+3]], &vtx[idx[i+4]], &vtx[idx[i+5]]
		if v2.Col == v3.Col && v3.Col == v4.Col && v4.Col == v5.Col &&
			b.IsOnExtreme(v0.Pos) && b.IsOnExtreme(v1.Pos) && b.IsOnExtreme(v2.Pos) &&
			b.IsOnExtreme(v3.Pos) && b.IsOnExtreme(v4.Pos) && b.IsOnExtreme(v5.Pos) {
			return ShapeRect, 6
		}
	}

	if uniform && b.UsesOnlyColor(white) {
		return ShapeUniformTriangle, 3
	}
	return ShapeTexturedTriangle, 3
}
