package ggtri

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/ggtri/internal/raster"
)

// UniformKey identifies a single-color triangle independently of its
// screen position: vertex coordinates are rounded and made relative to
// the triangle's bounding-box origin.
type UniformKey struct {
	Color  uint32
	X0, Y0 int
	X1, Y1 int
	X2, Y2 int
}

// GenericVertexKey is one vertex of a GenericKey. U and V hold the IEEE 754
// bits of the texture coordinates, so keys compare bitwise and a NaN
// coordinate still equals itself.
type GenericVertexKey struct {
	X, Y int
	U, V uint64
	Col  uint32
}

// GenericKey identifies a textured, shaded triangle: relative positions,
// exact texture coordinates and colors of its three vertices in emitted
// order.
type GenericKey struct {
	V [3]GenericVertexKey
}

// newUniformKey builds the key of the triangle v0, v1, v2 whose fixed-point
// setup is t.
func newUniformKey(v0, v1, v2 *Vertex, t raster.Triangle) UniformKey {
	x0, y0 := relative(v0.Pos, t)
	x1, y1 := relative(v1.Pos, t)
	x2, y2 := relative(v2.Pos, t)
	return UniformKey{Color: v0.Col, X0: x0, Y0: y0, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// newGenericKey builds the key of the triangle v0, v1, v2 whose fixed-point
// setup is t.
func newGenericKey(v0, v1, v2 *Vertex, t raster.Triangle) GenericKey {
	var k GenericKey
	for i, v := range [3]*Vertex{v0, v1, v2} {
		x, y := relative(v.Pos, t)
		k.V[i] = GenericVertexKey{
			X:   x,
			Y:   y,
			U:   math.Float64bits(float64(v.UV.X)),
			V:   math.Float64bits(float64(v.UV.Y)),
			Col: v.Col,
		}
	}
	return k
}

// relative rounds p and offsets it by the bounding-box origin.
func relative(p Vec2, t raster.Triangle) (x, y int) {
	return int(math32.Round(p.X)) - t.MinX, int(math32.Round(p.Y)) - t.MinY
}

// Hash returns a deterministic fingerprint of k.
func (k UniformKey) Hash() uint64 {
	var seed uint64
	seed = combineHash(seed, uint64(k.Color))
	for _, v := range [...]int{k.X0, k.Y0, k.X1, k.Y1, k.X2, k.Y2} {
		seed = combineHash(seed, uint64(v)) //nolint:gosec // G115: bit pattern only
	}
	return seed
}

// Hash returns a deterministic fingerprint of k.
func (k GenericKey) Hash() uint64 {
	var seed uint64
	for i := range k.V {
		seed = combineHash(seed, k.V[i].Hash())
	}
	return seed
}

// Hash returns a deterministic fingerprint of v.
func (v GenericVertexKey) Hash() uint64 {
	var seed uint64
	seed = combineHash(seed, uint64(v.X)) //nolint:gosec // G115: bit pattern only
	seed = combineHash(seed, uint64(v.Y)) //nolint:gosec // G115: bit pattern only
	seed = combineHash(seed, v.U)
	seed = combineHash(seed, v.V)
	seed = combineHash(seed, uint64(v.Col))
	return seed
}

// combineHash mixes h into seed.
func combineHash(seed, h uint64) uint64 {
	return seed ^ (h + 0x9e3779b9 + (seed << 6) + (seed >> 2))
}
