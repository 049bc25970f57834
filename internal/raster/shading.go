// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/ggtri/internal/color"

// ShadeKind selects how a rasterized pixel gets its color.
type ShadeKind uint8

const (
	// ShadeSolid paints every covered pixel with one color.
	ShadeSolid ShadeKind = iota
	// ShadeTextured samples a texture at the interpolated UV and modulates
	// the texel by the interpolated vertex color.
	ShadeTextured
)

var shadeKindNames = [...]string{
	ShadeSolid:    "Solid",
	ShadeTextured: "Textured",
}

// String returns the name of the shade kind.
func (k ShadeKind) String() string {
	if int(k) < len(shadeKindNames) {
		return shadeKindNames[k]
	}
	return "Unknown"
}

// Sampler returns the texel nearest to a normalized texture coordinate.
type Sampler interface {
	Sample(u, v float32) color.Color
}

// Vertex is a rasterizer input vertex: position, texture coordinate and
// straight-alpha color.
type Vertex struct {
	Pos  Point
	U, V float32
	Col  color.Color
}

// Shading is the per-pixel color strategy handed to Rasterize.
// Build one with Solid or Textured.
type Shading struct {
	Kind ShadeKind

	solid color.Color

	sampler Sampler
	ip      Interpolator
	v       [3]Vertex
}

// Solid returns a shading that paints c everywhere.
func Solid(c color.Color) *Shading {
	return &Shading{Kind: ShadeSolid, solid: c}
}

// Textured returns a modulate shading over the triangle v0, v1, v2 in the
// order the GUI library emitted them. Texture coordinates and the four
// color channels are interpolated independently.
func Textured(s Sampler, v0, v1, v2 Vertex) *Shading {
	return &Shading{
		Kind:    ShadeTextured,
		sampler: s,
		ip:      NewInterpolator(v0.Pos, v1.Pos, v2.Pos),
		v:       [3]Vertex{v0, v1, v2},
	}
}

// At returns the color at screen position (x, y).
func (s *Shading) At(x, y float32) color.Color {
	if s.Kind == ShadeSolid {
		return s.solid
	}

	w1, w2, w3 := s.ip.Weights(x, y)
	u := s.v[0].U*w1 + s.v[1].U*w2 + s.v[2].U*w3
	v := s.v[0].V*w1 + s.v[1].V*w2 + s.v[2].V*w3
	c := s.v[0].Col.Scale(w1).Add(s.v[1].Col.Scale(w2)).Add(s.v[2].Col.Scale(w3))

	return s.sampler.Sample(u, v).Mul(c)
}
