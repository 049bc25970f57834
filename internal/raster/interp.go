// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/ggtri/internal/color"

// Interpolator evaluates affine (barycentric) weights over a triangle.
// Coefficients are computed once per triangle; each Weights call costs a
// handful of multiplies.
type Interpolator struct {
	x2, y2 float32

	// Row coefficients of the inverse area matrix, already divided by the
	// signed double area.
	a1, b1 float32
	a2, b2 float32

	degenerate bool
}

// NewInterpolator precomputes the weight coefficients for p0, p1, p2.
func NewInterpolator(p0, p1, p2 Point) Interpolator {
	d := (p1.Y-p2.Y)*(p0.X-p2.X) + (p2.X-p1.X)*(p0.Y-p2.Y)
	if d == 0 {
		return Interpolator{degenerate: true}
	}

	return Interpolator{
		x2: p2.X,
		y2: p2.Y,
		a1: (p1.Y - p2.Y) / d,
		b1: (p2.X - p1.X) / d,
		a2: (p2.Y - p0.Y) / d,
		b2: (p0.X - p2.X) / d,
	}
}

// Weights returns the weights of p0, p1 and p2 at (x, y). They always sum
// to one. A zero-area triangle yields (1, 0, 0).
func (ip *Interpolator) Weights(x, y float32) (w1, w2, w3 float32) {
	if ip.degenerate {
		return 1, 0, 0
	}

	dx := x - ip.x2
	dy := y - ip.y2
	w1 = ip.a1*dx + ip.b1*dy
	w2 = ip.a2*dx + ip.b2*dy
	return w1, w2, 1 - w1 - w2
}

// Scalar interpolates three per-vertex scalars at (x, y).
func (ip *Interpolator) Scalar(x, y, v0, v1, v2 float32) float32 {
	w1, w2, w3 := ip.Weights(x, y)
	return v0*w1 + v1*w2 + v2*w3
}

// Color interpolates three per-vertex colors at (x, y), channel by channel.
func (ip *Interpolator) Color(x, y float32, c0, c1, c2 color.Color) color.Color {
	w1, w2, w3 := ip.Weights(x, y)
	return c0.Scale(w1).Add(c1.Scale(w2)).Add(c2.Scale(w3))
}
