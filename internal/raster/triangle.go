// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/ggtri/internal/color"

// Point is a screen-space position.
type Point struct {
	X, Y float32
}

// PixelSetter receives the covered pixels of a rasterized triangle.
// Coordinates are relative to the triangle's bounding-box origin.
type PixelSetter interface {
	SetAt(x, y int, c color.Color)
}

// Triangle holds the fixed-point setup of a triangle: its three vertices in
// FDot4 and its integer pixel bounding box [MinX,MaxX) x [MinY,MaxY).
//
// Vertices must be given counter-clockwise in the y-down coordinate system
// (the reverse of the order the GUI library emits them) for the edge
// functions to be positive inside the triangle.
type Triangle struct {
	X1, X2, X3 FDot4
	Y1, Y2, Y3 FDot4

	MinX, MaxX int
	MinY, MaxY int
}

// NewTriangle converts three vertices to fixed point and computes the
// bounding box.
func NewTriangle(p1, p2, p3 Point) Triangle {
	t := Triangle{
		X1: FloatToFDot4(p1.X),
		X2: FloatToFDot4(p2.X),
		X3: FloatToFDot4(p3.X),
		Y1: FloatToFDot4(p1.Y),
		Y2: FloatToFDot4(p2.Y),
		Y3: FloatToFDot4(p3.Y),
	}

	t.MinX = FDot4Ceil(min(t.X1, t.X2, t.X3))
	t.MaxX = FDot4Ceil(max(t.X1, t.X2, t.X3))
	t.MinY = FDot4Ceil(min(t.Y1, t.Y2, t.Y3))
	t.MaxY = FDot4Ceil(max(t.Y1, t.Y2, t.Y3))
	return t
}

// Width returns the bounding-box width in pixels.
func (t Triangle) Width() int { return t.MaxX - t.MinX }

// Height returns the bounding-box height in pixels.
func (t Triangle) Height() int { return t.MaxY - t.MinY }

// Empty reports whether the bounding box has no area. Empty triangles are
// never rasterized, drawn or cached.
func (t Triangle) Empty() bool { return t.Width() == 0 || t.Height() == 0 }

// edge is one incremental edge function of the half-space rasterizer.
type edge struct {
	start FDot4 // value at the current row's first pixel
	stepX FDot4 // subtracted per pixel to the right
	stepY FDot4 // added per row down
}

// newEdge sets up the edge from (xa,ya) to (xb,yb) evaluated at the
// top-left pixel corner of the bounding box.
func newEdge(xa, ya, xb, yb FDot4, minX, minY int) edge {
	dx := xa - xb
	dy := ya - yb

	c := dy*xa - dx*ya
	// Top-left rule: top and left edges own the pixels that lie exactly on them.
	if dy < 0 || (dy == 0 && dx > 0) {
		c++
	}

	return edge{
		start: c + dx*FDot4FromInt(minY) - dy*FDot4FromInt(minX),
		stepX: dy << FDot4Shift,
		stepY: dx << FDot4Shift,
	}
}

// Rasterize walks every integer pixel of t's bounding box and writes the
// covered ones to dst at bbox-relative coordinates, shading each at its
// pixel center. It returns the number of pixels written. Empty triangles
// write nothing.
func Rasterize(t Triangle, s *Shading, dst PixelSetter) int {
	if t.Empty() {
		return 0
	}

	e1 := newEdge(t.X1, t.Y1, t.X2, t.Y2, t.MinX, t.MinY)
	e2 := newEdge(t.X2, t.Y2, t.X3, t.Y3, t.MinX, t.MinY)
	e3 := newEdge(t.X3, t.Y3, t.X1, t.Y1, t.MinX, t.MinY)

	covered := 0
	for y := t.MinY; y < t.MaxY; y++ {
		c1, c2, c3 := e1.start, e2.start, e3.start

		for x := t.MinX; x < t.MaxX; x++ {
			if c1 > 0 && c2 > 0 && c3 > 0 {
				dst.SetAt(x-t.MinX, y-t.MinY, s.At(float32(x)+0.5, float32(y)+0.5))
				covered++
			}

			c1 -= e1.stepX
			c2 -= e2.stepX
			c3 -= e3.stepX
		}

		e1.start += e1.stepY
		e2.start += e2.stepY
		e3.start += e3.stepY
	}
	return covered
}
