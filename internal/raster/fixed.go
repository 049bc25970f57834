// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster implements fixed-point triangle scan conversion for the
// triangle cache. Triangles are rasterized into bounding-box sized pixel
// grids with the top-left fill rule, so the result is independent of the
// triangle's absolute screen position.
package raster

import "github.com/chewxy/math32"

// FDot4 is a 28.4 fixed-point coordinate.
// The 4-bit fractional part provides 16 subpixel positions per pixel.
type FDot4 int

// Fixed-point constants for FDot4 (28.4 format).
const (
	// FDot4Shift is the number of fractional bits in FDot4.
	FDot4Shift = 4
	// FDot4One represents 1.0 in FDot4 format (16).
	FDot4One FDot4 = 1 << FDot4Shift
	// FDot4Mask is used to extract the fractional part.
	FDot4Mask = FDot4One - 1
)

// FloatToFDot4 converts a float32 to FDot4, rounding half away from zero.
func FloatToFDot4(f float32) FDot4 {
	return FDot4(math32.Round(f * float32(FDot4One)))
}

// FDot4FromInt converts an integer pixel coordinate to FDot4.
func FDot4FromInt(i int) FDot4 {
	return FDot4(i) << FDot4Shift
}

// FDot4Ceil returns the ceiling of an FDot4 value as an integer.
func FDot4Ceil(f FDot4) int {
	return int((f + FDot4Mask) >> FDot4Shift)
}

// FDot4ToFloat converts FDot4 to float32.
func FDot4ToFloat(f FDot4) float32 {
	return float32(f) / float32(FDot4One)
}
