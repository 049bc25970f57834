// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Texture is an image owned by a Renderer.
//
// A texture may be used only with the renderer that created it. After
// Destroy the texture must not be used again; Destroy itself is
// idempotent.
type Texture interface {
	gpucontext.Texture

	// SetColorMod sets the RGB multiplier applied when the texture is
	// copied. 255 leaves a channel unchanged.
	SetColorMod(r, g, b uint8)

	// SetBlendMode sets how the texture combines with the target on Copy.
	SetBlendMode(m BlendMode)

	// Destroy releases the texture's resources.
	Destroy()
}

// TargetUsage is the usage of textures that are rendered into and then
// blitted.
const TargetUsage = gputypes.TextureUsageRenderAttachment |
	gputypes.TextureUsageTextureBinding |
	gputypes.TextureUsageCopySrc

// TargetDescriptor returns the descriptor of a width x height RGBA8
// render-target texture.
func TargetDescriptor(label string, width, height int) gputypes.TextureDescriptor {
	//nolint:gosec // G115: sizes are validated by ValidateDescriptor
	return gputypes.TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         TargetUsage,
	}
}

// ValidateDescriptor checks that desc describes a texture a 2D renderer can
// allocate: a single-sampled, single-level 2D RGBA8 image no larger than
// maxSize on each side. A maxSize of 0 means unlimited.
func ValidateDescriptor(desc gputypes.TextureDescriptor, maxSize int) error {
	if desc.Dimension != gputypes.TextureDimension2D {
		return fmt.Errorf("%w: dimension %s", ErrUnsupportedFormat, desc.Dimension)
	}
	if desc.Format != gputypes.TextureFormatRGBA8Unorm {
		return fmt.Errorf("%w: format %s", ErrUnsupportedFormat, desc.Format)
	}
	if desc.MipLevelCount > 1 || desc.SampleCount > 1 {
		return fmt.Errorf("%w: %d mips, %d samples", ErrUnsupportedFormat, desc.MipLevelCount, desc.SampleCount)
	}
	if desc.Usage.ContainsUnknownBits() {
		return fmt.Errorf("%w: usage %#x", ErrUnsupportedFormat, uint64(desc.Usage))
	}

	w, h := desc.Size.Width, desc.Size.Height
	if w == 0 || h == 0 || desc.Size.DepthOrArrayLayers > 1 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidSize, w, h, desc.Size.DepthOrArrayLayers)
	}
	if maxSize > 0 && (int(w) > maxSize || int(h) > maxSize) {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidSize, w, h, maxSize)
	}
	return nil
}
