// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Renderer is a stateful 2D drawing device.
//
// State (target, clip, draw color, blend mode) persists across calls until
// changed. Drawing outside the current target or clip rectangle is
// discarded.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be used
// from a single goroutine, or external synchronization must be used.
type Renderer interface {
	// TextureCreator uploads static RGBA images such as the font atlas.
	// Returned textures also implement Texture.
	gpucontext.TextureCreator

	// CreateTexture allocates a texture. Use TargetDescriptor for textures
	// that will be rendered into.
	CreateTexture(desc gputypes.TextureDescriptor) (Texture, error)

	// RenderTarget returns the current target, or nil for the default
	// (window) target.
	RenderTarget() Texture

	// SetRenderTarget redirects drawing to t. A nil t restores the default
	// target.
	SetRenderTarget(t Texture) error

	// ClipRect returns the clip rectangle and whether clipping is enabled.
	ClipRect() (Rect, bool)

	// SetClipRect enables clipping to r, or disables clipping if r is nil.
	SetClipRect(r *Rect)

	// DrawColor returns the color used by Clear, DrawPoint and FillRect.
	DrawColor() color.NRGBA

	// SetDrawColor sets the color used by Clear, DrawPoint and FillRect.
	SetDrawColor(c color.NRGBA)

	// BlendMode returns the blend mode used by DrawPoint and FillRect.
	BlendMode() BlendMode

	// SetBlendMode sets the blend mode used by DrawPoint and FillRect.
	SetBlendMode(m BlendMode)

	// Clear fills the whole current target with the draw color, ignoring
	// the clip rectangle and blend mode.
	Clear()

	// DrawPoint draws a single pixel in the draw color.
	DrawPoint(x, y int)

	// FillRect fills r in the draw color.
	FillRect(r Rect)

	// Copy blits the src region of tex onto the dst region of the current
	// target, scaling if sizes differ. A nil src means the whole texture
	// and a nil dst means the whole target. The texture's color
	// modulation and blend mode apply.
	Copy(tex Texture, src, dst *Rect, flip Flip) error

	// OutputSize returns the size of the default target in pixels.
	OutputSize() (width, height int)
}

// Capabilities describes the features supported by a renderer.
type Capabilities struct {
	// Name identifies the renderer in logs.
	Name string

	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsRenderTargets indicates if textures can be rendered into.
	SupportsRenderTargets bool

	// MaxTextureSize is the maximum texture dimension (0 = unlimited).
	MaxTextureSize int
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() Capabilities
}

// BlendMode selects how drawn pixels combine with the target.
type BlendMode uint8

const (
	// BlendNone overwrites the destination: dst = src.
	BlendNone BlendMode = iota

	// BlendAlpha composites with straight alpha:
	// dstRGB = srcRGB*srcA + dstRGB*(1-srcA), dstA = srcA + dstA*(1-srcA).
	BlendAlpha
)

var blendModeNames = [...]string{
	BlendNone:  "None",
	BlendAlpha: "Alpha",
}

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}

// Flip mirrors a blit around one or both axes.
type Flip uint8

const (
	// FlipNone draws the texture as is.
	FlipNone Flip = 0
	// FlipHorizontal mirrors left and right.
	FlipHorizontal Flip = 1 << 0
	// FlipVertical mirrors top and bottom.
	FlipVertical Flip = 1 << 1
)

// String returns a readable form of the flip flags.
func (f Flip) String() string {
	switch f {
	case FlipNone:
		return "None"
	case FlipHorizontal:
		return "Horizontal"
	case FlipVertical:
		return "Vertical"
	case FlipHorizontal | FlipVertical:
		return "Both"
	default:
		return "Unknown"
	}
}

// Rect is an integer rectangle in pixels.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(ir image.Rectangle) Rect {
	ir = ir.Canon()
	return Rect{X: ir.Min.X, Y: ir.Min.Y, W: ir.Dx(), H: ir.Dy()}
}

// Intersect returns the largest rectangle contained by both r and s.
// If they do not overlap the result is empty.
func (r Rect) Intersect(s Rect) Rect {
	return RectFromImage(r.Image().Intersect(s.Image()))
}
