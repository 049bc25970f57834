// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// SoftwareRenderer is a CPU-based Renderer over *image.NRGBA.
//
// It follows the semantics of SDL's 2D renderer: straight-alpha pixels,
// per-texture color modulation and blend mode, nearest-neighbour scaling on
// Copy, and a clip rectangle that applies to whichever target is current.
// It is used for headless rendering and as the reference device in tests.
//
// Example:
//
//	r := render.NewSoftwareRenderer(800, 600)
//	r.SetDrawColor(color.NRGBA{255, 0, 0, 255})
//	r.FillRect(render.Rect{X: 10, Y: 10, W: 100, H: 50})
//	img := r.Image()
type SoftwareRenderer struct {
	screen *softwareTexture
	target *softwareTexture

	clip   Rect
	clipOn bool

	drawColor color.NRGBA
	blend     BlendMode

	maxSize int
	live    int
}

// NewSoftwareRenderer creates a renderer whose default target is a
// width x height transparent framebuffer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	r := &SoftwareRenderer{
		blend:   BlendNone,
		maxSize: int(gputypes.DefaultLimits().MaxTextureDimension2D),
	}
	r.screen = &softwareTexture{
		owner:  r,
		label:  "screen",
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		usage:  TargetUsage,
		mod:    [3]uint8{255, 255, 255},
		blend:  BlendAlpha,
		screen: true,
	}
	r.target = r.screen
	return r
}

// Image returns the default framebuffer. The returned image shares memory
// with the renderer.
func (r *SoftwareRenderer) Image() *image.NRGBA {
	return r.screen.img
}

// LiveTextures returns the number of textures created and not yet destroyed.
func (r *SoftwareRenderer) LiveTextures() int {
	return r.live
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() Capabilities {
	return Capabilities{
		Name:                  "software",
		SupportsRenderTargets: true,
		MaxTextureSize:        r.maxSize,
	}
}

// OutputSize returns the framebuffer size.
func (r *SoftwareRenderer) OutputSize() (width, height int) {
	b := r.screen.img.Bounds()
	return b.Dx(), b.Dy()
}

// CreateTexture allocates a transparent texture.
func (r *SoftwareRenderer) CreateTexture(desc gputypes.TextureDescriptor) (Texture, error) {
	if err := ValidateDescriptor(desc, r.maxSize); err != nil {
		return nil, err
	}
	return r.newTexture(desc.Label, int(desc.Size.Width), int(desc.Size.Height), desc.Usage), nil
}

// NewTextureFromRGBA creates a texture from RGBA pixel data. The data must
// be width * height * 4 bytes of straight-alpha RGBA.
func (r *SoftwareRenderer) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	desc := TargetDescriptor("rgba", width, height)
	desc.Usage = gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	if err := ValidateDescriptor(desc, r.maxSize); err != nil {
		return nil, err
	}

	t := r.newTexture(desc.Label, width, height, desc.Usage)
	if err := t.UpdateData(data); err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

func (r *SoftwareRenderer) newTexture(label string, width, height int, usage gputypes.TextureUsage) *softwareTexture {
	r.live++
	return &softwareTexture{
		owner: r,
		label: label,
		img:   image.NewNRGBA(image.Rect(0, 0, width, height)),
		usage: usage,
		mod:   [3]uint8{255, 255, 255},
		blend: BlendNone,
	}
}

// own checks that t was created by r and is still alive.
func (r *SoftwareRenderer) own(t Texture) (*softwareTexture, error) {
	st, ok := t.(*softwareTexture)
	if !ok || st.owner != r {
		return nil, ErrForeignTexture
	}
	if st.destroyed {
		return nil, fmt.Errorf("%w: %s", ErrTextureDestroyed, st.label)
	}
	return st, nil
}

// RenderTarget returns the current target, or nil for the framebuffer.
func (r *SoftwareRenderer) RenderTarget() Texture {
	if r.target == r.screen {
		return nil
	}
	return r.target
}

// SetRenderTarget redirects drawing to t, or back to the framebuffer if t
// is nil.
func (r *SoftwareRenderer) SetRenderTarget(t Texture) error {
	if t == nil {
		r.target = r.screen
		return nil
	}

	st, err := r.own(t)
	if err != nil {
		return err
	}
	if !st.usage.Contains(gputypes.TextureUsageRenderAttachment) {
		return fmt.Errorf("%w: %s", ErrNotRenderTarget, st.label)
	}
	r.target = st
	return nil
}

// ClipRect returns the clip rectangle and whether clipping is enabled.
func (r *SoftwareRenderer) ClipRect() (Rect, bool) {
	return r.clip, r.clipOn
}

// SetClipRect enables clipping to *rect, or disables it if rect is nil.
func (r *SoftwareRenderer) SetClipRect(rect *Rect) {
	if rect == nil {
		r.clip, r.clipOn = Rect{}, false
		return
	}
	r.clip, r.clipOn = *rect, true
}

// DrawColor returns the current draw color.
func (r *SoftwareRenderer) DrawColor() color.NRGBA { return r.drawColor }

// SetDrawColor sets the current draw color.
func (r *SoftwareRenderer) SetDrawColor(c color.NRGBA) { r.drawColor = c }

// BlendMode returns the blend mode for points and rectangles.
func (r *SoftwareRenderer) BlendMode() BlendMode { return r.blend }

// SetBlendMode sets the blend mode for points and rectangles.
func (r *SoftwareRenderer) SetBlendMode(m BlendMode) { r.blend = m }

// Clear fills the whole target with the draw color.
func (r *SoftwareRenderer) Clear() {
	img := r.target.img
	c := r.drawColor
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// DrawPoint draws one pixel in the draw color.
func (r *SoftwareRenderer) DrawPoint(x, y int) {
	if !image.Pt(x, y).In(r.drawBounds()) {
		return
	}
	img := r.target.img
	i := img.PixOffset(x, y)
	blendInto(img.Pix[i:i+4], r.drawColor, r.blend)
}

// FillRect fills rect in the draw color.
func (r *SoftwareRenderer) FillRect(rect Rect) {
	area := rect.Image().Intersect(r.drawBounds())
	img := r.target.img
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			i := img.PixOffset(x, y)
			blendInto(img.Pix[i:i+4], r.drawColor, r.blend)
		}
	}
}

// Copy blits src of tex onto dst of the current target.
func (r *SoftwareRenderer) Copy(tex Texture, src, dst *Rect, flip Flip) error {
	st, err := r.own(tex)
	if err != nil {
		return err
	}
	if st == r.target {
		return fmt.Errorf("render: copy of %s onto itself", st.label)
	}

	sr := st.img.Bounds()
	if src != nil {
		sr = src.Image().Intersect(sr)
	}
	dr := r.target.img.Bounds()
	if dst != nil {
		dr = dst.Image()
	}
	if sr.Empty() || dr.Empty() {
		return nil
	}

	// Scaled copies are resampled into a dst-sized scratch image first.
	pixels, pr := st.img, sr
	if sr.Dx() != dr.Dx() || sr.Dy() != dr.Dy() {
		scratch := image.NewNRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
		draw.NearestNeighbor.Scale(scratch, scratch.Bounds(), st.img, sr, draw.Src, nil)
		pixels, pr = scratch, scratch.Bounds()
	}

	visible := dr.Intersect(r.drawBounds())
	out := r.target.img
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		sy := y - dr.Min.Y
		if flip&FlipVertical != 0 {
			sy = dr.Dy() - 1 - sy
		}
		for x := visible.Min.X; x < visible.Max.X; x++ {
			sx := x - dr.Min.X
			if flip&FlipHorizontal != 0 {
				sx = dr.Dx() - 1 - sx
			}

			c := pixels.NRGBAAt(pr.Min.X+sx, pr.Min.Y+sy)
			c.R = modulate(c.R, st.mod[0])
			c.G = modulate(c.G, st.mod[1])
			c.B = modulate(c.B, st.mod[2])

			i := out.PixOffset(x, y)
			blendInto(out.Pix[i:i+4], c, st.blend)
		}
	}
	return nil
}

// drawBounds is the writable area of the current target.
func (r *SoftwareRenderer) drawBounds() image.Rectangle {
	b := r.target.img.Bounds()
	if r.clipOn {
		b = b.Intersect(r.clip.Image())
	}
	return b
}

// blendInto combines src into the 4-byte straight-alpha pixel dst.
func blendInto(dst []byte, src color.NRGBA, mode BlendMode) {
	if mode == BlendNone || src.A == 0xff {
		dst[0], dst[1], dst[2], dst[3] = src.R, src.G, src.B, src.A
		return
	}
	if src.A == 0 {
		return
	}

	sa := uint32(src.A)
	inv := 0xff - sa
	dst[0] = mix(src.R, dst[0], sa, inv)
	dst[1] = mix(src.G, dst[1], sa, inv)
	dst[2] = mix(src.B, dst[2], sa, inv)
	//nolint:gosec // G115: result is at most 255
	dst[3] = uint8(sa + (uint32(dst[3])*inv+0x7f)/0xff)
}

func mix(s, d uint8, sa, inv uint32) uint8 {
	//nolint:gosec // G115: weighted average of two bytes
	return uint8((uint32(s)*sa + uint32(d)*inv + 0x7f) / 0xff)
}

func modulate(c, m uint8) uint8 {
	if m == 0xff {
		return c
	}
	//nolint:gosec // G115: product of two bytes divided by 255
	return uint8((uint32(c)*uint32(m) + 0x7f) / 0xff)
}

// Ensure SoftwareRenderer implements the renderer interfaces.
var (
	_ CapableRenderer           = (*SoftwareRenderer)(nil)
	_ gpucontext.TextureCreator = (*SoftwareRenderer)(nil)
)
