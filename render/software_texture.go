// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// softwareTexture is a Texture of a SoftwareRenderer.
type softwareTexture struct {
	owner *SoftwareRenderer
	label string
	img   *image.NRGBA
	usage gputypes.TextureUsage

	mod   [3]uint8
	blend BlendMode

	screen    bool
	destroyed bool
}

// Width returns the texture width in pixels.
func (t *softwareTexture) Width() int { return t.img.Bounds().Dx() }

// Height returns the texture height in pixels.
func (t *softwareTexture) Height() int { return t.img.Bounds().Dy() }

// SetColorMod sets the RGB multiplier applied on Copy.
func (t *softwareTexture) SetColorMod(r, g, b uint8) {
	t.mod = [3]uint8{r, g, b}
}

// SetBlendMode sets how the texture combines with the target on Copy.
func (t *softwareTexture) SetBlendMode(m BlendMode) {
	t.blend = m
}

// Destroy releases the texture. The framebuffer cannot be destroyed.
func (t *softwareTexture) Destroy() {
	if t.destroyed || t.screen {
		return
	}
	t.destroyed = true
	t.owner.live--
	if t.owner.target == t {
		t.owner.target = t.owner.screen
	}
}

// UpdateData replaces the texture's pixels with width * height * 4 bytes of
// straight-alpha RGBA.
func (t *softwareTexture) UpdateData(data []byte) error {
	if t.destroyed {
		return fmt.Errorf("%w: %s", ErrTextureDestroyed, t.label)
	}
	if len(data) != len(t.img.Pix) {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidSize, len(data), t.Width(), t.Height())
	}
	copy(t.img.Pix, data)
	return nil
}

// Image returns the texture's pixels. It exists for tests and debugging;
// the returned image shares memory with the texture.
func (t *softwareTexture) Image() *image.NRGBA { return t.img }

// String returns the texture label and size.
func (t *softwareTexture) String() string {
	return fmt.Sprintf("%s(%dx%d)", t.label, t.Width(), t.Height())
}

var (
	_ Texture                   = (*softwareTexture)(nil)
	_ gpucontext.TextureUpdater = (*softwareTexture)(nil)
)
