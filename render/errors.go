// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "errors"

// Errors returned by renderers.
var (
	// ErrUnsupportedFormat is returned for texture descriptors a 2D renderer
	// cannot allocate.
	ErrUnsupportedFormat = errors.New("render: unsupported texture format")

	// ErrInvalidSize is returned for zero or oversized textures and for
	// pixel data whose length does not match the texture size.
	ErrInvalidSize = errors.New("render: invalid texture size")

	// ErrTextureDestroyed is returned when a destroyed texture is used.
	ErrTextureDestroyed = errors.New("render: texture destroyed")

	// ErrForeignTexture is returned when a texture is used with a renderer
	// that did not create it.
	ErrForeignTexture = errors.New("render: texture not created by this renderer")

	// ErrNotRenderTarget is returned by SetRenderTarget for textures created
	// without TextureUsageRenderAttachment.
	ErrNotRenderTarget = errors.New("render: texture is not a render target")
)
