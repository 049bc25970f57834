// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the 2D hardware renderer that the triangle backend
// draws through.
//
// The renderer model is deliberately small: a current render target, a
// clip rectangle, a draw color and blend mode, point and rectangle fills,
// and textured blits with color modulation and flipping. There is no
// triangle primitive; ggtri builds triangles out of these operations.
//
// # Core Interfaces
//
//   - Renderer: the drawing device, usually a window's accelerated 2D renderer
//   - Texture: an image owned by a Renderer, usable as blit source and,
//     when created with TextureUsageRenderAttachment, as render target
//
// Renderer embeds gpucontext.TextureCreator, so any gpucontext host that can
// create textures from RGBA data can upload the GUI font atlas.
//
// # Implementations
//
//   - SoftwareRenderer: CPU renderer over *image.NRGBA with SDL-style
//     blending, used headless and in tests
//   - Recorder: wraps any Renderer and records the operation stream
//
// # Usage
//
//	r := render.NewSoftwareRenderer(640, 480)
//	tex, err := r.CreateTexture(render.TargetDescriptor("tri", 10, 10))
//	if err != nil {
//	    return err
//	}
//	_ = r.SetRenderTarget(tex)
//	r.SetDrawColor(color.NRGBA{255, 255, 255, 255})
//	r.DrawPoint(3, 4)
//	_ = r.SetRenderTarget(nil)
//	_ = r.Copy(tex, nil, &render.Rect{X: 100, Y: 100, W: 10, H: 10}, render.FlipNone)
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine, or external synchronization must be used.
package render
