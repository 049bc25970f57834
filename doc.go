// Package ggtri draws the triangle output of an immediate-mode GUI library
// through a 2D renderer that has no triangle primitive.
//
// # Overview
//
// Immediate-mode GUI libraries emit textured, colored triangles. Many 2D
// renderers only fill rectangles, plot points and blit textures. ggtri
// bridges the two:
//
//   - Two triangles forming an axis-aligned, single-color rectangle are
//     drawn with one FillRect or one Copy.
//   - Every other triangle is rasterized once into a texture the size of
//     its bounding box and cached. The cache key uses coordinates relative
//     to the bounding box, so the same shape anywhere on screen is drawn
//     with a single blit.
//
// # Quick Start
//
//	r := render.NewSoftwareRenderer(800, 600)
//	b, err := ggtri.Initialize(r, window, 800, 600, &ggtri.FontAtlas{
//	    Image:        atlasImage,
//	    WhitePixelUV: white,
//	})
//	if err != nil {
//	    return err
//	}
//	defer b.Shutdown()
//
//	for running {
//	    b.NewFrame(window)
//	    // build the GUI, producing drawData
//	    if err := b.Render(drawData); err != nil {
//	        return err
//	    }
//	}
//
// # Architecture
//
// The package is organized into:
//   - Public API: Backend, DrawData, IO, Config, Option
//   - render: the Renderer and Texture interfaces, SoftwareRenderer, Recorder
//   - cache: the bounded LRU that owns triangle textures
//   - Internal: raster (fixed-point half-space rasterizer), color (float colors)
//
// # Rasterization
//
// Vertices are snapped to a 28.4 fixed-point grid. A pixel is covered when
// its center lies strictly inside all three edges; pixels exactly on an
// edge belong to the triangle for which it is a top or left edge, so
// triangles sharing an edge never overlap or leave gaps. Colors and
// texture coordinates are interpolated linearly in screen space and the
// texel is modulated by the vertex color. There is no anti-aliasing.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Colors are packed 0xAABBGGRR with straight alpha
//
// # Thread Safety
//
// A Backend is bound to the goroutine that owns its renderer. It does no
// locking of its own.
package ggtri
