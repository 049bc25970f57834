package ggtri

import (
	"fmt"
	"image/color"

	"github.com/gogpu/ggtri/cache"
	icolor "github.com/gogpu/ggtri/internal/color"
	"github.com/gogpu/ggtri/internal/raster"
	"github.com/gogpu/ggtri/render"
)

// Stats counts what the backend did since it was initialized.
type Stats struct {
	// Rects is the number of rectangles drawn by the fast path.
	Rects uint64

	// Rasterized is the number of triangles rasterized into a new texture.
	Rasterized uint64

	// CacheHits is the number of triangles drawn from a cached texture.
	CacheHits uint64

	// AllocFailures is the number of triangles skipped because their
	// texture could not be created.
	AllocFailures uint64

	// Degenerate is the number of triangles skipped because their
	// bounding box has no area.
	Degenerate uint64

	// Callbacks is the number of user callbacks invoked.
	Callbacks uint64

	// Uniform and Generic are the statistics of the two triangle caches.
	Uniform cache.Stats
	Generic cache.Stats
}

// cachedTriangle owns the texture a triangle was rasterized into.
type cachedTriangle struct {
	tex    render.Texture
	width  int
	height int
}

// release destroys the texture. Further calls do nothing.
func (c *cachedTriangle) release() {
	if c.tex == nil {
		return
	}
	c.tex.Destroy()
	c.tex = nil
}

// Device wraps a render.Renderer with the state the triangle engine needs:
// the command clip rectangle, the frame's render target, and the two
// triangle caches.
//
// Device is not safe for concurrent use.
type Device struct {
	renderer render.Renderer

	// maxTextureSize bounds each side of a triangle texture; 0 is unlimited.
	maxTextureSize int

	clip        render.Rect
	frameTarget render.Texture

	uniform *cache.LRU[UniformKey, *cachedTriangle]
	generic *cache.LRU[GenericKey, *cachedTriangle]

	stats Stats
}

// newDevice creates a device with caches of the configured capacities.
func newDevice(r render.Renderer, cfg Config) *Device {
	d := &Device{
		renderer: r,
		uniform: cache.NewLRU(cfg.UniformCacheSize, func(k UniformKey, c *cachedTriangle) {
			Logger().Debug("ggtri: uniform triangle released", "key", k.Hash(), "width", c.width, "height", c.height)
			c.release()
		}),
		generic: cache.NewLRU(cfg.GenericCacheSize, func(k GenericKey, c *cachedTriangle) {
			Logger().Debug("ggtri: textured triangle released", "key", k.Hash(), "width", c.width, "height", c.height)
			c.release()
		}),
	}
	if cr, ok := r.(render.CapableRenderer); ok {
		d.maxTextureSize = cr.Capabilities().MaxTextureSize
	}
	return d
}

// Renderer returns the wrapped renderer.
func (d *Device) Renderer() render.Renderer {
	return d.renderer
}

// SetClipRect makes r the active clip rectangle and applies it.
func (d *Device) SetClipRect(r render.Rect) {
	d.clip = r
	d.renderer.SetClipRect(&r)
}

// DisableClip turns clipping off without forgetting the active rectangle.
func (d *Device) DisableClip() {
	d.renderer.SetClipRect(nil)
}

// EnableClip reapplies the active clip rectangle.
func (d *Device) EnableClip() {
	clip := d.clip
	d.renderer.SetClipRect(&clip)
}

// beginFrame records the render target that UseAsRenderTarget(nil)
// returns to.
func (d *Device) beginFrame() {
	d.frameTarget = d.renderer.RenderTarget()
}

// UseAsRenderTarget redirects drawing to tex and clears it to transparent
// black. A nil tex restores the target that was current when the frame
// started.
func (d *Device) UseAsRenderTarget(tex render.Texture) error {
	if tex == nil {
		return d.renderer.SetRenderTarget(d.frameTarget)
	}
	if err := d.renderer.SetRenderTarget(tex); err != nil {
		return err
	}
	d.renderer.SetDrawColor(color.NRGBA{})
	d.renderer.Clear()
	return nil
}

// SetAt draws one pixel of the current target in c. Channels are scaled
// by 255 and truncated.
func (d *Device) SetAt(x, y int, c icolor.Color) {
	r, g, b, a := c.RGBA8()
	d.renderer.SetDrawColor(color.NRGBA{R: r, G: g, B: b, A: a})
	d.renderer.DrawPoint(x, y)
}

// MakeTexture creates a width x height render-target texture that
// alpha-blends when copied. Sizes beyond the renderer's reported
// MaxTextureSize fail with render.ErrInvalidSize without allocating.
func (d *Device) MakeTexture(width, height int) (render.Texture, error) {
	if m := d.maxTextureSize; m > 0 && (width > m || height > m) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", render.ErrInvalidSize, width, height, m)
	}
	tex, err := d.renderer.CreateTexture(render.TargetDescriptor("ggtri.triangle", width, height))
	if err != nil {
		return nil, err
	}
	tex.SetBlendMode(render.BlendAlpha)
	return tex, nil
}

// rasterizeInto renders t into a new texture of its bounding-box size.
// Clipping is suspended and the frame target restored on every return
// path. It reports false, leaving nothing allocated, if the texture could
// not be created or targeted.
func (d *Device) rasterizeInto(t raster.Triangle, s *raster.Shading) (*cachedTriangle, bool) {
	w, h := t.Width(), t.Height()
	tex, err := d.MakeTexture(w, h)
	if err != nil {
		d.stats.AllocFailures++
		Logger().Debug("ggtri: triangle texture allocation failed", "width", w, "height", h, "error", err)
		return nil, false
	}

	d.DisableClip()
	defer func() {
		if err := d.UseAsRenderTarget(nil); err != nil {
			Logger().Warn("ggtri: restore render target", "error", err)
		}
		d.EnableClip()
	}()

	if err := d.UseAsRenderTarget(tex); err != nil {
		tex.Destroy()
		d.stats.AllocFailures++
		Logger().Debug("ggtri: triangle texture is not a render target", "error", err)
		return nil, false
	}

	raster.Rasterize(t, s, d)
	d.stats.Rasterized++
	return &cachedTriangle{tex: tex, width: w, height: h}, true
}

// drawCached blits a cached triangle at the bounding-box origin of t.
func (d *Device) drawCached(c *cachedTriangle, t raster.Triangle) {
	dst := render.Rect{X: t.MinX, Y: t.MinY, W: c.width, H: c.height}
	if err := d.renderer.Copy(c.tex, nil, &dst, render.FlipNone); err != nil {
		Logger().Warn("ggtri: copy cached triangle", "error", err)
	}
}

// clearCaches releases every cached texture.
func (d *Device) clearCaches() {
	d.uniform.Clear()
	d.generic.Clear()
}

// Stats returns the device counters.
func (d *Device) Stats() Stats {
	s := d.stats
	s.Uniform = d.uniform.Stats()
	s.Generic = d.generic.Stats()
	return s
}

var _ raster.PixelSetter = (*Device)(nil)
