package ggtri

import (
	"github.com/gogpu/ggtri/internal/color"
	"github.com/gogpu/ggtri/internal/raster"
)

// setup converts the emitted triangle v0, v1, v2 to fixed point. The
// vertices are passed reversed to get the winding the edge functions
// expect.
func setup(v0, v1, v2 *Vertex) raster.Triangle {
	return raster.NewTriangle(point(v2.Pos), point(v1.Pos), point(v0.Pos))
}

func point(p Vec2) raster.Point {
	return raster.Point{X: p.X, Y: p.Y}
}

func rasterVertex(v *Vertex) raster.Vertex {
	return raster.Vertex{
		Pos: point(v.Pos),
		U:   v.UV.X,
		V:   v.UV.Y,
		Col: color.FromPacked(v.Col),
	}
}

// drawUniformTriangle draws a single-color triangle, from the cache when an
// identical triangle was seen before.
func (d *Device) drawUniformTriangle(v0, v1, v2 *Vertex) {
	t := setup(v0, v1, v2)
	if t.Empty() {
		d.stats.Degenerate++
		return
	}

	key := newUniformKey(v0, v1, v2, t)
	if cached, ok := d.uniform.Lookup(key); ok {
		d.stats.CacheHits++
		d.drawCached(cached, t)
		return
	}

	Logger().Debug("ggtri: uniform triangle miss", "key", key.Hash(), "width", t.Width(), "height", t.Height())
	cached, ok := d.rasterizeInto(t, raster.Solid(color.FromPacked(v0.Col)))
	if !ok {
		return
	}
	d.drawCached(cached, t)
	d.uniform.Insert(key, cached)
}

// drawTexturedTriangle draws a triangle that samples s and is shaded by
// its vertex colors, from the cache when possible.
func (d *Device) drawTexturedTriangle(v0, v1, v2 *Vertex, s raster.Sampler) {
	t := setup(v0, v1, v2)
	if t.Empty() {
		d.stats.Degenerate++
		return
	}

	key := newGenericKey(v0, v1, v2, t)
	if cached, ok := d.generic.Lookup(key); ok {
		d.stats.CacheHits++
		d.drawCached(cached, t)
		return
	}

	Logger().Debug("ggtri: textured triangle miss", "key", key.Hash(), "width", t.Width(), "height", t.Height())
	shading := raster.Textured(s, rasterVertex(v0), rasterVertex(v1), rasterVertex(v2))
	cached, ok := d.rasterizeInto(t, shading)
	if !ok {
		return
	}
	d.drawCached(cached, t)
	d.generic.Insert(key, cached)
}
