package ggtri

import (
	"fmt"
	"image/color"

	icolor "github.com/gogpu/ggtri/internal/color"
	"github.com/gogpu/ggtri/render"
)

// renderList draws every command of l in order.
func (b *Backend) renderList(l *DrawList) {
	idx := l.IdxBuffer
	for ci := range l.CmdBuffer {
		cmd := &l.CmdBuffer[ci]
		if cmd.ElemCount > len(idx) {
			panic(fmt.Sprintf("ggtri: command %d draws %d indices, only %d left", ci, cmd.ElemCount, len(idx)))
		}

		b.device.SetClipRect(clipRect(cmd.ClipRect))
		if cmd.UserCallback != nil {
			b.device.stats.Callbacks++
			cmd.UserCallback(l, cmd)
		} else {
			b.renderCommand(l.VtxBuffer, idx[:cmd.ElemCount], cmd.Texture)
		}
		idx = idx[cmd.ElemCount:]
	}
}

// renderCommand draws the triangles of one command. idx holds exactly the
// command's indices.
func (b *Backend) renderCommand(vtx []Vertex, idx []DrawIdx, tex TextureRef) {
	white := b.atlas.atlas.WhitePixelUV
	n := len(idx)
	for i := 0; i+3 <= n; {
		shape, used := classify(vtx, idx, i, n, white)
		v0, v1, v2 := &vtx[idx[i]], &vtx[idx[i+1]], &vtx[idx[i+2]]

		switch shape {
		case ShapeRect:
			b.drawRect(tex, v0, v1, v2)
		case ShapeUniformTriangle:
			b.device.drawUniformTriangle(v0, v1, v2)
		default:
			if !tex.IsFontAtlas() {
				panic("ggtri: textured triangle does not sample the font atlas")
			}
			b.device.drawTexturedTriangle(v0, v1, v2, b.atlas.sampler)
		}
		i += used
	}
}

// drawRect draws the rectangle whose first triangle is v0, v1, v2. The
// GUI library emits the top-left corner first, so comparing the texture
// coordinates of v0 and v2 reveals a mirrored texture.
func (b *Backend) drawRect(ref TextureRef, v0, v1, v2 *Vertex) {
	bb := boundsOf(v0, v1, v2)

	flip := render.FlipNone
	if v2.UV.X < v0.UV.X {
		flip |= render.FlipHorizontal
	}
	vflip := v2.UV.X < v0.UV.X
	if b.cfg.VerticalFlipFromV {
		vflip = v2.UV.Y < v0.UV.Y
	}
	if vflip {
		flip |= render.FlipVertical
	}

	tex := b.atlas.tex
	w, h := b.atlas.size()
	if !ref.IsFontAtlas() {
		tex = ref.Texture()
		w, h = tex.Width(), tex.Height()
	}
	b.device.drawRect(bb, b.atlas.atlas.WhitePixelUV, tex, w, h, v0.Col, flip)
}

// drawRect fills bb in col when it samples only the white texel, and
// otherwise copies the matching region of tex (texW x texH pixels) tinted
// by col.
func (d *Device) drawRect(bb bounds, white Vec2, tex render.Texture, texW, texH int, col uint32, flip render.Flip) {
	d.stats.Rects++
	dst := render.Rect{
		X: int(bb.MinX),
		Y: int(bb.MinY),
		W: int(bb.MaxX - bb.MinX),
		H: int(bb.MaxY - bb.MinY),
	}
	r, g, bl, a := icolor.FromPacked(col).RGBA8()

	if bb.UsesOnlyColor(white) {
		d.renderer.SetDrawColor(color.NRGBA{R: r, G: g, B: bl, A: a})
		d.renderer.FillRect(dst)
		return
	}

	src := render.Rect{
		X: int(bb.MinU * float32(texW)),
		Y: int(bb.MinV * float32(texH)),
		W: int((bb.MaxU - bb.MinU) * float32(texW)),
		H: int((bb.MaxV - bb.MinV) * float32(texH)),
	}
	tex.SetColorMod(r, g, bl)
	if err := d.renderer.Copy(tex, &src, &dst, flip); err != nil {
		Logger().Warn("ggtri: copy rectangle", "texture", tex, "error", err)
	}
}

// clipRect converts a command clip rectangle (x1, y1, x2, y2) to integer
// origin and size, truncating each value.
func clipRect(v Vec4) render.Rect {
	return render.Rect{
		X: int(v.X),
		Y: int(v.Y),
		W: int(v.Z - v.X),
		H: int(v.W - v.Y),
	}
}
