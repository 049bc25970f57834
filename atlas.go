package ggtri

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"

	"github.com/gogpu/ggtri/internal/color"
	"github.com/gogpu/ggtri/render"
)

// FontAtlas is the GUI library's font texture: glyphs plus one solid white
// texel used for untextured geometry.
type FontAtlas struct {
	// Image holds straight-alpha RGBA pixels.
	Image *image.NRGBA

	// WhitePixelUV is the texture coordinate of the white texel.
	WhitePixelUV Vec2
}

// atlasSampler reads atlas texels at normalized coordinates.
type atlasSampler struct {
	img *image.NRGBA
}

// Sample returns the texel at (u, v). Coordinates outside the image are
// clamped to its border.
func (s atlasSampler) Sample(u, v float32) color.Color {
	b := s.img.Bounds()
	w, h := b.Dx(), b.Dy()
	x := clampIndex(int(math32.Round(u*float32(w-1)+0.5)), w)
	y := clampIndex(int(math32.Round(v*float32(h-1)+0.5)), h)
	c := s.img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
	return color.FromRGBA8(c.R, c.G, c.B, c.A)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// uploadedAtlas is a FontAtlas together with its renderer texture.
type uploadedAtlas struct {
	atlas   *FontAtlas
	tex     render.Texture
	sampler atlasSampler
}

// uploadAtlas creates the atlas texture through the renderer's
// gpucontext.TextureCreator. The texture alpha-blends when copied.
func uploadAtlas(r render.Renderer, a *FontAtlas) (*uploadedAtlas, error) {
	if a == nil || a.Image == nil {
		return nil, ErrNilAtlas
	}
	b := a.Image.Bounds()
	w, h := b.Dx(), b.Dy()

	t, err := r.NewTextureFromRGBA(w, h, packedPixels(a.Image))
	if err != nil {
		return nil, fmt.Errorf("ggtri: upload font atlas: %w", err)
	}
	tex, ok := t.(render.Texture)
	if !ok {
		return nil, fmt.Errorf("ggtri: upload font atlas: renderer returned %T, not a render.Texture", t)
	}
	tex.SetBlendMode(render.BlendAlpha)

	return &uploadedAtlas{atlas: a, tex: tex, sampler: atlasSampler{img: a.Image}}, nil
}

// size returns the atlas image size, which may differ from what the
// renderer reports for the texture.
func (u *uploadedAtlas) size() (int, int) {
	b := u.atlas.Image.Bounds()
	return b.Dx(), b.Dy()
}

func (u *uploadedAtlas) release() {
	if u.tex == nil {
		return
	}
	u.tex.Destroy()
	u.tex = nil
}

// packedPixels returns img's pixels as tightly packed rows.
func packedPixels(img *image.NRGBA) []byte {
	b := img.Bounds()
	row := b.Dx() * 4
	if b.Min == (image.Point{}) && img.Stride == row {
		return img.Pix[:row*b.Dy()]
	}
	out := make([]byte, 0, row*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		out = append(out, img.Pix[i:i+row]...)
	}
	return out
}
