package ggtri

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggtri/render"
)

// Packed 0xAABBGGRR test colors.
const (
	packedRed   uint32 = 0xff0000ff
	packedGreen uint32 = 0xff00ff00
	packedBlue  uint32 = 0xffff0000
	packedWhite uint32 = 0xffffffff
)

var (
	nrgbaRed   = color.NRGBA{R: 255, A: 255}
	nrgbaGreen = color.NRGBA{G: 255, A: 255}
	nrgbaBlue  = color.NRGBA{B: 255, A: 255}
)

// whiteUV is the white texel of testAtlas.
var whiteUV = Vec2{X: 0.5, Y: 0.5}

// noClip is a command clip rectangle larger than any test target.
var noClip = Vec4{X: 0, Y: 0, Z: 4096, W: 4096}

// testAtlas returns a 4x4 opaque white atlas.
func testAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return &FontAtlas{Image: img, WhitePixelUV: whiteUV}
}

// testBackend is a backend drawing into a software renderer through a
// recorder.
type testBackend struct {
	*Backend
	sw  *render.SoftwareRenderer
	rec *render.Recorder
}

func newTestBackend(t *testing.T, w, h int, opts ...Option) *testBackend {
	t.Helper()
	sw := render.NewSoftwareRenderer(w, h)
	rec := render.NewRecorder(sw)
	b, err := Initialize(rec, nil, w, h, testAtlas(), opts...)
	require.NoError(t, err)
	rec.Reset()
	return &testBackend{Backend: b, sw: sw, rec: rec}
}

// solid returns a vertex at (x, y) sampling the white texel.
func solid(x, y float32, col uint32) Vertex {
	return Vertex{Pos: Vec2{X: x, Y: y}, UV: whiteUV, Col: col}
}

// singleList wraps triangles into draw data with one command.
func singleList(tex TextureRef, tris ...[3]Vertex) *DrawData {
	l := &DrawList{}
	l.PushCommand(noClip, tex)
	for _, tr := range tris {
		l.PrimTriangle(tr[0], tr[1], tr[2])
	}
	return &DrawData{CmdLists: []*DrawList{l}}
}

// upperLeft is the half of the 10x10 square with x+y < 10.
func upperLeft(dx, dy float32, col uint32) [3]Vertex {
	return [3]Vertex{solid(dx, dy, col), solid(dx+10, dy, col), solid(dx, dy+10, col)}
}

// lowerRight is the half of the 10x10 square with x+y >= 10.
func lowerRight(dx, dy float32, col uint32) [3]Vertex {
	return [3]Vertex{solid(dx+10, dy, col), solid(dx+10, dy+10, col), solid(dx, dy+10, col)}
}

// countColor counts pixels of img inside r equal to c.
func countColor(img *image.NRGBA, r image.Rectangle, c color.NRGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.NRGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

var errNoMemory = errors.New("out of texture memory")

// failingRenderer refuses to create textures.
type failingRenderer struct {
	*render.SoftwareRenderer
}

func (failingRenderer) CreateTexture(gputypes.TextureDescriptor) (render.Texture, error) {
	return nil, errNoMemory
}
