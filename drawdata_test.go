package ggtri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggtri/render"
)

func TestTextureRef(t *testing.T) {
	var atlas TextureRef
	assert.True(t, atlas.IsFontAtlas())
	assert.Nil(t, atlas.Texture())

	sw := render.NewSoftwareRenderer(4, 4)
	tex, err := sw.CreateTexture(render.TargetDescriptor("ext", 2, 2))
	require.NoError(t, err)

	ext := External(tex)
	assert.False(t, ext.IsFontAtlas())
	assert.Equal(t, tex, ext.Texture())
}

func TestDrawListPrimRectUV(t *testing.T) {
	l := &DrawList{}
	l.PushCommand(noClip, TextureRef{})
	l.PrimRectUV(Vec2{X: 1, Y: 2}, Vec2{X: 5, Y: 8}, Vec2{X: 0, Y: 0.25}, Vec2{X: 1, Y: 0.75}, packedRed)

	require.Len(t, l.VtxBuffer, 4)
	assert.Equal(t, Vertex{Pos: Vec2{X: 1, Y: 2}, UV: Vec2{X: 0, Y: 0.25}, Col: packedRed}, l.VtxBuffer[0])
	assert.Equal(t, Vertex{Pos: Vec2{X: 5, Y: 2}, UV: Vec2{X: 1, Y: 0.25}, Col: packedRed}, l.VtxBuffer[1])
	assert.Equal(t, Vertex{Pos: Vec2{X: 5, Y: 8}, UV: Vec2{X: 1, Y: 0.75}, Col: packedRed}, l.VtxBuffer[2])
	assert.Equal(t, Vertex{Pos: Vec2{X: 1, Y: 8}, UV: Vec2{X: 0, Y: 0.75}, Col: packedRed}, l.VtxBuffer[3])
	assert.Equal(t, []DrawIdx{0, 1, 2, 0, 2, 3}, l.IdxBuffer)
	assert.Equal(t, 6, l.CmdBuffer[0].ElemCount)

	// Indices of a second primitive are offset by the vertices before it.
	l.PrimTriangle(solid(0, 0, packedRed), solid(1, 0, packedRed), solid(0, 1, packedRed))
	assert.Equal(t, []DrawIdx{0, 1, 2, 0, 2, 3, 4, 5, 6}, l.IdxBuffer)
	assert.Equal(t, 9, l.CmdBuffer[0].ElemCount)
}

func TestDrawListCommands(t *testing.T) {
	l := &DrawList{}
	l.PushCommand(Vec4{X: 1, Y: 2, Z: 3, W: 4}, TextureRef{})
	l.PrimTriangle(solid(0, 0, packedRed), solid(1, 0, packedRed), solid(0, 1, packedRed))
	l.AddCallback(noClip, func(*DrawList, *DrawCommand) {})
	l.PushCommand(noClip, TextureRef{})
	l.PrimTriangle(solid(0, 0, packedRed), solid(1, 0, packedRed), solid(0, 1, packedRed))

	require.Len(t, l.CmdBuffer, 3)
	assert.Equal(t, 3, l.CmdBuffer[0].ElemCount)
	assert.Equal(t, Vec4{X: 1, Y: 2, Z: 3, W: 4}, l.CmdBuffer[0].ClipRect)
	assert.NotNil(t, l.CmdBuffer[1].UserCallback)
	assert.Zero(t, l.CmdBuffer[1].ElemCount)
	assert.Equal(t, 3, l.CmdBuffer[2].ElemCount)

	data := &DrawData{CmdLists: []*DrawList{l, l}}
	assert.Equal(t, 12, data.TotalElemCount())

	// Nil lists are skipped, as Render does.
	data = &DrawData{CmdLists: []*DrawList{nil, l, nil}}
	assert.Equal(t, 6, data.TotalElemCount())
}

func TestDrawListWithoutCommandPanics(t *testing.T) {
	l := &DrawList{}
	assert.Panics(t, func() {
		l.PrimTriangle(solid(0, 0, packedRed), solid(1, 0, packedRed), solid(0, 1, packedRed))
	})
	assert.Panics(t, func() {
		l.PrimRectUV(Vec2{}, Vec2{X: 1, Y: 1}, whiteUV, whiteUV, packedRed)
	})
}
