package ggtri

import "github.com/gogpu/ggtri/render"

// Vec2 is a 2D float32 vector: a screen position or a texture coordinate.
type Vec2 struct {
	X, Y float32
}

// Vec4 is a 4-component float32 vector. As a clip rectangle it holds
// (X1, Y1, X2, Y2).
type Vec4 struct {
	X, Y, Z, W float32
}

// DrawIdx is a vertex index in a draw list.
type DrawIdx = uint16

// Vertex is one vertex emitted by the GUI library.
type Vertex struct {
	// Pos is the screen position in pixels.
	Pos Vec2

	// UV is the normalized texture coordinate.
	UV Vec2

	// Col is the straight-alpha color packed as 0xAABBGGRR.
	Col uint32
}

// TextureRef identifies the texture a draw command samples. The zero value
// refers to the font atlas.
type TextureRef struct {
	tex render.Texture
}

// External returns a reference to a texture owned by the application.
func External(t render.Texture) TextureRef {
	return TextureRef{tex: t}
}

// IsFontAtlas reports whether r refers to the font atlas.
func (r TextureRef) IsFontAtlas() bool {
	return r.tex == nil
}

// Texture returns the external texture, or nil for the font atlas.
func (r TextureRef) Texture() render.Texture {
	return r.tex
}

// DrawCallback is invoked in place of rasterization for commands that carry
// one. It receives the list and the command unmodified.
type DrawCallback func(list *DrawList, cmd *DrawCommand)

// DrawCommand draws ElemCount indices of its list, clipped to ClipRect.
//
// Commands consume the index buffer in order: a command's first index
// follows the last index of the previous command.
type DrawCommand struct {
	ElemCount int
	ClipRect  Vec4
	Texture   TextureRef

	// UserCallback, when set, replaces drawing of this command.
	UserCallback DrawCallback
}

// DrawList is one batch of geometry: shared vertex and index buffers and
// the commands that draw them.
type DrawList struct {
	VtxBuffer []Vertex
	IdxBuffer []DrawIdx
	CmdBuffer []DrawCommand
}

// PushCommand starts a new command with the given clip rectangle and
// texture. Primitives added afterwards belong to it.
func (l *DrawList) PushCommand(clip Vec4, tex TextureRef) {
	l.CmdBuffer = append(l.CmdBuffer, DrawCommand{ClipRect: clip, Texture: tex})
}

// AddCallback appends a command that runs fn instead of drawing.
func (l *DrawList) AddCallback(clip Vec4, fn DrawCallback) {
	l.CmdBuffer = append(l.CmdBuffer, DrawCommand{ClipRect: clip, UserCallback: fn})
}

// PrimTriangle appends one triangle to the current command.
//
// PrimTriangle panics if no command has been pushed.
func (l *DrawList) PrimTriangle(a, b, c Vertex) {
	cmd := l.current()
	base := l.base()
	l.VtxBuffer = append(l.VtxBuffer, a, b, c)
	l.IdxBuffer = append(l.IdxBuffer, base, base+1, base+2)
	cmd.ElemCount += 3
}

// PrimRectUV appends the axis-aligned rectangle from a (top-left) to c
// (bottom-right) as two triangles, mapping uvA and uvC to those corners.
// Vertices are emitted a, b, c, d clockwise from the top-left with
// indices 0,1,2 and 0,2,3, the layout GUI libraries use for quads.
//
// PrimRectUV panics if no command has been pushed.
func (l *DrawList) PrimRectUV(a, c, uvA, uvC Vec2, col uint32) {
	cmd := l.current()
	base := l.base()
	b := Vec2{X: c.X, Y: a.Y}
	d := Vec2{X: a.X, Y: c.Y}
	uvB := Vec2{X: uvC.X, Y: uvA.Y}
	uvD := Vec2{X: uvA.X, Y: uvC.Y}

	l.VtxBuffer = append(l.VtxBuffer,
		Vertex{Pos: a, UV: uvA, Col: col},
		Vertex{Pos: b, UV: uvB, Col: col},
		Vertex{Pos: c, UV: uvC, Col: col},
		Vertex{Pos: d, UV: uvD, Col: col},
	)
	l.IdxBuffer = append(l.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
	cmd.ElemCount += 6
}

func (l *DrawList) current() *DrawCommand {
	if len(l.CmdBuffer) == 0 {
		panic("ggtri: DrawList has no command; call PushCommand first")
	}
	return &l.CmdBuffer[len(l.CmdBuffer)-1]
}

func (l *DrawList) base() DrawIdx {
	//nolint:gosec // G115: GUI draw lists stay below 65536 vertices
	return DrawIdx(len(l.VtxBuffer))
}

// DrawData is everything the GUI library produced for one frame.
type DrawData struct {
	CmdLists []*DrawList
}

// TotalElemCount returns the number of indices drawn by all commands.
// Nil lists are skipped, as Render skips them.
func (d *DrawData) TotalElemCount() int {
	n := 0
	for _, l := range d.CmdLists {
		if l == nil {
			continue
		}
		for i := range l.CmdBuffer {
			n += l.CmdBuffer[i].ElemCount
		}
	}
	return n
}
