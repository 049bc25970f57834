package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// OpType identifies a recorded renderer operation.
type OpType uint8

const (
	// Resource operations
	OpCreateTexture   OpType = iota // CreateTexture
	OpUploadTexture                 // NewTextureFromRGBA
	OpSetRenderTarget               // SetRenderTarget

	// State operations
	OpSetClipRect  // SetClipRect
	OpSetDrawColor // SetDrawColor
	OpSetBlendMode // SetBlendMode

	// Drawing operations
	OpClear     // Clear
	OpDrawPoint // DrawPoint
	OpFillRect  // FillRect
	OpCopy      // Copy
)

// opTypeNames maps OpType values to their string representation.
var opTypeNames = [...]string{
	OpCreateTexture:   "CreateTexture",
	OpUploadTexture:   "UploadTexture",
	OpSetRenderTarget: "SetRenderTarget",
	OpSetClipRect:     "SetClipRect",
	OpSetDrawColor:    "SetDrawColor",
	OpSetBlendMode:    "SetBlendMode",
	OpClear:           "Clear",
	OpDrawPoint:       "DrawPoint",
	OpFillRect:        "FillRect",
	OpCopy:            "Copy",
}

// String returns the name of the operation.
func (t OpType) String() string {
	if int(t) < len(opTypeNames) {
		return opTypeNames[t]
	}
	return fmt.Sprintf("OpType(%d)", t)
}

// Op is one recorded operation. Only the fields meaningful for Type are
// set.
type Op struct {
	Type OpType

	// Rect is the FillRect rectangle, the Copy destination, or the clip
	// rectangle. Src is the Copy source.
	Rect Rect
	Src  Rect

	// Enabled is false for a SetClipRect that disables clipping.
	Enabled bool

	// X and Y are the DrawPoint position.
	X, Y int

	Color   color.NRGBA
	Blend   BlendMode
	Flip    Flip
	Texture gpucontext.Texture

	// Err is the error returned by the wrapped renderer, if any.
	Err error
}

// Recorder is a Renderer that forwards every call to another Renderer and
// records it. Getters are forwarded but not recorded.
//
// Example:
//
//	rec := render.NewRecorder(render.NewSoftwareRenderer(640, 480))
//	backend.Render(drawData)
//	fills := rec.Count(render.OpFillRect)
type Recorder struct {
	Renderer
	ops []Op
}

// NewRecorder wraps r.
func NewRecorder(r Renderer) *Recorder {
	return &Recorder{Renderer: r}
}

// Capabilities forwards to the wrapped renderer when it is a
// CapableRenderer and returns zero capabilities otherwise.
func (r *Recorder) Capabilities() Capabilities {
	if cr, ok := r.Renderer.(CapableRenderer); ok {
		return cr.Capabilities()
	}
	return Capabilities{}
}

// Ops returns the recorded operations in call order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns how many operations of type t were recorded.
func (r *Recorder) Count(t OpType) int {
	n := 0
	for i := range r.ops {
		if r.ops[i].Type == t {
			n++
		}
	}
	return n
}

// Filter returns the recorded operations of type t.
func (r *Recorder) Filter(t OpType) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Type == t {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *Recorder) record(op Op) {
	r.ops = append(r.ops, op)
}

// CreateTexture records and forwards.
func (r *Recorder) CreateTexture(desc gputypes.TextureDescriptor) (Texture, error) {
	t, err := r.Renderer.CreateTexture(desc)
	op := Op{Type: OpCreateTexture, Rect: Rect{W: int(desc.Size.Width), H: int(desc.Size.Height)}, Err: err}
	if t != nil {
		op.Texture = t
	}
	r.record(op)
	return t, err
}

// NewTextureFromRGBA records and forwards.
func (r *Recorder) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	t, err := r.Renderer.NewTextureFromRGBA(width, height, data)
	r.record(Op{Type: OpUploadTexture, Rect: Rect{W: width, H: height}, Texture: t, Err: err})
	return t, err
}

// SetRenderTarget records and forwards.
func (r *Recorder) SetRenderTarget(t Texture) error {
	err := r.Renderer.SetRenderTarget(t)
	op := Op{Type: OpSetRenderTarget, Err: err}
	if t != nil {
		op.Texture = t
	}
	r.record(op)
	return err
}

// SetClipRect records and forwards.
func (r *Recorder) SetClipRect(rect *Rect) {
	op := Op{Type: OpSetClipRect}
	if rect != nil {
		op.Rect, op.Enabled = *rect, true
	}
	r.record(op)
	r.Renderer.SetClipRect(rect)
}

// SetDrawColor records and forwards.
func (r *Recorder) SetDrawColor(c color.NRGBA) {
	r.record(Op{Type: OpSetDrawColor, Color: c})
	r.Renderer.SetDrawColor(c)
}

// SetBlendMode records and forwards.
func (r *Recorder) SetBlendMode(m BlendMode) {
	r.record(Op{Type: OpSetBlendMode, Blend: m})
	r.Renderer.SetBlendMode(m)
}

// Clear records and forwards.
func (r *Recorder) Clear() {
	r.record(Op{Type: OpClear, Color: r.Renderer.DrawColor()})
	r.Renderer.Clear()
}

// DrawPoint records and forwards.
func (r *Recorder) DrawPoint(x, y int) {
	r.record(Op{Type: OpDrawPoint, X: x, Y: y, Color: r.Renderer.DrawColor()})
	r.Renderer.DrawPoint(x, y)
}

// FillRect records and forwards.
func (r *Recorder) FillRect(rect Rect) {
	r.record(Op{Type: OpFillRect, Rect: rect, Color: r.Renderer.DrawColor()})
	r.Renderer.FillRect(rect)
}

// Copy records and forwards.
func (r *Recorder) Copy(tex Texture, src, dst *Rect, flip Flip) error {
	err := r.Renderer.Copy(tex, src, dst, flip)
	op := Op{Type: OpCopy, Flip: flip, Texture: tex, Err: err}
	if src != nil {
		op.Src = *src
	}
	if dst != nil {
		op.Rect = *dst
	}
	r.record(op)
	return err
}

var _ Renderer = (*Recorder)(nil)
