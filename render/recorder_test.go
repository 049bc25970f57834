package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderForwardsAndRecords(t *testing.T) {
	sw := NewSoftwareRenderer(8, 8)
	rec := NewRecorder(sw)

	tex, err := rec.CreateTexture(TargetDescriptor("rec", 2, 2))
	require.NoError(t, err)
	require.NoError(t, rec.SetRenderTarget(tex))
	rec.SetDrawColor(red)
	rec.Clear()
	rec.DrawPoint(1, 1)
	require.NoError(t, rec.SetRenderTarget(nil))
	rec.SetClipRect(&Rect{W: 4, H: 4})
	rec.SetBlendMode(BlendAlpha)
	rec.FillRect(Rect{X: 6, Y: 6, W: 1, H: 1})
	require.NoError(t, rec.Copy(tex, nil, &Rect{X: 1, Y: 1, W: 2, H: 2}, FlipHorizontal))
	rec.SetClipRect(nil)

	var types []OpType
	for _, op := range rec.Ops() {
		types = append(types, op.Type)
	}
	assert.Equal(t, []OpType{
		OpCreateTexture, OpSetRenderTarget, OpSetDrawColor, OpClear, OpDrawPoint,
		OpSetRenderTarget, OpSetClipRect, OpSetBlendMode, OpFillRect, OpCopy, OpSetClipRect,
	}, types)

	copies := rec.Filter(OpCopy)
	require.Len(t, copies, 1)
	assert.Equal(t, Rect{X: 1, Y: 1, W: 2, H: 2}, copies[0].Rect)
	assert.Equal(t, FlipHorizontal, copies[0].Flip)

	clips := rec.Filter(OpSetClipRect)
	assert.True(t, clips[0].Enabled)
	assert.False(t, clips[1].Enabled)

	// The wrapped renderer did the work; the fill was clipped away.
	assert.Equal(t, red, sw.Image().NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{}, sw.Image().NRGBAAt(6, 6))

	assert.Equal(t, 2, rec.Count(OpSetRenderTarget))
	rec.Reset()
	assert.Empty(t, rec.Ops())
}

func TestRecorderRecordsErrors(t *testing.T) {
	rec := NewRecorder(NewSoftwareRenderer(4, 4))

	_, err := rec.CreateTexture(TargetDescriptor("bad", 0, 0))
	require.Error(t, err)
	_, err = rec.NewTextureFromRGBA(1, 1, []byte{1})
	require.Error(t, err)

	ops := rec.Ops()
	require.Len(t, ops, 2)
	assert.ErrorIs(t, ops[0].Err, ErrInvalidSize)
	assert.Nil(t, ops[0].Texture)
	assert.Equal(t, OpUploadTexture, ops[1].Type)
	assert.ErrorIs(t, ops[1].Err, ErrInvalidSize)
}

func TestOpTypeString(t *testing.T) {
	assert.Equal(t, "FillRect", OpFillRect.String())
	assert.Equal(t, "Copy", OpCopy.String())
	assert.Equal(t, "OpType(200)", OpType(200).String())
}

// plainRenderer hides the Capabilities method of the renderer it wraps.
type plainRenderer struct {
	Renderer
}

func TestRecorderCapabilities(t *testing.T) {
	sw := NewSoftwareRenderer(4, 4)
	assert.Equal(t, sw.Capabilities(), NewRecorder(sw).Capabilities())
	assert.Equal(t, Capabilities{}, NewRecorder(plainRenderer{sw}).Capabilities())

	var _ CapableRenderer = NewRecorder(sw)
}
