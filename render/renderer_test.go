// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
)

func TestRect(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Rect
		want  Rect
		empty bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, Rect{5, 5, 5, 5}, false},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 3, 4, 5}, Rect{2, 3, 4, 5}, false},
		{"disjoint", Rect{0, 0, 2, 2}, Rect{5, 5, 2, 2}, Rect{}, true},
		{"touching", Rect{0, 0, 2, 2}, Rect{2, 0, 2, 2}, Rect{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.empty, got.Empty())
		})
	}
}

func TestRectImageRoundTrip(t *testing.T) {
	r := Rect{X: -3, Y: 4, W: 7, H: 2}
	assert.Equal(t, image.Rect(-3, 4, 4, 6), r.Image())
	assert.Equal(t, r, RectFromImage(r.Image()))
	assert.Equal(t, Rect{X: 1, Y: 1, W: 2, H: 2}, RectFromImage(image.Rectangle{Min: image.Pt(3, 3), Max: image.Pt(1, 1)}))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Alpha", BlendAlpha.String())
	assert.Equal(t, "Unknown", BlendMode(7).String())
	assert.Equal(t, "Both", (FlipHorizontal | FlipVertical).String())
	assert.Equal(t, "None", FlipNone.String())
}

func TestTargetDescriptor(t *testing.T) {
	d := TargetDescriptor("tri", 12, 7)
	assert.Equal(t, uint32(12), d.Size.Width)
	assert.Equal(t, uint32(7), d.Size.Height)
	assert.Equal(t, gputypes.TextureFormatRGBA8Unorm, d.Format)
	assert.True(t, d.Usage.Contains(gputypes.TextureUsageRenderAttachment))
	assert.NoError(t, ValidateDescriptor(d, 0))
	assert.ErrorIs(t, ValidateDescriptor(d, 8), ErrInvalidSize)
}
