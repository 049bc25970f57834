package ggtri

import (
	"errors"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/gogpu/gpucontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggtri/render"
)

// fakePlatform records cursor changes and holds a clipboard.
type fakePlatform struct {
	gpucontext.NullPlatformProvider
	cursors   []gpucontext.CursorShape
	clipboard string
	readErr   error
}

func (p *fakePlatform) SetCursor(c gpucontext.CursorShape) { p.cursors = append(p.cursors, c) }

func (p *fakePlatform) ClipboardRead() (string, error) {
	if p.readErr != nil {
		return "", p.readErr
	}
	return p.clipboard, nil
}

func (p *fakePlatform) ClipboardWrite(s string) error {
	p.clipboard = s
	return nil
}

// platformWindow is a window that also provides platform services.
type platformWindow struct {
	gpucontext.NullWindowProvider
	*fakePlatform
}

// fakeClock advances by step on every call.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestMouseCursorShape(t *testing.T) {
	tests := []struct {
		cursor MouseCursor
		want   gpucontext.CursorShape
	}{
		{MouseCursorNone, gpucontext.CursorNone},
		{MouseCursorArrow, gpucontext.CursorDefault},
		{MouseCursorTextInput, gpucontext.CursorText},
		{MouseCursorResizeAll, gpucontext.CursorMove},
		{MouseCursorResizeNS, gpucontext.CursorResizeNS},
		{MouseCursorResizeEW, gpucontext.CursorResizeEW},
		{MouseCursorResizeNESW, gpucontext.CursorResizeNESW},
		{MouseCursorResizeNWSE, gpucontext.CursorResizeNWSE},
		{MouseCursorHand, gpucontext.CursorPointer},
		{MouseCursorNotAllowed, gpucontext.CursorNotAllowed},
		{MouseCursor(99), gpucontext.CursorDefault},
		{MouseCursor(-5), gpucontext.CursorDefault},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cursor.CursorShape(), "cursor %d", tt.cursor)
	}
}

func TestDefaultKeyMap(t *testing.T) {
	io := newIO(nil)
	assert.Equal(t, gpucontext.KeyTab, io.KeyMap[NavKeyTab])
	assert.Equal(t, gpucontext.KeyNumpadEnter, io.KeyMap[NavKeyKeyPadEnter])
	assert.Equal(t, gpucontext.KeyZ, io.KeyMap[NavKeyZ])
	for k, key := range io.KeyMap {
		assert.NotEqual(t, gpucontext.KeyUnknown, key, "nav key %d unmapped", k)
	}
}

func TestNewFrame(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0), step: 20 * time.Millisecond}
	sw := render.NewSoftwareRenderer(8, 8)
	b, err := Initialize(sw, nil, 100, 50, testAtlas(), WithClock(clock.now))
	require.NoError(t, err)

	win := gpucontext.NullWindowProvider{W: 800, H: 600, SF: 2}
	b.NewFrame(win)
	io := b.IO()
	assert.Equal(t, Vec2{X: 800, Y: 600}, io.DisplaySize)
	assert.Equal(t, Vec2{X: 2, Y: 2}, io.DisplayFramebufferScale)
	assert.InDelta(t, 1.0/60.0, io.DeltaTime, 1e-6, "first frame")
	assert.Equal(t, Vec2{X: -math32.MaxFloat32, Y: -math32.MaxFloat32}, io.MousePos)

	b.NewFrame(win)
	assert.InDelta(t, 0.02, io.DeltaTime, 1e-6)

	// A minimized window keeps the previous scale.
	b.NewFrame(gpucontext.NullWindowProvider{W: 0, H: 0, SF: 3})
	assert.Equal(t, Vec2{}, io.DisplaySize)
	assert.Equal(t, Vec2{X: 2, Y: 2}, io.DisplayFramebufferScale)
}

func TestNewFrameUsesInitialWindow(t *testing.T) {
	sw := render.NewSoftwareRenderer(8, 8)
	win := gpucontext.NullWindowProvider{W: 320, H: 240, SF: 1}
	b, err := Initialize(sw, win, 320, 240, testAtlas())
	require.NoError(t, err)

	b.IO().DisplaySize = Vec2{}
	b.NewFrame(nil)
	assert.Equal(t, Vec2{X: 320, Y: 240}, b.IO().DisplaySize)
}

func TestNewFrameMouseButtons(t *testing.T) {
	b := newTestBackend(t, 8, 8)
	io := b.IO()

	// Press and release within one frame still reads as held.
	b.ProcessEvent(gpucontext.PointerEvent{Type: gpucontext.PointerDown, Button: gpucontext.ButtonLeft, X: 3, Y: 4})
	b.ProcessEvent(gpucontext.PointerEvent{Type: gpucontext.PointerUp, Button: gpucontext.ButtonLeft, X: 3, Y: 4})
	b.NewFrame(nil)
	assert.True(t, io.MouseDown[mouseLeft])
	assert.Equal(t, Vec2{X: 3, Y: 4}, io.MousePos)

	b.NewFrame(nil)
	assert.False(t, io.MouseDown[mouseLeft], "latch is cleared after one frame")

	// A held button stays down.
	b.ProcessEvent(gpucontext.PointerEvent{Type: gpucontext.PointerDown, Button: gpucontext.ButtonRight, X: 5, Y: 6})
	b.NewFrame(nil)
	b.NewFrame(nil)
	assert.True(t, io.MouseDown[mouseRight])
	assert.False(t, io.MouseDown[mouseMiddle])

	// Leaving the window forgets the position.
	b.ProcessEvent(gpucontext.PointerEvent{Type: gpucontext.PointerLeave})
	b.NewFrame(nil)
	assert.Equal(t, float32(-math32.MaxFloat32), io.MousePos.X)

	// So does losing focus.
	b.ProcessEvent(gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: 1, Y: 1})
	b.ProcessEvent(FocusEvent{Focused: false})
	b.NewFrame(nil)
	assert.Equal(t, float32(-math32.MaxFloat32), io.MousePos.X)
	b.ProcessEvent(FocusEvent{Focused: true})
	b.NewFrame(nil)
	assert.Equal(t, Vec2{X: 1, Y: 1}, io.MousePos)
}

func TestNewFrameCursor(t *testing.T) {
	p := &fakePlatform{}
	b := newTestBackend(t, 8, 8, WithPlatform(p))
	io := b.IO()

	io.MouseCursor = MouseCursorHand
	b.NewFrame(nil)
	io.MouseDrawCursor = true
	b.NewFrame(nil)
	io.MouseDrawCursor = false
	io.MouseCursor = MouseCursorNone
	b.NewFrame(nil)
	io.NoMouseCursorChange = true
	io.MouseCursor = MouseCursorTextInput
	b.NewFrame(nil)

	assert.Equal(t, []gpucontext.CursorShape{
		gpucontext.CursorPointer,
		gpucontext.CursorNone,
		gpucontext.CursorNone,
	}, p.cursors)
}

func TestPlatformFromWindow(t *testing.T) {
	p := &fakePlatform{clipboard: "from window"}
	win := platformWindow{NullWindowProvider: gpucontext.NullWindowProvider{W: 8, H: 8}, fakePlatform: p}

	sw := render.NewSoftwareRenderer(8, 8)
	b, err := Initialize(sw, win, 8, 8, testAtlas())
	require.NoError(t, err)

	assert.Equal(t, "from window", b.IO().ClipboardText())
	b.NewFrame(nil)
	assert.Equal(t, []gpucontext.CursorShape{gpucontext.CursorDefault}, p.cursors)
}

func TestClipboard(t *testing.T) {
	p := &fakePlatform{}
	b := newTestBackend(t, 8, 8, WithPlatform(p))
	io := b.IO()

	io.SetClipboardText("héllo")
	assert.Equal(t, "héllo", p.clipboard)
	assert.Equal(t, "héllo", io.ClipboardText())

	p.readErr = errors.New("clipboard busy")
	assert.Empty(t, io.ClipboardText())
}

func TestClipboardWithoutPlatform(t *testing.T) {
	b := newTestBackend(t, 8, 8)
	io := b.IO()

	io.SetClipboardText("ignored")
	assert.Empty(t, io.ClipboardText())
}
