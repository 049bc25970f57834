package ggtri

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/gogpu/gpucontext"
)

// MouseCursor is the cursor shape the GUI library asks for.
type MouseCursor int

// Mouse cursors.
const (
	MouseCursorNone MouseCursor = iota - 1
	MouseCursorArrow
	MouseCursorTextInput
	MouseCursorResizeAll
	MouseCursorResizeNS
	MouseCursorResizeEW
	MouseCursorResizeNESW
	MouseCursorResizeNWSE
	MouseCursorHand
	MouseCursorNotAllowed

	mouseCursorCount
)

// cursorShapes maps GUI cursors to platform cursor shapes.
var cursorShapes = [mouseCursorCount]gpucontext.CursorShape{
	MouseCursorArrow:      gpucontext.CursorDefault,
	MouseCursorTextInput:  gpucontext.CursorText,
	MouseCursorResizeAll:  gpucontext.CursorMove,
	MouseCursorResizeNS:   gpucontext.CursorResizeNS,
	MouseCursorResizeEW:   gpucontext.CursorResizeEW,
	MouseCursorResizeNESW: gpucontext.CursorResizeNESW,
	MouseCursorResizeNWSE: gpucontext.CursorResizeNWSE,
	MouseCursorHand:       gpucontext.CursorPointer,
	MouseCursorNotAllowed: gpucontext.CursorNotAllowed,
}

// CursorShape returns the platform shape for c. Unknown cursors map to
// the default arrow.
func (c MouseCursor) CursorShape() gpucontext.CursorShape {
	if c == MouseCursorNone {
		return gpucontext.CursorNone
	}
	if c < 0 || c >= mouseCursorCount {
		return gpucontext.CursorDefault
	}
	return cursorShapes[c]
}

// NavKey names the keys the GUI library reads for navigation and editing.
type NavKey int

// Navigation keys.
const (
	NavKeyTab NavKey = iota
	NavKeyLeftArrow
	NavKeyRightArrow
	NavKeyUpArrow
	NavKeyDownArrow
	NavKeyPageUp
	NavKeyPageDown
	NavKeyHome
	NavKeyEnd
	NavKeyInsert
	NavKeyDelete
	NavKeyBackspace
	NavKeySpace
	NavKeyEnter
	NavKeyEscape
	NavKeyKeyPadEnter
	NavKeyA // select all
	NavKeyC // copy
	NavKeyV // paste
	NavKeyX // cut
	NavKeyY // redo
	NavKeyZ // undo

	navKeyCount
)

// defaultKeyMap is the KeyMap set by Initialize.
var defaultKeyMap = [navKeyCount]gpucontext.Key{
	NavKeyTab:         gpucontext.KeyTab,
	NavKeyLeftArrow:   gpucontext.KeyLeft,
	NavKeyRightArrow:  gpucontext.KeyRight,
	NavKeyUpArrow:     gpucontext.KeyUp,
	NavKeyDownArrow:   gpucontext.KeyDown,
	NavKeyPageUp:      gpucontext.KeyPageUp,
	NavKeyPageDown:    gpucontext.KeyPageDown,
	NavKeyHome:        gpucontext.KeyHome,
	NavKeyEnd:         gpucontext.KeyEnd,
	NavKeyInsert:      gpucontext.KeyInsert,
	NavKeyDelete:      gpucontext.KeyDelete,
	NavKeyBackspace:   gpucontext.KeyBackspace,
	NavKeySpace:       gpucontext.KeySpace,
	NavKeyEnter:       gpucontext.KeyEnter,
	NavKeyEscape:      gpucontext.KeyEscape,
	NavKeyKeyPadEnter: gpucontext.KeyNumpadEnter,
	NavKeyA:           gpucontext.KeyA,
	NavKeyC:           gpucontext.KeyC,
	NavKeyV:           gpucontext.KeyV,
	NavKeyX:           gpucontext.KeyX,
	NavKeyY:           gpucontext.KeyY,
	NavKeyZ:           gpucontext.KeyZ,
}

// keyCount is the size of IO.KeysDown.
const keyCount = int(gpucontext.KeyPause) + 1

// Mouse buttons tracked in IO.MouseDown.
const (
	mouseLeft = iota
	mouseRight
	mouseMiddle

	mouseButtonCount
)

// IO is the per-frame input and display state exchanged with the GUI
// library. The backend writes it in NewFrame and ProcessEvent; the GUI
// library sets MouseCursor and MouseDrawCursor.
type IO struct {
	// DisplaySize is the window size in logical points.
	DisplaySize Vec2

	// DisplayFramebufferScale is the ratio of framebuffer pixels to points.
	DisplayFramebufferScale Vec2

	// DeltaTime is the time since the previous frame in seconds.
	DeltaTime float32

	// MousePos is the cursor position, or (-MaxFloat32, -MaxFloat32) when
	// the cursor is not over a focused window.
	MousePos Vec2

	// MouseDown holds the left, right and middle button states. A press
	// seen during a frame reads as held for that frame even if the button
	// was released again.
	MouseDown [mouseButtonCount]bool

	// MouseWheel and MouseWheelH accumulate vertical and horizontal wheel
	// steps.
	MouseWheel  float32
	MouseWheelH float32

	// KeysDown is indexed by gpucontext.Key.
	KeysDown [keyCount]bool

	KeyShift bool
	KeyCtrl  bool
	KeyAlt   bool
	KeySuper bool

	// KeyMap tells the GUI library which KeysDown entry holds each
	// navigation key.
	KeyMap [navKeyCount]gpucontext.Key

	// InputCharacters queues text typed since the GUI library last drained
	// it.
	InputCharacters []rune

	// MouseCursor is the cursor the GUI library wants this frame.
	MouseCursor MouseCursor

	// MouseDrawCursor hides the platform cursor because the GUI library
	// draws its own.
	MouseDrawCursor bool

	// NoMouseCursorChange stops NewFrame from touching the platform cursor.
	NoMouseCursorChange bool

	platform gpucontext.PlatformProvider

	pressed      [mouseButtonCount]bool
	held         [mouseButtonCount]bool
	pointer      Vec2
	pointerKnown bool
	focused      bool

	lastFrame time.Time
}

func newIO(platform gpucontext.PlatformProvider) *IO {
	return &IO{
		DisplayFramebufferScale: Vec2{X: 1, Y: 1},
		MousePos:                Vec2{X: -math32.MaxFloat32, Y: -math32.MaxFloat32},
		KeyMap:                  defaultKeyMap,
		platform:                platform,
		focused:                 true,
	}
}

// IsKeyDown reports whether k is held.
func (io *IO) IsKeyDown(k gpucontext.Key) bool {
	return int(k) < keyCount && io.KeysDown[k]
}

// IsNavKeyDown reports whether the key mapped to k is held.
func (io *IO) IsNavKeyDown(k NavKey) bool {
	if k < 0 || k >= navKeyCount {
		return false
	}
	return io.IsKeyDown(io.KeyMap[k])
}

// ClipboardText returns the platform clipboard contents. It returns ""
// when there is no platform or the clipboard cannot be read.
func (io *IO) ClipboardText() string {
	if io.platform == nil {
		return ""
	}
	text, err := io.platform.ClipboardRead()
	if err != nil {
		Logger().Debug("ggtri: clipboard read", "error", err)
		return ""
	}
	return text
}

// SetClipboardText writes text to the platform clipboard.
func (io *IO) SetClipboardText(text string) {
	if io.platform == nil {
		return
	}
	if err := io.platform.ClipboardWrite(text); err != nil {
		Logger().Debug("ggtri: clipboard write", "error", err)
	}
}

// newFrame refreshes display size, frame time, mouse state and cursor.
// A nil window keeps the previous display size.
func (io *IO) newFrame(window gpucontext.WindowProvider, now time.Time) {
	if window != nil {
		w, h := window.Size()
		io.DisplaySize = Vec2{X: float32(w), Y: float32(h)}
		if w > 0 && h > 0 {
			sf := float32(window.ScaleFactor())
			io.DisplayFramebufferScale = Vec2{X: sf, Y: sf}
		}
	}

	if io.lastFrame.IsZero() {
		io.DeltaTime = 1.0 / 60.0
	} else {
		io.DeltaTime = float32(now.Sub(io.lastFrame).Seconds())
	}
	io.lastFrame = now

	io.updateMousePosAndButtons()
	io.updateMouseCursor()
}

func (io *IO) updateMousePosAndButtons() {
	io.MousePos = Vec2{X: -math32.MaxFloat32, Y: -math32.MaxFloat32}
	if io.focused && io.pointerKnown {
		io.MousePos = io.pointer
	}

	for i := range io.MouseDown {
		io.MouseDown[i] = io.pressed[i] || io.held[i]
		io.pressed[i] = false
	}
}

func (io *IO) updateMouseCursor() {
	if io.NoMouseCursorChange || io.platform == nil {
		return
	}
	if io.MouseDrawCursor {
		io.platform.SetCursor(gpucontext.CursorNone)
		return
	}
	io.platform.SetCursor(io.MouseCursor.CursorShape())
}
