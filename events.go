package ggtri

import (
	"github.com/gogpu/gpucontext"
	"golang.org/x/text/unicode/norm"
)

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key  gpucontext.Key
	Mods gpucontext.Modifiers
	Down bool
}

// TextInputEvent carries text typed by the user, already composed by the
// platform's input method.
type TextInputEvent struct {
	Text string
}

// FocusEvent reports that the window gained or lost keyboard focus.
type FocusEvent struct {
	Focused bool
}

// ProcessEvent feeds a platform event into the IO state and reports
// whether the backend consumed it. Accepted events are
// gpucontext.ScrollEvent, gpucontext.PointerEvent, KeyEvent,
// TextInputEvent and FocusEvent; anything else is ignored.
//
// Pointer motion, enter and leave update the cursor position but are not
// consumed, so the application sees them as well.
func (b *Backend) ProcessEvent(ev any) bool {
	return b.io.processEvent(ev)
}

func (io *IO) processEvent(ev any) bool {
	switch e := ev.(type) {
	case gpucontext.ScrollEvent:
		io.scroll(e)
		return true
	case gpucontext.PointerEvent:
		return io.pointerEvent(e)
	case KeyEvent:
		io.key(e)
		return true
	case TextInputEvent:
		io.AddInputCharacters(e.Text)
		return true
	case FocusEvent:
		io.focused = e.Focused
		return false
	}
	return false
}

// scroll adds one wheel step per axis in the direction of the delta.
// Scrolling content down is a negative vertical wheel step.
func (io *IO) scroll(e gpucontext.ScrollEvent) {
	switch {
	case e.DeltaX > 0:
		io.MouseWheelH++
	case e.DeltaX < 0:
		io.MouseWheelH--
	}
	switch {
	case e.DeltaY > 0:
		io.MouseWheel--
	case e.DeltaY < 0:
		io.MouseWheel++
	}
}

func (io *IO) pointerEvent(e gpucontext.PointerEvent) bool {
	switch e.Type {
	case gpucontext.PointerDown:
		io.movePointer(e)
		if i, ok := mouseIndex(e.Button); ok {
			io.pressed[i] = true
			io.held[i] = true
		}
		return true
	case gpucontext.PointerUp:
		io.movePointer(e)
		if i, ok := mouseIndex(e.Button); ok {
			io.held[i] = false
		}
		return true
	case gpucontext.PointerMove, gpucontext.PointerEnter:
		io.movePointer(e)
		io.held = [mouseButtonCount]bool{
			mouseLeft:   e.Buttons.HasLeft(),
			mouseRight:  e.Buttons.HasRight(),
			mouseMiddle: e.Buttons.HasMiddle(),
		}
	case gpucontext.PointerLeave:
		io.pointerKnown = false
	case gpucontext.PointerCancel:
		io.held = [mouseButtonCount]bool{}
	}
	return false
}

func (io *IO) movePointer(e gpucontext.PointerEvent) {
	io.pointer = Vec2{X: float32(e.X), Y: float32(e.Y)}
	io.pointerKnown = true
}

// mouseIndex maps a pointer button to its MouseDown slot.
func mouseIndex(b gpucontext.Button) (int, bool) {
	switch b {
	case gpucontext.ButtonLeft:
		return mouseLeft, true
	case gpucontext.ButtonRight:
		return mouseRight, true
	case gpucontext.ButtonMiddle:
		return mouseMiddle, true
	}
	return 0, false
}

func (io *IO) key(e KeyEvent) {
	if int(e.Key) < keyCount {
		io.KeysDown[e.Key] = e.Down
	}
	io.KeyShift = e.Mods.HasShift()
	io.KeyCtrl = e.Mods.HasControl()
	io.KeyAlt = e.Mods.HasAlt()
	io.KeySuper = e.Mods.HasSuper()
}

// AddInputCharacters queues the runes of text in NFC form.
func (io *IO) AddInputCharacters(text string) {
	for _, r := range norm.NFC.String(text) {
		io.InputCharacters = append(io.InputCharacters, r)
	}
}

// Attach registers callbacks on src that forward its events to
// ProcessEvent. Sources that also implement gpucontext.PointerEventSource
// or gpucontext.ScrollEventSource deliver the richer events.
func (b *Backend) Attach(src gpucontext.EventSource) {
	src.OnKeyPress(func(k gpucontext.Key, m gpucontext.Modifiers) {
		b.ProcessEvent(KeyEvent{Key: k, Mods: m, Down: true})
	})
	src.OnKeyRelease(func(k gpucontext.Key, m gpucontext.Modifiers) {
		b.ProcessEvent(KeyEvent{Key: k, Mods: m})
	})
	src.OnTextInput(func(text string) {
		b.ProcessEvent(TextInputEvent{Text: text})
	})
	src.OnFocus(func(focused bool) {
		b.ProcessEvent(FocusEvent{Focused: focused})
	})

	if ps, ok := src.(gpucontext.PointerEventSource); ok {
		ps.OnPointer(func(ev gpucontext.PointerEvent) {
			b.ProcessEvent(ev)
		})
	} else {
		src.OnMouseMove(func(x, y float64) {
			b.ProcessEvent(gpucontext.PointerEvent{
				Type:    gpucontext.PointerMove,
				X:       x,
				Y:       y,
				Button:  gpucontext.ButtonNone,
				Buttons: b.io.heldButtons(),
			})
		})
		src.OnMousePress(func(btn gpucontext.MouseButton, x, y float64) {
			b.ProcessEvent(gpucontext.PointerEvent{Type: gpucontext.PointerDown, X: x, Y: y, Button: pointerButton(btn)})
		})
		src.OnMouseRelease(func(btn gpucontext.MouseButton, x, y float64) {
			b.ProcessEvent(gpucontext.PointerEvent{Type: gpucontext.PointerUp, X: x, Y: y, Button: pointerButton(btn)})
		})
	}

	if ss, ok := src.(gpucontext.ScrollEventSource); ok {
		ss.OnScrollEvent(func(ev gpucontext.ScrollEvent) {
			b.ProcessEvent(ev)
		})
	} else {
		src.OnScroll(func(dx, dy float64) {
			b.ProcessEvent(gpucontext.ScrollEvent{DeltaX: dx, DeltaY: dy})
		})
	}
}

// heldButtons returns the tracked button state as a bitmask.
func (io *IO) heldButtons() gpucontext.Buttons {
	var bs gpucontext.Buttons
	if io.held[mouseLeft] {
		bs |= gpucontext.ButtonsLeft
	}
	if io.held[mouseRight] {
		bs |= gpucontext.ButtonsRight
	}
	if io.held[mouseMiddle] {
		bs |= gpucontext.ButtonsMiddle
	}
	return bs
}

func pointerButton(b gpucontext.MouseButton) gpucontext.Button {
	switch b {
	case gpucontext.MouseButtonLeft:
		return gpucontext.ButtonLeft
	case gpucontext.MouseButtonRight:
		return gpucontext.ButtonRight
	case gpucontext.MouseButtonMiddle:
		return gpucontext.ButtonMiddle
	}
	return gpucontext.ButtonNone
}
