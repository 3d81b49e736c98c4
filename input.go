package loom

// Keys is a bitset of the editor's tracked keys.
type Keys uint64

const (
	// KeyDelete arms the connection-cutting gesture.
	KeyDelete Keys = 1 << iota
	// KeyMenu opens the node palette.
	KeyMenu
	// KeyArrowLeft pans the view left.
	KeyArrowLeft
	// KeyArrowRight pans the view right.
	KeyArrowRight
	// KeyArrowUp pans the view up.
	KeyArrowUp
	// KeyArrowDown pans the view down.
	KeyArrowDown
	// KeyShift is the shift modifier.
	KeyShift
	// KeyCtrl is the control modifier.
	KeyCtrl
	// KeyAlt is the alt modifier.
	KeyAlt
)

// Contains reports whether every key in mask is set.
func (k Keys) Contains(mask Keys) bool {
	return k&mask == mask
}

// IsEmpty reports whether no key is set.
func (k Keys) IsEmpty() bool {
	return k == 0
}

// MouseEventKind discriminates MouseEvent variants.
type MouseEventKind uint8

const (
	// MouseNone carries no mouse gesture.
	MouseNone MouseEventKind = iota
	// MouseClick is a press and release without crossing the drag
	// threshold.
	MouseClick
	// MouseStartDrag fires once when accumulated movement since the press
	// crosses the drag threshold.
	MouseStartDrag
	// MouseDrag fires for every move while a drag is in progress.
	MouseDrag
	// MouseEndDrag fires when the button releases mid-drag.
	MouseEndDrag
	// MouseWheel is a scroll step.
	MouseWheel
)

// MouseEvent is one resolved mouse gesture. Which fields are meaningful
// depends on Kind:
//
//	Click      Pos is the press position.
//	StartDrag  Pos is the press position, Delta the movement accumulated
//	           since the press.
//	Drag       Pos is the current position, Delta the movement since the
//	           previous move.
//	EndDrag    Pos is the press position plus all accumulated movement.
//	Wheel      Pos is the cursor position, Wheel the scroll delta.
type MouseEvent struct {
	Kind  MouseEventKind
	Pos   Point
	Delta Vec2
	Wheel float64
}

// Event is what the dispatcher hands to the editor on every input: the
// resolved mouse gesture plus the key state before and after it.
type Event struct {
	Mouse      MouseEvent
	Keys       Keys
	KeysLately Keys
}

// Pressed reports whether the key went down on this event.
func (e Event) Pressed(key Keys) bool {
	return e.Keys.Contains(key) && !e.KeysLately.Contains(key)
}

// Released reports whether the key went up on this event.
func (e Event) Released(key Keys) bool {
	return !e.Keys.Contains(key) && e.KeysLately.Contains(key)
}

// Held reports whether the key was down both before and after this event.
func (e Event) Held(key Keys) bool {
	return e.Keys.Contains(key) && e.KeysLately.Contains(key)
}

// Down reports whether the key is down after this event.
func (e Event) Down(key Keys) bool {
	return e.Keys.Contains(key)
}

// dragThreshold is compared against the squared length of the movement
// accumulated since the press. Below it a press-release resolves to a
// click; above it the press becomes a drag.
const dragThreshold = 500.0

// Input turns raw mouse and key notifications into resolved Events. It
// carries the press, drag, and key state between notifications; each
// notification method updates that state and returns the Event the editor
// should handle.
type Input struct {
	draggingLately bool
	draggingNow    bool

	mouseDownLately bool
	mouseDown       bool

	mouseDownPos Point
	mousePos     Point

	mouseDeltaCurrent       Vec2
	mouseDeltaTillMouseDown Vec2

	wheelDelta float64

	keysLately Keys
	keys       Keys
}

// NewInput returns a dispatcher with nothing pressed.
func NewInput() *Input {
	return &Input{}
}

// update snapshots the previous state before a notification mutates it.
// Per-notification deltas are cleared here so a key or wheel notification
// arriving mid-drag cannot re-deliver the previous move's delta.
func (in *Input) update() {
	in.keysLately = in.keys
	in.mouseDownLately = in.mouseDown
	in.draggingLately = in.draggingNow
	in.wheelDelta = 0
	in.mouseDeltaCurrent = Vec2{}
}

func (in *Input) event() Event {
	return Event{
		Mouse:      in.resolveMouse(),
		Keys:       in.keys,
		KeysLately: in.keysLately,
	}
}

// MouseDown records a button press at pos.
func (in *Input) MouseDown(pos Point) Event {
	in.update()
	in.mouseDown = true
	in.mouseDownPos = pos
	in.mousePos = pos
	in.mouseDeltaTillMouseDown = Vec2{}
	return in.event()
}

// MouseUp records a button release at pos.
func (in *Input) MouseUp(pos Point) Event {
	in.update()
	in.mouseDown = false
	in.draggingNow = false
	in.mousePos = pos
	return in.event()
}

// MouseMove records the cursor arriving at pos.
func (in *Input) MouseMove(pos Point) Event {
	in.update()
	in.mouseDeltaCurrent = pos.Sub(in.mousePos)
	in.mousePos = pos

	if in.mouseDown {
		in.mouseDeltaTillMouseDown = in.mouseDeltaTillMouseDown.Add(in.mouseDeltaCurrent)
		if in.mouseDeltaTillMouseDown.LenSq() > dragThreshold {
			in.draggingNow = true
		}
	} else {
		in.draggingNow = false
	}
	return in.event()
}

// Wheel records a scroll step.
func (in *Input) Wheel(delta float64) Event {
	in.update()
	in.wheelDelta = delta
	return in.event()
}

// KeyDown records a key press.
func (in *Input) KeyDown(key Keys) Event {
	in.update()
	in.keys |= key
	return in.event()
}

// KeyUp records a key release.
func (in *Input) KeyUp(key Keys) Event {
	in.update()
	in.keys &^= key
	return in.event()
}

// MousePos returns the last known cursor position.
func (in *Input) MousePos() Point {
	return in.mousePos
}

// resolveMouse classifies the current state into a single gesture. Wheel
// wins outright; drag transitions come next; a click needs a release with
// the accumulated movement still under the threshold.
func (in *Input) resolveMouse() MouseEvent {
	if in.wheelDelta != 0 {
		return MouseEvent{Kind: MouseWheel, Pos: in.mousePos, Wheel: in.wheelDelta}
	}

	if in.draggingLately && in.draggingNow {
		return MouseEvent{Kind: MouseDrag, Pos: in.mousePos, Delta: in.mouseDeltaCurrent}
	}

	if !in.draggingLately && in.draggingNow {
		return MouseEvent{
			Kind:  MouseStartDrag,
			Pos:   in.mouseDownPos,
			Delta: in.mouseDeltaTillMouseDown,
		}
	}

	if in.draggingLately && !in.draggingNow {
		return MouseEvent{
			Kind: MouseEndDrag,
			Pos:  in.mouseDownPos.Add(in.mouseDeltaTillMouseDown),
		}
	}

	if !in.mouseDown && in.mouseDownLately &&
		in.mouseDeltaTillMouseDown.LenSq() <= dragThreshold {
		return MouseEvent{Kind: MouseClick, Pos: in.mouseDownPos}
	}

	return MouseEvent{Kind: MouseNone}
}
