package loom

// syntheticEvent is a single injected input event. Screen coordinates are
// used, matching what real mouse input delivers; injected events flow
// through the same dispatcher as real ones.
type syntheticEvent struct {
	kind  syntheticEventKind
	pos   Point
	key   Keys
	wheel float64
}

type syntheticEventKind uint8

const (
	synthPress syntheticEventKind = iota
	synthMove
	synthRelease
	synthKeyDown
	synthKeyUp
	synthWheel
)

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame.
func (e *Editor) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthPress, pos: Pt(x, y)})
}

// InjectMove queues a pointer move to the given screen coordinates. Use
// between InjectPress and InjectRelease to simulate a drag.
func (e *Editor) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthMove, pos: Pt(x, y)})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (e *Editor) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthRelease, pos: Pt(x, y)})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectMove(toX, toY)
	e.InjectRelease(toX, toY)
}

// InjectKeyDown queues a key press.
func (e *Editor) InjectKeyDown(key Keys) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthKeyDown, key: key})
}

// InjectKeyUp queues a key release.
func (e *Editor) InjectKeyUp(key Keys) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthKeyUp, key: key})
}

// InjectWheel queues a scroll step. The pivot is the cursor's position at
// the time the event is consumed; queue an InjectMove first to place it.
func (e *Editor) InjectWheel(delta float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthWheel, wheel: delta})
}

// processInjected pops one queued event and feeds it through the input
// dispatcher like real input. Returns true if an event was consumed (real
// input should be skipped for the frame).
func (e *Editor) processInjected() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case synthPress:
		e.Handle(e.Input.MouseDown(evt.pos))
	case synthMove:
		e.Handle(e.Input.MouseMove(evt.pos))
	case synthRelease:
		e.Handle(e.Input.MouseUp(evt.pos))
	case synthKeyDown:
		e.Handle(e.Input.KeyDown(evt.key))
	case synthKeyUp:
		e.Handle(e.Input.KeyUp(evt.key))
	case synthWheel:
		e.Handle(e.Input.Wheel(evt.wheel))
	}
	return true
}
