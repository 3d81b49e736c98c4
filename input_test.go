package loom

import "testing"

func TestClickResolution(t *testing.T) {
	in := NewInput()
	in.MouseDown(Pt(100, 100))
	ev := in.MouseUp(Pt(100, 100))
	if ev.Mouse.Kind != MouseClick {
		t.Fatalf("kind = %d, want click", ev.Mouse.Kind)
	}
	if ev.Mouse.Pos != Pt(100, 100) {
		t.Errorf("click pos = %v", ev.Mouse.Pos)
	}
}

func TestSmallMovementStillClicks(t *testing.T) {
	in := NewInput()
	in.MouseDown(Pt(100, 100))
	// Accumulated squared distance stays at or below the threshold.
	in.MouseMove(Pt(110, 100))
	in.MouseMove(Pt(110, 110))
	ev := in.MouseUp(Pt(110, 110))
	if ev.Mouse.Kind != MouseClick {
		t.Errorf("kind = %d, want click", ev.Mouse.Kind)
	}
}

func TestDragLifecycle(t *testing.T) {
	in := NewInput()
	in.MouseDown(Pt(0, 0))

	// Crossing the threshold resolves StartDrag carrying the accumulated
	// delta.
	ev := in.MouseMove(Pt(30, 0))
	if ev.Mouse.Kind != MouseStartDrag {
		t.Fatalf("kind = %d, want start drag", ev.Mouse.Kind)
	}
	if ev.Mouse.Pos != Pt(0, 0) {
		t.Errorf("start drag pos = %v, want press pos", ev.Mouse.Pos)
	}
	if ev.Mouse.Delta != Vec(30, 0) {
		t.Errorf("start drag delta = %v, want (30,0)", ev.Mouse.Delta)
	}

	// Further moves resolve Drag with the per-move delta.
	ev = in.MouseMove(Pt(40, 5))
	if ev.Mouse.Kind != MouseDrag {
		t.Fatalf("kind = %d, want drag", ev.Mouse.Kind)
	}
	if ev.Mouse.Delta != Vec(10, 5) {
		t.Errorf("drag delta = %v, want (10,5)", ev.Mouse.Delta)
	}

	// Release resolves EndDrag at press + accumulated movement.
	ev = in.MouseUp(Pt(40, 5))
	if ev.Mouse.Kind != MouseEndDrag {
		t.Fatalf("kind = %d, want end drag", ev.Mouse.Kind)
	}
	if ev.Mouse.Pos != Pt(40, 5) {
		t.Errorf("end drag pos = %v, want (40,5)", ev.Mouse.Pos)
	}
}

func TestDragThresholdBoundary(t *testing.T) {
	in := NewInput()
	in.MouseDown(Pt(0, 0))
	// LenSq exactly 500 is not a drag yet.
	ev := in.MouseMove(Pt(10, 20))
	if ev.Mouse.Kind != MouseNone {
		t.Errorf("kind at threshold = %d, want none", ev.Mouse.Kind)
	}
	// One more pixel pushes it over.
	ev = in.MouseMove(Pt(11, 20))
	if ev.Mouse.Kind != MouseStartDrag {
		t.Errorf("kind past threshold = %d, want start drag", ev.Mouse.Kind)
	}
}

func TestKeyEventMidDragCarriesNoDelta(t *testing.T) {
	in := NewInput()
	in.MouseDown(Pt(0, 0))
	in.MouseMove(Pt(30, 0))
	in.MouseMove(Pt(40, 0))

	// The drag is still in progress, but the cursor has not moved; the
	// previous move's delta must not be delivered again.
	ev := in.KeyDown(KeyShift)
	if ev.Mouse.Kind != MouseDrag {
		t.Fatalf("kind = %d, want drag", ev.Mouse.Kind)
	}
	if ev.Mouse.Delta != (Vec2{}) {
		t.Errorf("delta on key event = %v, want zero", ev.Mouse.Delta)
	}

	ev = in.Wheel(1)
	if ev.Mouse.Delta != (Vec2{}) {
		t.Errorf("delta on wheel event = %v, want zero", ev.Mouse.Delta)
	}
}

func TestMoveWithoutPress(t *testing.T) {
	in := NewInput()
	ev := in.MouseMove(Pt(500, 500))
	if ev.Mouse.Kind != MouseNone {
		t.Errorf("kind = %d, want none", ev.Mouse.Kind)
	}
	if in.MousePos() != Pt(500, 500) {
		t.Errorf("mouse pos = %v", in.MousePos())
	}
}

func TestWheelResolution(t *testing.T) {
	in := NewInput()
	in.MouseMove(Pt(320, 240))
	ev := in.Wheel(120)
	if ev.Mouse.Kind != MouseWheel {
		t.Fatalf("kind = %d, want wheel", ev.Mouse.Kind)
	}
	if ev.Mouse.Wheel != 120 {
		t.Errorf("wheel delta = %f", ev.Mouse.Wheel)
	}
	if ev.Mouse.Pos != Pt(320, 240) {
		t.Errorf("wheel pos = %v, want cursor pos", ev.Mouse.Pos)
	}
	// The wheel delta does not leak into the next event.
	ev = in.MouseMove(Pt(321, 240))
	if ev.Mouse.Kind == MouseWheel {
		t.Error("wheel delta leaked into following event")
	}
}

func TestKeyTransitions(t *testing.T) {
	in := NewInput()

	ev := in.KeyDown(KeyDelete)
	if !ev.Pressed(KeyDelete) {
		t.Error("Pressed = false on key down")
	}
	if ev.Held(KeyDelete) {
		t.Error("Held = true on the key-down event itself")
	}

	ev = in.KeyDown(KeyShift)
	if !ev.Held(KeyDelete) {
		t.Error("Held = false after key stayed down")
	}
	if !ev.Down(KeyDelete) || !ev.Down(KeyShift) {
		t.Error("Down lost track of keys")
	}

	ev = in.KeyUp(KeyDelete)
	if !ev.Released(KeyDelete) {
		t.Error("Released = false on key up")
	}
	if ev.Down(KeyDelete) {
		t.Error("Down = true after release")
	}
	if ev.Keys.IsEmpty() {
		t.Error("shift still held, keys should not be empty")
	}
}

func TestKeysBitsetContains(t *testing.T) {
	k := KeyShift | KeyCtrl
	if !k.Contains(KeyShift) || !k.Contains(KeyCtrl) {
		t.Error("Contains missed a set key")
	}
	if !k.Contains(KeyShift | KeyCtrl) {
		t.Error("Contains missed a set mask")
	}
	if k.Contains(KeyShift | KeyAlt) {
		t.Error("Contains matched a partially set mask")
	}
	if k.IsEmpty() {
		t.Error("IsEmpty on non-empty set")
	}
	if !Keys(0).IsEmpty() {
		t.Error("IsEmpty false on zero set")
	}
}
