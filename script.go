package loom

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Key    string  `json:"key,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted input sequence against an editor, one
// step per frame, for automated interaction testing. Attach via
// Editor.SetScriptRunner.
//
// Supported actions:
//
//	click    press + release at (x, y)
//	drag     press at (fromX, fromY), release at (toX, toY), over frames
//	move     move cursor to (x, y)
//	keydown  press key ("delete", "menu", "left", "right", "up", "down",
//	         "shift", "ctrl", "alt")
//	keyup    release key
//	wheel    scroll by delta
//	wait     idle for frames frames
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for _, st := range script.Steps {
		if st.Action == "keydown" || st.Action == "keyup" {
			if _, ok := keyByName(st.Key); !ok {
				return nil, fmt.Errorf("parse input script: unknown key %q", st.Key)
			}
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a script runner to the editor. The runner
// advances one step per frame, waiting for pending injected events to
// drain first.
func (e *Editor) SetScriptRunner(runner *ScriptRunner) {
	e.script = runner
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

func keyByName(name string) (Keys, bool) {
	switch name {
	case "delete":
		return KeyDelete, true
	case "menu":
		return KeyMenu, true
	case "left":
		return KeyArrowLeft, true
	case "right":
		return KeyArrowRight, true
	case "up":
		return KeyArrowUp, true
	case "down":
		return KeyArrowDown, true
	case "shift":
		return KeyShift, true
	case "ctrl":
		return KeyCtrl, true
	case "alt":
		return KeyAlt, true
	}
	return 0, false
}

// step advances the runner by one frame. Called from the frame loop before
// input processing.
func (r *ScriptRunner) step(e *Editor) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		e.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "move":
		e.InjectMove(st.X, st.Y)
	case "keydown":
		if key, ok := keyByName(st.Key); ok {
			e.InjectKeyDown(key)
		}
	case "keyup":
		if key, ok := keyByName(st.Key); ok {
			e.InjectKeyUp(key)
		}
	case "wheel":
		e.InjectWheel(st.Delta)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
