package loom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Background is the clear style, "#000" if empty.
	Background string
	// Debug enables the diagnostic overlay, Inspect callbacks, and an FPS
	// readout.
	Debug bool
	// ShowFPS displays the FPS/TPS counter without the rest of debug mode.
	ShowFPS bool
}

// keyBinding pairs a host key with the editor key it drives.
type keyBinding struct {
	host ebiten.Key
	key  Keys
}

// keyBindings maps host keys onto editor keys. A slice, not a map, so keys
// pressed on the same frame are always dispatched in the same order.
var keyBindings = []keyBinding{
	{ebiten.KeyX, KeyDelete},
	{ebiten.KeySpace, KeyMenu},
	{ebiten.KeyArrowLeft, KeyArrowLeft},
	{ebiten.KeyArrowRight, KeyArrowRight},
	{ebiten.KeyArrowUp, KeyArrowUp},
	{ebiten.KeyArrowDown, KeyArrowDown},
	{ebiten.KeyShift, KeyShift},
	{ebiten.KeyControl, KeyCtrl},
	{ebiten.KeyAlt, KeyAlt},
}

type game struct {
	editor     *Editor
	paint      *Paint
	background string
	showFPS    bool
}

func (g *game) Update() error {
	e := g.editor

	if e.script != nil {
		e.script.step(e)
	}

	// Injected events replace real input for the frame, so scripted runs
	// are not perturbed by the live cursor.
	if !e.processInjected() {
		g.pollInput()
	}

	e.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) pollInput() {
	e := g.editor

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.host) {
			e.Handle(e.Input.KeyDown(b.key))
		}
		if inpututil.IsKeyJustReleased(b.host) {
			e.Handle(e.Input.KeyUp(b.key))
		}
	}

	x, y := ebiten.CursorPosition()
	pos := Pt(float64(x), float64(y))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		e.Handle(e.Input.MouseDown(pos))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		e.Handle(e.Input.MouseUp(pos))
	case pos != e.Input.MousePos():
		e.Handle(e.Input.MouseMove(pos))
	}

	// Wheel up is positive in ebiten; the editor expects the browser-style
	// sign where scrolling down is positive.
	if _, wy := ebiten.Wheel(); wy != 0 {
		e.Handle(e.Input.Wheel(-wy))
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.paint.Clear(g.background)
	g.editor.Draw(g.paint)
	screen.WritePixels(g.paint.Image().Pix)

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.paint.Size()
	return w, h
}

// Run creates a window and drives the editor's frame loop until the window
// closes. For full control, implement [ebiten.Game] yourself and call
// [Editor.Handle], [Editor.Update], and [Editor.Draw] directly.
func Run(editor *Editor, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.Background == "" {
		cfg.Background = "#000"
	}
	if cfg.Debug {
		SetDebug(true)
	}

	editor.Viewport = Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	return ebiten.RunGame(&game{
		editor:     editor,
		paint:      NewPaint(cfg.Width, cfg.Height),
		background: cfg.Background,
		showFPS:    cfg.Debug || cfg.ShowFPS,
	})
}
