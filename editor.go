package loom

import (
	"fmt"
	"log"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Settings tunes editor behavior.
type Settings struct {
	// ZoomSpeed multiplies the per-wheel-step zoom delta. 1.0 gives 5% per
	// step.
	ZoomSpeed float64
}

// DefaultSettings returns the stock settings.
func DefaultSettings() Settings {
	return Settings{ZoomSpeed: 1}
}

// wheelZoomStep is the base zoom delta per wheel step. Negative because
// scrolling down zooms out.
const wheelZoomStep = -0.05

// arrowPanSpeed is the per-event pan distance for arrow keys, in screen
// pixels.
const arrowPanSpeed = 5.0

// actionKind is what the active mouse drag is doing.
type actionKind uint8

const (
	actionNone actionKind = iota
	actionDragScreen
	actionDragNode
	actionDragSocket
)

// phantomConnection is the dashed-out preview line while dragging from a
// socket, in screen coordinates.
type phantomConnection struct {
	From, To Point
}

// cutLine is the in-progress connection-cutting stroke, in screen
// coordinates.
type cutLine struct {
	Start, End Point
}

// paletteWindow is the function list popped up by the menu key. Position is
// its top-left corner in screen coordinates.
type paletteWindow struct {
	Position Point
	// Selected is the hovered row, or -1.
	Selected int
}

const (
	paletteRowWidth  = 200.0
	paletteRowHeight = 50.0
)

func (w *paletteWindow) boundRect() Rect {
	height := paletteRowHeight * float64(len(Functions))
	return NewRect(
		w.Position.X,
		w.Position.Y,
		w.Position.X+paletteRowWidth,
		w.Position.Y+height,
	)
}

// hover updates the selected row from the cursor position.
func (w *paletteWindow) hover(pos Point) {
	w.Selected = -1
	if !w.boundRect().ContainsPoint(pos) {
		return
	}
	row := int((pos.Y - w.Position.Y) / paletteRowHeight)
	if row >= 0 && row < len(Functions) {
		w.Selected = row
	}
}

// scrollAnim holds active scroll-to tweens for pan X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Editor owns the whole interactive state: the graph, the input dispatcher,
// and the transient gesture state (active drag, phantom connection, cut
// line, palette). One Editor per window; there is no shared global state,
// so tests can run any number of editors side by side.
type Editor struct {
	Tree     *Tree
	Input    *Input
	Settings Settings

	// Viewport is the drawable area in screen pixels, used to center
	// animated scrolling. The host updates it on resize.
	Viewport Size

	action     actionKind
	dragNode   NodeID
	dragSocket SocketID

	phantom *phantomConnection
	cut     *cutLine

	menuOpen bool
	palette  paletteWindow

	scroll *scrollAnim

	injectQueue []syntheticEvent
	script      *ScriptRunner
}

// NewEditor returns an editor around an empty tree.
func NewEditor() *Editor {
	return &Editor{
		Tree:     NewTree(),
		Input:    NewInput(),
		Settings: DefaultSettings(),
		palette:  paletteWindow{Selected: -1},
	}
}

// Handle routes one resolved input event into the graph. It returns true if
// the event changed anything worth redrawing.
func (e *Editor) Handle(event Event) bool {
	switch event.Mouse.Kind {
	case MouseWheel:
		if e.menuOpen || event.Down(KeyDelete) {
			return false
		}
		delta := wheelZoomStep * e.Settings.ZoomSpeed
		if event.Mouse.Wheel <= 0 {
			delta = -delta
		}
		e.Tree.ZoomBy(delta, event.Mouse.Pos)
		return true

	case MouseStartDrag:
		e.beginDrag(event)
		return true

	case MouseDrag:
		e.continueDrag(event)
		return true

	case MouseEndDrag:
		e.endDrag(event)
		return true

	case MouseClick:
		if e.menuOpen {
			e.paletteClick()
			return true
		}
		if event.Keys.IsEmpty() {
			log.Printf("loom: click at %v", event.Mouse.Pos)
		}
		return false
	}

	return e.handleKeys(event)
}

// beginDrag resolves what the press landed on and arms the matching drag
// action. The accumulated pre-threshold movement is applied immediately so
// nothing is lost to the click/drag disambiguation window.
func (e *Editor) beginDrag(event Event) {
	pos, delta := event.Mouse.Pos, event.Mouse.Delta

	if event.Down(KeyDelete) {
		e.cut = &cutLine{Start: pos, End: pos.Add(delta)}
		return
	}
	if e.menuOpen {
		// The palette commits on the press, so a press that drifts past the
		// drag threshold still creates the hovered entry.
		e.palette.hover(pos)
		e.paletteClick()
		return
	}

	switch res := e.Tree.PointCast(pos); res.Kind {
	case CastNode:
		e.action = actionDragNode
		e.dragNode = res.Node
		e.Tree.DragNode(res.Node, delta)
	case CastSocket:
		e.action = actionDragSocket
		e.dragSocket = res.Socket
		e.phantom = &phantomConnection{From: res.SocketPos, To: pos.Add(delta)}
	default:
		// Connections and empty canvas both pan the view.
		e.action = actionDragScreen
		e.Tree.Drag(delta)
	}
}

func (e *Editor) continueDrag(event Event) {
	pos, delta := event.Mouse.Pos, event.Mouse.Delta

	if e.cut != nil {
		e.cut.End = pos
		return
	}
	if e.menuOpen {
		e.palette.hover(pos)
		return
	}

	switch e.action {
	case actionDragScreen:
		e.Tree.Drag(delta)
	case actionDragNode:
		e.Tree.DragNode(e.dragNode, delta)
	case actionDragSocket:
		e.phantom.To = pos
	}
}

// endDrag commits or discards the gesture: a cut stroke severs every
// connection it crossed; a socket drag commits a connection only when
// released over another socket.
func (e *Editor) endDrag(event Event) {
	pos := event.Mouse.Pos

	if e.cut != nil {
		for _, res := range e.Tree.LineCast(Line{Start: e.cut.Start, End: e.cut.End}) {
			if res.Kind == CastConnection {
				e.Tree.DeleteConnection(res.Connection)
			}
		}
		e.cut = nil
	} else if e.action == actionDragSocket {
		if res := e.Tree.PointCast(pos); res.Kind == CastSocket {
			e.Tree.CreateConnection(e.dragSocket, res.Socket)
		}
	}

	e.action = actionNone
	e.phantom = nil
}

// handleKeys covers events with no mouse gesture: palette toggling, palette
// hover, and arrow-key panning.
func (e *Editor) handleKeys(event Event) bool {
	if event.Pressed(KeyMenu) {
		e.menuOpen = true
		e.palette.Position = e.Input.MousePos()
		e.palette.Selected = -1
		return true
	}
	if event.Released(KeyMenu) {
		e.menuOpen = false
		e.palette.Selected = -1
		return true
	}
	if e.menuOpen {
		e.palette.hover(e.Input.MousePos())
		return true
	}

	var pan Vec2
	if event.Down(KeyArrowDown) {
		pan.Y -= arrowPanSpeed
	}
	if event.Down(KeyArrowUp) {
		pan.Y += arrowPanSpeed
	}
	if event.Down(KeyArrowRight) {
		pan.X -= arrowPanSpeed
	}
	if event.Down(KeyArrowLeft) {
		pan.X += arrowPanSpeed
	}
	if pan == (Vec2{}) {
		return false
	}
	e.Tree.Drag(pan)
	return true
}

// paletteClick creates a node for the hovered palette row at the palette's
// position.
func (e *Editor) paletteClick() {
	if e.palette.Selected < 0 {
		return
	}
	e.Tree.CreateNode(Functions[e.palette.Selected], e.palette.Position)
}

// ScrollTo animates the pan to the given value over duration seconds.
func (e *Editor) ScrollTo(pan Vec2, duration float32, easeFn ease.TweenFunc) {
	e.scroll = &scrollAnim{
		tweenX: gween.New(float32(e.Tree.Pan().X), float32(pan.X), duration, easeFn),
		tweenY: gween.New(float32(e.Tree.Pan().Y), float32(pan.Y), duration, easeFn),
	}
}

// FocusNode animates the view so the node ends up centered in the viewport.
// The zoom is left alone.
func (e *Editor) FocusNode(node NodeID, duration float32, easeFn ease.TweenFunc) {
	center := Vec(e.Viewport.Width/2, e.Viewport.Height/2)
	target := center.Sub(e.Tree.NodePosition(node).ToVector().Scaled(e.Tree.Zoom()))
	e.ScrollTo(target, duration, easeFn)
}

// Update advances scroll animation by dt seconds.
func (e *Editor) Update(dt float32) {
	if e.scroll == nil {
		return
	}
	pan := e.Tree.Pan()
	if !e.scroll.doneX {
		val, done := e.scroll.tweenX.Update(dt)
		pan.X = float64(val)
		e.scroll.doneX = done
	}
	if !e.scroll.doneY {
		val, done := e.scroll.tweenY.Update(dt)
		pan.Y = float64(val)
		e.scroll.doneY = done
	}
	e.Tree.SetPan(pan)
	if e.scroll.doneX && e.scroll.doneY {
		e.scroll = nil
	}
}

// Scrolling reports whether a scroll animation is in flight.
func (e *Editor) Scrolling() bool {
	return e.scroll != nil
}

// --- Overlay widgets ---

// Cut line styling.
const (
	cutLineStrokeColor = "#FFFFFF70"
	cutLineFillColor   = "#FFFFFF90"
)

func (p phantomConnection) build() Widget {
	return ShadowBlur(
		LineWidth(
			Stroked(Ln(p.From, p.To), connectionStrokeColor),
			connectionWidth),
		3)
}

func (l cutLine) build() Widget {
	stroke := LineCapStyle(
		LineWidth(
			Stroked(Ln(l.Start, l.End), cutLineStrokeColor),
			4),
		"round")

	return Stack{stroke, WidgetFunc(l.drawLabel)}
}

// drawLabel paints a "Delete" caption along the stroke, rotated to read
// left to right whichever way the stroke was drawn.
func (l cutLine) drawLabel(c Canvas) {
	mid := Pt(
		l.Start.X+(l.End.X-l.Start.X)/2,
		l.Start.Y+(l.End.Y-l.Start.Y)/2,
	)

	angle := math.Atan2(l.End.Y-l.Start.Y, l.End.X-l.Start.X)
	if angle <= -math.Pi/2 || angle >= math.Pi/2 {
		angle += math.Pi
	}

	const text = "Delete"
	const scale = 3.0
	textOffset := 5.0 * float64(len(text)) / 2

	c.SetFillStyle(cutLineFillColor)
	c.SetFont("7px sans-serif")

	c.Translate(mid.ToVector())
	c.Rotate(angle)
	c.Scale(scale)
	c.Translate(Vec2{X: -textOffset, Y: -3})
	c.FillText(text, Pt(0, 0))
	c.Translate(Vec2{X: textOffset, Y: 3})
	c.Scale(1 / scale)
	c.Rotate(-angle)
	c.Translate(mid.ToVector().Neg())
}

func (w *paletteWindow) build() Widget {
	return WidgetFunc(func(c Canvas) {
		bounds := w.boundRect()
		frame := RoundedRect{Rect: bounds}

		c.SetShadowBlur(0)
		c.SetShadowOffset(0, 0)
		c.SetLineWidth(2)
		c.BeginPath()
		frame.Outline(c)
		c.ClosePath()
		c.Stroke()
		c.SetFillStyle("#9999")
		c.Fill()

		const fontSize = paletteRowWidth / 10
		c.SetFont(fmt.Sprintf("%vpx sans-serif", fontSize))

		for i, f := range Functions {
			if i == w.Selected {
				c.SetFillStyle("#F00")
			} else {
				c.SetFillStyle("#111")
			}
			c.FillText(f.Name, Pt(
				w.Position.X+paletteRowWidth*0.1,
				w.Position.Y+paletteRowHeight*float64(i)+paletteRowHeight/2+fontSize/4,
			))
		}
	})
}

// debugOverlay prints the view state in the corner. Drawn only while debug
// mode is on.
func (e *Editor) debugOverlay() Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetFont("30px sans-serif")
		c.SetFillStyle("#FFF")
		c.SetShadowBlur(0)
		c.SetShadowOffset(0, 0)
		y := 50.0
		for _, line := range []string{
			fmt.Sprintf("Zoom: %1.3f", e.Tree.Zoom()),
			fmt.Sprintf("X: %4.3f", e.Tree.X()),
			fmt.Sprintf("Y: %4.3f", e.Tree.Y()),
		} {
			c.FillText(line, Pt(50, y))
			y += 40
		}
	})
}

// Build implements Component: the graph below, transient overlays above,
// debug readout on top.
func (e *Editor) Build() Widget {
	widgets := Stack{e.Tree.Build()}

	if e.phantom != nil {
		widgets = append(widgets, e.phantom.build())
	}
	if e.cut != nil {
		widgets = append(widgets, e.cut.build())
	}
	if e.menuOpen {
		widgets = append(widgets, e.palette.build())
	}
	if debugEnabled {
		widgets = append(widgets, e.debugOverlay())
	}
	return widgets
}

// Draw rebuilds the widget tree and draws it.
func (e *Editor) Draw(c Canvas) {
	e.Build().Draw(c)
}
