package loom

import "log"

// NodeID indexes a node within its Tree. IDs are stable for the life of the
// tree; nodes are never removed from the backing slice.
type NodeID int

// SocketKind tells input sockets (top edge, at most one connection) from
// output sockets (bottom edge, unlimited fan-out).
type SocketKind uint8

const (
	// SocketInput marks sockets that receive a value. They sit on the top
	// edge of a node.
	SocketInput SocketKind = iota
	// SocketOutput marks sockets that produce a value. They sit on the
	// bottom edge.
	SocketOutput
)

// String implements fmt.Stringer.
func (k SocketKind) String() string {
	if k == SocketInput {
		return "input"
	}
	return "output"
}

// SocketID addresses one socket of one node, of either kind.
type SocketID struct {
	Node  NodeID
	Index int
	Kind  SocketKind
}

// InputSocketID addresses an input socket. The kind is carried by the type.
type InputSocketID struct {
	Node  NodeID
	Index int
}

// OutputSocketID addresses an output socket.
type OutputSocketID struct {
	Node  NodeID
	Index int
}

// AsInput narrows the id. Panics if the socket is not an input.
func (s SocketID) AsInput() InputSocketID {
	if s.Kind != SocketInput {
		panic("loom: socket is not an input")
	}
	return InputSocketID{Node: s.Node, Index: s.Index}
}

// AsOutput narrows the id. Panics if the socket is not an output.
func (s SocketID) AsOutput() OutputSocketID {
	if s.Kind != SocketOutput {
		panic("loom: socket is not an output")
	}
	return OutputSocketID{Node: s.Node, Index: s.Index}
}

// Generic widens the id back to a kind-tagged SocketID.
func (s InputSocketID) Generic() SocketID {
	return SocketID{Node: s.Node, Index: s.Index, Kind: SocketInput}
}

// Generic widens the id back to a kind-tagged SocketID.
func (s OutputSocketID) Generic() SocketID {
	return SocketID{Node: s.Node, Index: s.Index, Kind: SocketOutput}
}

// Connection joins one output socket to one input socket. An input holds at
// most one connection; an output may feed any number of inputs.
type Connection struct {
	Input  InputSocketID
	Output OutputSocketID
}

const (
	socketRadius = 4.0
	// Collision circles are half again as big as the drawn socket so small
	// misses still grab.
	socketCollisionRadius = socketRadius * 1.5
	connectionWidth       = 4.0
)

// Node geometry. All sockets live in node-local coordinates relative to the
// node center; the node's position places the whole arrangement on the
// canvas.
const (
	nodeWidth        = 200.0
	nodeHeight       = 100.0
	nodeCornerRadius = 10.0

	nodeHorPadding = nodeWidth / 10
	nodeVerPadding = nodeHeight / 6

	nodeLeftSide   = -nodeWidth / 2
	nodeRightSide  = nodeWidth / 2
	nodeTopSide    = -nodeHeight / 2
	nodeBottomSide = nodeHeight / 2

	nodeLeftDotX  = nodeLeftSide + nodeHorPadding
	nodeRightDotX = nodeRightSide - nodeHorPadding

	nodeInputDotY  = nodeTopSide + nodeVerPadding
	nodeOutputDotY = nodeBottomSide - nodeVerPadding
)

type socket struct {
	enabled  bool
	position Point
	kind     SocketKind
}

type nodeData struct {
	function FunctionDefinition
	sockets  []socket
	position Point
}

func newNodeData(function FunctionDefinition) *nodeData {
	inputCount := len(function.Inputs)
	outputCount := len(function.Outputs)

	inputSpacing := (nodeRightDotX - nodeLeftDotX) / float64(inputCount+1)
	outputSpacing := (nodeRightDotX - nodeLeftDotX) / float64(outputCount+1)

	sockets := make([]socket, 0, inputCount+outputCount)
	for i := 0; i < inputCount; i++ {
		sockets = append(sockets, socket{
			position: Pt(inputSpacing*float64(i+1)+nodeLeftDotX, nodeInputDotY),
			kind:     SocketInput,
		})
	}
	for i := 0; i < outputCount; i++ {
		sockets = append(sockets, socket{
			position: Pt(outputSpacing*float64(i+1)+nodeLeftDotX, nodeOutputDotY),
			kind:     SocketOutput,
		})
	}

	return &nodeData{function: function, sockets: sockets}
}

// socketIndex maps a kind-relative socket index onto the flat socket slice,
// where inputs come first.
func (n *nodeData) socketIndex(index int, kind SocketKind) int {
	if kind == SocketOutput {
		return len(n.function.Inputs) + index
	}
	return index
}

func (n *nodeData) socketPosition(flat int) Point {
	return n.sockets[flat].position.Add(n.position.ToVector())
}

func (n *nodeData) boundRect() Rect {
	return RectFromCenterSize(n.position, Size{Width: nodeWidth, Height: nodeHeight})
}

// Tree is the node graph plus its view: every node, every connection, and
// the pan/zoom placing the canvas on screen. The view transform is stored
// as the pair {pan, zoom} rather than a full matrix; the graph view is
// always a uniform scale followed by a translation, and the pair cannot
// drift into shear the way a composed matrix can.
type Tree struct {
	nodes       []*nodeData
	connections []Connection
	pan         Vec2
	zoom        float64
}

// NewTree returns an empty tree at zoom 1 with no pan.
func NewTree() *Tree {
	return &Tree{zoom: 1}
}

// X returns the horizontal pan in screen pixels.
func (t *Tree) X() float64 { return t.pan.X }

// Y returns the vertical pan in screen pixels.
func (t *Tree) Y() float64 { return t.pan.Y }

// Zoom returns the current zoom factor.
func (t *Tree) Zoom() float64 { return t.zoom }

// Pan returns the current pan vector.
func (t *Tree) Pan() Vec2 { return t.pan }

// SetPan replaces the pan outright. Used by animated scrolling; interactive
// panning goes through Drag.
func (t *Tree) SetPan(pan Vec2) { t.pan = pan }

// ViewMatrix returns the canvas-to-screen transform: scale by zoom, then
// translate by pan.
func (t *Tree) ViewMatrix() Matrix {
	return Matrix{A: t.zoom, D: t.zoom, X: t.pan.X, Y: t.pan.Y}
}

// ScreenToCanvas converts a screen point into graph canvas coordinates.
func (t *Tree) ScreenToCanvas(p Point) Point {
	return Pt((p.X-t.pan.X)/t.zoom, (p.Y-t.pan.Y)/t.zoom)
}

// CanvasToScreen converts a graph canvas point into screen coordinates.
func (t *Tree) CanvasToScreen(p Point) Point {
	return Pt(p.X*t.zoom+t.pan.X, p.Y*t.zoom+t.pan.Y)
}

// Drag pans the view by a screen-space delta.
func (t *Tree) Drag(delta Vec2) {
	t.pan = t.pan.Add(delta)
}

// Zoom bounds. Candidate zooms outside the range are rejected outright, not
// clamped, so the pivot arithmetic never partially applies.
const (
	zoomMin = 0.3
	zoomMax = 2.0
)

// ZoomBy scales the view by 1+delta about the screen-space pivot, keeping
// the canvas point under the pivot fixed. Out-of-range results leave the
// view untouched.
func (t *Tree) ZoomBy(delta float64, pivot Point) {
	s := 1 + delta
	newZoom := t.zoom * s
	if newZoom < zoomMin || newZoom > zoomMax {
		return
	}
	t.zoom = newZoom
	t.pan = t.pan.Sub(pivot.ToVector()).Scaled(s).Add(pivot.ToVector())
}

// CreateNode adds a node for the given function at a screen position and
// returns its id.
func (t *Tree) CreateNode(function FunctionDefinition, position Point) NodeID {
	node := newNodeData(function)
	node.position = t.ScreenToCanvas(position)
	t.nodes = append(t.nodes, node)
	return NodeID(len(t.nodes) - 1)
}

// NodeCount returns the number of nodes ever created.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// NodePosition returns the node's center in canvas coordinates.
func (t *Tree) NodePosition(node NodeID) Point {
	return t.nodes[node].position
}

// NodeFunction returns the function definition backing the node.
func (t *Tree) NodeFunction(node NodeID) FunctionDefinition {
	return t.nodes[node].function
}

// Connections returns the live connection list. Callers must not mutate it.
func (t *Tree) Connections() []Connection {
	return t.connections
}

// DragNode moves a node by a screen-space delta. The delta passes through
// the linear part of the view transform, so the node tracks the cursor
// proportionally to zoom.
func (t *Tree) DragNode(node NodeID, delta Vec2) {
	t.nodes[node].position = t.nodes[node].position.Add(delta.Scaled(t.zoom))
}

// SocketPosition returns the socket's position in canvas coordinates.
func (t *Tree) SocketPosition(id SocketID) Point {
	node := t.nodes[id.Node]
	return node.socketPosition(node.socketIndex(id.Index, id.Kind))
}

func (t *Tree) setSocketEnabled(id SocketID, enabled bool) {
	node := t.nodes[id.Node]
	node.sockets[node.socketIndex(id.Index, id.Kind)].enabled = enabled
}

// SocketEnabled reports whether the socket has at least one connection.
func (t *Tree) SocketEnabled(id SocketID) bool {
	node := t.nodes[id.Node]
	return node.sockets[node.socketIndex(id.Index, id.Kind)].enabled
}

// ConnectionLine returns the connection's segment in canvas coordinates,
// derived from the sockets' current positions. There is no cached geometry
// to go stale when a node moves.
func (t *Tree) ConnectionLine(c Connection) Line {
	return Line{
		Start: t.SocketPosition(c.Input.Generic()),
		End:   t.SocketPosition(c.Output.Generic()),
	}
}

// CreateConnection joins two sockets. The pair may arrive in either order;
// requests joining two sockets of the same node, or two sockets of the same
// kind, are ignored. Connecting an already-connected input first severs its
// existing connection, so an input never holds more than one.
func (t *Tree) CreateConnection(from, to SocketID) {
	if from.Node == to.Node || from.Kind == to.Kind {
		return
	}

	var input InputSocketID
	var output OutputSocketID
	if from.Kind == SocketInput {
		input, output = from.AsInput(), to.AsOutput()
	} else {
		input, output = to.AsInput(), from.AsOutput()
	}

	for _, c := range t.connections {
		if c.Input == input && c.Output == output {
			// Connection already exists.
			return
		}
	}

	t.removeConnection(input)

	t.setSocketEnabled(input.Generic(), true)
	t.setSocketEnabled(output.Generic(), true)
	t.connections = append(t.connections, Connection{Input: input, Output: output})
}

// DeleteConnection severs the connection feeding the given input, if any.
func (t *Tree) DeleteConnection(input InputSocketID) {
	t.removeConnection(input)
}

// removeConnection drops the input's connection and disables the sockets
// that lost their last connection. The output stays enabled while other
// connections still fan out from it.
func (t *Tree) removeConnection(input InputSocketID) (Connection, bool) {
	for i, c := range t.connections {
		if c.Input != input {
			continue
		}
		last := len(t.connections) - 1
		t.connections[i] = t.connections[last]
		t.connections = t.connections[:last]

		t.setSocketEnabled(c.Input.Generic(), false)
		outputStillUsed := false
		for _, other := range t.connections {
			if other.Output == c.Output {
				outputStillUsed = true
				break
			}
		}
		if !outputStillUsed {
			t.setSocketEnabled(c.Output.Generic(), false)
		}
		return c, true
	}
	return Connection{}, false
}

// CastKind discriminates CastResult variants.
type CastKind uint8

const (
	// CastNone means the cast hit empty canvas.
	CastNone CastKind = iota
	// CastNode means the cast hit a node body.
	CastNode
	// CastSocket means the cast hit a socket's collision circle.
	CastSocket
	// CastConnection means the cast hit a connection line.
	CastConnection
)

// CastResult is the outcome of a point or line cast. Kind selects which of
// the remaining fields are meaningful.
type CastResult struct {
	Kind CastKind
	// Node is set for CastNode.
	Node NodeID
	// Socket and SocketPos are set for CastSocket. SocketPos is the
	// socket's position converted back to screen coordinates, ready to
	// anchor a drag preview.
	Socket    SocketID
	SocketPos Point
	// Connection is set for CastConnection.
	Connection InputSocketID
}

// PointCast resolves what lies under a screen point. Nodes are tested
// topmost first (most recently created wins); a hit inside a node's bounds
// checks that node's sockets before falling back to the node body. Only
// when no node contains the point are connection lines tested.
func (t *Tree) PointCast(point Point) CastResult {
	p := t.ScreenToCanvas(point)

	for nodeID := len(t.nodes) - 1; nodeID >= 0; nodeID-- {
		node := t.nodes[nodeID]
		if !node.boundRect().ContainsPoint(p) {
			continue
		}
		for flat := range node.sockets {
			worldPos := node.socketPosition(flat)
			if socketCollisionRadius >= p.Sub(worldPos).Len() {
				kind := node.sockets[flat].kind
				index := flat
				if kind == SocketOutput {
					index = flat - len(node.function.Inputs)
				}
				return CastResult{
					Kind:      CastSocket,
					Socket:    SocketID{Node: NodeID(nodeID), Index: index, Kind: kind},
					SocketPos: t.CanvasToScreen(worldPos),
				}
			}
		}
		return CastResult{Kind: CastNode, Node: NodeID(nodeID)}
	}

	for _, c := range t.connections {
		line := t.ConnectionLine(c)
		if line.BoundRect().ContainsPoint(p) && line.areCollinear(p, connectionWidth*1.5) {
			return CastResult{Kind: CastConnection, Connection: c.Input}
		}
	}

	return CastResult{Kind: CastNone}
}

// LineCast returns a result for every connection the screen-space segment
// crosses. Used by the cut gesture to sever several connections in one
// stroke.
func (t *Tree) LineCast(line Line) []CastResult {
	canvasLine := Line{
		Start: t.ScreenToCanvas(line.Start),
		End:   t.ScreenToCanvas(line.End),
	}
	var results []CastResult
	for _, c := range t.connections {
		if t.ConnectionLine(c).Intersects(canvasLine) {
			results = append(results, CastResult{Kind: CastConnection, Connection: c.Input})
		}
	}
	return results
}

// --- Widget composition ---

// Theme colors.
const (
	socketFillColor   = "#DAD2BC"
	socketShadowColor = "#1B264F"

	nodeFillColor   = "#25232388"
	nodeStrokeColor = "#F5F1ED"

	connectionStrokeColor = "#A99985"
)

func (s socket) build() Widget {
	var dot Widget
	if s.enabled {
		dot = Stack{
			Stroked(Circle(s.position, socketRadius), socketFillColor),
			Filled(Circle(s.position, socketRadius*0.4), socketFillColor),
		}
	} else {
		dot = Stroked(Circle(s.position, socketRadius), socketFillColor)
	}
	w := LineWidth(
		ShadowOffset(
			ShadowBlur(
				ShadowColor(dot, socketShadowColor),
				4),
			0, 0),
		1)
	return Inspect(w, func() { log.Printf("loom: drawing socket") })
}

func (n *nodeData) build() Widget {
	body := RoundedRect{
		Rect: Rect{
			Left:   nodeLeftSide,
			Top:    nodeTopSide,
			Right:  nodeRightSide,
			Bottom: nodeBottomSide,
		},
		RadiusX: nodeCornerRadius,
		RadiusY: nodeCornerRadius,
	}

	styled := ShadowOffset(
		ShadowBlur(
			LineWidth(
				Filled(Stroked(body, nodeStrokeColor), nodeFillColor),
				2.5),
			10),
		0, 5)
	rect := Inspect(styled, func() { log.Printf("loom: drawing node body") })

	parts := make(Stack, 0, 1+len(n.sockets))
	parts = append(parts, rect)
	for _, s := range n.sockets {
		parts = append(parts, s.build())
	}

	return Inspect(
		Translated(parts, n.position.ToVector()),
		func() { log.Printf("loom: drawing node") },
	)
}

func (t *Tree) buildConnection(c Connection) Widget {
	w := ShadowBlur(
		LineWidth(
			Stroked(t.ConnectionLine(c), connectionStrokeColor),
			connectionWidth),
		3)
	return Inspect(w, func() { log.Printf("loom: drawing connection") })
}

// Build implements Component. Connections paint under nodes; the whole graph
// is placed by the view transform.
func (t *Tree) Build() Widget {
	connections := make(Stack, 0, len(t.connections))
	for _, c := range t.connections {
		connections = append(connections, t.buildConnection(c))
	}

	nodes := make(Stack, 0, len(t.nodes))
	for _, n := range t.nodes {
		nodes = append(nodes, n.build())
	}

	return Transformed(Stack{connections, nodes}, t.ViewMatrix())
}
