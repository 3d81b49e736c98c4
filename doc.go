// Package loom is a canvas node-graph editor engine for [Ebitengine].
//
// Loom provides the pieces a visual function-graph editor needs: a 2D
// geometry kernel, a declarative widget tree that compiles to canvas draw
// calls, a socket/connection consistency model, and a graph engine with
// pan/zoom, point-cast and line-cast hit testing, and node dragging.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	editor := loom.NewEditor()
//	editor.Tree.CreateNode(loom.Functions[0], loom.Pt(200, 200))
//	loom.Run(editor, loom.RunConfig{
//		Title: "My Editor", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Editor.Handle], [Editor.Update], and [Editor.Draw] directly.
//
// # Graph engine
//
// [Tree] owns the nodes, connections, and the pan/zoom view transform. Nodes
// are created from a [FunctionDefinition] template; each node exposes one
// input socket per input parameter along its top edge and one output socket
// per output parameter along its bottom edge. An input socket accepts at most
// one incoming connection; an output socket may feed any number of inputs.
// [Tree.PointCast] and [Tree.LineCast] resolve screen-space queries to the
// topmost socket, node, or connection.
//
// # Widgets
//
// Drawing is declarative: anything implementing [Shape] gains culled path
// emission, style wrappers ([FillStyle], [LineWidth], ...) apply one canvas
// state change each, and [Stack] layers children in painter order. A
// [Component] lazily rebuilds its widget tree from current graph state on
// every frame, so there is no retained-mode diffing.
//
// The [Canvas] interface is the only rendering boundary; [Paint] is the
// built-in software implementation and [Run] presents it via ebiten.
//
// [Ebitengine]: https://ebitengine.org
package loom
