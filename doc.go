// Package easel is a layered paint engine for [Ebitengine].
//
// Easel provides the pieces a paint program needs under its UI: fixed-size
// drawing surfaces, a stack that orders them and tracks the active layer, a
// palette of pointer-driven tools, and a binder that keeps exactly the
// current tool attached to exactly the active surface.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window with the
// palette on the left and the layers on the right:
//
//	session, err := easel.NewSession(easel.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer session.Close()
//	easel.Run(session, easel.RunConfig{Title: "Paint"})
//
// For full control, drive the session yourself. Feed pointer samples in stack
// coordinates with [Session.HandlePointer] and call [Session.Update] once per
// frame; [Canvas] shows how.
//
// # Surfaces and stacks
//
// A [Surface] owns a pixel buffer behind a [PaintContext] (drawing through
// [gg]) and an [InputSource] that tools listen on. A [SurfaceStack] keeps
// surfaces in visual order, hands out increasing stacking orders, centers
// each surface within its bounds and tracks the active and previously
// active surface:
//
//	ink, _ := easel.NewSurface(320, 240, "#FFFFFFFF")
//	session.Stack().AddLayer(ink) // ink is now active
//
// # Tools
//
// A [Tool] gets its behavior from an [EventDeclarer]: an ordered list of
// (event kind, handler) pairs. [NewPaintBrush], [NewEraser] and
// [NewLineTool] are built in. Tools are added to a [ToolPalette]; picking one
// up deselects the previous tool. Icon highlights fade with [gween].
//
// # Binding
//
// A [Binder] observes both collections. Whenever the active surface or the
// current tool changes it unbinds the old pair before binding the new one,
// so handlers never stay attached to a surface that is no longer active.
//
// # Scripts and snapshots
//
// [LoadScript] reads a JSON script of layer, tool and pointer steps that a
// session replays one per frame; [Session.Snapshot] writes the flattened
// stack to a PNG. Together they allow headless end-to-end checks.
//
// ECS integration is available via the Donburi adapter in easel/ecs, and a
// terminal status line via easel/status.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/fogleman/gg
// [gween]: https://github.com/tanema/gween
package easel
