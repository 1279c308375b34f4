// Package editor implements the interactive color ramp editor: hit testing,
// stop selection, drag-to-move, click-to-add, deletion, context menus and
// color/opacity edit sessions.
//
// A [Controller] edits the curve group of a [curve.Resource]. It never draws;
// [Controller.Paint] returns a [paint.List] for the host to render. Every
// edit is wrapped in a transaction of the host's undo system, reached through
// the [Transactor] interface.
//
// The widget is split into three horizontal strips:
//
//	y = 0      .. 16     color stop band (handles point down)
//	y = 16     .. H-14   gradient preview
//	y = H-14   .. H+2    opacity stop band (handles point up)
//
// Input arrives either through [Controller.Attach], which subscribes to
// gpucontext event sources, or through the direct methods
// ([Controller.PointerDown], [Controller.PointerMove], ...).
//
// A Controller is not safe for concurrent use; call it from the thread that
// delivers input events.
package editor
