// Package colorramp models and evaluates piecewise color gradients ("color
// ramps") over the normalized domain [0,1].
//
// # Overview
//
// A ramp is a [StopSet]: an ordered list of [ColorStop] values, each pairing a
// linear RGBA color with a position. The set is evaluated with [Evaluate]
// under an [InterpMode] and baked into a fixed-resolution lookup [Texture]
// with [Synthesize].
//
//	set := colorramp.NewStopSet() // black at 0, white at 1
//	set.Add(colorramp.ColorStop{Color: colorramp.Red, Position: 0.5})
//	set.SortByPosition()
//
//	c, err := colorramp.Evaluate(set, 0.25, colorramp.InterpLinear)
//
//	tex, err := colorramp.Synthesize(set, colorramp.InterpLinear,
//	    colorramp.WithResolution(256),
//	    colorramp.WithSRGB(true))
//
// # Packages
//
//   - curve: the 4-channel keyed curve representation and its sync with StopSet
//   - editor: the interactive stop editor (hit testing, drag, add/remove)
//   - paint: draw commands emitted by the editor for a host renderer
//   - material: the ramp node that keeps stops, curves and texture in sync
//
// # Threading
//
// Everything except [SetLogger] and [Logger] is meant to be used from a single
// goroutine, normally the one that delivers input events.
package colorramp
