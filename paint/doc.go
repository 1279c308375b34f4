// Package paint describes what a ramp editor draws, as a list of typed
// commands.
//
// The editor never rasterizes anything itself. It fills a [List] with
// boxes, checkerboards, horizontal gradients and hint text, each tagged with
// a layer. A host replays the list into a [Backend]; commands on a lower
// layer are replayed first.
//
// # Example
//
//	list := ctrl.Paint(geom)
//	backend, _ := paint.NewBackend("raster")
//	if err := list.Playback(backend); err != nil {
//	    return err
//	}
//
// Backends register themselves by name in init, following the
// database/sql driver pattern.
package paint
