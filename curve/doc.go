// Package curve holds the keyed-curve form of a color ramp.
//
// A ramp is stored as four independent [ChannelCurve] values (red, green,
// blue, alpha) collected in a [Group]. A color stop becomes one key on each
// of the red, green and blue curves at the stop position; opacity is keyed
// on the alpha curve and may use a different set of times.
//
// [FromStops] and [ToStops] convert between a [colorramp.StopSet] and a
// Group without side effects. A [Resource] owns a Group on behalf of an
// editor and a ramp node, and broadcasts change notifications.
//
// None of the types in this package are safe for concurrent use.
package curve
