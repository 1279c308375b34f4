// Package material provides the ColorRamp material node.
//
// A [Node] owns a stop set, a private [curve.Resource] for interactive
// editing and the ramp texture synthesized from the stops. Edits made
// through the curve (for example by an [editor.Controller]) flow back into
// the stops and the texture on every change notification.
//
// [Node.Compile] produces a WGSL shader that maps the luminance of a factor
// color onto the ramp texture, validated and translated to SPIR-V with naga.
// When the factor input is not connected the shader returns the constant
// luminance of [Node.ConstFactor] instead.
//
// A Node is not safe for concurrent use.
//
// [editor.Controller]: https://pkg.go.dev/github.com/gogpu/colorramp/editor#Controller
package material
