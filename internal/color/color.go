// Package color provides the transfer functions and byte quantization used
// when a ramp is baked into an 8-bit lookup texture.
package color

// Space selects how float components are encoded into bytes.
type Space uint8

const (
	// SpaceLinear quantizes components as-is.
	SpaceLinear Space = iota
	// SpaceSRGB applies the sRGB OETF to RGB before quantizing.
	// Alpha is never gamma-encoded.
	SpaceSRGB
)

// String returns the name of the space.
func (s Space) String() string {
	switch s {
	case SpaceLinear:
		return "linear"
	case SpaceSRGB:
		return "sRGB"
	default:
		return "unknown"
	}
}

// Bytes is one texel with 8-bit components in R, G, B, A order.
type Bytes struct {
	R, G, B, A uint8
}
