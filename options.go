package colorramp

// DefaultResolution is the texture width used when no resolution is given.
const DefaultResolution = 1024

// TextureOption configures texture synthesis.
//
// Example:
//
//	// Default: 1024 texels, BGRA, linear bytes
//	tex, err := colorramp.Synthesize(set, colorramp.InterpLinear)
//
//	// 256 texels, RGBA, gamma-encoded
//	tex, err := colorramp.Synthesize(set, colorramp.InterpLinear,
//	    colorramp.WithResolution(256),
//	    colorramp.WithByteOrder(colorramp.OrderRGBA),
//	    colorramp.WithSRGB(true))
type TextureOption func(*textureOptions)

// textureOptions holds optional configuration for Synthesize.
type textureOptions struct {
	resolution int
	srgb       bool
	order      ByteOrder
}

// defaultTextureOptions returns the default texture options.
func defaultTextureOptions() textureOptions {
	return textureOptions{
		resolution: DefaultResolution,
		srgb:       false,
		order:      OrderBGRA,
	}
}

// WithResolution sets the number of texels.
// Non-positive values make Synthesize fail with ErrInvalidResolution.
func WithResolution(n int) TextureOption {
	return func(o *textureOptions) {
		o.resolution = n
	}
}

// WithSRGB selects gamma-encoded (true) or linear (false) bytes.
func WithSRGB(srgb bool) TextureOption {
	return func(o *textureOptions) {
		o.srgb = srgb
	}
}

// WithByteOrder sets the texel byte order expected by the consumer.
func WithByteOrder(order ByteOrder) TextureOption {
	return func(o *textureOptions) {
		o.order = order
	}
}
