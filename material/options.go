package material

import "github.com/gogpu/colorramp"

// Option configures a Node.
type Option func(*options)

type options struct {
	name     string
	order    colorramp.ByteOrder
	validate bool
}

func defaultOptions() options {
	return options{
		name:     Caption,
		order:    colorramp.OrderBGRA,
		validate: true,
	}
}

// WithName names the node. The private curve is named after it.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithByteOrder sets the channel order of the synthesized texture.
// The default is BGRA.
func WithByteOrder(order colorramp.ByteOrder) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithShaderValidation toggles naga validation in [Node.Compile]. When
// disabled the shader carries WGSL only.
func WithShaderValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}
