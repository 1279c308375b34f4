package editor

import "github.com/gogpu/colorramp/paint"

// Option configures a Controller.
type Option func(*options)

type options struct {
	viewMin, viewMax float64
	tx               Transactor
	editing          bool
	srgbPreview      bool
	measurer         paint.TextMeasurer
	size             Geometry
}

func defaultOptions() options {
	return options{
		viewMin:     0,
		viewMax:     1,
		tx:          NopTransactor{},
		editing:     true,
		srgbPreview: true,
		size:        DesiredSize(),
	}
}

// WithViewRange sets the domain range shown across the widget width.
// The default is [0, 1].
func WithViewRange(minTime, maxTime float64) Option {
	return func(o *options) {
		o.viewMin = minTime
		o.viewMax = maxTime
	}
}

// WithTransactor sets the undo system. A nil transactor is ignored.
func WithTransactor(tx Transactor) Option {
	return func(o *options) {
		if tx != nil {
			o.tx = tx
		}
	}
}

// WithEditingEnabled toggles editing. A disabled controller paints but
// handles no input.
func WithEditingEnabled(enabled bool) Option {
	return func(o *options) {
		o.editing = enabled
	}
}

// WithSRGBPreview selects how preview colors are encoded. When true (the
// default) curve values are treated as linear and gamma-encoded for display.
// When false they are emitted unchanged.
func WithSRGBPreview(srgb bool) Option {
	return func(o *options) {
		o.srgbPreview = srgb
	}
}

// WithTextMeasurer sets the measurer used to centre hint text. Without one
// the hint text is positioned at x = 0.
func WithTextMeasurer(m paint.TextMeasurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithSize sets the initial widget size used for input hit testing.
// The default is [DesiredSize].
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.size = Geometry{Width: width, Height: height}
	}
}
