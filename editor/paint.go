package editor

import (
	"image/color"
	"math"

	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/curve"
	"github.com/gogpu/colorramp/paint"
)

// Hint texts shown over an empty band.
const (
	ColorHintText = "Click in this area add color stops"
	AlphaHintText = "Click in this area add opacity stops"
)

const (
	previewStep  = 2.0
	hintTextSize = 8.0
)

var (
	hoverColor     = colorramp.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.15}
	hintColor      = colorramp.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.85}
	selectionColor = colorramp.RGBA{R: 0.728, G: 0.364, B: 0.003, A: 1}
)

// Paint builds the draw commands for a widget of size geom. It does not
// change the controller.
func (c *Controller) Paint(geom Geometry) *paint.List {
	list := paint.NewList(int(math.Ceil(geom.Width)), int(math.Ceil(geom.Height)))
	layer := 0

	switch c.hover {
	case RegionColorBand:
		list.Add(paint.BoxCommand{Layer: layer, Rect: geom.ColorBand(), Brush: paint.BrushWhite, Color: hoverColor})
		layer++
	case RegionAlphaBand:
		list.Add(paint.BoxCommand{Layer: layer, Rect: geom.AlphaBand(), Brush: paint.BrushWhite, Color: hoverColor})
		layer++
	}

	g := c.curves()
	if g == nil {
		return list
	}
	scale := c.scaleFor(geom)

	stops, translucent := c.previewStops(g, scale)
	if len(stops) > 0 {
		area := geom.GradientArea()
		if translucent {
			list.Add(paint.CheckerboardCommand{Layer: layer, Rect: area})
		}
		list.Add(paint.GradientCommand{Layer: layer, Rect: area, Stops: stops})
	}

	colorMarks, alphaMarks := Marks(g)
	band := geom.ColorBand()
	for _, m := range colorMarks {
		x := scale.InputToLocalX(m.Time)
		if x < 0 || x > band.W {
			continue
		}
		col := g.Value(m.Time).WithAlpha(1)
		c.paintMark(list, m, band, x, col, true, layer)
	}
	band = geom.AlphaBand()
	for _, m := range alphaMarks {
		x := scale.InputToLocalX(m.Time)
		if x < 0 || x > band.W {
			continue
		}
		c.paintMark(list, m, band, x, colorramp.Gray(g.Value(m.Time).A), false, layer)
	}

	if c.opts.editing {
		if len(colorMarks) == 0 {
			c.paintHint(list, ColorHintText, geom.ColorBand(), layer)
		}
		if len(alphaMarks) == 0 {
			c.paintHint(list, AlphaHintText, geom.AlphaBand(), layer)
		}
	}
	return list
}

// previewStops samples the curve group every previewStep units across the
// widget. Without alpha keys the preview is opaque.
func (c *Controller) previewStops(g *curve.Group, scale ScaleInfo) ([]paint.GradientStop, bool) {
	hasAlpha := g.HasAnyAlphaKeys()
	translucent := false
	width := math.Trunc(scale.Width)
	var stops []paint.GradientStop
	for x := 0.0; x < width; x += previewStep {
		col := g.Value(scale.LocalXToInput(x))
		if hasAlpha {
			translucent = translucent || col.A < 1
		} else {
			col.A = 1
		}
		stops = append(stops, paint.GradientStop{X: x, Color: c.displayColor(col)})
	}
	return stops, translucent
}

// displayColor quantizes col to 8 bits in the preview encoding.
func (c *Controller) displayColor(col colorramp.RGBA) colorramp.RGBA {
	return fromBytes(col.Encode(c.opts.srgbPreview))
}

func (c *Controller) paintMark(list *paint.List, m Mark, band paint.Rect, x float64, col colorramp.RGBA, isColor bool, layer int) {
	tint := colorramp.White
	if m == c.selected {
		tint = selectionColor
		layer++
	}
	brush := paint.BrushAlphaHandle
	if isColor {
		brush = paint.BrushColorHandle
	}
	handle := HandleRect(band, x)
	list.Add(paint.BoxCommand{Layer: layer, Rect: handle, Brush: brush, Color: tint})

	// Swatch inside the handle; color handles point down, alpha handles up.
	swatch := paint.NewRect(handle.X+3, band.Y+6, HandleWidth-6, HandleHeight-9)
	if isColor {
		swatch.Y = band.Y + 3
	}
	list.Add(paint.BoxCommand{Layer: layer + 1, Rect: swatch, Brush: paint.BrushWhite, Color: fromBytes(col.Encode(true))})
}

func (c *Controller) paintHint(list *paint.List, text string, band paint.Rect, layer int) {
	x := 0.0
	if c.opts.measurer != nil {
		x = (band.W - c.opts.measurer.Measure(text, hintTextSize)) / 2
	}
	list.Add(paint.TextCommand{Layer: layer, Text: text, X: x, Y: band.Y + 1, Size: hintTextSize, Color: hintColor})
}

// fromBytes reinterprets 8-bit channels as values in [0, 1] without
// decoding.
func fromBytes(b color.NRGBA) colorramp.RGBA {
	return colorramp.RGBA{
		R: float64(b.R) / 255,
		G: float64(b.G) / 255,
		B: float64(b.B) / 255,
		A: float64(b.A) / 255,
	}
}
