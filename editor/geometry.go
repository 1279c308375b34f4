package editor

import "github.com/gogpu/colorramp/paint"

// Widget layout constants, in widget-local units.
const (
	BandHeight      = 16.0 // Height of the color and opacity bands
	AlphaBandInset  = 14.0 // Opacity band starts this far above the bottom edge
	GradientInset   = 30.0 // Widget height minus gradient area height
	HandleWidth     = 13.0
	HandleHalfWidth = 6.5
	HandleHeight    = 16.0

	DesiredWidth  = 1000.0
	DesiredHeight = 55.0
)

// Region is a horizontal band of the widget.
type Region uint8

const (
	RegionNone Region = iota
	RegionColorBand
	RegionAlphaBand
)

var regionNames = [...]string{
	RegionNone:      "none",
	RegionColorBand: "color",
	RegionAlphaBand: "alpha",
}

// String returns the region name.
func (r Region) String() string {
	if int(r) < len(regionNames) {
		return regionNames[r]
	}
	return "unknown"
}

// Geometry is the widget size.
type Geometry struct {
	Width, Height float64
}

// DesiredSize returns the size the widget asks for.
func DesiredSize() Geometry {
	return Geometry{Width: DesiredWidth, Height: DesiredHeight}
}

// ColorBand returns the band that holds color stop handles.
func (g Geometry) ColorBand() paint.Rect {
	return paint.NewRect(0, 0, g.Width, BandHeight)
}

// AlphaBand returns the band that holds opacity stop handles. It extends two
// units below the widget.
func (g Geometry) AlphaBand() paint.Rect {
	return paint.NewRect(0, g.Height-AlphaBandInset, g.Width, BandHeight)
}

// GradientArea returns the preview strip between the two bands.
func (g Geometry) GradientArea() paint.Rect {
	return paint.NewRect(0, BandHeight, g.Width, g.Height-GradientInset)
}

// RegionAt returns the band under (x, y). The color band wins where the
// bands overlap on very short widgets.
func (g Geometry) RegionAt(x, y float64) Region {
	switch {
	case g.ColorBand().Contains(x, y):
		return RegionColorBand
	case g.AlphaBand().Contains(x, y):
		return RegionAlphaBand
	default:
		return RegionNone
	}
}

// HandleRect returns the handle rectangle of a stop drawn at local x in band.
func HandleRect(band paint.Rect, x float64) paint.Rect {
	return paint.NewRect(x-HandleHalfWidth, band.Y, HandleWidth, HandleHeight)
}

// ScaleInfo maps between domain time and widget-local x.
type ScaleInfo struct {
	ViewMin, ViewMax float64
	Width            float64
}

// NewScaleInfo returns the mapping for a view range over width units.
func NewScaleInfo(viewMin, viewMax, width float64) ScaleInfo {
	return ScaleInfo{ViewMin: viewMin, ViewMax: viewMax, Width: width}
}

// pixelsPerInput returns 0 for a degenerate view or width.
func (s ScaleInfo) pixelsPerInput() float64 {
	span := s.ViewMax - s.ViewMin
	if span == 0 {
		return 0
	}
	return s.Width / span
}

// InputToLocalX converts a domain time to local x.
func (s ScaleInfo) InputToLocalX(t float64) float64 {
	return (t - s.ViewMin) * s.pixelsPerInput()
}

// LocalXToInput converts local x to a domain time.
func (s ScaleInfo) LocalXToInput(x float64) float64 {
	ppi := s.pixelsPerInput()
	if ppi == 0 {
		return s.ViewMin
	}
	return x/ppi + s.ViewMin
}
