package editor

import (
	"sort"

	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/curve"
)

// Mark is an editable stop: a color mark (red, green and blue keys at one
// time) or an alpha mark (one alpha key). Marks are derived from the curve
// group on every interaction and compared by value.
type Mark struct {
	Time  float64
	Red   curve.KeyHandle
	Green curve.KeyHandle
	Blue  curve.KeyHandle
	Alpha curve.KeyHandle
}

// IsValidColorMark reports whether all three color keys exist in g.
func (m Mark) IsValidColorMark(g *curve.Group) bool {
	return g != nil &&
		g.Curve(curve.Red).IsKeyHandleValid(m.Red) &&
		g.Curve(curve.Green).IsKeyHandleValid(m.Green) &&
		g.Curve(curve.Blue).IsKeyHandleValid(m.Blue)
}

// IsValidAlphaMark reports whether the alpha key exists in g.
func (m Mark) IsValidAlphaMark(g *curve.Group) bool {
	return g != nil && g.Curve(curve.Alpha).IsKeyHandleValid(m.Alpha)
}

// IsValid reports whether m is a valid color or alpha mark of g.
func (m Mark) IsValid(g *curve.Group) bool {
	return m.IsValidColorMark(g) || m.IsValidAlphaMark(g)
}

// Mask returns the channels the mark edits.
func (m Mark) Mask() curve.ChannelMask {
	if m.Alpha.IsValid() {
		return curve.MaskAlpha
	}
	return curve.MaskRGB
}

// Color returns the key values of the mark. Channels the mark does not own
// read as zero, except alpha which reads as 1 for color marks.
func (m Mark) Color(g *curve.Group) colorramp.RGBA {
	c := colorramp.RGBA{A: 1}
	if m.IsValidColorMark(g) {
		c.R = g.Curve(curve.Red).KeyValue(m.Red)
		c.G = g.Curve(curve.Green).KeyValue(m.Green)
		c.B = g.Curve(curve.Blue).KeyValue(m.Blue)
	}
	if m.IsValidAlphaMark(g) {
		c.A = g.Curve(curve.Alpha).KeyValue(m.Alpha)
	}
	return c
}

// SetColor writes RGB to a color mark or A to an alpha mark.
func (m Mark) SetColor(g *curve.Group, c colorramp.RGBA) {
	if m.IsValidColorMark(g) {
		g.Curve(curve.Red).SetKeyValue(m.Red, c.R)
		g.Curve(curve.Green).SetKeyValue(m.Green, c.G)
		g.Curve(curve.Blue).SetKeyValue(m.Blue, c.B)
	}
	if m.IsValidAlphaMark(g) {
		g.Curve(curve.Alpha).SetKeyValue(m.Alpha, c.A)
	}
}

// SetTime moves every key of the mark and updates m.Time.
func (m *Mark) SetTime(g *curve.Group, t float64) {
	if m.IsValidColorMark(g) {
		g.Curve(curve.Red).SetKeyTime(m.Red, t)
		g.Curve(curve.Green).SetKeyTime(m.Green, t)
		g.Curve(curve.Blue).SetKeyTime(m.Blue, t)
	}
	if m.IsValidAlphaMark(g) {
		g.Curve(curve.Alpha).SetKeyTime(m.Alpha, t)
	}
	m.Time = t
}

// Marks enumerates the marks of g. A color mark exists for each red key
// that has green and blue keys at exactly the same time; of several red
// keys sharing a time, the n-th pairs with the n-th green and blue keys at
// that time. An alpha mark exists for each alpha key. Both lists are in key
// time order.
func Marks(g *curve.Group) (color, alpha []Mark) {
	if g == nil {
		return nil, nil
	}
	red := g.Curve(curve.Red)
	green, blue := newKeyCursor(g.Curve(curve.Green)), newKeyCursor(g.Curve(curve.Blue))
	seen := make(map[float64]int)
	for _, h := range red.Handles() {
		t := red.KeyTime(h)
		n := seen[t]
		seen[t] = n + 1
		gh, bh := green.nth(t, n), blue.nth(t, n)
		if gh.IsValid() && bh.IsValid() {
			color = append(color, Mark{Time: t, Red: h, Green: gh, Blue: bh})
		}
	}
	a := g.Curve(curve.Alpha)
	for _, h := range a.Handles() {
		alpha = append(alpha, Mark{Time: a.KeyTime(h), Alpha: h})
	}
	return color, alpha
}

// HitTest returns the mark whose handle contains (x, y), or the zero Mark.
// Only points inside a band are considered. Color marks are tested before
// alpha marks and the first match wins; marks left of the widget are
// skipped.
func HitTest(g *curve.Group, geom Geometry, scale ScaleInfo, x, y float64) Mark {
	if geom.RegionAt(x, y) == RegionNone {
		return Mark{}
	}
	colorMarks, alphaMarks := Marks(g)
	band := geom.ColorBand()
	for _, m := range colorMarks {
		mx := scale.InputToLocalX(m.Time)
		if mx >= 0 && HandleRect(band, mx).Contains(x, y) {
			return m
		}
	}
	band = geom.AlphaBand()
	for _, m := range alphaMarks {
		mx := scale.InputToLocalX(m.Time)
		if mx >= 0 && HandleRect(band, mx).Contains(x, y) {
			return m
		}
	}
	return Mark{}
}

// keyCursor looks up keys of one channel by time and occurrence.
type keyCursor struct {
	handles []curve.KeyHandle
	keys    []curve.Key
}

func newKeyCursor(c *curve.ChannelCurve) keyCursor {
	return keyCursor{handles: c.Handles(), keys: c.Keys()}
}

// nth returns the n-th key at exactly time t, in insertion order, or the
// zero handle.
func (k keyCursor) nth(t float64, n int) curve.KeyHandle {
	i := sort.Search(len(k.keys), func(i int) bool { return k.keys[i].Time >= t })
	if i+n < len(k.keys) && k.keys[i+n].Time == t {
		return k.handles[i+n]
	}
	return 0
}
