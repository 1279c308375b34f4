package curve

import "github.com/gogpu/colorramp"

// Channel indexes the curves of a Group.
type Channel int

// Channels in storage order.
const (
	Red Channel = iota
	Green
	Blue
	Alpha
	numChannels
)

var channelNames = [...]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
	Alpha: "alpha",
}

// String returns the lower-case channel name.
func (ch Channel) String() string {
	if ch >= 0 && ch < numChannels {
		return channelNames[ch]
	}
	return "unknown"
}

// ChannelMask selects a subset of channels in change notifications.
type ChannelMask uint8

// Channel masks.
const (
	MaskRed ChannelMask = 1 << iota
	MaskGreen
	MaskBlue
	MaskAlpha

	MaskRGB = MaskRed | MaskGreen | MaskBlue
	MaskAll = MaskRGB | MaskAlpha
)

// Has reports whether ch is selected.
func (m ChannelMask) Has(ch Channel) bool {
	return m&(1<<ch) != 0
}

// Group is the four channel curves of a ramp.
type Group struct {
	curves [numChannels]ChannelCurve
}

// NewGroup returns an empty group. Curves without keys evaluate to opaque
// black.
func NewGroup() *Group {
	g := &Group{}
	g.curves[Alpha].Default = 1
	return g
}

// Curve returns the curve for ch.
func (g *Group) Curve(ch Channel) *ChannelCurve {
	return &g.curves[ch]
}

// Value evaluates all four channels at time.
func (g *Group) Value(time float64) colorramp.RGBA {
	return colorramp.RGBA{
		R: g.curves[Red].Eval(time),
		G: g.curves[Green].Eval(time),
		B: g.curves[Blue].Eval(time),
		A: g.curves[Alpha].Eval(time),
	}
}

// HasAnyAlphaKeys reports whether opacity is keyed.
func (g *Group) HasAnyAlphaKeys() bool {
	return g.curves[Alpha].NumKeys() > 0
}

// Clone returns a deep copy. Key handles stay valid in the copy.
func (g *Group) Clone() *Group {
	out := &Group{}
	for i := range g.curves {
		out.curves[i] = g.curves[i].clone()
	}
	return out
}

// assign copies the keys of src into g, keeping g's handles where the key
// counts match.
func (g *Group) assign(src *Group) {
	for i := range g.curves {
		g.curves[i].replaceKeys(src.curves[i].Keys())
		g.curves[i].Default = src.curves[i].Default
	}
}

// FromStops converts a stop set to curves. Each stop adds one key at its
// position to every channel, all tagged with mode.
func FromStops(set colorramp.StopSet, mode colorramp.InterpMode) *Group {
	g := NewGroup()
	for i := 0; i < set.Len(); i++ {
		s := set.At(i)
		g.curves[Red].AddKey(s.Position, s.Color.R, mode)
		g.curves[Green].AddKey(s.Position, s.Color.G, mode)
		g.curves[Blue].AddKey(s.Position, s.Color.B, mode)
		g.curves[Alpha].AddKey(s.Position, s.Color.A, mode)
	}
	return g
}

// ToStops rebuilds color stops from the red, green and blue curves.
//
// The three curves must hold the same number of keys, otherwise
// ErrChannelKeyMismatch is returned. Stop positions come from the red keys.
// Opacity is not read back: every stop gets alpha 1.
func ToStops(g *Group) (colorramp.StopSet, error) {
	r, gr, b := g.curves[Red].keys, g.curves[Green].keys, g.curves[Blue].keys
	if len(r) != len(gr) || len(r) != len(b) {
		return colorramp.StopSet{}, colorramp.ErrChannelKeyMismatch
	}
	stops := make([]colorramp.ColorStop, len(r))
	for i := range r {
		stops[i] = colorramp.ColorStop{
			Color:    colorramp.RGBA{R: r[i].Value, G: gr[i].Value, B: b[i].Value, A: 1},
			Position: r[i].Time,
		}
	}
	return colorramp.StopSetOf(stops...), nil
}
