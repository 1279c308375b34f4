package material

import (
	"fmt"

	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/curve"
	"github.com/gogpu/gpucontext"
)

// Caption is the display name of the node.
const Caption = "ColorRamp"

// Node is the ColorRamp material expression.
type Node struct {
	// FactorConnected reports whether the factor input is wired. When false
	// the node compiles to the constant luminance of ConstFactor.
	FactorConnected bool
	ConstFactor     colorramp.RGBA

	Mode colorramp.InterpMode
	// SRGB gamma-encodes the ramp texture.
	SRGB bool
	// Stops is the ramp. Once the private curve exists it is the source of
	// truth and Refresh overwrites Stops from it; use SetStops to replace
	// the ramp.
	Stops colorramp.StopSet
	// Resolution is the texture width.
	Resolution int

	opts       options
	curve      *curve.Resource
	cancel     func()
	texture    *colorramp.Texture
	textureErr error
	validCurve bool
}

// New returns a node with the default black-to-white ramp. The private
// curve and the texture are created on the first Refresh.
func New(opts ...Option) *Node {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Node{
		Mode:       colorramp.InterpLinear,
		Stops:      colorramp.NewStopSet(),
		Resolution: colorramp.DefaultResolution,
		opts:       o,
	}
}

// Name returns the node name.
func (n *Node) Name() string { return n.opts.name }

// Caption returns the caption shown on the node.
func (n *Node) Caption() string { return Caption }

// Curve returns the private curve, or nil before the first Refresh.
func (n *Node) Curve() *curve.Resource { return n.curve }

// Texture returns the current ramp texture. It is nil before the first
// Refresh and after a refresh with fewer than two stops.
func (n *Node) Texture() *colorramp.Texture { return n.texture }

// ValidCurve reports whether the last read of the private curve succeeded.
func (n *Node) ValidCurve() bool { return n.validCurve }

// Refresh brings the node's derived state up to date after its fields
// changed: it sorts the stops, reads back edits from the private curve,
// rebuilds the texture, creates the curve if needed and writes the stops to
// it. The returned error is the texture synthesis error, if any; the curve
// is updated either way.
func (n *Node) Refresh() error {
	n.Stops.SortByPosition()
	n.pullCurve()
	err := n.synthesize()
	if n.curve == nil || n.cancel == nil {
		n.createCurve()
	}
	n.curve.Push(n.Stops, n.Mode)
	return err
}

// pullCurve replaces the stops with the private curve's. A missing curve
// leaves the stops as they are.
func (n *Node) pullCurve() {
	if n.curve == nil {
		n.validCurve = false
		return
	}
	n.validCurve = n.curve.Pull(&n.Stops) == nil
}

func (n *Node) synthesize() error {
	tex, err := colorramp.Synthesize(n.Stops, n.Mode,
		colorramp.WithResolution(n.Resolution),
		colorramp.WithSRGB(n.SRGB),
		colorramp.WithByteOrder(n.opts.order))
	if err != nil {
		n.texture = nil
		n.textureErr = fmt.Errorf("%s: %w", n.opts.name, err)
		colorramp.Logger().Warn("material: texture not rebuilt", "node", n.opts.name, "err", err)
		return n.textureErr
	}
	n.texture = tex
	n.textureErr = nil
	return nil
}

func (n *Node) createCurve() {
	if n.cancel != nil {
		n.cancel()
	}
	n.curve = curve.NewResource(n.opts.name)
	n.validCurve = true
	n.cancel = n.curve.OnChanged(n.onCurveChanged)
	colorramp.Logger().Debug("material: curve created", "node", n.opts.name)
}

// onCurveChanged reads an edit back into the stops and rebuilds the
// texture. The curve keeps its keys, so the editor's selection survives.
func (n *Node) onCurveChanged(curve.ChannelMask) {
	n.pullCurve()
	if n.validCurve {
		n.Stops.SortByPosition()
	}
	_ = n.synthesize()
}

// Close detaches the node from its private curve.
func (n *Node) Close() {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

// UploadTexture hands the current texture to the host.
func (n *Node) UploadTexture(creator gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if n.texture == nil {
		if n.textureErr != nil {
			return nil, n.textureErr
		}
		return nil, fmt.Errorf("%s: texture not built: %w", n.opts.name, colorramp.ErrInsufficientStops)
	}
	return n.texture.Upload(creator)
}

// Document returns the persisted form of the node's ramp.
func (n *Node) Document() *colorramp.Document {
	d := colorramp.NewDocument(n.Stops, n.Mode, n.SRGB)
	d.Resolution = n.Resolution
	return d
}

// SetStops replaces the ramp with a copy of set and refreshes.
func (n *Node) SetStops(set colorramp.StopSet) error {
	n.Stops = set.Clone()
	n.Stops.SortByPosition()
	if n.curve != nil {
		n.curve.Push(n.Stops, n.Mode)
	}
	return n.Refresh()
}

// Load replaces the node's ramp with d and refreshes.
func (n *Node) Load(d *colorramp.Document) error {
	n.Mode = d.Interpolation
	n.SRGB = d.SRGB
	n.Resolution = d.Resolution
	if n.Resolution == 0 {
		n.Resolution = colorramp.DefaultResolution
	}
	return n.SetStops(d.StopSet())
}
