package editor

import (
	"time"

	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/curve"
)

// DragThreshold is the horizontal travel, in local units, that turns a
// press on a stop into a drag. Shorter travel counts as a click.
const DragThreshold = 5.0

// DoubleClickInterval is the longest gap between two primary presses that
// [Controller.HandlePointer] treats as a double click.
const DoubleClickInterval = 500 * time.Millisecond

// doubleClickSlop is the largest distance between the two presses of a
// double click.
const doubleClickSlop = 4.0

// State is the drag state of a Controller.
type State uint8

const (
	// StateIdle means no button is held over the widget.
	StateIdle State = iota
	// StateArmedDrag means a primary press is held below the drag threshold.
	StateArmedDrag
	// StateDragging means the selected stop follows the pointer.
	StateDragging
	// StateRightArmed means a secondary press on a stop is held.
	StateRightArmed
)

var stateNames = [...]string{
	StateIdle:       "idle",
	StateArmedDrag:  "armed",
	StateDragging:   "dragging",
	StateRightArmed: "right-armed",
}

// String returns the state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Controller is the gradient stop editor. It edits the curves of one owner
// resource. A nil owner makes every mutating operation a no-op.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	owner *curve.Resource
	tx    Transactor
	opts  options
	geom  Geometry

	selected Mark
	hover    Region
	state    State
	captured bool
	distance float64
	lastX    float64

	// Pre-drag time of the selected mark, restored on cancel.
	dragOrigin float64

	// Last committed stop color, used for new stops.
	lastColor colorramp.RGBA

	open  *openTransaction
	menu  *ContextMenu
	color *ColorSession
	alpha *AlphaSession

	lastPress    time.Duration
	lastPressX   float64
	lastPressY   float64
	hasLastPress bool
}

// New returns a controller editing owner.
func New(owner *curve.Resource, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		owner:     owner,
		tx:        o.tx,
		opts:      o,
		geom:      o.size,
		lastColor: colorramp.White,
	}
}

// Owner returns the edited resource.
func (c *Controller) Owner() *curve.Resource { return c.owner }

// Selected returns the selected mark. It may have become invalid; check it
// with [Mark.IsValid] against the owner's curves.
func (c *Controller) Selected() Mark { return c.selected }

// Select replaces the selection.
func (c *Controller) Select(m Mark) { c.selected = m }

// Hover returns the band under the pointer.
func (c *Controller) Hover() Region { return c.hover }

// State returns the drag state.
func (c *Controller) State() State { return c.state }

// Captured reports whether the controller holds pointer capture.
func (c *Controller) Captured() bool { return c.captured }

// LastColor returns the color that new stops are created with.
func (c *Controller) LastColor() colorramp.RGBA { return c.lastColor }

// EditingEnabled reports whether input is handled.
func (c *Controller) EditingEnabled() bool { return c.opts.editing }

// SetEditingEnabled toggles input handling.
func (c *Controller) SetEditingEnabled(enabled bool) { c.opts.editing = enabled }

// Geometry returns the widget size used for hit testing.
func (c *Controller) Geometry() Geometry { return c.geom }

// Resize sets the widget size used for hit testing.
func (c *Controller) Resize(width, height float64) {
	c.geom = Geometry{Width: width, Height: height}
}

// Scale returns the time mapping for the current widget width.
func (c *Controller) Scale() ScaleInfo {
	return c.scaleFor(c.geom)
}

func (c *Controller) scaleFor(g Geometry) ScaleInfo {
	return NewScaleInfo(c.opts.viewMin, c.opts.viewMax, g.Width)
}

// curves returns the owner's curve group, or nil without an owner.
func (c *Controller) curves() *curve.Group {
	return c.owner.Curves()
}

// Menu returns the open context menu, or nil.
func (c *Controller) Menu() *ContextMenu { return c.menu }

// CloseMenu dismisses the context menu.
func (c *Controller) CloseMenu() { c.menu = nil }

// ColorSession returns the open color picker session, or nil.
func (c *Controller) ColorSession() *ColorSession { return c.color }

// AlphaSession returns the open opacity slider session, or nil.
func (c *Controller) AlphaSession() *AlphaSession { return c.alpha }

// HitTest returns the mark under (x, y) in the current geometry.
func (c *Controller) HitTest(x, y float64) Mark {
	return HitTest(c.curves(), c.geom, c.Scale(), x, y)
}

// notify tells the owner's listeners that the mark's channels changed.
func (c *Controller) notify(mask curve.ChannelMask) {
	c.owner.NotifyChanged(mask)
}

// addStop adds a stop at local x in the given band and selects it.
func (c *Controller) addStop(region Region, x float64) {
	g := c.curves()
	if g == nil || region == RegionNone {
		return
	}
	t := c.Scale().LocalXToInput(x)
	interp := c.keyInterp(g)
	var m Mark
	c.withTransaction(LabelAddStop, func() {
		m.Time = t
		if region == RegionColorBand {
			m.Red = g.Curve(curve.Red).AddKey(t, c.lastColor.R, interp)
			m.Green = g.Curve(curve.Green).AddKey(t, c.lastColor.G, interp)
			m.Blue = g.Curve(curve.Blue).AddKey(t, c.lastColor.B, interp)
		} else {
			m.Alpha = g.Curve(curve.Alpha).AddKey(t, c.lastColor.A, interp)
		}
		c.notify(m.Mask())
	})
	c.selected = m
}

// keyInterp returns the interpolation of the first existing key, so new keys
// follow the ramp's mode.
func (c *Controller) keyInterp(g *curve.Group) colorramp.InterpMode {
	for ch := curve.Red; ch <= curve.Alpha; ch++ {
		if keys := g.Curve(ch).Keys(); len(keys) > 0 {
			return keys[0].Interp
		}
	}
	return colorramp.InterpLinear
}

// DeleteStop removes every key of m in one transaction and clears the
// selection. Invalid marks are ignored.
func (c *Controller) DeleteStop(m Mark) {
	g := c.curves()
	if !m.IsValid(g) {
		return
	}
	c.withTransaction(LabelDeleteStop, func() {
		if m.IsValidColorMark(g) {
			g.Curve(curve.Red).DeleteKey(m.Red)
			g.Curve(curve.Green).DeleteKey(m.Green)
			g.Curve(curve.Blue).DeleteKey(m.Blue)
		}
		if m.IsValidAlphaMark(g) {
			g.Curve(curve.Alpha).DeleteKey(m.Alpha)
		}
		c.notify(m.Mask())
	})
	if c.selected == m {
		c.selected = Mark{}
	}
}

// MoveStop sets the time of m in one transaction.
func (c *Controller) MoveStop(m Mark, t float64) {
	g := c.curves()
	if !m.IsValid(g) {
		return
	}
	c.withTransaction(LabelChangeTime, func() {
		m.SetTime(g, t)
		c.notify(m.Mask())
	})
	if c.selected.Red == m.Red && c.selected.Alpha == m.Alpha {
		c.selected = m
	}
}

// resetDrag returns to idle and releases capture.
func (c *Controller) resetDrag() {
	c.distance = 0
	c.state = StateIdle
	c.captured = false
}

// CancelCapture handles loss of pointer capture. An active drag is rolled
// back to its starting time and its transaction abandoned.
func (c *Controller) CancelCapture() {
	if c.state == StateDragging {
		g := c.curves()
		if c.selected.IsValid(g) {
			c.selected.SetTime(g, c.dragOrigin)
			c.notify(c.selected.Mask())
		}
		c.abandonOpen(c)
	}
	c.resetDrag()
}
